package repository

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
)

func Test_gatewayReaderRepo_Get(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("doge"))
	}))
	defer srv.Close()

	r := NewGatewayReaderRepo(http.Client{}, time.Second, 0)
	b, err := r.Get(bCtx.Background(), srv.URL+"/ipfs/QmTest")
	req.NoError(err)
	req.Equal([]byte("doge"), b)
}

func Test_gatewayReaderRepo_Get_notFound(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	var calls int32
	counting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer counting.Close()

	r := NewGatewayReaderRepo(http.Client{}, time.Second, 2)
	_, err := r.Get(bCtx.Background(), counting.URL+"/ipfs/QmMissing")
	req.Error(err)
	// 404 is not retryable
	req.Equal(int32(1), atomic.LoadInt32(&calls))
}

func Test_gatewayReaderRepo_Get_retriesServerError(t *testing.T) {
	req := require.New(t)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	r := NewGatewayReaderRepo(http.Client{}, time.Second, 2)
	b, err := r.Get(bCtx.Background(), srv.URL+"/ipfs/QmFlaky")
	req.NoError(err)
	req.Equal([]byte("ok"), b)
	req.Equal(int32(2), atomic.LoadInt32(&calls))
}
