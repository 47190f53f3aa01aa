package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
)

type countingReader struct {
	calls int
	data  []byte
}

func (r *countingReader) Get(c bCtx.Ctx, url string) ([]byte, error) {
	r.calls++
	return r.data, nil
}

func Test_cacheReaderRepo_Get(t *testing.T) {
	req := require.New(t)

	underlying := &countingReader{data: []byte("cached doge")}
	r := NewCacheReaderRepo(1024*1024, time.Minute, underlying)

	ctx := bCtx.Background()
	b, err := r.Get(ctx, "https://dweb.link/ipfs/QmTest")
	req.NoError(err)
	req.Equal([]byte("cached doge"), b)
	req.Equal(1, underlying.calls)

	b, err = r.Get(ctx, "https://dweb.link/ipfs/QmTest")
	req.NoError(err)
	req.Equal([]byte("cached doge"), b)
	req.Equal(1, underlying.calls)
}
