package repository

import (
	"io/ioutil"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	"github.com/walletsandbox/walletapi/base/backoff"
	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/log"
	"github.com/walletsandbox/walletapi/domain/asset"
)

type gatewayReaderRepo struct {
	client     http.Client
	ctxTimeout time.Duration
	retries    int
}

// NewGatewayReaderRepo fetches assets from public gateway urls. Transient
// failures are retried with exponential backoff up to retries times; the
// coordinator core above never retries on its own.
func NewGatewayReaderRepo(c http.Client, timeout time.Duration, retries int) asset.Reader {
	return &gatewayReaderRepo{client: c, ctxTimeout: timeout, retries: retries}
}

func (r *gatewayReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	bo := backoff.NewExponential(500*time.Millisecond, 5*time.Second)
	var lastErr error
	for attempt := 0; attempt <= r.retries; attempt++ {
		if attempt > 0 {
			if err := bo.Backoff(c); err != nil {
				return nil, err
			}
		}
		body, retryable, err := r.getOnce(c, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return nil, lastErr
}

func (r *gatewayReaderRepo) getOnce(c bCtx.Ctx, url string) ([]byte, bool, error) {
	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		ctx.WithField("url", url).Warn("failed with request")
		return nil, true, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, resp.StatusCode >= http.StatusInternalServerError, xerrors.Errorf("resp.StatusCode != 200")
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, true, err
	}
	return body, false, nil
}
