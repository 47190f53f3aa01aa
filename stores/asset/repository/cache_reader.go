package repository

import (
	"time"

	"github.com/coocood/freecache"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/domain/asset"
)

type cacheReaderRepo struct {
	cache      *freecache.Cache
	underlying asset.Reader
	ttl        time.Duration
}

// NewCacheReaderRepo wraps a reader with an in-memory byte cache so browsing
// back and forth over a batch does not refetch from the gateway. Nothing is
// persisted across restarts.
func NewCacheReaderRepo(cacheSize int, ttl time.Duration, underlying asset.Reader) asset.Reader {
	return &cacheReaderRepo{
		cache:      freecache.NewCache(cacheSize),
		underlying: underlying,
		ttl:        ttl,
	}
}

func (r *cacheReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	key := []byte(url)
	if data, err := r.cache.Get(key); err == nil {
		return data, nil
	}
	data, err := r.underlying.Get(c, url)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(key, data, int(r.ttl.Seconds())); err != nil {
		c.WithField("err", err).Warn("cache.Set failed")
	}
	return data, nil
}
