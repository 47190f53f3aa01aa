package usecase

import (
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/log"
	"github.com/walletsandbox/walletapi/domain/asset"
)

// loadTracker preloads every asset of a batch concurrently over a shared
// worker pool. Completions are reported with the generation they belong to,
// the coordinator discards ones tagged with a superseded generation.
type loadTracker struct {
	source asset.Source
	pool   *goroutines.Pool
}

func newLoadTracker(source asset.Source, workers int) *loadTracker {
	return &loadTracker{
		source: source,
		pool:   goroutines.NewPool(workers, goroutines.WithTaskQueueLength(4*workers)),
	}
}

// startBatch issues one fetch per content ref against the first candidate
// gateway, all concurrently, no ordering dependency between items. onDone is
// called once per item with its index and fetch result.
func (t *loadTracker) startBatch(ctx bCtx.Ctx, gen uint64, refs []string, onDone func(gen uint64, index int, err error)) {
	for i, ref := range refs {
		index, contentRef := i, ref
		err := t.pool.Schedule(func() {
			onDone(gen, index, t.fetchFirst(ctx, contentRef))
		})
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":   err,
				"index": index,
			}).Warn("failed to schedule preload")
			onDone(gen, index, err)
		}
	}
}

func (t *loadTracker) fetchFirst(ctx bCtx.Ctx, contentRef string) error {
	urls := t.source.CandidateGateways(contentRef)
	if len(urls) == 0 {
		return xerrors.Errorf("no gateway for %s", contentRef)
	}
	// only the first mirror is used for preloading, same as the reveal surface
	if _, err := t.source.Fetch(ctx, urls[0]); err != nil {
		return err
	}
	return nil
}
