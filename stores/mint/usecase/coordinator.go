package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/metrics"
	"github.com/walletsandbox/walletapi/domain"
	"github.com/walletsandbox/walletapi/domain/asset"
	"github.com/walletsandbox/walletapi/domain/mint"
)

type MintUseCaseCfg struct {
	Chain   mint.ChainService
	Source  asset.Source
	Events  mint.EventSink
	Origin  mint.OriginFunc
	Account domain.Address

	// optional overrides, zero values fall back to the policy constants
	Confirmations  uint64
	RevealTimeout  time.Duration
	SettleDelay    time.Duration
	EffectDuration time.Duration
	Workers        int
}

type impl struct {
	chain          mint.ChainService
	events         mint.EventSink
	origin         mint.OriginFunc
	account        domain.Address
	confirmations  uint64
	revealTimeout  time.Duration
	settleDelay    time.Duration
	effectDuration time.Duration
	tracker        *loadTracker
	met            metrics.Service

	// mu guards the active batch, its sequencer and the generation counter.
	// The generation is bumped only by SubmitMint and checked by every async
	// completion before it applies any effect.
	mu    sync.Mutex
	gen   uint64
	batch *mint.Batch
	seq   *revealSequencer
}

func New(cfg *MintUseCaseCfg) mint.UseCase {
	confirmations := cfg.Confirmations
	if confirmations == 0 {
		confirmations = 1
	}
	revealTimeout := cfg.RevealTimeout
	if revealTimeout == 0 {
		revealTimeout = mint.RevealTimeout
	}
	settleDelay := cfg.SettleDelay
	if settleDelay == 0 {
		settleDelay = mint.EffectSettleDelay
	}
	effectDuration := cfg.EffectDuration
	if effectDuration == 0 {
		effectDuration = mint.EffectDuration
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = 8
	}
	origin := cfg.Origin
	if origin == nil {
		origin = func() mint.Origin { return mint.Origin{X: 0.5, Y: 0.5} }
	}
	return &impl{
		chain:          cfg.Chain,
		events:         cfg.Events,
		origin:         origin,
		account:        cfg.Account,
		confirmations:  confirmations,
		revealTimeout:  revealTimeout,
		settleDelay:    settleDelay,
		effectDuration: effectDuration,
		tracker:        newLoadTracker(cfg.Source, workers),
		met:            metrics.New("mint"),
	}
}

func (u *impl) SubmitMint(c bCtx.Ctx, quantity int) (*mint.Snapshot, error) {
	if quantity < 1 || quantity > mint.MaxQuantity {
		return nil, domain.ErrInvalidQuantity
	}
	chainId, err := u.chain.ChainId(c)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrMintFailed)
	}
	if !chainId.IsSupported() {
		return nil, domain.ErrWrongNetwork
	}

	u.mu.Lock()
	if u.batch != nil && (u.batch.Status == mint.StatusPending || u.batch.Status == mint.StatusConfirmed) {
		u.mu.Unlock()
		return nil, domain.ErrMintInProgress
	}
	// supersede any loading or revealed batch, late completions of the old
	// generation become no-ops
	u.gen++
	gen := u.gen
	if u.seq != nil {
		u.seq.cancel()
	}
	u.seq = newRevealSequencer(u.settleDelay, u.effectDuration, u.events, u.origin)
	requestId := uuid.NewString()
	u.batch = &mint.Batch{
		RequestId: requestId,
		Quantity:  quantity,
		Status:    mint.StatusPending,
		ChainId:   chainId,
	}
	u.mu.Unlock()

	c = bCtx.WithValue(c, "mintRequestId", requestId)
	defer u.met.BumpTime("submit.time").End()

	// read the balance before submission, the derived token range is offset
	// from it
	preBal, err := u.chain.BalanceOf(c, u.account)
	if err != nil {
		return nil, u.fail(c, gen, err)
	}
	txHash, err := u.chain.Mint(c, int64(quantity))
	if err != nil {
		return nil, u.fail(c, gen, err)
	}
	u.mu.Lock()
	if u.gen == gen {
		u.batch.TxHash = txHash
	}
	u.mu.Unlock()
	if err := u.chain.WaitConfirmed(c, txHash, u.confirmations); err != nil {
		return nil, u.fail(c, gen, err)
	}
	u.mu.Lock()
	if u.gen == gen {
		u.batch.Status = mint.StatusConfirmed
	}
	u.mu.Unlock()

	items, err := u.deriveItems(c, preBal, quantity)
	if err != nil {
		// the mint itself confirmed, keep the batch and mark it failed
		u.met.BumpSum("derive.err", 1)
		c.WithField("err", err).Error("failed to derive minted tokens")
		u.mu.Lock()
		if u.gen == gen {
			u.batch.Status = mint.StatusFailed
			u.seq.cancel()
		}
		u.mu.Unlock()
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrMintFailed)
	}

	u.mu.Lock()
	if u.gen != gen {
		u.mu.Unlock()
		return nil, domain.ErrMintInProgress
	}
	u.batch.Items = items
	// preloading starts right away, confirmed without loading is never observable
	u.batch.Status = mint.StatusLoading
	u.seq.arm(u.revealTimeout, func() { u.onRevealTimeout(gen) })
	snap := u.snapshotLocked()
	u.mu.Unlock()

	refs := make([]string, len(items))
	for i, item := range items {
		refs[i] = item.ContentRef
	}
	// preloading outlives the request, give it a fresh context
	loadCtx := bCtx.WithValue(bCtx.Background(), "mintRequestId", requestId)
	u.tracker.startBatch(loadCtx, gen, refs, u.onItemDone)

	u.met.BumpSum("submit.ok", 1)
	return snap, nil
}

func (u *impl) GetBatchState(c bCtx.Ctx) *mint.Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *impl) MarkSeen(c bCtx.Ctx, index int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.batch == nil {
		return domain.ErrNotFound
	}
	if index < 0 || index >= len(u.batch.Items) {
		return domain.ErrBadParamInput
	}
	item := &u.batch.Items[index]
	if item.Loaded && !item.Revealed {
		item.Revealed = true
	}
	return nil
}

// deriveItems discovers which token ids were just minted. The contract does
// not return them, they are derived from the pre-mint balance and a single
// post-mint index lookup. Concurrent mints from the same address would
// corrupt this derivation, the sandbox assumes a single-user flow.
func (u *impl) deriveItems(c bCtx.Ctx, preBal int64, quantity int) ([]mint.Item, error) {
	base, err := u.chain.TokenOfOwnerByIndex(c, u.account, preBal)
	if err != nil {
		return nil, err
	}
	items := make([]mint.Item, quantity)
	for i := range items {
		tokenId := base + domain.TokenId(i)
		uri, err := u.chain.TokenURI(c, tokenId)
		if err != nil {
			return nil, err
		}
		items[i] = mint.Item{TokenId: tokenId, ContentRef: uri}
	}
	return items, nil
}

// fail reports a submission or confirmation error. No batch state is
// retained, the coordinator returns to idle.
func (u *impl) fail(c bCtx.Ctx, gen uint64, err error) error {
	u.met.BumpSum("submit.err", 1)
	c.WithField("err", err).Error("mint failed")
	u.mu.Lock()
	if u.gen == gen {
		u.batch = nil
		u.seq.cancel()
	}
	u.mu.Unlock()
	return xerrors.Errorf("%v: %w", err, domain.ErrMintFailed)
}

// onItemDone applies one preload completion. Completions tagged with a
// superseded generation are discarded before touching any state.
func (u *impl) onItemDone(gen uint64, index int, err error) {
	u.mu.Lock()
	if gen != u.gen || u.batch == nil {
		u.mu.Unlock()
		u.met.BumpSum("load.stale", 1)
		return
	}
	if err != nil {
		u.mu.Unlock()
		// a failed fetch of a non-first item is not escalated, the reveal is
		// driven by the first item and the timeout
		u.met.BumpSum("load.err", 1)
		return
	}
	u.batch.Items[index].Loaded = true
	if index == 0 && u.seq.reveal() {
		u.batch.Status = mint.StatusRevealed
		u.batch.Items[0].Revealed = true
	}
	u.mu.Unlock()
	u.met.BumpSum("load.ok", 1)
}

func (u *impl) onRevealTimeout(gen uint64) {
	u.mu.Lock()
	if gen != u.gen || u.batch == nil {
		u.mu.Unlock()
		return
	}
	if !u.seq.reveal() {
		u.mu.Unlock()
		return
	}
	// unblock the user, the batch stays usable without a confirmed load
	u.batch.Status = mint.StatusRevealed
	u.batch.TimedOut = true
	events := u.events
	u.mu.Unlock()
	u.met.BumpSum("load.timeout", 1)
	events.LoadTimedOut()
}

func (u *impl) snapshotLocked() *mint.Snapshot {
	if u.batch == nil {
		return &mint.Snapshot{Batch: mint.Batch{Status: mint.StatusIdle}}
	}
	b := *u.batch
	b.Items = make([]mint.Item, len(u.batch.Items))
	copy(b.Items, u.batch.Items)
	return &mint.Snapshot{Batch: b}
}
