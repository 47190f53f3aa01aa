package mint

import (
	"time"

	"github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/domain"
)

const (
	// MaxQuantity is the most items a single mint may request
	MaxQuantity = 5
	// RevealTimeout bounds how long the reveal waits for the first asset
	RevealTimeout = 120 * time.Second
	// EffectSettleDelay lets the reveal surface settle before the effect fires
	EffectSettleDelay = 250 * time.Millisecond
	// EffectDuration is how long the celebratory emission runs before auto-stop
	EffectDuration = time.Second
)

type Status string

const (
	StatusIdle      Status = ""
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusLoading   Status = "loading"
	StatusRevealed  Status = "revealed"
	StatusFailed    Status = "failed"
)

// Item is one minted token of a batch. Loaded and Revealed are monotonic,
// they go false to true and never revert.
type Item struct {
	TokenId    domain.TokenId `json:"tokenId"`
	ContentRef string         `json:"contentRef"`
	Loaded     bool           `json:"loaded"`
	Revealed   bool           `json:"revealed"`
}

// Batch is one submitted mint operation and its resulting items, ordered
// by on-chain token index. Items stays empty until the mint confirms.
type Batch struct {
	RequestId string         `json:"requestId"`
	Quantity  int            `json:"quantity"`
	TxHash    domain.TxHash  `json:"txHash,omitempty"`
	Status    Status         `json:"status"`
	TimedOut  bool           `json:"timedOut"`
	Items     []Item         `json:"items"`
	ChainId   domain.ChainId `json:"chainId"`
}

// Snapshot is a detached value copy of a batch safe to hand to the view layer
type Snapshot struct {
	Batch
}

// Origin is the on-screen location the celebratory effect is anchored to
type Origin struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// OriginFunc reports the current position of the reveal surface
type OriginFunc func() Origin

// EventSink receives reveal lifecycle notifications for the view layer
type EventSink interface {
	// RevealStarted fires exactly once per revealed batch
	RevealStarted(origin Origin)
	// RevealEffectEnded fires when the celebratory emission auto-stops
	RevealEffectEnded()
	// LoadTimedOut reports the soft timeout condition, the batch stays usable
	LoadTimedOut()
}

// UseCase is the coordinator surface the rest of the application calls
type UseCase interface {
	// SubmitMint submits an on-chain mint for quantity items and begins
	// asset preloading once confirmed
	SubmitMint(ctx.Ctx, int) (*Snapshot, error)
	// GetBatchState returns a read-only snapshot of the active batch
	GetBatchState(ctx.Ctx) *Snapshot
	// MarkSeen records that the user browsed to the item at index
	MarkSeen(ctx.Ctx, int) error
}
