package mint

import (
	"github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/domain"
)

// ChainService is the on-chain surface the coordinator depends on, backed by
// the fixed mint contract. All calls may fail with chain level errors which
// the coordinator converts to ErrMintFailed.
type ChainService interface {
	// ChainId reports the id of the connected network
	ChainId(ctx.Ctx) (domain.ChainId, error)
	// BalanceOf returns how many tokens of the contract the owner holds
	BalanceOf(ctx.Ctx, domain.Address) (int64, error)
	// Mint submits a mint transaction for quantity tokens
	Mint(ctx.Ctx, int64) (domain.TxHash, error)
	// WaitConfirmed blocks until the transaction has the given number of
	// confirmations or fails
	WaitConfirmed(ctx.Ctx, domain.TxHash, uint64) error
	// TokenOfOwnerByIndex resolves the owner's token id at an enumeration index
	TokenOfOwnerByIndex(ctx.Ctx, domain.Address, int64) (domain.TokenId, error)
	// TokenURI returns the content ref of a token's metadata
	TokenURI(ctx.Ctx, domain.TokenId) (string, error)
}
