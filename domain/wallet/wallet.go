package wallet

import (
	"math/big"

	"github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/domain"
)

// Balance is a native token balance formatted for display
type Balance struct {
	Address domain.Address `json:"address"`
	Wei     string         `json:"wei"`
	Ether   string         `json:"ether"`
}

// TransferReceipt reports a confirmed native transfer
type TransferReceipt struct {
	TxHash domain.TxHash  `json:"txHash"`
	To     domain.Address `json:"to"`
	Ether  string         `json:"ether"`
}

// UseCase covers the overview and send applets
type UseCase interface {
	Balance(ctx.Ctx, domain.Address) (*Balance, error)
	Transfer(ctx.Ctx, domain.Address, string) (*TransferReceipt, error)
}

// ChainService is the on-chain surface the wallet store depends on
type ChainService interface {
	ChainId(ctx.Ctx) (domain.ChainId, error)
	BalanceAt(ctx.Ctx, domain.Address) (*big.Int, error)
	SendNative(ctx.Ctx, domain.Address, *big.Int) (domain.TxHash, error)
	WaitConfirmed(ctx.Ctx, domain.TxHash, uint64) error
}
