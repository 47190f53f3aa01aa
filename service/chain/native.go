package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/domain"
	"github.com/walletsandbox/walletapi/domain/wallet"
)

// Native exposes plain value transfers over the chain client. It implements
// wallet.ChainService.
type Native struct {
	client Client
}

func NewNative(client Client) *Native {
	return &Native{client: client}
}

var _ wallet.ChainService = (*Native)(nil)

func (n *Native) ChainId(ctx bCtx.Ctx) (domain.ChainId, error) {
	return n.client.ChainId(ctx)
}

func (n *Native) BalanceAt(ctx bCtx.Ctx, addr domain.Address) (*big.Int, error) {
	return n.client.BalanceAt(ctx, addr)
}

func (n *Native) SendNative(ctx bCtx.Ctx, to domain.Address, wei *big.Int) (domain.TxHash, error) {
	return n.client.Transact(ctx, common.HexToAddress(string(to)), wei, nil)
}

func (n *Native) WaitConfirmed(ctx bCtx.Ctx, hash domain.TxHash, confirmations uint64) error {
	return n.client.WaitMined(ctx, hash, confirmations)
}
