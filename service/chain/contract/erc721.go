package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/walletsandbox/walletapi/base/abi"
	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/log"
	"github.com/walletsandbox/walletapi/domain"
	"github.com/walletsandbox/walletapi/domain/mint"
	"github.com/walletsandbox/walletapi/service/chain"
)

// Erc721 binds the fixed mint contract to the chain client. It implements
// mint.ChainService.
type Erc721 struct {
	client  chain.Client
	address common.Address
	abi     ethabi.ABI
}

func NewErc721(client chain.Client, address domain.Address) *Erc721 {
	return &Erc721{
		client:  client,
		address: common.HexToAddress(string(address)),
		abi:     baseabi.ERC721MintableABI,
	}
}

var _ mint.ChainService = (*Erc721)(nil)

func (e *Erc721) ChainId(ctx bCtx.Ctx) (domain.ChainId, error) {
	return e.client.ChainId(ctx)
}

func (e *Erc721) BalanceOf(ctx bCtx.Ctx, owner domain.Address) (int64, error) {
	unpacked, err := e.client.Call(ctx, e.address, e.abi, "balanceOf", common.HexToAddress(string(owner)))
	if err != nil {
		return 0, err
	}
	return unpacked[0].(*big.Int).Int64(), nil
}

func (e *Erc721) Mint(ctx bCtx.Ctx, quantity int64) (domain.TxHash, error) {
	data, err := e.abi.Pack("mint", big.NewInt(quantity))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"quantity": quantity,
		}).Error("abi.Pack failed")
		return "", err
	}
	return e.client.Transact(ctx, e.address, nil, data)
}

func (e *Erc721) WaitConfirmed(ctx bCtx.Ctx, hash domain.TxHash, confirmations uint64) error {
	return e.client.WaitMined(ctx, hash, confirmations)
}

func (e *Erc721) TokenOfOwnerByIndex(ctx bCtx.Ctx, owner domain.Address, index int64) (domain.TokenId, error) {
	unpacked, err := e.client.Call(ctx, e.address, e.abi, "tokenOfOwnerByIndex", common.HexToAddress(string(owner)), big.NewInt(index))
	if err != nil {
		return 0, err
	}
	return domain.TokenId(unpacked[0].(*big.Int).Int64()), nil
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, tokenId domain.TokenId) (string, error) {
	unpacked, err := e.client.Call(ctx, e.address, e.abi, "tokenURI", tokenId.BigInt())
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}
