package usecase

import (
	"github.com/shopspring/decimal"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/metrics"
	"github.com/walletsandbox/walletapi/base/validator"
	"github.com/walletsandbox/walletapi/domain"
	"github.com/walletsandbox/walletapi/domain/wallet"
)

// displayDecimals caps the fractional digits of formatted ether amounts
const displayDecimals = 10

const etherDecimals = 18

type WalletUseCaseCfg struct {
	Chain   wallet.ChainService
	Account domain.Address

	// optional, defaults to 1
	Confirmations uint64
}

type impl struct {
	chain         wallet.ChainService
	account       domain.Address
	confirmations uint64
	met           metrics.Service
}

func New(cfg *WalletUseCaseCfg) wallet.UseCase {
	confirmations := cfg.Confirmations
	if confirmations == 0 {
		confirmations = 1
	}
	return &impl{
		chain:         cfg.Chain,
		account:       cfg.Account,
		confirmations: confirmations,
		met:           metrics.New("wallet"),
	}
}

func (u *impl) Balance(c bCtx.Ctx, address domain.Address) (*wallet.Balance, error) {
	if !validator.IsValidAddress(string(address)) {
		return nil, domain.ErrInvalidAddress
	}

	wei, err := u.chain.BalanceAt(c, address)
	if err != nil {
		u.met.BumpSum("balance.err", 1)
		c.WithField("err", err).Error("failed to get balance")
		return nil, err
	}

	ether := decimal.NewFromBigInt(wei, -etherDecimals)
	return &wallet.Balance{
		Address: address.ToLower(),
		Wei:     wei.String(),
		Ether:   ether.Truncate(displayDecimals).String(),
	}, nil
}

func (u *impl) Transfer(c bCtx.Ctx, to domain.Address, amount string) (*wallet.TransferReceipt, error) {
	if !validator.IsValidAddress(string(to)) || to.Equals(domain.EmptyAddress) {
		return nil, domain.ErrInvalidAddress
	}

	ether, err := decimal.NewFromString(amount)
	if err != nil || !ether.IsPositive() {
		return nil, domain.ErrBadParamInput
	}
	weiDec := ether.Mul(decimal.NewFromBigInt(domain.WeiPerEther, 0))
	if !weiDec.Equal(weiDec.Truncate(0)) {
		// finer than one wei cannot go on chain
		return nil, domain.ErrBadParamInput
	}
	wei := weiDec.BigInt()

	chainId, err := u.chain.ChainId(c)
	if err != nil {
		return nil, err
	}
	if !chainId.IsSupported() {
		return nil, domain.ErrWrongNetwork
	}

	balance, err := u.chain.BalanceAt(c, u.account)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(wei) < 0 {
		return nil, domain.ErrInsufficientFunds
	}

	defer u.met.BumpTime("transfer.time").End()
	txHash, err := u.chain.SendNative(c, to, wei)
	if err != nil {
		u.met.BumpSum("transfer.err", 1)
		c.WithField("err", err).Error("failed to send transfer")
		return nil, err
	}
	if err := u.chain.WaitConfirmed(c, txHash, u.confirmations); err != nil {
		u.met.BumpSum("transfer.err", 1)
		c.WithField("err", err).Error("transfer not confirmed")
		return nil, err
	}

	u.met.BumpSum("transfer.ok", 1)
	return &wallet.TransferReceipt{
		TxHash: txHash,
		To:     to.ToLower(),
		Ether:  ether.String(),
	}, nil
}
