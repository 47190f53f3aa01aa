package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/log"
	"github.com/walletsandbox/walletapi/domain"
)

var (
	ErrTxReverted = errors.New("transaction reverted")
	ErrTxDropped  = errors.New("transaction dropped")
)

const receiptPollInterval = time.Second

type ClientCfg struct {
	RpcUrl string
	// PrivateKey is the hex encoded sandbox signer key
	PrivateKey string
}

// Client wraps a single-network ethclient with the sandbox signer.
type Client interface {
	ChainId(bCtx.Ctx) (domain.ChainId, error)
	Account() domain.Address
	BalanceAt(bCtx.Ctx, domain.Address) (*big.Int, error)
	Call(bCtx.Ctx, common.Address, abi.ABI, string, ...interface{}) ([]interface{}, error)
	Transact(bCtx.Ctx, common.Address, *big.Int, []byte) (domain.TxHash, error)
	WaitMined(bCtx.Ctx, domain.TxHash, uint64) error
}

type clientImpl struct {
	client  *ethclient.Client
	key     *ecdsa.PrivateKey
	account common.Address
	chainId *big.Int
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	key, err := crypto.HexToECDSA(cfg.PrivateKey)
	if err != nil {
		ctx.WithField("err", err).Error("invalid signer key")
		return nil, err
	}
	chainId, err := client.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("failed to read chain id")
		return nil, err
	}
	return &clientImpl{
		client:  client,
		key:     key,
		account: crypto.PubkeyToAddress(key.PublicKey),
		chainId: chainId,
	}, nil
}

func (c *clientImpl) ChainId(ctx bCtx.Ctx) (domain.ChainId, error) {
	return domain.ChainId(c.chainId.Int64()), nil
}

func (c *clientImpl) Account() domain.Address {
	return domain.Address(c.account.Hex()).ToLower()
}

func (c *clientImpl) BalanceAt(ctx bCtx.Ctx, addr domain.Address) (*big.Int, error) {
	bal, err := c.client.BalanceAt(ctx, common.HexToAddress(string(addr)), nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": addr,
		}).Error("client.BalanceAt failed")
		return nil, err
	}
	return bal, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, to common.Address, value *big.Int, data []byte) (domain.TxHash, error) {
	nonce, err := c.client.PendingNonceAt(ctx, c.account)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", err
	}
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", err
	}
	gasLimit, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     c.account,
		To:       &to,
		Value:    value,
		Data:     data,
		GasPrice: gasPrice,
	})
	if err != nil {
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return "", err
	}
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.NewEIP155Signer(c.chainId), c.key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return "", err
	}
	if err := c.client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"hash": signed.Hash().Hex(),
		}).Error("client.SendTransaction failed")
		return "", err
	}
	return domain.TxHash(signed.Hash().Hex()), nil
}

// WaitMined polls for the transaction receipt until it has the requested
// number of confirmations. The given ctx bounds the wait.
func (c *clientImpl) WaitMined(ctx bCtx.Ctx, hash domain.TxHash, confirmations uint64) error {
	txHash := common.HexToHash(string(hash))
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()
	for {
		receipt, err := c.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return ErrTxReverted
			}
			head, err := c.client.BlockNumber(ctx)
			if err != nil {
				return err
			}
			if head+1 >= receipt.BlockNumber.Uint64()+confirmations {
				return nil
			}
		} else if err != ethereum.NotFound {
			ctx.WithFields(log.Fields{
				"err":  err,
				"hash": hash,
			}).Warn("failed to fetch receipt")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
