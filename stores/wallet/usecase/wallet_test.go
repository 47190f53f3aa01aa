package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/domain"
	"github.com/walletsandbox/walletapi/domain/wallet"
	"github.com/walletsandbox/walletapi/domain/wallet/mocks"
)

var (
	testAccount = domain.Address("0x7acfe657cc3eadb0e0e7d144ef35eb53f302c58a")
	testPeer    = domain.Address("0x36928500bc1dcd7af6a2b4008875cc336b927d57")
)

type walletTestSuite struct {
	suite.Suite

	ctx   bCtx.Ctx
	chain *mocks.ChainService
	im    wallet.UseCase
}

func TestWalletUseCase(t *testing.T) {
	suite.Run(t, new(walletTestSuite))
}

func (s *walletTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.chain = &mocks.ChainService{}
	s.im = New(&WalletUseCaseCfg{
		Chain:   s.chain,
		Account: testAccount,
	})
}

func weiOf(ether string) *big.Int {
	v, ok := new(big.Int).SetString(ether, 10)
	if !ok {
		panic("bad wei literal: " + ether)
	}
	return v
}

func (s *walletTestSuite) TestBalanceFormatsEther() {
	s.chain.On("BalanceAt", mock.Anything, testAccount).
		Return(weiOf("1234567890123456789"), nil)

	balance, err := s.im.Balance(s.ctx, testAccount)
	s.Require().NoError(err)
	s.Equal(testAccount.ToLower(), balance.Address)
	s.Equal("1234567890123456789", balance.Wei)
	s.Equal("1.2345678901", balance.Ether)
}

func (s *walletTestSuite) TestBalanceZero() {
	s.chain.On("BalanceAt", mock.Anything, testAccount).Return(big.NewInt(0), nil)

	balance, err := s.im.Balance(s.ctx, testAccount)
	s.Require().NoError(err)
	s.Equal("0", balance.Wei)
	s.Equal("0", balance.Ether)
}

func (s *walletTestSuite) TestBalanceInvalidAddress() {
	_, err := s.im.Balance(s.ctx, "not-an-address")
	s.ErrorIs(err, domain.ErrInvalidAddress)
	s.chain.AssertNotCalled(s.T(), "BalanceAt", mock.Anything, mock.Anything)
}

func (s *walletTestSuite) TestTransfer() {
	s.chain.On("ChainId", mock.Anything).Return(domain.ChainId(4), nil)
	s.chain.On("BalanceAt", mock.Anything, testAccount).
		Return(weiOf("1000000000000000000"), nil)
	s.chain.On("SendNative", mock.Anything, testPeer, mock.MatchedBy(func(v *big.Int) bool {
		return v.String() == "500000000000000000"
	})).Return(domain.TxHash("0xdead"), nil)
	s.chain.On("WaitConfirmed", mock.Anything, domain.TxHash("0xdead"), uint64(1)).Return(nil)

	receipt, err := s.im.Transfer(s.ctx, testPeer, "0.5")
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xdead"), receipt.TxHash)
	s.Equal(testPeer.ToLower(), receipt.To)
	s.Equal("0.5", receipt.Ether)
}

func (s *walletTestSuite) TestTransferInsufficientFunds() {
	s.chain.On("ChainId", mock.Anything).Return(domain.ChainId(4), nil)
	s.chain.On("BalanceAt", mock.Anything, testAccount).
		Return(weiOf("400000000000000000"), nil)

	_, err := s.im.Transfer(s.ctx, testPeer, "0.5")
	s.ErrorIs(err, domain.ErrInsufficientFunds)
	s.chain.AssertNotCalled(s.T(), "SendNative", mock.Anything, mock.Anything, mock.Anything)
}

func (s *walletTestSuite) TestTransferWrongNetwork() {
	s.chain.On("ChainId", mock.Anything).Return(domain.ChainId(1), nil)

	_, err := s.im.Transfer(s.ctx, testPeer, "0.5")
	s.ErrorIs(err, domain.ErrWrongNetwork)
	s.chain.AssertNotCalled(s.T(), "SendNative", mock.Anything, mock.Anything, mock.Anything)
}

func (s *walletTestSuite) TestTransferToZeroAddress() {
	_, err := s.im.Transfer(s.ctx, domain.EmptyAddress, "0.5")
	s.ErrorIs(err, domain.ErrInvalidAddress)
	s.chain.AssertNotCalled(s.T(), "SendNative", mock.Anything, mock.Anything, mock.Anything)
}

func (s *walletTestSuite) TestTransferBadAmount() {
	for _, amount := range []string{"", "abc", "-1", "0", "0.0000000000000000001"} {
		_, err := s.im.Transfer(s.ctx, testPeer, amount)
		s.ErrorIs(err, domain.ErrBadParamInput, "amount %q", amount)
	}
}

func (s *walletTestSuite) TestTransferNotConfirmed() {
	s.chain.On("ChainId", mock.Anything).Return(domain.ChainId(4), nil)
	s.chain.On("BalanceAt", mock.Anything, testAccount).
		Return(weiOf("1000000000000000000"), nil)
	s.chain.On("SendNative", mock.Anything, testPeer, mock.Anything).
		Return(domain.TxHash("0xdead"), nil)
	s.chain.On("WaitConfirmed", mock.Anything, domain.TxHash("0xdead"), uint64(1)).
		Return(errors.New("reverted"))

	_, err := s.im.Transfer(s.ctx, testPeer, "0.5")
	s.Error(err)
}
