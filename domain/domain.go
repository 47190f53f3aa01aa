package domain

import (
	"math/big"
	"strings"
)

type ChainId int32

// testnet chain ids the sandbox supports, plus local dev (1337)
var SupportedChainIds = map[ChainId]struct{}{
	3:    {}, // ropsten
	4:    {}, // rinkeby
	5:    {}, // goerli
	42:   {}, // kovan
	1337: {}, // local
}

func (c ChainId) IsSupported() bool {
	_, ok := SupportedChainIds[c]
	return ok
}

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId int64

func (i TokenId) BigInt() *big.Int {
	return big.NewInt(int64(i))
}

type TxHash string

func (h TxHash) String() string {
	return string(h)
}

// WeiPerEther is the wei value of one native token
var WeiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
