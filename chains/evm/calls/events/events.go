// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	FundsDepositedSig EventSig = "FundsDeposited(uint256,uint256,uint256,uint256,address,address,address,uint32,address)"
	FilledRelaySig    EventSig = "FilledRelay(uint256,uint256,uint256,uint256,uint256,uint256,address,address,bool,uint32,address)"
)

// FundsDeposited holds the non-indexed fields of a spoke pool deposit
// event. DepositId and Depositor are indexed and read from topics.
type FundsDeposited struct {
	Amount             *big.Int
	DestinationChainId *big.Int
	RelayerFeePct      *big.Int
	RealizedLpFeePct   *big.Int
	OriginToken        common.Address
	DestinationToken   common.Address
	Recipient          common.Address

	DepositId uint32
	Depositor common.Address
}

// FilledRelay holds the non-indexed fields of a spoke pool fill event.
// DepositId and Relayer are indexed and read from topics.
type FilledRelay struct {
	Amount           *big.Int
	FillAmount       *big.Int
	RepaymentChainId *big.Int
	OriginChainId    *big.Int
	RelayerFeePct    *big.Int
	RealizedLpFeePct *big.Int
	DestinationToken common.Address
	Recipient        common.Address
	IsSlowRelay      bool

	DepositId uint32
	Relayer   common.Address
}
