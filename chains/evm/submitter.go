package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/spokehub/dataworker/bundle"
	"github.com/spokehub/dataworker/chains/evm/calls/consts"
)

// TransactionSender is the outbound transaction pipeline. Signing, gas
// estimation and batching live behind it.
type TransactionSender interface {
	SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error)
}

// CalldataSubmitter translates settlement calls into ABI calldata for the
// hub and spoke pool contracts and hands them to the transaction sender.
type CalldataSubmitter struct {
	sender TransactionSender
}

func NewCalldataSubmitter(sender TransactionSender) *CalldataSubmitter {
	return &CalldataSubmitter{
		sender: sender,
	}
}

func (s *CalldataSubmitter) Submit(ctx context.Context, target common.Address, method string, args ...interface{}) (common.Hash, error) {
	data, err := s.pack(method, args...)
	if err != nil {
		return common.Hash{}, err
	}

	hash, err := s.sender.SendTransaction(ctx, target, data)
	if err != nil {
		return common.Hash{}, err
	}

	log.Debug().Str("method", method).Str("tx", hash.Hex()).Msgf("Submitted settlement transaction to %s", target.Hex())
	return hash, nil
}

func (s *CalldataSubmitter) pack(method string, args ...interface{}) ([]byte, error) {
	switch method {
	case "proposeRootBundle":
		blockNumbers, ok := args[0].([]uint64)
		if !ok {
			return nil, fmt.Errorf("proposeRootBundle expects block number list, got %T", args[0])
		}
		evaluationBlocks := make([]*big.Int, len(blockNumbers))
		for i, n := range blockNumbers {
			evaluationBlocks[i] = new(big.Int).SetUint64(n)
		}
		return consts.HubPoolABI.Pack(method, evaluationBlocks, args[1], args[2], args[3])
	case "executeSlowRelayLeaf":
		leaf, ok := args[0].(bundle.RelayData)
		if !ok {
			return nil, fmt.Errorf("executeSlowRelayLeaf expects relay data, got %T", args[0])
		}
		return consts.SpokePoolABI.Pack(method, packableRelayData(leaf), args[1])
	case "executeRelayerRefundLeaf":
		leaf, ok := args[0].(bundle.RelayerRefundLeaf)
		if !ok {
			return nil, fmt.Errorf("executeRelayerRefundLeaf expects refund leaf, got %T", args[0])
		}
		return consts.SpokePoolABI.Pack(method, packableRefundLeaf(leaf), args[1])
	case "executePoolRebalanceLeaf":
		leaf, ok := args[0].(bundle.PoolRebalanceLeaf)
		if !ok {
			return nil, fmt.Errorf("executePoolRebalanceLeaf expects rebalance leaf, got %T", args[0])
		}
		return consts.HubPoolABI.Pack(method, packableRebalanceLeaf(leaf), args[1])
	default:
		return nil, fmt.Errorf("unknown settlement method %s", method)
	}
}

// ABI packing needs struct fields matching the tuple components, with all
// uint256 values as *big.Int.

type abiRelayData struct {
	Depositor          common.Address
	Recipient          common.Address
	DestinationToken   common.Address
	Amount             *big.Int
	OriginChainId      *big.Int
	DestinationChainId *big.Int
	RealizedLpFeePct   *big.Int
	RelayerFeePct      *big.Int
	DepositId          *big.Int
}

func packableRelayData(d bundle.RelayData) abiRelayData {
	return abiRelayData{
		Depositor:          d.Depositor,
		Recipient:          d.Recipient,
		DestinationToken:   d.DestinationToken,
		Amount:             d.Amount,
		OriginChainId:      new(big.Int).SetUint64(d.OriginChainID),
		DestinationChainId: new(big.Int).SetUint64(d.DestinationChainID),
		RealizedLpFeePct:   d.RealizedLpFeePct,
		RelayerFeePct:      d.RelayerFeePct,
		DepositId:          new(big.Int).SetUint64(d.DepositID),
	}
}

type abiRefundLeaf struct {
	ChainId         *big.Int
	LeafId          uint32
	ChunkIndex      uint32
	RefundAddresses []common.Address
	RefundAmounts   []*big.Int
}

func packableRefundLeaf(l bundle.RelayerRefundLeaf) abiRefundLeaf {
	addresses := make([]common.Address, len(l.Refunds))
	amounts := make([]*big.Int, len(l.Refunds))
	for i, r := range l.Refunds {
		addresses[i] = r.Relayer
		amounts[i] = r.Amount
	}
	return abiRefundLeaf{
		ChainId:         new(big.Int).SetUint64(l.ChainID),
		LeafId:          l.LeafID,
		ChunkIndex:      l.ChunkIndex,
		RefundAddresses: addresses,
		RefundAmounts:   amounts,
	}
}

type abiRebalanceLeaf struct {
	ChainId         *big.Int
	GroupIndex      uint32
	LeafId          uint32
	L1Tokens        []common.Address
	BundleLpFees    []*big.Int
	NetSendAmounts  []*big.Int
	RunningBalances []*big.Int
}

func packableRebalanceLeaf(l bundle.PoolRebalanceLeaf) abiRebalanceLeaf {
	return abiRebalanceLeaf{
		ChainId:         new(big.Int).SetUint64(l.ChainID),
		GroupIndex:      l.GroupIndex,
		LeafId:          l.LeafID,
		L1Tokens:        l.L1Tokens,
		BundleLpFees:    l.BundleLpFees,
		NetSendAmounts:  l.NetSendAmounts,
		RunningBalances: l.RunningBalances,
	}
}
