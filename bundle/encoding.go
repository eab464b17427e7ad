package bundle

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Leaves are hashed as keccak256(abi.encode(leaf)), mirroring how the
// settlement contracts verify them. Encoding layouts are a versioned
// protocol detail: all validating parties must agree on them bit-for-bit.

var relayDataType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
	{Name: "depositor", Type: "address"},
	{Name: "recipient", Type: "address"},
	{Name: "destinationToken", Type: "address"},
	{Name: "amount", Type: "uint256"},
	{Name: "originChainId", Type: "uint256"},
	{Name: "destinationChainId", Type: "uint256"},
	{Name: "realizedLpFeePct", Type: "uint256"},
	{Name: "relayerFeePct", Type: "uint256"},
	{Name: "depositId", Type: "uint256"},
})

var relayerRefundLeafType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
	{Name: "chainId", Type: "uint256"},
	{Name: "leafId", Type: "uint32"},
	{Name: "chunkIndex", Type: "uint32"},
	{Name: "refundAddresses", Type: "address[]"},
	{Name: "refundAmounts", Type: "uint256[]"},
})

var poolRebalanceLeafType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
	{Name: "chainId", Type: "uint256"},
	{Name: "groupIndex", Type: "uint32"},
	{Name: "leafId", Type: "uint32"},
	{Name: "l1Tokens", Type: "address[]"},
	{Name: "bundleLpFees", Type: "uint256[]"},
	{Name: "netSendAmounts", Type: "int256[]"},
	{Name: "runningBalances", Type: "int256[]"},
})

var (
	relayDataArgs         = abi.Arguments{{Type: relayDataType}}
	relayerRefundLeafArgs = abi.Arguments{{Type: relayerRefundLeafType}}
	poolRebalanceLeafArgs = abi.Arguments{{Type: poolRebalanceLeafType}}
)

func (d RelayData) Encode() ([]byte, error) {
	return relayDataArgs.Pack(struct {
		Depositor          common.Address
		Recipient          common.Address
		DestinationToken   common.Address
		Amount             *big.Int
		OriginChainId      *big.Int
		DestinationChainId *big.Int
		RealizedLpFeePct   *big.Int
		RelayerFeePct      *big.Int
		DepositId          *big.Int
	}{
		Depositor:          d.Depositor,
		Recipient:          d.Recipient,
		DestinationToken:   d.DestinationToken,
		Amount:             d.Amount,
		OriginChainId:      new(big.Int).SetUint64(d.OriginChainID),
		DestinationChainId: new(big.Int).SetUint64(d.DestinationChainID),
		RealizedLpFeePct:   d.RealizedLpFeePct,
		RelayerFeePct:      d.RelayerFeePct,
		DepositId:          new(big.Int).SetUint64(d.DepositID),
	})
}

func (l RelayerRefundLeaf) Encode() ([]byte, error) {
	addresses := make([]common.Address, len(l.Refunds))
	amounts := make([]*big.Int, len(l.Refunds))
	for i, r := range l.Refunds {
		addresses[i] = r.Relayer
		amounts[i] = r.Amount
	}

	return relayerRefundLeafArgs.Pack(struct {
		ChainId         *big.Int
		LeafId          uint32
		ChunkIndex      uint32
		RefundAddresses []common.Address
		RefundAmounts   []*big.Int
	}{
		ChainId:         new(big.Int).SetUint64(l.ChainID),
		LeafId:          l.LeafID,
		ChunkIndex:      l.ChunkIndex,
		RefundAddresses: addresses,
		RefundAmounts:   amounts,
	})
}

func (l PoolRebalanceLeaf) Encode() ([]byte, error) {
	return poolRebalanceLeafArgs.Pack(struct {
		ChainId         *big.Int
		GroupIndex      uint32
		LeafId          uint32
		L1Tokens        []common.Address
		BundleLpFees    []*big.Int
		NetSendAmounts  []*big.Int
		RunningBalances []*big.Int
	}{
		ChainId:         new(big.Int).SetUint64(l.ChainID),
		GroupIndex:      l.GroupIndex,
		LeafId:          l.LeafID,
		L1Tokens:        l.L1Tokens,
		BundleLpFees:    l.BundleLpFees,
		NetSendAmounts:  l.NetSendAmounts,
		RunningBalances: l.RunningBalances,
	})
}
