package bundle

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// fixedPoint is the scaling factor for fee percentages. A fee of 1%
// is represented as 10^16.
var fixedPoint = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Deposit is a user intent to move funds from an origin chain to a
// destination chain, uniquely identified by (OriginChainID, DepositID).
// Immutable once observed.
type Deposit struct {
	OriginChainID      uint64         `json:"originChainId"`
	DestinationChainID uint64         `json:"destinationChainId"`
	DepositID          uint64         `json:"depositId"`
	Depositor          common.Address `json:"depositor"`
	Recipient          common.Address `json:"recipient"`
	OriginToken        common.Address `json:"originToken"`
	DestinationToken   common.Address `json:"destinationToken"`
	Amount             *big.Int       `json:"amount"`
	RelayerFeePct      *big.Int       `json:"relayerFeePct"`
	RealizedLpFeePct   *big.Int       `json:"realizedLpFeePct"`
}

// Fill is a relayer's record of advancing funds for a deposit, observed on
// the destination chain. The economic fields mirror the deposit it claims
// to satisfy and are used for structural validity matching.
type Fill struct {
	OriginChainID      uint64         `json:"originChainId"`
	DestinationChainID uint64         `json:"destinationChainId"`
	DepositID          uint64         `json:"depositId"`
	RepaymentChainID   uint64         `json:"repaymentChainId"`
	Relayer            common.Address `json:"relayer"`
	Recipient          common.Address `json:"recipient"`
	DestinationToken   common.Address `json:"destinationToken"`
	Amount             *big.Int       `json:"amount"`
	FillAmount         *big.Int       `json:"fillAmount"`
	RelayerFeePct      *big.Int       `json:"relayerFeePct"`
	RealizedLpFeePct   *big.Int       `json:"realizedLpFeePct"`
	IsSlowRelay        bool           `json:"isSlowRelay"`
}

// UnfilledDeposit pairs a deposit with its remaining unfilled amount. It is
// a derived view recomputed on every reconciliation pass, never stored.
type UnfilledDeposit struct {
	Deposit        Deposit  `json:"deposit"`
	UnfilledAmount *big.Int `json:"unfilledAmount"`
}

// RelayData is the slow-relay leaf: a flat projection of an unfilled deposit
// carrying everything the spoke pool needs to authorize a slow execution.
type RelayData struct {
	Depositor          common.Address `json:"depositor"`
	Recipient          common.Address `json:"recipient"`
	DestinationToken   common.Address `json:"destinationToken"`
	Amount             *big.Int       `json:"amount"`
	OriginChainID      uint64         `json:"originChainId"`
	DestinationChainID uint64         `json:"destinationChainId"`
	RealizedLpFeePct   *big.Int       `json:"realizedLpFeePct"`
	RelayerFeePct      *big.Int       `json:"relayerFeePct"`
	DepositID          uint64         `json:"depositId"`
}

// Refund is one relayer's total refund on a repayment chain.
type Refund struct {
	Relayer common.Address `json:"relayer"`
	Amount  *big.Int       `json:"amount"`
}

// RelayerRefundLeaf aggregates the refunds owed on one repayment chain.
// A chain with more than MaxRefundsPerLeaf refunds is split into several
// leaves with consecutive chunk indexes.
type RelayerRefundLeaf struct {
	ChainID    uint64   `json:"chainId"`
	LeafID     uint32   `json:"leafId"`
	ChunkIndex uint32   `json:"chunkIndex"`
	Refunds    []Refund `json:"refunds"`
}

// PoolRebalanceLeaf carries the hub pool's net settlement with one chain.
// Token vectors are index-aligned and sorted by L1 token address. A chain
// with more than MaxL1TokensPerLeaf tokens is split into several leaves
// sharing the chain id, distinguished by GroupIndex.
type PoolRebalanceLeaf struct {
	ChainID         uint64           `json:"chainId"`
	GroupIndex      uint32           `json:"groupIndex"`
	LeafID          uint32           `json:"leafId"`
	L1Tokens        []common.Address `json:"l1Tokens"`
	BundleLpFees    []*big.Int       `json:"bundleLpFees"`
	NetSendAmounts  []*big.Int       `json:"netSendAmounts"`
	RunningBalances []*big.Int       `json:"runningBalances"`
}

// RefundKey identifies one refund recipient on one repayment chain.
type RefundKey struct {
	RepaymentChainID uint64
	Relayer          common.Address
}

// BlockRange bounds the events of one chain included in a bundle.
type BlockRange struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
}

// BlockScope is the per-chain evaluation block ranges of one bundle.
type BlockScope map[uint64]BlockRange

// ChainStateView is the read-only capability exposed by a per-chain event
// cache. Reads are local and non-blocking; refresh cycles belong to the
// collaborator that owns the cache, gated here only by IsSynchronized.
type ChainStateView interface {
	ChainID() uint64
	IsSynchronized() bool
	DepositsForDestination(chainID uint64) []Deposit
	UnfilledAmount(deposit Deposit) *big.Int
	AllFills() []Fill
	FillMatchesDeposit(fill Fill, deposit Deposit) bool
}

// ViewProvider materializes chain state views scoped to a bundle's block
// ranges, one per configured chain.
type ViewProvider interface {
	ViewsFor(ctx context.Context, scope BlockScope) (map[uint64]ChainStateView, error)
}

// L1TokenResolver maps a token on a spoke chain to its canonical hub chain
// token for pool rebalance accounting.
type L1TokenResolver interface {
	L1Token(chainID uint64, token common.Address) (common.Address, error)
}
