package bundle

import (
	"bytes"
	"fmt"
	"math/big"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/spokehub/dataworker/merkle"
)

// MaxRefundsPerLeaf bounds the refund list of a single leaf so it stays
// executable within the spoke pool's gas limits. Changing it changes every
// proposed root, so it is a protocol constant, not configuration.
const MaxRefundsPerLeaf = 25

// RelayerRefundRoot holds a built relayer-refund tree and its leaf sequence.
type RelayerRefundRoot struct {
	Tree   *merkle.Tree
	Leaves []RelayerRefundLeaf
}

// BuildRelayerRefundRoot aggregates valid fills into one refund per relayer
// per repayment chain. Fills within a relayer are summed in ascending fill
// amount order; refund entries within a leaf are ordered by total amount
// ascending with the relayer address as tiebreak; leaves are ordered by
// repayment chain id, split into chunks of MaxRefundsPerLeaf. A nil result
// with nil error means no refunds are owed this bundle.
func BuildRelayerRefundRoot(fillsToRefund map[RefundKey][]Fill) (*RelayerRefundRoot, error) {
	if len(fillsToRefund) == 0 {
		return nil, nil
	}

	refundsByChain := make(map[uint64][]Refund)
	for key, fills := range fillsToRefund {
		ordered := slices.Clone(fills)
		slices.SortFunc(ordered, func(a, b Fill) int {
			if c := a.FillAmount.Cmp(b.FillAmount); c != 0 {
				return c
			}
			if a.DepositID < b.DepositID {
				return -1
			}
			if a.DepositID > b.DepositID {
				return 1
			}
			return 0
		})

		total := new(big.Int)
		for _, f := range ordered {
			total.Add(total, f.FillAmount)
		}
		refundsByChain[key.RepaymentChainID] = append(refundsByChain[key.RepaymentChainID], Refund{
			Relayer: key.Relayer,
			Amount:  total,
		})
	}

	chainIDs := maps.Keys(refundsByChain)
	slices.Sort(chainIDs)

	leaves := make([]RelayerRefundLeaf, 0, len(chainIDs))
	for _, chainID := range chainIDs {
		refunds := refundsByChain[chainID]
		slices.SortFunc(refunds, func(a, b Refund) int {
			if c := a.Amount.Cmp(b.Amount); c != 0 {
				return c
			}
			return bytes.Compare(a.Relayer[:], b.Relayer[:])
		})

		for chunk := 0; chunk*MaxRefundsPerLeaf < len(refunds); chunk++ {
			end := (chunk + 1) * MaxRefundsPerLeaf
			if end > len(refunds) {
				end = len(refunds)
			}
			leaves = append(leaves, RelayerRefundLeaf{
				ChainID:    chainID,
				ChunkIndex: uint32(chunk),
				Refunds:    refunds[chunk*MaxRefundsPerLeaf : end],
			})
		}
	}

	encoded := make([][]byte, len(leaves))
	for i := range leaves {
		leaves[i].LeafID = uint32(i)
		b, err := leaves[i].Encode()
		if err != nil {
			return nil, fmt.Errorf("failed encoding relayer refund leaf %d: %w", i, err)
		}
		encoded[i] = b
	}

	tree, err := merkle.NewTree(encoded)
	if err != nil {
		return nil, err
	}

	return &RelayerRefundRoot{
		Tree:   tree,
		Leaves: leaves,
	}, nil
}
