package bundle

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/spokehub/dataworker/merkle"
)

// SlowRelayRoot holds a built slow-relay tree together with its leaf
// sequence, which later proof generation depends on.
type SlowRelayRoot struct {
	Tree   *merkle.Tree
	Leaves []RelayData
}

// BuildSlowRelayRoot flattens all unfilled deposits into RelayData leaves
// sorted by (originChainId, depositId). That pair is globally unique, so the
// leaf order is total regardless of input map iteration order. A nil result
// with nil error means the bundle has no slow relays.
func BuildSlowRelayRoot(unfilled map[uint64][]UnfilledDeposit) (*SlowRelayRoot, error) {
	leaves := make([]RelayData, 0)
	for _, deposits := range unfilled {
		for _, d := range deposits {
			leaves = append(leaves, RelayData{
				Depositor:          d.Deposit.Depositor,
				Recipient:          d.Deposit.Recipient,
				DestinationToken:   d.Deposit.DestinationToken,
				Amount:             d.Deposit.Amount,
				OriginChainID:      d.Deposit.OriginChainID,
				DestinationChainID: d.Deposit.DestinationChainID,
				RealizedLpFeePct:   d.Deposit.RealizedLpFeePct,
				RelayerFeePct:      d.Deposit.RelayerFeePct,
				DepositID:          d.Deposit.DepositID,
			})
		}
	}
	if len(leaves) == 0 {
		return nil, nil
	}

	slices.SortFunc(leaves, func(a, b RelayData) int {
		if a.OriginChainID != b.OriginChainID {
			if a.OriginChainID < b.OriginChainID {
				return -1
			}
			return 1
		}
		if a.DepositID < b.DepositID {
			return -1
		}
		if a.DepositID > b.DepositID {
			return 1
		}
		return 0
	})

	encoded := make([][]byte, len(leaves))
	for i, l := range leaves {
		b, err := l.Encode()
		if err != nil {
			return nil, fmt.Errorf("failed encoding slow relay leaf %d: %w", i, err)
		}
		encoded[i] = b
	}

	tree, err := merkle.NewTree(encoded)
	if err != nil {
		return nil, err
	}

	return &SlowRelayRoot{
		Tree:   tree,
		Leaves: leaves,
	}, nil
}
