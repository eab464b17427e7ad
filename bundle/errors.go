package bundle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// StaleChainStateError is returned when a chain view has not caught up to
// its chain head. The current pass is aborted; callers retry after the named
// chain resynchronizes.
type StaleChainStateError struct {
	ChainID uint64
}

func (e *StaleChainStateError) Error() string {
	return fmt.Sprintf("chain %d state is not synchronized", e.ChainID)
}

// RootMismatchError reports which of a proposal's roots diverged from the
// locally recomputed ones. All three roots are always compared; Mismatched
// never has fewer entries than the actual divergences.
type RootMismatchError struct {
	BundleID   string
	Mismatched []RootType
}

func (e *RootMismatchError) Error() string {
	return fmt.Sprintf("bundle %s root mismatch: %v", e.BundleID, e.Mismatched)
}

// ProofConstructionError is returned when a persisted leaf sequence cannot
// reproduce the root it was stored with. It is scoped to one leaf set and
// never blocks sibling leaves of other root types.
type ProofConstructionError struct {
	RootType RootType
	Want     common.Hash
	Got      common.Hash
}

func (e *ProofConstructionError) Error() string {
	return fmt.Sprintf("%s leaves do not reproduce stored root: want %s, got %s", e.RootType, e.Want, e.Got)
}
