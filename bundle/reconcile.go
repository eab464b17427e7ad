package bundle

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ReconciliationResult is the normalized output of one reconciliation pass:
// unfilled deposits keyed by destination chain and valid fills keyed by
// (repayment chain, relayer). It is recomputed fresh on every pass.
type ReconciliationResult struct {
	UnfilledDeposits map[uint64][]UnfilledDeposit
	FillsToRefund    map[RefundKey][]Fill
}

// Reconciler cross-references deposits against fills over every ordered
// chain pair in the active set.
type Reconciler struct {
	views map[uint64]ChainStateView
}

func NewReconciler(views map[uint64]ChainStateView) *Reconciler {
	return &Reconciler{
		views: views,
	}
}

type originEvents struct {
	originID uint64
	unfilled map[uint64][]UnfilledDeposit
	fills    map[RefundKey][]Fill
}

// Reconcile classifies every deposit as filled or unfilled and attributes
// every valid fill to a refund recipient and repayment chain. Per-origin
// queries fan out concurrently, but results are merged in ascending origin
// chain order so the output is identical for identical inputs.
func (r *Reconciler) Reconcile(ctx context.Context) (*ReconciliationResult, error) {
	chainIDs := maps.Keys(r.views)
	slices.Sort(chainIDs)

	for _, chainID := range chainIDs {
		if !r.views[chainID].IsSynchronized() {
			return nil, &StaleChainStateError{ChainID: chainID}
		}
	}

	p := pool.NewWithResults[*originEvents]().WithContext(ctx).WithMaxGoroutines(len(chainIDs))
	for _, originID := range chainIDs {
		originID := originID
		p.Go(func(ctx context.Context) (*originEvents, error) {
			return r.reconcileOrigin(originID, chainIDs), nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	// completion order is not deterministic, merge in origin chain order
	slices.SortFunc(results, func(a, b *originEvents) int {
		if a.originID < b.originID {
			return -1
		}
		if a.originID > b.originID {
			return 1
		}
		return 0
	})

	out := &ReconciliationResult{
		UnfilledDeposits: make(map[uint64][]UnfilledDeposit),
		FillsToRefund:    make(map[RefundKey][]Fill),
	}
	for _, res := range results {
		for destination, deposits := range res.unfilled {
			out.UnfilledDeposits[destination] = append(out.UnfilledDeposits[destination], deposits...)
		}
		for key, fills := range res.fills {
			out.FillsToRefund[key] = append(out.FillsToRefund[key], fills...)
		}
	}

	log.Debug().
		Int("chains", len(chainIDs)).
		Int("unfilledDestinations", len(out.UnfilledDeposits)).
		Int("refundKeys", len(out.FillsToRefund)).
		Msg("Reconciliation pass finished")
	return out, nil
}

func (r *Reconciler) reconcileOrigin(originID uint64, chainIDs []uint64) *originEvents {
	res := &originEvents{
		originID: originID,
		unfilled: make(map[uint64][]UnfilledDeposit),
		fills:    make(map[RefundKey][]Fill),
	}

	origin := r.views[originID]
	for _, destinationID := range chainIDs {
		if destinationID == originID {
			continue
		}
		destination := r.views[destinationID]

		deposits := origin.DepositsForDestination(destinationID)
		for _, deposit := range deposits {
			remainder := destination.UnfilledAmount(deposit)
			if remainder.Sign() <= 0 {
				continue
			}
			res.unfilled[destinationID] = append(res.unfilled[destinationID], UnfilledDeposit{
				Deposit:        deposit,
				UnfilledAmount: remainder,
			})
		}

		for _, fill := range destination.AllFills() {
			if fill.IsSlowRelay {
				continue
			}
			if fill.OriginChainID != originID {
				continue
			}

			// first match wins, unmatched fills are dropped silently
			for _, deposit := range deposits {
				if !destination.FillMatchesDeposit(fill, deposit) {
					continue
				}
				key := RefundKey{
					RepaymentChainID: fill.RepaymentChainID,
					Relayer:          fill.Relayer,
				}
				res.fills[key] = append(res.fills[key], fill)
				break
			}
		}
	}
	return res
}
