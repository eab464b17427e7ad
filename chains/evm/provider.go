package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/spokehub/dataworker/bundle"
)

// SpokeViewProvider materializes one SpokeView per configured chain for a
// bundle's block scope. Views for different chains synchronize concurrently.
type SpokeViewProvider struct {
	clients map[uint64]EventFilterer
	spokes  map[uint64]common.Address
}

func NewSpokeViewProvider(clients map[uint64]EventFilterer, spokes map[uint64]common.Address) *SpokeViewProvider {
	return &SpokeViewProvider{
		clients: clients,
		spokes:  spokes,
	}
}

// ViewsFor builds and synchronizes a view per chain in the scope. A chain
// whose synchronization fails is returned unsynchronized rather than as an
// error, so reconciliation can name it in a stale chain state failure.
func (p *SpokeViewProvider) ViewsFor(ctx context.Context, scope bundle.BlockScope) (map[uint64]bundle.ChainStateView, error) {
	views := make(map[uint64]bundle.ChainStateView, len(scope))

	wp := pool.New().WithContext(ctx).WithMaxGoroutines(len(scope))
	for chainID, blockRange := range scope {
		client, ok := p.clients[chainID]
		if !ok {
			return nil, fmt.Errorf("no client configured for chain %d", chainID)
		}

		view := NewSpokeView(chainID, p.spokes[chainID], client)
		views[chainID] = view

		blockRange := blockRange
		wp.Go(func(ctx context.Context) error {
			err := view.Sync(ctx, blockRange)
			if err != nil {
				log.Warn().Uint64("chain", view.ChainID()).Msgf("Failed synchronizing spoke view: %s", err)
			}
			return nil
		})
	}

	err := wp.Wait()
	if err != nil {
		return nil, err
	}
	return views, nil
}
