package jobs

import (
	"context"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spokehub/dataworker/bundle"
)

type HeadReader interface {
	LatestBlock() (*big.Int, error)
}

type Proposer interface {
	Propose(ctx context.Context, scope bundle.BlockScope) (*bundle.Bundle, error)
}

type ScopeReader interface {
	LatestScope() (bundle.BlockScope, error)
}

// ProposerJob periodically proposes a bundle covering the recent event
// window of every configured chain. Ranges end a confirmation margin below
// the chain head so reorged events never enter a bundle, and start one
// block past the previously proposed range so consecutive bundles never
// settle the same events twice. The lookback only seeds the very first
// range of a chain.
type ProposerJob struct {
	proposer      Proposer
	scopes        ScopeReader
	heads         map[uint64]HeadReader
	confirmations map[uint64]uint64
	lookback      uint64
	interval      time.Duration
}

func NewProposerJob(
	proposer Proposer,
	scopes ScopeReader,
	heads map[uint64]HeadReader,
	confirmations map[uint64]uint64,
	lookback uint64,
	interval time.Duration,
) *ProposerJob {
	return &ProposerJob{
		proposer:      proposer,
		scopes:        scopes,
		heads:         heads,
		confirmations: confirmations,
		lookback:      lookback,
		interval:      interval,
	}
}

func (j *ProposerJob) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := j.propose(ctx)
			if err != nil {
				log.Err(err).Msg("Failed proposing scheduled bundle")
			}
		case <-ctx.Done():
			return
		}
	}
}

func (j *ProposerJob) propose(ctx context.Context) error {
	scope, err := j.scope()
	if err != nil {
		return err
	}
	if len(scope) == 0 {
		log.Debug().Msg("No new confirmed blocks, skipping proposal cycle")
		return nil
	}

	b, err := j.proposer.Propose(ctx, scope)
	if err != nil {
		return err
	}
	if b != nil {
		log.Info().Str("bundle", b.ID).Msg("Scheduled proposal submitted")
	}
	return nil
}

func (j *ProposerJob) scope() (bundle.BlockScope, error) {
	latest, err := j.scopes.LatestScope()
	if err != nil {
		return nil, err
	}

	scope := make(bundle.BlockScope, len(j.heads))
	for chainID, reader := range j.heads {
		head, err := reader.LatestBlock()
		if err != nil {
			return nil, err
		}

		end := head.Uint64()
		if confirmations := j.confirmations[chainID]; end > confirmations {
			end -= confirmations
		}

		start := uint64(0)
		if previous, ok := latest[chainID]; ok {
			if previous.End >= end {
				continue
			}
			start = previous.End + 1
		} else if end > j.lookback {
			start = end - j.lookback
		}
		scope[chainID] = bundle.BlockRange{Start: start, End: end}
	}
	return scope, nil
}
