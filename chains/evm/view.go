package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/spokehub/dataworker/bundle"
	"github.com/spokehub/dataworker/chains/evm/calls/consts"
	"github.com/spokehub/dataworker/chains/evm/calls/events"
)

type EventFilterer interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	LatestBlock() (*big.Int, error)
}

// SpokeView is an EVM-backed chain state view: spoke pool deposit and fill
// events inside one bundle's block range, materialized into a local cache.
// After Sync all reads are local and safe for concurrent use.
type SpokeView struct {
	chainID uint64
	spoke   common.Address
	client  EventFilterer

	deposits []bundle.Deposit
	fills    []bundle.Fill
	synced   bool
}

func NewSpokeView(chainID uint64, spoke common.Address, client EventFilterer) *SpokeView {
	return &SpokeView{
		chainID: chainID,
		spoke:   spoke,
		client:  client,
	}
}

// Sync fetches and parses the spoke pool events inside the block range. The
// view stays unsynchronized if the chain head has not reached the range end
// or the log query fails, which surfaces to callers as stale chain state.
func (v *SpokeView) Sync(ctx context.Context, blockRange bundle.BlockRange) error {
	v.synced = false
	v.deposits = nil
	v.fills = nil

	head, err := v.client.LatestBlock()
	if err != nil {
		return err
	}
	if head.Cmp(new(big.Int).SetUint64(blockRange.End)) < 0 {
		log.Warn().Uint64("chain", v.chainID).Msgf("Chain head %s below bundle range end %d", head, blockRange.End)
		return nil
	}

	q := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(blockRange.Start),
		ToBlock:   new(big.Int).SetUint64(blockRange.End),
		Addresses: []common.Address{v.spoke},
		Topics: [][]common.Hash{
			{events.FundsDepositedSig.GetTopic(), events.FilledRelaySig.GetTopic()},
		},
	}
	logs, err := v.client.FilterLogs(ctx, q)
	if err != nil {
		return err
	}

	for _, l := range logs {
		if l.Removed || len(l.Topics) == 0 {
			continue
		}

		switch l.Topics[0] {
		case events.FundsDepositedSig.GetTopic():
			d, err := v.parseDeposit(l)
			if err != nil {
				return err
			}
			v.deposits = append(v.deposits, d)
		case events.FilledRelaySig.GetTopic():
			f, err := v.parseFill(l)
			if err != nil {
				return err
			}
			v.fills = append(v.fills, f)
		}
	}

	v.synced = true
	return nil
}

func (v *SpokeView) ChainID() uint64 {
	return v.chainID
}

func (v *SpokeView) IsSynchronized() bool {
	return v.synced
}

func (v *SpokeView) DepositsForDestination(chainID uint64) []bundle.Deposit {
	deposits := make([]bundle.Deposit, 0)
	for _, d := range v.deposits {
		if d.DestinationChainID == chainID {
			deposits = append(deposits, d)
		}
	}
	return deposits
}

// UnfilledAmount returns the deposit amount minus all valid non-slow fills
// recorded for it on this chain.
func (v *SpokeView) UnfilledAmount(deposit bundle.Deposit) *big.Int {
	filled := new(big.Int)
	for _, f := range v.fills {
		if f.IsSlowRelay {
			continue
		}
		if !v.FillMatchesDeposit(f, deposit) {
			continue
		}
		filled.Add(filled, f.FillAmount)
	}
	return new(big.Int).Sub(deposit.Amount, filled)
}

func (v *SpokeView) AllFills() []bundle.Fill {
	return v.fills
}

// FillMatchesDeposit reports whether a fill structurally matches the deposit
// it claims to satisfy.
func (v *SpokeView) FillMatchesDeposit(fill bundle.Fill, deposit bundle.Deposit) bool {
	return fill.OriginChainID == deposit.OriginChainID &&
		fill.DestinationChainID == deposit.DestinationChainID &&
		fill.DepositID == deposit.DepositID &&
		fill.Recipient == deposit.Recipient &&
		fill.DestinationToken == deposit.DestinationToken &&
		fill.Amount.Cmp(deposit.Amount) == 0 &&
		fill.RelayerFeePct.Cmp(deposit.RelayerFeePct) == 0 &&
		fill.RealizedLpFeePct.Cmp(deposit.RealizedLpFeePct) == 0
}

func (v *SpokeView) parseDeposit(l types.Log) (bundle.Deposit, error) {
	if len(l.Topics) < 3 {
		return bundle.Deposit{}, fmt.Errorf("malformed FundsDeposited log, expected 3 topics, got %d", len(l.Topics))
	}

	e := &events.FundsDeposited{}
	err := consts.SpokePoolABI.UnpackIntoInterface(e, "FundsDeposited", l.Data)
	if err != nil {
		return bundle.Deposit{}, err
	}

	return bundle.Deposit{
		OriginChainID:      v.chainID,
		DestinationChainID: e.DestinationChainId.Uint64(),
		DepositID:          new(big.Int).SetBytes(l.Topics[1].Bytes()).Uint64(),
		Depositor:          common.BytesToAddress(l.Topics[2].Bytes()),
		Recipient:          e.Recipient,
		OriginToken:        e.OriginToken,
		DestinationToken:   e.DestinationToken,
		Amount:             e.Amount,
		RelayerFeePct:      e.RelayerFeePct,
		RealizedLpFeePct:   e.RealizedLpFeePct,
	}, nil
}

func (v *SpokeView) parseFill(l types.Log) (bundle.Fill, error) {
	if len(l.Topics) < 3 {
		return bundle.Fill{}, fmt.Errorf("malformed FilledRelay log, expected 3 topics, got %d", len(l.Topics))
	}

	e := &events.FilledRelay{}
	err := consts.SpokePoolABI.UnpackIntoInterface(e, "FilledRelay", l.Data)
	if err != nil {
		return bundle.Fill{}, err
	}

	return bundle.Fill{
		OriginChainID:      e.OriginChainId.Uint64(),
		DestinationChainID: v.chainID,
		DepositID:          new(big.Int).SetBytes(l.Topics[1].Bytes()).Uint64(),
		RepaymentChainID:   e.RepaymentChainId.Uint64(),
		Relayer:            common.BytesToAddress(l.Topics[2].Bytes()),
		Recipient:          e.Recipient,
		DestinationToken:   e.DestinationToken,
		Amount:             e.Amount,
		FillAmount:         e.FillAmount,
		RelayerFeePct:      e.RelayerFeePct,
		RealizedLpFeePct:   e.RealizedLpFeePct,
		IsSlowRelay:        e.IsSlowRelay,
	}, nil
}
