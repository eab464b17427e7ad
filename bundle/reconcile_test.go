package bundle_test

import (
	"context"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/spokehub/dataworker/bundle"
)

type ReconcilerTestSuite struct {
	suite.Suite

	ctrl *gomock.Controller
}

func TestRunReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
}

func (s *ReconcilerTestSuite) Test_Reconcile_StaleChain() {
	views := map[uint64]bundle.ChainStateView{
		1: newChainView(s.ctrl, 1, nil, nil, true),
		2: newChainView(s.ctrl, 2, nil, nil, false),
	}

	_, err := bundle.NewReconciler(views).Reconcile(context.Background())

	var stale *bundle.StaleChainStateError
	s.ErrorAs(err, &stale)
	s.Equal(uint64(2), stale.ChainID)
}

func (s *ReconcilerTestSuite) Test_Reconcile_UnfilledDeposit() {
	d := makeDeposit(7, 100)
	views := map[uint64]bundle.ChainStateView{
		1: newChainView(s.ctrl, 1, []bundle.Deposit{d}, nil, true),
		2: newChainView(s.ctrl, 2, nil, nil, true),
	}

	res, err := bundle.NewReconciler(views).Reconcile(context.Background())

	s.Nil(err)
	s.Len(res.FillsToRefund, 0)
	s.Len(res.UnfilledDeposits[2], 1)
	s.Equal(d, res.UnfilledDeposits[2][0].Deposit)
	s.Equal(big.NewInt(100), res.UnfilledDeposits[2][0].UnfilledAmount)
}

func (s *ReconcilerTestSuite) Test_Reconcile_FilledDeposit() {
	d := makeDeposit(7, 100)
	f := makeFill(d, 100, 42)
	views := map[uint64]bundle.ChainStateView{
		1: newChainView(s.ctrl, 1, []bundle.Deposit{d}, nil, true),
		2: newChainView(s.ctrl, 2, nil, []bundle.Fill{f}, true),
	}

	res, err := bundle.NewReconciler(views).Reconcile(context.Background())

	s.Nil(err)
	s.Len(res.UnfilledDeposits, 0)

	key := bundle.RefundKey{RepaymentChainID: 42, Relayer: relayerR}
	s.Len(res.FillsToRefund, 1)
	s.Equal([]bundle.Fill{f}, res.FillsToRefund[key])
}

func (s *ReconcilerTestSuite) Test_Reconcile_PartialFill() {
	d := makeDeposit(7, 100)
	f := makeFill(d, 60, 2)
	views := map[uint64]bundle.ChainStateView{
		1: newChainView(s.ctrl, 1, []bundle.Deposit{d}, nil, true),
		2: newChainView(s.ctrl, 2, nil, []bundle.Fill{f}, true),
	}

	res, err := bundle.NewReconciler(views).Reconcile(context.Background())

	s.Nil(err)
	s.Len(res.UnfilledDeposits[2], 1)
	s.Equal(big.NewInt(40), res.UnfilledDeposits[2][0].UnfilledAmount)

	key := bundle.RefundKey{RepaymentChainID: 2, Relayer: relayerR}
	s.Equal([]bundle.Fill{f}, res.FillsToRefund[key])
}

func (s *ReconcilerTestSuite) Test_Reconcile_SlowRelayFillIgnored() {
	d := makeDeposit(7, 100)
	f := makeFill(d, 100, 2)
	f.IsSlowRelay = true
	views := map[uint64]bundle.ChainStateView{
		1: newChainView(s.ctrl, 1, []bundle.Deposit{d}, nil, true),
		2: newChainView(s.ctrl, 2, nil, []bundle.Fill{f}, true),
	}

	res, err := bundle.NewReconciler(views).Reconcile(context.Background())

	s.Nil(err)
	s.Len(res.FillsToRefund, 0)
	s.Len(res.UnfilledDeposits[2], 1)
	s.Equal(big.NewInt(100), res.UnfilledDeposits[2][0].UnfilledAmount)
}

func (s *ReconcilerTestSuite) Test_Reconcile_UnmatchedFillDropped() {
	d := makeDeposit(7, 100)
	forged := makeFill(d, 100, 2)
	forged.Amount = big.NewInt(999)
	forged.DepositID = 999
	views := map[uint64]bundle.ChainStateView{
		1: newChainView(s.ctrl, 1, []bundle.Deposit{d}, nil, true),
		2: newChainView(s.ctrl, 2, nil, []bundle.Fill{forged}, true),
	}

	res, err := bundle.NewReconciler(views).Reconcile(context.Background())

	s.Nil(err)
	s.Len(res.FillsToRefund, 0)
}

func (s *ReconcilerTestSuite) Test_Reconcile_AccumulatesFillsPerKey() {
	d1 := makeDeposit(7, 100)
	d2 := makeDeposit(8, 50)
	fills := []bundle.Fill{
		makeFill(d1, 100, 42),
		makeFill(d2, 50, 42),
	}
	views := map[uint64]bundle.ChainStateView{
		1: newChainView(s.ctrl, 1, []bundle.Deposit{d1, d2}, nil, true),
		2: newChainView(s.ctrl, 2, nil, fills, true),
	}

	res, err := bundle.NewReconciler(views).Reconcile(context.Background())

	s.Nil(err)
	key := bundle.RefundKey{RepaymentChainID: 42, Relayer: relayerR}
	s.Len(res.FillsToRefund[key], 2)
}

func (s *ReconcilerTestSuite) Test_Reconcile_OrdersOriginsAboveInt64Range() {
	d1 := makeDeposit(7, 100)
	dHuge := makeDeposit(9, 50)
	dHuge.OriginChainID = math.MaxUint64

	views := map[uint64]bundle.ChainStateView{
		1:              newChainView(s.ctrl, 1, []bundle.Deposit{d1}, nil, true),
		math.MaxUint64: newChainView(s.ctrl, math.MaxUint64, []bundle.Deposit{dHuge}, nil, true),
		2:              newChainView(s.ctrl, 2, nil, nil, true),
	}

	res, err := bundle.NewReconciler(views).Reconcile(context.Background())

	s.Nil(err)
	s.Len(res.UnfilledDeposits[2], 2)
	s.Equal(d1, res.UnfilledDeposits[2][0].Deposit)
	s.Equal(dHuge, res.UnfilledDeposits[2][1].Deposit)
}

func (s *ReconcilerTestSuite) Test_Reconcile_Deterministic() {
	d1 := makeDeposit(7, 100)
	d2 := makeDeposit(8, 50)
	f := makeFill(d1, 100, 42)
	views := map[uint64]bundle.ChainStateView{
		1: newChainView(s.ctrl, 1, []bundle.Deposit{d1, d2}, nil, true),
		2: newChainView(s.ctrl, 2, nil, []bundle.Fill{f}, true),
		3: newChainView(s.ctrl, 3, nil, nil, true),
	}

	first, err := bundle.NewReconciler(views).Reconcile(context.Background())
	s.Nil(err)
	second, err := bundle.NewReconciler(views).Reconcile(context.Background())
	s.Nil(err)

	s.Equal(first, second)
}
