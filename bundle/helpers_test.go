package bundle_test

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/mock/gomock"

	"github.com/spokehub/dataworker/bundle"
	mock_bundle "github.com/spokehub/dataworker/bundle/mock"
)

var (
	depositor = common.HexToAddress("0x1111111111111111111111111111111111111111")
	recipient = common.HexToAddress("0x2222222222222222222222222222222222222222")
	tokenB    = common.HexToAddress("0x3333333333333333333333333333333333333333")
	relayerR  = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

// newChainView wires a mock chain state view over static deposit and fill
// slices. Deposits are the ones originating on the chain, fills the ones
// observed on it as a destination.
func newChainView(
	ctrl *gomock.Controller,
	chainID uint64,
	deposits []bundle.Deposit,
	fills []bundle.Fill,
	synced bool,
) *mock_bundle.MockChainStateView {
	v := mock_bundle.NewMockChainStateView(ctrl)
	v.EXPECT().ChainID().Return(chainID).AnyTimes()
	v.EXPECT().IsSynchronized().Return(synced).AnyTimes()
	v.EXPECT().DepositsForDestination(gomock.Any()).DoAndReturn(func(destination uint64) []bundle.Deposit {
		out := []bundle.Deposit{}
		for _, d := range deposits {
			if d.DestinationChainID == destination {
				out = append(out, d)
			}
		}
		return out
	}).AnyTimes()
	v.EXPECT().AllFills().Return(fills).AnyTimes()
	v.EXPECT().FillMatchesDeposit(gomock.Any(), gomock.Any()).DoAndReturn(func(f bundle.Fill, d bundle.Deposit) bool {
		return f.OriginChainID == d.OriginChainID &&
			f.DepositID == d.DepositID &&
			f.Amount.Cmp(d.Amount) == 0 &&
			f.Recipient == d.Recipient &&
			f.DestinationToken == d.DestinationToken
	}).AnyTimes()
	v.EXPECT().UnfilledAmount(gomock.Any()).DoAndReturn(func(d bundle.Deposit) *big.Int {
		remainder := new(big.Int).Set(d.Amount)
		for _, f := range fills {
			if f.IsSlowRelay || f.OriginChainID != d.OriginChainID || f.DepositID != d.DepositID {
				continue
			}
			remainder.Sub(remainder, f.FillAmount)
		}
		return remainder
	}).AnyTimes()
	return v
}

// makeDeposit builds a chain 1 to chain 2 deposit.
func makeDeposit(depositID uint64, amount int64) bundle.Deposit {
	return bundle.Deposit{
		OriginChainID:      1,
		DestinationChainID: 2,
		DepositID:          depositID,
		Depositor:          depositor,
		Recipient:          recipient,
		DestinationToken:   tokenB,
		Amount:             big.NewInt(amount),
		RelayerFeePct:      big.NewInt(0),
		RealizedLpFeePct:   big.NewInt(0),
	}
}

// makeFill builds a structurally valid fill for the given deposit.
func makeFill(d bundle.Deposit, fillAmount int64, repaymentChainID uint64) bundle.Fill {
	return bundle.Fill{
		OriginChainID:      d.OriginChainID,
		DestinationChainID: d.DestinationChainID,
		DepositID:          d.DepositID,
		RepaymentChainID:   repaymentChainID,
		Relayer:            relayerR,
		Recipient:          d.Recipient,
		DestinationToken:   d.DestinationToken,
		Amount:             d.Amount,
		FillAmount:         big.NewInt(fillAmount),
		RelayerFeePct:      d.RelayerFeePct,
		RealizedLpFeePct:   d.RealizedLpFeePct,
	}
}
