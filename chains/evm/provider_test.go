package evm_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/spokehub/dataworker/bundle"
	"github.com/spokehub/dataworker/chains/evm"
	mock_evm "github.com/spokehub/dataworker/chains/evm/mock"
)

type SpokeViewProviderTestSuite struct {
	suite.Suite

	ctrl *gomock.Controller
}

func TestRunSpokeViewProviderTestSuite(t *testing.T) {
	suite.Run(t, new(SpokeViewProviderTestSuite))
}

func (s *SpokeViewProviderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
}

func (s *SpokeViewProviderTestSuite) Test_ViewsFor_MissingClient() {
	provider := evm.NewSpokeViewProvider(map[uint64]evm.EventFilterer{}, nil)

	_, err := provider.ViewsFor(context.Background(), bundle.BlockScope{1: {End: 10}})

	s.NotNil(err)
}

func (s *SpokeViewProviderTestSuite) Test_ViewsFor_SynchronizesEveryChain() {
	c1 := mock_evm.NewMockEventFilterer(s.ctrl)
	c1.EXPECT().LatestBlock().Return(big.NewInt(300), nil)
	c1.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{}, nil)
	c2 := mock_evm.NewMockEventFilterer(s.ctrl)
	c2.EXPECT().LatestBlock().Return(big.NewInt(500), nil)
	c2.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{}, nil)

	provider := evm.NewSpokeViewProvider(
		map[uint64]evm.EventFilterer{1: c1, 2: c2},
		map[uint64]common.Address{1: spokeAddress, 2: spokeAddress},
	)

	views, err := provider.ViewsFor(context.Background(), bundle.BlockScope{
		1: {Start: 100, End: 200},
		2: {Start: 300, End: 400},
	})

	s.Nil(err)
	s.Len(views, 2)
	s.True(views[1].IsSynchronized())
	s.True(views[2].IsSynchronized())
}

func (s *SpokeViewProviderTestSuite) Test_ViewsFor_FailedChainReturnedUnsynchronized() {
	c1 := mock_evm.NewMockEventFilterer(s.ctrl)
	c1.EXPECT().LatestBlock().Return(big.NewInt(300), nil)
	c1.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{}, nil)
	c2 := mock_evm.NewMockEventFilterer(s.ctrl)
	c2.EXPECT().LatestBlock().Return(nil, fmt.Errorf("rpc unavailable"))

	provider := evm.NewSpokeViewProvider(
		map[uint64]evm.EventFilterer{1: c1, 2: c2},
		map[uint64]common.Address{1: spokeAddress, 2: spokeAddress},
	)

	views, err := provider.ViewsFor(context.Background(), bundle.BlockScope{
		1: {Start: 100, End: 200},
		2: {Start: 300, End: 400},
	})

	s.Nil(err)
	s.Len(views, 2)
	s.True(views[1].IsSynchronized())
	s.False(views[2].IsSynchronized())
}
