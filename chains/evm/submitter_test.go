package evm_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/spokehub/dataworker/bundle"
	"github.com/spokehub/dataworker/chains/evm"
	"github.com/spokehub/dataworker/chains/evm/calls/consts"
	mock_evm "github.com/spokehub/dataworker/chains/evm/mock"
)

var hubAddress = common.HexToAddress("0x6666666666666666666666666666666666666666")

type CalldataSubmitterTestSuite struct {
	suite.Suite

	sender    *mock_evm.MockTransactionSender
	submitter *evm.CalldataSubmitter

	sentData []byte
}

func TestRunCalldataSubmitterTestSuite(t *testing.T) {
	suite.Run(t, new(CalldataSubmitterTestSuite))
}

func (s *CalldataSubmitterTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.sentData = nil
	s.sender = mock_evm.NewMockTransactionSender(ctrl)
	s.sender.EXPECT().SendTransaction(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
			s.sentData = data
			return crypto.Keccak256Hash(data), nil
		}).AnyTimes()
	s.submitter = evm.NewCalldataSubmitter(s.sender)
}

func (s *CalldataSubmitterTestSuite) proof() []common.Hash {
	return []common.Hash{crypto.Keccak256Hash([]byte("sibling"))}
}

func (s *CalldataSubmitterTestSuite) Test_Submit_UnknownMethod() {
	_, err := s.submitter.Submit(context.Background(), hubAddress, "selfDestruct")

	s.NotNil(err)
}

func (s *CalldataSubmitterTestSuite) Test_Submit_ArgumentTypeMismatch() {
	_, err := s.submitter.Submit(context.Background(), hubAddress, "executeSlowRelayLeaf", "not a leaf", s.proof())

	s.NotNil(err)
}

func (s *CalldataSubmitterTestSuite) Test_Submit_ProposeRootBundle() {
	root := crypto.Keccak256Hash([]byte("root"))

	_, err := s.submitter.Submit(
		context.Background(),
		hubAddress,
		"proposeRootBundle",
		[]uint64{200, 400},
		root,
		root,
		root,
	)

	s.Nil(err)
	s.Equal(consts.HubPoolABI.Methods["proposeRootBundle"].ID, s.sentData[:4])
}

func (s *CalldataSubmitterTestSuite) Test_Submit_ExecuteSlowRelayLeaf() {
	leaf := bundle.RelayData{
		Depositor:          depositor,
		Recipient:          recipient,
		DestinationToken:   destToken,
		Amount:             big.NewInt(100),
		OriginChainID:      1,
		DestinationChainID: 2,
		RealizedLpFeePct:   big.NewInt(0),
		RelayerFeePct:      big.NewInt(0),
		DepositID:          7,
	}

	_, err := s.submitter.Submit(context.Background(), spokeAddress, "executeSlowRelayLeaf", leaf, s.proof())

	s.Nil(err)
	s.Equal(consts.SpokePoolABI.Methods["executeSlowRelayLeaf"].ID, s.sentData[:4])
}

func (s *CalldataSubmitterTestSuite) Test_Submit_ExecuteRelayerRefundLeaf() {
	leaf := bundle.RelayerRefundLeaf{
		ChainID:    42,
		LeafID:     0,
		ChunkIndex: 0,
		Refunds: []bundle.Refund{
			{Relayer: relayer, Amount: big.NewInt(100)},
		},
	}

	_, err := s.submitter.Submit(context.Background(), spokeAddress, "executeRelayerRefundLeaf", leaf, s.proof())

	s.Nil(err)
	s.Equal(consts.SpokePoolABI.Methods["executeRelayerRefundLeaf"].ID, s.sentData[:4])
}

func (s *CalldataSubmitterTestSuite) Test_Submit_ExecutePoolRebalanceLeaf() {
	leaf := bundle.PoolRebalanceLeaf{
		ChainID:         2,
		GroupIndex:      0,
		LeafID:          0,
		L1Tokens:        []common.Address{destToken},
		BundleLpFees:    []*big.Int{big.NewInt(10)},
		NetSendAmounts:  []*big.Int{big.NewInt(100)},
		RunningBalances: []*big.Int{big.NewInt(100)},
	}

	_, err := s.submitter.Submit(context.Background(), hubAddress, "executePoolRebalanceLeaf", leaf, s.proof())

	s.Nil(err)
	s.Equal(consts.HubPoolABI.Methods["executePoolRebalanceLeaf"].ID, s.sentData[:4])
}

func (s *CalldataSubmitterTestSuite) Test_Submit_SenderFailurePropagates() {
	ctrl := gomock.NewController(s.T())
	failing := mock_evm.NewMockTransactionSender(ctrl)
	failing.EXPECT().SendTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(common.Hash{}, fmt.Errorf("rpc unavailable"))
	submitter := evm.NewCalldataSubmitter(failing)

	_, err := submitter.Submit(
		context.Background(),
		hubAddress,
		"proposeRootBundle",
		[]uint64{200},
		common.Hash{},
		common.Hash{},
		common.Hash{},
	)

	s.NotNil(err)
}
