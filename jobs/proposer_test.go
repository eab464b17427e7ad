package jobs_test

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/spokehub/dataworker/bundle"
	"github.com/spokehub/dataworker/jobs"
	mock_jobs "github.com/spokehub/dataworker/jobs/mock"
)

type ProposerJobTestSuite struct {
	suite.Suite

	ctrl *gomock.Controller
}

func TestRunProposerJobTestSuite(t *testing.T) {
	suite.Run(t, new(ProposerJobTestSuite))
}

func (s *ProposerJobTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
}

func (s *ProposerJobTestSuite) headReader(head int64) *mock_jobs.MockHeadReader {
	reader := mock_jobs.NewMockHeadReader(s.ctrl)
	reader.EXPECT().LatestBlock().Return(big.NewInt(head), nil).AnyTimes()
	return reader
}

func (s *ProposerJobTestSuite) scopeReader(latest bundle.BlockScope) *mock_jobs.MockScopeReader {
	reader := mock_jobs.NewMockScopeReader(s.ctrl)
	reader.EXPECT().LatestScope().Return(latest, nil).AnyTimes()
	return reader
}

func (s *ProposerJobTestSuite) Test_Start_ProposesWithConfirmationMargin() {
	scopes := make(chan bundle.BlockScope, 1)
	proposer := mock_jobs.NewMockProposer(s.ctrl)
	proposer.EXPECT().Propose(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, scope bundle.BlockScope) (*bundle.Bundle, error) {
			select {
			case scopes <- scope:
			default:
			}
			return nil, nil
		}).AnyTimes()

	job := jobs.NewProposerJob(
		proposer,
		s.scopeReader(nil),
		map[uint64]jobs.HeadReader{
			1: s.headReader(10000),
			2: s.headReader(500),
		},
		map[uint64]uint64{1: 5, 2: 5},
		1000,
		time.Millisecond*10,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go job.Start(ctx)

	select {
	case scope := <-scopes:
		// range end sits a confirmation margin below the head
		s.Equal(uint64(9995), scope[1].End)
		s.Equal(uint64(8995), scope[1].Start)
		// lookback clamps at genesis
		s.Equal(uint64(495), scope[2].End)
		s.Equal(uint64(0), scope[2].Start)
	case <-time.After(time.Second):
		s.Fail("no proposal scheduled")
	}
}

func (s *ProposerJobTestSuite) Test_Start_ChainsRangeFromPreviousBundle() {
	scopes := make(chan bundle.BlockScope, 1)
	proposer := mock_jobs.NewMockProposer(s.ctrl)
	proposer.EXPECT().Propose(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, scope bundle.BlockScope) (*bundle.Bundle, error) {
			select {
			case scopes <- scope:
			default:
			}
			return nil, nil
		}).AnyTimes()

	job := jobs.NewProposerJob(
		proposer,
		s.scopeReader(bundle.BlockScope{1: {Start: 8000, End: 9000}}),
		map[uint64]jobs.HeadReader{1: s.headReader(10000)},
		map[uint64]uint64{1: 5},
		1000,
		time.Millisecond*10,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go job.Start(ctx)

	select {
	case scope := <-scopes:
		// continues one block past the proposed high-water mark instead
		// of re-scanning the lookback window
		s.Equal(uint64(9001), scope[1].Start)
		s.Equal(uint64(9995), scope[1].End)
	case <-time.After(time.Second):
		s.Fail("no proposal scheduled")
	}
}

func (s *ProposerJobTestSuite) Test_Start_ConsecutiveCyclesDoNotOverlap() {
	var mu sync.Mutex
	var latest bundle.BlockScope
	head := int64(10000)

	scopes := make(chan bundle.BlockScope, 2)
	proposer := mock_jobs.NewMockProposer(s.ctrl)
	proposer.EXPECT().Propose(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, scope bundle.BlockScope) (*bundle.Bundle, error) {
			mu.Lock()
			latest = scope
			mu.Unlock()
			select {
			case scopes <- scope:
			default:
			}
			return nil, nil
		}).AnyTimes()

	heads := mock_jobs.NewMockHeadReader(s.ctrl)
	heads.EXPECT().LatestBlock().DoAndReturn(func() (*big.Int, error) {
		mu.Lock()
		defer mu.Unlock()
		head += 500
		return big.NewInt(head), nil
	}).AnyTimes()

	scopeReader := mock_jobs.NewMockScopeReader(s.ctrl)
	scopeReader.EXPECT().LatestScope().DoAndReturn(func() (bundle.BlockScope, error) {
		mu.Lock()
		defer mu.Unlock()
		return latest, nil
	}).AnyTimes()

	job := jobs.NewProposerJob(
		proposer,
		scopeReader,
		map[uint64]jobs.HeadReader{1: heads},
		map[uint64]uint64{1: 5},
		1000,
		time.Millisecond*10,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go job.Start(ctx)

	collected := make([]bundle.BlockScope, 0, 2)
	for len(collected) < 2 {
		select {
		case scope := <-scopes:
			collected = append(collected, scope)
		case <-time.After(time.Second):
			s.Fail("expected two proposal cycles")
			return
		}
	}

	s.Equal(collected[0][1].End+1, collected[1][1].Start)
	s.GreaterOrEqual(collected[1][1].End, collected[1][1].Start)
}

func (s *ProposerJobTestSuite) Test_Start_NoNewBlocksSkipsProposal() {
	// head minus confirmations sits exactly at the proposed high-water
	// mark, so no proposal is expected
	proposer := mock_jobs.NewMockProposer(s.ctrl)

	job := jobs.NewProposerJob(
		proposer,
		s.scopeReader(bundle.BlockScope{1: {Start: 9000, End: 9995}}),
		map[uint64]jobs.HeadReader{1: s.headReader(10000)},
		map[uint64]uint64{1: 5},
		1000,
		time.Millisecond*10,
	)

	ctx, cancel := context.WithCancel(context.Background())
	go job.Start(ctx)

	time.Sleep(time.Millisecond * 100)
	cancel()
}

func (s *ProposerJobTestSuite) Test_Start_HeadFailureSkipsCycle() {
	failing := mock_jobs.NewMockHeadReader(s.ctrl)
	failing.EXPECT().LatestBlock().Return(nil, fmt.Errorf("rpc unavailable")).MinTimes(1)

	proposer := mock_jobs.NewMockProposer(s.ctrl)

	job := jobs.NewProposerJob(
		proposer,
		s.scopeReader(nil),
		map[uint64]jobs.HeadReader{1: failing},
		map[uint64]uint64{},
		1000,
		time.Millisecond*10,
	)

	ctx, cancel := context.WithCancel(context.Background())
	go job.Start(ctx)

	time.Sleep(time.Millisecond * 100)
	cancel()
}
