package store_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"github.com/sygmaprotocol/sygma-core/store/lvldb"

	"github.com/spokehub/dataworker/bundle"
	"github.com/spokehub/dataworker/store"
)

type BundleStoreTestSuite struct {
	suite.Suite

	db    *lvldb.LVLDB
	store *store.BundleStore
}

func TestRunBundleStoreTestSuite(t *testing.T) {
	suite.Run(t, new(BundleStoreTestSuite))
}

func (s *BundleStoreTestSuite) SetupTest() {
	db, err := lvldb.NewLvlDB(s.T().TempDir())
	s.Nil(err)

	s.db = db
	s.store = store.NewBundleStore(db)
}

func (s *BundleStoreTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func (s *BundleStoreTestSuite) bundle(id string) *bundle.Bundle {
	return &bundle.Bundle{
		ID:     id,
		Status: bundle.StatusProposed,
		Scope: bundle.BlockScope{
			1: {Start: 100, End: 200},
		},
		SlowRelay: &bundle.SlowRelayRootData{
			Root: common.HexToHash("0x01"),
			Leaves: []bundle.RelayData{
				{
					OriginChainID:      1,
					DestinationChainID: 2,
					DepositID:          7,
					Amount:             big.NewInt(100),
					RealizedLpFeePct:   big.NewInt(0),
					RelayerFeePct:      big.NewInt(0),
				},
			},
			Executed: []bool{false},
		},
	}
}

func (s *BundleStoreTestSuite) Test_Bundle_NotFound() {
	_, err := s.store.Bundle("missing")

	s.NotNil(err)
}

func (s *BundleStoreTestSuite) Test_SaveBundle_RoundTrip() {
	b := s.bundle("b1")
	err := s.store.SaveBundle(b)
	s.Nil(err)

	stored, err := s.store.Bundle("b1")
	s.Nil(err)
	s.Equal(b, stored)
}

func (s *BundleStoreTestSuite) Test_SaveBundle_UpdateDoesNotDuplicateIndex() {
	b := s.bundle("b1")
	s.Nil(s.store.SaveBundle(b))

	b.Status = bundle.StatusValidated
	s.Nil(s.store.SaveBundle(b))

	bundles, err := s.store.Bundles()
	s.Nil(err)
	s.Len(bundles, 1)
	s.Equal(bundle.StatusValidated, bundles[0].Status)
}

func (s *BundleStoreTestSuite) Test_Bundles_ListsAllSaved() {
	s.Nil(s.store.SaveBundle(s.bundle("b1")))
	s.Nil(s.store.SaveBundle(s.bundle("b2")))

	bundles, err := s.store.Bundles()
	s.Nil(err)
	s.Len(bundles, 2)
	s.Equal("b1", bundles[0].ID)
	s.Equal("b2", bundles[1].ID)
}

func (s *BundleStoreTestSuite) Test_LatestScope_EmptyStore() {
	scope, err := s.store.LatestScope()

	s.Nil(err)
	s.Nil(scope)
}

func (s *BundleStoreTestSuite) Test_SaveBundle_AdvancesLatestScope() {
	s.Nil(s.store.SaveBundle(s.bundle("b1")))

	scope, err := s.store.LatestScope()
	s.Nil(err)
	s.Equal(bundle.BlockScope{1: {Start: 100, End: 200}}, scope)

	b2 := s.bundle("b2")
	b2.Scope = bundle.BlockScope{
		1: {Start: 201, End: 300},
		2: {Start: 50, End: 80},
	}
	s.Nil(s.store.SaveBundle(b2))

	scope, err = s.store.LatestScope()
	s.Nil(err)
	s.Equal(bundle.BlockScope{
		1: {Start: 201, End: 300},
		2: {Start: 50, End: 80},
	}, scope)
}

func (s *BundleStoreTestSuite) Test_SaveBundle_LatestScopeNeverRegresses() {
	b1 := s.bundle("b1")
	b1.Scope = bundle.BlockScope{1: {Start: 201, End: 300}}
	s.Nil(s.store.SaveBundle(b1))

	s.Nil(s.store.SaveBundle(s.bundle("b2")))

	scope, err := s.store.LatestScope()
	s.Nil(err)
	s.Equal(bundle.BlockScope{1: {Start: 201, End: 300}}, scope)
}

func (s *BundleStoreTestSuite) Test_RunningBalances_EmptyLedger() {
	balances, err := s.store.RunningBalances()

	s.Nil(err)
	s.Len(balances, 0)
}

func (s *BundleStoreTestSuite) Test_SaveRunningBalances_VersionsLedger() {
	token := common.HexToAddress("0x5555555555555555555555555555555555555555")

	first := bundle.RunningBalances{2: {token: big.NewInt(100)}}
	s.Nil(s.store.SaveRunningBalances("b1", first))

	second := bundle.RunningBalances{2: {token: big.NewInt(250)}}
	s.Nil(s.store.SaveRunningBalances("b2", second))

	current, err := s.store.RunningBalances()
	s.Nil(err)
	s.Equal(second, current)

	balances, bundleID, err := s.store.LedgerVersion(1)
	s.Nil(err)
	s.Equal("b1", bundleID)
	s.Equal(first, balances)

	balances, bundleID, err = s.store.LedgerVersion(2)
	s.Nil(err)
	s.Equal("b2", bundleID)
	s.Equal(second, balances)
}

func (s *BundleStoreTestSuite) Test_LedgerVersion_NotFound() {
	_, _, err := s.store.LedgerVersion(9)

	s.NotNil(err)
}
