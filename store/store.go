package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sygmaprotocol/sygma-core/store"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/spokehub/dataworker/bundle"
)

const (
	bundleKeyFormat        = "bundle:%s"
	bundleIndexKey         = "bundle:index"
	latestScopeKey         = "bundle:latestScope"
	ledgerKey              = "ledger:current"
	ledgerHistoryKeyFormat = "ledger:history:%d"
)

// BundleStore persists bundles and the running balance ledger into a
// LevelDB-backed key-value store. The ledger is versioned: every promotion
// writes a new history entry so carry-forwards stay auditable.
type BundleStore struct {
	mu sync.Mutex
	db store.KeyValueReaderWriter
}

type ledgerEntry struct {
	Version  uint64                 `json:"version"`
	BundleID string                 `json:"bundleId"`
	Balances bundle.RunningBalances `json:"balances"`
}

func NewBundleStore(db store.KeyValueReaderWriter) *BundleStore {
	return &BundleStore{
		db: db,
	}
}

func (s *BundleStore) SaveBundle(b *bundle.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	err = s.db.SetByKey([]byte(fmt.Sprintf(bundleKeyFormat, b.ID)), data)
	if err != nil {
		return err
	}

	index, err := s.index()
	if err != nil {
		return err
	}
	for _, id := range index {
		if id == b.ID {
			return nil
		}
	}
	index = append(index, b.ID)
	data, err = json.Marshal(index)
	if err != nil {
		return err
	}
	err = s.db.SetByKey([]byte(bundleIndexKey), data)
	if err != nil {
		return err
	}
	return s.advanceLatestScope(b.Scope)
}

// LatestScope returns the per-chain high-water mark of proposed block
// ranges. A store with no bundles returns nil.
func (s *BundleStore) LatestScope() (bundle.BlockScope, error) {
	data, err := s.db.GetByKey([]byte(latestScopeKey))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	scope := bundle.BlockScope{}
	err = json.Unmarshal(data, &scope)
	if err != nil {
		return nil, err
	}
	return scope, nil
}

func (s *BundleStore) advanceLatestScope(scope bundle.BlockScope) error {
	latest, err := s.LatestScope()
	if err != nil {
		return err
	}
	if latest == nil {
		latest = bundle.BlockScope{}
	}

	for chainID, r := range scope {
		if current, ok := latest[chainID]; !ok || r.End > current.End {
			latest[chainID] = r
		}
	}
	data, err := json.Marshal(latest)
	if err != nil {
		return err
	}
	return s.db.SetByKey([]byte(latestScopeKey), data)
}

func (s *BundleStore) Bundle(id string) (*bundle.Bundle, error) {
	data, err := s.db.GetByKey([]byte(fmt.Sprintf(bundleKeyFormat, id)))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, fmt.Errorf("no bundle found with id %s", id)
		}
		return nil, err
	}

	b := &bundle.Bundle{}
	err = json.Unmarshal(data, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BundleStore) Bundles() ([]*bundle.Bundle, error) {
	index, err := s.index()
	if err != nil {
		return nil, err
	}

	bundles := make([]*bundle.Bundle, 0, len(index))
	for _, id := range index {
		b, err := s.Bundle(id)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

// RunningBalances returns the current ledger. A store that never saw a
// promotion returns an empty ledger, not an error.
func (s *BundleStore) RunningBalances() (bundle.RunningBalances, error) {
	entry, err := s.currentLedger()
	if err != nil {
		return nil, err
	}
	return entry.Balances, nil
}

// SaveRunningBalances promotes a bundle's ledger to the current version and
// records it in the version history.
func (s *BundleStore) SaveRunningBalances(bundleID string, balances bundle.RunningBalances) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.currentLedger()
	if err != nil {
		return err
	}

	entry := ledgerEntry{
		Version:  current.Version + 1,
		BundleID: bundleID,
		Balances: balances,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	err = s.db.SetByKey([]byte(fmt.Sprintf(ledgerHistoryKeyFormat, entry.Version)), data)
	if err != nil {
		return err
	}
	return s.db.SetByKey([]byte(ledgerKey), data)
}

// LedgerVersion returns one historical ledger entry for auditing.
func (s *BundleStore) LedgerVersion(version uint64) (bundle.RunningBalances, string, error) {
	data, err := s.db.GetByKey([]byte(fmt.Sprintf(ledgerHistoryKeyFormat, version)))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, "", fmt.Errorf("no ledger version %d", version)
		}
		return nil, "", err
	}

	entry := ledgerEntry{}
	err = json.Unmarshal(data, &entry)
	if err != nil {
		return nil, "", err
	}
	return entry.Balances, entry.BundleID, nil
}

func (s *BundleStore) currentLedger() (ledgerEntry, error) {
	entry := ledgerEntry{
		Balances: make(bundle.RunningBalances),
	}
	data, err := s.db.GetByKey([]byte(ledgerKey))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return entry, nil
		}
		return entry, err
	}
	err = json.Unmarshal(data, &entry)
	return entry, err
}

func (s *BundleStore) index() ([]string, error) {
	data, err := s.db.GetByKey([]byte(bundleIndexKey))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	var index []string
	err = json.Unmarshal(data, &index)
	if err != nil {
		return nil, err
	}
	return index, nil
}
