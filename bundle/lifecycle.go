package bundle

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/spokehub/dataworker/merkle"
)

type RootType string

const (
	SlowRelayRootType     RootType = "slow-relay"
	RelayerRefundRootType RootType = "relayer-refund"
	PoolRebalanceRootType RootType = "pool-rebalance"
)

type BundleStatus string

const (
	StatusBuilding  BundleStatus = "building"
	StatusProposed  BundleStatus = "proposed"
	StatusValidated BundleStatus = "validated"
	StatusDisputed  BundleStatus = "disputed"
	StatusExecuting BundleStatus = "executing"
	StatusClosed    BundleStatus = "closed"
)

const (
	proposeMethod              = "proposeRootBundle"
	executeSlowRelayMethod     = "executeSlowRelayLeaf"
	executeRelayerRefundMethod = "executeRelayerRefundLeaf"
	executePoolRebalanceMethod = "executePoolRebalanceLeaf"
)

// SlowRelayRootData is the persisted form of a slow-relay root: the root,
// the ordered leaf sequence proofs are derived from, and per-leaf execution
// status. Absent roots are persisted as an explicit nil.
type SlowRelayRootData struct {
	Root     common.Hash `json:"root"`
	Leaves   []RelayData `json:"leaves"`
	Executed []bool      `json:"executed"`
}

type RelayerRefundRootData struct {
	Root     common.Hash         `json:"root"`
	Leaves   []RelayerRefundLeaf `json:"leaves"`
	Executed []bool              `json:"executed"`
}

type PoolRebalanceRootData struct {
	Root     common.Hash         `json:"root"`
	Leaves   []PoolRebalanceLeaf `json:"leaves"`
	Executed []bool              `json:"executed"`
}

// Bundle is one proposal cycle scoped by per-chain evaluation block ranges.
// The controller exclusively owns bundle state.
type Bundle struct {
	ID     string       `json:"id"`
	Scope  BlockScope   `json:"scope"`
	Status BundleStatus `json:"status"`

	SlowRelay     *SlowRelayRootData     `json:"slowRelay"`
	RelayerRefund *RelayerRefundRootData `json:"relayerRefund"`
	PoolRebalance *PoolRebalanceRootData `json:"poolRebalance"`

	// ledger version produced by this bundle, promoted to current once the
	// pool rebalance root fully executes
	RunningBalances RunningBalances `json:"runningBalances"`

	ProposedAt time.Time `json:"proposedAt"`
}

// ProposalClaim is a bundle proposal as observed on the hub, validated
// against locally recomputed roots.
type ProposalClaim struct {
	Scope             BlockScope   `json:"scope"`
	SlowRelayRoot     *common.Hash `json:"slowRelayRoot"`
	RelayerRefundRoot *common.Hash `json:"relayerRefundRoot"`
	PoolRebalanceRoot *common.Hash `json:"poolRebalanceRoot"`
}

// RootComparison is the outcome of comparing one claimed root against the
// locally recomputed one. Nil hashes mean "no root".
type RootComparison struct {
	Claimed  *common.Hash `json:"claimed"`
	Computed *common.Hash `json:"computed"`
	Match    bool         `json:"match"`
}

type ValidationResult struct {
	SlowRelay     RootComparison `json:"slowRelay"`
	RelayerRefund RootComparison `json:"relayerRefund"`
	PoolRebalance RootComparison `json:"poolRebalance"`
	Match         bool           `json:"match"`
}

// Mismatched lists the root types that diverged. All three comparisons are
// always run so a disputer knows exactly what to contest.
func (r *ValidationResult) Mismatched() []RootType {
	var out []RootType
	if !r.SlowRelay.Match {
		out = append(out, SlowRelayRootType)
	}
	if !r.RelayerRefund.Match {
		out = append(out, RelayerRefundRootType)
	}
	if !r.PoolRebalance.Match {
		out = append(out, PoolRebalanceRootType)
	}
	return out
}

// ExecutionReport lists per-leaf outcomes of one execution phase. A failed
// leaf never blocks its siblings.
type ExecutionReport struct {
	BundleID string            `json:"bundleId"`
	RootType RootType          `json:"rootType"`
	Executed []uint32          `json:"executed"`
	Skipped  []uint32          `json:"skipped"`
	Failed   map[uint32]string `json:"failed,omitempty"`
}

// Store persists bundles and the running balance ledger.
type Store interface {
	SaveBundle(b *Bundle) error
	Bundle(id string) (*Bundle, error)
	Bundles() ([]*Bundle, error)
	RunningBalances() (RunningBalances, error)
	SaveRunningBalances(bundleID string, balances RunningBalances) error
}

// Submitter hands a settlement call to the outbound transaction pipeline.
type Submitter interface {
	Submit(ctx context.Context, target common.Address, method string, args ...interface{}) (common.Hash, error)
}

// Metrics receives bundle lifecycle measurements.
type Metrics interface {
	ObserveReconciliation(duration time.Duration)
	BundleProposed()
	LeafExecuted(rootType string)
	RootMismatch(rootType string)
}

// Controller orchestrates the propose, validate and execute phases of a
// bundle. Phase transitions for one bundle are serialized; independent
// bundles proceed concurrently.
type Controller struct {
	provider   ViewProvider
	store      Store
	submitter  Submitter
	resolver   L1TokenResolver
	metrics    Metrics
	hubPool    common.Address
	spokePools map[uint64]common.Address

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewController(
	provider ViewProvider,
	store Store,
	submitter Submitter,
	resolver L1TokenResolver,
	metrics Metrics,
	hubPool common.Address,
	spokePools map[uint64]common.Address,
) *Controller {
	return &Controller{
		provider:   provider,
		store:      store,
		submitter:  submitter,
		resolver:   resolver,
		metrics:    metrics,
		hubPool:    hubPool,
		spokePools: spokePools,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (c *Controller) bundleLock(id string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[id]
	if !ok {
		l = &sync.Mutex{}
		c.locks[id] = l
	}
	return l
}

// Propose reconciles the chain set over the given scope, builds all three
// roots, submits them to the hub pool and persists the bundle. Nothing is
// persisted if any builder or the submission fails. A bundle with no
// obligations at all is not proposed and returns nil.
func (c *Controller) Propose(ctx context.Context, scope BlockScope) (*Bundle, error) {
	roots, balances, err := c.buildRoots(ctx, scope)
	if err != nil {
		return nil, err
	}
	if roots.slowRelay == nil && roots.relayerRefund == nil && roots.poolRebalance == nil {
		log.Info().Msg("No settlement obligations in scope, skipping proposal")
		return nil, nil
	}

	b := &Bundle{
		Scope:           scope,
		Status:          StatusProposed,
		RunningBalances: balances,
		ProposedAt:      time.Now(),
	}
	if roots.slowRelay != nil {
		b.SlowRelay = &SlowRelayRootData{
			Root:     roots.slowRelay.Tree.Root(),
			Leaves:   roots.slowRelay.Leaves,
			Executed: make([]bool, len(roots.slowRelay.Leaves)),
		}
	}
	if roots.relayerRefund != nil {
		b.RelayerRefund = &RelayerRefundRootData{
			Root:     roots.relayerRefund.Tree.Root(),
			Leaves:   roots.relayerRefund.Leaves,
			Executed: make([]bool, len(roots.relayerRefund.Leaves)),
		}
	}
	if roots.poolRebalance != nil {
		b.PoolRebalance = &PoolRebalanceRootData{
			Root:     roots.poolRebalance.Tree.Root(),
			Leaves:   roots.poolRebalance.Leaves,
			Executed: make([]bool, len(roots.poolRebalance.Leaves)),
		}
	}
	b.ID = bundleID(scope, b.rootOrZero(SlowRelayRootType), b.rootOrZero(RelayerRefundRootType), b.rootOrZero(PoolRebalanceRootType))

	_, err = c.submitter.Submit(
		ctx,
		c.hubPool,
		proposeMethod,
		encodeScope(scope),
		b.rootOrZero(PoolRebalanceRootType),
		b.rootOrZero(RelayerRefundRootType),
		b.rootOrZero(SlowRelayRootType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed submitting bundle proposal: %w", err)
	}

	err = c.store.SaveBundle(b)
	if err != nil {
		return nil, err
	}

	if c.metrics != nil {
		c.metrics.BundleProposed()
	}
	log.Info().Str("bundle", b.ID).Msg("Proposed root bundle")
	return b, nil
}

// Validate reruns reconciliation and all three builders over the claim's
// scope and compares every root byte-for-byte against the claimed ones. All
// three comparisons run even after a mismatch is found.
func (c *Controller) Validate(ctx context.Context, claim *ProposalClaim) (*ValidationResult, error) {
	roots, _, err := c.buildRoots(ctx, claim.Scope)
	if err != nil {
		return nil, err
	}

	result := &ValidationResult{
		SlowRelay:     compareRoots(claim.SlowRelayRoot, roots.slowRelayHash()),
		RelayerRefund: compareRoots(claim.RelayerRefundRoot, roots.relayerRefundHash()),
		PoolRebalance: compareRoots(claim.PoolRebalanceRoot, roots.poolRebalanceHash()),
	}
	result.Match = result.SlowRelay.Match && result.RelayerRefund.Match && result.PoolRebalance.Match

	if !result.Match && c.metrics != nil {
		for _, rt := range result.Mismatched() {
			c.metrics.RootMismatch(string(rt))
		}
	}
	return result, nil
}

// ValidateBundle validates a stored bundle against freshly recomputed roots
// and transitions it to Validated or Disputed.
func (c *Controller) ValidateBundle(ctx context.Context, id string) (*ValidationResult, error) {
	l := c.bundleLock(id)
	l.Lock()
	defer l.Unlock()

	b, err := c.store.Bundle(id)
	if err != nil {
		return nil, err
	}

	claim := &ProposalClaim{Scope: b.Scope}
	if b.SlowRelay != nil {
		claim.SlowRelayRoot = &b.SlowRelay.Root
	}
	if b.RelayerRefund != nil {
		claim.RelayerRefundRoot = &b.RelayerRefund.Root
	}
	if b.PoolRebalance != nil {
		claim.PoolRebalanceRoot = &b.PoolRebalance.Root
	}

	result, err := c.Validate(ctx, claim)
	if err != nil {
		return nil, err
	}

	if result.Match {
		b.Status = StatusValidated
	} else {
		b.Status = StatusDisputed
		log.Warn().Str("bundle", id).Msgf("Bundle disputed, diverged roots: %v", result.Mismatched())
	}
	err = c.store.SaveBundle(b)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Execute submits one proof-carrying settlement transaction per pending leaf
// of the given root type. Only a validated bundle, or one resuming a partial
// execution, is accepted. Already executed leaves are skipped, and a failed
// leaf is reported without blocking its siblings.
func (c *Controller) Execute(ctx context.Context, id string, rootType RootType) (*ExecutionReport, error) {
	l := c.bundleLock(id)
	l.Lock()
	defer l.Unlock()

	b, err := c.store.Bundle(id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusValidated && b.Status != StatusExecuting {
		return nil, fmt.Errorf("bundle %s is %s, refusing to execute", id, b.Status)
	}

	report := &ExecutionReport{
		BundleID: id,
		RootType: rootType,
		Failed:   make(map[uint32]string),
	}

	switch rootType {
	case SlowRelayRootType:
		err = c.executeSlowRelay(ctx, b, report)
	case RelayerRefundRootType:
		err = c.executeRelayerRefund(ctx, b, report)
	case PoolRebalanceRootType:
		err = c.executePoolRebalance(ctx, b, report)
	default:
		return nil, fmt.Errorf("unknown root type %s", rootType)
	}
	if err != nil {
		return nil, err
	}

	b.Status = StatusExecuting
	if b.fullyExecuted() {
		b.Status = StatusClosed
		log.Info().Str("bundle", id).Msg("Bundle fully executed, closing")
	}
	saveErr := c.store.SaveBundle(b)
	if saveErr != nil {
		return nil, saveErr
	}
	return report, nil
}

func (c *Controller) executeSlowRelay(ctx context.Context, b *Bundle, report *ExecutionReport) error {
	if b.SlowRelay == nil {
		return nil
	}
	tree, err := rebuildTree(SlowRelayRootType, b.SlowRelay.Root, len(b.SlowRelay.Leaves), func(i int) ([]byte, error) {
		return b.SlowRelay.Leaves[i].Encode()
	})
	if err != nil {
		return err
	}

	for i, leaf := range b.SlowRelay.Leaves {
		c.executeLeaf(ctx, tree, i, b.SlowRelay.Executed, report, func(proof []common.Hash) (common.Hash, error) {
			return c.submitter.Submit(ctx, c.spokePools[leaf.DestinationChainID], executeSlowRelayMethod, leaf, proof)
		})
	}
	return nil
}

func (c *Controller) executeRelayerRefund(ctx context.Context, b *Bundle, report *ExecutionReport) error {
	if b.RelayerRefund == nil {
		return nil
	}
	tree, err := rebuildTree(RelayerRefundRootType, b.RelayerRefund.Root, len(b.RelayerRefund.Leaves), func(i int) ([]byte, error) {
		return b.RelayerRefund.Leaves[i].Encode()
	})
	if err != nil {
		return err
	}

	for i, leaf := range b.RelayerRefund.Leaves {
		c.executeLeaf(ctx, tree, i, b.RelayerRefund.Executed, report, func(proof []common.Hash) (common.Hash, error) {
			return c.submitter.Submit(ctx, c.spokePools[leaf.ChainID], executeRelayerRefundMethod, leaf, proof)
		})
	}
	return nil
}

func (c *Controller) executePoolRebalance(ctx context.Context, b *Bundle, report *ExecutionReport) error {
	if b.PoolRebalance == nil {
		return nil
	}
	tree, err := rebuildTree(PoolRebalanceRootType, b.PoolRebalance.Root, len(b.PoolRebalance.Leaves), func(i int) ([]byte, error) {
		return b.PoolRebalance.Leaves[i].Encode()
	})
	if err != nil {
		return err
	}

	for i, leaf := range b.PoolRebalance.Leaves {
		c.executeLeaf(ctx, tree, i, b.PoolRebalance.Executed, report, func(proof []common.Hash) (common.Hash, error) {
			return c.submitter.Submit(ctx, c.hubPool, executePoolRebalanceMethod, leaf, proof)
		})
	}

	if allExecuted(b.PoolRebalance.Executed) {
		// the auditable ledger transition: this bundle's balances become
		// the current running balances
		err = c.store.SaveRunningBalances(b.ID, b.RunningBalances)
		if err != nil {
			return err
		}
		log.Info().Str("bundle", b.ID).Msg("Promoted bundle running balances to current ledger")
	}
	return nil
}

func (c *Controller) executeLeaf(
	ctx context.Context,
	tree *merkle.Tree,
	index int,
	executed []bool,
	report *ExecutionReport,
	submit func(proof []common.Hash) (common.Hash, error),
) {
	leafID := uint32(index)
	if executed[index] {
		report.Skipped = append(report.Skipped, leafID)
		return
	}

	proof, err := tree.Proof(index)
	if err != nil {
		report.Failed[leafID] = err.Error()
		return
	}

	_, err = submit(proof)
	if err != nil {
		log.Err(err).Uint32("leaf", leafID).Msgf("Failed executing %s leaf", report.RootType)
		report.Failed[leafID] = err.Error()
		return
	}

	executed[index] = true
	report.Executed = append(report.Executed, leafID)
	if c.metrics != nil {
		c.metrics.LeafExecuted(string(report.RootType))
	}
}

type builtRoots struct {
	slowRelay     *SlowRelayRoot
	relayerRefund *RelayerRefundRoot
	poolRebalance *PoolRebalanceRoot
}

func (r *builtRoots) slowRelayHash() *common.Hash {
	if r.slowRelay == nil {
		return nil
	}
	h := r.slowRelay.Tree.Root()
	return &h
}

func (r *builtRoots) relayerRefundHash() *common.Hash {
	if r.relayerRefund == nil {
		return nil
	}
	h := r.relayerRefund.Tree.Root()
	return &h
}

func (r *builtRoots) poolRebalanceHash() *common.Hash {
	if r.poolRebalance == nil {
		return nil
	}
	h := r.poolRebalance.Tree.Root()
	return &h
}

func (c *Controller) buildRoots(ctx context.Context, scope BlockScope) (*builtRoots, RunningBalances, error) {
	views, err := c.provider.ViewsFor(ctx, scope)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	res, err := NewReconciler(views).Reconcile(ctx)
	if err != nil {
		return nil, nil, err
	}
	if c.metrics != nil {
		c.metrics.ObserveReconciliation(time.Since(start))
	}

	roots := &builtRoots{}
	roots.slowRelay, err = BuildSlowRelayRoot(res.UnfilledDeposits)
	if err != nil {
		return nil, nil, err
	}
	roots.relayerRefund, err = BuildRelayerRefundRoot(res.FillsToRefund)
	if err != nil {
		return nil, nil, err
	}

	prior, err := c.store.RunningBalances()
	if err != nil {
		return nil, nil, err
	}
	roots.poolRebalance, err = BuildPoolRebalanceRoot(res, c.resolver, prior)
	if err != nil {
		return nil, nil, err
	}

	var balances RunningBalances
	if roots.poolRebalance != nil {
		balances = roots.poolRebalance.RunningBalances
	}
	return roots, balances, nil
}

func (b *Bundle) rootOrZero(rootType RootType) common.Hash {
	switch rootType {
	case SlowRelayRootType:
		if b.SlowRelay != nil {
			return b.SlowRelay.Root
		}
	case RelayerRefundRootType:
		if b.RelayerRefund != nil {
			return b.RelayerRefund.Root
		}
	case PoolRebalanceRootType:
		if b.PoolRebalance != nil {
			return b.PoolRebalance.Root
		}
	}
	return common.Hash{}
}

func (b *Bundle) fullyExecuted() bool {
	if b.SlowRelay != nil && !allExecuted(b.SlowRelay.Executed) {
		return false
	}
	if b.RelayerRefund != nil && !allExecuted(b.RelayerRefund.Executed) {
		return false
	}
	if b.PoolRebalance != nil && !allExecuted(b.PoolRebalance.Executed) {
		return false
	}
	return true
}

func allExecuted(executed []bool) bool {
	for _, e := range executed {
		if !e {
			return false
		}
	}
	return true
}

func compareRoots(claimed, computed *common.Hash) RootComparison {
	c := RootComparison{
		Claimed:  claimed,
		Computed: computed,
	}
	switch {
	case claimed == nil && computed == nil:
		c.Match = true
	case claimed != nil && computed != nil:
		c.Match = *claimed == *computed
	}
	return c
}

func rebuildTree(rootType RootType, want common.Hash, count int, encode func(int) ([]byte, error)) (*merkle.Tree, error) {
	if count == 0 {
		return nil, &ProofConstructionError{RootType: rootType, Want: want}
	}
	encoded := make([][]byte, count)
	for i := 0; i < count; i++ {
		b, err := encode(i)
		if err != nil {
			return nil, fmt.Errorf("failed re-encoding %s leaf %d: %w", rootType, i, err)
		}
		encoded[i] = b
	}
	tree, err := merkle.NewTree(encoded)
	if err != nil {
		return nil, err
	}
	if tree.Root() != want {
		return nil, &ProofConstructionError{RootType: rootType, Want: want, Got: tree.Root()}
	}
	return tree, nil
}

// encodeScope flattens a block scope into the ordered per-chain end block
// list the hub contract expects.
func encodeScope(scope BlockScope) []uint64 {
	chainIDs := maps.Keys(scope)
	slices.Sort(chainIDs)

	out := make([]uint64, 0, len(chainIDs))
	for _, chainID := range chainIDs {
		out = append(out, scope[chainID].End)
	}
	return out
}

func bundleID(scope BlockScope, roots ...common.Hash) string {
	chainIDs := maps.Keys(scope)
	slices.Sort(chainIDs)

	data := make([]byte, 0)
	for _, chainID := range chainIDs {
		r := scope[chainID]
		data = binary.BigEndian.AppendUint64(data, chainID)
		data = binary.BigEndian.AppendUint64(data, r.Start)
		data = binary.BigEndian.AppendUint64(data, r.End)
	}
	for _, root := range roots {
		data = append(data, root[:]...)
	}
	return crypto.Keccak256Hash(data).Hex()
}
