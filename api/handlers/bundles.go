package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/jellydator/ttlcache/v3"

	"github.com/spokehub/dataworker/bundle"
)

const (
	VALIDATION_TTL = time.Minute * 5
)

// Lifecycle is the bundle controller surface the API depends on.
type Lifecycle interface {
	Propose(ctx context.Context, scope bundle.BlockScope) (*bundle.Bundle, error)
	Validate(ctx context.Context, claim *bundle.ProposalClaim) (*bundle.ValidationResult, error)
	ValidateBundle(ctx context.Context, id string) (*bundle.ValidationResult, error)
	Execute(ctx context.Context, id string, rootType bundle.RootType) (*bundle.ExecutionReport, error)
}

// BundleReader reads persisted bundles.
type BundleReader interface {
	Bundle(id string) (*bundle.Bundle, error)
	Bundles() ([]*bundle.Bundle, error)
}

type ProposeBody struct {
	Scope map[string]bundle.BlockRange `json:"scope"`
}

type BundleHandler struct {
	lifecycle Lifecycle
	bundles   BundleReader

	validations *ttlcache.Cache[string, *bundle.ValidationResult]
}

func NewBundleHandler(lifecycle Lifecycle, bundles BundleReader) *BundleHandler {
	validations := ttlcache.New(
		ttlcache.WithTTL[string, *bundle.ValidationResult](VALIDATION_TTL),
	)
	go validations.Start()

	return &BundleHandler{
		lifecycle:   lifecycle,
		bundles:     bundles,
		validations: validations,
	}
}

// HandlePropose builds and proposes a new bundle over the block scope in
// the request body.
func (h *BundleHandler) HandlePropose(w http.ResponseWriter, r *http.Request) {
	b := &ProposeBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	scope, err := parseScope(b.Scope)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	proposed, err := h.lifecycle.Propose(r.Context(), scope)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}
	if proposed == nil {
		JSONResponse(w, map[string]string{"status": "no settlement obligations in scope"}, http.StatusOK)
		return
	}

	JSONResponse(w, proposed, http.StatusCreated)
}

// HandleValidate revalidates a stored bundle. Results are cached briefly so
// operator polling does not trigger repeated reconciliation passes.
func (h *BundleHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["bundleId"]

	if cached := h.validations.Get(id); cached != nil {
		JSONResponse(w, cached.Value(), http.StatusOK)
		return
	}

	result, err := h.lifecycle.ValidateBundle(r.Context(), id)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	h.validations.Set(id, result, ttlcache.DefaultTTL)
	JSONResponse(w, result, http.StatusOK)
}

type ValidateClaimBody struct {
	Scope             map[string]bundle.BlockRange `json:"scope"`
	SlowRelayRoot     *common.Hash                 `json:"slowRelayRoot"`
	RelayerRefundRoot *common.Hash                 `json:"relayerRefundRoot"`
	PoolRebalanceRoot *common.Hash                 `json:"poolRebalanceRoot"`
}

// HandleValidateClaim validates an externally observed proposal against
// locally recomputed roots.
func (h *BundleHandler) HandleValidateClaim(w http.ResponseWriter, r *http.Request) {
	b := &ValidateClaimBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	scope, err := parseScope(b.Scope)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	result, err := h.lifecycle.Validate(r.Context(), &bundle.ProposalClaim{
		Scope:             scope,
		SlowRelayRoot:     b.SlowRelayRoot,
		RelayerRefundRoot: b.RelayerRefundRoot,
		PoolRebalanceRoot: b.PoolRebalanceRoot,
	})
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}
	JSONResponse(w, result, http.StatusOK)
}

// HandleExecute runs one execution phase for a bundle's root type.
func (h *BundleHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["bundleId"]
	rootType := bundle.RootType(vars["rootType"])

	switch rootType {
	case bundle.SlowRelayRootType, bundle.RelayerRefundRootType, bundle.PoolRebalanceRootType:
	default:
		JSONError(w, fmt.Errorf("unknown root type %s", rootType), http.StatusBadRequest)
		return
	}

	report, err := h.lifecycle.Execute(r.Context(), id, rootType)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	code := http.StatusOK
	if len(report.Failed) > 0 {
		code = http.StatusMultiStatus
	}
	JSONResponse(w, report, code)
}

// HandleStatus returns one persisted bundle.
func (h *BundleHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["bundleId"]

	b, err := h.bundles.Bundle(id)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}
	JSONResponse(w, b, http.StatusOK)
}

// HandleList returns all persisted bundles.
func (h *BundleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.bundles.Bundles()
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}
	JSONResponse(w, bundles, http.StatusOK)
}

func parseScope(raw map[string]bundle.BlockRange) (bundle.BlockScope, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty block scope")
	}

	scope := make(bundle.BlockScope, len(raw))
	for key, blockRange := range raw {
		chainID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id %s", key)
		}
		if blockRange.End < blockRange.Start {
			return nil, fmt.Errorf("invalid block range for chain %d", chainID)
		}
		scope[chainID] = blockRange
	}
	return scope, nil
}
