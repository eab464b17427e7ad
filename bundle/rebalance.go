package bundle

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/spokehub/dataworker/merkle"
)

// MaxL1TokensPerLeaf bounds the token vectors of a single pool rebalance
// leaf. Like MaxRefundsPerLeaf, it is part of the root construction protocol.
const MaxL1TokensPerLeaf = 10

// RunningBalances is the hub pool ledger of net amounts owed per chain and
// L1 token, carried forward across bundles.
type RunningBalances map[uint64]map[common.Address]*big.Int

// Clone deep-copies the ledger so a bundle's carry-forward never aliases
// the prior version.
func (r RunningBalances) Clone() RunningBalances {
	out := make(RunningBalances, len(r))
	for chainID, tokens := range r {
		out[chainID] = make(map[common.Address]*big.Int, len(tokens))
		for token, balance := range tokens {
			out[chainID][token] = new(big.Int).Set(balance)
		}
	}
	return out
}

func (r RunningBalances) add(chainID uint64, token common.Address, delta *big.Int) *big.Int {
	tokens, ok := r[chainID]
	if !ok {
		tokens = make(map[common.Address]*big.Int)
		r[chainID] = tokens
	}
	balance, ok := tokens[token]
	if !ok {
		balance = new(big.Int)
		tokens[token] = balance
	}
	return balance.Add(balance, delta)
}

// PoolRebalanceRoot holds a built pool rebalance tree, its leaf sequence and
// the ledger state after applying this bundle's net sends. The caller owns
// persisting the new ledger version.
type PoolRebalanceRoot struct {
	Tree            *merkle.Tree
	Leaves          []PoolRebalanceLeaf
	RunningBalances RunningBalances
}

type chainToken struct {
	chainID uint64
	token   common.Address
}

// BuildPoolRebalanceRoot nets, per (chain, L1 token), the amount the hub
// pool must send to cover slow fills against the amount spoke pools already
// disbursed as relayer refunds, and carries the result forward against the
// prior running balance:
//
//	netSend        = Σ unfilledAmount(deposits to chain) − Σ fillAmount(refunds on chain)
//	runningBalance = prior + netSend
//	bundleLpFees   = Σ realizedLpFeePct × amount / 1e18 over both sides
//
// This formula is protocol version 1; validating parties must agree on it
// exactly. A nil result with nil error means no chain has pool activity.
func BuildPoolRebalanceRoot(res *ReconciliationResult, resolver L1TokenResolver, prior RunningBalances) (*PoolRebalanceRoot, error) {
	netSend := make(map[chainToken]*big.Int)
	lpFees := make(map[chainToken]*big.Int)

	accumulate := func(m map[chainToken]*big.Int, key chainToken, amount *big.Int) {
		total, ok := m[key]
		if !ok {
			total = new(big.Int)
			m[key] = total
		}
		total.Add(total, amount)
	}

	for destinationID, deposits := range res.UnfilledDeposits {
		for _, d := range deposits {
			l1Token, err := resolver.L1Token(destinationID, d.Deposit.DestinationToken)
			if err != nil {
				return nil, fmt.Errorf("failed resolving l1 token for deposit %d: %w", d.Deposit.DepositID, err)
			}
			key := chainToken{chainID: destinationID, token: l1Token}
			accumulate(netSend, key, d.UnfilledAmount)
			accumulate(lpFees, key, lpFee(d.Deposit.RealizedLpFeePct, d.UnfilledAmount))
		}
	}

	for refundKey, fills := range res.FillsToRefund {
		for _, f := range fills {
			l1Token, err := resolver.L1Token(f.DestinationChainID, f.DestinationToken)
			if err != nil {
				return nil, fmt.Errorf("failed resolving l1 token for fill of deposit %d: %w", f.DepositID, err)
			}
			key := chainToken{chainID: refundKey.RepaymentChainID, token: l1Token}
			accumulate(netSend, key, new(big.Int).Neg(f.FillAmount))
			accumulate(lpFees, key, lpFee(f.RealizedLpFeePct, f.FillAmount))
		}
	}

	if len(netSend) == 0 {
		return nil, nil
	}

	if prior == nil {
		prior = make(RunningBalances)
	}
	balances := prior.Clone()

	tokensByChain := make(map[uint64][]common.Address)
	for key := range netSend {
		tokensByChain[key.chainID] = append(tokensByChain[key.chainID], key.token)
	}

	chainIDs := maps.Keys(tokensByChain)
	slices.Sort(chainIDs)

	leaves := make([]PoolRebalanceLeaf, 0, len(chainIDs))
	for _, chainID := range chainIDs {
		tokens := tokensByChain[chainID]
		slices.SortFunc(tokens, func(a, b common.Address) int {
			return bytes.Compare(a[:], b[:])
		})

		for chunk := 0; chunk*MaxL1TokensPerLeaf < len(tokens); chunk++ {
			end := (chunk + 1) * MaxL1TokensPerLeaf
			if end > len(tokens) {
				end = len(tokens)
			}

			leaf := PoolRebalanceLeaf{
				ChainID:    chainID,
				GroupIndex: uint32(chunk),
			}
			for _, token := range tokens[chunk*MaxL1TokensPerLeaf : end] {
				key := chainToken{chainID: chainID, token: token}
				running := balances.add(chainID, token, netSend[key])

				leaf.L1Tokens = append(leaf.L1Tokens, token)
				leaf.BundleLpFees = append(leaf.BundleLpFees, lpFees[key])
				leaf.NetSendAmounts = append(leaf.NetSendAmounts, netSend[key])
				leaf.RunningBalances = append(leaf.RunningBalances, new(big.Int).Set(running))
			}
			leaves = append(leaves, leaf)
		}
	}

	encoded := make([][]byte, len(leaves))
	for i := range leaves {
		leaves[i].LeafID = uint32(i)
		b, err := leaves[i].Encode()
		if err != nil {
			return nil, fmt.Errorf("failed encoding pool rebalance leaf %d: %w", i, err)
		}
		encoded[i] = b
	}

	tree, err := merkle.NewTree(encoded)
	if err != nil {
		return nil, err
	}

	return &PoolRebalanceRoot{
		Tree:            tree,
		Leaves:          leaves,
		RunningBalances: balances,
	}, nil
}

func lpFee(pct *big.Int, amount *big.Int) *big.Int {
	fee := new(big.Int).Mul(pct, amount)
	return fee.Div(fee, fixedPoint)
}
