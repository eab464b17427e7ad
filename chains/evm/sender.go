package evm

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
)

// DryRunSender logs settlement calldata instead of broadcasting it. The
// signing and broadcast pipeline is operated separately; this sender keeps
// the full propose/execute flow runnable without keys.
type DryRunSender struct{}

func NewDryRunSender() *DryRunSender {
	return &DryRunSender{}
}

func (s *DryRunSender) SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	hash := crypto.Keccak256Hash(to.Bytes(), data)
	log.Info().
		Str("to", to.Hex()).
		Int("calldataBytes", len(data)).
		Msgf("Dry run settlement transaction %s", hash.Hex())
	return hash, nil
}
