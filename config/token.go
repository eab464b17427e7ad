package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type TokenConfig struct {
	Address   common.Address
	L1Address common.Address
	Decimals  uint8
}

// TokenStore maps tokens per chain by symbol and resolves spoke chain
// tokens back to their canonical hub chain token.
type TokenStore struct {
	Tokens map[uint64]map[string]TokenConfig
}

func (s *TokenStore) ConfigByAddress(chainID uint64, address common.Address) (string, TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for address %s", address.Hex())
}

func (s *TokenStore) ConfigBySymbol(chainID uint64, symbol string) (TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	c, ok := tokens[symbol]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

// L1Token resolves a token observed on a spoke chain to its hub chain
// counterpart for pool rebalance accounting.
func (s *TokenStore) L1Token(chainID uint64, token common.Address) (common.Address, error) {
	_, c, err := s.ConfigByAddress(chainID, token)
	if err != nil {
		return common.Address{}, err
	}
	return c.L1Address, nil
}
