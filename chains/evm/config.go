// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/spokehub/dataworker/config"
	"github.com/spokehub/dataworker/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	SpokePool common.Address
	Tokens    map[string]config.TokenConfig

	BlockInterval      *big.Int
	BlockRetryInterval time.Duration
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`

	SpokePool string                    `mapstructure:"spokePool"`
	Tokens    map[string]RawTokenConfig `mapstructure:"tokens"`

	BlockInterval      int64  `mapstructure:"blockInterval" default:"5"`
	BlockRetryInterval uint64 `mapstructure:"blockRetryInterval" default:"5"`
}

type RawTokenConfig struct {
	Address   string `mapstructure:"address"`
	L1Address string `mapstructure:"l1Address"`
	Decimals  uint8  `mapstructure:"decimals" default:"18"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.SpokePool == "" {
		return fmt.Errorf("required field chain.SpokePool empty for chain %v", *c.Id)
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	for symbol, t := range c.Tokens {
		tokens[symbol] = config.TokenConfig{
			Address:   common.HexToAddress(t.Address),
			L1Address: common.HexToAddress(t.L1Address),
			Decimals:  t.Decimals,
		}
	}

	return &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		SpokePool:          common.HexToAddress(c.SpokePool),
		Tokens:             tokens,
		BlockInterval:      big.NewInt(c.BlockInterval),
		// nolint:gosec
		BlockRetryInterval: time.Duration(c.BlockRetryInterval) * time.Second,
	}, nil
}
