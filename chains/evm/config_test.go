// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/spokehub/dataworker/chains/evm"
	"github.com/spokehub/dataworker/config"
	"github.com/spokehub/dataworker/config/chain"
)

type NewEVMConfigTestSuite struct {
	suite.Suite
}

func TestRunNewEVMConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewEVMConfigTestSuite))
}

func (s *NewEVMConfigTestSuite) Test_FailedDecode() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"blockInterval": "invalid",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_FailedGeneralConfigValidation() {
	_, err := evm.NewEVMConfig(map[string]interface{}{})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_MissingSpokePool() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"id":       1,
		"endpoint": "ws://domain.com",
		"name":     "evm1",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_ValidConfig() {
	rawConfig := map[string]interface{}{
		"id":        1,
		"endpoint":  "ws://domain.com",
		"name":      "evm1",
		"spokePool": "0x9999999999999999999999999999999999999999",
	}

	actualConfig, err := evm.NewEVMConfig(rawConfig)

	id := new(uint64)
	*id = 1
	s.Nil(err)
	s.Equal(*actualConfig, evm.EVMConfig{
		GeneralChainConfig: chain.GeneralChainConfig{
			Name:               "evm1",
			Endpoint:           "ws://domain.com",
			Id:                 id,
			Blocktime:          12,
			BlockConfirmations: 5,
		},
		SpokePool:          common.HexToAddress("0x9999999999999999999999999999999999999999"),
		Tokens:             make(map[string]config.TokenConfig),
		BlockInterval:      big.NewInt(5),
		BlockRetryInterval: time.Duration(5) * time.Second,
	})
}

func (s *NewEVMConfigTestSuite) Test_ValidConfigWithTokens() {
	rawConfig := map[string]interface{}{
		"id":                 1,
		"endpoint":           "ws://domain.com",
		"name":               "evm1",
		"spokePool":          "0x9999999999999999999999999999999999999999",
		"blockInterval":      2,
		"blockRetryInterval": 10,
		"tokens": map[string]interface{}{
			"USDC": map[string]interface{}{
				"address":   "0x3333333333333333333333333333333333333333",
				"l1Address": "0x5555555555555555555555555555555555555555",
				"decimals":  6,
			},
		},
	}

	actualConfig, err := evm.NewEVMConfig(rawConfig)

	s.Nil(err)
	s.Equal(big.NewInt(2), actualConfig.BlockInterval)
	s.Equal(time.Duration(10)*time.Second, actualConfig.BlockRetryInterval)
	s.Equal(config.TokenConfig{
		Address:   common.HexToAddress("0x3333333333333333333333333333333333333333"),
		L1Address: common.HexToAddress("0x5555555555555555555555555555555555555555"),
		Decimals:  6,
	}, actualConfig.Tokens["USDC"])
}
