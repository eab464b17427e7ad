// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spokehub/dataworker/config"
)

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(s.T().TempDir(), "config.json")
	err := os.WriteFile(path, []byte(content), 0644)
	s.Nil(err)
	return path
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_MissingFile() {
	_, err := config.GetConfigFromFile(filepath.Join(s.T().TempDir(), "missing.json"))

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_MissingHubPool() {
	path := s.writeConfig(`{
		"worker": {"hubChainId": 1},
		"chains": [{"id": 2, "name": "evm2", "endpoint": "ws://domain.com"}]
	}`)

	_, err := config.GetConfigFromFile(path)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_NoChains() {
	path := s.writeConfig(`{
		"worker": {"hubChainId": 1, "hubPool": "0x01"}
	}`)

	_, err := config.GetConfigFromFile(path)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_Defaults() {
	path := s.writeConfig(`{
		"worker": {"hubChainId": 1, "hubPool": "0x01"},
		"chains": [{"id": 2, "name": "evm2", "endpoint": "ws://domain.com"}]
	}`)

	c, err := config.GetConfigFromFile(path)

	s.Nil(err)
	s.Equal("info", c.WorkerConfig.LogLevel)
	s.Equal(":8080", c.WorkerConfig.ApiAddr)
	s.Equal(uint16(9001), c.WorkerConfig.HealthPort)
	s.Equal(uint64(3600), c.WorkerConfig.ProposeInterval)
	s.Equal(uint64(60), c.WorkerConfig.ValidateInterval)
	s.Equal(uint64(7200), c.WorkerConfig.LookbackBlocks)
	s.Len(c.ChainConfigs, 1)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_OverridesDefaults() {
	path := s.writeConfig(`{
		"worker": {
			"hubChainId": 1,
			"hubPool": "0x01",
			"logLevel": "debug",
			"proposeInterval": 600
		},
		"chains": [{"id": 2, "name": "evm2", "endpoint": "ws://domain.com"}]
	}`)

	c, err := config.GetConfigFromFile(path)

	s.Nil(err)
	s.Equal("debug", c.WorkerConfig.LogLevel)
	s.Equal(uint64(600), c.WorkerConfig.ProposeInterval)
	s.Equal(uint64(1), c.WorkerConfig.HubChainId)
	s.Equal("0x01", c.WorkerConfig.HubPool)
}
