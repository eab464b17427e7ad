// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

type Config struct {
	WorkerConfig WorkerConfig
	ChainConfigs []map[string]interface{}
}

// WorkerConfig holds the chain-independent service configuration.
type WorkerConfig struct {
	LogLevel                  string `mapstructure:"logLevel" default:"info"`
	ApiAddr                   string `mapstructure:"apiAddr" default:":8080"`
	HealthPort                uint16 `mapstructure:"healthPort" default:"9001"`
	Env                       string `mapstructure:"env" default:"dev"`
	Id                        string `mapstructure:"id"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL"`

	// hub chain settings
	HubChainId uint64 `mapstructure:"hubChainId"`
	HubPool    string `mapstructure:"hubPool"`

	// bundle cadence
	ProposeInterval  uint64 `mapstructure:"proposeInterval" default:"3600"`
	ValidateInterval uint64 `mapstructure:"validateInterval" default:"60"`
	LookbackBlocks   uint64 `mapstructure:"lookbackBlocks" default:"7200"`
}

type RawConfig struct {
	WorkerConfig `mapstructure:"worker"`
	ChainConfigs []map[string]interface{} `mapstructure:"chains"`
}

func (c *RawConfig) Validate() error {
	if c.HubPool == "" {
		return fmt.Errorf("required field worker.hubPool empty")
	}
	if c.HubChainId == 0 {
		return fmt.Errorf("required field worker.hubChainId empty")
	}
	if len(c.ChainConfigs) == 0 {
		return fmt.Errorf("no chains configured")
	}
	return nil
}

// GetConfigFromFile reads a JSON configuration file into a Config.
func GetConfigFromFile(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	raw := RawConfig{}
	err = viper.Unmarshal(&raw)
	if err != nil {
		return nil, err
	}

	return configFromRaw(raw)
}

// GetConfigFromENV reads configuration from SPOKEHUB_ prefixed environment
// variables.
func GetConfigFromENV() (*Config, error) {
	viper.SetEnvPrefix("SPOKEHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	raw := RawConfig{}
	err := viper.Unmarshal(&raw)
	if err != nil {
		return nil, err
	}

	return configFromRaw(raw)
}

func configFromRaw(raw RawConfig) (*Config, error) {
	err := defaults.Set(&raw)
	if err != nil {
		return nil, err
	}

	err = raw.Validate()
	if err != nil {
		return nil, err
	}

	return &Config{
		WorkerConfig: raw.WorkerConfig,
		ChainConfigs: raw.ChainConfigs,
	}, nil
}
