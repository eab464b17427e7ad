// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName     = "config"
	BlockstoreFlagName = "blockstore"
)

func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlagName, "env", "Path to JSON configuration file, or 'env' to configure from environment")
	_ = viper.BindPFlag(ConfigFlagName, cmd.PersistentFlags().Lookup(ConfigFlagName))

	cmd.PersistentFlags().String(BlockstoreFlagName, "./lvldbdata", "Path to the state database directory")
	_ = viper.BindPFlag(BlockstoreFlagName, cmd.PersistentFlags().Lookup(BlockstoreFlagName))
}
