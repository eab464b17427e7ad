// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/observability"
	"github.com/sygmaprotocol/sygma-core/store/lvldb"

	"github.com/spokehub/dataworker/api"
	"github.com/spokehub/dataworker/api/handlers"
	"github.com/spokehub/dataworker/bundle"
	"github.com/spokehub/dataworker/chains/evm"
	"github.com/spokehub/dataworker/config"
	"github.com/spokehub/dataworker/health"
	"github.com/spokehub/dataworker/jobs"
	"github.com/spokehub/dataworker/metrics"
	"github.com/spokehub/dataworker/store"
)

var Version string

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)

	var configuration *config.Config
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV()
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag)
		panicOnError(err)
	}

	logLevel, err := zerolog.ParseLevel(configuration.WorkerConfig.LogLevel)
	panicOnError(err)
	observability.ConfigureLogger(logLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	db, err := lvldb.NewLvlDB(viper.GetString(config.BlockstoreFlagName))
	panicOnError(err)
	bundleStore := store.NewBundleStore(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mp, err := observability.InitMetricProvider(ctx, configuration.WorkerConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	bundleMetrics, err := metrics.NewBundleMetrics(
		mp.Meter("dataworker-metric-provider"),
		configuration.WorkerConfig.Env,
		configuration.WorkerConfig.Id)
	panicOnError(err)

	clients := make(map[uint64]evm.EventFilterer)
	heads := make(map[uint64]jobs.HeadReader)
	spokePools := make(map[uint64]common.Address)
	confirmations := make(map[uint64]uint64)
	tokens := make(map[uint64]map[string]config.TokenConfig)

	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				cfg, err := evm.NewEVMConfig(chainConfig)
				panicOnError(err)

				client, err := evmClient.NewEVMClient(cfg.GeneralChainConfig.Endpoint, nil)
				panicOnError(err)

				chainID := *cfg.GeneralChainConfig.Id
				clients[chainID] = client
				heads[chainID] = client
				spokePools[chainID] = cfg.SpokePool
				confirmations[chainID] = cfg.GeneralChainConfig.BlockConfirmations
				tokens[chainID] = cfg.Tokens

				log.Info().Uint64("chain", chainID).Msgf("Registered EVM spoke %s", cfg.GeneralChainConfig.Name)
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	tokenStore := &config.TokenStore{Tokens: tokens}
	provider := evm.NewSpokeViewProvider(clients, spokePools)
	submitter := evm.NewCalldataSubmitter(evm.NewDryRunSender())

	controller := bundle.NewController(
		provider,
		bundleStore,
		submitter,
		tokenStore,
		bundleMetrics,
		common.HexToAddress(configuration.WorkerConfig.HubPool),
		spokePools)

	go health.StartHealthEndpoint(configuration.WorkerConfig.HealthPort)

	proposer := jobs.NewProposerJob(
		controller,
		bundleStore,
		heads,
		confirmations,
		configuration.WorkerConfig.LookbackBlocks,
		// nolint:gosec
		time.Duration(configuration.WorkerConfig.ProposeInterval)*time.Second)
	go proposer.Start(ctx)

	bundleHandler := handlers.NewBundleHandler(controller, bundleStore)
	go api.Serve(ctx, configuration.WorkerConfig.ApiAddr, bundleHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started dataworker. Version: v%s", Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
