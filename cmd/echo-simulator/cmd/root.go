// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/config"
	"github.com/ava-labs/echovm/crypto/ed25519"
	"github.com/ava-labs/echovm/ledger"
	"github.com/ava-labs/echovm/registry"
	"github.com/ava-labs/echovm/trace"
	"github.com/ava-labs/echovm/utils"

	avatrace "github.com/ava-labs/avalanchego/trace"
)

const simulatorFolder = ".echo-simulator"

// simulator is a ledger with the echo program deployed and a funded faucet
// account.
type simulator struct {
	log        logging.Logger
	logFactory *logFactory

	tracer    avatrace.Tracer
	ledger    *ledger.Ledger
	programID codec.Address
	faucet    ed25519.PrivateKey
	metrics   *prometheus.Registry
}

func NewRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:   "echo-simulator",
		Short: "Echo program simulator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cobra.EnablePrefixMatching = true
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON or YAML config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides the config file")

	load := func() (*config.Config, error) {
		cfg := config.NewDefault()
		if len(configPath) > 0 {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return nil, err
			}
		}
		if len(logLevel) > 0 {
			cfg.LogLevel = logLevel
		}
		return cfg, nil
	}

	cmd.AddCommand(
		newRunCmd(load),
		newKeyCmd(),
	)
	return cmd
}

func newSimulator(cfg *config.Config) (*simulator, error) {
	level, err := cfg.GetLogLevel()
	if err != nil {
		return nil, err
	}
	logDir := cfg.LogDirectory
	if len(logDir) == 0 {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		logDir, err = utils.InitSubDirectory(path.Join(homeDir, simulatorFolder), "logs")
		if err != nil {
			return nil, err
		}
	}

	loggingConfig := logging.Config{}
	loggingConfig.LogLevel = level
	loggingConfig.DisplayLevel = level
	loggingConfig.Directory = logDir
	loggingConfig.LogFormat = logging.JSON
	loggingConfig.DisableWriterDisplaying = !cfg.GetLogDisplay()
	loggingConfig.MaxSize = 8
	loggingConfig.MaxFiles = 4
	loggingConfig.MaxAge = 7

	s := &simulator{
		logFactory: newLogFactory(loggingConfig),
		metrics:    prometheus.NewRegistry(),
	}
	s.log, err = s.logFactory.Make("simulator")
	if err != nil {
		s.logFactory.Close()
		return nil, err
	}
	if err := s.init(cfg); err != nil {
		s.Close()
		return nil, err
	}
	s.log.Info("simulator initialized",
		zap.String("log-level", level.String()),
		zap.Stringer("program", s.programID),
		zap.Stringer("faucet", s.faucet.Address()),
	)
	return s, nil
}

func (s *simulator) init(cfg *config.Config) error {
	var err error
	s.programID, err = cfg.GetProgramID()
	if err != nil {
		return err
	}
	s.faucet, err = cfg.GetFaucetKey()
	if err != nil {
		return err
	}
	s.tracer, err = trace.New(cfg.GetTraceConfig())
	if err != nil {
		return err
	}
	s.ledger, err = ledger.New(
		s.log,
		s.tracer,
		cfg.GetRules(),
		[]*ledger.Allocation{{Address: s.faucet.Address(), Balance: cfg.GetFaucetBalance()}},
		memdb.New(),
		s.metrics,
	)
	if err != nil {
		return err
	}
	processor, err := chain.NewProcessor(s.log, registry.Action, prometheus.WrapRegistererWithPrefix("echo_", s.metrics))
	if err != nil {
		return err
	}
	return s.ledger.Deploy(s.programID, processor)
}

func (s *simulator) Close() {
	if s.tracer != nil {
		if err := s.tracer.Close(); err != nil {
			s.log.Warn("failed to close tracer", zap.Error(err))
		}
	}
	s.logFactory.Close()
}
