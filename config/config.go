// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/crypto/ed25519"
	"github.com/ava-labs/echovm/ledger"
	"github.com/ava-labs/echovm/trace"
)

const (
	defaultLamportsPerByteYear = 3_480
	defaultExemptionYears      = 2
	defaultFaucetBalance       = 500_000_000_000
	defaultProgramID           = "1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE"
)

var ErrInvalidFormat = errors.New("invalid format: expected JSON or YAML")

type Config struct {
	LogLevel     string `json:"logLevel" yaml:"log_level"`
	LogDirectory string `json:"logDirectory" yaml:"log_directory"`
	LogDisplay   bool   `json:"logDisplay" yaml:"log_display"`

	LamportsPerByteYear uint64 `json:"lamportsPerByteYear" yaml:"lamports_per_byte_year"`
	ExemptionYears      uint64 `json:"exemptionYears" yaml:"exemption_years"`

	// ProgramID is where the echo program is deployed.
	ProgramID string `json:"programID" yaml:"program_id"`

	// FaucetKey is the hex private key of the account funded at genesis. A
	// new key is generated if empty.
	FaucetKey     string `json:"faucetKey" yaml:"faucet_key"`
	FaucetBalance uint64 `json:"faucetBalance" yaml:"faucet_balance"`

	Trace trace.Config `json:"trace" yaml:"trace"`
}

func NewDefault() *Config {
	return &Config{
		LogLevel:            logging.Info.String(),
		LamportsPerByteYear: defaultLamportsPerByteYear,
		ExemptionYears:      defaultExemptionYears,
		ProgramID:           defaultProgramID,
		FaucetBalance:       defaultFaucetBalance,
		Trace: trace.Config{
			TraceSampleRate: 1,
			Endpoint:        trace.DefaultEndpoint,
			AppName:         "echovm",
			Agent:           "echo-simulator",
		},
	}
}

// Load reads a JSON or YAML config from [path]. Fields missing from the
// file keep their default value.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := NewDefault()
	if err := Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Unmarshal decodes [b] into [v] as JSON, or as YAML if [b] is not a JSON
// object.
func Unmarshal(b []byte, v any) error {
	switch {
	case isJSON(b):
		return json.Unmarshal(b, v)
	case isYAML(b):
		return yaml.Unmarshal(b, v)
	default:
		return ErrInvalidFormat
	}
}

func isJSON(b []byte) bool {
	var js map[string]interface{}
	return json.Unmarshal(b, &js) == nil
}

func isYAML(b []byte) bool {
	var y map[string]interface{}
	return yaml.Unmarshal(b, &y) == nil
}

func (c *Config) GetLogLevel() (logging.Level, error) {
	return logging.ToLevel(c.LogLevel)
}

func (c *Config) GetRules() *ledger.Rules {
	return &ledger.Rules{
		LamportsPerByteYear: c.LamportsPerByteYear,
		ExemptionYears:      c.ExemptionYears,
	}
}

func (c *Config) GetProgramID() (codec.Address, error) {
	return codec.ParseAddress(c.ProgramID)
}

func (c *Config) GetFaucetKey() (ed25519.PrivateKey, error) {
	if len(c.FaucetKey) == 0 {
		return ed25519.GeneratePrivateKey()
	}
	return ed25519.HexToPrivateKey(c.FaucetKey)
}

func (c *Config) GetFaucetBalance() uint64        { return c.FaucetBalance }
func (c *Config) GetLogDisplay() bool             { return c.LogDisplay }
func (c *Config) GetTraceConfig() *trace.Config { return &c.Trace }
