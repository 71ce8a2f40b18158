// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/echovm/crypto/ed25519"
)

func writeFile(t *testing.T, name string, content string) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDefault(t *testing.T) {
	require := require.New(t)

	c := NewDefault()
	level, err := c.GetLogLevel()
	require.NoError(err)
	require.Equal(logging.Info, level)

	id, err := c.GetProgramID()
	require.NoError(err)
	require.Equal(defaultProgramID, id.String())

	require.False(c.GetTraceConfig().Enabled)
	require.Equal("echovm", c.GetTraceConfig().AppName)

	rules := c.GetRules()
	require.Equal(uint64((128+10)*defaultLamportsPerByteYear*defaultExemptionYears), rules.MinimumBalance(10))
}

func TestLoad(t *testing.T) {
	key, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "config.json",
			content: `{"logLevel": "debug", "exemptionYears": 3, "faucetKey": "` + key.Hex() + `"}`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: "log_level: debug\n" +
				"exemption_years: 3\n" +
				"faucet_key: " + key.Hex() + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			c, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(err)

			level, err := c.GetLogLevel()
			require.NoError(err)
			require.Equal(logging.Debug, level)
			require.Equal(uint64(3), c.ExemptionYears)
			require.Equal(uint64(defaultLamportsPerByteYear), c.LamportsPerByteYear)

			faucet, err := c.GetFaucetKey()
			require.NoError(err)
			require.Equal(key, faucet)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	require := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.yaml", "- [unterminated"))
	require.ErrorIs(err, ErrInvalidFormat)

	c := NewDefault()
	c.FaucetKey = "zz"
	_, err = c.GetFaucetKey()
	require.Error(err)
}
