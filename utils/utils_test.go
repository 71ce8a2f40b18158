// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSubDirectory(t *testing.T) {
	require := require.New(t)

	p, err := InitSubDirectory(t.TempDir(), "logs")
	require.NoError(err)
	require.DirExists(p)
}

func TestBalance(t *testing.T) {
	require := require.New(t)

	require.Equal("1.500000000", FormatBalance(1_500_000_000))
	require.Equal("0.000000001", FormatBalance(1))

	bal, err := ParseBalance("2.25")
	require.NoError(err)
	require.Equal(uint64(2_250_000_000), bal)

	_, err = ParseBalance("two")
	require.Error(err)
}
