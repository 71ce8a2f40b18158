// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/utils/units"

	"github.com/ava-labs/echovm/codec"
)

var (
	// SystemProgramID owns every keyed account and allocates new accounts.
	SystemProgramID = codec.EmptyAddress

	// TokenProgramID owns every mint and token holding.
	TokenProgramID = codec.MustParseAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
)

const (
	// MaxAccountSpace is the largest data size of a single account.
	MaxAccountSpace = 10 * units.MiB

	// AccountStorageOverhead is charged by rent on top of the data size.
	AccountStorageOverhead = 128

	accountPrefix byte = 0x0
)
