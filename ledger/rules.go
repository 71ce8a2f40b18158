// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "github.com/ava-labs/echovm/chain"

var _ chain.Rules = (*Rules)(nil)

type Rules struct {
	LamportsPerByteYear uint64
	ExemptionYears      uint64
}

// MinimumBalance returns the balance that exempts an account of [space]
// bytes from rent.
func (r *Rules) MinimumBalance(space uint64) uint64 {
	return (AccountStorageOverhead + space) * r.LamportsPerByteYear * r.ExemptionYears
}
