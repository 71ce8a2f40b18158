// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

type accountSet map[codec.Address]*chain.Account

func (s accountSet) clone() accountSet {
	c := make(accountSet, len(s))
	for addr, a := range s {
		c[addr] = a.Clone()
	}
	return c
}

func (s accountSet) balance() (uint64, error) {
	var total uint64
	for _, a := range s {
		var err error
		total, err = smath.Add(total, a.Balance)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// modified returns true if [post] differs from [pre] in owner, balance or
// data.
func modified(pre *chain.Account, post *chain.Account) bool {
	return pre.Owner != post.Owner ||
		pre.Balance != post.Balance ||
		!bytes.Equal(pre.Data, post.Data)
}

// verifyAccount checks that [programID] was allowed to turn [pre] into
// [post].
func verifyAccount(programID codec.Address, pre *chain.Account, post *chain.Account) error {
	if pre.Address != post.Address || pre.Signer != post.Signer || pre.Writable != post.Writable {
		return fmt.Errorf("%w: %s", ErrMetadataModified, pre.Address)
	}
	if modified(pre, post) && !post.Writable {
		return fmt.Errorf("%w: %s", ErrReadonlyModified, pre.Address)
	}
	if pre.Owner != post.Owner {
		if pre.Owner != programID {
			return fmt.Errorf("%w: %s owned by %s", ErrOwnerModified, pre.Address, pre.Owner)
		}
		if !pre.IsZeroed() {
			return fmt.Errorf("%w: %s is not zeroed", ErrOwnerModified, pre.Address)
		}
	}
	if !bytes.Equal(pre.Data, post.Data) && pre.Owner != programID {
		return fmt.Errorf("%w: %s owned by %s", ErrExternalModified, pre.Address, pre.Owner)
	}
	if post.Balance < pre.Balance && pre.Owner != programID {
		return fmt.Errorf("%w: %s owned by %s", ErrExternalDebit, pre.Address, pre.Owner)
	}
	return nil
}

// verifyChanges checks every account of [post] against its state in [pre]
// and that no balance was created or destroyed.
func verifyChanges(programID codec.Address, pre accountSet, post accountSet) error {
	for addr, a := range post {
		if err := verifyAccount(programID, pre[addr], a); err != nil {
			return err
		}
	}
	before, err := pre.balance()
	if err != nil {
		return err
	}
	after, err := post.balance()
	if err != nil {
		return err
	}
	if before != after {
		return fmt.Errorf("%w: %d before, %d after", ErrUnbalanced, before, after)
	}
	return nil
}
