// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/echovm/codec"
)

// Account is a ledger account lent to an instruction for the duration of one
// invocation. The instruction may modify [Balance] and [Data] in place; the
// host decides whether the modifications are kept.
type Account struct {
	Address codec.Address
	Owner   codec.Address

	Signer   bool
	Writable bool

	Balance uint64
	Data    []byte
}

// IsZeroed returns true if every byte of the account data is zero.
func (a *Account) IsZeroed() bool {
	for _, b := range a.Data {
		if b != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of a.
func (a *Account) Clone() *Account {
	c := *a
	c.Data = append([]byte(nil), a.Data...)
	return &c
}

// AccountIter hands out the accounts of an instruction in order.
type AccountIter struct {
	accounts []*Account
	next     int
}

func NewAccountIter(accounts []*Account) *AccountIter {
	return &AccountIter{accounts: accounts}
}

// Next returns the next account. [role] is only used for the error message.
func (it *AccountIter) Next(role string) (*Account, error) {
	if it.next >= len(it.accounts) {
		return nil, fmt.Errorf("%w: missing %s account at index %d", ErrNotEnoughAccounts, role, it.next)
	}
	a := it.accounts[it.next]
	it.next++
	return a, nil
}
