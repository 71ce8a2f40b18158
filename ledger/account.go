// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/state"
)

// storedAccount is the persisted form of an account. Signer and writable
// flags only exist for the duration of a transaction.
type storedAccount struct {
	Owner   codec.Address
	Balance uint64
	Data    []byte
}

// AccountKey returns the state key of [addr].
func AccountKey(addr codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen)
	k[0] = accountPrefix
	copy(k[1:], addr[:])
	return k
}

// getAccount returns the account stored at [addr]. Accounts that were never
// written are empty and owned by the system program.
func getAccount(ctx context.Context, im state.Immutable, addr codec.Address) (*chain.Account, error) {
	v, err := im.GetValue(ctx, AccountKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return &chain.Account{Address: addr, Owner: SystemProgramID}, nil
	}
	if err != nil {
		return nil, err
	}
	stored, err := codec.Decode[storedAccount](v)
	if err != nil {
		return nil, fmt.Errorf("%w: account %s: %w", chain.ErrInvalidAccountData, addr, err)
	}
	return &chain.Account{
		Address: addr,
		Owner:   stored.Owner,
		Balance: stored.Balance,
		Data:    stored.Data,
	}, nil
}

// putAccount persists [a]. Accounts left without balance, data and owner
// are removed.
func putAccount(ctx context.Context, mu state.Mutable, a *chain.Account) error {
	k := AccountKey(a.Address)
	if a.Balance == 0 && len(a.Data) == 0 && a.Owner == SystemProgramID {
		return mu.Remove(ctx, k)
	}
	v, err := codec.Marshal(&storedAccount{
		Owner:   a.Owner,
		Balance: a.Balance,
		Data:    a.Data,
	})
	if err != nil {
		return err
	}
	return mu.Insert(ctx, k, v)
}
