// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/pda"
	"github.com/ava-labs/echovm/storage"
)

var (
	programID   = codec.MustParseAddress("1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE")
	authorityID = codec.MustParseAddress("US517G5965aydkZ46HS38QLi7UQiSojurfbQfKCELFx")
	allocatorID = codec.Address{0xa1}
	tokensID    = codec.Address{0xa2}

	// Derived from [authorityID] with seed 42.
	authorizedBufferID   = codec.MustParseAddress("BbN4XGnfjqgEmcnnYu4Le63pkscxwfghhTtn2dCnaiav")
	authorizedBufferBump = uint8(253)

	// Derived from mint [authorityID] with price 1000.
	vendingBufferID   = codec.MustParseAddress("9HyrGeqtfVoyJpkAZx1xnje9sghS6q9M3E3ZKVViBi24")
	vendingBufferBump = uint8(255)
)

type testRules struct{}

func (testRules) MinimumBalance(space uint64) uint64 {
	return space * 10
}

type testEnv struct {
	allocator chain.Allocator
	tokens    chain.TokenCollaborator
}

func (*testEnv) ProgramID() codec.Address { return programID }

func (*testEnv) Rules() chain.Rules { return testRules{} }

func (e *testEnv) Allocator(a *chain.Account) (chain.Allocator, error) {
	if a.Address != allocatorID {
		return nil, chain.ErrIncorrectProgramID
	}
	return e.allocator, nil
}

func (e *testEnv) Tokens(a *chain.Account) (chain.TokenCollaborator, error) {
	if a.Address != tokensID {
		return nil, chain.ErrIncorrectProgramID
	}
	return e.tokens, nil
}

// allocate mimics the allocator creating [target].
func allocate(_ context.Context, payer, target *chain.Account, balance, space uint64, owner codec.Address, proof *pda.Proof) error {
	if err := proof.Authorizes(programID, target.Address); err != nil {
		return err
	}
	payer.Balance -= balance
	target.Balance += balance
	target.Owner = owner
	target.Data = make([]byte, space)
	return nil
}

func managedBuffer(addr codec.Address, bump uint8, value uint64, capacity uint32) *chain.Account {
	data := make([]byte, storage.Size(capacity))
	if err := storage.WriteHeader(data, &storage.Header{Bump: bump, Value: value}); err != nil {
		panic(err)
	}
	return &chain.Account{Address: addr, Owner: programID, Writable: true, Data: data}
}
