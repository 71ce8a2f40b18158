// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/pda"
	"github.com/ava-labs/echovm/storage"
)

// createBuffer has the allocator create [buffer] as a rent exempt managed
// buffer owned by the program and writes [header] into it.
func createBuffer(
	ctx context.Context,
	env chain.Env,
	allocatorAccount *chain.Account,
	payer *chain.Account,
	buffer *chain.Account,
	proof *pda.Proof,
	header *storage.Header,
	capacity uint32,
) error {
	allocator, err := env.Allocator(allocatorAccount)
	if err != nil {
		return err
	}
	space := storage.Size(capacity)
	if err := allocator.CreateAccount(
		ctx,
		payer,
		buffer,
		env.Rules().MinimumBalance(space),
		space,
		env.ProgramID(),
		proof,
	); err != nil {
		return err
	}
	return storage.WriteHeader(buffer.Data, header)
}
