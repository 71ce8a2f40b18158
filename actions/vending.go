// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/echovm/auth"
	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/consts"
	"github.com/ava-labs/echovm/storage"
	"github.com/ava-labs/echovm/tokens"
)

var (
	_ chain.Action = (*InitVendingBuffer)(nil)
	_ chain.Action = (*VendingEcho)(nil)
)

// InitVendingBuffer creates the buffer that sells writes for [Price] units
// of the mint. Anyone may create it.
//
// Accounts: [buffer, mint, payer, allocator]
type InitVendingBuffer struct {
	Price    uint64 `json:"price"`
	Capacity uint32 `json:"capacity"`
}

func (*InitVendingBuffer) GetTypeID() uint8 {
	return consts.InitVendingBufferID
}

func (i *InitVendingBuffer) Execute(ctx context.Context, env chain.Env, accounts []*chain.Account) error {
	it := chain.NewAccountIter(accounts)
	buffer, err := it.Next("buffer")
	if err != nil {
		return err
	}
	mint, err := it.Next("mint")
	if err != nil {
		return err
	}
	payer, err := it.Next("payer")
	if err != nil {
		return err
	}
	allocator, err := it.Next("allocator")
	if err != nil {
		return err
	}

	proof, bump, err := auth.FindBuffer(env.ProgramID(), buffer, auth.VendingSeeds(mint.Address, i.Price))
	if err != nil {
		return err
	}
	return createBuffer(ctx, env, allocator, payer, buffer, proof, &storage.Header{Bump: bump, Value: i.Price}, i.Capacity)
}

func UnmarshalInitVendingBuffer(b []byte) (chain.Action, error) {
	return codec.Decode[InitVendingBuffer](b)
}

// VendingEcho burns the buffer price from the user's holding and overwrites
// the payload of the vending buffer.
//
// Accounts: [buffer, user (signer), user holding, mint, token program]
type VendingEcho struct {
	Data []byte `json:"data"`
}

func (*VendingEcho) GetTypeID() uint8 {
	return consts.VendingEchoID
}

func (v *VendingEcho) Execute(ctx context.Context, env chain.Env, accounts []*chain.Account) error {
	it := chain.NewAccountIter(accounts)
	buffer, err := it.Next("buffer")
	if err != nil {
		return err
	}
	user, err := it.Next("user")
	if err != nil {
		return err
	}
	holding, err := it.Next("user holding")
	if err != nil {
		return err
	}
	mint, err := it.Next("mint")
	if err != nil {
		return err
	}
	tokenProgram, err := it.Next("token program")
	if err != nil {
		return err
	}

	header, err := storage.ParseHeader(buffer.Data)
	if err != nil {
		return err
	}
	collaborator, err := env.Tokens(tokenProgram)
	if err != nil {
		return err
	}
	gateway := tokens.NewGateway(collaborator)
	if _, err := gateway.CheckHolding(ctx, holding, mint, user, header.Value); err != nil {
		return err
	}
	seeds := auth.VendingSeeds(mint.Address, header.Value)
	if err := auth.VerifyBuffer(env.ProgramID(), buffer, header.Bump, seeds); err != nil {
		return err
	}
	if err := gateway.Burn(ctx, holding, mint, user, header.Value); err != nil {
		return err
	}
	return storage.WriteCapped(buffer.Data, v.Data)
}

func UnmarshalVendingEcho(b []byte) (chain.Action, error) {
	return codec.Decode[VendingEcho](b)
}
