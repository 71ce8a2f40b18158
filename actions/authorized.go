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
)

var (
	_ chain.Action = (*InitAuthorizedBuffer)(nil)
	_ chain.Action = (*AuthorizedEcho)(nil)
)

// InitAuthorizedBuffer creates the buffer derived from the authority and
// [Seed] with room for [Capacity] payload bytes. The authority pays rent.
//
// Accounts: [buffer, authority (signer), allocator]
type InitAuthorizedBuffer struct {
	Seed     uint64 `json:"seed"`
	Capacity uint32 `json:"capacity"`
}

func (*InitAuthorizedBuffer) GetTypeID() uint8 {
	return consts.InitAuthorizedBufferID
}

func (i *InitAuthorizedBuffer) Execute(ctx context.Context, env chain.Env, accounts []*chain.Account) error {
	it := chain.NewAccountIter(accounts)
	buffer, err := it.Next("buffer")
	if err != nil {
		return err
	}
	authority, err := it.Next("authority")
	if err != nil {
		return err
	}
	allocator, err := it.Next("allocator")
	if err != nil {
		return err
	}

	if err := auth.RequireSigner(authority, "authority"); err != nil {
		return err
	}
	proof, bump, err := auth.FindBuffer(env.ProgramID(), buffer, auth.AuthoritySeeds(authority.Address, i.Seed))
	if err != nil {
		return err
	}
	return createBuffer(ctx, env, allocator, authority, buffer, proof, &storage.Header{Bump: bump, Value: i.Seed}, i.Capacity)
}

func UnmarshalInitAuthorizedBuffer(b []byte) (chain.Action, error) {
	return codec.Decode[InitAuthorizedBuffer](b)
}

// AuthorizedEcho overwrites the payload of an authorized buffer. Only the
// authority the buffer was derived from may write.
//
// Accounts: [buffer, authority (signer)]
type AuthorizedEcho struct {
	Data []byte `json:"data"`
}

func (*AuthorizedEcho) GetTypeID() uint8 {
	return consts.AuthorizedEchoID
}

func (a *AuthorizedEcho) Execute(_ context.Context, env chain.Env, accounts []*chain.Account) error {
	it := chain.NewAccountIter(accounts)
	buffer, err := it.Next("buffer")
	if err != nil {
		return err
	}
	authority, err := it.Next("authority")
	if err != nil {
		return err
	}

	header, err := storage.ParseHeader(buffer.Data)
	if err != nil {
		return err
	}
	if err := auth.RequireSigner(authority, "authority"); err != nil {
		return err
	}
	seeds := auth.AuthoritySeeds(authority.Address, header.Value)
	if err := auth.VerifyBuffer(env.ProgramID(), buffer, header.Bump, seeds); err != nil {
		return err
	}
	return storage.WriteCapped(buffer.Data, a.Data)
}

func UnmarshalAuthorizedEcho(b []byte) (chain.Action, error) {
	return codec.Decode[AuthorizedEcho](b)
}
