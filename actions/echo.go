// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/consts"
	"github.com/ava-labs/echovm/storage"
)

var _ chain.Action = (*Echo)(nil)

// Echo writes [Data] once into a zeroed buffer allocated by the caller.
//
// Accounts: [buffer]
type Echo struct {
	Data []byte `json:"data"`
}

func (*Echo) GetTypeID() uint8 {
	return consts.EchoID
}

func (e *Echo) Execute(_ context.Context, _ chain.Env, accounts []*chain.Account) error {
	buffer, err := chain.NewAccountIter(accounts).Next("buffer")
	if err != nil {
		return err
	}
	return storage.WritePlain(buffer.Data, e.Data)
}

func UnmarshalEcho(b []byte) (chain.Action, error) {
	return codec.Decode[Echo](b)
}
