// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/echovm/actions"
	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
)

var Action *codec.TypeParser[chain.Action]

// Setup types
func init() {
	Action = codec.NewTypeParser[chain.Action]()

	errs := &wrappers.Errs{}
	errs.Add(
		// The opcode of each action is part of the wire format. Never
		// renumber existing actions.
		Action.Register(&actions.Echo{}, actions.UnmarshalEcho),
		Action.Register(&actions.InitAuthorizedBuffer{}, actions.UnmarshalInitAuthorizedBuffer),
		Action.Register(&actions.AuthorizedEcho{}, actions.UnmarshalAuthorizedEcho),
		Action.Register(&actions.InitVendingBuffer{}, actions.UnmarshalInitVendingBuffer),
		Action.Register(&actions.VendingEcho{}, actions.UnmarshalVendingEcho),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}
