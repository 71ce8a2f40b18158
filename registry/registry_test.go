// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/echovm/actions"
	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
)

func TestWireFormat(t *testing.T) {
	tests := []struct {
		name   string
		action chain.Action
		bytes  []byte
	}{
		{
			name:   "Echo",
			action: &actions.Echo{Data: []byte("hi")},
			bytes:  []byte{0, 2, 0, 0, 0, 'h', 'i'},
		},
		{
			name:   "InitAuthorizedBuffer",
			action: &actions.InitAuthorizedBuffer{Seed: 42, Capacity: 20},
			bytes:  []byte{1, 42, 0, 0, 0, 0, 0, 0, 0, 20, 0, 0, 0},
		},
		{
			name:   "AuthorizedEcho",
			action: &actions.AuthorizedEcho{Data: []byte{7}},
			bytes:  []byte{2, 1, 0, 0, 0, 7},
		},
		{
			name:   "InitVendingBuffer",
			action: &actions.InitVendingBuffer{Price: 0x0100, Capacity: 1},
			bytes:  []byte{3, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		},
		{
			name:   "VendingEcho",
			action: &actions.VendingEcho{Data: []byte("ok")},
			bytes:  []byte{4, 2, 0, 0, 0, 'o', 'k'},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			b, err := Action.Marshal(tt.action)
			require.NoError(err)
			require.Equal(tt.bytes, b)

			parsed, err := Action.Unmarshal(tt.bytes)
			require.NoError(err)
			require.Equal(tt.action, parsed)

			name, ok := Action.Name(tt.action.GetTypeID())
			require.True(ok)
			require.Equal("actions."+tt.name, name)
		})
	}
}

func TestRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		bytes   []byte
		wantErr error
	}{
		{"Empty", nil, codec.ErrInsufficientLength},
		{"UnknownOpcode", []byte{5}, codec.ErrUnknownType},
		{"MissingLength", []byte{0, 1, 0}, codec.ErrInvalidEncoding},
		{"ShortPayload", []byte{0, 3, 0, 0, 0, 'a'}, codec.ErrInvalidEncoding},
		{"ShortCapacity", []byte{1, 42, 0, 0, 0, 0, 0, 0, 0, 20}, codec.ErrInvalidEncoding},
		{"Trailing", []byte{2, 0, 0, 0, 0, 1}, codec.ErrTrailingBytes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Action.Unmarshal(tt.bytes)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
