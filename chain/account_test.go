// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountIter(t *testing.T) {
	require := require.New(t)

	first := &Account{Balance: 1}
	second := &Account{Balance: 2}
	it := NewAccountIter([]*Account{first, second})

	a, err := it.Next("buffer")
	require.NoError(err)
	require.Same(first, a)
	a, err = it.Next("authority")
	require.NoError(err)
	require.Same(second, a)
	_, err = it.Next("allocator")
	require.ErrorIs(err, ErrNotEnoughAccounts)
	require.ErrorContains(err, "allocator")
}

func TestAccountIsZeroed(t *testing.T) {
	require := require.New(t)

	require.True((&Account{}).IsZeroed())
	require.True((&Account{Data: make([]byte, 8)}).IsZeroed())
	require.False((&Account{Data: []byte{0, 0, 1}}).IsZeroed())
}

func TestAccountClone(t *testing.T) {
	require := require.New(t)

	a := &Account{Signer: true, Balance: 5, Data: []byte{1, 2}}
	c := a.Clone()
	require.Equal(a, c)
	c.Data[0] = 9
	c.Balance = 6
	require.Equal([]byte{1, 2}, a.Data)
	require.Equal(uint64(5), a.Balance)
}
