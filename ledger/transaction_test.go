// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/crypto/ed25519"
	"github.com/ava-labs/echovm/state"
)

func newKey(t *testing.T) ed25519.PrivateKey {
	k, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)
	return k
}

func TestTransactionVerify(t *testing.T) {
	require := require.New(t)

	payer := newKey(t)
	other := newKey(t)
	ins, err := TransferInstruction(payer.Address(), other.Address(), 5)
	require.NoError(err)

	tx := NewTransaction(1, ins)
	require.NoError(tx.Sign(payer))
	signers, err := tx.Verify()
	require.NoError(err)
	require.True(signers.Contains(payer.Address()))
	require.False(signers.Contains(other.Address()))

	// Changing the message invalidates the signature.
	tx.Message.Nonce = 2
	_, err = tx.Verify()
	require.ErrorIs(err, ErrInvalidSignature)
}

func TestTransactionVerifyErrors(t *testing.T) {
	payer := newKey(t)
	other := newKey(t)
	ins, err := TransferInstruction(payer.Address(), other.Address(), 5)
	require.NoError(t, err)

	tests := []struct {
		name   string
		tx     func() *Transaction
		expErr error
	}{
		{
			name:   "no instructions",
			tx:     func() *Transaction { return NewTransaction(0) },
			expErr: ErrNoInstructions,
		},
		{
			name:   "no signatures",
			tx:     func() *Transaction { return NewTransaction(0, ins) },
			expErr: ErrNoSignatures,
		},
		{
			name: "wrong signer",
			tx: func() *Transaction {
				tx := NewTransaction(0, ins)
				require.NoError(t, tx.Sign(other))
				return tx
			},
			expErr: chain.ErrMissingSigner,
		},
		{
			name: "corrupt signature",
			tx: func() *Transaction {
				tx := NewTransaction(0, ins)
				require.NoError(t, tx.Sign(payer))
				tx.Signatures[0].Signature[0] ^= 0xff
				return tx
			},
			expErr: ErrInvalidSignature,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tx().Verify()
			require.ErrorIs(t, err, tt.expErr)
		})
	}
}

func TestTransactionID(t *testing.T) {
	require := require.New(t)

	payer := newKey(t)
	ins, err := TransferInstruction(payer.Address(), codec.Address{1}, 5)
	require.NoError(err)

	a := NewTransaction(1, ins)
	b := NewTransaction(2, ins)
	idA, err := a.ID()
	require.NoError(err)
	idB, err := b.ID()
	require.NoError(err)
	require.NotEqual(idA, idB)

	again, err := a.ID()
	require.NoError(err)
	require.Equal(idA, again)
}

func TestTransactionStateKeys(t *testing.T) {
	require := require.New(t)

	from := codec.Address{1}
	to := codec.Address{2}
	mint := codec.Address{3}
	transfer, err := TransferInstruction(from, to, 1)
	require.NoError(err)
	holding, err := InitializeHoldingInstruction(to, mint, from)
	require.NoError(err)

	keys := NewTransaction(0, transfer, holding).StateKeys()
	require.Len(keys, 3)
	require.True(keys[string(AccountKey(from))].Has(state.All))
	require.True(keys[string(AccountKey(to))].Has(state.All))
	require.True(keys[string(AccountKey(mint))].Has(state.Read))
	require.False(keys[string(AccountKey(mint))].Has(state.Write))
}
