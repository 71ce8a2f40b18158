// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tokens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
)

var errHolding = errors.New("holding error")

func TestCheckHolding(t *testing.T) {
	mint := &chain.Account{Address: codec.Address{1}}
	user := &chain.Account{Address: codec.Address{2}, Signer: true}
	holding := &chain.Account{Address: codec.Address{3}}

	tests := []struct {
		name    string
		holding *chain.TokenHolding
		err     error
		price   uint64
		wantErr error
	}{
		{
			name:    "Valid",
			holding: &chain.TokenHolding{Mint: mint.Address, Owner: user.Address, Amount: 10},
			price:   10,
		},
		{
			name:    "FreeWithEmptyHolding",
			holding: &chain.TokenHolding{Mint: mint.Address, Owner: user.Address},
		},
		{
			name:    "WrongMint",
			holding: &chain.TokenHolding{Mint: codec.Address{9}, Owner: codec.Address{9}, Amount: 0},
			price:   10,
			wantErr: chain.ErrMintMismatch,
		},
		{
			name:    "WrongOwner",
			holding: &chain.TokenHolding{Mint: mint.Address, Owner: codec.Address{9}, Amount: 0},
			price:   10,
			wantErr: chain.ErrOwnerMismatch,
		},
		{
			name:    "Insufficient",
			holding: &chain.TokenHolding{Mint: mint.Address, Owner: user.Address, Amount: 9},
			price:   10,
			wantErr: chain.ErrInsufficientBalance,
		},
		{
			name:    "CollaboratorError",
			err:     errHolding,
			wantErr: errHolding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			collaborator := chain.NewMockTokenCollaborator(ctrl)
			collaborator.EXPECT().Holding(ctx, holding).Return(tt.holding, tt.err)

			h, err := NewGateway(collaborator).CheckHolding(ctx, holding, mint, user, tt.price)
			require.ErrorIs(err, tt.wantErr)
			if tt.wantErr == nil {
				require.Equal(tt.holding, h)
			}
		})
	}
}

func TestBurn(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	mint := &chain.Account{Address: codec.Address{1}}
	user := &chain.Account{Address: codec.Address{2}, Signer: true}
	holding := &chain.Account{Address: codec.Address{3}}

	collaborator := chain.NewMockTokenCollaborator(ctrl)
	collaborator.EXPECT().Burn(ctx, holding, mint, user, uint64(7)).Return(nil)
	require.NoError(NewGateway(collaborator).Burn(ctx, holding, mint, user, 7))

	collaborator.EXPECT().Burn(ctx, holding, mint, user, uint64(7)).Return(chain.ErrMissingSigner)
	require.ErrorIs(NewGateway(collaborator).Burn(ctx, holding, mint, user, 7), chain.ErrMissingSigner)
}
