// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tokens

import (
	"context"
	"fmt"

	"github.com/ava-labs/echovm/chain"
)

// Gateway charges for access by burning tokens through a token
// collaborator.
type Gateway struct {
	tokens chain.TokenCollaborator
}

func NewGateway(tokens chain.TokenCollaborator) *Gateway {
	return &Gateway{tokens: tokens}
}

// CheckHolding requires [holding] to hold at least [price] units of [mint]
// and to belong to [owner]. Checks run in that order: mint, owner, amount.
func (g *Gateway) CheckHolding(
	ctx context.Context,
	holding *chain.Account,
	mint *chain.Account,
	owner *chain.Account,
	price uint64,
) (*chain.TokenHolding, error) {
	h, err := g.tokens.Holding(ctx, holding)
	if err != nil {
		return nil, err
	}
	if h.Mint != mint.Address {
		return nil, fmt.Errorf("%w: holding is for %s, not %s", chain.ErrMintMismatch, h.Mint, mint.Address)
	}
	if h.Owner != owner.Address {
		return nil, fmt.Errorf("%w: holding belongs to %s, not %s", chain.ErrOwnerMismatch, h.Owner, owner.Address)
	}
	if h.Amount < price {
		return nil, fmt.Errorf("%w: holding has %d but price is %d", chain.ErrInsufficientBalance, h.Amount, price)
	}
	return h, nil
}

// Burn destroys [price] units from [holding] with the authority of [owner].
func (g *Gateway) Burn(
	ctx context.Context,
	holding *chain.Account,
	mint *chain.Account,
	owner *chain.Account,
	price uint64,
) error {
	return g.tokens.Burn(ctx, holding, mint, owner, price)
}
