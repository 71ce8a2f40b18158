// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:generate go run go.uber.org/mock/mockgen -package=chain -destination=mock_dependencies.go . Allocator,TokenCollaborator

package chain

import (
	"context"

	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/pda"
)

type Rules interface {
	// MinimumBalance is the smallest balance that keeps an account of
	// [space] data bytes alive indefinitely.
	MinimumBalance(space uint64) uint64
}

// Env is what the host exposes to a running program.
type Env interface {
	ProgramID() codec.Address
	Rules() Rules

	// Allocator and Tokens return ErrIncorrectProgramID if [account] is not
	// the corresponding native program.
	Allocator(account *Account) (Allocator, error)
	Tokens(account *Account) (TokenCollaborator, error)
}

// Allocator creates accounts. Creating an account at a derived address
// requires a proof issued by the calling program.
type Allocator interface {
	CreateAccount(
		ctx context.Context,
		payer *Account,
		target *Account,
		balance uint64,
		space uint64,
		owner codec.Address,
		proof *pda.Proof,
	) error
}

type TokenHolding struct {
	Mint   codec.Address `json:"mint"`
	Owner  codec.Address `json:"owner"`
	Amount uint64        `json:"amount"`
}

type TokenCollaborator interface {
	// Holding decodes the token holding stored in [account].
	Holding(ctx context.Context, account *Account) (*TokenHolding, error)

	// Burn destroys [amount] units of [mint] held by [holding]. [owner] must
	// be the signing owner of the holding.
	Burn(ctx context.Context, holding *Account, mint *Account, owner *Account, amount uint64) error
}

type Action interface {
	codec.Typed

	// Execute applies the action to [accounts]. If an error is returned, the
	// host discards every change made to [accounts] and to any account
	// touched through [env].
	Execute(ctx context.Context, env Env, accounts []*Account) error
}

// Invocation is the entrypoint the host calls with the raw instruction data.
type Invocation interface {
	Handle(ctx context.Context, env Env, accounts []*Account, data []byte) error
}
