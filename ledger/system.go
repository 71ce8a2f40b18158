// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

const (
	CreateAccountID uint8 = iota
	TransferID
)

var (
	SystemActions = codec.NewTypeParser[chain.Action]()

	_ chain.Action = (*CreateAccount)(nil)
	_ chain.Action = (*Transfer)(nil)
)

func init() {
	errs := &wrappers.Errs{}
	errs.Add(
		SystemActions.Register(&CreateAccount{}, UnmarshalCreateAccount),
		SystemActions.Register(&Transfer{}, UnmarshalTransfer),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// createAccount moves [balance] from [payer] to [target] and assigns
// [space] zeroed bytes and [owner] to [target].
func createAccount(rules chain.Rules, payer *chain.Account, target *chain.Account, balance uint64, space uint64, owner codec.Address) error {
	if !payer.Signer {
		return fmt.Errorf("%w: payer %s", chain.ErrMissingSigner, payer.Address)
	}
	if target.Balance > 0 || len(target.Data) > 0 || target.Owner != SystemProgramID {
		return fmt.Errorf("%w: %s", chain.ErrAccountAlreadyInUse, target.Address)
	}
	if space > MaxAccountSpace {
		return fmt.Errorf("%w: %d bytes", ErrAccountTooLarge, space)
	}
	if minimum := rules.MinimumBalance(space); balance < minimum {
		return fmt.Errorf("%w: %d < %d", ErrRentNotExempt, balance, minimum)
	}
	if err := debit(payer, balance); err != nil {
		return err
	}
	target.Balance = balance
	target.Data = make([]byte, space)
	target.Owner = owner
	return nil
}

func debit(a *chain.Account, amount uint64) error {
	if len(a.Data) > 0 {
		return fmt.Errorf("%w: %s cannot pay", ErrAccountHasData, a.Address)
	}
	balance, err := smath.Sub(a.Balance, amount)
	if err != nil {
		return fmt.Errorf("%w: %s has %d, needs %d", chain.ErrInsufficientBalance, a.Address, a.Balance, amount)
	}
	a.Balance = balance
	return nil
}

// CreateAccount creates a keyed account. Both the payer and the new account
// must sign.
//
// Accounts: [payer (signer), new account (signer)]
type CreateAccount struct {
	Balance uint64        `json:"balance"`
	Space   uint64        `json:"space"`
	Owner   codec.Address `json:"owner"`
}

func (*CreateAccount) GetTypeID() uint8 {
	return CreateAccountID
}

func (c *CreateAccount) Execute(_ context.Context, env chain.Env, accounts []*chain.Account) error {
	it := chain.NewAccountIter(accounts)
	payer, err := it.Next("payer")
	if err != nil {
		return err
	}
	target, err := it.Next("new account")
	if err != nil {
		return err
	}
	if !target.Signer {
		return fmt.Errorf("%w: new account %s", chain.ErrMissingSigner, target.Address)
	}
	return createAccount(env.Rules(), payer, target, c.Balance, c.Space, c.Owner)
}

func UnmarshalCreateAccount(b []byte) (chain.Action, error) {
	return codec.Decode[CreateAccount](b)
}

// Transfer moves [Amount] between two system accounts.
//
// Accounts: [from (signer), to]
type Transfer struct {
	Amount uint64 `json:"amount"`
}

func (*Transfer) GetTypeID() uint8 {
	return TransferID
}

func (t *Transfer) Execute(_ context.Context, _ chain.Env, accounts []*chain.Account) error {
	it := chain.NewAccountIter(accounts)
	from, err := it.Next("from")
	if err != nil {
		return err
	}
	to, err := it.Next("to")
	if err != nil {
		return err
	}
	if !from.Signer {
		return fmt.Errorf("%w: from %s", chain.ErrMissingSigner, from.Address)
	}
	if err := debit(from, t.Amount); err != nil {
		return err
	}
	balance, err := smath.Add(to.Balance, t.Amount)
	if err != nil {
		return err
	}
	to.Balance = balance
	return nil
}

func UnmarshalTransfer(b []byte) (chain.Action, error) {
	return codec.Decode[Transfer](b)
}
