// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"fmt"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/pda"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var (
	_ chain.Env               = (*invocationEnv)(nil)
	_ chain.Allocator         = (*systemCaller)(nil)
	_ chain.TokenCollaborator = (*tokenCaller)(nil)
)

// invocationEnv is the environment of one instruction. It tracks the state
// of every account at the start of the instruction so the host can verify
// the program only made changes it was entitled to.
type invocationEnv struct {
	rules     *Rules
	programID codec.Address
	accounts  accountSet
	pre       accountSet
}

func newInvocationEnv(rules *Rules, programID codec.Address, accounts accountSet) *invocationEnv {
	return &invocationEnv{
		rules:     rules,
		programID: programID,
		accounts:  accounts,
		pre:       accounts.clone(),
	}
}

func (e *invocationEnv) ProgramID() codec.Address {
	return e.programID
}

func (e *invocationEnv) Rules() chain.Rules {
	return e.rules
}

func (e *invocationEnv) Allocator(account *chain.Account) (chain.Allocator, error) {
	if account.Address != SystemProgramID {
		return nil, fmt.Errorf("%w: expected system program but got %s", chain.ErrIncorrectProgramID, account.Address)
	}
	return &systemCaller{env: e}, nil
}

func (e *invocationEnv) Tokens(account *chain.Account) (chain.TokenCollaborator, error) {
	if account.Address != TokenProgramID {
		return nil, fmt.Errorf("%w: expected token program but got %s", chain.ErrIncorrectProgramID, account.Address)
	}
	return &tokenCaller{env: e}, nil
}

// verify checks the changes of the whole instruction.
func (e *invocationEnv) verify() error {
	return verifyChanges(e.programID, e.pre, e.accounts)
}

// invoke runs [f] as [callee] on [accounts]. Changes the caller made to
// [accounts] so far are verified first. Changes made by [f] are verified
// against [callee] and are not attributed to the caller afterwards.
func (e *invocationEnv) invoke(callee codec.Address, accounts []*chain.Account, f func() error) error {
	involved := make(accountSet, len(accounts))
	for _, a := range accounts {
		if e.accounts[a.Address] != a {
			return fmt.Errorf("%w: %s", ErrAccountNotPassed, a.Address)
		}
		if err := verifyAccount(e.programID, e.pre[a.Address], a); err != nil {
			return err
		}
		involved[a.Address] = a
	}
	before := involved.clone()
	if err := f(); err != nil {
		return err
	}
	if err := verifyChanges(callee, before, involved); err != nil {
		return err
	}
	for addr, a := range involved {
		pre := e.pre[addr]
		balance, err := shift(pre.Balance, before[addr].Balance, a.Balance)
		if err != nil {
			return err
		}
		next := a.Clone()
		next.Balance = balance
		e.pre[addr] = next
	}
	return nil
}

// shift applies the change from [from] to [to] to [v].
func shift(v, from, to uint64) (uint64, error) {
	if to >= from {
		return smath.Add(v, to-from)
	}
	return smath.Sub(v, from-to)
}

// systemCaller lets a program create accounts through the system program.
type systemCaller struct {
	env *invocationEnv
}

func (s *systemCaller) CreateAccount(
	_ context.Context,
	payer *chain.Account,
	target *chain.Account,
	balance uint64,
	space uint64,
	owner codec.Address,
	proof *pda.Proof,
) error {
	if !target.Signer {
		if proof == nil {
			return fmt.Errorf("%w: new account %s", chain.ErrMissingSigner, target.Address)
		}
		if err := proof.Authorizes(s.env.programID, target.Address); err != nil {
			return fmt.Errorf("%w: %w", chain.ErrMissingSigner, err)
		}
	}
	return s.env.invoke(SystemProgramID, []*chain.Account{payer, target}, func() error {
		return createAccount(s.env.rules, payer, target, balance, space, owner)
	})
}

// tokenCaller lets a program read and burn token holdings through the token
// program.
type tokenCaller struct {
	env *invocationEnv
}

func (*tokenCaller) Holding(_ context.Context, account *chain.Account) (*chain.TokenHolding, error) {
	h, err := parseHolding(account)
	if err != nil {
		return nil, err
	}
	return h.TokenHolding(), nil
}

func (t *tokenCaller) Burn(
	_ context.Context,
	holding *chain.Account,
	mint *chain.Account,
	owner *chain.Account,
	amount uint64,
) error {
	return t.env.invoke(TokenProgramID, []*chain.Account{holding, mint, owner}, func() error {
		return burn(holding, mint, owner, amount)
	})
}
