// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "errors"

var (
	ErrNoSignatures      = errors.New("transaction has no signatures")
	ErrInvalidSignature  = errors.New("invalid transaction signature")
	ErrNoInstructions    = errors.New("transaction has no instructions")
	ErrUnknownProgram    = errors.New("unknown program")
	ErrProgramExists     = errors.New("program already deployed")
	ErrAccountNotPassed  = errors.New("account was not passed to the instruction")
	ErrUninitialized     = errors.New("account is not initialized")
	ErrAccountTooLarge   = errors.New("account data too large")
	ErrAccountHasData    = errors.New("account carries data")
	ErrInvalidGenesis    = errors.New("invalid genesis")
	ErrUnbalanced        = errors.New("sum of account balances changed")
	ErrReadonlyModified  = errors.New("instruction modified a read-only account")
	ErrExternalModified  = errors.New("instruction modified data of an account it does not own")
	ErrExternalDebit     = errors.New("instruction debited an account it does not own")
	ErrOwnerModified     = errors.New("instruction changed the owner of an account it does not own")
	ErrMetadataModified  = errors.New("instruction changed account metadata")
	ErrRentNotExempt     = errors.New("account balance is below the rent exempt minimum")
	ErrDuplicateGenesis  = errors.New("duplicate genesis account")
	ErrMintAuthority     = errors.New("signer is not the mint authority")
	ErrInvalidMintAmount = errors.New("invalid mint amount")
)
