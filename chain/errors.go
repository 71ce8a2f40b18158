// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	// Instruction
	ErrInvalidInstructionData = errors.New("invalid instruction data")
	ErrNotEnoughAccounts      = errors.New("not enough account keys given to the instruction")

	// Buffer
	ErrNonEmptyBuffer = errors.New("buffer is not empty")
	ErrNotInitialized = errors.New("buffer is not initialized")

	// Authorization
	ErrAddressMismatch = errors.New("derived address does not match account")
	ErrMissingSigner   = errors.New("missing required signature")

	// Tokens
	ErrMintMismatch        = errors.New("token holding mint does not match")
	ErrOwnerMismatch       = errors.New("token holding owner does not match")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Host
	ErrIncorrectProgramID  = errors.New("incorrect program id")
	ErrInvalidAccountData  = errors.New("invalid account data")
	ErrAccountAlreadyInUse = errors.New("account already in use")
)
