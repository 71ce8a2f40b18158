// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
)

func Signer(addr codec.Address) AccountMeta {
	return AccountMeta{Address: addr, Signer: true, Writable: true}
}

func Writable(addr codec.Address) AccountMeta {
	return AccountMeta{Address: addr, Writable: true}
}

func Readonly(addr codec.Address) AccountMeta {
	return AccountMeta{Address: addr}
}

// NewInstruction encodes [action] with [parser] as an instruction of
// [programID].
func NewInstruction(
	programID codec.Address,
	parser *codec.TypeParser[chain.Action],
	action chain.Action,
	accounts ...AccountMeta,
) (*Instruction, error) {
	data, err := parser.Marshal(action)
	if err != nil {
		return nil, err
	}
	return &Instruction{
		ProgramID: programID,
		Accounts:  accounts,
		Data:      data,
	}, nil
}

func CreateAccountInstruction(payer, target codec.Address, balance, space uint64, owner codec.Address) (*Instruction, error) {
	return NewInstruction(
		SystemProgramID,
		SystemActions,
		&CreateAccount{Balance: balance, Space: space, Owner: owner},
		Signer(payer),
		Signer(target),
	)
}

func TransferInstruction(from, to codec.Address, amount uint64) (*Instruction, error) {
	return NewInstruction(
		SystemProgramID,
		SystemActions,
		&Transfer{Amount: amount},
		Signer(from),
		Writable(to),
	)
}

func InitializeMintInstruction(mint, authority codec.Address, decimals uint8) (*Instruction, error) {
	return NewInstruction(
		TokenProgramID,
		TokenActions,
		&InitializeMint{Decimals: decimals, Authority: authority},
		Writable(mint),
	)
}

func InitializeHoldingInstruction(holding, mint, owner codec.Address) (*Instruction, error) {
	return NewInstruction(
		TokenProgramID,
		TokenActions,
		&InitializeHolding{},
		Writable(holding),
		Readonly(mint),
		Readonly(owner),
	)
}

func MintToInstruction(mint, holding, authority codec.Address, amount uint64) (*Instruction, error) {
	return NewInstruction(
		TokenProgramID,
		TokenActions,
		&MintTo{Amount: amount},
		Writable(mint),
		Writable(holding),
		AccountMeta{Address: authority, Signer: true},
	)
}

func BurnInstruction(holding, mint, owner codec.Address, amount uint64) (*Instruction, error) {
	return NewInstruction(
		TokenProgramID,
		TokenActions,
		&Burn{Amount: amount},
		Writable(holding),
		Writable(mint),
		AccountMeta{Address: owner, Signer: true},
	)
}
