// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client builds echo program instructions for the ledger.
package client

import (
	"github.com/ava-labs/echovm/actions"
	"github.com/ava-labs/echovm/auth"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/ledger"
	"github.com/ava-labs/echovm/pda"
	"github.com/ava-labs/echovm/registry"
)

// Client builds instructions for the echo program deployed at [ProgramID].
type Client struct {
	ProgramID codec.Address
}

func New(programID codec.Address) *Client {
	return &Client{ProgramID: programID}
}

// AuthorizedBuffer returns the address and bump of the buffer of
// [authority] and [seed].
func (c *Client) AuthorizedBuffer(authority codec.Address, seed uint64) (codec.Address, uint8, error) {
	return pda.FindProgramAddress(c.ProgramID, auth.AuthoritySeeds(authority, seed)...)
}

// VendingBuffer returns the address and bump of the buffer selling writes
// for [price] units of [mint].
func (c *Client) VendingBuffer(mint codec.Address, price uint64) (codec.Address, uint8, error) {
	return pda.FindProgramAddress(c.ProgramID, auth.VendingSeeds(mint, price)...)
}

// Echo writes [data] into the caller allocated [buffer].
func (c *Client) Echo(buffer codec.Address, data []byte) (*ledger.Instruction, error) {
	return ledger.NewInstruction(
		c.ProgramID,
		registry.Action,
		&actions.Echo{Data: data},
		ledger.Writable(buffer),
	)
}

func (c *Client) InitAuthorizedBuffer(authority codec.Address, seed uint64, capacity uint32) (*ledger.Instruction, error) {
	buffer, _, err := c.AuthorizedBuffer(authority, seed)
	if err != nil {
		return nil, err
	}
	return ledger.NewInstruction(
		c.ProgramID,
		registry.Action,
		&actions.InitAuthorizedBuffer{Seed: seed, Capacity: capacity},
		ledger.Writable(buffer),
		ledger.Signer(authority),
		ledger.Readonly(ledger.SystemProgramID),
	)
}

// AuthorizedEcho overwrites the payload of [buffer], which must be the
// buffer of [authority].
func (c *Client) AuthorizedEcho(buffer, authority codec.Address, data []byte) (*ledger.Instruction, error) {
	return ledger.NewInstruction(
		c.ProgramID,
		registry.Action,
		&actions.AuthorizedEcho{Data: data},
		ledger.Writable(buffer),
		ledger.AccountMeta{Address: authority, Signer: true},
	)
}

func (c *Client) InitVendingBuffer(mint, payer codec.Address, price uint64, capacity uint32) (*ledger.Instruction, error) {
	buffer, _, err := c.VendingBuffer(mint, price)
	if err != nil {
		return nil, err
	}
	return ledger.NewInstruction(
		c.ProgramID,
		registry.Action,
		&actions.InitVendingBuffer{Price: price, Capacity: capacity},
		ledger.Writable(buffer),
		ledger.Readonly(mint),
		ledger.Signer(payer),
		ledger.Readonly(ledger.SystemProgramID),
	)
}

// VendingEcho pays the price of [buffer] from [holding] and overwrites its
// payload.
func (c *Client) VendingEcho(buffer, user, holding, mint codec.Address, data []byte) (*ledger.Instruction, error) {
	return ledger.NewInstruction(
		c.ProgramID,
		registry.Action,
		&actions.VendingEcho{Data: data},
		ledger.Writable(buffer),
		ledger.AccountMeta{Address: user, Signer: true},
		ledger.Writable(holding),
		ledger.Writable(mint),
		ledger.Readonly(ledger.TokenProgramID),
	)
}
