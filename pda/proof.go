// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pda

import (
	"fmt"

	"github.com/ava-labs/echovm/codec"
)

// Proof is the capability a program hands to a collaborator to act on behalf
// of one of its derived addresses. It holds no secret: the collaborator
// re-derives the address from the seeds and compares.
type Proof struct {
	ProgramID codec.Address
	// Seeds include the bump as the final element.
	Seeds [][]byte
}

// NewProof returns the proof for the address derived from [seeds] and [bump].
func NewProof(programID codec.Address, bump uint8, seeds ...[]byte) *Proof {
	withBump := make([][]byte, 0, len(seeds)+1)
	for _, seed := range seeds {
		withBump = append(withBump, append([]byte(nil), seed...))
	}
	return &Proof{
		ProgramID: programID,
		Seeds:     append(withBump, []byte{bump}),
	}
}

// Address returns the derived address the proof authorizes.
func (p *Proof) Address() (codec.Address, error) {
	return CreateProgramAddress(p.ProgramID, p.Seeds...)
}

// Authorizes returns nil if the proof was issued by [caller] and derives
// [target].
func (p *Proof) Authorizes(caller codec.Address, target codec.Address) error {
	if p.ProgramID != caller {
		return fmt.Errorf("%w: proof issued by %s, caller is %s", ErrInvalidSeeds, p.ProgramID, caller)
	}
	addr, err := p.Address()
	if err != nil {
		return err
	}
	if addr != target {
		return fmt.Errorf("%w: proof derives %s, not %s", ErrInvalidSeeds, addr, target)
	}
	return nil
}
