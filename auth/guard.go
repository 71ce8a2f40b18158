// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"errors"
	"fmt"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/consts"
	"github.com/ava-labs/echovm/pda"
)

// AuthoritySeeds are the seeds of the authorized buffer owned by [authority].
func AuthoritySeeds(authority codec.Address, seed uint64) [][]byte {
	return [][]byte{consts.AuthoritySeed, authority[:], pda.Uint64Seed(seed)}
}

// VendingSeeds are the seeds of the vending buffer selling writes for
// [price] units of [mint].
func VendingSeeds(mint codec.Address, price uint64) [][]byte {
	return [][]byte{consts.VendingMachineSeed, mint[:], pda.Uint64Seed(price)}
}

// RequireSigner returns ErrMissingSigner if [account] did not sign.
func RequireSigner(account *chain.Account, role string) error {
	if !account.Signer {
		return fmt.Errorf("%w: %s %s", chain.ErrMissingSigner, role, account.Address)
	}
	return nil
}

// FindBuffer derives the buffer address of [seeds] and requires it to be
// [buffer]. The returned proof lets an allocator create the buffer on
// behalf of [programID].
func FindBuffer(programID codec.Address, buffer *chain.Account, seeds [][]byte) (*pda.Proof, uint8, error) {
	addr, bump, err := pda.FindProgramAddress(programID, seeds...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", chain.ErrAddressMismatch, err)
	}
	if addr != buffer.Address {
		return nil, 0, fmt.Errorf("%w: expected %s but got %s", chain.ErrAddressMismatch, addr, buffer.Address)
	}
	return pda.NewProof(programID, bump, seeds...), bump, nil
}

// VerifyBuffer re-derives the buffer address from [seeds] and the stored
// [bump] and requires it to be [buffer].
func VerifyBuffer(programID codec.Address, buffer *chain.Account, bump uint8, seeds [][]byte) error {
	withBump := append(append([][]byte{}, seeds...), []byte{bump})
	addr, err := pda.CreateProgramAddress(programID, withBump...)
	switch {
	case errors.Is(err, pda.ErrInvalidSeeds):
		return fmt.Errorf("%w: bump %d derives no address", chain.ErrAddressMismatch, bump)
	case err != nil:
		return fmt.Errorf("%w: %w", chain.ErrAddressMismatch, err)
	case addr != buffer.Address:
		return fmt.Errorf("%w: expected %s but got %s", chain.ErrAddressMismatch, addr, buffer.Address)
	}
	return nil
}
