// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pda derives program addresses: addresses computed from a program
// ID and a list of seeds that are guaranteed to not lie on the ed25519
// curve, so no private key can ever sign for them. The owning program proves
// authority over such an address by presenting the seeds again.
package pda

import (
	"encoding/binary"
	"errors"
	"fmt"

	"filippo.io/edwards25519"

	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/consts"
)

const (
	MaxSeeds   = 16
	MaxSeedLen = 32

	marker = "ProgramDerivedAddress"
)

var (
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")
	ErrInvalidSeeds          = errors.New("provided seeds do not result in a valid address")
	ErrNoViableBump          = errors.New("unable to find a viable program address bump seed")
)

// CreateProgramAddress returns the address derived from [seeds] for
// [programID]. The last seed is usually the bump returned by
// [FindProgramAddress].
func CreateProgramAddress(programID codec.Address, seeds ...[]byte) (codec.Address, error) {
	if len(seeds) > MaxSeeds {
		return codec.EmptyAddress, fmt.Errorf("%w: %d seeds", ErrMaxSeedLengthExceeded, len(seeds))
	}
	size := codec.AddressLen + len(marker)
	for _, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return codec.EmptyAddress, fmt.Errorf("%w: seed of %d bytes", ErrMaxSeedLengthExceeded, len(seed))
		}
		size += len(seed)
	}
	preimage := make([]byte, 0, size)
	for _, seed := range seeds {
		preimage = append(preimage, seed...)
	}
	preimage = append(preimage, programID[:]...)
	preimage = append(preimage, marker...)

	hash := hashing.ComputeHash256(preimage)
	if IsOnCurve(hash) {
		return codec.EmptyAddress, ErrInvalidSeeds
	}
	return codec.ToAddress(hash)
}

// FindProgramAddress searches bumps from 255 down to 0 and returns the first
// address that is off the curve along with its bump.
func FindProgramAddress(programID codec.Address, seeds ...[]byte) (codec.Address, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	bump := consts.MaxUint8
	for {
		withBump[len(seeds)] = []byte{bump}
		addr, err := CreateProgramAddress(programID, withBump...)
		switch {
		case err == nil:
			return addr, bump, nil
		case !errors.Is(err, ErrInvalidSeeds):
			return codec.EmptyAddress, 0, err
		}
		if bump == 0 {
			return codec.EmptyAddress, 0, ErrNoViableBump
		}
		bump--
	}
}

// Verify returns true if [expected] is the address derived from [seeds] and
// [bump] for [programID].
func Verify(programID codec.Address, expected codec.Address, bump uint8, seeds ...[]byte) bool {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	withBump[len(seeds)] = []byte{bump}
	addr, err := CreateProgramAddress(programID, withBump...)
	return err == nil && addr == expected
}

// IsOnCurve returns true if [b] is the encoding of a point on the ed25519
// curve.
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// Uint64Seed encodes a numeric seed as 8 little-endian bytes.
func Uint64Seed(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, consts.Uint64Len), v)
}
