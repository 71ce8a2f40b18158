// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/pda"
)

var (
	programID = codec.MustParseAddress("1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE")
	authority = codec.MustParseAddress("US517G5965aydkZ46HS38QLi7UQiSojurfbQfKCELFx")

	authorityBuffer = codec.MustParseAddress("BbN4XGnfjqgEmcnnYu4Le63pkscxwfghhTtn2dCnaiav")
	vendingBuffer   = codec.MustParseAddress("9HyrGeqtfVoyJpkAZx1xnje9sghS6q9M3E3ZKVViBi24")
)

func TestSeeds(t *testing.T) {
	require := require.New(t)

	seeds := AuthoritySeeds(authority, 42)
	require.Len(seeds, 3)
	require.Equal([]byte("authority"), seeds[0])
	require.Equal(authority[:], seeds[1])
	require.Equal([]byte{42, 0, 0, 0, 0, 0, 0, 0}, seeds[2])

	seeds = VendingSeeds(authority, 1000)
	require.Equal([]byte("vending_machine"), seeds[0])
	require.Equal([]byte{0xe8, 0x03, 0, 0, 0, 0, 0, 0}, seeds[2])
}

func TestRequireSigner(t *testing.T) {
	require := require.New(t)

	require.NoError(RequireSigner(&chain.Account{Signer: true}, "authority"))
	err := RequireSigner(&chain.Account{Address: authority}, "authority")
	require.ErrorIs(err, chain.ErrMissingSigner)
	require.ErrorContains(err, authority.String())
}

func TestFindBuffer(t *testing.T) {
	require := require.New(t)

	buffer := &chain.Account{Address: authorityBuffer}
	proof, bump, err := FindBuffer(programID, buffer, AuthoritySeeds(authority, 42))
	require.NoError(err)
	require.Equal(uint8(253), bump)
	require.NoError(proof.Authorizes(programID, authorityBuffer))

	_, _, err = FindBuffer(programID, buffer, AuthoritySeeds(authority, 43))
	require.ErrorIs(err, chain.ErrAddressMismatch)

	buffer = &chain.Account{Address: vendingBuffer}
	_, bump, err = FindBuffer(programID, buffer, VendingSeeds(authority, 1000))
	require.NoError(err)
	require.Equal(uint8(255), bump)
}

func TestVerifyBuffer(t *testing.T) {
	tests := []struct {
		name    string
		buffer  codec.Address
		bump    uint8
		seeds   [][]byte
		wantErr error
	}{
		{
			name:   "Valid",
			buffer: authorityBuffer,
			bump:   253,
			seeds:  AuthoritySeeds(authority, 42),
		},
		{
			name:    "WrongSeed",
			buffer:  authorityBuffer,
			bump:    253,
			seeds:   AuthoritySeeds(authority, 41),
			wantErr: chain.ErrAddressMismatch,
		},
		{
			name:    "WrongAuthority",
			buffer:  authorityBuffer,
			bump:    253,
			seeds:   AuthoritySeeds(programID, 42),
			wantErr: chain.ErrAddressMismatch,
		},
		{
			name:    "TamperedBump",
			buffer:  authorityBuffer,
			bump:    252,
			seeds:   AuthoritySeeds(authority, 42),
			wantErr: chain.ErrAddressMismatch,
		},
		{
			name:    "BumpOnCurve",
			buffer:  authorityBuffer,
			bump:    255,
			seeds:   AuthoritySeeds(authority, 42),
			wantErr: chain.ErrAddressMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyBuffer(programID, &chain.Account{Address: tt.buffer}, tt.bump, tt.seeds)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyMatchesFind(t *testing.T) {
	require := require.New(t)

	for seed := uint64(0); seed < 16; seed++ {
		seeds := AuthoritySeeds(authority, seed)
		addr, bump, err := pda.FindProgramAddress(programID, seeds...)
		require.NoError(err)
		require.NoError(VerifyBuffer(programID, &chain.Account{Address: addr}, bump, seeds))
	}
}
