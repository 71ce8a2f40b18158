// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pda

import (
	"crypto/rand"
	"testing"

	"github.com/oasisprotocol/curve25519-voi/curve"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/echovm/codec"
)

var (
	loaderID = codec.MustParseAddress("BPFLoaderUpgradeab1e11111111111111111111111")
	seedKey  = codec.MustParseAddress("SeedPubey1111111111111111111111111111111111")
)

func sequentialAddress(start byte) codec.Address {
	var a codec.Address
	for i := range a {
		a[i] = start + byte(i)
	}
	return a
}

func TestCreateProgramAddressVectors(t *testing.T) {
	tests := []struct {
		name     string
		seeds    [][]byte
		expected string
	}{
		{"EmptySeed", [][]byte{{}, {1}}, "BwqrghZA2htAcqq8dzP1WDAhTXYTYWj7CHxF5j7TDBAe"},
		{"Unicode", [][]byte{[]byte("☉"), {0}}, "13yWmRpaTR4r5nAktwLqMpRNr28tnVUZw26rTvPSSB19"},
		{"Words", [][]byte{[]byte("Talking"), []byte("Squirrels")}, "2fnQrngrQT4SeLcdToJAD96phoEjNL2man2kfRLCASVk"},
		{"PublicKey", [][]byte{seedKey[:], {1}}, "976ymqVnfE32QFe6NfGDctSvVa36LWnvYxhU6G2232YL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			addr, err := CreateProgramAddress(loaderID, tt.seeds...)
			require.NoError(err)
			require.Equal(tt.expected, addr.String())
		})
	}
}

func TestCreateProgramAddressLimits(t *testing.T) {
	require := require.New(t)

	_, err := CreateProgramAddress(loaderID, make([]byte, MaxSeedLen+1))
	require.ErrorIs(err, ErrMaxSeedLengthExceeded)

	_, err = CreateProgramAddress(loaderID, make([]byte, MaxSeedLen))
	require.NoError(err)

	tooMany := make([][]byte, MaxSeeds+1)
	for i := range tooMany {
		tooMany[i] = []byte{byte(i)}
	}
	_, err = CreateProgramAddress(loaderID, tooMany...)
	require.ErrorIs(err, ErrMaxSeedLengthExceeded)

	_, err = CreateProgramAddress(loaderID, tooMany[:MaxSeeds]...)
	require.NoError(err)
}

func TestFindProgramAddress(t *testing.T) {
	require := require.New(t)

	programID := sequentialAddress(0)
	authority := codec.Address{}
	for i := range authority {
		authority[i] = 7
	}

	// 255 and 254 land on the curve for these seeds.
	addr, bump, err := FindProgramAddress(programID, []byte("authority"), authority[:], Uint64Seed(42))
	require.NoError(err)
	require.Equal(uint8(253), bump)
	require.Equal("BbN4XGnfjqgEmcnnYu4Le63pkscxwfghhTtn2dCnaiav", addr.String())
	require.False(IsOnCurve(addr[:]))

	require.True(Verify(programID, addr, bump, []byte("authority"), authority[:], Uint64Seed(42)))
	require.False(Verify(programID, addr, bump-1, []byte("authority"), authority[:], Uint64Seed(42)))
	require.False(Verify(programID, addr, bump, []byte("authority"), authority[:], Uint64Seed(43)))

	addr, bump, err = FindProgramAddress(programID, []byte("vending_machine"), authority[:], Uint64Seed(1000))
	require.NoError(err)
	require.Equal(uint8(255), bump)
	require.Equal("9HyrGeqtfVoyJpkAZx1xnje9sghS6q9M3E3ZKVViBi24", addr.String())
}

func TestFindProgramAddressDeterministic(t *testing.T) {
	require := require.New(t)

	programID := sequentialAddress(9)
	for i := 0; i < 32; i++ {
		seed := make([]byte, MaxSeedLen)
		_, err := rand.Read(seed)
		require.NoError(err)

		first, firstBump, err := FindProgramAddress(programID, seed)
		require.NoError(err)
		second, secondBump, err := FindProgramAddress(programID, seed)
		require.NoError(err)
		require.Equal(first, second)
		require.Equal(firstBump, secondBump)

		seed[0] ^= 1
		changed, _, err := FindProgramAddress(programID, seed)
		require.NoError(err)
		require.NotEqual(first, changed)
	}
}

func TestFindProgramAddressSeedLimit(t *testing.T) {
	require := require.New(t)

	// The bump takes the last seed slot.
	seeds := make([][]byte, MaxSeeds)
	_, _, err := FindProgramAddress(loaderID, seeds...)
	require.ErrorIs(err, ErrMaxSeedLengthExceeded)
}

func TestIsOnCurveMatchesReference(t *testing.T) {
	require := require.New(t)

	onCurve := 0
	for i := 0; i < 256; i++ {
		b := make([]byte, 32)
		_, err := rand.Read(b)
		require.NoError(err)

		compressed, err := curve.NewCompressedEdwardsYFromBytes(b)
		require.NoError(err)
		_, refErr := curve.NewEdwardsPoint().SetCompressedY(compressed)

		require.Equal(refErr == nil, IsOnCurve(b))
		if refErr == nil {
			onCurve++
		}
	}
	// Roughly half of all encodings decode to a point.
	require.Greater(onCurve, 0)
	require.Less(onCurve, 256)
}

func TestProof(t *testing.T) {
	require := require.New(t)

	programID := sequentialAddress(3)
	other := sequentialAddress(4)
	seed := []byte("seed")

	addr, bump, err := FindProgramAddress(programID, seed)
	require.NoError(err)

	proof := NewProof(programID, bump, seed)
	derived, err := proof.Address()
	require.NoError(err)
	require.Equal(addr, derived)
	require.NoError(proof.Authorizes(programID, addr))
	require.ErrorIs(proof.Authorizes(other, addr), ErrInvalidSeeds)
	require.ErrorIs(proof.Authorizes(programID, other), ErrInvalidSeeds)

	// The proof does not alias the caller's seeds.
	seed[0] = 'x'
	derived, err = proof.Address()
	require.NoError(err)
	require.Equal(addr, derived)
}
