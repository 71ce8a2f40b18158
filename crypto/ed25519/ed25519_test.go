// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	oed25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

var (
	TestPrivateKey = PrivateKey(
		[PrivateKeyLen]byte{
			32, 241, 118, 222, 210, 13, 164, 128, 3, 18,
			109, 215, 176, 215, 168, 171, 194, 181, 4, 11,
			253, 199, 173, 240, 107, 148, 127, 190, 48, 164,
			12, 48, 115, 50, 124, 153, 59, 53, 196, 150, 168,
			143, 151, 235, 222, 128, 136, 161, 9, 40, 139, 85,
			182, 153, 68, 135, 62, 166, 45, 235, 251, 246, 69, 7,
		},
	)
	TestPublicKey = []byte{
		115, 50, 124, 153, 59, 53, 196, 150, 168, 143, 151, 235,
		222, 128, 136, 161, 9, 40, 139, 85, 182, 153, 68, 135,
		62, 166, 45, 235, 251, 246, 69, 7,
	}
	oed25519options = &oed25519.Options{
		Verify: oed25519.VerifyOptionsZIP_215,
	}
)

func TestGeneratePrivateKeyDifferent(t *testing.T) {
	require := require.New(t)
	const numKeysToGenerate = 10

	seen := make(map[PrivateKey]bool)
	for i := 0; i < numKeysToGenerate; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		require.NotEqual(EmptyPrivateKey, priv)
		require.False(seen[priv], "duplicate private key generated")
		seen[priv] = true
	}
}

func TestPrivateKeyFromSeed(t *testing.T) {
	require := require.New(t)

	priv, err := PrivateKeyFromSeed(TestPrivateKey[:PrivateKeySeedLen])
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)

	_, err = PrivateKeyFromSeed([]byte{1, 2, 3})
	require.ErrorIs(err, ErrInvalidPrivateKey)
}

func TestAddressIsPublicKey(t *testing.T) {
	require := require.New(t)

	addr := TestPrivateKey.Address()
	require.Equal(TestPublicKey, addr[:])
	require.Equal(TestPrivateKey.PublicKey().Address(), addr)
}

func TestHexRoundTrip(t *testing.T) {
	require := require.New(t)

	priv, err := HexToPrivateKey(TestPrivateKey.Hex())
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)

	_, err = HexToPrivateKey("abcd")
	require.ErrorIs(err, ErrInvalidPrivateKey)
}

func TestSignMatchesStdlib(t *testing.T) {
	require := require.New(t)

	msg := []byte("msg")
	var expectedSig Signature
	copy(expectedSig[:], ed25519.Sign(TestPrivateKey[:], msg))
	require.Equal(expectedSig, Sign(msg, TestPrivateKey))
}

func TestVerify(t *testing.T) {
	require := require.New(t)

	msg := []byte("msg")
	sig := Sign(msg, TestPrivateKey)
	require.True(Verify(msg, TestPrivateKey.PublicKey(), sig))
	require.False(Verify([]byte("diff msg"), TestPrivateKey.PublicKey(), sig))

	// Another ZIP-215 implementation must agree.
	require.True(oed25519.VerifyWithOptions(TestPublicKey, msg, sig[:], oed25519options))
}

func TestBatchVerify(t *testing.T) {
	require := require.New(t)
	const numItems = 64

	var (
		pubs = make([]PublicKey, numItems)
		msgs = make([][]byte, numItems)
		sigs = make([]Signature, numItems)
	)
	for i := 0; i < numItems; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		msg := make([]byte, 128)
		_, err = rand.Read(msg)
		require.NoError(err)
		pubs[i] = priv.PublicKey()
		msgs[i] = msg
		sigs[i] = Sign(msg, priv)
	}

	valid := NewBatch(numItems)
	for i := 0; i < numItems; i++ {
		valid.Add(msgs[i], pubs[i], sigs[i])
	}
	require.True(valid.Verify())

	sigs[numItems/2][0] ^= 0xff
	invalid := NewBatch(numItems)
	for i := 0; i < numItems; i++ {
		invalid.Add(msgs[i], pubs[i], sigs[i])
	}
	require.False(invalid.Verify())
}
