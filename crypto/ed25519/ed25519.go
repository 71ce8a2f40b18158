// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"fmt"

	"github.com/hdevalence/ed25519consensus"

	"github.com/ava-labs/echovm/codec"
)

type (
	PublicKey  [ed25519.PublicKeySize]byte
	PrivateKey [ed25519.PrivateKeySize]byte
	Signature  [ed25519.SignatureSize]byte
)

// Signatures are verified with ZIP-215 rules
// (https://zips.z.cash/zip-0215) so that single and batch verification
// always agree on validity.
const (
	PublicKeyLen      = ed25519.PublicKeySize
	PrivateKeyLen     = ed25519.PrivateKeySize
	PrivateKeySeedLen = ed25519.SeedSize
	SignatureLen      = ed25519.SignatureSize
)

var (
	EmptyPublicKey  = PublicKey{}
	EmptyPrivateKey = PrivateKey{}
	EmptySignature  = Signature{}
)

// GeneratePrivateKey returns a Ed25519 PrivateKey.
func GeneratePrivateKey() (PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return PrivateKey(k), nil
}

// PrivateKeyFromSeed deterministically expands a 32 byte seed.
func PrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != PrivateKeySeedLen {
		return EmptyPrivateKey, fmt.Errorf("%w: seed must be %d bytes", ErrInvalidPrivateKey, PrivateKeySeedLen)
	}
	return PrivateKey(ed25519.NewKeyFromSeed(seed)), nil
}

// HexToPrivateKey parses the hex encoding produced by [PrivateKey.Hex].
func HexToPrivateKey(s string) (PrivateKey, error) {
	b, err := codec.LoadHex(s, PrivateKeyLen)
	if err != nil {
		return EmptyPrivateKey, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return PrivateKey(b), nil
}

// PublicKey returns the last 32 bytes of p.
func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey(p[PrivateKeySeedLen:])
}

// Address returns the account address controlled by p.
func (p PrivateKey) Address() codec.Address {
	return p.PublicKey().Address()
}

func (p PrivateKey) Hex() string {
	return codec.ToHex(p[:])
}

// Address returns the account address of p. Keyed accounts are addressed by
// their public key.
func (p PublicKey) Address() codec.Address {
	return codec.Address(p)
}

// Sign returns a valid signature for msg using pk.
func Sign(msg []byte, pk PrivateKey) Signature {
	sig := ed25519.Sign(pk[:], msg)
	return Signature(sig)
}

// Verify returns whether s is a valid signature of msg by p.
func Verify(msg []byte, p PublicKey, s Signature) bool {
	return ed25519consensus.Verify(p[:], msg, s[:])
}

type Batch struct {
	bv ed25519consensus.BatchVerifier
}

func NewBatch(size int) *Batch {
	return &Batch{bv: ed25519consensus.NewPreallocatedBatchVerifier(size)}
}

func (b *Batch) Add(msg []byte, p PublicKey, s Signature) {
	b.bv.Add(p[:], msg, s[:])
}

func (b *Batch) Verify() bool {
	return b.bv.Verify()
}
