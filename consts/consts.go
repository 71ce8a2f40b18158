// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	Uint32Len = 4
	Uint64Len = 8
	MaxUint8  = ^uint8(0)
	MaxUint32 = ^uint32(0)
	MaxUint64 = ^uint64(0)

	// AddressLen is the size of every account, program and mint address.
	AddressLen = 32

	// HeaderLen is the size of the [bump][u64] prefix of a managed buffer.
	HeaderLen = ByteLen + Uint64Len
)

// Opcodes of the echo program. Registration order in the registry must
// match these values.
const (
	EchoID uint8 = iota
	InitAuthorizedBufferID
	AuthorizedEchoID
	InitVendingBufferID
	VendingEchoID
)

// Derivation tags. Changing either value changes every derived buffer
// address.
var (
	AuthoritySeed      = []byte("authority")
	VendingMachineSeed = []byte("vending_machine")
)
