// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage defines the byte layout of echo buffers.
//
// A plain buffer is raw bytes written once. A managed buffer starts with a
// [Header] followed by a fixed capacity payload:
//
//	[bump u8][value u64 LE][payload ...]
//
// The header is the only record of the seeds the buffer address was derived
// from, so a corrupted header makes the buffer unusable.
package storage

import (
	"fmt"

	"github.com/ava-labs/echovm/chain"
	"github.com/ava-labs/echovm/codec"
	"github.com/ava-labs/echovm/consts"
)

const HeaderLen = consts.HeaderLen

// Header prefixes every managed buffer. [Value] is the authority seed of an
// authorized buffer or the price of a vending buffer.
type Header struct {
	Bump  uint8  `json:"bump"`
	Value uint64 `json:"value"`
}

// Size returns the account size of a managed buffer with [capacity] payload
// bytes.
func Size(capacity uint32) uint64 {
	return HeaderLen + uint64(capacity)
}

// ParseHeader reads the header at the start of [data].
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderLen {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", chain.ErrNotInitialized, len(data))
	}
	h, err := codec.Decode[Header](data[:HeaderLen])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", chain.ErrInvalidAccountData, err)
	}
	return h, nil
}

// WriteHeader stores [h] at the start of [data].
func WriteHeader(data []byte, h *Header) error {
	if len(data) < HeaderLen {
		return fmt.Errorf("%w: %d bytes is shorter than the header", chain.ErrNotInitialized, len(data))
	}
	b, err := codec.Marshal(h)
	if err != nil {
		return err
	}
	copy(data, b)
	return nil
}

// WritePlain copies as much of [payload] as fits into [data]. [data] must be
// non-empty and entirely zero. Bytes after the payload are left as they are.
func WritePlain(data []byte, payload []byte) error {
	for i, b := range data {
		if b != 0 {
			return fmt.Errorf("%w: byte %d is %#x", chain.ErrNonEmptyBuffer, i, b)
		}
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: buffer has no space", chain.ErrNotInitialized)
	}
	copy(data, payload)
	return nil
}

// WriteCapped overwrites the payload region of a managed buffer with as much
// of [payload] as fits and zeroes the rest. The result only depends on
// [payload] and the capacity.
func WriteCapped(data []byte, payload []byte) error {
	if len(data) < HeaderLen {
		return fmt.Errorf("%w: %d bytes is shorter than the header", chain.ErrNotInitialized, len(data))
	}
	region := data[HeaderLen:]
	n := copy(region, payload)
	clear(region[n:])
	return nil
}
