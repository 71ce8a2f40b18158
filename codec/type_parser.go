// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"strings"

	"github.com/ava-labs/echovm/consts"
)

type Typed interface {
	GetTypeID() uint8
}

type decoder[T Typed] struct {
	name string
	f    func([]byte) (T, error)
}

// TypeParser maps a one byte type prefix to the decoder of that type.
type TypeParser[T Typed] struct {
	indexToDecoder map[uint8]*decoder[T]
	typeToIndex    map[string]uint8
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		indexToDecoder: map[uint8]*decoder[T]{},
		typeToIndex:    map[string]uint8{},
	}
}

// Register registers [instance] under its type ID and sets the decoder of
// that index to [f]. Returns an error if the type ID has already been
// registered or the TypeParser is full.
func (p *TypeParser[T]) Register(instance T, f func([]byte) (T, error)) error {
	if len(p.indexToDecoder) == int(consts.MaxUint8)+1 {
		return ErrTooManyItems
	}
	typeID := instance.GetTypeID()
	if _, ok := p.indexToDecoder[typeID]; ok {
		return ErrDuplicateItem
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", instance), "*")
	p.indexToDecoder[typeID] = &decoder[T]{name: name, f: f}
	p.typeToIndex[name] = typeID
	return nil
}

// Unmarshal reads the type prefix of [bytes] and hands the remaining bytes to
// the registered decoder.
func (p *TypeParser[T]) Unmarshal(bytes []byte) (T, error) {
	if len(bytes) == 0 {
		return *new(T), fmt.Errorf("%w: type prefix missing", ErrInsufficientLength)
	}
	typeID := bytes[0]
	f, ok := p.lookupIndex(typeID)
	if !ok {
		return *new(T), fmt.Errorf("%w: %d", ErrUnknownType, typeID)
	}
	return f(bytes[consts.ByteLen:])
}

// Marshal prefixes the borsh encoding of [instance] with its type ID.
func (*TypeParser[T]) Marshal(instance T) ([]byte, error) {
	body, err := Marshal(instance)
	if err != nil {
		return nil, err
	}
	b := make([]byte, consts.ByteLen, consts.ByteLen+len(body))
	b[0] = instance.GetTypeID()
	return append(b, body...), nil
}

// Name returns the registered name of [typeID].
func (p *TypeParser[T]) Name(typeID uint8) (string, bool) {
	d, ok := p.indexToDecoder[typeID]
	if !ok {
		return "", false
	}
	return d.name, true
}

func (p *TypeParser[T]) lookupIndex(index uint8) (func([]byte) (T, error), bool) {
	d, ok := p.indexToDecoder[index]
	if ok {
		return d.f, true
	}
	return nil, false
}
