// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/near/borsh-go"
)

// RawBytes is written as-is, without a length prefix.
type RawBytes []byte

// Marshal returns the borsh encoding of [value]. Pointers are dereferenced
// before encoding so that *T and T produce the same bytes.
func Marshal(value any) ([]byte, error) {
	b := &bytes.Buffer{}
	if err := Encode(value, b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Encode writes the borsh encoding of [value] to [w].
func Encode(value any, w io.Writer) error {
	if isNil(value) {
		return nil
	}
	if raw, ok := value.(RawBytes); ok {
		_, err := w.Write(raw)
		return err
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return borsh.NewEncoder(w).Encode(v.Interface())
}

// Unmarshal decodes [data] into [value], which must be a pointer. Decoding is
// strict: [data] must be consumed exactly.
func Unmarshal(data []byte, value any) error {
	if err := borsh.Deserialize(value, data); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	// borsh encodings are canonical, so the length of the re-encoded value is
	// the number of bytes the decoder consumed.
	consumed, err := Marshal(value)
	if err != nil {
		return err
	}
	if len(consumed) != len(data) {
		return fmt.Errorf("%w: decoded %d of %d bytes", ErrTrailingBytes, len(consumed), len(data))
	}
	return nil
}

// Decode is the generic form of Unmarshal.
func Decode[T any](data []byte) (*T, error) {
	result := new(T)
	if err := Unmarshal(data, result); err != nil {
		return nil, err
	}
	return result, nil
}

func isNil[T any](t T) bool {
	v := reflect.ValueOf(t)
	if !v.IsValid() {
		return true
	}
	kind := v.Kind()
	// Must be one of these types to be nillable
	return (kind == reflect.Ptr ||
		kind == reflect.Interface ||
		kind == reflect.Map ||
		kind == reflect.Chan ||
		kind == reflect.Func) &&
		v.IsNil()
}
