// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"fmt"

	"github.com/near/borsh-go"
)

var (
	ErrDeserialization    = errors.New("deserialization")
	ErrInsufficientLength = errors.New("insufficient length")
	ErrInvalidSize        = errors.New("invalid size")
)

// Serialize encodes [value] using borsh.
func Serialize[T any](value T) ([]byte, error) {
	return borsh.Serialize(value)
}

// Deserialize decodes [data] into a new T. [data] must hold exactly the
// encoding of T: borsh is not self-describing, so callers that know the size
// of T should check it first with [DeserializeSized].
func Deserialize[T any](data []byte) (*T, error) {
	result := new(T)
	if err := borsh.Deserialize(result, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return result, nil
}

// DeserializeSized is [Deserialize] for fixed-size types. It fails unless
// len(data) == size.
func DeserializeSized[T any](data []byte, size int) (*T, error) {
	if len(data) != size {
		return nil, fmt.Errorf("%w: %w (expected=%d, got=%d)", ErrDeserialization, ErrInvalidSize, size, len(data))
	}
	return Deserialize[T](data)
}

// SerializeInto encodes [value] over [dst]. The encoding must be exactly
// len(dst) bytes long.
func SerializeInto[T any](dst []byte, value T) error {
	b, err := Serialize(value)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return fmt.Errorf("%w: (expected=%d, got=%d)", ErrInvalidSize, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}
