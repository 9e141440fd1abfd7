// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"fmt"
)

var ErrDuplicateType = errors.New("duplicate type")

// Typed is implemented by every value that is prefixed on the wire by a
// single type byte.
type Typed interface {
	GetTypeID() uint8
}

// TypeParser maps a type byte to the function that decodes the payload that
// follows it. Every uint8 is a valid tag, so the parser never fills up
// before its key space does.
type TypeParser[T Typed] struct {
	decoders map[uint8]func([]byte) (T, error)
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		decoders: map[uint8]func([]byte) (T, error){},
	}
}

// Register adds [o]'s type ID to the parser. [f] receives the bytes following
// the type byte.
func (p *TypeParser[T]) Register(o T, f func([]byte) (T, error)) error {
	typeID := o.GetTypeID()
	if _, ok := p.decoders[typeID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateType, typeID)
	}
	p.decoders[typeID] = f
	return nil
}

func (p *TypeParser[T]) LookupIndex(index uint8) (func([]byte) (T, error), bool) {
	f, ok := p.decoders[index]
	return f, ok
}

// Len returns the number of registered types.
func (p *TypeParser[T]) Len() int {
	return len(p.decoders)
}
