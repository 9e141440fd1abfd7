// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"fmt"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/consts"
)

// CounterAccountSize is the exact length of a counter account buffer.
const CounterAccountSize = consts.Uint32Len

// CounterAccount is the persisted state of the counter program: a single
// u32, little endian, with no header.
type CounterAccount struct {
	Counter uint32 `json:"counter"`
}

// GetCounterAccount decodes [data]. [data] must be exactly
// [CounterAccountSize] bytes.
func GetCounterAccount(data []byte) (*CounterAccount, error) {
	acct, err := codec.DeserializeSized[CounterAccount](data, CounterAccountSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccountData, err)
	}
	return acct, nil
}

// PutCounterAccount overwrites [data] in place with the encoding of [acct].
func PutCounterAccount(data []byte, acct *CounterAccount) error {
	if err := codec.SerializeInto(data, *acct); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAccountData, err)
	}
	return nil
}

// NewCounterAccountData returns a zeroed account buffer.
func NewCounterAccountData() []byte {
	return make([]byte, CounterAccountSize)
}
