// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instruction

import (
	"fmt"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/consts"
)

var _ Instruction = (*Decrement)(nil)

type Decrement struct {
	// Value is subtracted from the counter. Underflow wraps.
	Value uint32 `json:"value"`
}

func (*Decrement) GetTypeID() uint8 {
	return consts.DecrementID
}

func (d *Decrement) Apply(counter uint32) uint32 {
	return counter - d.Value
}

func (d *Decrement) Marshal() ([]byte, error) {
	return codec.Serialize(*d)
}

func (d *Decrement) String() string {
	return fmt.Sprintf("%s(%d)", Name(consts.DecrementID), d.Value)
}

func UnmarshalDecrement(b []byte) (Instruction, error) {
	dec, err := unmarshalOperand[Decrement](Name(consts.DecrementID), b)
	if err != nil {
		return nil, err
	}
	return dec, nil
}
