// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instruction

import (
	"fmt"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/consts"
)

var _ Instruction = (*Increment)(nil)

type Increment struct {
	// Value is added to the counter.
	Value uint32 `json:"value"`
}

func (*Increment) GetTypeID() uint8 {
	return consts.IncrementID
}

func (i *Increment) Apply(counter uint32) uint32 {
	return counter + i.Value
}

func (i *Increment) Marshal() ([]byte, error) {
	return codec.Serialize(*i)
}

func (i *Increment) String() string {
	return fmt.Sprintf("%s(%d)", Name(consts.IncrementID), i.Value)
}

func UnmarshalIncrement(b []byte) (Instruction, error) {
	inc, err := unmarshalOperand[Increment](Name(consts.IncrementID), b)
	if err != nil {
		return nil, err
	}
	return inc, nil
}
