// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instruction

import (
	"fmt"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/consts"
)

var _ Instruction = (*Update)(nil)

type Update struct {
	// Value replaces the counter.
	Value uint32 `json:"value"`
}

func (*Update) GetTypeID() uint8 {
	return consts.UpdateID
}

func (u *Update) Apply(uint32) uint32 {
	return u.Value
}

func (u *Update) Marshal() ([]byte, error) {
	return codec.Serialize(*u)
}

func (u *Update) String() string {
	return fmt.Sprintf("%s(%d)", Name(consts.UpdateID), u.Value)
}

func UnmarshalUpdate(b []byte) (Instruction, error) {
	u, err := unmarshalOperand[Update](Name(consts.UpdateID), b)
	if err != nil {
		return nil, err
	}
	return u, nil
}
