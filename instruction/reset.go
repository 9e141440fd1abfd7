// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instruction

import "github.com/ava-labs/counter/consts"

var _ Instruction = (*Reset)(nil)

// Reset carries no payload.
type Reset struct{}

func (*Reset) GetTypeID() uint8 {
	return consts.ResetID
}

func (*Reset) Apply(uint32) uint32 {
	return 0
}

func (*Reset) Marshal() ([]byte, error) {
	return nil, nil
}

func (*Reset) String() string {
	return Name(consts.ResetID)
}

func UnmarshalReset([]byte) (Instruction, error) {
	return &Reset{}, nil
}
