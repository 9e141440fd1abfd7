// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "github.com/ava-labs/avalanchego/version"

const Name = "counter"

var Version = &version.Semantic{
	Major: 0,
	Minor: 1,
	Patch: 0,
}

const (
	// Instruction TypeIDs
	IncrementID uint8 = 0
	DecrementID uint8 = 1
	UpdateID    uint8 = 2
	ResetID     uint8 = 3
)
