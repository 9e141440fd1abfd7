// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	Uint32Len = 4
	MaxUint8  = ^uint8(0)
	MaxUint32 = ^uint32(0)
)
