// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "github.com/ava-labs/avalanchego/ids"

// Account is a host-owned byte buffer addressed by a key. Programs may
// rewrite the contents of Data but never its length.
type Account interface {
	Key() ids.ShortID
	Data() []byte
}

var _ Account = (*BufferAccount)(nil)

// BufferAccount is an Account backed by a caller provided slice.
type BufferAccount struct {
	key  ids.ShortID
	data []byte
}

func NewAccount(key ids.ShortID, data []byte) *BufferAccount {
	return &BufferAccount{
		key:  key,
		data: data,
	}
}

func (a *BufferAccount) Key() ids.ShortID {
	return a.key
}

func (a *BufferAccount) Data() []byte {
	return a.data
}
