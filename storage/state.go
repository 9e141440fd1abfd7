// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/counter/consts"
	"github.com/ava-labs/counter/state"
)

// State
// 0x0/ (account)
//   -> [key] => account data

const accountPrefix byte = 0x0

// [accountPrefix] + [key]
func AccountKey(key ids.ShortID) []byte {
	k := make([]byte, consts.ByteLen+ids.ShortIDLen)
	k[0] = accountPrefix
	copy(k[1:], key[:])
	return k
}

// GetAccountData returns the raw buffer stored for [key]. If the account does
// not exist, the second return value is false.
func GetAccountData(
	ctx context.Context,
	im state.Immutable,
	key ids.ShortID,
) ([]byte, bool, error) {
	v, err := im.GetValue(ctx, AccountKey(key))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func SetAccountData(
	ctx context.Context,
	mu state.Mutable,
	key ids.ShortID,
	data []byte,
) error {
	return mu.Insert(ctx, AccountKey(key), data)
}

func DeleteAccount(
	ctx context.Context,
	mu state.Mutable,
	key ids.ShortID,
) error {
	return mu.Remove(ctx, AccountKey(key))
}
