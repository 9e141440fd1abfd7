// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/api/metrics"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/pebble"
	"github.com/ava-labs/counter/state"
)

func TestCounterAccount(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		expected    uint32
		expectedErr error
	}{
		{
			name:     "zero initialized",
			data:     NewCounterAccountData(),
			expected: 0,
		},
		{
			name:     "little endian",
			data:     []byte{65, 0, 0, 0},
			expected: 65,
		},
		{
			name:        "undersized",
			data:        []byte{0, 0},
			expectedErr: codec.ErrDeserialization,
		},
		{
			name:        "oversized",
			data:        make([]byte, CounterAccountSize+1),
			expectedErr: codec.ErrInvalidSize,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			acct, err := GetCounterAccount(tt.data)
			require.ErrorIs(err, tt.expectedErr)
			if tt.expectedErr != nil {
				require.ErrorIs(err, ErrInvalidAccountData)
				return
			}
			require.Equal(tt.expected, acct.Counter)
		})
	}
}

func TestPutCounterAccount(t *testing.T) {
	require := require.New(t)

	data := NewCounterAccountData()
	require.NoError(PutCounterAccount(data, &CounterAccount{Counter: 0x01020304}))
	require.Equal([]byte{4, 3, 2, 1}, data)

	acct, err := GetCounterAccount(data)
	require.NoError(err)
	require.Equal(uint32(0x01020304), acct.Counter)

	err = PutCounterAccount(make([]byte, 3), &CounterAccount{Counter: 1})
	require.ErrorIs(err, ErrInvalidAccountData)
}

func TestAccountData(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := state.NewInMemoryStore()
	key := ids.GenerateTestShortID()

	_, ok, err := GetAccountData(ctx, store, key)
	require.NoError(err)
	require.False(ok)

	require.NoError(SetAccountData(ctx, store, key, []byte{2, 0, 0, 0}))
	data, ok, err := GetAccountData(ctx, store, key)
	require.NoError(err)
	require.True(ok)
	require.Equal([]byte{2, 0, 0, 0}, data)

	require.NoError(DeleteAccount(ctx, store, key))
	_, ok, err = GetAccountData(ctx, store, key)
	require.NoError(err)
	require.False(ok)
}

func TestAccountKey(t *testing.T) {
	require := require.New(t)
	key := ids.GenerateTestShortID()
	k := AccountKey(key)
	require.Len(k, 1+ids.ShortIDLen)
	require.Equal(accountPrefix, k[0])
	require.Equal(key[:], k[1:])
}

func TestNew(t *testing.T) {
	require := require.New(t)
	gatherer := metrics.NewPrefixGatherer()

	db, err := New(pebble.NewDefaultConfig(), t.TempDir(), "accounts", gatherer)
	require.NoError(err)
	require.NoError(SetAccountData(context.Background(), db, ids.GenerateTestShortID(), NewCounterAccountData()))
	require.NoError(db.Close())
}
