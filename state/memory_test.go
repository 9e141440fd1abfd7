// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	s := NewInMemoryStore()

	_, err := s.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)

	v := []byte{1, 2, 3, 4}
	require.NoError(s.Insert(ctx, []byte("k"), v))
	v[0] = 9

	got, err := s.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte{1, 2, 3, 4}, got)

	// returned values do not alias the store
	got[1] = 9
	got, err = s.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte{1, 2, 3, 4}, got)

	require.NoError(s.Remove(ctx, []byte("k")))
	_, err = s.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestBufferAccount(t *testing.T) {
	require := require.New(t)
	key := ids.GenerateTestShortID()
	buf := make([]byte, 4)

	acct := NewAccount(key, buf)
	require.Equal(key, acct.Key())
	acct.Data()[0] = 7
	require.Equal(byte(7), buf[0])
}
