// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
)

type batchRecorder struct {
	*InMemoryStore
	batches [][]Op
}

func (b *batchRecorder) WriteBatch(ctx context.Context, ops []Op) error {
	b.batches = append(b.batches, ops)
	for _, op := range ops {
		if op.Delete {
			if err := b.Remove(ctx, op.Key); err != nil {
				return err
			}
			continue
		}
		if err := b.Insert(ctx, op.Key, op.Value); err != nil {
			return err
		}
	}
	return nil
}

func TestSimpleMutable(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	base := NewInMemoryStore()
	require.NoError(base.Insert(ctx, []byte("a"), []byte{1}))
	require.NoError(base.Insert(ctx, []byte("b"), []byte{2}))

	s := NewSimpleMutable(base)
	require.NoError(s.Insert(ctx, []byte("a"), []byte{9}))
	require.NoError(s.Remove(ctx, []byte("b")))

	v, err := s.GetValue(ctx, []byte("a"))
	require.NoError(err)
	require.Equal([]byte{9}, v)
	_, err = s.GetValue(ctx, []byte("b"))
	require.ErrorIs(err, database.ErrNotFound)

	// nothing reaches the base store before commit
	v, err = base.GetValue(ctx, []byte("a"))
	require.NoError(err)
	require.Equal([]byte{1}, v)

	require.NoError(s.Commit(ctx))
	v, err = base.GetValue(ctx, []byte("a"))
	require.NoError(err)
	require.Equal([]byte{9}, v)
	_, err = base.GetValue(ctx, []byte("b"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestSimpleMutableBatches(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	base := &batchRecorder{InMemoryStore: NewInMemoryStore()}

	s := NewSimpleMutable(base)
	require.NoError(s.Insert(ctx, []byte("b"), []byte{2}))
	require.NoError(s.Insert(ctx, []byte("a"), []byte{1}))
	require.NoError(s.Commit(ctx))

	require.Len(base.batches, 1)
	require.Equal([]Op{
		{Key: []byte("a"), Value: []byte{1}},
		{Key: []byte("b"), Value: []byte{2}},
	}, base.batches[0])

	// a second commit with no changes writes an empty batch
	require.NoError(s.Commit(ctx))
	require.Len(base.batches, 2)
	require.Empty(base.batches[1])
}
