// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"golang.org/x/exp/maps"
)

// Op is a single pending write.
type Op struct {
	Key    []byte
	Value  []byte
	Delete bool
}

// Batcher is implemented by stores that can apply several writes atomically.
type Batcher interface {
	WriteBatch(ctx context.Context, ops []Op) error
}

var _ Mutable = (*SimpleMutable)(nil)

// SimpleMutable buffers writes over [v] until Commit is called. Discarding a
// SimpleMutable leaves [v] untouched.
type SimpleMutable struct {
	v Mutable

	changes map[string]*Op
}

func NewSimpleMutable(v Mutable) *SimpleMutable {
	return &SimpleMutable{v, make(map[string]*Op)}
}

func (s *SimpleMutable) GetValue(ctx context.Context, k []byte) ([]byte, error) {
	if op, ok := s.changes[string(k)]; ok {
		if op.Delete {
			return nil, database.ErrNotFound
		}
		return slices.Clone(op.Value), nil
	}
	return s.v.GetValue(ctx, k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = &Op{Key: slices.Clone(k), Value: slices.Clone(v)}
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = &Op{Key: slices.Clone(k), Delete: true}
	return nil
}

// Commit writes all buffered changes to the underlying store. If the store is
// a Batcher the changes are applied in one batch.
func (s *SimpleMutable) Commit(ctx context.Context) error {
	keys := maps.Keys(s.changes)
	slices.Sort(keys)
	ops := make([]Op, 0, len(keys))
	for _, k := range keys {
		ops = append(ops, *s.changes[k])
	}
	if b, ok := s.v.(Batcher); ok {
		if err := b.WriteBatch(ctx, ops); err != nil {
			return err
		}
	} else {
		for _, op := range ops {
			var err error
			if op.Delete {
				err = s.v.Remove(ctx, op.Key)
			} else {
				err = s.v.Insert(ctx, op.Key, op.Value)
			}
			if err != nil {
				return err
			}
		}
	}
	clear(s.changes)
	return nil
}
