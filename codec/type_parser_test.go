// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counter/consts"
)

type tagged struct {
	tag uint8
}

func (t *tagged) GetTypeID() uint8 { return t.tag }

func TestTypeParser(t *testing.T) {
	tp := NewTypeParser[*tagged]()

	t.Run("empty parser", func(t *testing.T) {
		require := require.New(t)
		f, ok := tp.LookupIndex(0)
		require.Nil(f)
		require.False(ok)
		require.Zero(tp.Len())
	})

	t.Run("populated parser", func(t *testing.T) {
		require := require.New(t)

		errZero := errors.New("zero")
		errOne := errors.New("one")
		require.NoError(tp.Register(&tagged{0}, func([]byte) (*tagged, error) { return nil, errZero }))
		require.NoError(tp.Register(&tagged{1}, func([]byte) (*tagged, error) { return nil, errOne }))
		require.Equal(2, tp.Len())

		f, ok := tp.LookupIndex(0)
		require.True(ok)
		_, err := f(nil)
		require.ErrorIs(err, errZero)

		f, ok = tp.LookupIndex(1)
		require.True(ok)
		_, err = f(nil)
		require.ErrorIs(err, errOne)
	})

	t.Run("duplicate type", func(t *testing.T) {
		require := require.New(t)
		err := tp.Register(&tagged{1}, nil)
		require.ErrorIs(err, ErrDuplicateType)
	})

	t.Run("full key space", func(t *testing.T) {
		require := require.New(t)
		// 0 and 1 are already registered
		for tag := 2; tag <= int(consts.MaxUint8); tag++ {
			require.NoError(tp.Register(&tagged{uint8(tag)}, nil))
		}
		require.Equal(int(consts.MaxUint8)+1, tp.Len())
		require.ErrorIs(tp.Register(&tagged{consts.MaxUint8}, nil), ErrDuplicateType)
	})
}
