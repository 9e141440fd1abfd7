// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counter/host"
	"github.com/ava-labs/counter/instruction"
	"github.com/ava-labs/counter/program"
	"github.com/ava-labs/counter/state"
	"github.com/ava-labs/counter/trace"
)

func newTestClient(t *testing.T) *JSONRPCClient {
	require := require.New(t)

	tracer, err := trace.New(&trace.Config{Enabled: false})
	require.NoError(err)
	prog, _, err := program.New(logging.NoLog{})
	require.NoError(err)
	h := host.New(logging.NoLog{}, tracer, state.NewInMemoryStore(), prog)

	router, err := NewRouter(NewJSONRPCServer(logging.NoLog{}, h))
	require.NoError(err)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return NewJSONRPCClient(server.URL)
}

func TestJSONRPC(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	cli := newTestClient(t)

	ok, err := cli.Ping(ctx)
	require.NoError(err)
	require.True(ok)

	key := ids.GenerateTestShortID()
	require.NoError(cli.CreateAccount(ctx, key))

	steps := []struct {
		instruction instruction.Instruction
		expected    uint32
	}{
		{&instruction.Increment{Value: 2}, 2},
		{&instruction.Decrement{Value: 1}, 1},
		{&instruction.Update{Value: 65}, 65},
		{&instruction.Reset{}, 0},
	}
	for _, step := range steps {
		require.NoError(cli.Send(ctx, key, step.instruction))
		counter, err := cli.Counter(ctx, key)
		require.NoError(err)
		require.Equal(step.expected, counter)
	}
}

func TestJSONRPCErrors(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	cli := newTestClient(t)

	key := ids.GenerateTestShortID()
	_, err := cli.Counter(ctx, key)
	require.ErrorContains(err, host.ErrAccountNotFound.Error())

	require.NoError(cli.CreateAccount(ctx, key))
	err = cli.CreateAccount(ctx, key)
	require.ErrorContains(err, host.ErrDuplicateAccount.Error())

	err = cli.Invoke(ctx, []ids.ShortID{key}, []byte{4})
	require.ErrorContains(err, instruction.ErrUnrecognizedInstruction.Error())

	err = cli.Invoke(ctx, []ids.ShortID{key}, nil)
	require.ErrorContains(err, instruction.ErrEmptyInstruction.Error())

	counter, err := cli.Counter(ctx, key)
	require.NoError(err)
	require.Zero(counter)
}
