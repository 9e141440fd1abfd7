// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counter/host"
	"github.com/ava-labs/counter/instruction"
	"github.com/ava-labs/counter/program"
	"github.com/ava-labs/counter/rpc"
	"github.com/ava-labs/counter/state"
	"github.com/ava-labs/counter/trace"
)

func TestServe(t *testing.T) {
	require := require.New(t)

	tracer, err := trace.New(&trace.Config{Enabled: false})
	require.NoError(err)
	prog, _, err := program.New(logging.NoLog{})
	require.NoError(err)
	c := &counterCLI{
		log:  logging.NoLog{},
		host: host.New(logging.NoLog{}, tracer, state.NewInMemoryStore(), prog),
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- c.serveOn(ctx, listener)
	}()

	cli := rpc.NewJSONRPCClient("http://" + listener.Addr().String())
	ok, err := cli.Ping(ctx)
	require.NoError(err)
	require.True(ok)

	key := ids.GenerateTestShortID()
	require.NoError(cli.CreateAccount(ctx, key))
	require.NoError(cli.Send(ctx, key, &instruction.Update{Value: 65}))
	counter, err := cli.Counter(ctx, key)
	require.NoError(err)
	require.Equal(uint32(65), counter)

	cancel()
	select {
	case err := <-done:
		require.NoError(err)
	case <-time.After(shutdownTimeout):
		require.FailNow("server did not shut down")
	}

	// the listener is closed once the server stops
	_, err = cli.Ping(context.Background())
	require.Error(err)
}

func TestServeAddressInUse(t *testing.T) {
	require := require.New(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(err)
	defer listener.Close()

	configPath := filepath.Join(t.TempDir(), "config.json")
	config := fmt.Sprintf(`{"rpcAddress": %q}`, listener.Addr().String())
	require.NoError(os.WriteFile(configPath, []byte(config), 0o600))

	_, err = runRoot(t, "", "--config", configPath, "serve")
	var opErr *net.OpError
	require.ErrorAs(err, &opErr)
}
