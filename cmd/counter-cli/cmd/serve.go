// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/counter/rpc"
	"github.com/ava-labs/counter/utils"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func newServeCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the counter JSON-RPC API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context())
		},
	}
}

func (c *counterCLI) serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", c.cfg.RPCAddress)
	if err != nil {
		return err
	}
	return c.serveOn(ctx, listener)
}

// serveOn serves the JSON-RPC API on [listener] until [ctx] is done, then
// shuts the server down gracefully.
func (c *counterCLI) serveOn(ctx context.Context, listener net.Listener) error {
	router, err := rpc.NewRouter(rpc.NewJSONRPCServer(c.log, c.host))
	if err != nil {
		_ = listener.Close()
		return err
	}
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve(listener)
	}()
	address := listener.Addr().String()
	utils.Outf("{{green}}serving{{/}} http://%s%s\n", address, rpc.JSONRPCEndpoint)
	c.log.Info("serving json-rpc",
		zap.String("address", address),
	)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	c.log.Info("json-rpc server stopped")
	return nil
}
