// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/instruction"
)

type JSONRPCClient struct {
	requester rpc.EndpointRequester
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	return &JSONRPCClient{requester: rpc.NewEndpointRequester(uri)}
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		Name+".ping",
		nil,
		resp,
	)
	return resp.Success, err
}

func (cli *JSONRPCClient) CreateAccount(ctx context.Context, key ids.ShortID) error {
	return cli.requester.SendRequest(ctx,
		Name+".createAccount",
		&AccountArgs{Account: key},
		new(struct{}),
	)
}

// Invoke sends the raw instruction [data] to be run against [keys].
func (cli *JSONRPCClient) Invoke(ctx context.Context, keys []ids.ShortID, data []byte) error {
	return cli.requester.SendRequest(ctx,
		Name+".invoke",
		&InvokeArgs{
			Accounts:    keys,
			Instruction: codec.Bytes(data),
		},
		new(struct{}),
	)
}

// Send packs [i] and invokes it against [key].
func (cli *JSONRPCClient) Send(ctx context.Context, key ids.ShortID, i instruction.Instruction) error {
	data, err := instruction.Pack(i)
	if err != nil {
		return err
	}
	return cli.Invoke(ctx, []ids.ShortID{key}, data)
}

func (cli *JSONRPCClient) Counter(ctx context.Context, key ids.ShortID) (uint32, error) {
	resp := new(CounterReply)
	err := cli.requester.SendRequest(ctx,
		Name+".counter",
		&AccountArgs{Account: key},
		resp,
	)
	return resp.Counter, err
}
