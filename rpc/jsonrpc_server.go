// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/counter/codec"
)

// Host is the subset of the local host served over JSON-RPC.
type Host interface {
	CreateAccount(ctx context.Context, key ids.ShortID) error
	Invoke(ctx context.Context, keys []ids.ShortID, data []byte) error
	Counter(ctx context.Context, key ids.ShortID) (uint32, error)
}

type JSONRPCServer struct {
	log  logging.Logger
	host Host
}

func NewJSONRPCServer(log logging.Logger, host Host) *JSONRPCServer {
	return &JSONRPCServer{
		log:  log,
		host: host,
	}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) error {
	j.log.Info("ping")
	reply.Success = true
	return nil
}

type AccountArgs struct {
	Account ids.ShortID `json:"account"`
}

func (j *JSONRPCServer) CreateAccount(req *http.Request, args *AccountArgs, _ *struct{}) error {
	return j.host.CreateAccount(req.Context(), args.Account)
}

type InvokeArgs struct {
	Accounts    []ids.ShortID `json:"accounts"`
	Instruction codec.Bytes   `json:"instruction"`
}

func (j *JSONRPCServer) Invoke(req *http.Request, args *InvokeArgs, _ *struct{}) error {
	if err := j.host.Invoke(req.Context(), args.Accounts, args.Instruction); err != nil {
		j.log.Debug("invoke failed",
			zap.Stringer("instruction", args.Instruction),
			zap.Error(err),
		)
		return err
	}
	return nil
}

type CounterReply struct {
	Counter uint32 `json:"counter"`
}

func (j *JSONRPCServer) Counter(req *http.Request, args *AccountArgs, reply *CounterReply) error {
	counter, err := j.host.Counter(req.Context(), args.Account)
	if err != nil {
		return err
	}
	reply.Counter = counter
	return nil
}
