// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"context"
	"errors"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/counter/instruction"
	"github.com/ava-labs/counter/state"
	"github.com/ava-labs/counter/storage"
)

var ErrNotEnoughAccountKeys = errors.New("not enough account keys")

// Program is the counter program. It keeps no state between invocations.
type Program struct {
	log     logging.Logger
	metrics *metrics
}

func New(log logging.Logger) (*Program, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	return &Program{
		log:     log,
		metrics: metrics,
	}, registry, nil
}

// Process decodes [data] and applies it to the counter held by accounts[0].
// The account buffer is only written once the instruction has been decoded
// and the current counter read, so a failed invocation never leaves a
// partially written buffer.
func (p *Program) Process(_ context.Context, accounts []state.Account, data []byte) error {
	p.log.Debug("counter program entrypoint",
		zap.Int("accounts", len(accounts)),
		zap.Int("instructionLen", len(data)),
	)

	start := time.Now()
	i, err := p.process(accounts, data)
	p.metrics.processTime.Observe(float64(time.Since(start)))
	if err != nil {
		p.metrics.failed.Inc()
		p.log.Debug("invocation failed",
			zap.Error(err),
		)
		return err
	}
	p.metrics.instructions.WithLabelValues(instruction.Name(i.GetTypeID())).Inc()
	return nil
}

func (p *Program) process(accounts []state.Account, data []byte) (instruction.Instruction, error) {
	i, err := instruction.Unpack(data)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNotEnoughAccountKeys
	}
	account := accounts[0]

	buf := account.Data()
	counterAccount, err := storage.GetCounterAccount(buf)
	if err != nil {
		return nil, err
	}
	previous := counterAccount.Counter
	counterAccount.Counter = i.Apply(previous)
	if err := storage.PutCounterAccount(buf, counterAccount); err != nil {
		return nil, err
	}

	p.log.Debug("applied instruction",
		zap.Stringer("instruction", i),
		zap.Stringer("account", account.Key()),
		zap.Uint32("previous", previous),
		zap.Uint32("counter", counterAccount.Counter),
	)
	return i, nil
}
