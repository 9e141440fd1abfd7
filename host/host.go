// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ava-labs/counter/codec"
	"github.com/ava-labs/counter/state"
	"github.com/ava-labs/counter/storage"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account already exists")
)

// Processor is the program interface the host invokes.
type Processor interface {
	Process(ctx context.Context, accounts []state.Account, data []byte) error
}

// Host is a local execution environment for the counter program. It loads
// accounts from [db], hands the program private copies of their buffers and
// persists the copies only if the invocation succeeds.
type Host struct {
	log    logging.Logger
	tracer trace.Tracer
	db     state.Mutable
	prog   Processor

	// writers are serialized; Counter takes the read lock
	lock sync.RWMutex
}

func New(log logging.Logger, tracer trace.Tracer, db state.Mutable, prog Processor) *Host {
	return &Host{
		log:    log,
		tracer: tracer,
		db:     db,
		prog:   prog,
	}
}

// CreateAccount allocates a zero-initialized counter account for [key].
func (h *Host) CreateAccount(ctx context.Context, key ids.ShortID) error {
	ctx, span := h.tracer.Start(ctx, "Host.CreateAccount")
	defer span.End()

	h.lock.Lock()
	defer h.lock.Unlock()

	_, exists, err := storage.GetAccountData(ctx, h.db, key)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, key)
	}
	if err := storage.SetAccountData(ctx, h.db, key, storage.NewCounterAccountData()); err != nil {
		return err
	}
	h.log.Info("created account",
		zap.Stringer("account", key),
	)
	return nil
}

// Invoke runs the program once with the accounts named by [keys] and the raw
// instruction [data].
func (h *Host) Invoke(ctx context.Context, keys []ids.ShortID, data []byte) error {
	ctx, span := h.tracer.Start(ctx, "Host.Invoke")
	defer span.End()
	span.SetAttributes(
		attribute.Int("accounts", len(keys)),
		attribute.Stringer("instruction", codec.Bytes(data)),
	)

	h.lock.Lock()
	defer h.lock.Unlock()

	view := state.NewSimpleMutable(h.db)
	accounts := make([]state.Account, 0, len(keys))
	for _, key := range keys {
		if slices.ContainsFunc(accounts, func(a state.Account) bool { return a.Key() == key }) {
			return fmt.Errorf("%w: %s", ErrDuplicateAccount, key)
		}
		buf, exists, err := storage.GetAccountData(ctx, view, key)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, key)
		}
		accounts = append(accounts, state.NewAccount(key, buf))
	}

	if err := h.prog.Process(ctx, accounts, data); err != nil {
		span.RecordError(err)
		h.log.Debug("invocation rejected",
			zap.Stringer("instruction", codec.Bytes(data)),
			zap.Error(err),
		)
		return err
	}

	for _, account := range accounts {
		if err := storage.SetAccountData(ctx, view, account.Key(), account.Data()); err != nil {
			return err
		}
	}
	return view.Commit(ctx)
}

// Counter returns the counter held by [key].
func (h *Host) Counter(ctx context.Context, key ids.ShortID) (uint32, error) {
	ctx, span := h.tracer.Start(ctx, "Host.Counter")
	defer span.End()

	h.lock.RLock()
	defer h.lock.RUnlock()

	data, exists, err := storage.GetAccountData(ctx, h.db, key)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w: %s", ErrAccountNotFound, key)
	}
	acct, err := storage.GetCounterAccount(data)
	if err != nil {
		return 0, err
	}
	return acct.Counter, nil
}
