// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/tomb.v2"

	"github.com/ava-labs/counter/state"
)

var (
	_ state.Mutable = (*Database)(nil)
	_ state.Batcher = (*Database)(nil)

	ErrClosed = errors.New("pebble: database closed")
)

type Config struct {
	CacheSize    int    `json:"cacheSize"`
	BytesPerSync int    `json:"bytesPerSync"`
	MemTableSize uint64 `json:"memTableSize"`
	MaxOpenFiles int    `json:"maxOpenFiles"`
	Sync         bool   `json:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:    8 * units.MiB,
		BytesPerSync: 1 * units.MiB,
		MemTableSize: 4 * units.MiB,
		MaxOpenFiles: 512,
		Sync:         true,
	}
}

// Database stores account buffers in pebble.
type Database struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
	metrics   *metrics

	lock   sync.RWMutex
	closed bool
	tomb   tomb.Tomb
}

func New(file string, cfg Config) (*Database, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	d := &Database{
		metrics: metrics,
	}
	if cfg.Sync {
		d.writeOpts = pebble.Sync
	} else {
		d.writeOpts = pebble.NoSync
	}

	cache := pebble.NewCache(int64(cfg.CacheSize))
	defer cache.Unref()
	opts := &pebble.Options{
		Cache:        cache,
		BytesPerSync: cfg.BytesPerSync,
		MemTableSize: cfg.MemTableSize,
		MaxOpenFiles: cfg.MaxOpenFiles,
	}
	opts.EventListener = &pebble.EventListener{
		CompactionBegin: d.onCompactionBegin,
		CompactionEnd:   d.onCompactionEnd,
		WriteStallBegin: d.onWriteStallBegin,
		WriteStallEnd:   d.onWriteStallEnd,
	}
	d.db, err = pebble.Open(file, opts)
	if err != nil {
		return nil, nil, err
	}

	d.tomb.Go(d.collectMetrics)
	return d, registry, nil
}

func (d *Database) GetValue(_ context.Context, key []byte) ([]byte, error) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	if d.closed {
		return nil, ErrClosed
	}
	start := time.Now()
	v, closer, err := d.db.Get(key)
	d.metrics.getLatency.Observe(float64(time.Since(start)))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	value := slices.Clone(v)
	return value, closer.Close()
}

func (d *Database) Insert(_ context.Context, key []byte, value []byte) error {
	d.lock.RLock()
	defer d.lock.RUnlock()

	if d.closed {
		return ErrClosed
	}
	return d.db.Set(key, value, d.writeOpts)
}

func (d *Database) Remove(_ context.Context, key []byte) error {
	d.lock.RLock()
	defer d.lock.RUnlock()

	if d.closed {
		return ErrClosed
	}
	return d.db.Delete(key, d.writeOpts)
}

// WriteBatch applies [ops] in a single pebble batch.
func (d *Database) WriteBatch(_ context.Context, ops []state.Op) error {
	d.lock.RLock()
	defer d.lock.RUnlock()

	if d.closed {
		return ErrClosed
	}
	batch := d.db.NewBatch()
	defer batch.Close()
	for _, op := range ops {
		var err error
		if op.Delete {
			err = batch.Delete(op.Key, nil)
		} else {
			err = batch.Set(op.Key, op.Value, nil)
		}
		if err != nil {
			return err
		}
	}
	d.metrics.batchOps.Add(float64(len(ops)))
	return batch.Commit(d.writeOpts)
}

func (d *Database) Close() error {
	d.lock.Lock()
	if d.closed {
		d.lock.Unlock()
		return ErrClosed
	}
	d.closed = true
	d.lock.Unlock()

	d.tomb.Kill(nil)
	_ = d.tomb.Wait()
	return d.db.Close()
}
