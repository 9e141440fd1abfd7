// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/counter/pebble"
	"github.com/ava-labs/counter/trace"
)

const (
	defaultDataDir    = ".counter"
	defaultRPCAddress = "127.0.0.1:9650"
)

type Config struct {
	// Logging
	LogLevel logging.Level `json:"logLevel"`

	// Storage
	DataDir string        `json:"dataDir"`
	Pebble  pebble.Config `json:"pebble"`

	// Tracing
	TraceEnabled    bool    `json:"traceEnabled"`
	TraceSampleRate float64 `json:"traceSampleRate"`
	TraceEndpoint   string  `json:"traceEndpoint"`

	// RPC
	RPCAddress string `json:"rpcAddress"`
}

// New returns the default config overridden by the JSON in [b], if any.
func New(b []byte) (*Config, error) {
	c := &Config{}
	c.setDefault()
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	return c, nil
}

func (c *Config) setDefault() {
	c.LogLevel = logging.Info
	c.DataDir = defaultDataDir
	c.Pebble = pebble.NewDefaultConfig()
	c.TraceSampleRate = 1
	c.RPCAddress = defaultRPCAddress
}

func (c *Config) GetTraceConfig(agent string) *trace.Config {
	return &trace.Config{
		Enabled:    c.TraceEnabled,
		SampleRate: c.TraceSampleRate,
		Endpoint:   c.TraceEndpoint,
		Agent:      agent,
	}
}
