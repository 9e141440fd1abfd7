// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledTracer(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{Enabled: false})
	require.NoError(err)

	ctx, span := tracer.Start(context.Background(), "Test")
	require.NotNil(ctx)
	require.False(span.SpanContext().IsValid())
	span.End()
	require.NoError(tracer.Close())
}

func TestEnabledTracer(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{
		Enabled:    true,
		SampleRate: 1,
		Agent:      "test",
	})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "Test")
	require.True(span.SpanContext().IsValid())
	require.True(span.SpanContext().IsSampled())
	span.End()
}

func TestNeverSample(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{
		Enabled:    true,
		SampleRate: 0,
	})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "Test")
	require.False(span.SpanContext().IsSampled())
	span.End()
}
