// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("test-client", path)
	l.Info().Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"test-client"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNewClientLogger_UnwritablePathDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "client.log")

	l := NewClientLogger("test-client", path)

	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req").Logger()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(zl.WithContext(r.Context()))

	FromRequest(r).Info().Msg("request")

	assert.Contains(t, buf.String(), `"trace_id":"req"`)
}

func TestGetChildLogger_DoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("child", "yes")
	})
	parent.Info().Msg("parent")

	assert.NotContains(t, buf.String(), `"child"`)
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	SetLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("nonsense")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
