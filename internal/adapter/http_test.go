// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpValidatorAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpValidatorAdapter {
	t.Helper()
	a, err := NewHTTPValidatorAdapter(config.Adapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpValidatorAdapter)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "localhost:5000", want: "http://localhost:5000"},
		{in: " http://validator:5000/ ", want: "http://validator:5000"},
		{in: "https://cards.example.com", want: "https://cards.example.com"},
		{in: "", wantErr: ErrEmptyAddress},
		{in: "http://", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPValidatorAdapter_EmptyAddress(t *testing.T) {
	a, err := NewHTTPValidatorAdapter(config.Adapter{}, logger.Nop())

	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Validate ────────────────────────────────────────────────────────────────

func TestValidate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/validate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.ValidateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "4111 1111 1111 1111", req.CardNumber)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ValidateResponse{IsValid: true, Type: "Visa", Length: 16})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	reply, err := a.Validate(context.Background(), "4111 1111 1111 1111")

	require.NoError(t, err)
	assert.True(t, reply.OK)
	assert.Equal(t, http.StatusOK, reply.StatusCode)
	assert.True(t, reply.Result.IsValid)
	assert.Equal(t, "Visa", reply.Result.Type)
}

func TestValidate_InvalidNumberIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"isValid":false}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	reply, err := a.Validate(context.Background(), "1234")

	require.NoError(t, err)
	assert.True(t, reply.OK)
	assert.False(t, reply.Result.IsValid)
	assert.Empty(t, reply.Result.Type)
}

func TestValidate_RejectedWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad request"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	reply, err := a.Validate(context.Background(), "1")

	require.NoError(t, err)
	assert.False(t, reply.OK)
	assert.Equal(t, http.StatusBadRequest, reply.StatusCode)
	assert.Equal(t, "bad request", reply.Error)
}

func TestValidate_RejectedWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	reply, err := a.Validate(context.Background(), "4111")

	require.NoError(t, err)
	assert.False(t, reply.OK)
	assert.Equal(t, http.StatusBadGateway, reply.StatusCode)
	assert.Empty(t, reply.Error)
}

func TestValidate_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Validate(context.Background(), "4111")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestValidate_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Validate(context.Background(), "4111")

	assert.ErrorIs(t, err, ErrTransport)
}

func TestValidate_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Validate(ctx, "4111")

	assert.ErrorIs(t, err, ErrTransport)
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealth_Healthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"healthy","timestamp":"2026-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	health, err := a.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.HealthStatusHealthy, health.Status)
}

func TestHealth_NotHealthyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"degraded"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Health(context.Background())

	assert.ErrorIs(t, err, ErrUnhealthy)
}

func TestHealth_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Health(context.Background())

	require.ErrorIs(t, err, ErrUnhealthy)
	assert.Contains(t, err.Error(), "503")
}
