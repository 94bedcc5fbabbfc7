// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── responseWriter ──────────────────────────────────────────────────────────

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_WriteAccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("hello "))
	_, _ = w.Write([]byte("world"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
	assert.Same(t, rec, w.Unwrap())
}

// ── withTraceID ─────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	tests := []struct {
		name   string
		header string
	}{
		{name: "echoes incoming id", header: "incoming-id"},
		{name: "generates id", header: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = utils.GetTraceIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			if tt.header != "" {
				assert.Equal(t, tt.header, got)
			}
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	handler := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	var mu sync.Mutex
	ids := make(map[string]struct{})
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			mu.Lock()
			ids[rec.Header().Get(traceIDHeader)] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 50)
}

// ── withLogging ─────────────────────────────────────────────────────────────

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: l}

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("abc"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/validate", strings.NewReader(`{"cardNumber":"4111111111111111"}`))
	req.Header.Set(traceIDHeader, "t-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/validate", entry["uri"])
	assert.Equal(t, "POST", entry["method"])
	assert.EqualValues(t, http.StatusAccepted, entry["status"])
	assert.EqualValues(t, 3, entry["size"])
	assert.Equal(t, "t-1", entry["trace_id"])
	assert.NotContains(t, buf.String(), "4111111111111111")
}

// ── withGZip ────────────────────────────────────────────────────────────────

func TestWithGZip_SkipsWithoutAcceptEncoding(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"a": "b"}, http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"a":"b"}`, rec.Body.String())
}

func TestWithGZip_SkipsIncompressibleContent(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestWithGZip_CompressesJSON(t *testing.T) {
	payload := strings.Repeat(`{"type":"Visa"}`, 100)
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Less(t, rec.Body.Len(), len(payload))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(plain))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { called = true }}
	require.NoError(t, rc.Close())
	assert.True(t, called)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}

// ── CheckHTTPMethod ─────────────────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/a", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("get a")) })
	router.Post("/a", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("post a")) })
	router.Get("/b", func(w http.ResponseWriter, r *http.Request) {})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/a", http.StatusOK, "get a"},
		{http.MethodPost, "/a", http.StatusOK, "post a"},
		{http.MethodPut, "/a", http.StatusNotFound, ""},
		{http.MethodPost, "/b", http.StatusNotFound, ""},
		{http.MethodGet, "/missing", http.StatusNotFound, "404 page not found\n"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
