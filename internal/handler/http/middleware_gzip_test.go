// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()

	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	const batch = `{"data":[{"event_name":"PageView"}]}`

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            io.Reader
		wantStatus      int
		wantGzipped     bool
		wantBody        string
	}{
		{
			name:           "response compressed when client accepts gzip",
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
			wantBody:       "echo:",
		},
		{
			name:        "response plain without accept-encoding",
			wantStatus:  http.StatusOK,
			wantGzipped: false,
			wantBody:    "echo:",
		},
		{
			name:           "accept-encoding list with quality values",
			acceptEncoding: "br;q=1.0, gzip;q=0.8",
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
			wantBody:       "echo:",
		},
		{
			name:            "gzip request body decoded",
			contentEncoding: "gzip",
			body:            gzipBytes(t, []byte(batch)),
			wantStatus:      http.StatusOK,
			wantBody:        "echo:" + batch,
		},
		{
			name:            "gzip request and response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			body:            gzipBytes(t, []byte(batch)),
			wantStatus:      http.StatusOK,
			wantGzipped:     true,
			wantBody:        "echo:" + batch,
		},
		{
			name:            "corrupt gzip request body rejected",
			contentEncoding: "gzip",
			body:            strings.NewReader(batch),
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"error":"invalid gzip data"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("Content-Encoding"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("echo:" + string(body)))
			})

			req := httptest.NewRequest(http.MethodPost, eventsRoute, tt.body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestGZip_NoBodyStatusesAreNotEncoded(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, status, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Zero(t, rr.Body.Len())
	}
}

func TestGZip_HandlerWithoutWriteSendsNothing(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_AlreadyEncodedResponsePassesThrough(t *testing.T) {
	payload := gzipBytes(t, []byte("metrics")).Bytes()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(payload)
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, "metrics", gunzip(t, rr.Body))
}

func TestGZip_ImplicitStatusIsCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.Equal(t, `{"status":"ok"}`, gunzip(t, rr.Body))
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat(`{"event_name":"PageView","action_source":"website"},`, 500)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10)
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	})
	handler := withGZip(next)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			payload := strings.Repeat(string(rune('a'+id%26)), 64)
			req := httptest.NewRequest(http.MethodPost, eventsRoute, gzipBytes(t, []byte(payload)))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			got, _ := io.ReadAll(zr)
			assert.Equal(t, payload, string(got))
		}(i)
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { closed = true },
	}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}
