// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusBadGateway)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusBadGateway, w.status)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestResponseWriter_ImplicitStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_AccumulatesSize(t *testing.T) {
	tests := []struct {
		name     string
		writes   []string
		wantSize int
	}{
		{"no writes", nil, 0},
		{"single", []string{`{"a":1}`}, 7},
		{"several", []string{"first", "second", ""}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			for _, chunk := range tt.writes {
				_, err := w.Write([]byte(chunk))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rec.Body.Len())
		})
	}
}
