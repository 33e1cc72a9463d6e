package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogColors(t *testing.T) {
	tests := []struct {
		name     string
		colored  bool
		wantANSI bool
	}{
		{name: "plain for structured logs", colored: false, wantANSI: false},
		{name: "colored for console", colored: true, wantANSI: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			mux := http.NewServeMux()
			mux.HandleFunc("GET /ping", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			h := NewHandler(mux, zap.New(core).Sugar(), tt.colored)
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

			entries := logs.All()
			require.Len(t, entries, 2)
			assert.Contains(t, entries[0].Message, "Received request")
			assert.Contains(t, entries[1].Message, "Finished request")
			assert.Equal(t, "204", entries[1].ContextMap()["status"])
			for _, e := range entries {
				assert.Equal(t, tt.wantANSI, strings.Contains(e.Message, "\x1b["), e.Message)
			}
		})
	}
}
