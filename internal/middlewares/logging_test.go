package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		inboundID     string
		keepsInbound  bool
		expectedLevel zapcore.Level
	}{
		{name: "ok", handlerStatus: http.StatusOK, expectedLevel: zap.InfoLevel},
		{name: "client error", handlerStatus: http.StatusNotFound, expectedLevel: zap.InfoLevel},
		{name: "server error", handlerStatus: http.StatusInternalServerError, expectedLevel: zap.ErrorLevel},
		{
			name:          "inbound id kept",
			handlerStatus: http.StatusOK,
			inboundID:     "5f0c6c43-6a3e-4a53-9a0e-0b8a2c7c4d11",
			keepsInbound:  true,
			expectedLevel: zap.InfoLevel,
		},
		{
			name:          "malformed inbound id replaced",
			handlerStatus: http.StatusOK,
			inboundID:     "not-a-uuid",
			expectedLevel: zap.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)

			var seenID string
			r := chi.NewRouter()
			r.Use(LoggingMiddleware(zap.New(core).Sugar()))
			r.Get("/savedbooks/{volumeID}/user/{username}", func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte("body"))
			})

			req := httptest.NewRequest(http.MethodGet, "/savedbooks/v1/user/u1", nil)
			if tt.inboundID != "" {
				req.Header.Set(RequestIDHeader, tt.inboundID)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)

			reqID := rr.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(reqID)
			require.NoError(t, err)
			assert.Equal(t, reqID, seenID)
			if tt.keepsInbound {
				assert.Equal(t, tt.inboundID, reqID)
			} else {
				assert.NotEqual(t, tt.inboundID, reqID)
			}

			entries := logs.All()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, "http request", entry.Message)
			assert.Equal(t, tt.expectedLevel, entry.Level)

			fields := entry.ContextMap()
			assert.Equal(t, int64(tt.handlerStatus), fields["status"])
			assert.Equal(t, int64(4), fields["bytes"])
			assert.Equal(t, "/savedbooks/{volumeID}/user/{username}", fields["route"])
			assert.Equal(t, "/savedbooks/v1/user/u1", fields["path"])
		})
	}
}
