package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/sokinpui/sketchsolve.go/internal/color"
	"go.uber.org/zap"
)

// NewHandler wraps the mux with request logging and unconditional CORS.
// colored adds ANSI colors to the request markers and suits only the console
// encoder; JSON logs would carry the escape codes verbatim.
func NewHandler(mux http.Handler, logger *zap.SugaredLogger, colored bool) http.Handler {
	return cors.AllowAll().Handler(logRequests(mux, logger, colored))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func logRequests(next http.Handler, logger *zap.SugaredLogger, colored bool) http.Handler {
	received := func() string { return "Received request" }
	finished := func(int) string { return "Finished request" }
	if colored {
		received = func() string { return color.BlueString("Received request") }
		finished = func(status int) string { return color.StatusString(status, "Finished request") }
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		started := time.Now()
		logger.Infow("-> "+received(), "request_id", requestID, "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Infow("<- "+finished(rec.status), "request_id", requestID, "status", strconv.Itoa(rec.status), "took", time.Since(started).String())
	})
}
