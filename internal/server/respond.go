package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/sokinpui/sketchsolve.go/internal/relay"
	"go.uber.org/zap"
)

// Response bodies are part of the public contract and are written verbatim.
const (
	msgNoImage       = "No image file uploaded."
	msgTextRequired  = "Text field is required!"
	msgInternalError = "Internal Server Error"
)

// writeText writes body exactly as given. Unlike http.Error it appends no
// trailing newline.
func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = io.WriteString(w, body)
}

// statusFor maps a relay error onto the HTTP status and public message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, relay.ErrMissingImage):
		return http.StatusBadRequest, msgNoImage
	case errors.Is(err, relay.ErrMissingText):
		return http.StatusBadRequest, msgTextRequired
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// logAndReturnError logs the cause server-side and writes only the public
// message to the caller.
func logAndReturnError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		logger.Errorw("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		logger.Debugw("Rejected request", "method", r.Method, "path", r.URL.Path, "reason", err)
	}
	writeText(w, code, msg)
}
