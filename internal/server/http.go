package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/sokinpui/sketchsolve.go/internal/relay"
	"github.com/sokinpui/sketchsolve.go/internal/upload"
	"go.uber.org/zap"
)

const imageField = "image"

// multipartMemory is the in-memory threshold for multipart parsing; larger
// parts are spooled by net/http and cleaned up when the request ends.
const multipartMemory = 32 << 20

type HTTPServer struct {
	relay          *relay.Service
	uploads        *upload.Store
	maxUploadBytes int64
	logger         *zap.SugaredLogger
}

// NewHTTPServer wires the relay endpoints. A maxUploadBytes of zero disables
// the request size cap.
func NewHTTPServer(r *relay.Service, uploads *upload.Store, maxUploadBytes int64, logger *zap.SugaredLogger) *HTTPServer {
	return &HTTPServer{
		relay:          r,
		uploads:        uploads,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

func (s *HTTPServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /calculate", s.handleCalculate)
	mux.HandleFunc("POST /generate", s.handleGenerate)
}

func (s *HTTPServer) limitBody(w http.ResponseWriter, r *http.Request) {
	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	}
}

func (s *HTTPServer) handleCalculate(w http.ResponseWriter, r *http.Request) {
	s.limitBody(w, r)

	file, header, err := r.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			err = fmt.Errorf("%w: %v", relay.ErrMissingImage, err)
		} else {
			err = fmt.Errorf("parse multipart upload: %w", err)
		}
		logAndReturnError(w, r, s.logger, err)
		return
	}
	defer file.Close()

	up, err := s.uploads.Save(file, header.Header.Get("Content-Type"))
	if err != nil {
		logAndReturnError(w, r, s.logger, err)
		return
	}
	defer func() {
		if err := s.uploads.Remove(up); err != nil {
			s.logger.Errorw("Failed to delete uploaded image", "path", up.Path, "error", err)
		}
	}()

	data, err := s.uploads.Read(up)
	if err != nil {
		logAndReturnError(w, r, s.logger, err)
		return
	}

	text, err := s.relay.Solve(r.Context(), &relay.Image{Data: data, MediaType: up.MediaType})
	if err != nil {
		logAndReturnError(w, r, s.logger, err)
		return
	}

	writeText(w, http.StatusOK, text)
}

func (s *HTTPServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.limitBody(w, r)

	text, err := decodeText(r)
	if err != nil {
		logAndReturnError(w, r, s.logger, fmt.Errorf("%w: %v", relay.ErrMissingText, err))
		return
	}

	out, err := s.relay.Draw(r.Context(), text)
	if err != nil {
		logAndReturnError(w, r, s.logger, err)
		return
	}

	writeText(w, http.StatusOK, out)
}

type generateBody struct {
	Text string `json:"text"`
}

// decodeText reads the text field from a JSON body, or from a urlencoded
// form when the request says so.
func decodeText(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return "", err
		}
		return r.PostForm.Get("text"), nil
	}

	var body generateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("invalid request body: %w", err)
	}
	return body.Text, nil
}
