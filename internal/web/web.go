// Package web serves the single-page playground client.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var index []byte

// RegisterRoutes serves the page for both client-side views.
func RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", serveIndex)
	mux.HandleFunc("GET /playground", serveIndex)
}

func serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(index)
}
