// Package api builds the HTTP router for the inbox and memory service.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Eloura74/Backbone/pkg/api/handlers"
	"github.com/Eloura74/Backbone/pkg/store"
)

// NewRouter wires every API route under /api/v1 plus the health probes.
// Middleware (auth, telemetry) is attached by the caller so tests can
// exercise the routes bare.
func NewRouter(h *handlers.API) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !store.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	h.Register(v1)
	return r
}
