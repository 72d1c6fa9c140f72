// Package handlers holds the HTTP handlers for the inbox, memory, document
// and assistant endpoints.
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Eloura74/Backbone/pkg/lifecycle"
	"github.com/Eloura74/Backbone/pkg/render"
	"github.com/Eloura74/Backbone/pkg/utils"
)

// API bundles the collaborators the handlers need. The lifecycle manager
// owns every state transition; handlers never mutate the store directly.
type API struct {
	Items    *lifecycle.Manager
	Renderer render.Renderer
}

// New builds the handler set.
func New(items *lifecycle.Manager, renderer render.Renderer) *API {
	return &API{Items: items, Renderer: renderer}
}

// Register attaches every route to the router.
func (a *API) Register(r *mux.Router) {
	a.RegisterInbox(r)
	a.RegisterDocuments(r)
	a.RegisterMemory(r)
	a.RegisterDashboard(r)
	a.RegisterCortex(r)
	a.RegisterCalendar(r)
}

// writeError maps the lifecycle error taxonomy onto HTTP statuses. Unknown
// errors are internal.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case lifecycle.IsValidation(err):
		utils.JSONError(w, http.StatusBadRequest, err.Error())
	case lifecycle.IsNotFound(err):
		utils.JSONError(w, http.StatusNotFound, err.Error())
	case lifecycle.IsInvalidState(err):
		utils.JSONError(w, http.StatusConflict, err.Error())
	default:
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
	}
}
