package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Eloura74/Backbone/pkg/catalog"
	"github.com/Eloura74/Backbone/pkg/models"
	"github.com/Eloura74/Backbone/pkg/placeholder"
	"github.com/Eloura74/Backbone/pkg/utils"
)

// RegisterDocuments registers template-catalog and placeholder routes.
func (a *API) RegisterDocuments(r *mux.Router) {
	r.HandleFunc("/templates", a.listTemplates).Methods(http.MethodGet)
	r.HandleFunc("/documents/placeholders", a.extractPlaceholders).Methods(http.MethodPost)
	r.HandleFunc("/documents/resolve", a.resolveDocument).Methods(http.MethodPost)
}

// listTemplates handles GET /templates?category=. The catalog guarantees a
// non-empty list for every known category, falling back to the general
// bucket.
func (a *API) listTemplates(w http.ResponseWriter, r *http.Request) {
	cat := models.Category(r.URL.Query().Get("category"))
	if cat == "" {
		cat = models.CategoryGeneral
	}
	refs := catalog.For(cat)
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Category  models.Category `json:"category"`
		Templates []catalog.Ref   `json:"templates"`
	}{Category: cat, Templates: refs})
}

type placeholdersRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// extractPlaceholders handles POST /documents/placeholders: reports the
// ordered distinct placeholder tokens of a draft.
func (a *API) extractPlaceholders(w http.ResponseWriter, r *http.Request) {
	var req placeholdersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	tokens := placeholder.Extract(models.Document{Subject: req.Subject, Body: req.Body})
	if tokens == nil {
		tokens = []string{}
	}
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Placeholders []string `json:"placeholders"`
	}{Placeholders: tokens})
}

type resolveRequest struct {
	Subject string            `json:"subject"`
	Body    string            `json:"body"`
	Values  map[string]string `json:"values"`
}

// resolveDocument handles POST /documents/resolve: substitutes placeholder
// values into a draft. Tokens with no supplied value stay verbatim so the
// caller can resolve incrementally.
func (a *API) resolveDocument(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	doc := placeholder.Resolve(models.Document{Subject: req.Subject, Body: req.Body}, req.Values)
	remaining := placeholder.Extract(doc)
	if remaining == nil {
		remaining = []string{}
	}
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Subject   string   `json:"subject"`
		Body      string   `json:"body"`
		Remaining []string `json:"remaining"`
	}{Subject: doc.Subject, Body: doc.Body, Remaining: remaining})
}
