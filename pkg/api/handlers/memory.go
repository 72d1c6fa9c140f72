package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Eloura74/Backbone/pkg/models"
	"github.com/Eloura74/Backbone/pkg/store"
	"github.com/Eloura74/Backbone/pkg/utils"
	"github.com/Eloura74/Backbone/pkg/validation"
)

// RegisterMemory registers the memory-trace routes. Most traces come from
// processing an inbox item; POST exists for decisions taken outside the
// inbox flow.
func (a *API) RegisterMemory(r *mux.Router) {
	r.HandleFunc("/memory", a.createTrace).Methods(http.MethodPost)
	r.HandleFunc("/memory", a.listTraces).Methods(http.MethodGet)
	r.HandleFunc("/memory/{id}", a.getTrace).Methods(http.MethodGet)
	r.HandleFunc("/memory/{id}", a.updateTrace).Methods(http.MethodPut)
	r.HandleFunc("/memory/{id}", a.deleteTrace).Methods(http.MethodDelete)
}

type createTraceRequest struct {
	Decision        string           `json:"decision"`
	Context         string           `json:"context,omitempty"`
	Responsible     string           `json:"responsible,omitempty"`
	DocumentContent *models.Document `json:"document_content,omitempty"`
}

// createTrace handles POST /memory: records a decision taken outside the
// inbox flow. No item is archived here.
func (a *API) createTrace(w http.ResponseWriter, r *http.Request) {
	var req createTraceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validation.ValidateDecision(req.Decision); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	trace := models.MemoryTrace{
		ID:              utils.GenTraceID(),
		Decision:        req.Decision,
		Context:         req.Context,
		State:           "manual",
		Responsible:     req.Responsible,
		DocumentContent: req.DocumentContent,
		CreatedTS:       time.Now().UTC().UnixNano(),
	}
	if trace.Responsible == "" {
		trace.Responsible = "Assistant"
	}
	if err := store.SaveTrace(trace); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusCreated, trace)
}

// listTraces handles GET /memory?limit=. Newest first.
func (a *API) listTraces(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limStr := r.URL.Query().Get("limit"); limStr != "" {
		if lim, err := strconv.Atoi(limStr); err == nil && lim > 0 {
			limit = lim
		}
	}
	traces, err := store.ListTraces(limit)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if traces == nil {
		traces = []models.MemoryTrace{}
	}
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Traces []models.MemoryTrace `json:"traces"`
	}{Traces: traces})
}

func (a *API) getTrace(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	trace, found, err := store.GetTrace(id)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		utils.JSONError(w, http.StatusNotFound, "trace not found: "+id)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, trace)
}

type updateTraceRequest struct {
	Decision        string           `json:"decision"`
	Context         string           `json:"context"`
	Responsible     string           `json:"responsible"`
	DocumentContent *models.Document `json:"document_content"`
}

// updateTrace handles PUT /memory/{id}. Decision, context and responsible
// are editable; the document snapshot is replaced wholesale when present.
// ID, state and creation time are immutable.
func (a *API) updateTrace(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req updateTraceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	trace, found, err := store.GetTrace(id)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		utils.JSONError(w, http.StatusNotFound, "trace not found: "+id)
		return
	}
	if req.Decision != "" {
		trace.Decision = req.Decision
	}
	if req.Context != "" {
		trace.Context = req.Context
	}
	if req.Responsible != "" {
		trace.Responsible = req.Responsible
	}
	if req.DocumentContent != nil {
		trace.DocumentContent = req.DocumentContent
	}
	if err := store.SaveTrace(trace); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, trace)
}

func (a *API) deleteTrace(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, found, err := store.GetTrace(id)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		utils.JSONError(w, http.StatusNotFound, "trace not found: "+id)
		return
	}
	if err := store.DeleteTrace(id); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
