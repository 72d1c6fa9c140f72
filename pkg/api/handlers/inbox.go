package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Eloura74/Backbone/pkg/lifecycle"
	"github.com/Eloura74/Backbone/pkg/models"
	"github.com/Eloura74/Backbone/pkg/placeholder"
	"github.com/Eloura74/Backbone/pkg/render"
	"github.com/Eloura74/Backbone/pkg/store"
	"github.com/Eloura74/Backbone/pkg/telemetry"
	"github.com/Eloura74/Backbone/pkg/utils"
)

// RegisterInbox registers all inbox-item routes.
func (a *API) RegisterInbox(r *mux.Router) {
	r.HandleFunc("/inbox", a.createItem).Methods(http.MethodPost)
	r.HandleFunc("/inbox", a.listItems).Methods(http.MethodGet)
	r.HandleFunc("/inbox/upload", a.uploadItem).Methods(http.MethodPost)
	r.HandleFunc("/inbox/{id}", a.getItem).Methods(http.MethodGet)
	r.HandleFunc("/inbox/{id}", a.updateItem).Methods(http.MethodPut)
	r.HandleFunc("/inbox/{id}", a.deleteItem).Methods(http.MethodDelete)
	r.HandleFunc("/inbox/{id}/generate", a.generateDocument).Methods(http.MethodPost)
	r.HandleFunc("/inbox/{id}/process", a.processItem).Methods(http.MethodPost)
}

type createItemRequest struct {
	Source   models.Source   `json:"source"`
	Category models.Category `json:"category"`
	Content  string          `json:"content"`
}

// createItem handles POST /inbox. Source defaults to note and category to
// info, matching manual intake.
func (a *API) createItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Source == "" {
		req.Source = models.SourceNote
	}
	if req.Category == "" {
		req.Category = models.CategoryInfo
	}
	item, err := a.Items.Create(req.Source, req.Category, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusCreated, item)
}

// listItems handles GET /inbox. Optional query parameters:
//   - "status": pending|archived, default all
//   - "limit": cap on returned items
func (a *API) listItems(w http.ResponseWriter, r *http.Request) {
	status := models.Status(r.URL.Query().Get("status"))
	items, err := store.ListItems(status)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if limStr := r.URL.Query().Get("limit"); limStr != "" {
		if lim, err := strconv.Atoi(limStr); err == nil && lim >= 0 && lim < len(items) {
			items = items[:lim]
		}
	}
	if items == nil {
		items = []models.InboxItem{}
	}
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Items []models.InboxItem `json:"items"`
	}{Items: items})
}

func (a *API) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := a.Items.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, item)
}

type updateItemRequest struct {
	Content string `json:"content"`
}

// updateItem handles PUT /inbox/{id}. Only pending items accept edits.
func (a *API) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	item, err := a.Items.Edit(mux.Vars(r)["id"], req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, item)
}

// deleteItem handles DELETE /inbox/{id}. Archived items are history and
// return 409; their trace stays retrievable.
func (a *API) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := a.Items.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// uploadItem handles POST /inbox/upload: intake of extracted document text
// as a pending item with source=document. Accepts a JSON body
// {category, content} or a multipart form with a "content" field / plain
// text "file" part. Binary parsing is an upstream concern.
func (a *API) uploadItem(w http.ResponseWriter, r *http.Request) {
	category := models.CategoryInfo
	var content string

	ct := r.Header.Get("Content-Type")
	if ct != "" && len(ct) >= 19 && ct[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		if c := r.FormValue("category"); c != "" {
			category = models.Category(c)
		}
		content = r.FormValue("content")
		if content == "" {
			f, _, err := r.FormFile("file")
			if err == nil {
				defer f.Close()
				b, rerr := io.ReadAll(io.LimitReader(f, 10<<20))
				if rerr == nil {
					content = string(b)
				}
			}
		}
	} else {
		var req struct {
			Category models.Category `json:"category"`
			Content  string          `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Category != "" {
			category = req.Category
		}
		content = req.Content
	}

	item, err := a.Items.Intake(category, content)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusCreated, item)
}

type generateRequest struct {
	TemplateType string `json:"template_type"`
	UserInput    string `json:"user_input,omitempty"`
}

type generateResponse struct {
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	Placeholders []string `json:"placeholders"`
}

// generateDocument handles POST /inbox/{id}/generate: renders a draft for
// the item from the requested template and reports the draft's placeholder
// tokens so the client can offer a fill-in form.
func (a *API) generateDocument(w http.ResponseWriter, r *http.Request) {
	item, err := a.Items.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	doc, err := a.Renderer.Render(req.TemplateType, render.Context{
		ItemContent: item.Content,
		Instruction: req.UserInput,
	})
	if err != nil {
		var ut *render.UnknownTemplateError
		if errors.As(err, &ut) {
			utils.JSONError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	telemetry.DocumentsGenerated.Inc()
	tokens := placeholder.Extract(doc)
	if tokens == nil {
		tokens = []string{}
	}
	_ = utils.JSONWrite(w, http.StatusOK, generateResponse{
		Subject:      doc.Subject,
		Body:         doc.Body,
		Placeholders: tokens,
	})
}

type processRequest struct {
	Decision     string           `json:"decision"`
	Context      string           `json:"context,omitempty"`
	Responsible  string           `json:"responsible,omitempty"`
	GeneratedDoc *models.Document `json:"generated_doc,omitempty"`
}

// processItem handles POST /inbox/{id}/process: the atomic commit that
// archives the item and creates its memory trace. Re-processing an already
// archived item returns 409.
func (a *API) processItem(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	trace, err := a.Items.Process(mux.Vars(r)["id"], lifecycle.ProcessRequest{
		Decision:    req.Decision,
		Context:     req.Context,
		Responsible: req.Responsible,
		Document:    req.GeneratedDoc,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	telemetry.ItemsProcessed.Inc()
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		OK    bool               `json:"ok"`
		Trace models.MemoryTrace `json:"trace"`
	}{OK: true, Trace: trace})
}
