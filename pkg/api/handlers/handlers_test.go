package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Eloura74/Backbone/pkg/api"
	"github.com/Eloura74/Backbone/pkg/api/handlers"
	"github.com/Eloura74/Backbone/pkg/lifecycle"
	"github.com/Eloura74/Backbone/pkg/models"
	"github.com/Eloura74/Backbone/pkg/render"
	"github.com/Eloura74/Backbone/pkg/store"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	if err := store.Open(t.TempDir()); err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	mgr := lifecycle.New(store.InboxAccessor{}, store.MemoryAccessor{})
	return api.NewRouter(handlers.New(mgr, render.CatalogRenderer{}))
}

func do(t *testing.T, r *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
}

func createItem(t *testing.T, r *mux.Router, source, category, content string) models.InboxItem {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/inbox", map[string]string{
		"source": source, "category": category, "content": content,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create item: %d %s", w.Code, w.Body.String())
	}
	var item models.InboxItem
	decode(t, w, &item)
	return item
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)
	if w := do(t, r, http.MethodGet, "/healthz", nil); w.Code != http.StatusOK {
		t.Fatalf("healthz: %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/readyz", nil); w.Code != http.StatusOK {
		t.Fatalf("readyz: %d", w.Code)
	}
}

func TestFullProcessFlow(t *testing.T) {
	r := newTestRouter(t)

	item := createItem(t, r, "email", "facturation", "Facture FAC-2024-001 en retard, merci de régler.")
	if item.Status != models.StatusPending {
		t.Fatalf("new item status = %s", item.Status)
	}

	// pending list contains it
	w := do(t, r, http.MethodGet, "/api/v1/inbox?status=pending", nil)
	var listResp struct {
		Items []models.InboxItem `json:"items"`
	}
	decode(t, w, &listResp)
	if len(listResp.Items) != 1 || listResp.Items[0].ID != item.ID {
		t.Fatalf("pending list = %+v", listResp.Items)
	}

	// generate a draft
	w = do(t, r, http.MethodPost, "/api/v1/inbox/"+item.ID+"/generate", map[string]string{
		"template_type": "facture_relance_1",
		"user_input":    "rester courtois",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("generate: %d %s", w.Code, w.Body.String())
	}
	var gen struct {
		Subject      string   `json:"subject"`
		Body         string   `json:"body"`
		Placeholders []string `json:"placeholders"`
	}
	decode(t, w, &gen)
	if !strings.Contains(gen.Body, "[MONTANT]") {
		t.Fatalf("draft lost tokens: %q", gen.Body)
	}
	if !strings.Contains(gen.Body, "rester courtois") {
		t.Fatalf("instruction missing: %q", gen.Body)
	}
	found := false
	for _, p := range gen.Placeholders {
		if p == "[MONTANT]" {
			found = true
		}
	}
	if !found {
		t.Fatalf("placeholders = %v", gen.Placeholders)
	}

	// resolve part of the draft
	w = do(t, r, http.MethodPost, "/api/v1/documents/resolve", map[string]any{
		"subject": gen.Subject,
		"body":    gen.Body,
		"values":  map[string]string{"[MONTANT]": "1 250,00 €"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("resolve: %d %s", w.Code, w.Body.String())
	}
	var res struct {
		Subject   string   `json:"subject"`
		Body      string   `json:"body"`
		Remaining []string `json:"remaining"`
	}
	decode(t, w, &res)
	if strings.Contains(res.Body, "[MONTANT]") {
		t.Fatal("resolved token still present")
	}
	for _, p := range res.Remaining {
		if p == "[MONTANT]" {
			t.Fatal("resolved token reported as remaining")
		}
	}

	// process the item
	w = do(t, r, http.MethodPost, "/api/v1/inbox/"+item.ID+"/process", map[string]any{
		"decision": "Relance envoyée",
		"context":  "2e relance",
		"generated_doc": map[string]string{
			"subject": res.Subject,
			"body":    res.Body,
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("process: %d %s", w.Code, w.Body.String())
	}
	var proc struct {
		OK    bool               `json:"ok"`
		Trace models.MemoryTrace `json:"trace"`
	}
	decode(t, w, &proc)
	if !proc.OK || proc.Trace.Decision != "Relance envoyée" {
		t.Fatalf("process response = %+v", proc)
	}
	if proc.Trace.Responsible != "Assistant" {
		t.Fatalf("responsible = %q", proc.Trace.Responsible)
	}
	if proc.Trace.DocumentContent == nil || proc.Trace.DocumentContent.Body != res.Body {
		t.Fatal("document snapshot missing from trace")
	}

	// item is archived now
	w = do(t, r, http.MethodGet, "/api/v1/inbox/"+item.ID, nil)
	var archived models.InboxItem
	decode(t, w, &archived)
	if archived.Status != models.StatusArchived {
		t.Fatalf("status after process = %s", archived.Status)
	}

	// re-processing, editing and deleting the archived item all conflict
	w = do(t, r, http.MethodPost, "/api/v1/inbox/"+item.ID+"/process", map[string]string{"decision": "encore"})
	if w.Code != http.StatusConflict {
		t.Fatalf("second process: %d", w.Code)
	}
	w = do(t, r, http.MethodPut, "/api/v1/inbox/"+item.ID, map[string]string{"content": "trop tard"})
	if w.Code != http.StatusConflict {
		t.Fatalf("edit archived: %d", w.Code)
	}
	w = do(t, r, http.MethodDelete, "/api/v1/inbox/"+item.ID, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("delete archived: %d", w.Code)
	}

	// the trace is listed and retrievable
	w = do(t, r, http.MethodGet, "/api/v1/memory", nil)
	var traces struct {
		Traces []models.MemoryTrace `json:"traces"`
	}
	decode(t, w, &traces)
	if len(traces.Traces) != 1 || traces.Traces[0].ID != proc.Trace.ID {
		t.Fatalf("traces = %+v", traces.Traces)
	}
}

func TestCreateItemValidation(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/inbox", map[string]string{"content": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank content: %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/api/v1/inbox", map[string]string{"source": "pigeon", "content": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad source: %d", w.Code)
	}
}

func TestCreateItemDefaults(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/inbox", map[string]string{"content": "juste une note"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var item models.InboxItem
	decode(t, w, &item)
	if item.Source != models.SourceNote || item.Category != models.CategoryInfo {
		t.Fatalf("defaults = %s/%s", item.Source, item.Category)
	}
}

func TestGetUnknownItem(t *testing.T) {
	r := newTestRouter(t)
	if w := do(t, r, http.MethodGet, "/api/v1/inbox/itm_missing", nil); w.Code != http.StatusNotFound {
		t.Fatalf("get missing: %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/inbox/itm_missing/process", map[string]string{"decision": "x"}); w.Code != http.StatusNotFound {
		t.Fatalf("process missing: %d", w.Code)
	}
}

func TestGenerateUnknownTemplate(t *testing.T) {
	r := newTestRouter(t)
	item := createItem(t, r, "note", "info", "contenu")
	w := do(t, r, http.MethodPost, "/api/v1/inbox/"+item.ID+"/generate", map[string]string{"template_type": "no_such"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown template: %d %s", w.Code, w.Body.String())
	}
}

func TestProcessWithoutDecision(t *testing.T) {
	r := newTestRouter(t)
	item := createItem(t, r, "note", "info", "contenu")
	w := do(t, r, http.MethodPost, "/api/v1/inbox/"+item.ID+"/process", map[string]string{"decision": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing decision: %d", w.Code)
	}
	// item stays pending
	w = do(t, r, http.MethodGet, "/api/v1/inbox/"+item.ID, nil)
	var item2 models.InboxItem
	decode(t, w, &item2)
	if item2.Status != models.StatusPending {
		t.Fatalf("status = %s", item2.Status)
	}
}

func TestDeletePendingItem(t *testing.T) {
	r := newTestRouter(t)
	item := createItem(t, r, "note", "info", "à jeter")
	if w := do(t, r, http.MethodDelete, "/api/v1/inbox/"+item.ID, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/inbox/"+item.ID, nil); w.Code != http.StatusNotFound {
		t.Fatalf("deleted item still there: %d", w.Code)
	}
}

func TestUploadIntake(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/inbox/upload", map[string]string{
		"category": "rh",
		"content":  "Texte extrait du CV",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", w.Code, w.Body.String())
	}
	var item models.InboxItem
	decode(t, w, &item)
	if item.Source != models.SourceDocument || item.Category != models.CategoryRH {
		t.Fatalf("upload item = %+v", item)
	}
}

func TestTemplatesFallback(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/v1/templates?category=info", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("templates: %d", w.Code)
	}
	var resp struct {
		Templates []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"templates"`
	}
	decode(t, w, &resp)
	if len(resp.Templates) == 0 {
		t.Fatal("template list empty; general fallback missing")
	}
}

func TestMemoryUpdateAndDelete(t *testing.T) {
	r := newTestRouter(t)
	item := createItem(t, r, "call", "direction", "Appel important du conseil")
	w := do(t, r, http.MethodPost, "/api/v1/inbox/"+item.ID+"/process", map[string]string{"decision": "Noté"})
	if w.Code != http.StatusOK {
		t.Fatalf("process: %d", w.Code)
	}
	var proc struct {
		Trace models.MemoryTrace `json:"trace"`
	}
	decode(t, w, &proc)

	// update the decision; document replaced wholesale
	w = do(t, r, http.MethodPut, "/api/v1/memory/"+proc.Trace.ID, map[string]any{
		"decision":         "Noté et transmis",
		"document_content": map[string]string{"subject": "CR", "body": "transmis au conseil"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update trace: %d %s", w.Code, w.Body.String())
	}
	var updated models.MemoryTrace
	decode(t, w, &updated)
	if updated.Decision != "Noté et transmis" {
		t.Fatalf("decision = %q", updated.Decision)
	}
	if updated.DocumentContent == nil || updated.DocumentContent.Body != "transmis au conseil" {
		t.Fatalf("document = %+v", updated.DocumentContent)
	}
	if updated.CreatedTS != proc.Trace.CreatedTS {
		t.Fatal("created timestamp changed on update")
	}

	if w := do(t, r, http.MethodDelete, "/api/v1/memory/"+proc.Trace.ID, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete trace: %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/memory/"+proc.Trace.ID, nil); w.Code != http.StatusNotFound {
		t.Fatalf("deleted trace still there: %d", w.Code)
	}
}

func TestDashboardStats(t *testing.T) {
	r := newTestRouter(t)
	for i := 0; i < 3; i++ {
		createItem(t, r, "note", "info", fmt.Sprintf("note %d", i))
	}
	item := createItem(t, r, "email", "urgence", "fuite d'eau")
	if w := do(t, r, http.MethodPost, "/api/v1/inbox/"+item.ID+"/process", map[string]string{"decision": "plombier"}); w.Code != http.StatusOK {
		t.Fatalf("process: %d", w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/v1/dashboard/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: %d", w.Code)
	}
	var resp struct {
		Stats struct {
			InboxTotal    int `json:"inbox_total"`
			InboxPending  int `json:"inbox_pending"`
			InboxArchived int `json:"inbox_archived"`
			MemoryTotal   int `json:"memory_total"`
		} `json:"stats"`
		Recent []models.MemoryTrace `json:"recent_traces"`
	}
	decode(t, w, &resp)
	if resp.Stats.InboxTotal != 4 || resp.Stats.InboxPending != 3 || resp.Stats.InboxArchived != 1 {
		t.Fatalf("stats = %+v", resp.Stats)
	}
	if resp.Stats.MemoryTotal != 1 || len(resp.Recent) != 1 {
		t.Fatalf("traces = %+v recent = %d", resp.Stats, len(resp.Recent))
	}
}

func TestSettingsReset(t *testing.T) {
	r := newTestRouter(t)
	createItem(t, r, "note", "info", "bientôt effacé")

	// a frontend caller may not reset
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/settings/reset", nil)
	req.Header.Set("X-Role-Name", "frontend")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("frontend reset: %d", w.Code)
	}

	// an admin may
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/settings/reset", nil)
	req.Header.Set("X-Role-Name", "admin")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("admin reset: %d %s", w.Code, w.Body.String())
	}

	lw := do(t, r, http.MethodGet, "/api/v1/inbox", nil)
	var listResp struct {
		Items []models.InboxItem `json:"items"`
	}
	decode(t, lw, &listResp)
	if len(listResp.Items) != 0 {
		t.Fatalf("items survived reset: %+v", listResp.Items)
	}
}

func TestCortexEndpoints(t *testing.T) {
	r := newTestRouter(t)
	text := "URGENT : régler la facture de 99,00 € avant le 01/10/2025"

	w := do(t, r, http.MethodPost, "/api/v1/cortex/sentiment", map[string]string{"text": text})
	if w.Code != http.StatusOK {
		t.Fatalf("sentiment: %d", w.Code)
	}
	var sen struct {
		Sentiment string `json:"sentiment"`
	}
	decode(t, w, &sen)
	if !strings.Contains(sen.Sentiment, "Urgent") {
		t.Fatalf("sentiment = %q", sen.Sentiment)
	}

	w = do(t, r, http.MethodPost, "/api/v1/cortex/summarize", map[string]string{"text": text})
	if w.Code != http.StatusOK {
		t.Fatalf("summarize: %d", w.Code)
	}
	var sum struct {
		Summary string `json:"summary"`
	}
	decode(t, w, &sum)
	if !strings.Contains(sum.Summary, "99,00 €") || !strings.Contains(sum.Summary, "01/10/2025") {
		t.Fatalf("summary = %q", sum.Summary)
	}

	w = do(t, r, http.MethodPost, "/api/v1/cortex/suggest", map[string]string{"text": "rendez-vous la semaine prochaine"})
	if w.Code != http.StatusOK {
		t.Fatalf("suggest: %d", w.Code)
	}
	var sug struct {
		Reply string `json:"reply"`
	}
	decode(t, w, &sug)
	if sug.Reply == "" {
		t.Fatal("empty suggestion")
	}

	if w := do(t, r, http.MethodPost, "/api/v1/cortex/summarize", map[string]string{"text": ""}); w.Code != http.StatusBadRequest {
		t.Fatalf("empty text: %d", w.Code)
	}
}

func TestManualTraceCreation(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/memory", map[string]string{
		"decision": "Contrat renouvelé par téléphone",
		"context":  "hors inbox",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create trace: %d %s", w.Code, w.Body.String())
	}
	var trace models.MemoryTrace
	decode(t, w, &trace)
	if trace.ID == "" || trace.State != "manual" || trace.Responsible != "Assistant" {
		t.Fatalf("trace = %+v", trace)
	}

	if w := do(t, r, http.MethodPost, "/api/v1/memory", map[string]string{"decision": "  "}); w.Code != http.StatusBadRequest {
		t.Fatalf("blank decision: %d", w.Code)
	}
}

func TestCalendarICS(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/calendar/ics", map[string]any{
		"summary":      "Réunion suivi",
		"start":        "2025-09-01T10:00:00Z",
		"duration_min": 30,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("ics: %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("content type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "DTSTART:20250901T100000") || !strings.Contains(body, "SUMMARY:Réunion suivi") {
		t.Fatalf("ics body:\n%s", body)
	}

	if w := do(t, r, http.MethodPost, "/api/v1/calendar/ics", map[string]string{"summary": ""}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing summary: %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/calendar/ics", map[string]string{"summary": "x", "start": "hier"}); w.Code != http.StatusBadRequest {
		t.Fatalf("bad start: %d", w.Code)
	}
}
