package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Eloura74/Backbone/pkg/cortex"
	"github.com/Eloura74/Backbone/pkg/utils"
)

// RegisterCortex registers the text-analysis helper routes.
func (a *API) RegisterCortex(r *mux.Router) {
	r.HandleFunc("/cortex/summarize", a.summarizeText).Methods(http.MethodPost)
	r.HandleFunc("/cortex/suggest", a.suggestReply).Methods(http.MethodPost)
	r.HandleFunc("/cortex/sentiment", a.sentimentText).Methods(http.MethodPost)
}

type cortexRequest struct {
	Text string `json:"text"`
}

func decodeCortexRequest(w http.ResponseWriter, r *http.Request) (cortexRequest, bool) {
	var req cortexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return req, false
	}
	if req.Text == "" {
		utils.JSONError(w, http.StatusBadRequest, "text is required")
		return req, false
	}
	return req, true
}

// summarizeText handles POST /cortex/summarize: subject line, amounts, key
// dates and sentiment in one structured summary.
func (a *API) summarizeText(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCortexRequest(w, r)
	if !ok {
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Summary string `json:"summary"`
	}{Summary: cortex.Summarize(req.Text)})
}

// suggestReply handles POST /cortex/suggest: proposes a short reply for the
// given context.
func (a *API) suggestReply(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCortexRequest(w, r)
	if !ok {
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Reply string `json:"reply"`
	}{Reply: cortex.SuggestReply(req.Text)})
}

// sentimentText handles POST /cortex/sentiment.
func (a *API) sentimentText(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCortexRequest(w, r)
	if !ok {
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Sentiment string `json:"sentiment"`
	}{Sentiment: cortex.Sentiment(req.Text)})
}
