package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Eloura74/Backbone/pkg/logger"
	"github.com/Eloura74/Backbone/pkg/models"
	"github.com/Eloura74/Backbone/pkg/store"
	"github.com/Eloura74/Backbone/pkg/utils"
	"go.uber.org/zap"
)

// RegisterDashboard registers the dashboard and settings routes.
func (a *API) RegisterDashboard(r *mux.Router) {
	r.HandleFunc("/dashboard/stats", a.dashboardStats).Methods(http.MethodGet)
	r.HandleFunc("/settings/reset", a.settingsReset).Methods(http.MethodDelete)
}

const recentTraceCount = 5

type dashboardResponse struct {
	Stats  store.Stats          `json:"stats"`
	Recent []models.MemoryTrace `json:"recent_traces"`
}

// dashboardStats handles GET /dashboard/stats: item/trace counts plus the
// most recent traces.
func (a *API) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := store.CollectStats()
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	recent, err := store.ListTraces(recentTraceCount)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if recent == nil {
		recent = []models.MemoryTrace{}
	}
	_ = utils.JSONWrite(w, http.StatusOK, dashboardResponse{Stats: stats, Recent: recent})
}

// settingsReset handles DELETE /settings/reset: wipes every item and trace.
// Destructive, so restricted to admin callers unless the deployment allows
// unauthenticated access.
func (a *API) settingsReset(w http.ResponseWriter, r *http.Request) {
	role := r.Header.Get("X-Role-Name")
	if role != "admin" && role != "unauth" {
		utils.JSONError(w, http.StatusForbidden, "admin key required")
		return
	}
	if err := store.ResetAll(); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	logger.Log.Info("settings_reset", zap.String("role", role))
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}
