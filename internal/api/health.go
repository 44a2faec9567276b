package api

import (
	"net/http"

	"github.com/stayhub/stayhub/internal/api/respond"
	"github.com/stayhub/stayhub/internal/store"
)

// HealthHandler reports process liveness. The store is held so the
// check fails loudly if wiring ever hands us a nil store.
type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler { return &HealthHandler{store: s} }

// CheckHealth GET /api/v1/health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respond.WriteInternalError(w, "store not configured")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
