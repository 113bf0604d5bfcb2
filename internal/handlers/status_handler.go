package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-saas/internal/config"
	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

// StatusHandler serves the liveness message and the store diagnostics page.
// It needs the concrete store to inspect connection state.
type StatusHandler struct {
	store *store.Mongo
	cfg   *config.Config
}

func NewStatusHandler(st *store.Mongo, cfg *config.Config) *StatusHandler {
	return &StatusHandler{store: st, cfg: cfg}
}

func (h *StatusHandler) Root(c *gin.Context) {
	httpresp.OK(c, gin.H{"message": "Barbershop SaaS Backend is running"})
}

// TestDatabase reports connection state without ever failing: a missing or
// broken store is diagnosed here, not treated as an error.
func (h *StatusHandler) TestDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store.Ready() {
		resp["database"] = "✅ Available"
		resp["database_url"] = setFlag(h.cfg.DatabaseURL != "")
		resp["database_name"] = setFlag(h.cfg.DatabaseName != "")
		resp["connection_status"] = "Connected"

		names, err := h.store.CollectionNames(c.Request.Context())
		if err != nil {
			resp["database"] = "⚠️ Connected but Error: " + httperr.Truncate(err.Error(), 80)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
			resp["database"] = "✅ Connected & Working"
		}
	}

	httpresp.OK(c, resp)
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
