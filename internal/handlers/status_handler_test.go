package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-saas/internal/config"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

func TestRootMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	st := store.Connect(context.Background(), cfg, zap.NewNop())

	r := gin.New()
	h := NewStatusHandler(st, cfg)
	r.GET("/", h.Root)

	w := doJSON(t, r, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Barbershop SaaS Backend is running", decodeObject(t, w)["message"])
}

func TestDatabaseDiagnosticsWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	st := store.Connect(context.Background(), cfg, zap.NewNop())

	r := gin.New()
	h := NewStatusHandler(st, cfg)
	r.GET("/test", h.TestDatabase)

	w := doJSON(t, r, http.MethodGet, "/test", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "❌ Not Available", body["database"])
	assert.Equal(t, "Not Connected", body["connection_status"])
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Empty(t, body["collections"])
}
