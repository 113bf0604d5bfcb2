package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-saas/internal/audit"
	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/store/storetest"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storetest.Fake) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()

	fake := storetest.New()
	log := zap.NewNop()
	dispatcher := audit.NewDispatcher(audit.New(fake, log), log)

	shopHandler := NewShopHandler(fake, dispatcher)
	staffHandler := NewStaffHandler(fake, dispatcher)
	serviceHandler := NewServiceHandler(fake, dispatcher)
	clientHandler := NewClientHandler(fake, dispatcher)
	appointmentHandler := NewAppointmentHandler(fake, dispatcher)
	crmHandler := NewCRMHandler(fake, dispatcher)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/shops", shopHandler.Create)
		api.GET("/shops", shopHandler.List)
		api.POST("/staff", staffHandler.Create)
		api.GET("/staff", staffHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.GET("/services", serviceHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients", clientHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/crm/generate-message", crmHandler.GenerateMessage)
		api.POST("/crm/workflows", crmHandler.CreateWorkflow)
		api.GET("/crm/workflows", crmHandler.ListWorkflows)
	}

	return r, fake
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
