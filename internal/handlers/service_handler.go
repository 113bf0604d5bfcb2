package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-saas/internal/audit"
	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-saas/internal/models"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

type ServiceHandler struct {
	store store.DocumentStore
	audit *audit.Dispatcher
}

func NewServiceHandler(st store.DocumentStore, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{store: st, audit: audit}
}

// Price is a pointer so a free service (0) still passes required.
type CreateServiceRequest struct {
	ShopID          string   `json:"shop_id" binding:"required"`
	Name            string   `json:"name" binding:"required"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,gte=5,lte=240"`
	Price           *float64 `json:"price" binding:"required,gte=0"`
	Description     string   `json:"description"`
}

type createdService struct {
	ID string `json:"id"`
	models.Service
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.ValidationMessage(err))
		return
	}

	service := models.Service{
		ShopID:          req.ShopID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           *req.Price,
		Description:     req.Description,
	}

	collection, ok := collectionFor(c, service)
	if !ok {
		return
	}

	id, err := h.store.InsertOne(c.Request.Context(), collection, service)
	if err != nil {
		storeError(c, "failed_to_create_service", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   req.ShopID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: id,
	})

	httpresp.OK(c, createdService{ID: id, Service: service})
}

func (h *ServiceHandler) List(c *gin.Context) {
	limit, ok := limitQuery(c, 100)
	if !ok {
		return
	}

	filter := store.Filter{}
	if shopID := c.Query("shop_id"); shopID != "" {
		filter["shop_id"] = shopID
	}

	docs, err := h.store.FindMany(c.Request.Context(), store.CollectionService, filter, limit)
	if err != nil {
		storeError(c, "failed_to_list_services", err)
		return
	}

	httpresp.List(c, publicDocuments(docs))
}
