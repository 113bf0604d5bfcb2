package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-saas/internal/audit"
	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-saas/internal/models"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

type ClientHandler struct {
	store store.DocumentStore
	audit *audit.Dispatcher
}

func NewClientHandler(st store.DocumentStore, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{store: st, audit: audit}
}

type CreateClientRequest struct {
	ShopID string   `json:"shop_id" binding:"required"`
	Name   string   `json:"name" binding:"required"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone"`
	Notes  string   `json:"notes"`
	Tags   []string `json:"tags"`
}

type createdClient struct {
	ID string `json:"id"`
	models.Client
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.ValidationMessage(err))
		return
	}

	// shop_id is stored as given; references are never resolved against the
	// shop collection.
	client := models.Client{
		ShopID: req.ShopID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Notes:  req.Notes,
		Tags:   req.Tags,
	}

	collection, ok := collectionFor(c, client)
	if !ok {
		return
	}

	id, err := h.store.InsertOne(c.Request.Context(), collection, client)
	if err != nil {
		storeError(c, "failed_to_create_client", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   req.ShopID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: id,
	})

	httpresp.OK(c, createdClient{ID: id, Client: client})
}

func (h *ClientHandler) List(c *gin.Context) {
	limit, ok := limitQuery(c, 100)
	if !ok {
		return
	}

	filter := store.Filter{}
	if shopID := c.Query("shop_id"); shopID != "" {
		filter["shop_id"] = shopID
	}

	docs, err := h.store.FindMany(c.Request.Context(), store.CollectionClient, filter, limit)
	if err != nil {
		storeError(c, "failed_to_list_clients", err)
		return
	}

	httpresp.List(c, publicDocuments(docs))
}
