package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-saas/internal/audit"
	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-saas/internal/models"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
	"github.com/BruksfildServices01/barbershop-saas/internal/timezone"
)

type ShopHandler struct {
	store store.DocumentStore
	audit *audit.Dispatcher
}

func NewShopHandler(st store.DocumentStore, audit *audit.Dispatcher) *ShopHandler {
	return &ShopHandler{store: st, audit: audit}
}

type CreateShopRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
}

type createdShop struct {
	ID string `json:"id"`
	models.Shop
}

func (h *ShopHandler) Create(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.ValidationMessage(err))
		return
	}

	shop := models.Shop{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Timezone: timezone.OrDefault(req.Timezone),
	}

	collection, ok := collectionFor(c, shop)
	if !ok {
		return
	}

	id, err := h.store.InsertOne(c.Request.Context(), collection, shop)
	if err != nil {
		storeError(c, "failed_to_create_shop", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   id,
		Action:   "shop_created",
		Entity:   "shop",
		EntityID: id,
	})

	httpresp.OK(c, createdShop{ID: id, Shop: shop})
}

func (h *ShopHandler) List(c *gin.Context) {
	limit, ok := limitQuery(c, 50)
	if !ok {
		return
	}

	docs, err := h.store.FindMany(c.Request.Context(), store.CollectionShop, store.Filter{}, limit)
	if err != nil {
		storeError(c, "failed_to_list_shops", err)
		return
	}

	httpresp.List(c, publicDocuments(docs))
}
