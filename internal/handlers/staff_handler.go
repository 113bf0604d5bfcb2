package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-saas/internal/audit"
	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-saas/internal/models"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

const defaultStaffRole = "Barber"

type StaffHandler struct {
	store store.DocumentStore
	audit *audit.Dispatcher
}

func NewStaffHandler(st store.DocumentStore, audit *audit.Dispatcher) *StaffHandler {
	return &StaffHandler{store: st, audit: audit}
}

type CreateStaffRequest struct {
	ShopID string `json:"shop_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Active *bool  `json:"active"`
}

type createdStaff struct {
	ID string `json:"id"`
	models.Staff
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.ValidationMessage(err))
		return
	}

	role := req.Role
	if role == "" {
		role = defaultStaffRole
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	staff := models.Staff{
		ShopID: req.ShopID,
		Name:   req.Name,
		Role:   role,
		Email:  req.Email,
		Phone:  req.Phone,
		Active: active,
	}

	collection, ok := collectionFor(c, staff)
	if !ok {
		return
	}

	id, err := h.store.InsertOne(c.Request.Context(), collection, staff)
	if err != nil {
		storeError(c, "failed_to_create_staff", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   req.ShopID,
		Action:   "staff_created",
		Entity:   "staff",
		EntityID: id,
	})

	httpresp.OK(c, createdStaff{ID: id, Staff: staff})
}

func (h *StaffHandler) List(c *gin.Context) {
	limit, ok := limitQuery(c, 100)
	if !ok {
		return
	}

	filter := store.Filter{}
	if shopID := c.Query("shop_id"); shopID != "" {
		filter["shop_id"] = shopID
	}

	docs, err := h.store.FindMany(c.Request.Context(), store.CollectionStaff, filter, limit)
	if err != nil {
		storeError(c, "failed_to_list_staff", err)
		return
	}

	httpresp.List(c, publicDocuments(docs))
}
