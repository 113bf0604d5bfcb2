package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-saas/internal/audit"
	"github.com/BruksfildServices01/barbershop-saas/internal/crm"
	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-saas/internal/models"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

const defaultWorkflowChannel = "sms"

type CRMHandler struct {
	store store.DocumentStore
	audit *audit.Dispatcher
}

func NewCRMHandler(st store.DocumentStore, audit *audit.Dispatcher) *CRMHandler {
	return &CRMHandler{store: st, audit: audit}
}

// ------------------------------
// Message generation
// ------------------------------

type GenerateMessageRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	ShopName   string `json:"shop_name" binding:"required"`
	Context    string `json:"context" binding:"required"`
}

type GenerateMessageResponse struct {
	Message string `json:"message"`
	Tone    string `json:"tone"`
}

func (h *CRMHandler) GenerateMessage(c *gin.Context) {
	var req GenerateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.ValidationMessage(err))
		return
	}

	message, tone := crm.Generate(req.ClientName, req.ShopName, req.Context)
	httpresp.OK(c, GenerateMessageResponse{Message: message, Tone: tone})
}

// ------------------------------
// Workflows
// ------------------------------

type CreateWorkflowRequest struct {
	ShopID          string `json:"shop_id" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Trigger         string `json:"trigger" binding:"required"`
	Channel         string `json:"channel"`
	MessageTemplate string `json:"message_template" binding:"required"`
	Active          *bool  `json:"active"`
}

type createdWorkflow struct {
	ID string `json:"id"`
	models.CRMWorkflow
}

func (h *CRMHandler) CreateWorkflow(c *gin.Context) {
	var req CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.ValidationMessage(err))
		return
	}

	channel := req.Channel
	if channel == "" {
		channel = defaultWorkflowChannel
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	wf := models.CRMWorkflow{
		ShopID:          req.ShopID,
		Name:            req.Name,
		Trigger:         req.Trigger,
		Channel:         channel,
		MessageTemplate: req.MessageTemplate,
		Active:          active,
	}

	collection, ok := collectionFor(c, wf)
	if !ok {
		return
	}

	id, err := h.store.InsertOne(c.Request.Context(), collection, wf)
	if err != nil {
		storeError(c, "failed_to_create_workflow", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   req.ShopID,
		Action:   "crm_workflow_created",
		Entity:   "crmworkflow",
		EntityID: id,
	})

	httpresp.OK(c, createdWorkflow{ID: id, CRMWorkflow: wf})
}

func (h *CRMHandler) ListWorkflows(c *gin.Context) {
	limit, ok := limitQuery(c, 100)
	if !ok {
		return
	}

	filter := store.Filter{}
	if shopID := c.Query("shop_id"); shopID != "" {
		filter["shop_id"] = shopID
	}

	docs, err := h.store.FindMany(c.Request.Context(), store.CollectionCRMWorkflow, filter, limit)
	if err != nil {
		storeError(c, "failed_to_list_workflows", err)
		return
	}

	httpresp.List(c, publicDocuments(docs))
}
