package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-saas/internal/audit"
	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-saas/internal/models"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
	"github.com/BruksfildServices01/barbershop-saas/internal/timezone"
)

type AppointmentHandler struct {
	store store.DocumentStore
	audit *audit.Dispatcher

	// now is the evaluation clock for "upcoming" filtering.
	now func() time.Time
}

func NewAppointmentHandler(st store.DocumentStore, audit *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{
		store: st,
		audit: audit,
		now:   timezone.Now,
	}
}

// DurationMinutes is a pointer so a zero-length appointment still passes
// required; durations are stored as given, bounds are a Service concern.
type CreateAppointmentRequest struct {
	ShopID          string    `json:"shop_id" binding:"required"`
	ClientID        string    `json:"client_id" binding:"required"`
	StaffID         string    `json:"staff_id" binding:"required"`
	ServiceID       string    `json:"service_id" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	DurationMinutes *int      `json:"duration_minutes" binding:"required"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}

type createdAppointment struct {
	ID string `json:"id"`
	models.Appointment
}

// Create stores the appointment exactly as given, end_time derived from
// start_time plus duration. There is no availability or overlap check.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.ValidationMessage(err))
		return
	}

	status := req.Status
	if status == "" {
		status = models.AppointmentStatusScheduled
	}

	ap := models.Appointment{
		ShopID:    req.ShopID,
		ClientID:  req.ClientID,
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		StartTime: req.StartTime,
		EndTime:   req.StartTime.Add(time.Duration(*req.DurationMinutes) * time.Minute),
		Status:    status,
		Notes:     req.Notes,
	}

	collection, ok := collectionFor(c, ap)
	if !ok {
		return
	}

	id, err := h.store.InsertOne(c.Request.Context(), collection, ap)
	if err != nil {
		storeError(c, "failed_to_create_appointment", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   req.ShopID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: id,
	})

	httpresp.OK(c, createdAppointment{ID: id, Appointment: ap})
}

// List filters by shop_id and, unless upcoming_only=false, keeps only
// appointments whose end_time is at or after now. Both clauses must hold.
func (h *AppointmentHandler) List(c *gin.Context) {
	limit, ok := limitQuery(c, 100)
	if !ok {
		return
	}

	upcomingOnly := true
	if raw := c.Query("upcoming_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_upcoming_only", "upcoming_only must be a boolean.")
			return
		}
		upcomingOnly = v
	}

	filter := store.Filter{}
	if shopID := c.Query("shop_id"); shopID != "" {
		filter["shop_id"] = shopID
	}
	if upcomingOnly {
		filter["end_time"] = store.Gte(h.now())
	}

	docs, err := h.store.FindMany(c.Request.Context(), store.CollectionAppointment, filter, limit)
	if err != nil {
		storeError(c, "failed_to_list_appointments", err)
		return
	}

	httpresp.List(c, publicDocuments(docs))
}
