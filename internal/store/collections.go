package store

import (
	"fmt"

	"github.com/BruksfildServices01/barbershop-saas/internal/models"
)

// Collection names match data written by earlier deployments, so they must
// never change: one collection per record type, lowercased type name.
const (
	CollectionShop        = "shop"
	CollectionStaff       = "staff"
	CollectionService     = "service"
	CollectionClient      = "client"
	CollectionAppointment = "appointment"
	CollectionCRMWorkflow = "crmworkflow"

	// CollectionAuditLog is internal to this service and not part of the
	// original layout.
	CollectionAuditLog = "auditlog"
)

// CollectionFor maps a record type to its storage collection. Call sites go
// through this mapping instead of repeating string literals.
func CollectionFor(record any) (string, error) {
	switch record.(type) {
	case models.Shop, *models.Shop:
		return CollectionShop, nil
	case models.Staff, *models.Staff:
		return CollectionStaff, nil
	case models.Service, *models.Service:
		return CollectionService, nil
	case models.Client, *models.Client:
		return CollectionClient, nil
	case models.Appointment, *models.Appointment:
		return CollectionAppointment, nil
	case models.CRMWorkflow, *models.CRMWorkflow:
		return CollectionCRMWorkflow, nil
	}
	return "", fmt.Errorf("no collection mapped for %T", record)
}
