package models

import "time"

// Appointment references Shop, Client, Staff and Service by id. The
// references are stored as given: nothing verifies they resolve, and there
// is no availability or double-booking check.
type Appointment struct {
	ShopID    string `json:"shop_id" bson:"shop_id"`
	ClientID  string `json:"client_id" bson:"client_id"`
	StaffID   string `json:"staff_id" bson:"staff_id"`
	ServiceID string `json:"service_id" bson:"service_id"`

	StartTime time.Time `json:"start_time" bson:"start_time"`
	EndTime   time.Time `json:"end_time" bson:"end_time"`

	Status string `json:"status" bson:"status"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`
}

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusNoShow    = "no_show"
	AppointmentStatusCancelled = "cancelled"
)
