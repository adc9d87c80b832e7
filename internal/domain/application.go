package domain

import (
	"encoding/json"
	"time"
)

type Application struct {
	ID                int             `json:"id"`
	ApplicationNumber string          `json:"application_number"`
	UserID            int             `json:"user_id"`
	ServiceID         int             `json:"service_id"`
	Status            string          `json:"status"`
	SubmittedAt       time.Time       `json:"submitted_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	FormData          json.RawMessage `json:"form_data,omitempty"`
}

type CreateApplicationInput struct {
	ServiceID int             `json:"service_id" validate:"required"`
	Status    string          `json:"status"`
	FormData  json.RawMessage `json:"form_data"`
}

// Application statuses. UpdateStatus does not validate against this set;
// the five values below are what the portal itself issues.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusRevision   = "revision"
	StatusRejected   = "rejected"
)
