package shared

import (
	"time"

	"github.com/google/uuid"
)

type ResourceSnapshot struct {
	ID          uuid.UUID
	Name        string
	LeadTimeMin int
	IsActive    bool
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
