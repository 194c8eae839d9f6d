package queries

import (
	"time"

	"paintball-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// PackageView represents read-optimized package data
type PackageView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	DurationMin int       `json:"duration_min"`
	IsActive    bool      `json:"is_active"`
}

type AddonView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	IsActive   bool      `json:"is_active"`
}

type ResourceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LeadTimeMin int       `json:"lead_time_min"`
	IsActive    bool      `json:"is_active"`
}

// BookingView is a booking with its frozen quote and catalog names.
type BookingView struct {
	ID           uuid.UUID          `json:"id"`
	ResourceID   uuid.UUID          `json:"resource_id"`
	ResourceName string             `json:"resource_name"`
	PackageID    uuid.UUID          `json:"package_id"`
	PackageName  string             `json:"package_name"`
	Status       string             `json:"status"`
	StartAt      time.Time          `json:"start_at"`
	EndAt        time.Time          `json:"end_at"`
	GroupSize    int                `json:"group_size"`
	ClientName   string             `json:"client_name"`
	ClientEmail  string             `json:"client_email"`
	ClientPhone  string             `json:"client_phone"`
	Note         string             `json:"note"`
	Addons       []BookingAddonView `json:"addons"`
	Breakdown    pricing.Breakdown  `json:"breakdown"`
	TotalCents   int64              `json:"total_cents"`
	DepositCents int64              `json:"deposit_cents"`
	Nocturne     bool               `json:"nocturne"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type BookingAddonView struct {
	AddonID    uuid.UUID `json:"addon_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Qty        int       `json:"qty"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ResourceName string    `json:"resource_name"`
	PackageName  string    `json:"package_name"`
	Status       string    `json:"status"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	GroupSize    int       `json:"group_size"`
	ClientName   string    `json:"client_name"`
	TotalCents   int64     `json:"total_cents"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
