package resource

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrFieldNameRequired = errors.New("field name is required")
	ErrFieldNameTooLong  = errors.New("field name exceeds 255 characters")
	ErrNegativeLeadTime  = errors.New("lead time cannot be negative")
)

const MaxNameLength = 255

// Resource is a playing field. Only one group plays on a field at a time,
// and a session must be booked at least leadTime ahead of its start.
type Resource struct {
	id       uuid.UUID
	name     string
	leadTime time.Duration
	active   bool
}

func NewResource(id uuid.UUID, name string, leadTimeMin int, active bool) (*Resource, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, ErrFieldNameRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		return nil, ErrFieldNameTooLong
	case leadTimeMin < 0:
		return nil, ErrNegativeLeadTime
	}
	return &Resource{
		id:       id,
		name:     name,
		leadTime: time.Duration(leadTimeMin) * time.Minute,
		active:   active,
	}, nil
}

// EarliestStart is the first session start that can still be booked at now.
func (r *Resource) EarliestStart(now time.Time) time.Time {
	return now.Add(r.leadTime)
}

func (r *Resource) IsBookableAt(now, start time.Time) bool {
	return !start.Before(r.EarliestStart(now))
}

func (r *Resource) ID() uuid.UUID    { return r.id }
func (r *Resource) Name() string     { return r.name }
func (r *Resource) LeadTimeMin() int { return int(r.leadTime / time.Minute) }
func (r *Resource) IsActive() bool   { return r.active }
