package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Package is a priced session formula; the price is per player.
type Package struct {
	id          uuid.UUID
	name        string
	priceCents  int64
	durationMin int
	active      bool
}

func NewPackage(id uuid.UUID, name string, priceCents int64, durationMin int, active bool) (*Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Package{id: id, name: name, priceCents: priceCents, durationMin: durationMin, active: active}, nil
}

func (p *Package) ID() uuid.UUID     { return p.id }
func (p *Package) Name() string      { return p.name }
func (p *Package) PriceCents() int64 { return p.priceCents }
func (p *Package) DurationMin() int  { return p.durationMin }
func (p *Package) IsActive() bool    { return p.active }
