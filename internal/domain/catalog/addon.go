package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Addon is an extra sold per unit (grenades, extra paintballs, ...).
type Addon struct {
	id         uuid.UUID
	name       string
	priceCents int64
	active     bool
}

func NewAddon(id uuid.UUID, name string, priceCents int64, active bool) (*Addon, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Addon{id: id, name: name, priceCents: priceCents, active: active}, nil
}

func (a *Addon) ID() uuid.UUID     { return a.id }
func (a *Addon) Name() string      { return a.name }
func (a *Addon) PriceCents() int64 { return a.priceCents }
func (a *Addon) IsActive() bool    { return a.active }

type AddonSelection struct {
	AddonID uuid.UUID
	Qty     int
}

// QuantityError names the selection whose quantity is not positive.
type QuantityError struct {
	Index int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("addons[%d]: %s", e.Index, ErrInvalidQuantity)
}

func (e *QuantityError) Unwrap() error { return ErrInvalidQuantity }

// MergeSelections sums quantities of repeated add-ons, keeping first-seen order.
func MergeSelections(selections []AddonSelection) ([]AddonSelection, error) {
	for i, s := range selections {
		if s.Qty <= 0 {
			return nil, &QuantityError{Index: i}
		}
	}
	grouped := lo.GroupBy(selections, func(s AddonSelection) uuid.UUID { return s.AddonID })
	order := lo.Uniq(lo.Map(selections, func(s AddonSelection, _ int) uuid.UUID { return s.AddonID }))

	return lo.Map(order, func(id uuid.UUID, _ int) AddonSelection {
		qty := lo.SumBy(grouped[id], func(s AddonSelection) int { return s.Qty })
		return AddonSelection{AddonID: id, Qty: qty}
	}), nil
}

func SelectionIDs(selections []AddonSelection) []uuid.UUID {
	return lo.Uniq(lo.Map(selections, func(s AddonSelection, _ int) uuid.UUID { return s.AddonID }))
}
