package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paintball-booking/internal/domain/catalog"
	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/domain/settings"
	"paintball-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type QuoteRequest struct {
	PackageID uuid.UUID
	GroupSize int
	Start     time.Time
	Addons    []catalog.AddonSelection
}

type QuotedAddon struct {
	AddonID    uuid.UUID
	Name       string
	PriceCents int64
	Qty        int
}

// QuoteView is a priced request. Quote.SessionStart is in the venue location.
type QuoteView struct {
	pricing.Quote
	Package *PackageView
	Addons  []QuotedAddon
}

type QuoteQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error)
	// QuoteWithSettings prices against an already loaded settings snapshot.
	QuoteWithSettings(ctx context.Context, req QuoteRequest, venue *settings.VenueSettings) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	catalog  CatalogReadStore
	settings SettingsProvider
}

func NewQuoteQueries(catalog CatalogReadStore, settings SettingsProvider) QuoteQueries {
	return &quoteQueriesImpl{
		catalog:  catalog,
		settings: settings,
	}
}

func (q *quoteQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error) {
	venue, err := q.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	return q.QuoteWithSettings(ctx, req, venue)
}

func (q *quoteQueriesImpl) QuoteWithSettings(ctx context.Context, req QuoteRequest, venue *settings.VenueSettings) (*QuoteView, error) {
	selections, err := catalog.MergeSelections(req.Addons)
	if err != nil {
		var qe *catalog.QuantityError
		if errors.As(err, &qe) {
			return nil, errs.Validation(fmt.Sprintf("addons[%d].qty", qe.Index), "must be at least 1")
		}
		return nil, err
	}

	pkg, err := activePackage(ctx, q.catalog, req.PackageID)
	if err != nil {
		return nil, err
	}

	quoted, err := q.resolveAddons(ctx, selections)
	if err != nil {
		return nil, err
	}

	lines := lo.Map(quoted, func(a QuotedAddon, _ int) pricing.AddonLine {
		return pricing.AddonLine{PriceCents: float64(a.PriceCents), Qty: float64(a.Qty)}
	})

	quote, err := pricing.BuildQuote(pricing.QuoteInput{
		PricePerPlayerCents: float64(pkg.PriceCents),
		DurationMin:         float64(pkg.DurationMin),
		GroupSize:           float64(req.GroupSize),
		Start:               req.Start.In(venue.Location()),
		Addons:              lines,
	}, venue.Rules())
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		Quote:   quote,
		Package: pkg,
		Addons:  quoted,
	}, nil
}

func (q *quoteQueriesImpl) resolveAddons(ctx context.Context, selections []catalog.AddonSelection) ([]QuotedAddon, error) {
	if len(selections) == 0 {
		return []QuotedAddon{}, nil
	}

	found, err := q.catalog.FindAddonsByIDs(ctx, catalog.SelectionIDs(selections))
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(lo.Filter(found, func(a *AddonView, _ int) bool { return a.IsActive }),
		func(a *AddonView) uuid.UUID { return a.ID })

	quoted := make([]QuotedAddon, 0, len(selections))
	for _, sel := range selections {
		addon, ok := byID[sel.AddonID]
		if !ok {
			return nil, errs.ErrAddonNotFound
		}
		quoted = append(quoted, QuotedAddon{
			AddonID:    addon.ID,
			Name:       addon.Name,
			PriceCents: addon.PriceCents,
			Qty:        sel.Qty,
		})
	}
	return quoted, nil
}
