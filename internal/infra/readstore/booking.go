package readstore

import (
	"context"
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/pkg/pgconv"
	"paintball-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

var bookingListColumns = []string{
	"b.id", "r.name", "p.name", "b.status", "b.start_at", "b.end_at",
	"b.group_size", "b.client_name", "b.total_cents",
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := db.Psql.Select(
		"b.id", "b.resource_id", "r.name", "b.package_id", "p.name", "b.status",
		"b.start_at", "b.end_at", "b.group_size",
		"b.client_name", "b.client_email", "b.client_phone", "b.note",
		"b.base_cents", "b.addons_cents", "b.nocturne_extra_cents", "b.under_min_penalty_cents",
		"b.total_cents", "b.deposit_cents", "b.nocturne", "b.created_at", "b.updated_at",
	).
		From("bookings b").
		Join("resources r ON r.id = b.resource_id").
		Join("packages p ON p.id = b.package_id").
		Where(sq.Eq{"b.id": id})

	view, err := one(ctx, r.db, query, "booking not found", "failed to find booking by ID", scanBookingView)
	if err != nil {
		return nil, err
	}

	addons, err := r.findAddons(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Addons = addons
	return view, nil
}

func (r *BookingReadStore) findAddons(ctx context.Context, bookingID uuid.UUID) ([]queries.BookingAddonView, error) {
	query := db.Psql.Select("ba.addon_id", "a.name", "ba.price_cents", "ba.qty").
		From("booking_addons ba").
		Join("addons a ON a.id = ba.addon_id").
		Where(sq.Eq{"ba.booking_id": bookingID}).
		OrderBy("a.name")

	rows, err := collect(ctx, r.db, query, "failed to find booking addons", func(row pgx.Row) (queries.BookingAddonView, error) {
		var v queries.BookingAddonView
		err := row.Scan(&v.AddonID, &v.Name, &v.PriceCents, &v.Qty)
		return v, err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingReadStore) ListFirstPage(ctx context.Context, filter queries.BookingFilter, limit int32) ([]*queries.BookingListItem, error) {
	query := r.listQuery(filter).Limit(uint64(limit))
	return collect(ctx, r.db, query, "failed to list bookings", scanBookingListItem)
}

func (r *BookingReadStore) ListKeyset(ctx context.Context, filter queries.BookingFilter, lastStartAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	query := r.listQuery(filter).
		Where(sq.Expr("(b.start_at, b.id) > (?, ?)", lastStartAt, lastID)).
		Limit(uint64(limit))
	return collect(ctx, r.db, query, "failed to list bookings keyset", scanBookingListItem)
}

func (r *BookingReadStore) listQuery(filter queries.BookingFilter) sq.SelectBuilder {
	query := db.Psql.Select(bookingListColumns...).
		From("bookings b").
		Join("resources r ON r.id = b.resource_id").
		Join("packages p ON p.id = b.package_id").
		OrderBy("b.start_at", "b.id")
	if !filter.From.IsZero() {
		query = query.Where(sq.GtOrEq{"b.start_at": filter.From})
	}
	if !filter.To.IsZero() {
		query = query.Where(sq.Lt{"b.start_at": filter.To})
	}
	if filter.Status != nil {
		query = query.Where(sq.Eq{"b.status": string(*filter.Status)})
	}
	return query
}

// BusyIntervals lists the blocking bookings of resourceID intersecting [from, to).
func (r *BookingReadStore) BusyIntervals(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]booking.Interval, error) {
	query := db.Psql.Select("start_at", "end_at").
		From("bookings").
		Where(sq.Eq{"resource_id": resourceID, "status": blockingStatusNames()}).
		Where(sq.Lt{"start_at": to}).
		Where(sq.Gt{"end_at": from}).
		OrderBy("start_at")

	return collect(ctx, r.db, query, "failed to load busy intervals", func(row pgx.Row) (booking.Interval, error) {
		var iv booking.Interval
		err := row.Scan(&iv.Start, &iv.End)
		return iv, err
	})
}

func blockingStatusNames() []string {
	statuses := booking.BlockingStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v     queries.BookingView
		phone pgtype.Text
		note  pgtype.Text
	)
	err := row.Scan(
		&v.ID, &v.ResourceID, &v.ResourceName, &v.PackageID, &v.PackageName, &v.Status,
		&v.StartAt, &v.EndAt, &v.GroupSize,
		&v.ClientName, &v.ClientEmail, &phone, &note,
		&v.Breakdown.Base, &v.Breakdown.Addons, &v.Breakdown.NocturneExtra, &v.Breakdown.UnderMinPenalty,
		&v.TotalCents, &v.DepositCents, &v.Nocturne, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.ClientPhone = pgconv.StringFromPgtype(phone)
	v.Note = pgconv.StringFromPgtype(note)
	return &v, nil
}

func scanBookingListItem(row pgx.Row) (*queries.BookingListItem, error) {
	var v queries.BookingListItem
	err := row.Scan(&v.ID, &v.ResourceName, &v.PackageName, &v.Status, &v.StartAt, &v.EndAt,
		&v.GroupSize, &v.ClientName, &v.TotalCents)
	return &v, err
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)
