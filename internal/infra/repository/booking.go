package repository

import (
	"context"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/infra"
	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/infra/repository/converter"
	"paintball-booking/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) LockResource(ctx context.Context, resourceID uuid.UUID) error {
	sqlStr, args, err := db.Psql.Select("id").
		From("resources").
		Where(sq.Eq{"id": resourceID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build lock query", err, infra.KindDBFailure)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock resource", err)
	}
	return nil
}

func (r *BookingRepository) FindBlockingOverlaps(ctx context.Context, resourceID uuid.UUID, iv booking.Interval, excludeID uuid.UUID) ([]booking.Occupancy, error) {
	statuses := booking.BlockingStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}

	sqlStr, args, err := db.Psql.Select("status", "start_at", "end_at").
		From("bookings").
		Where(sq.Eq{"resource_id": resourceID, "status": names}).
		Where(sq.NotEq{"id": excludeID}).
		Where(sq.Lt{"start_at": iv.End}).
		Where(sq.Gt{"end_at": iv.Start}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build overlap query", err, infra.KindDBFailure)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping bookings", err)
	}
	defer rows.Close()

	occupancies := []booking.Occupancy{}
	for rows.Next() {
		var (
			status string
			o      = booking.Occupancy{ResourceID: resourceID}
		)
		if err := rows.Scan(&status, &o.Interval.Start, &o.Interval.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping booking", err)
		}
		o.Status = booking.Status(status)
		occupancies = append(occupancies, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping bookings", err)
	}
	return occupancies, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	row := converter.BookingToInfra(b)
	sqlStr, args, err := db.Psql.Insert("bookings").
		Columns(
			"id", "resource_id", "package_id", "status", "start_at", "end_at", "group_size",
			"client_name", "client_email", "client_phone", "note",
			"base_cents", "addons_cents", "nocturne_extra_cents", "under_min_penalty_cents",
			"total_cents", "deposit_cents", "nocturne", "created_at", "updated_at",
		).
		Values(
			row.ID, row.ResourceID, row.PackageID, row.Status, row.StartAt, row.EndAt, row.GroupSize,
			row.ClientName, row.ClientEmail, row.ClientPhone, row.Note,
			row.BaseCents, row.AddonsCents, row.NocturneExtraCents, row.UnderMinPenaltyCents,
			row.TotalCents, row.DepositCents, row.Nocturne, row.CreatedAt, row.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking insert", err, infra.KindDBFailure)
	}
	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	addons := converter.BookingAddonsToInfra(b)
	if len(addons) == 0 {
		return nil
	}
	insert := db.Psql.Insert("booking_addons").Columns("booking_id", "addon_id", "price_cents", "qty")
	for _, a := range addons {
		insert = insert.Values(row.ID, a.AddonID, a.PriceCents, a.Qty)
	}
	sqlStr, args, err = insert.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking addons insert", err, infra.KindDBFailure)
	}
	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return infra.WrapRepoErr("failed to create booking addons", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	sqlStr, args, err := db.Psql.Select(
		"id", "resource_id", "package_id", "status", "start_at", "end_at", "group_size",
		"client_name", "client_email", "client_phone", "note",
		"base_cents", "addons_cents", "nocturne_extra_cents", "under_min_penalty_cents",
		"total_cents", "deposit_cents", "nocturne", "created_at", "updated_at",
	).
		From("bookings").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err, infra.KindDBFailure)
	}

	var row converter.BookingRow
	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(
		&row.ID, &row.ResourceID, &row.PackageID, &row.Status, &row.StartAt, &row.EndAt, &row.GroupSize,
		&row.ClientName, &row.ClientEmail, &row.ClientPhone, &row.Note,
		&row.BaseCents, &row.AddonsCents, &row.NocturneExtraCents, &row.UnderMinPenaltyCents,
		&row.TotalCents, &row.DepositCents, &row.Nocturne, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	addons, err := r.findAddonRows(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := converter.BookingToDomain(row, addons)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is invalid", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) findAddonRows(ctx context.Context, bookingID uuid.UUID) ([]converter.BookingAddonRow, error) {
	sqlStr, args, err := db.Psql.Select("addon_id", "price_cents", "qty").
		From("booking_addons").
		Where(sq.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking addons query", err, infra.KindDBFailure)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking addons", err)
	}
	defer rows.Close()

	result := []converter.BookingAddonRow{}
	for rows.Next() {
		var a converter.BookingAddonRow
		if err := rows.Scan(&a.AddonID, &a.PriceCents, &a.Qty); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking addon", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load booking addons", err)
	}
	return result, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	sqlStr, args, err := db.Psql.Update("bookings").
		Set("status", b.Status().String()).
		Set("updated_at", b.UpdatedAt()).
		Where(sq.Eq{"id": b.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking update", err, infra.KindDBFailure)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
