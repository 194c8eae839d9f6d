package request

import (
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/domain/slot"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type Contact struct {
	Name  string `json:"name" binding:"required,max=120"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
}

type CreateBookingRequest struct {
	QuoteRequest
	ResourceID uuid.UUID `json:"resourceId" binding:"required"`
	Contact    Contact   `json:"contact"`
	Note       string    `json:"note" binding:"max=1000"`
}

func (r CreateBookingRequest) ToDomain() (booking.Contact, booking.Note, error) {
	contact, err := booking.NewContact(r.Contact.Name, r.Contact.Email, r.Contact.Phone)
	if err != nil {
		return booking.Contact{}, booking.Note{}, err
	}
	note, err := booking.NewNote(r.Note)
	if err != nil {
		return booking.Contact{}, booking.Note{}, err
	}
	return contact, note, nil
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

func (r ChangeStatusRequest) ToDomain() (booking.Status, error) {
	return booking.NewStatus(r.Status)
}

type ListBookingsQuery struct {
	Date   string `form:"date" binding:"omitempty,isodate"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// ToFilter narrows the listing to one venue-local day when Date is set.
func (q ListBookingsQuery) ToFilter(loc *time.Location) (queries.BookingFilter, error) {
	var filter queries.BookingFilter
	if q.Date != "" {
		day, err := slot.ParseDay("date", q.Date, loc)
		if err != nil {
			return queries.BookingFilter{}, err
		}
		y, m, d := day.Date()
		filter.From = day
		filter.To = time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	}
	if q.Status != "" {
		status, err := booking.NewStatus(q.Status)
		if err != nil {
			return queries.BookingFilter{}, errs.Validation("status", "unknown booking status")
		}
		filter.Status = &status
	}
	return filter, nil
}
