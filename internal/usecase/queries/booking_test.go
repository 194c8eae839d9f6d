//go:build unit

package queries_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/infra"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/usecase/queries"
	queriesmock "paintball-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockBookingReadStore
	queries queries.BookingQueries
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.queries = queries.NewBookingQueries(s.store)
}

func listItems(n int) []*queries.BookingListItem {
	start := time.Date(2026, time.June, 12, 9, 0, 0, 0, time.UTC)
	items := make([]*queries.BookingListItem, n)
	for i := range items {
		items[i] = &queries.BookingListItem{
			ID:      uuid.New(),
			Status:  booking.StatusPending.String(),
			StartAt: start.Add(time.Duration(i) * 30 * time.Minute),
		}
	}
	return items
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	s.Run("success", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.BookingView{ID: id}, nil)

		got, err := s.queries.GetByID(context.Background(), id)

		s.Require().NoError(err)
		s.Equal(id, got.ID)
	})

	s.Run("error: not found", func() {
		s.store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.queries.GetByID(context.Background(), uuid.New())

		s.True(errs.Is(err, errs.ErrBookingNotFound))
	})
}

func (s *BookingQueriesTestSuite) TestList() {
	confirmed := booking.StatusConfirmed
	filter := queries.BookingFilter{
		From:   time.Date(2026, time.June, 11, 22, 0, 0, 0, time.UTC),
		To:     time.Date(2026, time.June, 12, 22, 0, 0, 0, time.UTC),
		Status: &confirmed,
	}

	s.Run("success: first page fetches one extra row to detect more", func() {
		rows := listItems(3)
		s.store.EXPECT().ListFirstPage(gomock.Any(), filter, int32(3)).Return(rows, nil)

		items, next, err := s.queries.List(context.Background(), filter, nil, 2)

		s.Require().NoError(err)
		s.Len(items, 2)
		s.Require().NotNil(next)
		lastStart, lastID, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(rows[1].ID, lastID)
		s.True(rows[1].StartAt.Equal(lastStart))
	})

	s.Run("success: keyset page resumes after the cursor", func() {
		after := listItems(1)[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(after.StartAt, after.ID)}
		s.store.EXPECT().ListKeyset(gomock.Any(), filter, gomock.Any(), after.ID, int32(3)).
			DoAndReturn(func(_ context.Context, _ queries.BookingFilter, lastStartAt time.Time, _ uuid.UUID, _ int32) ([]*queries.BookingListItem, error) {
				s.True(after.StartAt.Equal(lastStartAt))
				return listItems(1), nil
			})

		items, next, err := s.queries.List(context.Background(), filter, cursor, 2)

		s.Require().NoError(err)
		s.Len(items, 1)
		s.Nil(next)
	})

	s.Run("success: limit defaults and caps", func() {
		s.store.EXPECT().ListFirstPage(gomock.Any(), gomock.Any(), int32(51)).Return(nil, nil)
		s.store.EXPECT().ListFirstPage(gomock.Any(), gomock.Any(), int32(queries.MaxListLimit+1)).Return(nil, nil)

		_, _, err := s.queries.List(context.Background(), queries.BookingFilter{}, nil, 0)
		s.Require().NoError(err)
		_, _, err = s.queries.List(context.Background(), queries.BookingFilter{}, nil, 5000)
		s.Require().NoError(err)
	})

	s.Run("error: malformed cursor", func() {
		for _, raw := range []string{
			"bm90LWEtY3Vyc29y", // "not-a-cursor"
			"%%%",
			base64.RawURLEncoding.EncodeToString([]byte(`{"v":2,"s":1,"id":"` + uuid.NewString() + `"}`)),
			base64.RawURLEncoding.EncodeToString([]byte(`{"v":1,"s":1}`)),
		} {
			_, _, err := s.queries.List(context.Background(), filter, &queries.Cursor{After: raw}, 10)
			s.True(errs.Is(err, queries.ErrInvalidCursor), "cursor %q: %v", raw, err)
		}
	})
}
