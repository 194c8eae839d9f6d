package api

import (
	"errors"
	"net/http"

	"paintball-booking/internal/domain/booking"
	reqdto "paintball-booking/internal/handler/dto/request"
	resdto "paintball-booking/internal/handler/dto/response"
	"paintball-booking/internal/handler/httperr"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/pkg/metrics"
	"paintball-booking/internal/usecase/commands"
	"paintball-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader     = "Idempotency-Key"
	idempotentReplayedHeader = "Idempotent-Replayed"
)

var errInvalidIdempotencyKey = errors.New("invalid idempotency key format")

type BookingHandler struct {
	cmds     commands.BookingCommands
	q        queries.BookingQueries
	settings queries.SettingsQueries
	metrics  *metrics.Metrics
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, settings queries.SettingsQueries, m *metrics.Metrics) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, settings: settings, metrics: m}
}

// @Summary Create booking
// @Description Book a session from the public wizard. Replays with the same Idempotency-Key return the original booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse "Replayed"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req, key)
	if err != nil {
		if errs.Is(err, errs.ErrBookingConflict) {
			h.metrics.ObserveBooking("conflict")
		}
		httperr.AbortWithDomainError(c, err)
		return
	}

	if result.IsReplayed {
		h.metrics.ObserveBooking("replayed")
		c.Header(idempotentReplayedHeader, "true")
		c.JSON(http.StatusOK, resdto.FromBookingView(result.Booking))
		return
	}
	h.metrics.ObserveBooking("created")
	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

// @Summary Get booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Bookings ordered by start time, optionally narrowed to one venue-local day and a status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day as YYYY-MM-DD"
// @Param status query string false "PENDING, CONFIRMED or CANCELLED"
// @Param cursor query string false "Opaque cursor from nextCursor"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	venue, err := h.settings.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	filter, err := query.ToFilter(venue.Location())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), filter, &queries.Cursor{After: query.Cursor}, query.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Change booking status
// @Description PENDING to CONFIRMED or CANCELLED, CONFIRMED to CANCELLED
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ChangeStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr)
		return
	}
	next, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithField(c, err, "status", booking.ErrInvalidStatus.Error())
		return
	}

	view, err := h.cmds.ChangeStatus(c.Request.Context(), id, next)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// idempotencyKey returns uuid.Nil when the optional header is absent.
func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil || key == uuid.Nil {
		return uuid.Nil, errInvalidIdempotencyKey
	}
	return key, nil
}
