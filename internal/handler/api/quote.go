package api

import (
	"net/http"

	reqdto "paintball-booking/internal/handler/dto/request"
	resdto "paintball-booking/internal/handler/dto/response"
	"paintball-booking/internal/handler/httperr"
	"paintball-booking/internal/pkg/metrics"
	"paintball-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quotes  queries.QuoteQueries
	slots   queries.SlotQueries
	metrics *metrics.Metrics
}

func NewQuoteHandler(quotes queries.QuoteQueries, slots queries.SlotQueries, m *metrics.Metrics) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, slots: slots, metrics: m}
}

// @Summary Quote a session
// @Description Price a package for a group at a start time, with optional add-ons
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	q, err := req.ToQuery()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.quotes.Quote(c.Request.Context(), q)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.metrics.ObserveQuote(view.Nocturne)
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Available slots
// @Description Start times of a venue-local day that fit the package and are free on the resource
// @Tags quotes
// @Produce json
// @Param date query string true "Day as YYYY-MM-DD"
// @Param packageId query string true "Package ID"
// @Param resourceId query string true "Resource ID"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots [get]
func (h *QuoteHandler) Slots(c *gin.Context) {
	var query reqdto.SlotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	views, err := h.slots.Available(c.Request.Context(), query.ToQuery())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(query.Date, views))
}
