package api

import (
	"net/http"

	reqdto "paintball-booking/internal/handler/dto/request"
	resdto "paintball-booking/internal/handler/dto/response"
	"paintball-booking/internal/handler/httperr"
	"paintball-booking/internal/usecase/commands"
	"paintball-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds commands.SettingsCommands
	q    queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, q queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Get venue settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Router /admin/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	venue, err := h.q.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueSettings(venue))
}

// @Summary Replace venue settings
// @Description Pricing rules, deposit, slot step, timezone and weekly opening hours
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	venue, err := h.cmds.Update(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueSettings(venue))
}
