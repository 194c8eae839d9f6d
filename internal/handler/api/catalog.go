package api

import (
	"net/http"

	resdto "paintball-booking/internal/handler/dto/response"
	"paintball-booking/internal/handler/httperr"
	"paintball-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List packages
// @Description Active packages ordered by name
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.PackageResponse
// @Router /packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	views, err := h.q.ListPackages(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageViews(views))
}

// @Summary List add-ons
// @Description Active add-ons ordered by name
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.AddonResponse
// @Router /addons [get]
func (h *CatalogHandler) ListAddons(c *gin.Context) {
	views, err := h.q.ListAddons(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAddonViews(views))
}

// @Summary List resources
// @Description Active fields
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ResourceResponse
// @Router /resources [get]
func (h *CatalogHandler) ListResources(c *gin.Context) {
	views, err := h.q.ListResources(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}
