package handlers

import (
	request "crm_ventas/internal/adapter/http/dto/request"
	response "crm_ventas/internal/adapter/http/dto/response"
	"crm_ventas/internal/usecase"
	"crm_ventas/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDashboardQuery = pkg.NewDomainErrorSimple("INVALID_DASHBOARD_QUERY", "Invalid dashboard query", http.StatusBadRequest)
)

// DashboardHandler serves the aggregate metrics snapshot and the advisor
// selector feed.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard computes every dashboard section for one filter scope.
//
// The whole screen comes back in a single payload so the client renders one
// consistent snapshot instead of stitching racy per-section reads.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var query request.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidDashboardQuery.HTTPStatus, errInvalidDashboardQuery.ToHTTPError())
		return
	}

	filter, err := query.ResolveFilter()
	if err != nil {
		c.JSON(errInvalidDashboardQuery.HTTPStatus, errInvalidDashboardQuery.ToHTTPError())
		return
	}

	res, err := h.usecase.GetDashboard(c.Request.Context(), filter)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(res))
}

func (h *DashboardHandler) ListAdvisors(c *gin.Context) {
	advisors, err := h.usecase.ListAdvisors(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AdvisorsResponse{Advisors: advisors})
}
