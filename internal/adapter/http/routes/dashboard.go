package routes

import (
	"crm_ventas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathAdvisors  = "/advisors"
)

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
	rg.GET(PathAdvisors, dashboardHandler.ListAdvisors)
}
