package routes

import (
	"crm_ventas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAppointments = "/appointments"
	PathProspects    = "/prospects"
	PathProjects     = "/projects"
	PathTargets      = "/targets"
)

func addRecordRoutes(
	rg *gin.RouterGroup,
	appointmentHandler *handlers.AppointmentHandler,
	prospectHandler *handlers.ProspectHandler,
	projectHandler *handlers.ProjectHandler,
	targetHandler *handlers.TargetHandler,
) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.Create)
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.GetByID)
		appointments.PUT("/:id", appointmentHandler.Update)
		appointments.DELETE("/:id", appointmentHandler.Delete)
	}

	prospects := rg.Group(PathProspects)
	{
		prospects.POST("", prospectHandler.Create)
		prospects.GET("", prospectHandler.List)
		prospects.GET("/:id", prospectHandler.GetByID)
		prospects.PUT("/:id", prospectHandler.Update)
		prospects.DELETE("/:id", prospectHandler.Delete)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.GetByID)
		projects.PUT("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
	}

	targets := rg.Group(PathTargets)
	{
		targets.POST("", targetHandler.Create)
		targets.GET("", targetHandler.List)
		targets.GET("/:id", targetHandler.GetByID)
		targets.PUT("/:id", targetHandler.Update)
		targets.DELETE("/:id", targetHandler.Delete)
	}
}
