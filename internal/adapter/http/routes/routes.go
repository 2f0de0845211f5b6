package routes

import (
	_ "crm_ventas/docs" // This will be auto-generated
	"crm_ventas/internal/adapter/http/handlers"
	repository2 "crm_ventas/internal/adapter/persistence/repository"
	"crm_ventas/internal/infrastructure/database"
	"crm_ventas/internal/usecase"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	prospectRepo := repository2.NewProspectDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	targetRepo := repository2.NewTargetDynamoRepository(ddb)

	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo)
	prospectUseCase := usecase.NewProspectUseCase(prospectRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	targetUseCase := usecase.NewTargetUseCase(targetRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(appointmentRepo, prospectRepo, projectRepo, targetRepo)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase)
	prospectHandler := handlers.NewProspectHandler(prospectUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	targetHandler := handlers.NewTargetHandler(targetUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDashboardRoutes(v1, dashboardHandler)
	addRecordRoutes(v1, appointmentHandler, prospectHandler, projectHandler, targetHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
