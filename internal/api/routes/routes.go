package routes

import (
	"maintenance-scheduler-backend/internal/api/handlers"
	"maintenance-scheduler-backend/internal/api/middleware"
	"maintenance-scheduler-backend/internal/config"
	"maintenance-scheduler-backend/internal/repository"
	"maintenance-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	shiftRepo := repository.NewShiftRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)
	machineRepo := repository.NewMachineRepository(db)
	actionRepo := repository.NewMaintenanceActionRepository(db)
	overrideRepo := repository.NewShiftOverrideRepository(db)
	executionRepo := repository.NewMaintenanceExecutionRepository(db)

	// Services
	scheduleService := service.NewScheduleService(shiftRepo, operatorRepo, overrideRepo, actionRepo, executionRepo, cfg)
	executionService := service.NewExecutionService(executionRepo, actionRepo, machineRepo, operatorRepo, validate)
	shiftService := service.NewShiftService(shiftRepo, validate)
	overrideService := service.NewShiftOverrideService(overrideRepo, operatorRepo, shiftRepo, validate)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	executionHandler := handlers.NewExecutionHandler(executionService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	overrideHandler := handlers.NewShiftOverrideHandler(overrideService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")
	{
		// Schedule read path
		v1.GET("/schedule/:date", scheduleHandler.GetDailySchedule)

		// Execution write path
		executions := v1.Group("/executions")
		{
			executions.PUT("", executionHandler.UpsertExecution)
			executions.PATCH("/:id", executionHandler.UpdateExecution)
			executions.DELETE("/:id", executionHandler.DeleteExecution)
		}

		// Shift configuration
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.POST("", shiftHandler.CreateShift)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id", shiftHandler.UpdateShift)
			shifts.DELETE("/:id", shiftHandler.DeleteShift)
		}

		// Roster overrides
		overrides := v1.Group("/shift-overrides")
		{
			overrides.GET("", overrideHandler.ListOverrides)
			overrides.POST("", overrideHandler.CreateOverride)
			overrides.DELETE("/:id", overrideHandler.DeleteOverride)
		}
	}

	return router
}
