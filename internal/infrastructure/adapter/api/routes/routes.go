package routes

import (
	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/api/handler"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	timeLogHandler *handler.TimeLogHandler,
	timeLockHandler *handler.TimeLockHandler,
	reportHandler *handler.ReportHandler,
) {
	timeLogRoutes := router.Group("/time-logs")
	{
		// Lifecycle
		timeLogRoutes.POST("", timeLogHandler.CreateTimeLog)
		timeLogRoutes.GET("", timeLogHandler.ListOwnTimeLogs)
		timeLogRoutes.GET("/all", timeLogHandler.ListAllTimeLogs)
		timeLogRoutes.PUT("/:id", timeLogHandler.UpdateTimeLog)
		timeLogRoutes.DELETE("/:id", timeLogHandler.DeleteTimeLog)

		// Lock workflow
		timeLogRoutes.POST("/lock", timeLockHandler.LockTimeLogs)
		timeLogRoutes.GET("/lock/preview", timeLockHandler.PreviewLock)
	}

	reportRoutes := router.Group("/reports")
	{
		// POST /reports/time-logs
		reportRoutes.POST("/time-logs", reportHandler.GenerateReport)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Actor())
}
