package api

import (
	"github.com/arjun/callpilot/internal/api/handler"
	"github.com/arjun/callpilot/internal/api/middleware"
	"github.com/arjun/callpilot/internal/config"
	"github.com/arjun/callpilot/internal/repository"
	"github.com/arjun/callpilot/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps holds everything the router wires handlers onto.
type Deps struct {
	DB             *gorm.DB
	Orchestrator   *service.Orchestrator
	Provider       handler.ProviderAdmin
	Experts        *repository.ExpertRepository
	ScheduledCalls *repository.ScheduledCallRepository
	Admins         *repository.AdminRepository
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(deps *Deps, cfg *config.ServerConfig) *gin.Engine {
	// Set Gin mode
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.CORS.AllowAllOrigins,
	}))

	// Create handlers
	healthHandler := handler.NewHealthHandler(deps.DB)
	callHandler := handler.NewCallHandler(deps.Orchestrator, deps.Provider)
	expertHandler := handler.NewExpertHandler(deps.Experts)
	scheduledCallHandler := handler.NewScheduledCallHandler(deps.ScheduledCalls)
	adminHandler := handler.NewAdminHandler(deps.Admins)

	// Health check
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		experts := api.Group("/experts")
		{
			experts.GET("", expertHandler.List)
			experts.POST("", expertHandler.Create)
		}

		scheduledCalls := api.Group("/scheduled-calls")
		{
			scheduledCalls.GET("", scheduledCallHandler.List)
			scheduledCalls.POST("", scheduledCallHandler.Create)
		}

		api.GET("/admin", adminHandler.Get)

		vapi := api.Group("/vapi")
		{
			vapi.POST("/call", callHandler.PlaceCall)
			vapi.GET("/call/:callId", callHandler.GetCallDetails)

			vapi.POST("/transcribe", callHandler.StoreTranscript)
			vapi.GET("/transcripts", callHandler.ListTranscripts)

			vapi.POST("/assistants", callHandler.CreateAssistant)
			vapi.GET("/assistants", callHandler.ListAssistants)

			vapi.GET("/phone-numbers", callHandler.ListPhoneNumbers)
			vapi.PATCH("/phone-numbers/:id", callHandler.UpdatePhoneNumber)
		}
	}

	return r
}
