package routes

import (
	"net/http"
	"time"

	"futureclim/handlers"
	"futureclim/middleware"
	"futureclim/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAuthRoutes registers the session endpoints. Login is public;
// logout and session inspection require an active session.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.SessionAuthMiddleware(hb.AuthSvc))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/session", hb.SessionHandler)
	}
}

// RegisterInterventionRoutes registers the work-order endpoints.
func RegisterInterventionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/interventions")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthSvc))
		api.GET("", hb.ListInterventionsHandler)
		api.POST("", hb.CreateInterventionHandler)
		api.GET("/:id", hb.GetInterventionHandler)
		api.PATCH("/:id", hb.UpdateInterventionHandler)

		// Lifecycle transitions.
		api.POST("/:id/assign", hb.AssignInterventionHandler)
		api.POST("/:id/start", hb.StartInterventionHandler)
		api.POST("/:id/complete", hb.CompleteInterventionHandler)
		api.POST("/:id/cancel", hb.CancelInterventionHandler)

		api.POST("/:id/attachments", hb.UploadAttachmentHandler)
	}
}

// RegisterCatalogRoutes registers the reference collections.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthSvc))
		api.GET("/clients", hb.ListClientsHandler)
		api.GET("/clients/:id", hb.GetClientHandler)
		api.GET("/sites", hb.ListSitesHandler)
		api.GET("/technicians", hb.ListTechniciansHandler)
	}
}

// RegisterDashboardRoutes registers the aggregate views.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthSvc))
		api.GET("/dashboard", hb.DashboardOverviewHandler)
		api.GET("/analytics", hb.AnalyticsHandler)
	}
}

// RegisterNotificationRoutes registers the notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthSvc))
		api.GET("", hb.ListNotificationsHandler)
		api.POST("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterReportRoutes registers report generation.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthSvc))
		api.POST("/generate", hb.GenerateReportHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterInterventionRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
