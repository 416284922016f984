package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"futureclim/config"
	"futureclim/database"
	clientRepoPkg "futureclim/database/repository/client"
	interventionRepoPkg "futureclim/database/repository/intervention"
	kpiRepoPkg "futureclim/database/repository/kpi"
	notificationRepoPkg "futureclim/database/repository/notification"
	siteRepoPkg "futureclim/database/repository/site"
	technicianRepoPkg "futureclim/database/repository/technician"
	userRepoPkg "futureclim/database/repository/user"
	"futureclim/handlers"
	"futureclim/metrics"
	"futureclim/middleware"
	"futureclim/routes"
	"futureclim/services/auth"
	"futureclim/services/dashboard"
	"futureclim/services/intervention"
	"futureclim/services/notification"
	"futureclim/services/report"
	"futureclim/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	if err := database.Seed(logger); err != nil {
		logger.Sugar().Fatalf("main: failed to seed database: %v", err)
	}

	location, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}
	if storageService == nil {
		logger.Sugar().Warn("main: storage credentials not set, attachment uploads disabled")
	}

	appMetrics := metrics.NewMetrics("futureclim")

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware(appMetrics))

	// repositories.
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	siteRepo := siteRepoPkg.NewMongoSiteRepo()
	technicianRepo := technicianRepoPkg.NewMongoTechnicianRepo()
	interventionRepo := interventionRepoPkg.NewMongoInterventionRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	kpiRepo := kpiRepoPkg.NewMongoKPIRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Verifier:   &auth.MongoCredentialVerifier{Repo: userRepo},
		Sessions:   &utils.RedisSessionStore{Client: utils.GetAuthCacheClient()},
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}

	interventionService := &intervention.DefaultInterventionService{
		Repo:          interventionRepo,
		Clients:       clientRepo,
		Sites:         siteRepo,
		Technicians:   technicianRepo,
		Notifications: notificationRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}

	dashboardService := &dashboard.DefaultDashboardService{
		KPIs:          kpiRepo,
		Interventions: interventionRepo,
		Notifications: notificationRepo,
		Location:      location,
	}

	reportService := &report.DefaultReportService{
		Repo:  interventionRepo,
		Guard: &utils.RedisInflightGuard{Client: utils.GetCacheClient()},
	}

	// handlers.
	authHandler := &handlers.AuthHandler{AuthSvc: authService}
	interventionHandler := &handlers.InterventionHandler{
		Svc:     interventionService,
		Metrics: appMetrics,
	}
	attachmentHandler := &handlers.AttachmentHandler{
		Interventions: interventionService,
		StorageSvc:    storageService,
	}
	catalogHandler := &handlers.CatalogHandler{
		Clients:     clientRepo,
		Sites:       siteRepo,
		Technicians: technicianRepo,
	}
	dashboardHandler := &handlers.DashboardHandler{Svc: dashboardService}
	notificationHandler := &handlers.NotificationHandler{Svc: notificationService}
	reportHandler := &handlers.ReportHandler{Svc: reportService, Metrics: appMetrics}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthSvc: authService,

		LoginHandler:   authHandler.LoginHandler,
		LogoutHandler:  authHandler.LogoutHandler,
		SessionHandler: authHandler.SessionHandler,

		ListInterventionsHandler:    interventionHandler.ListHandler,
		GetInterventionHandler:      interventionHandler.GetHandler,
		CreateInterventionHandler:   interventionHandler.CreateHandler,
		UpdateInterventionHandler:   interventionHandler.UpdateHandler,
		AssignInterventionHandler:   interventionHandler.AssignHandler,
		StartInterventionHandler:    interventionHandler.StartHandler,
		CompleteInterventionHandler: interventionHandler.CompleteHandler,
		CancelInterventionHandler:   interventionHandler.CancelHandler,
		UploadAttachmentHandler:     attachmentHandler.UploadHandler,

		ListClientsHandler:     catalogHandler.ListClientsHandler,
		GetClientHandler:       catalogHandler.GetClientHandler,
		ListSitesHandler:       catalogHandler.ListSitesHandler,
		ListTechniciansHandler: catalogHandler.ListTechniciansHandler,

		DashboardOverviewHandler: dashboardHandler.OverviewHandler,
		AnalyticsHandler:         dashboardHandler.AnalyticsHandler,

		ListNotificationsHandler:    notificationHandler.ListHandler,
		MarkNotificationReadHandler: notificationHandler.MarkReadHandler,

		GenerateReportHandler: reportHandler.GenerateHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
