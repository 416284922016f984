package handlers

import (
	"futureclim/services/auth"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration. AuthSvc is also carried so routes can build the session
// middleware.
type HandlerBundle struct {
	AuthSvc auth.AuthService

	// Auth endpoints
	LoginHandler   gin.HandlerFunc
	LogoutHandler  gin.HandlerFunc
	SessionHandler gin.HandlerFunc

	// Intervention endpoints
	ListInterventionsHandler    gin.HandlerFunc
	GetInterventionHandler      gin.HandlerFunc
	CreateInterventionHandler   gin.HandlerFunc
	UpdateInterventionHandler   gin.HandlerFunc
	AssignInterventionHandler   gin.HandlerFunc
	StartInterventionHandler    gin.HandlerFunc
	CompleteInterventionHandler gin.HandlerFunc
	CancelInterventionHandler   gin.HandlerFunc
	UploadAttachmentHandler     gin.HandlerFunc

	// Catalog endpoints
	ListClientsHandler     gin.HandlerFunc
	GetClientHandler       gin.HandlerFunc
	ListSitesHandler       gin.HandlerFunc
	ListTechniciansHandler gin.HandlerFunc

	// Dashboard endpoints
	DashboardOverviewHandler gin.HandlerFunc
	AnalyticsHandler         gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc

	// Report endpoints
	GenerateReportHandler gin.HandlerFunc
}
