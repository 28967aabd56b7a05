package routes

import (
	"net/http"

	"revolux/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathStatuses  = "/statuses"
	PathDashboard = "/dashboard"
	PathStats     = "/stats"
	PathUploads   = "/uploads"
	PathInsights  = "/insights"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, dashboardHandler *handlers.DashboardHandler) {
	rg.GET(PathStatuses, orderHandler.ListStatuses)

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/urgent", dashboardHandler.UrgentOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/history", orderHandler.GetHistory)
		orders.GET("/:id/actions", orderHandler.GetAllowedActions)
		orders.POST("/:id/actions/:action", orderHandler.PerformAction)
	}
}

// addStreamRoutes registers the event stream, whose browser clients pass the
// caller in the query string.
func addStreamRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	rg.GET(PathOrders+"/stream", handlers.RequireStreamIdentity(), orderHandler.StreamOrders)
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/analyst", dashboardHandler.AnalystDashboard)
		dashboard.GET("/strategy", dashboardHandler.StrategyDashboard)
	}

	stats := rg.Group(PathStats)
	{
		stats.GET("/cost-centers", dashboardHandler.CostCenterStats)
		stats.GET("/statuses", dashboardHandler.StatusStats)
		stats.GET("/suppliers", dashboardHandler.SupplierStats)
	}
}

func addUploadRoutes(rg *gin.RouterGroup, uploadHandler *handlers.UploadHandler) {
	uploads := rg.Group(PathUploads)
	{
		uploads.POST("", uploadHandler.CreateUpload)
		uploads.GET("", uploadHandler.ListUploads)
		uploads.GET("/:id", uploadHandler.GetUpload)
	}
}

func addInsightsRoutes(rg *gin.RouterGroup, insightsHandler *handlers.InsightsHandler) {
	rg.POST(PathInsights+"/ask", insightsHandler.Ask)
}
