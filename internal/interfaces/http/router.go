package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/produccion-pro/internal/application/alerts"
	"github.com/tu-usuario/produccion-pro/internal/application/production"
	"github.com/tu-usuario/produccion-pro/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AvailabilityUC  *production.AvailabilityUseCase
	BatchUC         *production.BatchUseCase
	MultiProductUC  *production.MultiProductUseCase
	AlertUC         *alerts.AlertUseCase
	DashboardUC     *alerts.DashboardUseCase
	ReorderReportUC *report.ReorderReportUseCase
	JWTSecret       string
	MaxForecastDays int
	MaxTargetDays   int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cálculos de producción (protegido)
	prodGroup := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.AvailabilityUC, deps.BatchUC, deps.MultiProductUC)
	prodGroup.Get("/availability/:product_id", productionHandler.GetAvailability)
	prodGroup.Post("/bulk-availability", productionHandler.GetBulkAvailability)
	prodGroup.Get("/capacity/:product_id", productionHandler.GetProductionCapacity)
	prodGroup.Post("/batch-requirements", productionHandler.GetBatchRequirements)
	prodGroup.Post("/optimal-batch-size", productionHandler.GetOptimalBatchSize)
	prodGroup.Post("/multi-product-plan", productionHandler.PlanMultiProduct)

	// Alertas de stock (protegido; el reporte PDF solo para admin/planner)
	alertGroup := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC, deps.DashboardUC, deps.ReorderReportUC, deps.MaxForecastDays, deps.MaxTargetDays)
	alertGroup.Get("/active", alertHandler.GetActiveAlerts)
	alertGroup.Get("/predictive", alertHandler.GetPredictiveAlerts)
	alertGroup.Get("/reorder-recommendations", alertHandler.GetReorderRecommendations)
	alertGroup.Get("/reorder-recommendations/pdf", RequireRole("admin", "planner"), alertHandler.GetReorderReportPDF)
	alertGroup.Get("/dashboard", alertHandler.GetDashboard)
}
