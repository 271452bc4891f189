package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertDTO alerta activa de stock (calculada, no persistida).
type AlertDTO struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	Severity     string          `json:"severity"` // out_of_stock | critical | low
	CurrentStock decimal.Decimal `json:"current_stock"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
}

// SeveritySummaryDTO conteo de alertas activas por severidad.
type SeveritySummaryDTO struct {
	OutOfStock int `json:"out_of_stock"`
	Critical   int `json:"critical"`
	Low        int `json:"low"`
	Total      int `json:"total"`
}

// ActiveAlertsResponse respuesta de GET /api/alerts/active.
type ActiveAlertsResponse struct {
	Alerts          []AlertDTO         `json:"alerts"`
	SeveritySummary SeveritySummaryDTO `json:"severity_summary"`
}

// PredictiveAlertDTO quiebre de stock proyectado dentro del horizonte pedido.
type PredictiveAlertDTO struct {
	MaterialID            string          `json:"material_id"`
	MaterialName          string          `json:"material_name"`
	Unit                  string          `json:"unit"`
	CurrentStock          decimal.Decimal `json:"current_stock"`
	AvgDailyUsage         decimal.Decimal `json:"avg_daily_usage"`
	DaysToStockout        decimal.Decimal `json:"days_to_stockout"`
	BasedOnUsageDays      int             `json:"based_on_usage_days"`
	ProjectedStockoutDate time.Time       `json:"projected_stockout_date"`
}

// PredictiveAlertsResponse respuesta de GET /api/alerts/predictive.
type PredictiveAlertsResponse struct {
	ForecastDays int                  `json:"forecast_days"`
	Alerts       []PredictiveAlertDTO `json:"alerts"`
}

// ReorderRecommendationDTO sugerencia de compra para sostener los días de
// stock objetivo, ordenada de más a menos urgente.
type ReorderRecommendationDTO struct {
	MaterialID               string          `json:"material_id"`
	MaterialName             string          `json:"material_name"`
	Unit                     string          `json:"unit"`
	CurrentStock             decimal.Decimal `json:"current_stock"`
	AvgDailyUsage            decimal.Decimal `json:"avg_daily_usage"`
	DaysToStockout           decimal.Decimal `json:"days_to_stockout"`
	RecommendedOrderQuantity decimal.Decimal `json:"recommended_order_quantity"`
	EstimatedCost            decimal.Decimal `json:"estimated_cost"`
	Priority                 string          `json:"priority"` // urgent | soon | normal
}

// ReorderRecommendationsResponse respuesta de GET /api/alerts/reorder-recommendations.
type ReorderRecommendationsResponse struct {
	TargetDaysOfStock  int                        `json:"target_days_of_stock"`
	Recommendations    []ReorderRecommendationDTO `json:"recommendations"`
	TotalEstimatedCost decimal.Decimal            `json:"total_estimated_cost"`
}

// AlertDashboardResponse composición de alertas activas, predictivas y
// recomendaciones en un solo payload para el dashboard de materiales.
type AlertDashboardResponse struct {
	GeneratedAt     time.Time                  `json:"generated_at"`
	TotalMaterials  int                        `json:"total_materials"`
	SeveritySummary SeveritySummaryDTO         `json:"severity_summary"`
	ActiveAlerts    []AlertDTO                 `json:"active_alerts"`
	Predictive      []PredictiveAlertDTO       `json:"predictive_alerts"`
	Reorder         []ReorderRecommendationDTO `json:"reorder_recommendations"`
}
