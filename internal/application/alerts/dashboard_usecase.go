package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/domain/bom"
)

// Horizontes por defecto del dashboard de materiales.
const (
	dashboardForecastDays = 7  // alertas predictivas: próxima semana
	dashboardTargetDays   = 14 // recomendaciones: dos semanas de stock
)

// DashboardUseCase compone alertas activas, predictivas y recomendaciones de
// reorden en un solo resumen. No agrega lógica nueva: un snapshot, tres
// cálculos del motor.
type DashboardUseCase struct {
	alertUC *AlertUseCase
}

// NewDashboardUseCase construye el caso de uso sobre AlertUseCase.
func NewDashboardUseCase(alertUC *AlertUseCase) *DashboardUseCase {
	return &DashboardUseCase{alertUC: alertUC}
}

// GetDashboard construye el AlertDashboardResponse del tenant: un único
// snapshot consistente de materiales + transacciones y los tres cálculos
// sobre él (misma base, resultados coherentes entre sí).
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, tenantID string) (*dto.AlertDashboardResponse, error) {
	now := time.Now()
	materials, usage, err := uc.alertUC.usageSnapshot(ctx, tenantID, now)
	if err != nil {
		return nil, fmt.Errorf("dashboard de alertas: %w", err)
	}

	active, summary := bom.ComputeActiveAlerts(materials)
	predictive := bom.ComputePredictiveAlerts(materials, usage, dashboardForecastDays, now)
	recs := bom.ComputeReorderRecommendations(materials, usage, dashboardTargetDays)

	return &dto.AlertDashboardResponse{
		GeneratedAt:     now,
		TotalMaterials:  len(materials),
		SeveritySummary: toSummaryDTO(summary),
		ActiveAlerts:    toAlertDTOs(active),
		Predictive:      toPredictiveDTOs(predictive),
		Reorder:         toRecommendationDTOs(recs),
	}, nil
}
