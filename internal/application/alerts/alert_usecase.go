// Package alerts contiene los casos de uso de alertas de stock de materiales:
// alertas activas por nivel de reorden, alertas predictivas derivadas del
// consumo histórico y recomendaciones de reorden, más el dashboard que las
// compone. Las alertas son DTOs calculados con ciclo de vida de request;
// nunca se persisten.
package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/domain/bom"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
	"github.com/tu-usuario/produccion-pro/internal/domain/repository"
)

// AlertUseCase calcula alertas y recomendaciones sobre snapshots de materiales
// y el log de transacciones del tenant.
type AlertUseCase struct {
	materialRepo repository.MaterialRepository
	trxRepo      repository.TransactionRepository
	usageWindow  int // días de historial para el consumo promedio
}

// NewAlertUseCase construye el caso de uso. usageWindowDays es la ventana de
// observación del consumo (ENGINE_USAGE_WINDOW_DAYS, típicamente 30).
func NewAlertUseCase(materialRepo repository.MaterialRepository, trxRepo repository.TransactionRepository, usageWindowDays int) *AlertUseCase {
	return &AlertUseCase{
		materialRepo: materialRepo,
		trxRepo:      trxRepo,
		usageWindow:  usageWindowDays,
	}
}

// GetActiveAlerts clasifica el stock actual contra los niveles de reorden.
func (uc *AlertUseCase) GetActiveAlerts(ctx context.Context, tenantID string) (*dto.ActiveAlertsResponse, error) {
	materials, err := uc.materialRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("alertas activas: materiales: %w", err)
	}
	alerts, summary := bom.ComputeActiveAlerts(materials)
	return &dto.ActiveAlertsResponse{
		Alerts:          toAlertDTOs(alerts),
		SeveritySummary: toSummaryDTO(summary),
	}, nil
}

// GetPredictiveAlerts proyecta quiebres de stock dentro de forecastDays.
// forecastDays llega pre-validado por la capa HTTP (entero positivo acotado).
func (uc *AlertUseCase) GetPredictiveAlerts(ctx context.Context, tenantID string, forecastDays int) (*dto.PredictiveAlertsResponse, error) {
	now := time.Now()
	materials, usage, err := uc.usageSnapshot(ctx, tenantID, now)
	if err != nil {
		return nil, fmt.Errorf("alertas predictivas: %w", err)
	}
	alerts := bom.ComputePredictiveAlerts(materials, usage, forecastDays, now)
	return &dto.PredictiveAlertsResponse{
		ForecastDays: forecastDays,
		Alerts:       toPredictiveDTOs(alerts),
	}, nil
}

// GetReorderRecommendations sugiere cantidades de compra para sostener
// targetDays días de stock, ordenadas de más a menos urgente.
func (uc *AlertUseCase) GetReorderRecommendations(ctx context.Context, tenantID string, targetDays int) (*dto.ReorderRecommendationsResponse, error) {
	now := time.Now()
	materials, usage, err := uc.usageSnapshot(ctx, tenantID, now)
	if err != nil {
		return nil, fmt.Errorf("recomendaciones de reorden: %w", err)
	}
	recs := bom.ComputeReorderRecommendations(materials, usage, targetDays)

	resp := &dto.ReorderRecommendationsResponse{
		TargetDaysOfStock: targetDays,
		Recommendations:   toRecommendationDTOs(recs),
	}
	for _, r := range recs {
		resp.TotalEstimatedCost = resp.TotalEstimatedCost.Add(r.EstimatedCost)
	}
	return resp, nil
}

// usageSnapshot trae materiales y transacciones de la ventana en paralelo
// (dos consultas independientes) y deriva el consumo promedio por material.
func (uc *AlertUseCase) usageSnapshot(ctx context.Context, tenantID string, now time.Time) ([]*entity.Material, map[string]bom.UsageStats, error) {
	since := now.AddDate(0, 0, -uc.usageWindow)

	type materialsResult struct {
		materials []*entity.Material
		err       error
	}
	type trxResult struct {
		trxs map[string][]entity.InventoryTransaction
		err  error
	}
	materialsCh := make(chan materialsResult, 1)
	trxCh := make(chan trxResult, 1)

	go func() {
		m, err := uc.materialRepo.ListByTenant(ctx, tenantID)
		materialsCh <- materialsResult{m, err}
	}()
	go func() {
		t, err := uc.trxRepo.ListByTenantSince(ctx, tenantID, since)
		trxCh <- trxResult{t, err}
	}()

	mRes := <-materialsCh
	tRes := <-trxCh
	if mRes.err != nil {
		return nil, nil, fmt.Errorf("materiales: %w", mRes.err)
	}
	if tRes.err != nil {
		return nil, nil, fmt.Errorf("transacciones: %w", tRes.err)
	}

	usage := make(map[string]bom.UsageStats, len(mRes.materials))
	for _, m := range mRes.materials {
		usage[m.ID] = bom.AverageDailyUsage(tRes.trxs[m.ID], uc.usageWindow, now)
	}
	return mRes.materials, usage, nil
}

// ── Mapeo a DTOs ──────────────────────────────────────────────────────────────

func toAlertDTOs(alerts []bom.Alert) []dto.AlertDTO {
	out := make([]dto.AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertDTO{
			MaterialID:   a.MaterialID,
			MaterialName: a.MaterialName,
			Unit:         a.Unit,
			Severity:     string(a.Severity),
			CurrentStock: a.CurrentStock,
			ReorderLevel: a.ReorderLevel,
		})
	}
	return out
}

func toSummaryDTO(s bom.SeveritySummary) dto.SeveritySummaryDTO {
	return dto.SeveritySummaryDTO{
		OutOfStock: s.OutOfStock,
		Critical:   s.Critical,
		Low:        s.Low,
		Total:      s.Total(),
	}
}

func toPredictiveDTOs(alerts []bom.PredictiveAlert) []dto.PredictiveAlertDTO {
	out := make([]dto.PredictiveAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.PredictiveAlertDTO{
			MaterialID:            a.MaterialID,
			MaterialName:          a.MaterialName,
			Unit:                  a.Unit,
			CurrentStock:          a.CurrentStock,
			AvgDailyUsage:         a.AvgDailyUsage,
			DaysToStockout:        a.DaysToStockout,
			BasedOnUsageDays:      a.BasedOnUsageDays,
			ProjectedStockoutDate: a.ProjectedStockoutDate,
		})
	}
	return out
}

func toRecommendationDTOs(recs []bom.ReorderRecommendation) []dto.ReorderRecommendationDTO {
	out := make([]dto.ReorderRecommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.ReorderRecommendationDTO{
			MaterialID:               r.MaterialID,
			MaterialName:             r.MaterialName,
			Unit:                     r.Unit,
			CurrentStock:             r.CurrentStock,
			AvgDailyUsage:            r.AvgDailyUsage,
			DaysToStockout:           r.DaysToStockout,
			RecommendedOrderQuantity: r.RecommendedOrderQuantity,
			EstimatedCost:            r.EstimatedCost,
			Priority:                 r.Priority,
		})
	}
	return out
}
