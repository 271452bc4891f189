package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/produccion-pro/internal/application/alerts"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria
// ──────────────────────────────────────────────────────────────────────────────

const testTenant = "tenant-1"

type stubMaterialRepo struct {
	materials []*entity.Material
	err       error
}

func (s *stubMaterialRepo) GetByID(_ context.Context, _ string, materialID string) (*entity.Material, error) {
	for _, m := range s.materials {
		if m.ID == materialID {
			return m, nil
		}
	}
	return nil, nil
}

func (s *stubMaterialRepo) ListByTenant(_ context.Context, _ string) ([]*entity.Material, error) {
	return s.materials, s.err
}

func (s *stubMaterialRepo) ListByIDs(_ context.Context, _ string, materialIDs []string) (map[string]*entity.Material, error) {
	out := make(map[string]*entity.Material)
	for _, id := range materialIDs {
		for _, m := range s.materials {
			if m.ID == id {
				out[id] = m
			}
		}
	}
	return out, nil
}

type stubTrxRepo struct {
	trxs map[string][]entity.InventoryTransaction
	err  error
}

func (s *stubTrxRepo) ListByMaterialSince(_ context.Context, _ string, materialID string, _ time.Time) ([]entity.InventoryTransaction, error) {
	return s.trxs[materialID], s.err
}

func (s *stubTrxRepo) ListByTenantSince(_ context.Context, _ string, _ time.Time) (map[string][]entity.InventoryTransaction, error) {
	return s.trxs, s.err
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("decimal de test inválido: " + s)
	}
	return d
}

func fixtureMaterial(id, name, stock, reorder, cost string) *entity.Material {
	return &entity.Material{
		ID: id, TenantID: testTenant, Name: name, Unit: "kg",
		StockQuantity: dec(stock), ReorderLevel: dec(reorder), UnitCost: dec(cost),
	}
}

// dailyDeductions genera deducciones diarias de qty terminando ayer, relativas
// a time.Now() porque el caso de uso toma el reloj real.
func dailyDeductions(materialID, qty string, days int) []entity.InventoryTransaction {
	now := time.Now()
	trxs := make([]entity.InventoryTransaction, 0, days)
	for i := 1; i <= days; i++ {
		trxs = append(trxs, entity.InventoryTransaction{
			TenantID:       testTenant,
			MaterialID:     materialID,
			Type:           entity.TransactionTypeDeduction,
			QuantityChange: dec(qty).Neg(),
			CreatedAt:      now.AddDate(0, 0, -i),
		})
	}
	return trxs
}

const usageWindow = 30

// ──────────────────────────────────────────────────────────────────────────────
// GetActiveAlerts
// ──────────────────────────────────────────────────────────────────────────────

func TestGetActiveAlerts_ClasificaYResume(t *testing.T) {
	materials := &stubMaterialRepo{materials: []*entity.Material{
		fixtureMaterial("mat-agotado", "Agotado", "0", "20", "1"),
		fixtureMaterial("mat-critico", "Crítico", "8", "20", "1"),
		fixtureMaterial("mat-bajo", "Bajo", "18", "20", "1"),
		fixtureMaterial("mat-sano", "Sano", "100", "20", "1"),
	}}
	uc := alerts.NewAlertUseCase(materials, &stubTrxRepo{}, usageWindow)

	got, err := uc.GetActiveAlerts(context.Background(), testTenant)
	require.NoError(t, err)

	assert.Equal(t, 1, got.SeveritySummary.OutOfStock)
	assert.Equal(t, 1, got.SeveritySummary.Critical)
	assert.Equal(t, 1, got.SeveritySummary.Low)
	assert.Equal(t, 3, got.SeveritySummary.Total)

	require.Len(t, got.Alerts, 3)
	assert.Equal(t, "out_of_stock", got.Alerts[0].Severity, "lo más grave primero")
	assert.Equal(t, "mat-agotado", got.Alerts[0].MaterialID)
}

func TestGetActiveAlerts_ErrorDelRepositorio(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := alerts.NewAlertUseCase(&stubMaterialRepo{err: boom}, &stubTrxRepo{}, usageWindow)

	_, err := uc.GetActiveAlerts(context.Background(), testTenant)
	assert.ErrorIs(t, err, boom, "el error del repo sube envuelto")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetPredictiveAlerts
// ──────────────────────────────────────────────────────────────────────────────

// Stock 50 con −2/día durante 25 días observados → quiebre a los 25 días:
// fuera de un horizonte de 7, dentro de uno de 30.
func TestGetPredictiveAlerts_HorizonteDecide(t *testing.T) {
	materials := &stubMaterialRepo{materials: []*entity.Material{
		fixtureMaterial("mat-a", "A", "50", "20", "1"),
	}}
	trxs := &stubTrxRepo{trxs: map[string][]entity.InventoryTransaction{
		"mat-a": dailyDeductions("mat-a", "2", 25),
	}}
	uc := alerts.NewAlertUseCase(materials, trxs, usageWindow)

	corto, err := uc.GetPredictiveAlerts(context.Background(), testTenant, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, corto.ForecastDays)
	assert.Empty(t, corto.Alerts, "25 días al quiebre > horizonte 7")

	largo, err := uc.GetPredictiveAlerts(context.Background(), testTenant, 30)
	require.NoError(t, err)
	require.Len(t, largo.Alerts, 1)
	alert := largo.Alerts[0]
	assert.True(t, alert.AvgDailyUsage.Equal(dec("2")))
	assert.True(t, alert.DaysToStockout.Equal(dec("25")))
	assert.Equal(t, 25, alert.BasedOnUsageDays)
}

func TestGetPredictiveAlerts_SinConsumoSinAlertas(t *testing.T) {
	materials := &stubMaterialRepo{materials: []*entity.Material{
		fixtureMaterial("mat-a", "A", "50", "20", "1"),
	}}
	uc := alerts.NewAlertUseCase(materials, &stubTrxRepo{}, usageWindow)

	got, err := uc.GetPredictiveAlerts(context.Background(), testTenant, 90)
	require.NoError(t, err)
	assert.Empty(t, got.Alerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetReorderRecommendations
// ──────────────────────────────────────────────────────────────────────────────

func TestGetReorderRecommendations_CantidadCostoYTotal(t *testing.T) {
	materials := &stubMaterialRepo{materials: []*entity.Material{
		fixtureMaterial("mat-a", "A", "10", "20", "1.50"),
		fixtureMaterial("mat-b", "B", "200", "20", "3"),
	}}
	trxs := &stubTrxRepo{trxs: map[string][]entity.InventoryTransaction{
		"mat-a": dailyDeductions("mat-a", "2", 20),
		"mat-b": dailyDeductions("mat-b", "1", 20),
	}}
	uc := alerts.NewAlertUseCase(materials, trxs, usageWindow)

	got, err := uc.GetReorderRecommendations(context.Background(), testTenant, 14)
	require.NoError(t, err)

	assert.Equal(t, 14, got.TargetDaysOfStock)
	require.Len(t, got.Recommendations, 1, "mat-b ya cubre el objetivo y se omite")

	rec := got.Recommendations[0]
	assert.Equal(t, "mat-a", rec.MaterialID)
	assert.True(t, rec.RecommendedOrderQuantity.Equal(dec("18")), "14 × 2 − 10 = 18")
	assert.True(t, rec.EstimatedCost.Equal(dec("27")), "18 × 1.50")
	assert.Equal(t, "urgent", rec.Priority, "5 días al quiebre")
	assert.True(t, got.TotalEstimatedCost.Equal(dec("27")))
}

// ──────────────────────────────────────────────────────────────────────────────
// GetDashboard — un snapshot, tres cálculos coherentes
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDashboard_ComponeLasTresVistas(t *testing.T) {
	materials := &stubMaterialRepo{materials: []*entity.Material{
		fixtureMaterial("mat-critico", "Crítico", "4", "20", "1.50"),
		fixtureMaterial("mat-sano", "Sano", "500", "20", "1"),
	}}
	trxs := &stubTrxRepo{trxs: map[string][]entity.InventoryTransaction{
		"mat-critico": dailyDeductions("mat-critico", "2", 20),
	}}
	alertUC := alerts.NewAlertUseCase(materials, trxs, usageWindow)
	uc := alerts.NewDashboardUseCase(alertUC)

	got, err := uc.GetDashboard(context.Background(), testTenant)
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalMaterials)
	assert.False(t, got.GeneratedAt.IsZero())

	// Activa: 4 <= 0.5 × 20 → critical.
	assert.Equal(t, 1, got.SeveritySummary.Critical)
	require.Len(t, got.ActiveAlerts, 1)
	assert.Equal(t, "mat-critico", got.ActiveAlerts[0].MaterialID)

	// Predictiva a 7 días: 4 / 2 = 2 días al quiebre, dentro del horizonte.
	require.Len(t, got.Predictive, 1)
	assert.True(t, got.Predictive[0].DaysToStockout.Equal(dec("2")))

	// Reorden a 14 días: 14 × 2 − 4 = 24 sugeridos.
	require.Len(t, got.Reorder, 1)
	assert.True(t, got.Reorder[0].RecommendedOrderQuantity.Equal(dec("24")))
}

func TestGetDashboard_ErrorDeTransacciones(t *testing.T) {
	boom := errors.New("timeout")
	alertUC := alerts.NewAlertUseCase(
		&stubMaterialRepo{}, &stubTrxRepo{err: boom}, usageWindow,
	)
	uc := alerts.NewDashboardUseCase(alertUC)

	_, err := uc.GetDashboard(context.Background(), testTenant)
	assert.ErrorIs(t, err, boom)
}
