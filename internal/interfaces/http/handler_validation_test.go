package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/produccion-pro/internal/application/alerts"
	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/application/production"
	"github.com/tu-usuario/produccion-pro/internal/application/report"
	"github.com/tu-usuario/produccion-pro/internal/domain"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/produccion-pro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs y armado de la app completa (router real + middlewares reales)
// ──────────────────────────────────────────────────────────────────────────────

type stubRecipeRepo struct {
	recipes map[string]*entity.Recipe
	errs    map[string]error
}

func (s *stubRecipeRepo) GetActiveByProduct(_ context.Context, _ string, productID string) (*entity.Recipe, error) {
	if err := s.errs[productID]; err != nil {
		return nil, err
	}
	return s.recipes[productID], nil
}

func (s *stubRecipeRepo) ListActiveByProducts(_ context.Context, _ string, productIDs []string) (map[string]*entity.Recipe, error) {
	out := make(map[string]*entity.Recipe)
	for _, id := range productIDs {
		if r := s.recipes[id]; r != nil {
			out[id] = r
		}
	}
	return out, nil
}

type stubMaterialRepo struct {
	materials map[string]*entity.Material
}

func (s *stubMaterialRepo) GetByID(_ context.Context, _ string, materialID string) (*entity.Material, error) {
	return s.materials[materialID], nil
}

func (s *stubMaterialRepo) ListByTenant(_ context.Context, _ string) ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(s.materials))
	for _, m := range s.materials {
		out = append(out, m)
	}
	return out, nil
}

func (s *stubMaterialRepo) ListByIDs(_ context.Context, _ string, materialIDs []string) (map[string]*entity.Material, error) {
	out := make(map[string]*entity.Material)
	for _, id := range materialIDs {
		if m := s.materials[id]; m != nil {
			out[id] = m
		}
	}
	return out, nil
}

type stubTrxRepo struct{}

func (s *stubTrxRepo) ListByMaterialSince(_ context.Context, _, _ string, _ time.Time) ([]entity.InventoryTransaction, error) {
	return nil, nil
}

func (s *stubTrxRepo) ListByTenantSince(_ context.Context, _ string, _ time.Time) (map[string][]entity.InventoryTransaction, error) {
	return nil, nil
}

type stubReportGenerator struct{}

func (s *stubReportGenerator) GenerateReorderReportPDF(_ context.Context, _ string, _ *dto.ReorderRecommendationsResponse, _ time.Time) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// buildAPIApp monta la API completa con repos en memoria: mismas rutas,
// middlewares y validaciones que producción.
func buildAPIApp() *fiber.App {
	recipes := &stubRecipeRepo{
		recipes: map[string]*entity.Recipe{
			"prod-pan": {
				ID: "recipe-prod-pan", TenantID: testTenantID, ProductID: "prod-pan",
				Name: "Pan", YieldQuantity: mustDec("1"), YieldUnit: "unidad", IsActive: true,
				Components: []entity.RecipeComponent{
					{MaterialID: "mat-harina", QuantityRequired: mustDec("2.0"), WastePercentage: mustDec("25")},
				},
			},
		},
		errs: map[string]error{
			"prod-simple": domain.ErrNotBOMManaged,
			"prod-nadie":  domain.ErrNotFound,
		},
	}
	materials := &stubMaterialRepo{
		materials: map[string]*entity.Material{
			"mat-harina": {
				ID: "mat-harina", TenantID: testTenantID, Name: "Harina", Unit: "kg",
				StockQuantity: mustDec("100"), ReorderLevel: mustDec("20"), UnitCost: mustDec("1.50"),
			},
		},
	}
	trxs := &stubTrxRepo{}

	availabilityUC := production.NewAvailabilityUseCase(recipes, materials)
	batchUC := production.NewBatchUseCase(recipes, materials)
	multiUC := production.NewMultiProductUseCase(recipes, materials)
	alertUC := alerts.NewAlertUseCase(materials, trxs, 30)
	dashboardUC := alerts.NewDashboardUseCase(alertUC)
	reportUC := report.NewReorderReportUseCase(alertUC, &stubReportGenerator{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AvailabilityUC:  availabilityUC,
		BatchUC:         batchUC,
		MultiProductUC:  multiUC,
		AlertUC:         alertUC,
		DashboardUC:     dashboardUC,
		ReorderReportUC: reportUC,
		JWTSecret:       testJWTSecret,
		MaxForecastDays: 90,
		MaxTargetDays:   365,
	})
	return app
}

func apiRequest(t *testing.T, app *fiber.App, method, path, body, role string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Cotas de los query params de alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertas_ForecastDaysFueraDeCota_Retorna400(t *testing.T) {
	app := buildAPIApp()

	resp := apiRequest(t, app, http.MethodGet, "/api/alerts/predictive?forecast_days=100", "", "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "100 excede la cota de 90 días")

	resp = apiRequest(t, app, http.MethodGet, "/api/alerts/predictive?forecast_days=0", "", "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "forecast_days debe ser positivo")

	resp = apiRequest(t, app, http.MethodGet, "/api/alerts/predictive?forecast_days=abc", "", "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "forecast_days debe ser entero")
}

func TestAlertas_ForecastDaysDentroDeCota_Retorna200(t *testing.T) {
	app := buildAPIApp()

	resp := apiRequest(t, app, http.MethodGet, "/api/alerts/predictive?forecast_days=30", "", "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Sin el parámetro se usa el default.
	resp = apiRequest(t, app, http.MethodGet, "/api/alerts/predictive", "", "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAlertas_TargetDaysFueraDeCota_Retorna400(t *testing.T) {
	app := buildAPIApp()

	resp := apiRequest(t, app, http.MethodGet, "/api/alerts/reorder-recommendations?target_days_of_stock=500", "", "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "500 excede la cota de 365 días")

	resp = apiRequest(t, app, http.MethodGet, "/api/alerts/reorder-recommendations?target_days_of_stock=365", "", "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "365 es exactamente la cota y es válido")
}

func TestAlertas_SinToken_Retorna401(t *testing.T) {
	app := buildAPIApp()
	req := httptest.NewRequest(http.MethodGet, "/api/alerts/active", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El PDF de reorden exige rol admin o planner.
func TestAlertas_ReportePDF_RBAC(t *testing.T) {
	app := buildAPIApp()

	resp := apiRequest(t, app, http.MethodGet, "/api/alerts/reorder-recommendations/pdf", "", "operator")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "operator no genera reportes")

	resp = apiRequest(t, app, http.MethodGet, "/api/alerts/reorder-recommendations/pdf", "", "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de producción: mapeo de errores y validación del body
// ──────────────────────────────────────────────────────────────────────────────

func TestProduccion_Disponibilidad_OK(t *testing.T) {
	app := buildAPIApp()
	resp := apiRequest(t, app, http.MethodGet, "/api/production/availability/prod-pan", "", "operator")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProduccion_ProductoNoBOM_Retorna422(t *testing.T) {
	app := buildAPIApp()
	resp := apiRequest(t, app, http.MethodGet, "/api/production/availability/prod-simple", "", "operator")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestProduccion_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildAPIApp()
	resp := apiRequest(t, app, http.MethodGet, "/api/production/availability/prod-nadie", "", "operator")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProduccion_LoteCantidadCero_Retorna400(t *testing.T) {
	app := buildAPIApp()
	resp := apiRequest(t, app, http.MethodPost, "/api/production/batch-requirements",
		`{"product_id":"prod-pan","quantity":0}`, "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProduccion_BulkVacio_Retorna400(t *testing.T) {
	app := buildAPIApp()
	resp := apiRequest(t, app, http.MethodPost, "/api/production/bulk-availability",
		`{"product_ids":[]}`, "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProduccion_BodyInvalido_Retorna400(t *testing.T) {
	app := buildAPIApp()
	resp := apiRequest(t, app, http.MethodPost, "/api/production/multi-product-plan",
		`{"products": [`, "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProduccion_PlanMultiProducto_OK(t *testing.T) {
	app := buildAPIApp()
	resp := apiRequest(t, app, http.MethodPost, "/api/production/multi-product-plan",
		`{"products":[{"product_id":"prod-pan","quantity":10}]}`, "planner")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
