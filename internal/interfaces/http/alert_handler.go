package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/produccion-pro/internal/application/alerts"
	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/application/report"
)

// Defaults y cotas de los parámetros de consulta. Las cotas viven aquí, en la
// capa que llama al motor: el motor asume entrada ya validada.
const (
	defaultForecastDays = 7
	defaultTargetDays   = 14
)

// AlertHandler maneja las alertas de stock y el dashboard (protegido).
type AlertHandler struct {
	alerts          *alerts.AlertUseCase
	dashboard       *alerts.DashboardUseCase
	reorderReport   *report.ReorderReportUseCase
	maxForecastDays int
	maxTargetDays   int
}

// NewAlertHandler construye el handler con las cotas superiores configuradas.
func NewAlertHandler(alertUC *alerts.AlertUseCase, dashboardUC *alerts.DashboardUseCase, reportUC *report.ReorderReportUseCase, maxForecastDays, maxTargetDays int) *AlertHandler {
	return &AlertHandler{
		alerts:          alertUC,
		dashboard:       dashboardUC,
		reorderReport:   reportUC,
		maxForecastDays: maxForecastDays,
		maxTargetDays:   maxTargetDays,
	}
}

// GetActiveAlerts godoc
// @Summary      Alertas activas de stock bajo
// @Description  Materiales en o por debajo de su nivel de reorden, clasificados
//
//	por severidad (out_of_stock, critical, low) con resumen agregado.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ActiveAlertsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/active [get]
func (h *AlertHandler) GetActiveAlerts(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.alerts.GetActiveAlerts(c.Context(), tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetPredictiveAlerts godoc
// @Summary      Alertas predictivas de agotamiento
// @Description  Materiales cuya proyección de agotamiento (por consumo histórico)
//
//	cae dentro del horizonte forecast_days.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        forecast_days  query  int  false  "Horizonte en días (1-90, default 7)"
// @Success      200  {object}  dto.PredictiveAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/alerts/predictive [get]
func (h *AlertHandler) GetPredictiveAlerts(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	forecastDays, err := queryIntBounded(c, "forecast_days", defaultForecastDays, h.maxForecastDays)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.alerts.GetPredictiveAlerts(c.Context(), tenantID, forecastDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetReorderRecommendations godoc
// @Summary      Recomendaciones de reorden
// @Description  Cantidad sugerida de pedido por material para cubrir
//
//	target_days_of_stock días de consumo, ordenada por urgencia.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        target_days_of_stock  query  int  false  "Días de cobertura objetivo (1-365, default 14)"
// @Success      200  {object}  dto.ReorderRecommendationsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/alerts/reorder-recommendations [get]
func (h *AlertHandler) GetReorderRecommendations(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	targetDays, err := queryIntBounded(c, "target_days_of_stock", defaultTargetDays, h.maxTargetDays)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.alerts.GetReorderRecommendations(c.Context(), tenantID, targetDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetReorderReportPDF godoc
// @Summary      Reporte PDF de recomendaciones de reorden
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Param        target_days_of_stock  query  int  false  "Días de cobertura objetivo (1-365, default 14)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/alerts/reorder-recommendations/pdf [get]
func (h *AlertHandler) GetReorderReportPDF(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	targetDays, err := queryIntBounded(c, "target_days_of_stock", defaultTargetDays, h.maxTargetDays)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdfBytes, err := h.reorderReport.GenerateReorderReport(c.Context(), tenantID, targetDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("reorden_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}

// GetDashboard godoc
// @Summary      Dashboard consolidado de alertas
// @Description  Une en una sola respuesta las alertas activas, las predictivas a
//
//	7 días y las recomendaciones de reorden a 14 días.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertDashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/dashboard [get]
func (h *AlertHandler) GetDashboard(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.dashboard.GetDashboard(c.Context(), tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// queryIntBounded lee un query param entero con default y cota superior.
func queryIntBounded(c *fiber.Ctx, name string, def, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s debe ser un entero", name)
	}
	if v < 1 {
		return 0, fmt.Errorf("%s debe ser positivo", name)
	}
	if v > max {
		return 0, fmt.Errorf("%s no puede exceder %d", name, max)
	}
	return v, nil
}
