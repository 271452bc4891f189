// Package report genera reportes imprimibles del back office de producción.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/produccion-pro/internal/application/alerts"
	"github.com/tu-usuario/produccion-pro/internal/application/dto"
)

// ReorderReportGenerator puerto de generación del PDF de reorden (DIP:
// la implementación Maroto vive en infraestructura).
type ReorderReportGenerator interface {
	GenerateReorderReportPDF(ctx context.Context, tenantID string, recs *dto.ReorderRecommendationsResponse, generatedAt time.Time) ([]byte, error)
}

// ReorderReportUseCase produce el reporte PDF de recomendaciones de reorden:
// el mismo cálculo consultivo de AlertUseCase, renderizado para compras.
type ReorderReportUseCase struct {
	alertUC   *alerts.AlertUseCase
	generator ReorderReportGenerator
}

// NewReorderReportUseCase construye el caso de uso.
func NewReorderReportUseCase(alertUC *alerts.AlertUseCase, generator ReorderReportGenerator) *ReorderReportUseCase {
	return &ReorderReportUseCase{alertUC: alertUC, generator: generator}
}

// GenerateReorderReport calcula las recomendaciones para targetDays días de
// stock y devuelve los bytes del PDF.
func (uc *ReorderReportUseCase) GenerateReorderReport(ctx context.Context, tenantID string, targetDays int) ([]byte, error) {
	recs, err := uc.alertUC.GetReorderRecommendations(ctx, tenantID, targetDays)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateReorderReportPDF(ctx, tenantID, recs, time.Now())
	if err != nil {
		return nil, fmt.Errorf("reporte de reorden: %w", err)
	}
	return pdf, nil
}
