// Package pdf implementa la generación del reporte imprimible de reorden de
// materiales para el equipo de compras.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + tenant  │  Fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | Stock | Consumo/día | Días | Pedir | $   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: costo estimado del pedido completo                │
//	│  FOOTER: leyenda consultiva (no es una reserva de stock)    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorUrgent  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ report.ReorderReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.ReorderReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReorderReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReorderReportPDF(
	_ context.Context,
	tenantID string,
	recs *dto.ReorderRecommendationsResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Reorden de Materiales", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tenantID, recs.TargetDaysOfStock, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(recs.Recommendations) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(recs))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + tenant (izq) y fecha + objetivo de cobertura (der).
func headerRow(tenantID string, targetDays int, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("REORDEN DE MATERIALES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tenant: "+tenantID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Objetivo: %d días de stock", targetDays), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de recomendaciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Material", 3, align.Left),
		h("Stock", 2, align.Right),
		h("Consumo/día", 2, align.Right),
		h("Días restantes", 2, align.Right),
		h("Pedir", 2, align.Right),
		h("Costo est.", 1, align.Right),
	)
}

// tableDetailRows: una fila por recomendación, urgentes resaltadas.
func tableDetailRows(recs []dto.ReorderRecommendationDTO) []core.Row {
	result := make([]core.Row, 0, len(recs))
	for _, r := range recs {
		nameColor := colorGray
		if r.Priority == "urgent" {
			nameColor = colorUrgent
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				fmt.Sprintf("%s (%s)", r.MaterialName, r.Unit),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: nameColor},
			)),
			col.New(2).Add(text.New(
				r.CurrentStock.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.AvgDailyUsage.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.DaysToStockout.StringFixed(1),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.RecommendedOrderQuantity.StringFixed(2),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				"$"+r.EstimatedCost.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: costo estimado del pedido completo, alineado a la derecha.
func totalsRow(recs *dto.ReorderRecommendationsResponse) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("COSTO ESTIMADO TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+recs.TotalEstimatedCost.StringFixed(0), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// footerRow: leyenda consultiva.
func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			"Reporte consultivo calculado sobre el snapshot de stock al momento de generación; no constituye una reserva de materiales.",
			props.Text{Size: 7, Color: colorGray, Align: align.Left, Top: 2},
		)),
	)
}
