package bom

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// Severidades de alerta de stock.
type Severity string

const (
	SeverityOutOfStock Severity = "out_of_stock"
	SeverityCritical   Severity = "critical"
	SeverityLow        Severity = "low"
)

// Prioridades de las recomendaciones de reorden.
const (
	PriorityUrgent = "urgent"
	PrioritySoon   = "soon"
	PriorityNormal = "normal"
)

var half = decimal.NewFromFloat(0.5)

// ClassifySeverity clasifica el stock de un material contra su nivel de reorden.
// ok=false cuando el material no amerita alerta (stock por encima del reorden).
//
//	stock == 0                          → out_of_stock
//	0 < stock <= 0.5 × reorden          → critical
//	0.5 × reorden < stock <= reorden    → low
func ClassifySeverity(stock, reorderLevel decimal.Decimal) (Severity, bool) {
	if stock.LessThanOrEqual(decimal.Zero) {
		return SeverityOutOfStock, true
	}
	if reorderLevel.LessThanOrEqual(decimal.Zero) {
		return "", false
	}
	if stock.LessThanOrEqual(reorderLevel.Mul(half)) {
		return SeverityCritical, true
	}
	if stock.LessThanOrEqual(reorderLevel) {
		return SeverityLow, true
	}
	return "", false
}

// Alert es una alerta activa calculada; vive solo dentro del request.
type Alert struct {
	MaterialID   string
	MaterialName string
	Unit         string
	Severity     Severity
	CurrentStock decimal.Decimal
	ReorderLevel decimal.Decimal
}

// SeveritySummary cuenta las alertas activas por severidad.
type SeveritySummary struct {
	OutOfStock int
	Critical   int
	Low        int
}

// Total devuelve el número de alertas activas.
func (s SeveritySummary) Total() int { return s.OutOfStock + s.Critical + s.Low }

// ComputeActiveAlerts clasifica el snapshot de materiales y devuelve las
// alertas activas ordenadas de más a menos grave (y por id para determinismo).
func ComputeActiveAlerts(materials []*entity.Material) ([]Alert, SeveritySummary) {
	alerts := make([]Alert, 0)
	var summary SeveritySummary

	for _, m := range materials {
		severity, ok := ClassifySeverity(m.StockQuantity, m.ReorderLevel)
		if !ok {
			continue
		}
		switch severity {
		case SeverityOutOfStock:
			summary.OutOfStock++
		case SeverityCritical:
			summary.Critical++
		case SeverityLow:
			summary.Low++
		}
		alerts = append(alerts, Alert{
			MaterialID:   m.ID,
			MaterialName: m.Name,
			Unit:         m.Unit,
			Severity:     severity,
			CurrentStock: m.StockQuantity,
			ReorderLevel: m.ReorderLevel,
		})
	}

	rank := map[Severity]int{SeverityOutOfStock: 0, SeverityCritical: 1, SeverityLow: 2}
	sort.Slice(alerts, func(i, j int) bool {
		if rank[alerts[i].Severity] != rank[alerts[j].Severity] {
			return rank[alerts[i].Severity] < rank[alerts[j].Severity]
		}
		return alerts[i].MaterialID < alerts[j].MaterialID
	})
	return alerts, summary
}

// PredictiveAlert anuncia un quiebre de stock proyectado dentro del horizonte.
type PredictiveAlert struct {
	MaterialID            string
	MaterialName          string
	Unit                  string
	CurrentStock          decimal.Decimal
	AvgDailyUsage         decimal.Decimal
	DaysToStockout        decimal.Decimal
	BasedOnUsageDays      int // días distintos observados en la ventana
	ProjectedStockoutDate time.Time
}

// ComputePredictiveAlerts proyecta quiebres de stock: emite una alerta por cada
// material cuyo days_to_stockout <= forecastDays. Materiales sin consumo en la
// ventana no proyectan quiebre y se omiten. forecastDays llega pre-validado por
// la capa de interfaz (entero positivo acotado); el motor lo asume correcto.
func ComputePredictiveAlerts(materials []*entity.Material, usage map[string]UsageStats, forecastDays int, now time.Time) []PredictiveAlert {
	horizon := decimal.NewFromInt(int64(forecastDays))
	alerts := make([]PredictiveAlert, 0)

	for _, m := range materials {
		stats := usage[m.ID]
		days, ok := DaysToStockout(m.StockQuantity, stats.AvgDailyUsage)
		if !ok || days.GreaterThan(horizon) {
			continue
		}
		alerts = append(alerts, PredictiveAlert{
			MaterialID:            m.ID,
			MaterialName:          m.Name,
			Unit:                  m.Unit,
			CurrentStock:          m.StockQuantity,
			AvgDailyUsage:         stats.AvgDailyUsage,
			DaysToStockout:        days,
			BasedOnUsageDays:      stats.ObservedDays,
			ProjectedStockoutDate: now.AddDate(0, 0, int(days.Floor().IntPart())),
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if !alerts[i].DaysToStockout.Equal(alerts[j].DaysToStockout) {
			return alerts[i].DaysToStockout.LessThan(alerts[j].DaysToStockout)
		}
		return alerts[i].MaterialID < alerts[j].MaterialID
	})
	return alerts
}

// ReorderRecommendation es una sugerencia de compra para sostener
// targetDays días de stock al ritmo de consumo actual.
type ReorderRecommendation struct {
	MaterialID               string
	MaterialName             string
	Unit                     string
	CurrentStock             decimal.Decimal
	AvgDailyUsage            decimal.Decimal
	DaysToStockout           decimal.Decimal
	RecommendedOrderQuantity decimal.Decimal // max(0, targetDays × consumo − stock)
	EstimatedCost            decimal.Decimal // cantidad recomendada × costo unitario
	Priority                 string          // urgent | soon | normal
}

var (
	urgentHorizon = decimal.NewFromInt(7)
	soonHorizon   = decimal.NewFromInt(14)
)

// ComputeReorderRecommendations calcula cuánto pedir de cada material para
// cubrir targetDays días de stock. Solo se recomiendan cantidades positivas;
// el ranking es por days_to_stockout ascendente (lo más urgente primero) y la
// prioridad se deriva de ese horizonte: urgent <= 7 días, soon <= 14, normal.
func ComputeReorderRecommendations(materials []*entity.Material, usage map[string]UsageStats, targetDays int) []ReorderRecommendation {
	target := decimal.NewFromInt(int64(targetDays))
	recs := make([]ReorderRecommendation, 0)

	for _, m := range materials {
		stats := usage[m.ID]
		if !stats.HasUsage() {
			continue // sin consumo: nada que reponer ni horizonte que proyectar
		}
		qty := target.Mul(stats.AvgDailyUsage).Sub(m.StockQuantity)
		if !qty.IsPositive() {
			continue
		}
		days, _ := DaysToStockout(m.StockQuantity, stats.AvgDailyUsage)

		priority := PriorityNormal
		if days.LessThanOrEqual(urgentHorizon) {
			priority = PriorityUrgent
		} else if days.LessThanOrEqual(soonHorizon) {
			priority = PrioritySoon
		}

		recs = append(recs, ReorderRecommendation{
			MaterialID:               m.ID,
			MaterialName:             m.Name,
			Unit:                     m.Unit,
			CurrentStock:             m.StockQuantity,
			AvgDailyUsage:            stats.AvgDailyUsage,
			DaysToStockout:           days,
			RecommendedOrderQuantity: qty,
			EstimatedCost:            qty.Mul(m.UnitCost),
			Priority:                 priority,
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].DaysToStockout.Equal(recs[j].DaysToStockout) {
			return recs[i].DaysToStockout.LessThan(recs[j].DaysToStockout)
		}
		return recs[i].MaterialID < recs[j].MaterialID
	})
	return recs
}
