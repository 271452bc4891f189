package bom

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// UsageStats es el consumo histórico derivado de transacciones de un material.
type UsageStats struct {
	AvgDailyUsage decimal.Decimal
	ObservedDays  int // días distintos con consumo dentro de la ventana
}

// HasUsage indica si la ventana contiene consumo alguno.
func (s UsageStats) HasUsage() bool { return s.AvgDailyUsage.IsPositive() }

// AverageDailyUsage deriva el consumo diario promedio de un material a partir
// de su log de transacciones.
//
// Suma el valor absoluto de los cambios negativos de tipo deduction dentro de
// [now − windowDays, now] y divide por el número de días distintos realmente
// observados en la ventana — no por la longitud nominal — para no diluir el
// promedio cuando el historial es más corto que la ventana.
func AverageDailyUsage(trxs []entity.InventoryTransaction, windowDays int, now time.Time) UsageStats {
	if windowDays <= 0 {
		return UsageStats{AvgDailyUsage: decimal.Zero}
	}
	since := now.AddDate(0, 0, -windowDays)

	total := decimal.Zero
	days := make(map[string]struct{})
	for _, t := range trxs {
		if t.Type != entity.TransactionTypeDeduction || !t.QuantityChange.IsNegative() {
			continue
		}
		if t.CreatedAt.Before(since) || t.CreatedAt.After(now) {
			continue
		}
		total = total.Add(t.QuantityChange.Abs())
		days[t.CreatedAt.Format("2006-01-02")] = struct{}{}
	}

	if len(days) == 0 {
		return UsageStats{AvgDailyUsage: decimal.Zero}
	}
	return UsageStats{
		AvgDailyUsage: total.Div(decimal.NewFromInt(int64(len(days)))),
		ObservedDays:  len(days),
	}
}

// DaysToStockout proyecta en cuántos días se agota el stock al ritmo de consumo
// actual. ok=false cuando no hay consumo (la proyección sería infinita).
func DaysToStockout(currentStock, avgDailyUsage decimal.Decimal) (days decimal.Decimal, ok bool) {
	if !avgDailyUsage.IsPositive() {
		return decimal.Zero, false
	}
	return currentStock.Div(avgDailyUsage), true
}
