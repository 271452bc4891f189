package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario de materiales.
const (
	TransactionTypeRestock    = "restock"
	TransactionTypeDeduction  = "deduction"
	TransactionTypeAdjustment = "adjustment"
)

// InventoryTransaction es una entrada del log append-only de movimientos de
// materiales. QuantityChange es con signo: positivo en entradas, negativo en
// consumos. El motor de pronóstico lo lee como serie de tiempo; nunca lo muta.
type InventoryTransaction struct {
	ID             string
	TenantID       string
	MaterialID     string
	Type           string          // restock | deduction | adjustment
	QuantityChange decimal.Decimal // con signo
	Reason         string
	CreatedBy      string
	CreatedAt      time.Time
}
