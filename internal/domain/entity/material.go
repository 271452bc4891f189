package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa una materia prima del inventario de producción.
// StockQuantity y ReorderLevel se manejan en la unidad base del material (Unit);
// UnitCost es el costo promedio ponderado por unidad.
type Material struct {
	ID            string
	TenantID      string
	SKU           string // código único por empresa
	Name          string
	StockQuantity decimal.Decimal // stock actual (>= 0)
	ReorderLevel  decimal.Decimal // umbral de reorden (>= 0)
	UnitCost      decimal.Decimal // costo promedio ponderado
	Unit          string          // kg, g, l, ml, unidad…
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
