package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe representa la lista de materiales (BOM) activa de un producto terminado.
// Invariante (responsabilidad del módulo de catálogo): a lo sumo una receta activa
// por producto; activar una desactiva a sus hermanas. "Sin receta activa" es un
// estado válido para el motor de producción, no un error.
type Recipe struct {
	ID            string
	TenantID      string
	ProductID     string
	Name          string
	YieldQuantity decimal.Decimal // unidades producidas por lote de receta (> 0)
	YieldUnit     string
	IsActive      bool
	Components    []RecipeComponent // pre-cargados; snapshot inmutable
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecipeComponent es una línea de la receta: cuánto requiere de un material
// para producir una unidad de rendimiento, más el porcentaje de merma.
// Invariante: un material aparece a lo sumo una vez por receta.
type RecipeComponent struct {
	RecipeID        string
	MaterialID      string
	QuantityRequired decimal.Decimal // por unidad de rendimiento (> 0)
	WastePercentage  decimal.Decimal // 0–100
}
