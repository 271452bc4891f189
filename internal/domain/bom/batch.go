package bom

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// MaterialRequirement es la necesidad de un material para un lote solicitado.
type MaterialRequirement struct {
	MaterialID       string
	MaterialName     string
	Unit             string
	TotalRequired    decimal.Decimal // efectivo × cantidad solicitada, sin redondeo
	CurrentStock     decimal.Decimal
	IsSufficient     bool
	ShortageQuantity decimal.Decimal // max(0, requerido − stock)
	EstimatedCost    decimal.Decimal // requerido × costo unitario del material
}

// BatchRequirements es el resultado de planear un lote de tamaño fijo.
type BatchRequirements struct {
	CanProduce         bool
	Requirements       []MaterialRequirement
	TotalEstimatedCost decimal.Decimal
}

// ComputeBatchRequirements calcula las necesidades exactas de material para
// producir quantity unidades. Las cantidades requeridas no se redondean:
// fracciones de materia prima (2.5 kg de harina) son legítimas.
//
// can_produce = AND de is_sufficient sobre todos los componentes. Una receta
// nil o sin componentes produce un plan vacío con CanProduce=false.
func ComputeBatchRequirements(recipe *entity.Recipe, materials map[string]*entity.Material, quantity int64) BatchRequirements {
	result := BatchRequirements{TotalEstimatedCost: decimal.Zero}
	if recipe == nil || !recipe.IsActive || len(recipe.Components) == 0 || quantity <= 0 {
		return result
	}

	qty := decimal.NewFromInt(quantity)
	result.CanProduce = true
	result.Requirements = make([]MaterialRequirement, 0, len(recipe.Components))

	for _, comp := range recipe.Components {
		effective := EffectiveQuantity(comp.QuantityRequired, comp.WastePercentage)
		required := effective.Mul(qty)

		req := MaterialRequirement{
			MaterialID:       comp.MaterialID,
			TotalRequired:    required,
			CurrentStock:     decimal.Zero,
			ShortageQuantity: decimal.Zero,
			EstimatedCost:    decimal.Zero,
		}
		if m := materials[comp.MaterialID]; m != nil {
			req.MaterialName = m.Name
			req.Unit = m.Unit
			req.CurrentStock = m.StockQuantity
			req.EstimatedCost = required.Mul(m.UnitCost)
		}

		req.IsSufficient = req.CurrentStock.GreaterThanOrEqual(required)
		if !req.IsSufficient {
			req.ShortageQuantity = required.Sub(req.CurrentStock)
			result.CanProduce = false
		}

		result.TotalEstimatedCost = result.TotalEstimatedCost.Add(req.EstimatedCost)
		result.Requirements = append(result.Requirements, req)
	}
	return result
}

// OptimalBatch es la sugerencia de tamaño de lote acotada por min/max.
type OptimalBatch struct {
	MaximumProducible      int64
	BottleneckMaterialID   string
	BottleneckMaterialName string
	SuggestedBatches       []int64 // descendente; vacío solo si el máximo es 0
}

// ComputeOptimalBatch calcula el máximo producible (vía ComputeAvailability)
// acotado al rango [minQuantity, maxQuantity] cuando se indica; si la cota deja
// el rango vacío el máximo es 0.
//
// Las sugerencias de lote son el máximo y fracciones redondas de él (50% y 25%,
// hacia abajo), filtradas para quedar >= 1 y dentro del rango. Es una
// conveniencia de presentación: el contrato es "no vacío y <= máximo" cuando el
// máximo es al menos 1.
func ComputeOptimalBatch(recipe *entity.Recipe, materials map[string]*entity.Material, minQuantity, maxQuantity *int64) OptimalBatch {
	avail := ComputeAvailability(recipe, materials)

	maximum := avail.AvailableQuantity
	if maxQuantity != nil && maximum > *maxQuantity {
		maximum = *maxQuantity
	}
	if minQuantity != nil && maximum < *minQuantity {
		maximum = 0 // el rango pedido no es alcanzable con el stock actual
	}

	result := OptimalBatch{
		MaximumProducible:      maximum,
		BottleneckMaterialID:   avail.BottleneckMaterialID,
		BottleneckMaterialName: avail.BottleneckMaterialName,
	}
	if maximum <= 0 {
		return result
	}

	candidates := []int64{maximum, maximum / 2, maximum / 4}
	seen := make(map[int64]bool, len(candidates))
	for _, c := range candidates {
		if c < 1 || seen[c] {
			continue
		}
		if minQuantity != nil && c < *minQuantity {
			continue
		}
		seen[c] = true
		result.SuggestedBatches = append(result.SuggestedBatches, c)
	}
	return result
}
