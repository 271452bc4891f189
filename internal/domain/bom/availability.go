package bom

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// ComponentStatus es el estado de un componente de la receta frente al stock actual.
type ComponentStatus struct {
	MaterialID        string
	MaterialName      string
	Unit              string
	QuantityRequired  decimal.Decimal
	WastePercentage   decimal.Decimal
	EffectiveQuantity decimal.Decimal
	CurrentStock      decimal.Decimal
	AvailableUnits    int64 // floor(stock / efectivo); 0 si el componente no restringe
	Constraining      bool  // false cuando la cantidad efectiva es cero
}

// AvailabilityResult es la capacidad de producción de un producto con el stock actual.
type AvailabilityResult struct {
	AvailableQuantity      int64
	BottleneckMaterialID   string // vacío = sin cuello de botella (sin receta o sin componentes restrictivos)
	BottleneckMaterialName string
	Components             []ComponentStatus
}

// HasBottleneck indica si algún material restringe la producción.
func (r AvailabilityResult) HasBottleneck() bool { return r.BottleneckMaterialID != "" }

// ComputeAvailability calcula cuántas unidades del producto pueden producirse
// con el stock actual de materiales.
//
// Reglas:
//   - Receta nil, inactiva o sin componentes → 0 unidades, sin cuello de botella
//     (estado normal "sin materiales = sin stock", no un error).
//   - Por componente: disponible = floor(stock / cantidad_efectiva). Componentes
//     con cantidad efectiva cero se omiten del mínimo (no restringen) para no
//     dividir por cero.
//   - Disponible total = mínimo entre componentes restrictivos, acotado a >= 0.
//   - Cuello de botella = componente que alcanza el mínimo; empates se resuelven
//     por el material_id más bajo para que el resultado sea determinista.
//
// materials es el snapshot de materiales del tenant indexado por id. Un material
// ausente del snapshot se trata como stock cero.
func ComputeAvailability(recipe *entity.Recipe, materials map[string]*entity.Material) AvailabilityResult {
	if recipe == nil || !recipe.IsActive || len(recipe.Components) == 0 {
		return AvailabilityResult{AvailableQuantity: 0}
	}

	result := AvailabilityResult{
		Components: make([]ComponentStatus, 0, len(recipe.Components)),
	}

	var (
		minUnits     int64
		haveMin      bool
		bottleneckID string
		bottleneckNm string
	)

	for _, comp := range recipe.Components {
		effective := EffectiveQuantity(comp.QuantityRequired, comp.WastePercentage)

		status := ComponentStatus{
			MaterialID:        comp.MaterialID,
			QuantityRequired:  comp.QuantityRequired,
			WastePercentage:   comp.WastePercentage,
			EffectiveQuantity: effective,
			CurrentStock:      decimal.Zero,
		}
		if m := materials[comp.MaterialID]; m != nil {
			status.MaterialName = m.Name
			status.Unit = m.Unit
			status.CurrentStock = m.StockQuantity
		}

		if effective.IsZero() {
			// No restringe: se reporta pero queda fuera del mínimo.
			result.Components = append(result.Components, status)
			continue
		}
		status.Constraining = true

		units := status.CurrentStock.Div(effective).Floor().IntPart()
		if units < 0 {
			units = 0
		}
		status.AvailableUnits = units
		result.Components = append(result.Components, status)

		if !haveMin || units < minUnits ||
			(units == minUnits && comp.MaterialID < bottleneckID) {
			minUnits = units
			haveMin = true
			bottleneckID = comp.MaterialID
			bottleneckNm = status.MaterialName
		}
	}

	if haveMin {
		result.AvailableQuantity = minUnits
		result.BottleneckMaterialID = bottleneckID
		result.BottleneckMaterialName = bottleneckNm
	}
	return result
}
