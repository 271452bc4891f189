package bom

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// PlanRequest es una solicitud de producción dentro de un plan multi-producto.
type PlanRequest struct {
	ProductID string
	Recipe    *entity.Recipe // receta activa del producto; nil = sin receta
	Quantity  int64          // > 0
}

// PlanEntry es el desglose de materiales de una solicitud del plan. Siempre
// refleja la cantidad solicitada completa: el motor reporta factibilidad pero
// no raciona ni reasigna cuando la demanda agregada excede el stock.
type PlanEntry struct {
	ProductID       string
	RecipeID        string
	Quantity        int64
	Requirements    []MaterialRequirement
	CanProduceAlone bool // factibilidad de esta solicitud ignorando las demás
	EstimatedCost   decimal.Decimal
}

// MaterialShortage es el déficit agregado de un material frente al plan completo.
type MaterialShortage struct {
	MaterialID    string
	MaterialName  string
	TotalRequired decimal.Decimal
	CurrentStock  decimal.Decimal
	Shortage      decimal.Decimal
}

// MultiProductPlan es el resultado de planear varias producciones que compiten
// por los mismos materiales.
type MultiProductPlan struct {
	Entries                []PlanEntry
	AggregatedRequirements map[string]decimal.Decimal // material_id → total requerido
	IsFeasible             bool
	TotalProductionCost    decimal.Decimal
	Shortages              []MaterialShortage // vacío cuando el plan es factible
}

// ComputeMultiProductPlan agrega la demanda de materiales de varias solicitudes
// simultáneas y reporta si el stock actual alcanza para todas a la vez.
//
//   - Cada solicitud se desglosa con la misma aritmética de
//     ComputeBatchRequirements, independiente de las demás.
//   - aggregated[material] = Σ total_required entre solicitudes que lo consumen.
//   - is_feasible ⇔ para todo material, agregado <= stock.
//   - total_production_cost = Σ efectivo × cantidad × costo_unitario.
//
// Cuando el plan no es factible, las entradas conservan la cantidad solicitada
// completa; decidir racionamiento o prioridades es responsabilidad del caller.
func ComputeMultiProductPlan(requests []PlanRequest, materials map[string]*entity.Material) MultiProductPlan {
	plan := MultiProductPlan{
		Entries:                make([]PlanEntry, 0, len(requests)),
		AggregatedRequirements: make(map[string]decimal.Decimal),
		IsFeasible:             true,
		TotalProductionCost:    decimal.Zero,
	}

	for _, req := range requests {
		batch := ComputeBatchRequirements(req.Recipe, materials, req.Quantity)

		entry := PlanEntry{
			ProductID:       req.ProductID,
			Quantity:        req.Quantity,
			Requirements:    batch.Requirements,
			CanProduceAlone: batch.CanProduce,
			EstimatedCost:   batch.TotalEstimatedCost,
		}
		if req.Recipe != nil {
			entry.RecipeID = req.Recipe.ID
		}
		plan.Entries = append(plan.Entries, entry)
		plan.TotalProductionCost = plan.TotalProductionCost.Add(batch.TotalEstimatedCost)

		for _, r := range batch.Requirements {
			prev, ok := plan.AggregatedRequirements[r.MaterialID]
			if !ok {
				prev = decimal.Zero
			}
			plan.AggregatedRequirements[r.MaterialID] = prev.Add(r.TotalRequired)
		}
	}

	// Factibilidad global: cada material debe cubrir su demanda agregada.
	for materialID, required := range plan.AggregatedRequirements {
		stock := decimal.Zero
		name := ""
		if m := materials[materialID]; m != nil {
			stock = m.StockQuantity
			name = m.Name
		}
		if stock.LessThan(required) {
			plan.IsFeasible = false
			plan.Shortages = append(plan.Shortages, MaterialShortage{
				MaterialID:    materialID,
				MaterialName:  name,
				TotalRequired: required,
				CurrentStock:  stock,
				Shortage:      required.Sub(stock),
			})
		}
	}
	// Orden determinista para respuestas y tests (los mapas de Go no lo son).
	sort.Slice(plan.Shortages, func(i, j int) bool {
		return plan.Shortages[i].MaterialID < plan.Shortages[j].MaterialID
	})
	return plan
}
