package production

import (
	"context"

	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/domain"
	"github.com/tu-usuario/produccion-pro/internal/domain/bom"
	"github.com/tu-usuario/produccion-pro/internal/domain/repository"
)

// MultiProductUseCase planea varias producciones simultáneas que compiten por
// los mismos materiales y reporta la factibilidad global del plan.
type MultiProductUseCase struct {
	recipeRepo   repository.RecipeRepository
	materialRepo repository.MaterialRepository
}

// NewMultiProductUseCase construye el caso de uso.
func NewMultiProductUseCase(recipeRepo repository.RecipeRepository, materialRepo repository.MaterialRepository) *MultiProductUseCase {
	return &MultiProductUseCase{recipeRepo: recipeRepo, materialRepo: materialRepo}
}

// PlanProduction agrega la demanda de materiales de todas las solicitudes y
// reporta si el stock alcanza para el plan completo. Cuando no alcanza, las
// entradas conservan la cantidad solicitada íntegra: racionar o priorizar es
// una política del caller, no del motor.
//
// Validación: al menos una solicitud, todas con cantidad > 0.
func (uc *MultiProductUseCase) PlanProduction(ctx context.Context, tenantID string, req dto.MultiProductPlanRequest) (*dto.MultiProductPlanResponse, error) {
	if len(req.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}
	productIDs := make([]string, 0, len(req.Products))
	for _, p := range req.Products {
		if p.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		if p.Quantity <= 0 {
			return nil, domain.ErrQuantityInvalid
		}
		productIDs = append(productIDs, p.ProductID)
	}

	recipes, err := uc.recipeRepo.ListActiveByProducts(ctx, tenantID, productIDs)
	if err != nil {
		return nil, err
	}

	// Un solo snapshot de materiales para todo el plan: la factibilidad se
	// evalúa contra un único estado consistente del stock.
	materialIDs := make([]string, 0)
	seen := make(map[string]bool)
	for _, recipe := range recipes {
		for _, c := range recipe.Components {
			if !seen[c.MaterialID] {
				seen[c.MaterialID] = true
				materialIDs = append(materialIDs, c.MaterialID)
			}
		}
	}
	materialsSnap, err := uc.materialRepo.ListByIDs(ctx, tenantID, materialIDs)
	if err != nil {
		return nil, err
	}

	requests := make([]bom.PlanRequest, 0, len(req.Products))
	for _, p := range req.Products {
		requests = append(requests, bom.PlanRequest{
			ProductID: p.ProductID,
			Recipe:    recipes[p.ProductID], // nil si el producto no tiene receta activa
			Quantity:  p.Quantity,
		})
	}

	plan := bom.ComputeMultiProductPlan(requests, materialsSnap)

	resp := &dto.MultiProductPlanResponse{
		ProductionPlan:                 make([]dto.ProductionPlanEntryDTO, 0, len(plan.Entries)),
		AggregatedMaterialRequirements: plan.AggregatedRequirements,
		IsFeasible:                     plan.IsFeasible,
		TotalProductionCost:            plan.TotalProductionCost,
	}
	for _, e := range plan.Entries {
		resp.ProductionPlan = append(resp.ProductionPlan, dto.ProductionPlanEntryDTO{
			ProductID:            e.ProductID,
			RecipeID:             e.RecipeID,
			Quantity:             e.Quantity,
			CanProduceAlone:      e.CanProduceAlone,
			MaterialRequirements: toRequirementDTOs(e.Requirements),
			EstimatedCost:        e.EstimatedCost,
		})
	}
	for _, s := range plan.Shortages {
		resp.Shortages = append(resp.Shortages, dto.MaterialShortageDTO{
			MaterialID:    s.MaterialID,
			MaterialName:  s.MaterialName,
			TotalRequired: s.TotalRequired,
			CurrentStock:  s.CurrentStock,
			Shortage:      s.Shortage,
		})
	}
	return resp, nil
}
