package production

import (
	"context"

	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/domain/bom"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
	"github.com/tu-usuario/produccion-pro/internal/domain/repository"
)

// loadSnapshot resuelve la receta activa del producto y el snapshot de sus
// materiales en una sola pasada. Receta nil (sin receta activa) es un estado
// válido: devuelve (nil, nil, nil) y el motor lo resuelve como 0 producible.
func loadSnapshot(ctx context.Context, recipeRepo repository.RecipeRepository, materialRepo repository.MaterialRepository, tenantID, productID string) (*entity.Recipe, map[string]*entity.Material, error) {
	recipe, err := recipeRepo.GetActiveByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, nil, err
	}
	if recipe == nil || len(recipe.Components) == 0 {
		return recipe, nil, nil
	}
	ids := make([]string, 0, len(recipe.Components))
	for _, c := range recipe.Components {
		ids = append(ids, c.MaterialID)
	}
	materials, err := materialRepo.ListByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, nil, err
	}
	return recipe, materials, nil
}

// toRequirementDTOs mapea necesidades de material del motor a DTOs.
func toRequirementDTOs(reqs []bom.MaterialRequirement) []dto.MaterialRequirementDTO {
	out := make([]dto.MaterialRequirementDTO, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, dto.MaterialRequirementDTO{
			MaterialID:       r.MaterialID,
			MaterialName:     r.MaterialName,
			Unit:             r.Unit,
			TotalRequired:    r.TotalRequired,
			CurrentStock:     r.CurrentStock,
			IsSufficient:     r.IsSufficient,
			ShortageQuantity: r.ShortageQuantity,
			EstimatedCost:    r.EstimatedCost,
		})
	}
	return out
}
