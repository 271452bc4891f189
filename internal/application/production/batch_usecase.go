package production

import (
	"context"

	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/domain"
	"github.com/tu-usuario/produccion-pro/internal/domain/bom"
	"github.com/tu-usuario/produccion-pro/internal/domain/repository"
)

// BatchUseCase planea lotes de producción: necesidades exactas de material
// para una cantidad fija y tamaño "óptimo" acotado por min/max.
type BatchUseCase struct {
	recipeRepo   repository.RecipeRepository
	materialRepo repository.MaterialRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(recipeRepo repository.RecipeRepository, materialRepo repository.MaterialRepository) *BatchUseCase {
	return &BatchUseCase{recipeRepo: recipeRepo, materialRepo: materialRepo}
}

// GetBatchRequirements calcula las necesidades exactas de material para
// producir quantity unidades (sin redondeo: fracciones de materia prima son
// legítimas). quantity <= 0 es entrada inválida.
func (uc *BatchUseCase) GetBatchRequirements(ctx context.Context, tenantID string, req dto.BatchRequirementsRequest) (*dto.BatchRequirementsResponse, error) {
	if req.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.Quantity <= 0 {
		return nil, domain.ErrQuantityInvalid
	}

	recipe, materials, err := loadSnapshot(ctx, uc.recipeRepo, uc.materialRepo, tenantID, req.ProductID)
	if err != nil {
		return nil, err
	}
	result := bom.ComputeBatchRequirements(recipe, materials, req.Quantity)

	resp := &dto.BatchRequirementsResponse{
		ProductID:            req.ProductID,
		Quantity:             req.Quantity,
		CanProduce:           result.CanProduce,
		MaterialRequirements: toRequirementDTOs(result.Requirements),
		TotalEstimatedCost:   result.TotalEstimatedCost,
	}
	return resp, nil
}

// GetOptimalBatchSize calcula el máximo producible acotado a
// [min_quantity, max_quantity] y sugiere tamaños de lote. Cotas inválidas
// (min < 1, max < min) son entrada inválida.
func (uc *BatchUseCase) GetOptimalBatchSize(ctx context.Context, tenantID string, req dto.OptimalBatchSizeRequest) (*dto.OptimalBatchSizeResponse, error) {
	if req.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.MinQuantity != nil && *req.MinQuantity < 1 {
		return nil, domain.ErrQuantityInvalid
	}
	if req.MaxQuantity != nil && *req.MaxQuantity < 1 {
		return nil, domain.ErrQuantityInvalid
	}
	if req.MinQuantity != nil && req.MaxQuantity != nil && *req.MaxQuantity < *req.MinQuantity {
		return nil, domain.ErrQuantityInvalid
	}

	recipe, materials, err := loadSnapshot(ctx, uc.recipeRepo, uc.materialRepo, tenantID, req.ProductID)
	if err != nil {
		return nil, err
	}
	result := bom.ComputeOptimalBatch(recipe, materials, req.MinQuantity, req.MaxQuantity)

	resp := &dto.OptimalBatchSizeResponse{
		ProductID:         req.ProductID,
		MaximumProducible: result.MaximumProducible,
		SuggestedBatches:  result.SuggestedBatches,
	}
	if result.BottleneckMaterialID != "" {
		resp.BottleneckMaterial = &dto.MaterialRefDTO{
			ID:   result.BottleneckMaterialID,
			Name: result.BottleneckMaterialName,
		}
	}
	return resp, nil
}
