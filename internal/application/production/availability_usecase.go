// Package production contiene los casos de uso del motor de restricciones de
// producción: disponibilidad, planeación de lotes y planes multi-producto.
//
// Los casos de uso resuelven snapshots tenant-scoped vía repositorios y delegan
// toda la aritmética en el paquete puro internal/domain/bom. Ninguno muta
// stock: los resultados son consultivos y el caller no debe tratarlos como
// reservas (el stock puede cambiar entre el cálculo y cualquier descuento).
package production

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/domain/bom"
	"github.com/tu-usuario/produccion-pro/internal/domain/repository"
)

// Estados de stock para la capacidad de producción.
const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// bulkWorkers acota el fan-out de goroutines del cálculo masivo.
const bulkWorkers = 8

// AvailabilityUseCase calcula la capacidad de producción de productos con BOM.
type AvailabilityUseCase struct {
	recipeRepo   repository.RecipeRepository
	materialRepo repository.MaterialRepository
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(recipeRepo repository.RecipeRepository, materialRepo repository.MaterialRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{recipeRepo: recipeRepo, materialRepo: materialRepo}
}

// GetAvailability calcula cuántas unidades del producto pueden producirse con
// el stock actual. Sin receta activa o sin componentes: 0 unidades, sin cuello
// de botella (no es un error).
func (uc *AvailabilityUseCase) GetAvailability(ctx context.Context, tenantID, productID string) (*dto.AvailabilityResponse, error) {
	recipe, materials, err := loadSnapshot(ctx, uc.recipeRepo, uc.materialRepo, tenantID, productID)
	if err != nil {
		return nil, err
	}
	result := bom.ComputeAvailability(recipe, materials)
	return toAvailabilityResponse(productID, result), nil
}

// GetBulkAvailability ejecuta el cálculo de disponibilidad por producto de
// forma independiente, con fan-out de goroutines acotado y resultados
// fusionados en el orden del request. Un fallo en un producto (p. ej. no
// gestionado por BOM) se reporta en su entrada y no aborta el lote.
func (uc *AvailabilityUseCase) GetBulkAvailability(ctx context.Context, tenantID string, productIDs []string) (*dto.BulkAvailabilityResponse, error) {
	resp := &dto.BulkAvailabilityResponse{
		RequestID: uuid.New().String(),
		Results:   make([]dto.BulkAvailabilityEntry, len(productIDs)),
	}

	sem := make(chan struct{}, bulkWorkers)
	done := make(chan struct{})
	for i, productID := range productIDs {
		i, productID := i, productID
		sem <- struct{}{}
		go func() {
			defer func() {
				<-sem
				done <- struct{}{}
			}()
			entry := dto.BulkAvailabilityEntry{ProductID: productID}
			result, err := uc.GetAvailability(ctx, tenantID, productID)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Result = result
			}
			resp.Results[i] = entry
		}()
	}
	for range productIDs {
		<-done
	}
	return resp, nil
}

// GetProductionCapacity devuelve la disponibilidad más el estado de stock:
//
//	out_of_stock: 0 unidades producibles
//	low_stock:    producible, pero algún material en o bajo su nivel de reorden
//	in_stock:     el resto
func (uc *AvailabilityUseCase) GetProductionCapacity(ctx context.Context, tenantID, productID string) (*dto.ProductionCapacityResponse, error) {
	recipe, materials, err := loadSnapshot(ctx, uc.recipeRepo, uc.materialRepo, tenantID, productID)
	if err != nil {
		return nil, err
	}
	result := bom.ComputeAvailability(recipe, materials)

	status := StockStatusOutOfStock
	if result.AvailableQuantity > 0 {
		status = StockStatusInStock
		for _, c := range result.Components {
			m := materials[c.MaterialID]
			if m != nil && m.StockQuantity.LessThanOrEqual(m.ReorderLevel) {
				status = StockStatusLowStock
				break
			}
		}
	}

	avail := toAvailabilityResponse(productID, result)
	return &dto.ProductionCapacityResponse{
		ProductID:          productID,
		AvailableQuantity:  result.AvailableQuantity,
		CanProduce:         result.AvailableQuantity > 0,
		StockStatus:        status,
		BottleneckMaterial: avail.BottleneckMaterial,
		ComponentsStatus:   avail.Components,
	}, nil
}

// toAvailabilityResponse mapea el resultado del motor al DTO de respuesta.
func toAvailabilityResponse(productID string, result bom.AvailabilityResult) *dto.AvailabilityResponse {
	resp := &dto.AvailabilityResponse{
		ProductID:         productID,
		AvailableQuantity: result.AvailableQuantity,
		Components:        make([]dto.ComponentStatusDTO, 0, len(result.Components)),
	}
	if result.HasBottleneck() {
		resp.BottleneckMaterial = &dto.MaterialRefDTO{
			ID:   result.BottleneckMaterialID,
			Name: result.BottleneckMaterialName,
		}
	}
	for _, c := range result.Components {
		resp.Components = append(resp.Components, dto.ComponentStatusDTO{
			MaterialID:        c.MaterialID,
			MaterialName:      c.MaterialName,
			Unit:              c.Unit,
			QuantityRequired:  c.QuantityRequired,
			WastePercentage:   c.WastePercentage,
			EffectiveQuantity: c.EffectiveQuantity,
			CurrentStock:      c.CurrentStock,
			AvailableUnits:    c.AvailableUnits,
			Constraining:      c.Constraining,
		})
	}
	return resp
}
