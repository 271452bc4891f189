package repository

import (
	"context"

	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// RecipeRepository define el puerto de lectura de recetas (BOM activas).
type RecipeRepository interface {
	// GetActiveByProduct devuelve la receta activa del producto con sus
	// componentes pre-cargados, o nil si el producto no tiene receta activa
	// (estado válido: el motor lo trata como "sin materiales = sin stock").
	// Errores: domain.ErrNotFound si el producto no existe para el tenant,
	// domain.ErrNotBOMManaged si el producto no se gestiona por BOM.
	GetActiveByProduct(ctx context.Context, tenantID, productID string) (*entity.Recipe, error)

	// ListActiveByProducts devuelve las recetas activas de varios productos,
	// indexadas por product_id. Productos sin receta activa no aparecen.
	ListActiveByProducts(ctx context.Context, tenantID string, productIDs []string) (map[string]*entity.Recipe, error)
}
