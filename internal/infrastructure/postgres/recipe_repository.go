package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/produccion-pro/internal/domain"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
	"github.com/tu-usuario/produccion-pro/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL.
// Devuelve recetas con componentes pre-cargados (snapshot completo en dos
// consultas) para que el motor nunca toque la base durante el cálculo.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// GetActiveByProduct devuelve la receta activa del producto con componentes,
// nil si el producto no tiene receta activa, domain.ErrNotFound si el producto
// no existe para el tenant y domain.ErrNotBOMManaged si no se gestiona por BOM.
func (r *RecipeRepo) GetActiveByProduct(ctx context.Context, tenantID, productID string) (*entity.Recipe, error) {
	var bomManaged bool
	err := r.q.QueryRow(ctx,
		`SELECT manage_stock_by_bom FROM products WHERE tenant_id = $1 AND id = $2`,
		tenantID, productID,
	).Scan(&bomManaged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !bomManaged {
		return nil, domain.ErrNotBOMManaged
	}

	query := `
		SELECT id, tenant_id, product_id, name, yield_quantity, yield_unit, is_active, created_at, updated_at
		FROM recipes
		WHERE tenant_id = $1 AND product_id = $2 AND is_active = true`
	var recipe entity.Recipe
	err = r.q.QueryRow(ctx, query, tenantID, productID).Scan(
		&recipe.ID, &recipe.TenantID, &recipe.ProductID, &recipe.Name,
		&recipe.YieldQuantity, &recipe.YieldUnit, &recipe.IsActive,
		&recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // sin receta activa: estado válido
		}
		return nil, fmt.Errorf("get active recipe: %w", err)
	}

	components, err := r.listComponents(ctx, []string{recipe.ID})
	if err != nil {
		return nil, err
	}
	recipe.Components = components[recipe.ID]
	return &recipe, nil
}

// ListActiveByProducts devuelve las recetas activas de varios productos con
// componentes pre-cargados, indexadas por product_id.
func (r *RecipeRepo) ListActiveByProducts(ctx context.Context, tenantID string, productIDs []string) (map[string]*entity.Recipe, error) {
	result := make(map[string]*entity.Recipe, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT id, tenant_id, product_id, name, yield_quantity, yield_unit, is_active, created_at, updated_at
		FROM recipes
		WHERE tenant_id = $1 AND product_id = ANY($2) AND is_active = true`
	rows, err := r.q.Query(ctx, query, tenantID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list active recipes: %w", err)
	}
	defer rows.Close()

	recipeIDs := make([]string, 0, len(productIDs))
	for rows.Next() {
		var recipe entity.Recipe
		if err := rows.Scan(
			&recipe.ID, &recipe.TenantID, &recipe.ProductID, &recipe.Name,
			&recipe.YieldQuantity, &recipe.YieldUnit, &recipe.IsActive,
			&recipe.CreatedAt, &recipe.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		result[recipe.ProductID] = &recipe
		recipeIDs = append(recipeIDs, recipe.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	components, err := r.listComponents(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	for _, recipe := range result {
		recipe.Components = components[recipe.ID]
	}
	return result, nil
}

// listComponents carga los componentes de varias recetas en una sola consulta,
// indexados por recipe_id y ordenados por material_id (determinismo).
func (r *RecipeRepo) listComponents(ctx context.Context, recipeIDs []string) (map[string][]entity.RecipeComponent, error) {
	result := make(map[string][]entity.RecipeComponent, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT recipe_id, material_id, quantity_required, waste_percentage
		FROM recipe_components
		WHERE recipe_id = ANY($1)
		ORDER BY recipe_id, material_id`
	rows, err := r.q.Query(ctx, query, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("list recipe components: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c entity.RecipeComponent
		if err := rows.Scan(&c.RecipeID, &c.MaterialID, &c.QuantityRequired, &c.WastePercentage); err != nil {
			return nil, fmt.Errorf("scan recipe component: %w", err)
		}
		result[c.RecipeID] = append(result[c.RecipeID], c)
	}
	return result, rows.Err()
}
