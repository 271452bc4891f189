package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
	"github.com/tu-usuario/produccion-pro/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL
// (usable con pool o tx). Solo lecturas: el motor nunca escribe stock.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, tenant_id, sku, name, stock_quantity, reorder_level, unit_cost, unit, created_at, updated_at`

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.TenantID, &m.SKU, &m.Name,
		&m.StockQuantity, &m.ReorderLevel, &m.UnitCost, &m.Unit,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID devuelve el material del tenant o nil si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, tenantID, materialID string) (*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials WHERE tenant_id = $1 AND id = $2`
	m, err := scanMaterial(r.q.QueryRow(ctx, query, tenantID, materialID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// ListByTenant devuelve todos los materiales del tenant ordenados por nombre.
func (r *MaterialRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials WHERE tenant_id = $1
		ORDER BY name, id`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(
			&m.ID, &m.TenantID, &m.SKU, &m.Name,
			&m.StockQuantity, &m.ReorderLevel, &m.UnitCost, &m.Unit,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByIDs devuelve los materiales indicados indexados por id. IDs que no
// existen para el tenant simplemente no aparecen en el mapa.
func (r *MaterialRepo) ListByIDs(ctx context.Context, tenantID string, materialIDs []string) (map[string]*entity.Material, error) {
	result := make(map[string]*entity.Material, len(materialIDs))
	if len(materialIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT ` + materialColumns + `
		FROM materials WHERE tenant_id = $1 AND id = ANY($2)`
	rows, err := r.q.Query(ctx, query, tenantID, materialIDs)
	if err != nil {
		return nil, fmt.Errorf("list materials by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(
			&m.ID, &m.TenantID, &m.SKU, &m.Name,
			&m.StockQuantity, &m.ReorderLevel, &m.UnitCost, &m.Unit,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		result[m.ID] = &m
	}
	return result, rows.Err()
}
