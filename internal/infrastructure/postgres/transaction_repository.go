package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
	"github.com/tu-usuario/produccion-pro/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL.
// El log de inventory_transactions es append-only; aquí solo se lee una
// ventana acotada para el pronóstico de consumo.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, tenant_id, material_id, type, quantity_change, reason, created_by, created_at`

// ListByMaterialSince devuelve las transacciones de un material desde la fecha
// indicada, ordenadas por created_at ascendente.
func (r *TransactionRepo) ListByMaterialSince(ctx context.Context, tenantID, materialID string, since time.Time) ([]entity.InventoryTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM inventory_transactions
		WHERE tenant_id = $1 AND material_id = $2 AND created_at >= $3
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, tenantID, materialID, since)
	if err != nil {
		return nil, fmt.Errorf("list transactions by material: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(
			&t.ID, &t.TenantID, &t.MaterialID, &t.Type,
			&t.QuantityChange, &t.Reason, &t.CreatedBy, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListByTenantSince devuelve las transacciones de todos los materiales del
// tenant desde la fecha indicada, indexadas por material_id.
func (r *TransactionRepo) ListByTenantSince(ctx context.Context, tenantID string, since time.Time) (map[string][]entity.InventoryTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM inventory_transactions
		WHERE tenant_id = $1 AND created_at >= $2
		ORDER BY material_id, created_at`
	rows, err := r.q.Query(ctx, query, tenantID, since)
	if err != nil {
		return nil, fmt.Errorf("list transactions by tenant: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]entity.InventoryTransaction)
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(
			&t.ID, &t.TenantID, &t.MaterialID, &t.Type,
			&t.QuantityChange, &t.Reason, &t.CreatedBy, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		result[t.MaterialID] = append(result[t.MaterialID], t)
	}
	return result, rows.Err()
}
