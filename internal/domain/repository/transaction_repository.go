package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// TransactionRepository define el puerto de lectura del log de transacciones
// de inventario. El log es append-only y externo; aquí solo se lee una ventana
// acotada de tiempo para el pronóstico de consumo.
type TransactionRepository interface {
	// ListByMaterialSince devuelve las transacciones de un material desde
	// la fecha indicada, ordenadas por created_at ascendente.
	ListByMaterialSince(ctx context.Context, tenantID, materialID string, since time.Time) ([]entity.InventoryTransaction, error)

	// ListByTenantSince devuelve las transacciones de todos los materiales del
	// tenant desde la fecha indicada, indexadas por material_id.
	ListByTenantSince(ctx context.Context, tenantID string, since time.Time) (map[string][]entity.InventoryTransaction, error)
}
