package repository

import (
	"context"

	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// MaterialRepository define el puerto de lectura de materiales (DIP).
// El motor de producción solo lee snapshots; nunca escribe stock.
type MaterialRepository interface {
	// GetByID devuelve el material o nil si no existe para el tenant.
	GetByID(ctx context.Context, tenantID, materialID string) (*entity.Material, error)

	// ListByTenant devuelve todos los materiales del tenant.
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Material, error)

	// ListByIDs devuelve los materiales indicados del tenant, indexados por id.
	// IDs inexistentes simplemente no aparecen en el mapa.
	ListByIDs(ctx context.Context, tenantID string, materialIDs []string) (map[string]*entity.Material, error)
}
