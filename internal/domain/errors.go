package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrForbidden       = errors.New("acceso denegado")
	ErrNotBOMManaged   = errors.New("producto sin gestión por lista de materiales")
	ErrQuantityInvalid = errors.New("cantidad solicitada inválida")
)
