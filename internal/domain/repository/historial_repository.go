package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// HistorialRepository define el puerto de persistencia para el historial de
// cotizaciones. Append-only: no hay Update ni Delete.
type HistorialRepository interface {
	Create(entrada *entity.Historial) error
	ListByCotizacionID(cotizacionID string) ([]entity.Historial, error)
}
