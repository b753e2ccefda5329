package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// CotizacionRepository define el puerto de persistencia para cotizaciones y
// sus ítems. Los ítems pertenecen exclusivamente a su cotización: se borran
// con ella y se reemplazan completos en cada edición.
type CotizacionRepository interface {
	Create(cot *entity.Cotizacion) error
	CreateItem(item *entity.CotizacionItem) error
	// Update reescribe cabecera y campos derivados; no toca los ítems.
	Update(cot *entity.Cotizacion) error
	DeleteItems(cotizacionID string) error
	GetByID(id string) (*entity.Cotizacion, error)
	// GetByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE). Solo tiene
	// sentido dentro de una transacción; serializa la conciliación de
	// facturas contra la misma cotización.
	GetByIDForUpdate(id string) (*entity.Cotizacion, error)
	GetItemsByCotizacionID(cotizacionID string) ([]*entity.CotizacionItem, error)
	List(limit, offset int) ([]*entity.Cotizacion, error)
}
