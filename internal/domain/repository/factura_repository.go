package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// FacturaRepository define el puerto de persistencia para facturas.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	GetByID(id string) (*entity.Factura, error)
	// ListByCotizacionID devuelve las facturas que referencian la cotización,
	// en orden de creación (insumo del conciliador de saldos).
	ListByCotizacionID(cotizacionID string) ([]entity.Factura, error)
	List(limit, offset int) ([]*entity.Factura, error)
}
