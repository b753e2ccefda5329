package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository (usable con pool o tx).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

// Create persiste la factura.
func (r *FacturaRepo) Create(factura *entity.Factura) error {
	if factura.ID == "" {
		factura.ID = uuid.New().String()
	}
	query := `
		INSERT INTO facturas (id, cotizacion_id, numero, fecha, valor_facturado, saldo_pendiente, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		factura.ID, nullIfEmpty(factura.CotizacionID), factura.Numero, factura.Fecha,
		factura.ValorFacturado, factura.SaldoPendiente, factura.Estado,
		factura.CreatedAt, factura.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("numero de factura ya existe: %w", err)
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID (nil si no existe).
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	query := `
		SELECT id, COALESCE(cotizacion_id, ''), numero, fecha, valor_facturado, saldo_pendiente, estado, created_at, updated_at
		FROM facturas WHERE id = $1`
	var f entity.Factura
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.CotizacionID, &f.Numero, &f.Fecha,
		&f.ValorFacturado, &f.SaldoPendiente, &f.Estado,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return &f, nil
}

// ListByCotizacionID lista las facturas de la cotización en orden de creación.
func (r *FacturaRepo) ListByCotizacionID(cotizacionID string) ([]entity.Factura, error) {
	query := `
		SELECT id, COALESCE(cotizacion_id, ''), numero, fecha, valor_facturado, saldo_pendiente, estado, created_at, updated_at
		FROM facturas WHERE cotizacion_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, cotizacionID)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []entity.Factura
	for rows.Next() {
		var f entity.Factura
		if err := rows.Scan(
			&f.ID, &f.CotizacionID, &f.Numero, &f.Fecha,
			&f.ValorFacturado, &f.SaldoPendiente, &f.Estado,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// List lista facturas, más recientes primero.
func (r *FacturaRepo) List(limit, offset int) ([]*entity.Factura, error) {
	query := `
		SELECT id, COALESCE(cotizacion_id, ''), numero, fecha, valor_facturado, saldo_pendiente, estado, created_at, updated_at
		FROM facturas ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factura
	for rows.Next() {
		var f entity.Factura
		if err := rows.Scan(
			&f.ID, &f.CotizacionID, &f.Numero, &f.Fecha,
			&f.ValorFacturado, &f.SaldoPendiente, &f.Estado,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
