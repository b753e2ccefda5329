package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.HistorialRepository = (*HistorialRepo)(nil)

// HistorialRepo implementación de HistorialRepository (usable con pool o tx).
// La tabla es append-only: este adaptador no expone Update ni Delete.
type HistorialRepo struct {
	q Querier
}

// NewHistorialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistorialRepository(q Querier) *HistorialRepo {
	return &HistorialRepo{q: q}
}

// Create persiste una entrada de historial.
func (r *HistorialRepo) Create(entrada *entity.Historial) error {
	if entrada.ID == "" {
		entrada.ID = uuid.New().String()
	}
	query := `
		INSERT INTO historial_cotizaciones (id, cotizacion_id, fecha, tipo, descripcion, valor_anterior, valor_nuevo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entrada.ID, entrada.CotizacionID, entrada.Fecha, entrada.Tipo,
		entrada.Descripcion, nullIfEmpty(entrada.ValorAnterior), nullIfEmpty(entrada.ValorNuevo),
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// ListByCotizacionID lista el historial en orden cronológico.
func (r *HistorialRepo) ListByCotizacionID(cotizacionID string) ([]entity.Historial, error) {
	query := `
		SELECT id, cotizacion_id, fecha, tipo, descripcion, COALESCE(valor_anterior, ''), COALESCE(valor_nuevo, '')
		FROM historial_cotizaciones WHERE cotizacion_id = $1 ORDER BY fecha, id`
	rows, err := r.q.Query(context.Background(), query, cotizacionID)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()
	var list []entity.Historial
	for rows.Next() {
		var h entity.Historial
		if err := rows.Scan(&h.ID, &h.CotizacionID, &h.Fecha, &h.Tipo, &h.Descripcion, &h.ValorAnterior, &h.ValorNuevo); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}
