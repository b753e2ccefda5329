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

var _ repository.CotizacionRepository = (*CotizacionRepo)(nil)

// CotizacionRepo implementación de CotizacionRepository (usable con pool o tx).
// El par Insert/Scan de este archivo es el único mapeo entre los nombres
// snake_case del store y el modelo de dominio: no se replica en otra parte.
type CotizacionRepo struct {
	q Querier
}

// NewCotizacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCotizacionRepository(q Querier) *CotizacionRepo {
	return &CotizacionRepo{q: q}
}

const cotizacionColumns = `id, cliente_id, descripcion,
	modo_descuento, descuento_valor, descuento_porcentaje, impuesto_porcentaje,
	aiu_admin_porcentaje, aiu_imprevisto_porcentaje, aiu_utilidad_porcentaje, iva_utilidad_porcentaje,
	subtotal, iva, aiu_admin, aiu_imprevistos, aiu_utilidad, iva_utilidad, total,
	estado, progreso, created_at, updated_at`

// Create persiste la cabecera de la cotización con todos sus derivados.
func (r *CotizacionRepo) Create(cot *entity.Cotizacion) error {
	if cot.ID == "" {
		cot.ID = uuid.New().String()
	}
	query := `
		INSERT INTO cotizaciones (` + cotizacionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		cot.ID, cot.ClienteID, cot.Descripcion,
		nullIfEmpty(cot.ModoDescuento), cot.DescuentoValor, cot.DescuentoPorcentaje, cot.ImpuestoPorcentaje,
		cot.AIUAdminPorcentaje, cot.AIUImprevistoPorcentaje, cot.AIUUtilidadPorcentaje, cot.IVAUtilidadPorcentaje,
		cot.Subtotal, cot.IVA, cot.AIUAdmin, cot.AIUImprevistos, cot.AIUUtilidad, cot.IVAUtilidad, cot.Total,
		cot.Estado, cot.Progreso, cot.CreatedAt, cot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cotizacion: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la cotización.
func (r *CotizacionRepo) CreateItem(item *entity.CotizacionItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO cotizacion_items (id, cotizacion_id, posicion, descripcion, cantidad, valor_unitario,
			modo_descuento, descuento_valor, descuento_porcentaje, impuesto,
			aiu_admin_porcentaje, aiu_imprevisto_porcentaje, aiu_utilidad_porcentaje, iva_utilidad_porcentaje,
			valor_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CotizacionID, item.Posicion, item.Descripcion, item.Cantidad, item.ValorUnitario,
		nullIfEmpty(item.ModoDescuento), item.DescuentoValor, item.DescuentoPorcentaje, item.Impuesto,
		item.AIUAdminPorcentaje, item.AIUImprevistoPorcentaje, item.AIUUtilidadPorcentaje, item.IVAUtilidadPorcentaje,
		item.ValorTotal,
	)
	if err != nil {
		return fmt.Errorf("insert cotizacion item: %w", err)
	}
	return nil
}

// Update reescribe cabecera y derivados; los ítems se manejan aparte.
func (r *CotizacionRepo) Update(cot *entity.Cotizacion) error {
	query := `
		UPDATE cotizaciones
		SET descripcion = $2,
		    modo_descuento = $3,
		    descuento_valor = $4,
		    descuento_porcentaje = $5,
		    impuesto_porcentaje = $6,
		    aiu_admin_porcentaje = $7,
		    aiu_imprevisto_porcentaje = $8,
		    aiu_utilidad_porcentaje = $9,
		    iva_utilidad_porcentaje = $10,
		    subtotal = $11,
		    iva = $12,
		    aiu_admin = $13,
		    aiu_imprevistos = $14,
		    aiu_utilidad = $15,
		    iva_utilidad = $16,
		    total = $17,
		    estado = $18,
		    progreso = $19,
		    updated_at = $20
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cot.ID, cot.Descripcion,
		nullIfEmpty(cot.ModoDescuento), cot.DescuentoValor, cot.DescuentoPorcentaje, cot.ImpuestoPorcentaje,
		cot.AIUAdminPorcentaje, cot.AIUImprevistoPorcentaje, cot.AIUUtilidadPorcentaje, cot.IVAUtilidadPorcentaje,
		cot.Subtotal, cot.IVA, cot.AIUAdmin, cot.AIUImprevistos, cot.AIUUtilidad, cot.IVAUtilidad, cot.Total,
		cot.Estado, cot.Progreso, cot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cotizacion: %w", err)
	}
	return nil
}

// DeleteItems borra todas las líneas de la cotización (reemplazo completo en
// ediciones; los ítems no sobreviven a su cotización).
func (r *CotizacionRepo) DeleteItems(cotizacionID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cotizacion_items WHERE cotizacion_id = $1`, cotizacionID)
	if err != nil {
		return fmt.Errorf("delete cotizacion items: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera por ID (nil si no existe).
func (r *CotizacionRepo) GetByID(id string) (*entity.Cotizacion, error) {
	query := `SELECT ` + cotizacionColumns + ` FROM cotizaciones WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate obtiene la cabecera bloqueando la fila. Solo dentro de tx.
func (r *CotizacionRepo) GetByIDForUpdate(id string) (*entity.Cotizacion, error) {
	query := `SELECT ` + cotizacionColumns + ` FROM cotizaciones WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetItemsByCotizacionID obtiene las líneas en orden de inserción.
func (r *CotizacionRepo) GetItemsByCotizacionID(cotizacionID string) ([]*entity.CotizacionItem, error) {
	query := `
		SELECT id, cotizacion_id, posicion, descripcion, cantidad, valor_unitario,
		       COALESCE(modo_descuento, ''), descuento_valor, descuento_porcentaje, impuesto,
		       aiu_admin_porcentaje, aiu_imprevisto_porcentaje, aiu_utilidad_porcentaje, iva_utilidad_porcentaje,
		       valor_total
		FROM cotizacion_items WHERE cotizacion_id = $1 ORDER BY posicion`
	rows, err := r.q.Query(context.Background(), query, cotizacionID)
	if err != nil {
		return nil, fmt.Errorf("list cotizacion items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CotizacionItem
	for rows.Next() {
		var it entity.CotizacionItem
		if err := rows.Scan(
			&it.ID, &it.CotizacionID, &it.Posicion, &it.Descripcion, &it.Cantidad, &it.ValorUnitario,
			&it.ModoDescuento, &it.DescuentoValor, &it.DescuentoPorcentaje, &it.Impuesto,
			&it.AIUAdminPorcentaje, &it.AIUImprevistoPorcentaje, &it.AIUUtilidadPorcentaje, &it.IVAUtilidadPorcentaje,
			&it.ValorTotal,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List lista cabeceras, más recientes primero.
func (r *CotizacionRepo) List(limit, offset int) ([]*entity.Cotizacion, error) {
	query := `SELECT ` + cotizacionColumns + ` FROM cotizaciones ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cotizacion
	for rows.Next() {
		cot, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, cot)
	}
	return list, rows.Err()
}

func (r *CotizacionRepo) scanOne(row pgx.Row) (*entity.Cotizacion, error) {
	cot, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cot, nil
}

func (r *CotizacionRepo) scanRow(row pgx.Row) (*entity.Cotizacion, error) {
	var cot entity.Cotizacion
	var modo *string
	err := row.Scan(
		&cot.ID, &cot.ClienteID, &cot.Descripcion,
		&modo, &cot.DescuentoValor, &cot.DescuentoPorcentaje, &cot.ImpuestoPorcentaje,
		&cot.AIUAdminPorcentaje, &cot.AIUImprevistoPorcentaje, &cot.AIUUtilidadPorcentaje, &cot.IVAUtilidadPorcentaje,
		&cot.Subtotal, &cot.IVA, &cot.AIUAdmin, &cot.AIUImprevistos, &cot.AIUUtilidad, &cot.IVAUtilidad, &cot.Total,
		&cot.Estado, &cot.Progreso, &cot.CreatedAt, &cot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan cotizacion: %w", err)
	}
	if modo != nil {
		cot.ModoDescuento = *modo
	}
	return &cot, nil
}
