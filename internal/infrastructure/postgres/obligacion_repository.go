package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.ObligacionRepository = (*ObligacionRepo)(nil)
var _ repository.PagoRepository = (*PagoRepo)(nil)

// ObligacionRepo implementación de ObligacionRepository (usable con pool o tx).
type ObligacionRepo struct {
	q Querier
}

// NewObligacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewObligacionRepository(q Querier) *ObligacionRepo {
	return &ObligacionRepo{q: q}
}

const obligacionColumns = `id, entidad, descripcion, monto_prestado, tasa_interes, plazo_meses, fecha_inicio, saldo_capital, created_at, updated_at`

// Create persiste la obligación.
func (r *ObligacionRepo) Create(oblig *entity.ObligacionFinanciera) error {
	if oblig.ID == "" {
		oblig.ID = uuid.New().String()
	}
	query := `
		INSERT INTO obligaciones (` + obligacionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		oblig.ID, oblig.Entidad, oblig.Descripcion,
		oblig.MontoPrestado, oblig.TasaInteres, oblig.PlazoMeses, oblig.FechaInicio,
		oblig.SaldoCapital, oblig.CreatedAt, oblig.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert obligacion: %w", err)
	}
	return nil
}

// GetByID obtiene la obligación por ID (nil si no existe), sin pagos.
func (r *ObligacionRepo) GetByID(id string) (*entity.ObligacionFinanciera, error) {
	query := `SELECT ` + obligacionColumns + ` FROM obligaciones WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate obtiene la obligación bloqueando la fila. Solo dentro de tx.
func (r *ObligacionRepo) GetByIDForUpdate(id string) (*entity.ObligacionFinanciera, error) {
	query := `SELECT ` + obligacionColumns + ` FROM obligaciones WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// UpdateSaldo actualiza el saldo de capital tras aplicar un pago.
func (r *ObligacionRepo) UpdateSaldo(id string, saldoCapital decimal.Decimal, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE obligaciones SET saldo_capital = $2, updated_at = $3 WHERE id = $1`,
		id, saldoCapital, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update saldo obligacion: %w", err)
	}
	return nil
}

// List lista obligaciones, más recientes primero.
func (r *ObligacionRepo) List(limit, offset int) ([]*entity.ObligacionFinanciera, error) {
	query := `SELECT ` + obligacionColumns + ` FROM obligaciones ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list obligaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.ObligacionFinanciera
	for rows.Next() {
		var o entity.ObligacionFinanciera
		if err := rows.Scan(
			&o.ID, &o.Entidad, &o.Descripcion,
			&o.MontoPrestado, &o.TasaInteres, &o.PlazoMeses, &o.FechaInicio,
			&o.SaldoCapital, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan obligacion: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

func (r *ObligacionRepo) scanOne(row pgx.Row) (*entity.ObligacionFinanciera, error) {
	var o entity.ObligacionFinanciera
	err := row.Scan(
		&o.ID, &o.Entidad, &o.Descripcion,
		&o.MontoPrestado, &o.TasaInteres, &o.PlazoMeses, &o.FechaInicio,
		&o.SaldoCapital, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obligacion: %w", err)
	}
	return &o, nil
}

// PagoRepo implementación de PagoRepository (usable con pool o tx).
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

// Create persiste un pago (append-only: no existe Update ni Delete).
func (r *PagoRepo) Create(pago *entity.Pago) error {
	if pago.ID == "" {
		pago.ID = uuid.New().String()
	}
	query := `
		INSERT INTO pagos (id, obligacion_id, fecha, valor, interes, capital, saldo_restante, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.ObligacionID, pago.Fecha,
		pago.Valor, pago.Interes, pago.Capital, pago.SaldoRestante,
		pago.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// ListByObligacionID lista los pagos en orden cronológico de registro.
func (r *PagoRepo) ListByObligacionID(obligacionID string) ([]entity.Pago, error) {
	query := `
		SELECT id, obligacion_id, fecha, valor, interes, capital, saldo_restante, created_at
		FROM pagos WHERE obligacion_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, obligacionID)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()
	var list []entity.Pago
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(
			&p.ID, &p.ObligacionID, &p.Fecha,
			&p.Valor, &p.Interes, &p.Capital, &p.SaldoRestante,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
