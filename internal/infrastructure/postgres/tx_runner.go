package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gestion-pro/internal/application/cotizaciones"
	"github.com/tu-usuario/gestion-pro/internal/application/facturacion"
	"github.com/tu-usuario/gestion-pro/internal/application/finanzas"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos de transacción de cada caso de uso.
var _ cotizaciones.TxRunner = (*TxRunner)(nil)
var _ facturacion.TxRunner = (*TxRunner)(nil)
var _ finanzas.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCotizaciones corre fn con repos de cotizaciones e historial atados a
// una transacción: cabecera, ítems e historial se escriben juntos o nada
// (si falla la segunda escritura, la primera se revierte).
func (r *TxRunner) RunCotizaciones(ctx context.Context, fn func(
	cotRepo repository.CotizacionRepository,
	histRepo repository.HistorialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCotizacionRepository(tx), NewHistorialRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFacturacion corre fn con repos de cotizaciones y facturas atados a una
// transacción (conciliación leer-validar-escribir).
func (r *TxRunner) RunFacturacion(ctx context.Context, fn func(
	cotRepo repository.CotizacionRepository,
	facturaRepo repository.FacturaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCotizacionRepository(tx), NewFacturaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFinanzas corre fn con repos de obligaciones y pagos atados a una
// transacción (registro de pago + actualización de saldo).
func (r *TxRunner) RunFinanzas(ctx context.Context, fn func(
	obligRepo repository.ObligacionRepository,
	pagoRepo repository.PagoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewObligacionRepository(tx), NewPagoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
