package facturacion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	domfact "github.com/tu-usuario/gestion-pro/internal/domain/facturacion"
	"github.com/tu-usuario/gestion-pro/internal/domain/money"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

const fechaISO = "2006-01-02"

// FacturaUseCase crea y consulta facturas, conciliando contra el saldo de la
// cotización antes de escribir.
type FacturaUseCase struct {
	txRunner    TxRunner
	facturaRepo repository.FacturaRepository
	cotRepo     repository.CotizacionRepository
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(txRunner TxRunner, facturaRepo repository.FacturaRepository, cotRepo repository.CotizacionRepository) *FacturaUseCase {
	return &FacturaUseCase{txRunner: txRunner, facturaRepo: facturaRepo, cotRepo: cotRepo}
}

// Crear crea una factura. Con cotización: dentro de una transacción se
// bloquea la fila de la cotización, se suman las facturas existentes y se
// valida el saldo; si el candidato no cabe, la operación falla con
// SobrefacturacionError y no se escribe nada. Sin cotización es una factura
// manual y se inserta directo.
func (uc *FacturaUseCase) Crear(ctx context.Context, in dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	if !in.ValorFacturado.GreaterThan(decimal.Zero) {
		return nil, &domain.ValidacionError{Campo: "valor_facturado", Mensaje: "debe ser mayor que cero"}
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	numero := in.Numero
	if numero == "" {
		numero = fmt.Sprintf("FV-%d", now.Unix())
	}
	factura := &entity.Factura{
		ID:             uuid.New().String(),
		CotizacionID:   in.CotizacionID,
		Numero:         numero,
		Fecha:          fecha,
		ValorFacturado: money.Round2(in.ValorFacturado),
		SaldoPendiente: money.Round2(in.ValorFacturado), // sin pagos aplicados aún
		Estado:         entity.FacturaPendiente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if in.CotizacionID == "" {
		// Factura manual: no hay cotización que conciliar.
		if err := uc.facturaRepo.Create(factura); err != nil {
			return nil, err
		}
		return toResponse(factura), nil
	}

	err = uc.txRunner.RunFacturacion(ctx, func(cotRepo repository.CotizacionRepository, facturaRepo repository.FacturaRepository) error {
		cot, err := cotRepo.GetByIDForUpdate(in.CotizacionID)
		if err != nil {
			return err
		}
		if cot == nil {
			return domain.ErrNotFound
		}
		existentes, err := facturaRepo.ListByCotizacionID(in.CotizacionID)
		if err != nil {
			return err
		}
		if err := domfact.ValidarSaldo(cot.Total, existentes, "", factura.ValorFacturado); err != nil {
			return err
		}
		return facturaRepo.Create(factura)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(factura), nil
}

// Get obtiene una factura por ID.
func (uc *FacturaUseCase) Get(ctx context.Context, id string) (*dto.FacturaResponse, error) {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(factura), nil
}

// ListPorCotizacion lista las facturas de una cotización con el saldo aún
// facturable.
func (uc *FacturaUseCase) ListPorCotizacion(ctx context.Context, cotizacionID string) ([]dto.FacturaResponse, decimal.Decimal, error) {
	cot, err := uc.cotRepo.GetByID(cotizacionID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if cot == nil {
		return nil, decimal.Zero, domain.ErrNotFound
	}
	facturas, err := uc.facturaRepo.ListByCotizacionID(cotizacionID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for i := range facturas {
		out = append(out, *toResponse(&facturas[i]))
	}
	return out, domfact.Saldo(cot.Total, facturas, ""), nil
}

// List lista facturas.
func (uc *FacturaUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.FacturaResponse, error) {
	page.DefaultPage()
	facturas, err := uc.facturaRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, *toResponse(f))
	}
	return out, nil
}

func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(fechaISO, s)
	if err != nil {
		return time.Time{}, &domain.ValidacionError{Campo: "fecha", Mensaje: "formato esperado YYYY-MM-DD"}
	}
	return t, nil
}

func toResponse(f *entity.Factura) *dto.FacturaResponse {
	return &dto.FacturaResponse{
		ID:             f.ID,
		CotizacionID:   f.CotizacionID,
		Numero:         f.Numero,
		Fecha:          f.Fecha.Format(fechaISO),
		ValorFacturado: f.ValorFacturado,
		SaldoPendiente: f.SaldoPendiente,
		Estado:         f.Estado,
	}
}
