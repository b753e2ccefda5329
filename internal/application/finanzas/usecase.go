package finanzas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/amortizacion"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/money"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

const fechaISO = "2006-01-02"

// ObligacionUseCase administra obligaciones financieras: alta, registro de
// pagos y proyección de la tabla de amortización.
type ObligacionUseCase struct {
	txRunner  TxRunner
	obligRepo repository.ObligacionRepository
	pagoRepo  repository.PagoRepository
}

// NewObligacionUseCase construye el caso de uso.
func NewObligacionUseCase(txRunner TxRunner, obligRepo repository.ObligacionRepository, pagoRepo repository.PagoRepository) *ObligacionUseCase {
	return &ObligacionUseCase{txRunner: txRunner, obligRepo: obligRepo, pagoRepo: pagoRepo}
}

// Crear registra una obligación nueva. El saldo de capital arranca igual al
// monto prestado.
func (uc *ObligacionUseCase) Crear(ctx context.Context, in dto.CrearObligacionRequest) (*dto.ObligacionResponse, error) {
	if !in.MontoPrestado.GreaterThan(decimal.Zero) {
		return nil, &domain.ValidacionError{Campo: "monto_prestado", Mensaje: "debe ser mayor que cero"}
	}
	if in.PlazoMeses <= 0 {
		return nil, &domain.ValidacionError{Campo: "plazo_meses", Mensaje: "debe ser mayor que cero"}
	}
	if in.TasaInteres.LessThan(decimal.Zero) {
		return nil, &domain.ValidacionError{Campo: "tasa_interes", Mensaje: "no puede ser negativa"}
	}
	fechaInicio, err := parseFecha(in.FechaInicio)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	oblig := &entity.ObligacionFinanciera{
		ID:            uuid.New().String(),
		Entidad:       in.Entidad,
		Descripcion:   in.Descripcion,
		MontoPrestado: money.Round2(in.MontoPrestado),
		TasaInteres:   in.TasaInteres,
		PlazoMeses:    in.PlazoMeses,
		FechaInicio:   fechaInicio,
		SaldoCapital:  money.Round2(in.MontoPrestado),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.obligRepo.Create(oblig); err != nil {
		return nil, err
	}
	return toResponse(oblig), nil
}

// RegistrarPago aplica un abono a la obligación. Si el caller no trae la
// descomposición interés/capital, el interés se deriva del saldo vigente por
// la tasa periódica y el capital es el resto del valor pagado. Pago y
// actualización del saldo van en la misma transacción, con la fila bloqueada.
func (uc *ObligacionUseCase) RegistrarPago(ctx context.Context, obligacionID string, in dto.RegistrarPagoRequest) (*dto.ObligacionResponse, error) {
	if !in.Valor.GreaterThan(decimal.Zero) {
		return nil, &domain.ValidacionError{Campo: "valor", Mensaje: "debe ser mayor que cero"}
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunFinanzas(ctx, func(obligRepo repository.ObligacionRepository, pagoRepo repository.PagoRepository) error {
		oblig, err := obligRepo.GetByIDForUpdate(obligacionID)
		if err != nil {
			return err
		}
		if oblig == nil {
			return domain.ErrNotFound
		}

		saldo := oblig.SaldoCapital
		valor := money.Round2(in.Valor)
		var interes decimal.Decimal
		if in.Interes != nil {
			interes = money.Round2(*in.Interes)
		} else {
			interes = money.Round2(saldo.Mul(oblig.TasaInteres))
		}
		var capital decimal.Decimal
		if in.Capital != nil {
			capital = money.Round2(*in.Capital)
		} else {
			capital = money.Round2(valor.Sub(interes))
		}
		if capital.LessThan(decimal.Zero) {
			capital = decimal.Zero
		}
		if capital.GreaterThan(saldo) {
			// Captura manual con artefactos de redondeo: se acepta el pago,
			// el saldo queda en cero.
			log.Warn().
				Str("obligacion_id", obligacionID).
				Str("capital", money.FormatCOP(capital)).
				Str("saldo", money.FormatCOP(saldo)).
				Msg("pago con capital mayor al saldo de la obligación")
		}
		saldoRestante := money.Round2(saldo.Sub(capital))
		if saldoRestante.LessThan(decimal.Zero) {
			saldoRestante = decimal.Zero
		}

		pago := &entity.Pago{
			ID:            uuid.New().String(),
			ObligacionID:  obligacionID,
			Fecha:         fecha,
			Valor:         valor,
			Interes:       interes,
			Capital:       capital,
			SaldoRestante: saldoRestante,
			CreatedAt:     time.Now(),
		}
		if err := pagoRepo.Create(pago); err != nil {
			return err
		}
		return obligRepo.UpdateSaldo(obligacionID, saldoRestante, time.Now())
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, obligacionID)
}

// Get obtiene la obligación con su historial de pagos.
func (uc *ObligacionUseCase) Get(ctx context.Context, id string) (*dto.ObligacionResponse, error) {
	oblig, err := uc.obligRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if oblig == nil {
		return nil, domain.ErrNotFound
	}
	pagos, err := uc.pagoRepo.ListByObligacionID(id)
	if err != nil {
		return nil, err
	}
	oblig.Pagos = pagos
	return toResponse(oblig), nil
}

// List lista obligaciones (sin pagos).
func (uc *ObligacionUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ObligacionResponse, error) {
	page.DefaultPage()
	obligs, err := uc.obligRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ObligacionResponse, 0, len(obligs))
	for _, o := range obligs {
		out = append(out, *toResponse(o))
	}
	return out, nil
}

// TablaAmortizacion proyecta la tabla completa de la obligación: filas reales
// tomadas de los pagos registrados más la proyección de cuota fija sobre el
// saldo vigente. Solo lectura; no muta la obligación.
func (uc *ObligacionUseCase) TablaAmortizacion(ctx context.Context, id string) (*dto.TablaAmortizacionResponse, error) {
	oblig, err := uc.obligRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if oblig == nil {
		return nil, domain.ErrNotFound
	}
	pagos, err := uc.pagoRepo.ListByObligacionID(id)
	if err != nil {
		return nil, err
	}

	cuotas, err := amortizacion.Tabla(oblig.MontoPrestado, oblig.TasaInteres, oblig.PlazoMeses, oblig.FechaInicio, pagos)
	if err != nil {
		return nil, err
	}
	resp := &dto.TablaAmortizacionResponse{
		ObligacionID: id,
		Cuotas:       make([]dto.CuotaResponse, 0, len(cuotas)),
	}
	for _, c := range cuotas {
		resp.Cuotas = append(resp.Cuotas, dto.CuotaResponse{
			Periodo: c.Periodo,
			Fecha:   c.Fecha.Format(fechaISO),
			Cuota:   c.Cuota,
			Interes: c.Interes,
			Capital: c.Capital,
			Saldo:   c.Saldo,
			EsReal:  c.EsReal,
		})
	}
	return resp, nil
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

func toResponse(o *entity.ObligacionFinanciera) *dto.ObligacionResponse {
	resp := &dto.ObligacionResponse{
		ID:            o.ID,
		Entidad:       o.Entidad,
		Descripcion:   o.Descripcion,
		MontoPrestado: o.MontoPrestado,
		TasaInteres:   o.TasaInteres,
		PlazoMeses:    o.PlazoMeses,
		FechaInicio:   o.FechaInicio.Format(fechaISO),
		SaldoCapital:  o.SaldoCapital,
		Pagos:         make([]dto.PagoResponse, 0, len(o.Pagos)),
	}
	for _, p := range o.Pagos {
		resp.Pagos = append(resp.Pagos, dto.PagoResponse{
			ID:            p.ID,
			Fecha:         p.Fecha.Format(fechaISO),
			Valor:         p.Valor,
			Interes:       p.Interes,
			Capital:       p.Capital,
			SaldoRestante: p.SaldoRestante,
		})
	}
	return resp
}
