package cotizaciones

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/auditoria"
	"github.com/tu-usuario/gestion-pro/internal/domain/cotizacion"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

const fechaISO = "2006-01-02"

// CotizacionUseCase crea, actualiza y consulta cotizaciones. Toda escritura
// de cabecera + ítems + historial ocurre en una sola transacción.
type CotizacionUseCase struct {
	txRunner TxRunner
	cotRepo  repository.CotizacionRepository
	histRepo repository.HistorialRepository
}

// NewCotizacionUseCase construye el caso de uso.
func NewCotizacionUseCase(txRunner TxRunner, cotRepo repository.CotizacionRepository, histRepo repository.HistorialRepository) *CotizacionUseCase {
	return &CotizacionUseCase{txRunner: txRunner, cotRepo: cotRepo, histRepo: histRepo}
}

// Crear calcula precios y persiste la cotización con sus ítems.
// Una cotización nueva siempre nace en BORRADOR con progreso 0.
func (uc *CotizacionUseCase) Crear(ctx context.Context, in dto.CrearCotizacionRequest) (*dto.CotizacionResponse, error) {
	if in.ClienteID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	cot := entity.Cotizacion{
		ID:                  uuid.New().String(),
		ClienteID:           in.ClienteID,
		Descripcion:         in.Descripcion,
		ModoDescuento:       in.ModoDescuento,
		DescuentoValor:      in.DescuentoValor,
		DescuentoPorcentaje: in.DescuentoPorcentaje,
		ImpuestoPorcentaje:  in.ImpuestoPorcentaje,

		AIUAdminPorcentaje:      in.AIUAdminPorcentaje,
		AIUImprevistoPorcentaje: in.AIUImprevistoPorcentaje,
		AIUUtilidadPorcentaje:   in.AIUUtilidadPorcentaje,
		IVAUtilidadPorcentaje:   in.IVAUtilidadPorcentaje,

		Estado:    entity.EstadoBorrador,
		Progreso:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	cot.Items = itemsDesdeRequest(cot.ID, in.Items)

	if err := cotizacion.Calcular(&cot); err != nil {
		return nil, err
	}

	err := uc.txRunner.RunCotizaciones(ctx, func(cotRepo repository.CotizacionRepository, _ repository.HistorialRepository) error {
		if err := cotRepo.Create(&cot); err != nil {
			return err
		}
		for i := range cot.Items {
			if err := cotRepo.CreateItem(&cot.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(&cot, nil, nil), nil
}

// Actualizar aplica un patch parcial, recalcula precios y registra en el
// historial cada transición detectada (estado, progreso, edición de ítems).
// Re-guardar sin cambios no genera entradas.
func (uc *CotizacionUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarCotizacionRequest) (*dto.CotizacionResponse, error) {
	anterior, err := uc.cotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if anterior == nil {
		return nil, domain.ErrNotFound
	}
	itemsPrevios, err := uc.cotRepo.GetItemsByCotizacionID(id)
	if err != nil {
		return nil, err
	}
	for _, it := range itemsPrevios {
		anterior.Items = append(anterior.Items, *it)
	}

	nueva := *anterior
	nueva.Items = anterior.Items
	aplicarPatch(&nueva, in)
	if in.Estado != nil && !entity.EsEstadoValido(*in.Estado) {
		return nil, domain.ErrEstadoInvalido
	}

	itemsModificados := in.Items != nil
	if itemsModificados {
		nueva.Items = itemsDesdeRequest(nueva.ID, in.Items)
	}

	if err := cotizacion.Calcular(&nueva); err != nil {
		return nil, err
	}

	now := time.Now()
	nueva.UpdatedAt = now
	eventos := auditoria.Detectar(anterior, &nueva, itemsModificados, now)

	err = uc.txRunner.RunCotizaciones(ctx, func(cotRepo repository.CotizacionRepository, histRepo repository.HistorialRepository) error {
		if err := cotRepo.Update(&nueva); err != nil {
			return err
		}
		if itemsModificados {
			if err := cotRepo.DeleteItems(nueva.ID); err != nil {
				return err
			}
			for i := range nueva.Items {
				if err := cotRepo.CreateItem(&nueva.Items[i]); err != nil {
					return err
				}
			}
		}
		for i := range eventos {
			if err := histRepo.Create(&eventos[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(&nueva, nil, eventos), nil
}

// Get obtiene la cotización con ítems e historial completo.
func (uc *CotizacionUseCase) Get(ctx context.Context, id string) (*dto.CotizacionResponse, error) {
	cot, err := uc.cotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.cotRepo.GetItemsByCotizacionID(id)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		cot.Items = append(cot.Items, *it)
	}
	historial, err := uc.histRepo.ListByCotizacionID(id)
	if err != nil {
		return nil, err
	}
	return toResponse(cot, historial, nil), nil
}

// List lista cotizaciones (solo cabeceras).
func (uc *CotizacionUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CotizacionResponse, error) {
	page.DefaultPage()
	cots, err := uc.cotRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CotizacionResponse, 0, len(cots))
	for _, c := range cots {
		out = append(out, *toResponse(c, nil, nil))
	}
	return out, nil
}

func itemsDesdeRequest(cotizacionID string, items []dto.ItemCotizacionRequest) []entity.CotizacionItem {
	out := make([]entity.CotizacionItem, 0, len(items))
	for i, it := range items {
		out = append(out, entity.CotizacionItem{
			ID:                  uuid.New().String(),
			CotizacionID:        cotizacionID,
			Posicion:            i,
			Descripcion:         it.Descripcion,
			Cantidad:            it.Cantidad,
			ValorUnitario:       it.ValorUnitario,
			ModoDescuento:       it.ModoDescuento,
			DescuentoValor:      it.DescuentoValor,
			DescuentoPorcentaje: it.DescuentoPorcentaje,
			Impuesto:            it.Impuesto,

			AIUAdminPorcentaje:      it.AIUAdminPorcentaje,
			AIUImprevistoPorcentaje: it.AIUImprevistoPorcentaje,
			AIUUtilidadPorcentaje:   it.AIUUtilidadPorcentaje,
			IVAUtilidadPorcentaje:   it.IVAUtilidadPorcentaje,
		})
	}
	return out
}

func aplicarPatch(cot *entity.Cotizacion, in dto.ActualizarCotizacionRequest) {
	if in.Descripcion != nil {
		cot.Descripcion = *in.Descripcion
	}
	if in.ModoDescuento != nil {
		cot.ModoDescuento = *in.ModoDescuento
	}
	if in.DescuentoValor != nil {
		cot.DescuentoValor = *in.DescuentoValor
	}
	if in.DescuentoPorcentaje != nil {
		cot.DescuentoPorcentaje = *in.DescuentoPorcentaje
	}
	if in.ImpuestoPorcentaje != nil {
		cot.ImpuestoPorcentaje = *in.ImpuestoPorcentaje
	}
	if in.AIUAdminPorcentaje != nil {
		cot.AIUAdminPorcentaje = *in.AIUAdminPorcentaje
	}
	if in.AIUImprevistoPorcentaje != nil {
		cot.AIUImprevistoPorcentaje = *in.AIUImprevistoPorcentaje
	}
	if in.AIUUtilidadPorcentaje != nil {
		cot.AIUUtilidadPorcentaje = *in.AIUUtilidadPorcentaje
	}
	if in.IVAUtilidadPorcentaje != nil {
		cot.IVAUtilidadPorcentaje = *in.IVAUtilidadPorcentaje
	}
	if in.Estado != nil {
		cot.Estado = *in.Estado
	}
	if in.Progreso != nil {
		cot.Progreso = *in.Progreso
	}
}

func toResponse(cot *entity.Cotizacion, historial []entity.Historial, generado []entity.Historial) *dto.CotizacionResponse {
	resp := &dto.CotizacionResponse{
		ID:             cot.ID,
		ClienteID:      cot.ClienteID,
		Descripcion:    cot.Descripcion,
		Items:          make([]dto.ItemCotizacionResponse, 0, len(cot.Items)),
		Subtotal:       cot.Subtotal,
		IVA:            cot.IVA,
		AIUAdmin:       cot.AIUAdmin,
		AIUImprevistos: cot.AIUImprevistos,
		AIUUtilidad:    cot.AIUUtilidad,
		IVAUtilidad:    cot.IVAUtilidad,
		Total:          cot.Total,
		Estado:         cot.Estado,
		Progreso:       cot.Progreso,
	}
	for _, it := range cot.Items {
		resp.Items = append(resp.Items, dto.ItemCotizacionResponse{
			ID:                  it.ID,
			Descripcion:         it.Descripcion,
			Cantidad:            it.Cantidad,
			ValorUnitario:       it.ValorUnitario,
			ModoDescuento:       it.ModoDescuento,
			DescuentoValor:      it.DescuentoValor,
			DescuentoPorcentaje: it.DescuentoPorcentaje,
			ValorTotal:          it.ValorTotal,
		})
	}
	resp.Historial = historialToResponse(historial)
	resp.HistorialGenerado = historialToResponse(generado)
	return resp
}

func historialToResponse(entradas []entity.Historial) []dto.HistorialResponse {
	if len(entradas) == 0 {
		return nil
	}
	out := make([]dto.HistorialResponse, 0, len(entradas))
	for _, h := range entradas {
		out = append(out, dto.HistorialResponse{
			ID:            h.ID,
			Fecha:         h.Fecha.Format(fechaISO),
			Tipo:          h.Tipo,
			Descripcion:   h.Descripcion,
			ValorAnterior: h.ValorAnterior,
			ValorNuevo:    h.ValorNuevo,
		})
	}
	return out
}
