package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/facturacion"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/money"
)

// FacturaHandler maneja las peticiones HTTP de facturación (protegido).
type FacturaHandler struct {
	uc *facturacion.FacturaUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *facturacion.FacturaUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

// Create crea una factura, conciliada contra el saldo de su cotización.
// POST /api/facturas
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	factura, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return mapFacturaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(factura)
}

// GetByID obtiene una factura.
// GET /api/facturas/:id
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	factura, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapFacturaError(c, err)
	}
	return c.JSON(factura)
}

// List lista facturas.
// GET /api/facturas
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	facturas, err := h.uc.List(c.Context(), page)
	if err != nil {
		return mapFacturaError(c, err)
	}
	return c.JSON(facturas)
}

// ListByCotizacion lista las facturas de una cotización y el saldo facturable.
// GET /api/cotizaciones/:id/facturas
func (h *FacturaHandler) ListByCotizacion(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	facturas, saldo, err := h.uc.ListPorCotizacion(c.Context(), id)
	if err != nil {
		return mapFacturaError(c, err)
	}
	return c.JSON(fiber.Map{
		"facturas":         facturas,
		"saldo_disponible": saldo,
	})
}

func mapFacturaError(c *fiber.Ctx, err error) error {
	var sobreErr *domain.SobrefacturacionError
	if errors.As(err, &sobreErr) {
		// El caller necesita los números para corregir y reintentar.
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:            "SOBREFACTURACION",
			Message:         "el valor a facturar " + money.FormatCOP(sobreErr.ValorIntentado) + " supera el saldo disponible " + money.FormatCOP(sobreErr.SaldoDisponible),
			SaldoDisponible: sobreErr.SaldoDisponible.StringFixed(2),
			ValorIntentado:  sobreErr.ValorIntentado.StringFixed(2),
		})
	}
	var valErr *domain.ValidacionError
	if errors.As(err, &valErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: valErr.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización o factura no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
