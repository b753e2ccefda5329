package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/finanzas"
	"github.com/tu-usuario/gestion-pro/internal/domain"
)

// ObligacionHandler maneja las peticiones HTTP de obligaciones financieras (protegido).
type ObligacionHandler struct {
	uc *finanzas.ObligacionUseCase
}

// NewObligacionHandler construye el handler.
func NewObligacionHandler(uc *finanzas.ObligacionUseCase) *ObligacionHandler {
	return &ObligacionHandler{uc: uc}
}

// Create registra una obligación financiera.
// POST /api/obligaciones
func (h *ObligacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearObligacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	oblig, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return mapObligacionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(oblig)
}

// RegistrarPago aplica un abono a la obligación.
// POST /api/obligaciones/:id/pagos
func (h *ObligacionHandler) RegistrarPago(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	oblig, err := h.uc.RegistrarPago(c.Context(), id, in)
	if err != nil {
		return mapObligacionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(oblig)
}

// GetByID obtiene la obligación con sus pagos.
// GET /api/obligaciones/:id
func (h *ObligacionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	oblig, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapObligacionError(c, err)
	}
	return c.JSON(oblig)
}

// List lista obligaciones.
// GET /api/obligaciones
func (h *ObligacionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	obligs, err := h.uc.List(c.Context(), page)
	if err != nil {
		return mapObligacionError(c, err)
	}
	return c.JSON(obligs)
}

// TablaAmortizacion proyecta la tabla de amortización completa (solo lectura).
// GET /api/obligaciones/:id/amortizacion
func (h *ObligacionHandler) TablaAmortizacion(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	tabla, err := h.uc.TablaAmortizacion(c.Context(), id)
	if err != nil {
		return mapObligacionError(c, err)
	}
	return c.JSON(tabla)
}

func mapObligacionError(c *fiber.Ctx, err error) error {
	var valErr *domain.ValidacionError
	if errors.As(err, &valErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: valErr.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "obligación no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
