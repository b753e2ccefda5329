package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/cotizaciones"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
)

// CotizacionHandler maneja las peticiones HTTP de cotizaciones (protegido).
type CotizacionHandler struct {
	uc *cotizaciones.CotizacionUseCase
}

// NewCotizacionHandler construye el handler.
func NewCotizacionHandler(uc *cotizaciones.CotizacionUseCase) *CotizacionHandler {
	return &CotizacionHandler{uc: uc}
}

// Create crea una cotización con precios calculados.
// POST /api/cotizaciones
func (h *CotizacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearCotizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cot, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return mapCotizacionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cot)
}

// Update aplica un patch parcial, recalcula precios y registra el historial.
// PUT /api/cotizaciones/:id
func (h *CotizacionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.ActualizarCotizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cot, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return mapCotizacionError(c, err)
	}
	return c.JSON(cot)
}

// GetByID obtiene la cotización con ítems e historial.
// GET /api/cotizaciones/:id
func (h *CotizacionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	cot, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapCotizacionError(c, err)
	}
	return c.JSON(cot)
}

// List lista cotizaciones.
// GET /api/cotizaciones
func (h *CotizacionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	cots, err := h.uc.List(c.Context(), page)
	if err != nil {
		return mapCotizacionError(c, err)
	}
	return c.JSON(cots)
}

func mapCotizacionError(c *fiber.Ctx, err error) error {
	var valErr *domain.ValidacionError
	if errors.As(err, &valErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: valErr.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrEstadoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de cotización inválido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
