package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/cotizaciones"
	"github.com/tu-usuario/gestion-pro/internal/application/facturacion"
	"github.com/tu-usuario/gestion-pro/internal/application/finanzas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CotizacionUC *cotizaciones.CotizacionUseCase
	FacturaUC    *facturacion.FacturaUseCase
	ObligacionUC *finanzas.ObligacionUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todo el núcleo financiero requiere
// Bearer Token emitido por la plataforma principal.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Cotizaciones
	cotizacionesGroup := api.Group("/cotizaciones")
	cotizacionHandler := NewCotizacionHandler(deps.CotizacionUC)
	cotizacionesGroup.Post("/", cotizacionHandler.Create)
	cotizacionesGroup.Get("/", cotizacionHandler.List)
	cotizacionesGroup.Get("/:id", cotizacionHandler.GetByID)
	cotizacionesGroup.Put("/:id", cotizacionHandler.Update)

	// Facturas
	facturas := api.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturaUC)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/", facturaHandler.List)
	facturas.Get("/:id", facturaHandler.GetByID)
	cotizacionesGroup.Get("/:id/facturas", facturaHandler.ListByCotizacion)

	// Obligaciones financieras
	obligaciones := api.Group("/obligaciones")
	obligacionHandler := NewObligacionHandler(deps.ObligacionUC)
	obligaciones.Post("/", obligacionHandler.Create)
	obligaciones.Get("/", obligacionHandler.List)
	obligaciones.Get("/:id", obligacionHandler.GetByID)
	obligaciones.Post("/:id/pagos", obligacionHandler.RegistrarPago)
	obligaciones.Get("/:id/amortizacion", obligacionHandler.TablaAmortizacion)
}
