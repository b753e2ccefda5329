package cotizaciones

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos de
// cotizaciones e historial. Cabecera, ítems y entradas de historial se
// escriben juntos o no se escribe nada.
type TxRunner interface {
	RunCotizaciones(ctx context.Context, fn func(
		cotRepo repository.CotizacionRepository,
		histRepo repository.HistorialRepository,
	) error) error
}
