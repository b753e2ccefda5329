package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pago es un abono real a una obligación financiera. Invariante: el saldo de
// capital después de aplicar el pago k es el saldo anterior menos Capital,
// y la secuencia de saldos es no creciente.
type Pago struct {
	ID            string
	ObligacionID  string
	Fecha         time.Time
	Valor         decimal.Decimal
	Interes       decimal.Decimal
	Capital       decimal.Decimal
	SaldoRestante decimal.Decimal
	CreatedAt     time.Time
}
