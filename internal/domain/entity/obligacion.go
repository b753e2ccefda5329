package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObligacionFinanciera es un crédito o préstamo amortizado en el tiempo.
// TasaInteres es la tasa periódica como fracción (0.02 = 2% mensual), no
// como porcentaje. SaldoCapital solo muta al registrar un pago y nunca crece.
type ObligacionFinanciera struct {
	ID            string
	Entidad       string // banco o acreedor
	Descripcion   string
	MontoPrestado decimal.Decimal
	TasaInteres   decimal.Decimal
	PlazoMeses    int
	FechaInicio   time.Time
	SaldoCapital  decimal.Decimal
	Pagos         []Pago // orden cronológico de registro
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
