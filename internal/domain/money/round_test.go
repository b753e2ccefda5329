package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/gestion-pro/internal/domain/money"
)

func TestRound2_DosDecimales(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"0", "0"},
		{"1", "1"},
		{"2.675", "2.68"},   // half-up
		{"2.674", "2.67"},
		{"-2.675", "-2.68"}, // simétrico para negativos
		{"14250.004", "14250"},
		{"89249.995", "89250"},
	}
	for _, c := range casos {
		got := money.Round2(decimal.RequireFromString(c.entrada))
		assert.True(t, decimal.RequireFromString(c.esperado).Equal(got),
			"Round2(%s) debe ser %s, fue %s", c.entrada, c.esperado, got)
	}
}

func TestRound2_ValorCeroEsCero(t *testing.T) {
	var vacio decimal.Decimal
	assert.True(t, money.Round2(vacio).IsZero(),
		"el valor cero de decimal.Decimal debe redondear a 0 sin caso especial")
}

func TestPorcentaje_NumeroPlano(t *testing.T) {
	// 19 significa 19%, nunca 0.19.
	base := decimal.NewFromInt(75_000)
	pct := decimal.NewFromInt(19)
	got := money.Porcentaje(base, pct)
	assert.True(t, decimal.NewFromInt(14_250).Equal(got),
		"19%% de 75000 debe ser 14250, fue %s", got)
}

func TestPorcentaje_RedondeaUnaSolaVez(t *testing.T) {
	// 33.33% de 100.01 = 33.3333... → 33.33 con un único redondeo final.
	base := decimal.RequireFromString("100.01")
	pct := decimal.RequireFromString("33.33")
	got := money.Porcentaje(base, pct)
	assert.True(t, decimal.RequireFromString("33.33").Equal(got),
		"Porcentaje debe redondear solo en el punto de derivación, fue %s", got)
}

func TestPorcentaje_CeroPorCiento(t *testing.T) {
	got := money.Porcentaje(decimal.NewFromInt(100_000), decimal.Zero)
	assert.True(t, got.IsZero(), "0%% de cualquier base debe ser 0")
}
