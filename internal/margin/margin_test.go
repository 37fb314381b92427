package margin

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMarginPercent(t *testing.T) {
	// Margem sobre o preço de venda: (150-100)/150*100
	assert.Equal(t, "33.33", MarginPercent(d("150"), d("100")).StringFixed(2))
	assert.Equal(t, "50.00", MarginPercent(d("200"), d("100")).StringFixed(2))

	// Entradas não positivas nunca dividem por zero
	assert.True(t, MarginPercent(decimal.Zero, d("100")).IsZero())
	assert.True(t, MarginPercent(d("100"), decimal.Zero).IsZero())
	assert.True(t, MarginPercent(d("-1"), d("100")).IsZero())
}

func TestSalePriceFromMargin(t *testing.T) {
	assert.Equal(t, "150.00", SalePriceFromMargin(d("100"), d("50")).StringFixed(2))
	assert.Equal(t, "133.00", SalePriceFromMargin(d("100"), d("33")).StringFixed(2))

	// Margens fora do intervalo (0, 100) devolvem o próprio custo
	assert.True(t, SalePriceFromMargin(d("100"), d("100")).Equal(d("100")))
	assert.True(t, SalePriceFromMargin(d("100"), d("0")).Equal(d("100")))
	assert.True(t, SalePriceFromMargin(d("100"), d("-10")).Equal(d("100")))
}

func TestSalePriceFromMarkup(t *testing.T) {
	assert.Equal(t, "200.00", SalePriceFromMarkup(d("100"), d("2.0")).StringFixed(2))
	assert.Equal(t, "250.00", SalePriceFromMarkup(d("100"), d("2.5")).StringFixed(2))
	assert.True(t, SalePriceFromMarkup(d("100"), decimal.Zero).Equal(d("100")))
}

func TestUnitAndTotalProfit(t *testing.T) {
	assert.Equal(t, "50.00", UnitProfit(d("150"), d("100")).StringFixed(2))
	assert.Equal(t, "500.00", TotalProfit(d("150"), d("100"), 10).StringFixed(2))
	assert.Equal(t, "-10.00", UnitProfit(d("90"), d("100")).StringFixed(2))
}

func TestBreakEvenQuantity(t *testing.T) {
	qtd, ok := BreakEvenQuantity(d("1000"), d("150"), d("100"))
	require.True(t, ok)
	assert.Equal(t, 20, qtd)

	// Arredonda para cima quando a divisão não é exata
	qtd, ok = BreakEvenQuantity(d("1000"), d("130"), d("100"))
	require.True(t, ok)
	assert.Equal(t, 34, qtd)

	// Sem lucro unitário não há ponto de equilíbrio
	_, ok = BreakEvenQuantity(d("1000"), d("100"), d("100"))
	assert.False(t, ok)
	_, ok = BreakEvenQuantity(d("1000"), d("90"), d("100"))
	assert.False(t, ok)
}

func TestAnalyzeProduct(t *testing.T) {
	analise, err := AnalyzeProduct(d("100"), d("200"), 10, d("10"), d("500"))
	require.NoError(t, err)

	// Preço líquido: 200 - 10% = 180
	assert.Equal(t, "180.00", analise.NetPrice.StringFixed(2))
	assert.Equal(t, "20.00", analise.TaxAmount.StringFixed(2))
	// Margem sobre o preço líquido: (180-100)/180*100
	assert.Equal(t, "44.44", analise.MarginPercent.StringFixed(2))
	assert.Equal(t, "80.00", analise.UnitProfit.StringFixed(2))
	assert.Equal(t, "800.00", analise.TotalProfit.StringFixed(2))
	// Ponto de equilíbrio: ceil(500/80)
	assert.Equal(t, 7, analise.BreakEven)
	// ROI: 800 / 1000 * 100
	assert.Equal(t, "80.00", analise.ROIPercent.StringFixed(2))
}

func TestAnalyzeProductEdgeCases(t *testing.T) {
	// Impostos de 100% zeram o preço líquido
	_, err := AnalyzeProduct(d("100"), d("200"), 10, d("100"), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidAnalysis)

	// Custos fixos sem lucro unitário não têm ponto de equilíbrio
	_, err = AnalyzeProduct(d("200"), d("200"), 10, decimal.Zero, d("500"))
	assert.ErrorIs(t, err, ErrInvalidAnalysis)

	// Sem custos fixos o ponto de equilíbrio é zero
	analise, err := AnalyzeProduct(d("100"), d("200"), 5, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, 0, analise.BreakEven)

	// Quantidade zero: investimento zero, retorno zero
	analise, err = AnalyzeProduct(d("100"), d("200"), 0, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, analise.ROIPercent.IsZero())
}
