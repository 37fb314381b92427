// Package margin reúne os cálculos puros de margem de lucro e
// precificação usados pela calculadora e pelos relatórios.
package margin

import (
	"errors"

	"github.com/shopspring/decimal"
)

var cem = decimal.NewFromInt(100)

// ErrInvalidAnalysis indica que a análise completa não pôde ser
// calculada com os valores informados
var ErrInvalidAnalysis = errors.New("não foi possível analisar o produto com os valores informados")

// MarginPercent calcula a margem de lucro sobre o preço de venda:
// (venda - custo) / venda * 100, arredondada para 2 casas.
// Retorna 0 quando qualquer entrada não é positiva; nunca divide por zero.
func MarginPercent(salePrice, cost decimal.Decimal) decimal.Decimal {
	if salePrice.LessThanOrEqual(decimal.Zero) || cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return salePrice.Sub(cost).Div(salePrice).Mul(cem).Round(2)
}

// SalePriceFromMargin calcula o preço de venda para uma margem desejada
// sobre o custo: custo * (1 + margem/100), arredondado para 2 casas
// (meio para cima). Margens fora do intervalo (0, 100) devolvem o
// próprio custo.
func SalePriceFromMargin(cost, marginPercent decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) ||
		marginPercent.LessThanOrEqual(decimal.Zero) ||
		marginPercent.GreaterThanOrEqual(cem) {
		return cost
	}
	valorMargem := cost.Mul(marginPercent.Div(cem))
	return cost.Add(valorMargem).Round(2)
}

// SalePriceFromMarkup calcula o preço de venda por markup
// (multiplicador sobre o custo), arredondado para 2 casas.
// Entradas não positivas devolvem o próprio custo.
func SalePriceFromMarkup(cost, markup decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) || markup.LessThanOrEqual(decimal.Zero) {
		return cost
	}
	return cost.Mul(markup).Round(2)
}

// UnitProfit calcula o lucro unitário (venda - custo), 2 casas
func UnitProfit(salePrice, cost decimal.Decimal) decimal.Decimal {
	return salePrice.Sub(cost).Round(2)
}

// TotalProfit calcula o lucro total para uma quantidade de itens
func TotalProfit(salePrice, cost decimal.Decimal, quantity int) decimal.Decimal {
	return salePrice.Sub(cost).Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// BreakEvenQuantity calcula o ponto de equilíbrio: quantidade mínima
// para que o lucro unitário cubra os custos fixos, arredondada para
// cima. Retorna ok=false quando o preço de venda não supera o custo
// variável (não há ponto de equilíbrio possível).
func BreakEvenQuantity(fixedCost, salePrice, variableCost decimal.Decimal) (int, bool) {
	lucroUnitario := salePrice.Sub(variableCost)
	if lucroUnitario.LessThanOrEqual(decimal.Zero) {
		return 0, false
	}
	qty := fixedCost.Div(lucroUnitario).Ceil()
	return int(qty.IntPart()), true
}

// Analysis é o resultado da análise completa de um produto
type Analysis struct {
	Cost          decimal.Decimal `json:"custo"`
	SalePrice     decimal.Decimal `json:"preco_venda"`
	NetPrice      decimal.Decimal `json:"preco_liquido"`
	MarginPercent decimal.Decimal `json:"margem_percentual"`
	UnitProfit    decimal.Decimal `json:"lucro_unitario"`
	Quantity      int             `json:"quantidade"`
	TotalProfit   decimal.Decimal `json:"lucro_total"`
	TaxPercent    decimal.Decimal `json:"impostos_percentual"`
	TaxAmount     decimal.Decimal `json:"valor_impostos"`
	FixedCosts    decimal.Decimal `json:"custos_fixos"`
	BreakEven     int             `json:"ponto_equilibrio"`
	ROIPercent    decimal.Decimal `json:"retorno_investimento"`
}

// AnalyzeProduct realiza a análise completa de um produto: preço
// líquido após impostos, margem, lucros, ponto de equilíbrio (0 quando
// não há custos fixos) e retorno sobre o investimento. Valores que
// inviabilizam os cálculos resultam em erro, nunca em pânico.
func AnalyzeProduct(cost, salePrice decimal.Decimal, quantity int, taxPercent, fixedCosts decimal.Decimal) (*Analysis, error) {
	valorImpostos := salePrice.Mul(taxPercent).Div(cem)
	precoLiquido := salePrice.Sub(valorImpostos)

	if precoLiquido.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAnalysis
	}

	margem := precoLiquido.Sub(cost).Div(precoLiquido).Mul(cem)
	lucroUnitario := precoLiquido.Sub(cost)
	lucroTotal := lucroUnitario.Mul(decimal.NewFromInt(int64(quantity)))

	pontoEquilibrio := 0
	if fixedCosts.GreaterThan(decimal.Zero) {
		if lucroUnitario.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidAnalysis
		}
		pontoEquilibrio = int(fixedCosts.Div(lucroUnitario).Ceil().IntPart())
	}

	investimento := cost.Mul(decimal.NewFromInt(int64(quantity)))
	roi := decimal.Zero
	if investimento.GreaterThan(decimal.Zero) {
		roi = lucroTotal.Div(investimento).Mul(cem).Round(2)
	}

	return &Analysis{
		Cost:          cost.Round(2),
		SalePrice:     salePrice.Round(2),
		NetPrice:      precoLiquido.Round(2),
		MarginPercent: margem.Round(2),
		UnitProfit:    lucroUnitario.Round(2),
		Quantity:      quantity,
		TotalProfit:   lucroTotal.Round(2),
		TaxPercent:    taxPercent,
		TaxAmount:     valorImpostos.Round(2),
		FixedCosts:    fixedCosts.Round(2),
		BreakEven:     pontoEquilibrio,
		ROIPercent:    roi,
	}, nil
}
