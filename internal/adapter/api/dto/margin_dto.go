package dto

import (
	"github.com/shopspring/decimal"

	"github.com/thabi/crm-distribuidora/pkg/format"
)

// MarginRequest calcula a margem a partir de custo e preço de venda
type MarginRequest struct {
	Cost      string `json:"custo" binding:"required"`
	SalePrice string `json:"preco_venda" binding:"required"`
}

// PriceFromMarginRequest calcula o preço de venda para uma margem desejada
type PriceFromMarginRequest struct {
	Cost          string `json:"custo" binding:"required"`
	MarginPercent string `json:"margem" binding:"required"`
}

// PriceFromMarkupRequest calcula o preço de venda por multiplicador
type PriceFromMarkupRequest struct {
	Cost   string `json:"custo" binding:"required"`
	Markup string `json:"markup" binding:"required"`
}

// AnalysisRequest pede a análise completa de viabilidade de um produto
type AnalysisRequest struct {
	Cost       string `json:"custo" binding:"required"`
	SalePrice  string `json:"preco_venda" binding:"required"`
	Quantity   int    `json:"quantidade" binding:"required"`
	TaxPercent string `json:"impostos"`
	FixedCosts string `json:"custos_fixos"`
}

// MarginResponse devolve um cálculo simples de margem ou preço
type MarginResponse struct {
	Cost           decimal.Decimal `json:"custo"`
	SalePrice      decimal.Decimal `json:"preco_venda"`
	MarginPercent  decimal.Decimal `json:"margem"`
	UnitProfit     decimal.Decimal `json:"lucro_unitario"`
	FormattedPrice string          `json:"preco_formatado"`
}

// NewMarginResponse monta a resposta do cálculo de margem
func NewMarginResponse(cost, salePrice, marginPercent, unitProfit decimal.Decimal) MarginResponse {
	return MarginResponse{
		Cost:           cost,
		SalePrice:      salePrice,
		MarginPercent:  marginPercent,
		UnitProfit:     unitProfit,
		FormattedPrice: format.Currency(salePrice),
	}
}

// ParseAmount interpreta um campo monetário ou percentual em texto
func ParseAmount(texto string) (decimal.Decimal, error) {
	if texto == "" {
		return decimal.Zero, nil
	}
	return format.ParseCurrency(texto)
}
