package dto

import (
	"github.com/shopspring/decimal"

	"github.com/thabi/crm-distribuidora/internal/domain/product"
	"github.com/thabi/crm-distribuidora/pkg/format"
)

// ProductRequest representa os dados para criação e atualização de
// produto. Os valores aceitam tanto "1234.56" quanto "1.234,56".
type ProductRequest struct {
	Name          string `json:"nome" binding:"required"`
	PurchasePrice string `json:"valor_compra" binding:"required"`
	SalePrice     string `json:"valor_venda" binding:"required"`
	SupplierID    int    `json:"id_fornecedor" binding:"required"`
}

// Prices interpreta os valores monetários do request
func (r ProductRequest) Prices() (compra, venda decimal.Decimal, err error) {
	compra, err = format.ParseCurrency(r.PurchasePrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	venda, err = format.ParseCurrency(r.SalePrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return compra, venda, nil
}

// ProductResponse representa os dados de produto nas respostas
type ProductResponse struct {
	ID                     int             `json:"id"`
	Name                   string          `json:"nome"`
	PurchasePrice          decimal.Decimal `json:"valor_compra"`
	SalePrice              decimal.Decimal `json:"valor_venda"`
	FormattedPurchasePrice string          `json:"valor_compra_formatado"`
	FormattedSalePrice     string          `json:"valor_venda_formatado"`
	MarginPercent          decimal.Decimal `json:"margem"`
	SupplierID             int             `json:"id_fornecedor"`
	RegisteredAt           string          `json:"data_cadastro,omitempty"`
}

// ToProductResponse converte um produto do domínio para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:                     p.ID,
		Name:                   p.Name,
		PurchasePrice:          p.PurchasePrice,
		SalePrice:              p.SalePrice,
		FormattedPurchasePrice: format.Currency(p.PurchasePrice),
		FormattedSalePrice:     format.Currency(p.SalePrice),
		MarginPercent:          p.MarginPercent(),
		SupplierID:             p.SupplierID,
		RegisteredAt:           p.RegisteredAt,
	}
}

// ToProductResponseList converte uma lista de produtos do domínio
func ToProductResponseList(produtos []*product.Product) []ProductResponse {
	respostas := make([]ProductResponse, 0, len(produtos))
	for _, p := range produtos {
		respostas = append(respostas, ToProductResponse(p))
	}
	return respostas
}
