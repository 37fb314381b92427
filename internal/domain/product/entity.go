package product

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thabi/crm-distribuidora/pkg/format"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrInvalidPrice = errors.New("valores de compra e venda devem ser maiores que zero")
	ErrNotFound     = errors.New("produto não encontrado")
)

var cem = decimal.NewFromInt(100)

// Product representa um produto comercializado pela distribuidora.
// A integridade referencial com o fornecedor não é garantida: remover
// um fornecedor não remove seus produtos.
type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"nome"`
	PurchasePrice decimal.Decimal `json:"valor_compra"`
	SalePrice     decimal.Decimal `json:"valor_venda"`
	SupplierID    int             `json:"id_fornecedor"`
	RegisteredAt  string          `json:"data_cadastro,omitempty"`
}

// NewProduct cria um novo produto. O ID é atribuído pelo repositório.
func NewProduct(name string, purchasePrice, salePrice decimal.Decimal, supplierID int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if purchasePrice.LessThanOrEqual(decimal.Zero) || salePrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &Product{
		Name:          name,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		SupplierID:    supplierID,
		RegisteredAt:  time.Now().Format(format.DateBR),
	}, nil
}

// MarginPercent calcula a margem de lucro sobre o valor de compra,
// arredondada para 2 casas: (venda - compra) / compra * 100
func (p *Product) MarginPercent() decimal.Decimal {
	if p.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return p.SalePrice.Sub(p.PurchasePrice).
		Div(p.PurchasePrice).
		Mul(cem).
		Round(2)
}

// Matches verifica se o produto corresponde a um termo de busca
func (p *Product) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	return term != "" && strings.Contains(strings.ToLower(p.Name), term)
}
