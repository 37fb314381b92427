package dto

import (
	"github.com/shopspring/decimal"

	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/pkg/format"
)

// SaleRequest representa os dados para criação e atualização de venda.
// O cliente pode vir como referência de cadastro (cliente_id) ou como
// destinatário avulso em texto livre.
type SaleRequest struct {
	InvoiceNumber string `json:"numero_nota"`
	ExitDate      string `json:"data_saida" binding:"required"`
	CustomerID    *int   `json:"cliente_id"`
	Recipient     string `json:"destinatario"`
	Amount        string `json:"valor" binding:"required"`
	PaymentMethod string `json:"forma_pagamento" binding:"required"`
	DueDate       string `json:"data_vencimento"`
	Status        string `json:"status_pagamento"`
	Bonus         bool   `json:"bonificacao"`
}

// RecipientRef resolve o destinatário final do request: a referência
// cliente/<id> quando há cliente cadastrado, senão o texto informado
func (r SaleRequest) RecipientRef() string {
	if r.CustomerID != nil {
		return sale.CustomerRef(*r.CustomerID)
	}
	return r.Recipient
}

// ParsedAmount interpreta o valor monetário do request
func (r SaleRequest) ParsedAmount() (decimal.Decimal, error) {
	return format.ParseCurrency(r.Amount)
}

// SaleResponse representa os dados de venda nas respostas
type SaleResponse struct {
	ID              int             `json:"id"`
	InvoiceNumber   string          `json:"numero_nota"`
	ExitDate        string          `json:"data_saida"`
	Recipient       string          `json:"destinatario"`
	CustomerID      *int            `json:"cliente_id,omitempty"`
	CustomerName    string          `json:"cliente_nome,omitempty"`
	Amount          decimal.Decimal `json:"valor"`
	FormattedAmount string          `json:"valor_formatado"`
	PaymentMethod   string          `json:"forma_pagamento"`
	DueDate         string          `json:"data_vencimento,omitempty"`
	Status          string          `json:"status_pagamento"`
	Bonus           bool            `json:"bonificacao"`
	CreatedAt       string          `json:"data_cadastro,omitempty"`
}

// ToSaleResponse converte uma venda do domínio para o DTO de resposta.
// O nome do cliente, quando a venda referencia um cadastro, é
// resolvido pelo mapa id->nome informado.
func ToSaleResponse(v *sale.Sale, customerNames map[int]string) SaleResponse {
	resp := SaleResponse{
		ID:              v.ID,
		InvoiceNumber:   v.InvoiceNumber,
		ExitDate:        v.ExitDate,
		Recipient:       v.Recipient,
		Amount:          v.Amount,
		FormattedAmount: format.Currency(v.Amount),
		PaymentMethod:   v.PaymentMethod,
		DueDate:         v.DueDate,
		Status:          string(v.Status),
		Bonus:           v.Bonus,
		CreatedAt:       v.CreatedAt,
	}
	if id, ok := v.CustomerID(); ok {
		resp.CustomerID = &id
		if nome, found := customerNames[id]; found {
			resp.CustomerName = nome
		} else {
			resp.CustomerName = "Desconhecido"
		}
	}
	return resp
}

// ToSaleResponseList converte uma lista de vendas do domínio
func ToSaleResponseList(vendas []*sale.Sale, customerNames map[int]string) []SaleResponse {
	respostas := make([]SaleResponse, 0, len(vendas))
	for _, v := range vendas {
		respostas = append(respostas, ToSaleResponse(v, customerNames))
	}
	return respostas
}
