package dto

import (
	"github.com/shopspring/decimal"

	"github.com/thabi/crm-distribuidora/internal/domain/expense"
	"github.com/thabi/crm-distribuidora/pkg/format"
)

// ExpenseRequest representa os dados para criação e atualização de despesa
type ExpenseRequest struct {
	Description   string `json:"descricao" binding:"required"`
	Amount        string `json:"valor" binding:"required"`
	Date          string `json:"data" binding:"required"`
	Category      string `json:"categoria" binding:"required"`
	SupplierID    *int   `json:"fornecedor_id"`
	InvoiceNumber string `json:"numero_nota"`
	DueDate       string `json:"vencimento"`
	Status        string `json:"status"`
}

// ParsedAmount interpreta o valor monetário do request
func (r ExpenseRequest) ParsedAmount() (decimal.Decimal, error) {
	return format.ParseCurrency(r.Amount)
}

// ExpenseResponse representa os dados de despesa nas respostas
type ExpenseResponse struct {
	ID              int             `json:"id"`
	Description     string          `json:"descricao"`
	Amount          decimal.Decimal `json:"valor"`
	FormattedAmount string          `json:"valor_formatado"`
	Date            string          `json:"data"`
	Category        string          `json:"categoria"`
	Status          string          `json:"status"`
	SupplierID      *int            `json:"fornecedor_id,omitempty"`
	SupplierName    string          `json:"fornecedor_nome,omitempty"`
	InvoiceNumber   string          `json:"numero_nota,omitempty"`
	DueDate         string          `json:"vencimento,omitempty"`
	CreatedAt       string          `json:"data_cadastro,omitempty"`
}

// ToExpenseResponse converte uma despesa do domínio para o DTO de
// resposta, resolvendo o nome do fornecedor pelo mapa id->nome
func ToExpenseResponse(d *expense.Expense, supplierNames map[int]string) ExpenseResponse {
	resp := ExpenseResponse{
		ID:              d.ID,
		Description:     d.Description,
		Amount:          d.Amount,
		FormattedAmount: format.Currency(d.Amount),
		Date:            d.Date,
		Category:        d.Category,
		Status:          string(d.Status),
		SupplierID:      d.SupplierID,
		InvoiceNumber:   d.InvoiceNumber,
		DueDate:         d.DueDate,
		CreatedAt:       d.CreatedAt,
	}
	if d.SupplierID != nil {
		if nome, ok := supplierNames[*d.SupplierID]; ok {
			resp.SupplierName = nome
		} else {
			resp.SupplierName = "N/A"
		}
	}
	return resp
}

// ToExpenseResponseList converte uma lista de despesas do domínio
func ToExpenseResponseList(despesas []*expense.Expense, supplierNames map[int]string) []ExpenseResponse {
	respostas := make([]ExpenseResponse, 0, len(despesas))
	for _, d := range despesas {
		respostas = append(respostas, ToExpenseResponse(d, supplierNames))
	}
	return respostas
}
