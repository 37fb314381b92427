package dto

import (
	"github.com/thabi/crm-distribuidora/internal/domain/customer"
	"github.com/thabi/crm-distribuidora/pkg/format"
)

// CustomerRequest representa os dados para criação e atualização de cliente
type CustomerRequest struct {
	Name        string `json:"nome" binding:"required"`
	StoreNumber string `json:"numero_loja" binding:"required"`
	Address     string `json:"endereco"`
	Phone       string `json:"telefone"`
	Email       string `json:"email"`
	TaxID       string `json:"cnpj"`
	Group       string `json:"grupo"`
	Notes       string `json:"observacoes"`
}

// CustomerResponse representa os dados de cliente nas respostas
type CustomerResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"nome"`
	StoreNumber    string `json:"numero_loja"`
	Address        string `json:"endereco"`
	Phone          string `json:"telefone"`
	Email          string `json:"email,omitempty"`
	TaxID          string `json:"cnpj,omitempty"`
	FormattedTaxID string `json:"cnpj_formatado,omitempty"`
	Group          string `json:"grupo,omitempty"`
	Notes          string `json:"observacoes,omitempty"`
	RegisteredAt   string `json:"data_cadastro,omitempty"`
}

// ToCustomerResponse converte um cliente do domínio para o DTO de resposta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		StoreNumber:  c.StoreNumber,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		TaxID:        c.TaxID,
		Group:        c.Group,
		Notes:        c.Notes,
		RegisteredAt: c.RegisteredAt,
	}
	if doc := c.NormalizedTaxID(); doc != "" {
		resp.FormattedTaxID = format.FormatCNPJ(doc)
	}
	return resp
}

// ToCustomerResponseList converte uma lista de clientes do domínio
func ToCustomerResponseList(clientes []*customer.Customer) []CustomerResponse {
	respostas := make([]CustomerResponse, 0, len(clientes))
	for _, c := range clientes {
		respostas = append(respostas, ToCustomerResponse(c))
	}
	return respostas
}
