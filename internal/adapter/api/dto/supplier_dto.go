package dto

import (
	"github.com/thabi/crm-distribuidora/internal/domain/supplier"
)

// SupplierRequest representa os dados para criação e atualização de fornecedor
type SupplierRequest struct {
	Name  string `json:"nome" binding:"required"`
	TaxID string `json:"cnpj" binding:"required"`
}

// SupplierResponse representa os dados de fornecedor nas respostas
type SupplierResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"nome"`
	TaxID          string `json:"cnpj"`
	FormattedTaxID string `json:"cnpj_formatado,omitempty"`
	RegisteredAt   string `json:"data_cadastro,omitempty"`
}

// ToSupplierResponse converte um fornecedor do domínio para o DTO de resposta
func ToSupplierResponse(f *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:             f.ID,
		Name:           f.Name,
		TaxID:          f.TaxID,
		FormattedTaxID: f.FormattedTaxID(),
		RegisteredAt:   f.RegisteredAt,
	}
}

// ToSupplierResponseList converte uma lista de fornecedores do domínio
func ToSupplierResponseList(fornecedores []*supplier.Supplier) []SupplierResponse {
	respostas := make([]SupplierResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		respostas = append(respostas, ToSupplierResponse(f))
	}
	return respostas
}
