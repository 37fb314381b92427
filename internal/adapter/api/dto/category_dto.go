package dto

import (
	"github.com/thabi/crm-distribuidora/internal/domain/category"
)

// CategoryRequest representa os dados para criação e renomeação de categoria
type CategoryRequest struct {
	Name string `json:"nome" binding:"required"`
}

// CategoryResponse representa os dados de categoria nas respostas
type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// ToCategoryResponse converte uma categoria do domínio para o DTO de resposta
func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// ToCategoryResponseList converte uma lista de categorias do domínio
func ToCategoryResponseList(categorias []*category.Category) []CategoryResponse {
	respostas := make([]CategoryResponse, 0, len(categorias))
	for _, c := range categorias {
		respostas = append(respostas, ToCategoryResponse(c))
	}
	return respostas
}
