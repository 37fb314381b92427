package supplier

import "context"

// Repository define a interface para operações de repositório de fornecedores
type Repository interface {
	// Create cria um novo fornecedor atribuindo o próximo ID da coleção
	Create(ctx context.Context, s *Supplier) error

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id int) (*Supplier, error)

	// List lista todos os fornecedores na ordem persistida
	List(ctx context.Context) ([]*Supplier, error)

	// Search retorna os fornecedores que correspondem ao termo de busca
	Search(ctx context.Context, term string) ([]*Supplier, error)

	// Update substitui integralmente os dados de um fornecedor existente
	Update(ctx context.Context, s *Supplier) error

	// Delete remove um fornecedor
	Delete(ctx context.Context, id int) error
}
