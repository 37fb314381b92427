package product

import "context"

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto atribuindo o próximo ID da coleção
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id int) (*Product, error)

	// List lista todos os produtos na ordem persistida
	List(ctx context.Context) ([]*Product, error)

	// ListBySupplier lista os produtos de um fornecedor
	ListBySupplier(ctx context.Context, supplierID int) ([]*Product, error)

	// Search retorna os produtos que correspondem ao termo de busca
	Search(ctx context.Context, term string) ([]*Product, error)

	// Update substitui integralmente os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id int) error
}
