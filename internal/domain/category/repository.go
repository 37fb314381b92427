package category

import "context"

// Repository define a interface para operações de repositório de categorias
type Repository interface {
	// Create cria uma nova categoria atribuindo o próximo ID da coleção
	Create(ctx context.Context, c *Category) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id int) (*Category, error)

	// FindByName busca uma categoria pelo nome (case-insensitive)
	FindByName(ctx context.Context, name string) (*Category, error)

	// List lista todas as categorias na ordem persistida
	List(ctx context.Context) ([]*Category, error)

	// Update renomeia uma categoria existente
	Update(ctx context.Context, c *Category) error

	// Delete remove uma categoria
	Delete(ctx context.Context, id int) error
}
