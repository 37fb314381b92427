package customer

import "context"

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente atribuindo o próximo ID da coleção
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id int) (*Customer, error)

	// FindByName busca um cliente pelo nome exato (case-insensitive)
	FindByName(ctx context.Context, name string) (*Customer, error)

	// List lista todos os clientes na ordem persistida
	List(ctx context.Context) ([]*Customer, error)

	// ListByGroup lista os clientes de um grupo (redes de lojas)
	ListByGroup(ctx context.Context, group string) ([]*Customer, error)

	// Search retorna os clientes que correspondem ao termo de busca
	Search(ctx context.Context, term string) ([]*Customer, error)

	// Update substitui integralmente os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Delete remove um cliente
	Delete(ctx context.Context, id int) error
}
