package expense

import "context"

// Repository define a interface para operações de repositório de despesas
type Repository interface {
	// Create cria uma nova despesa atribuindo o próximo ID da coleção
	Create(ctx context.Context, e *Expense) error

	// FindByID busca uma despesa pelo ID
	FindByID(ctx context.Context, id int) (*Expense, error)

	// List lista todas as despesas na ordem persistida
	List(ctx context.Context) ([]*Expense, error)

	// ListByCategory lista as despesas de uma categoria (case-insensitive)
	ListByCategory(ctx context.Context, category string) ([]*Expense, error)

	// ListBySupplier lista as despesas de um fornecedor
	ListBySupplier(ctx context.Context, supplierID int) ([]*Expense, error)

	// Update substitui integralmente os dados de uma despesa existente
	Update(ctx context.Context, e *Expense) error

	// Delete remove uma despesa
	Delete(ctx context.Context, id int) error

	// RefreshOverdue reclassifica despesas pendentes vencidas como
	// atrasadas e retorna quantas mudaram
	RefreshOverdue(ctx context.Context) (int, error)
}
