package sale

import "context"

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create cria uma nova venda atribuindo o próximo ID da coleção.
	// Quando o número da nota está vazio, gera "Auto-<id>".
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id int) (*Sale, error)

	// List lista todas as vendas em ordem decrescente de ID
	List(ctx context.Context) ([]*Sale, error)

	// ListByCustomer lista as vendas de um cliente cadastrado
	ListByCustomer(ctx context.Context, customerID int) ([]*Sale, error)

	// ListBonuses lista apenas as vendas de bonificação
	ListBonuses(ctx context.Context) ([]*Sale, error)

	// NextInvoiceNumber retorna o próximo número de nota sequencial
	// com seis dígitos (ex.: "000042")
	NextInvoiceNumber(ctx context.Context) (string, error)

	// Update substitui integralmente os dados de uma venda existente
	Update(ctx context.Context, s *Sale) error

	// Delete remove uma venda
	Delete(ctx context.Context, id int) error

	// RefreshOverdue reclassifica vendas pendentes vencidas como
	// atrasadas e retorna quantas mudaram
	RefreshOverdue(ctx context.Context) (int, error)
}
