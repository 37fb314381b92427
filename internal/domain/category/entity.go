package category

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("nome da categoria não pode ser vazio")
	ErrNotFound      = errors.New("categoria não encontrada")
	ErrDuplicateName = errors.New("categoria com mesmo nome já existe")
)

// Category representa uma categoria de despesa
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// DefaultNames são as categorias criadas na primeira execução
var DefaultNames = []string{
	"Matéria-prima",
	"Embalagens",
	"Transporte",
	"Combustível",
	"Manutenção",
	"Aluguel",
	"Água",
	"Energia",
	"Internet",
	"Telefone",
	"Folha de pagamento",
	"Impostos",
	"Marketing",
	"Outras despesas",
}

// NewCategory cria uma nova categoria. O ID é atribuído pelo repositório.
func NewCategory(name string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Category{Name: name}, nil
}

// SameName compara nomes de categoria sem diferenciar maiúsculas
func (c *Category) SameName(name string) bool {
	return strings.EqualFold(c.Name, name)
}
