package supplier

import (
	"errors"
	"strings"
	"time"

	"github.com/thabi/crm-distribuidora/pkg/format"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrEmptyTaxID     = errors.New("CNPJ não pode ser vazio")
	ErrNotFound       = errors.New("fornecedor não encontrado")
	ErrDuplicateTaxID = errors.New("fornecedor com mesmo CNPJ já existe")
)

// Supplier representa um fornecedor da distribuidora
type Supplier struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	TaxID        string `json:"cnpj"`
	RegisteredAt string `json:"data_cadastro,omitempty"`
}

// NewSupplier cria um novo fornecedor. O CNPJ é armazenado apenas com
// dígitos; a validação de dígito verificador fica a cargo do chamador.
func NewSupplier(name, taxID string) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	digits := format.DigitsOnly(taxID)
	if digits == "" {
		return nil, ErrEmptyTaxID
	}

	return &Supplier{
		Name:         name,
		TaxID:        digits,
		RegisteredAt: time.Now().Format(format.DateBR),
	}, nil
}

// FormattedTaxID retorna o CNPJ no padrão XX.XXX.XXX/XXXX-XX
func (s *Supplier) FormattedTaxID() string {
	return format.FormatCNPJ(s.TaxID)
}

// Matches verifica se o fornecedor corresponde a um termo de busca
func (s *Supplier) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	if strings.Contains(strings.ToLower(s.Name), term) {
		return true
	}
	digits := format.DigitsOnly(term)
	return digits != "" && strings.Contains(s.TaxID, digits)
}
