package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/thabi/crm-distribuidora/pkg/format"
)

var (
	ErrEmptyName        = errors.New("nome não pode ser vazio")
	ErrEmptyStoreNumber = errors.New("número da loja não pode ser vazio")
	ErrNotFound         = errors.New("cliente não encontrado")
	ErrDuplicateTaxID   = errors.New("cliente com mesmo CNPJ já existe")
)

// Customer representa um cliente da distribuidora
type Customer struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	StoreNumber  string `json:"numero_loja"`
	Address      string `json:"endereco"`
	Phone        string `json:"telefone"`
	Email        string `json:"email,omitempty"`
	TaxID        string `json:"cnpj,omitempty"`
	Group        string `json:"grupo,omitempty"`
	Notes        string `json:"observacoes,omitempty"`
	RegisteredAt string `json:"data_cadastro,omitempty"`
}

// NewCustomer cria um novo cliente. O ID é atribuído pelo repositório.
func NewCustomer(name, storeNumber, address, phone string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(storeNumber) == "" {
		return nil, ErrEmptyStoreNumber
	}

	return &Customer{
		Name:         name,
		StoreNumber:  storeNumber,
		Address:      address,
		Phone:        phone,
		RegisteredAt: time.Now().Format(format.DateBR),
	}, nil
}

// NormalizedTaxID retorna o CNPJ apenas com dígitos
func (c *Customer) NormalizedTaxID() string {
	return format.DigitsOnly(c.TaxID)
}

// Matches verifica se o cliente corresponde a um termo de busca
// (comparação case-insensitive sobre nome, número da loja e CNPJ)
func (c *Customer) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	if strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.StoreNumber), term) {
		return true
	}
	digits := format.DigitsOnly(term)
	return digits != "" && strings.Contains(c.NormalizedTaxID(), digits)
}
