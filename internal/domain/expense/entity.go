package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thabi/crm-distribuidora/pkg/format"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor da despesa deve ser maior que zero")
	ErrEmptyDate        = errors.New("data não pode ser vazia")
	ErrEmptyCategory    = errors.New("categoria não pode ser vazia")
	ErrNotFound         = errors.New("despesa não encontrada")
)

// Status representa o status de pagamento de uma despesa
type Status string

const (
	StatusPending  Status = "pendente"
	StatusPaid     Status = "pago"
	StatusOverdue  Status = "atrasado"
	StatusCanceled Status = "cancelado"
)

// Expense representa uma despesa da distribuidora
type Expense struct {
	ID            int             `json:"id"`
	Description   string          `json:"descricao"`
	Amount        decimal.Decimal `json:"valor"`
	Date          string          `json:"data"`
	Category      string          `json:"categoria"`
	Status        Status          `json:"status"`
	SupplierID    *int            `json:"fornecedor_id,omitempty"`
	InvoiceNumber string          `json:"numero_nota,omitempty"`
	DueDate       string          `json:"vencimento,omitempty"`
	CreatedAt     string          `json:"data_cadastro,omitempty"`
}

// NewExpense cria uma nova despesa. O status informado é reavaliado
// contra o vencimento antes de persistir.
func NewExpense(description string, amount decimal.Decimal, date, category string, supplierID *int, invoiceNumber, dueDate string, status Status) (*Expense, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(date) == "" {
		return nil, ErrEmptyDate
	}
	if strings.TrimSpace(category) == "" {
		return nil, ErrEmptyCategory
	}

	if status == "" {
		status = StatusPending
	}

	e := &Expense{
		Description:   description,
		Amount:        amount,
		Date:          date,
		Category:      category,
		Status:        status,
		SupplierID:    supplierID,
		InvoiceNumber: invoiceNumber,
		DueDate:       dueDate,
		CreatedAt:     time.Now().Format("02/01/2006 15:04:05"),
	}
	e.RefreshStatus()
	return e, nil
}

// RefreshStatus reclassifica despesas pendentes com vencimento no
// passado como atrasadas. Pago e cancelado são terminais.
// Retorna true se o status mudou.
func (e *Expense) RefreshStatus() bool {
	if e.Status == StatusPaid || e.Status == StatusCanceled {
		return false
	}
	if e.DueDate == "" {
		return false
	}
	if e.Status == StatusPending && format.DaysUntilDue(e.DueDate) < 0 {
		e.Status = StatusOverdue
		return true
	}
	return false
}
