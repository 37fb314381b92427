package sale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thabi/crm-distribuidora/pkg/format"
)

var (
	ErrEmptyExitDate    = errors.New("data de saída não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor da venda deve ser maior que zero")
	ErrEmptyPaymentType = errors.New("forma de pagamento não pode ser vazia")
	ErrNotFound         = errors.New("venda não encontrada")
)

// Status representa o status de pagamento de uma venda
type Status string

const (
	StatusPending  Status = "pendente"
	StatusPaid     Status = "pago"
	StatusOverdue  Status = "atrasado"
	StatusCanceled Status = "cancelado"
)

// CustomerRefPrefix codifica a referência a um cliente cadastrado no
// campo destinatário (ex.: "cliente/12"). Qualquer outro texto é
// tratado como cliente avulso.
const CustomerRefPrefix = "cliente/"

// WalkInRecipient é o destinatário padrão quando nenhum é informado
const WalkInRecipient = "Cliente Avulso"

// Item representa um item vendido em uma nota
type Item struct {
	ProductID int             `json:"produto_id"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"valor_unitario"`
	LineTotal decimal.Decimal `json:"total_item"`
}

// Sale representa uma venda registrada
type Sale struct {
	ID            int             `json:"id"`
	InvoiceNumber string          `json:"numero_nota"`
	ExitDate      string          `json:"data_saida"`
	Recipient     string          `json:"destinatario"`
	Amount        decimal.Decimal `json:"valor"`
	PaymentMethod string          `json:"forma_pagamento"`
	DueDate       string          `json:"data_vencimento,omitempty"`
	Status        Status          `json:"status_pagamento"`
	Bonus         bool            `json:"bonificacao"`
	Items         []Item          `json:"produtos,omitempty"`
	CreatedAt     string          `json:"data_cadastro,omitempty"`
}

// NewSale cria uma nova venda. Quando o status não é informado ele é
// derivado da forma de pagamento e do vencimento; quando o destinatário
// está vazio assume-se cliente avulso. O ID e o número de nota
// automático são atribuídos pelo repositório.
func NewSale(invoiceNumber, exitDate, recipient string, amount decimal.Decimal, paymentMethod, dueDate string, status Status, bonus bool) (*Sale, error) {
	if strings.TrimSpace(exitDate) == "" {
		return nil, ErrEmptyExitDate
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, ErrEmptyPaymentType
	}

	if recipient == "" {
		recipient = WalkInRecipient
	}
	if status == "" {
		status = DeriveStatus(paymentMethod, dueDate)
	}

	return &Sale{
		InvoiceNumber: invoiceNumber,
		ExitDate:      exitDate,
		Recipient:     recipient,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		DueDate:       dueDate,
		Status:        status,
		Bonus:         bonus,
		CreatedAt:     time.Now().Format("02/01/2006 15:04:05"),
	}, nil
}

// DeriveStatus calcula o status de pagamento a partir da forma de
// pagamento e da data de vencimento: pagamentos à vista nascem pagos;
// vencimento no passado resulta em atrasado.
func DeriveStatus(paymentMethod, dueDate string) Status {
	switch strings.ToLower(paymentMethod) {
	case "à vista", "a vista", "pix", "dinheiro", "cartão", "cartao":
		return StatusPaid
	}

	if dueDate == "" {
		return StatusPending
	}
	if format.DaysUntilDue(dueDate) < 0 {
		return StatusOverdue
	}
	return StatusPending
}

// CustomerRef monta a referência de destinatário para um cliente cadastrado
func CustomerRef(customerID int) string {
	return fmt.Sprintf("%s%d", CustomerRefPrefix, customerID)
}

// CustomerID extrai o ID do cliente do destinatário, quando a venda
// referencia um cliente cadastrado
func (s *Sale) CustomerID() (int, bool) {
	if !strings.Contains(s.Recipient, CustomerRefPrefix) {
		return 0, false
	}
	parts := strings.Split(s.Recipient, "/")
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, false
	}
	return id, true
}

// RefreshStatus reavalia vendas pendentes com vencimento no passado.
// Pago e cancelado são terminais e nunca são sobrescritos.
// Retorna true se o status mudou.
func (s *Sale) RefreshStatus() bool {
	if s.Status != StatusPending || s.DueDate == "" {
		return false
	}
	if format.DaysUntilDue(s.DueDate) < 0 {
		s.Status = StatusOverdue
		return true
	}
	return false
}
