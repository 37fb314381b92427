package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thabi/crm-distribuidora/pkg/format"
)

func TestNewSaleValidation(t *testing.T) {
	_, err := NewSale("001", "", "Mercado", decimal.NewFromInt(100), "Boleto", "", "", false)
	assert.ErrorIs(t, err, ErrEmptyExitDate)

	_, err = NewSale("001", "15/03/2025", "Mercado", decimal.Zero, "Boleto", "", "", false)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewSale("001", "15/03/2025", "Mercado", decimal.NewFromInt(100), "", "", "", false)
	assert.ErrorIs(t, err, ErrEmptyPaymentType)
}

func TestNewSaleDefaults(t *testing.T) {
	v, err := NewSale("001", "15/03/2025", "", decimal.NewFromInt(100), "Boleto", "", "", false)
	require.NoError(t, err)

	// Destinatário vazio vira cliente avulso
	assert.Equal(t, WalkInRecipient, v.Recipient)
	assert.Equal(t, StatusPending, v.Status)
	assert.NotEmpty(t, v.CreatedAt)
}

func TestDeriveStatus(t *testing.T) {
	// Pagamentos imediatos nascem pagos
	assert.Equal(t, StatusPaid, DeriveStatus("À vista", ""))
	assert.Equal(t, StatusPaid, DeriveStatus("PIX", ""))
	assert.Equal(t, StatusPaid, DeriveStatus("dinheiro", ""))
	assert.Equal(t, StatusPaid, DeriveStatus("Cartão", "01/01/2020"))

	// Boleto sem vencimento fica pendente
	assert.Equal(t, StatusPending, DeriveStatus("Boleto", ""))

	// Vencimento no passado nasce atrasado
	ontem := time.Now().AddDate(0, 0, -1).Format(format.DateBR)
	assert.Equal(t, StatusOverdue, DeriveStatus("Boleto", ontem))

	amanha := time.Now().AddDate(0, 0, 1).Format(format.DateBR)
	assert.Equal(t, StatusPending, DeriveStatus("Boleto", amanha))
}

func TestCustomerRef(t *testing.T) {
	v, err := NewSale("001", "15/03/2025", CustomerRef(42), decimal.NewFromInt(100), "Boleto", "", "", false)
	require.NoError(t, err)

	id, ok := v.CustomerID()
	require.True(t, ok)
	assert.Equal(t, 42, id)

	avulsa, err := NewSale("002", "15/03/2025", "Mercado Central", decimal.NewFromInt(50), "PIX", "", "", false)
	require.NoError(t, err)
	_, ok = avulsa.CustomerID()
	assert.False(t, ok)
}

func TestRefreshStatus(t *testing.T) {
	ontem := time.Now().AddDate(0, 0, -1).Format(format.DateBR)
	amanha := time.Now().AddDate(0, 0, 1).Format(format.DateBR)

	vencida := &Sale{Status: StatusPending, DueDate: ontem}
	assert.True(t, vencida.RefreshStatus())
	assert.Equal(t, StatusOverdue, vencida.Status)

	noPrazo := &Sale{Status: StatusPending, DueDate: amanha}
	assert.False(t, noPrazo.RefreshStatus())
	assert.Equal(t, StatusPending, noPrazo.Status)

	// Pago e cancelado são terminais
	paga := &Sale{Status: StatusPaid, DueDate: ontem}
	assert.False(t, paga.RefreshStatus())
	assert.Equal(t, StatusPaid, paga.Status)

	cancelada := &Sale{Status: StatusCanceled, DueDate: ontem}
	assert.False(t, cancelada.RefreshStatus())
	assert.Equal(t, StatusCanceled, cancelada.Status)
}
