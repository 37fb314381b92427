package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCNPJ(t *testing.T) {
	// CNPJs com dígitos verificadores corretos
	assert.True(t, ValidCNPJ("11.222.333/0001-81"))
	assert.True(t, ValidCNPJ("11222333000181"))

	// Dígito verificador errado
	assert.False(t, ValidCNPJ("11.222.333/0001-82"))
	// Tamanho errado
	assert.False(t, ValidCNPJ("1122233300018"))
	// Todos os dígitos iguais
	assert.False(t, ValidCNPJ("00000000000000"))
	assert.False(t, ValidCNPJ(""))
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", FormatCNPJ("11222333000181"))
	// Fora do tamanho padrão, devolve como veio
	assert.Equal(t, "123", FormatCNPJ("123"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345678000190", DigitsOnly("12.345.678/0001-90"))
	assert.Equal(t, "", DigitsOnly("abc"))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", Currency(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 0,00", Currency(decimal.Zero))
	assert.Equal(t, "R$ 1.000.000,00", Currency(decimal.NewFromInt(1000000)))
	assert.Equal(t, "R$ -12,30", Currency(decimal.RequireFromString("-12.3")))
}

func TestParseCurrency(t *testing.T) {
	casos := map[string]string{
		"R$ 1.234,56": "1234.56",
		"1.234,56":    "1234.56",
		"1234,56":     "1234.56",
		"1234.56":     "1234.56",
		"150":         "150",
		"0,00":        "0",
	}
	for entrada, esperado := range casos {
		valor, err := ParseCurrency(entrada)
		require.NoError(t, err, "entrada %q", entrada)
		assert.True(t, valor.Equal(decimal.RequireFromString(esperado)),
			"entrada %q: esperado %s, veio %s", entrada, esperado, valor)
	}

	_, err := ParseCurrency("abc")
	assert.Error(t, err)
	_, err = ParseCurrency("")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	// O formato brasileiro tem prioridade sobre os demais
	d, err := ParseDate("15/03/2025")
	require.NoError(t, err)
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())

	d, err = ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, 15, d.Day())

	d, err = ParseDate("15-03-2025")
	require.NoError(t, err)
	assert.Equal(t, time.March, d.Month())

	_, err = ParseDate("31/02/2025")
	assert.Error(t, err)
	_, err = ParseDate("data inválida")
	assert.Error(t, err)
}

func TestDateConversions(t *testing.T) {
	assert.Equal(t, "2025-03-15", DateBRToISO("15/03/2025"))
	assert.Equal(t, "15/03/2025", DateISOToBR("2025-03-15"))
	// Entrada ilegível resulta em vazio
	assert.Equal(t, "", DateBRToISO("xx"))
	assert.Equal(t, "", DateISOToBR("xx"))
}

func TestDaysUntilDue(t *testing.T) {
	amanha := time.Now().AddDate(0, 0, 1).Format(DateBR)
	ontem := time.Now().AddDate(0, 0, -1).Format(DateBR)

	assert.Equal(t, 1, DaysUntilDue(amanha))
	assert.Equal(t, -1, DaysUntilDue(ontem))
	assert.Equal(t, 0, DaysUntilDue(Today()))
	assert.Equal(t, 0, DaysUntilDue("sem data"))
}
