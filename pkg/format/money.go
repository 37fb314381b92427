package format

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidCurrency indica que o texto não representa um valor monetário
var ErrInvalidCurrency = errors.New("valor monetário inválido")

// Currency formata um valor no padrão monetário brasileiro (R$ 1.234,56)
func Currency(valor decimal.Decimal) string {
	s := valor.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	inteiro, centavos := parts[0], parts[1]

	// Agrupar milhares com ponto
	var grupos []string
	for len(inteiro) > 3 {
		grupos = append([]string{inteiro[len(inteiro)-3:]}, grupos...)
		inteiro = inteiro[:len(inteiro)-3]
	}
	grupos = append([]string{inteiro}, grupos...)

	sinal := ""
	if neg {
		sinal = "-"
	}
	return "R$ " + sinal + strings.Join(grupos, ".") + "," + centavos
}

// ParseCurrency converte valores monetários em texto para decimal.
// Aceita tanto a convenção brasileira ("R$ 1.234,56") quanto a
// americana ("1234.56"); a presença de vírgula decide o separador decimal.
func ParseCurrency(texto string) (decimal.Decimal, error) {
	s := strings.TrimSpace(texto)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, ErrInvalidCurrency
	}

	if strings.Contains(s, ",") {
		// Formato brasileiro: ponto agrupa milhares, vírgula separa decimais
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidCurrency
	}
	return d, nil
}
