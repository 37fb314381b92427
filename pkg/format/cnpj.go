package format

import "strings"

// DigitsOnly remove do documento tudo que não for dígito
func DigitsOnly(doc string) string {
	var b strings.Builder
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCNPJ verifica os dígitos verificadores de um CNPJ.
// Os repositórios ativos exigem apenas unicidade; esta validação fica
// disponível para quem quiser o modo estrito.
func ValidCNPJ(cnpj string) bool {
	cnpj = DigitsOnly(cnpj)
	if len(cnpj) != 14 {
		return false
	}

	// CNPJ com todos os dígitos iguais passa na conta mas é inválido
	same := true
	for i := 1; i < 14; i++ {
		if cnpj[i] != cnpj[0] {
			same = false
			break
		}
	}
	if same {
		return false
	}

	digit := func(n int) int {
		peso := n - 7
		soma := 0
		for i := 0; i < n; i++ {
			soma += int(cnpj[i]-'0') * peso
			peso--
			if peso < 2 {
				peso = 9
			}
		}
		resto := soma % 11
		if resto < 2 {
			return 0
		}
		return 11 - resto
	}

	return int(cnpj[12]-'0') == digit(12) && int(cnpj[13]-'0') == digit(13)
}

// FormatCNPJ formata um CNPJ no padrão XX.XXX.XXX/XXXX-XX.
// Documentos com tamanho inesperado são devolvidos apenas com os dígitos.
func FormatCNPJ(cnpj string) string {
	cnpj = DigitsOnly(cnpj)
	if len(cnpj) != 14 {
		return cnpj
	}
	return cnpj[:2] + "." + cnpj[2:5] + "." + cnpj[5:8] + "/" + cnpj[8:12] + "-" + cnpj[12:]
}
