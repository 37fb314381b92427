package format

import (
	"errors"
	"time"
)

// DateBR é o formato de data usado em todos os registros (dd/mm/aaaa)
const DateBR = "02/01/2006"

// ErrInvalidDate indica que nenhum dos formatos aceitos reconheceu a data
var ErrInvalidDate = errors.New("data inválida")

// dateLayouts são os formatos aceitos na entrada, em ordem de prioridade
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
	"02/01/06",
}

// ParseDate interpreta uma data em qualquer um dos formatos aceitos
func ParseDate(texto string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, texto); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// DateBRToISO converte dd/mm/aaaa para aaaa-mm-dd; retorna vazio se inválida
func DateBRToISO(dataBR string) string {
	t, err := time.Parse(DateBR, dataBR)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// DateISOToBR converte aaaa-mm-dd para dd/mm/aaaa; retorna vazio se inválida
func DateISOToBR(dataISO string) string {
	t, err := time.Parse("2006-01-02", dataISO)
	if err != nil {
		return ""
	}
	return t.Format(DateBR)
}

// Today retorna a data de hoje no formato brasileiro
func Today() string {
	return time.Now().Format(DateBR)
}

// DaysUntilDue calcula quantos dias faltam para o vencimento
// (negativo quando já passou). Datas inválidas resultam em 0.
func DaysUntilDue(vencimento string) int {
	venc, err := time.Parse(DateBR, vencimento)
	if err != nil {
		return 0
	}
	agora := time.Now()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, time.UTC)
	return int(venc.Sub(hoje).Hours() / 24)
}
