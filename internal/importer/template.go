package importer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// templateHeader usa os nomes canônicos, todos reconhecidos na leitura
var templateHeader = []string{
	"numero_nota", "data_saida", "destinatario", "numero_loja",
	"valor", "forma_pagamento", "data_vencimento", "status_pagamento",
}

var templateExample = []interface{}{
	"000123", "15/03/2025", "Mercado Central", "12",
	"1.234,56", "Boleto", "15/04/2025", "pendente",
}

var templateInstructions = []string{
	"Preencha uma venda por linha na aba Vendas.",
	"Datas no formato dd/mm/aaaa.",
	"Valores no formato brasileiro (1.234,56); o símbolo R$ é opcional.",
	"Sem numero_nota a venda recebe um sequencial de importação.",
	"Sem data_vencimento assume-se a própria data de saída.",
	"status_pagamento aceita: pago, pendente, atrasado, cancelado.",
}

// Template gera uma planilha modelo com o cabeçalho aceito, uma linha
// de exemplo e uma aba de instruções, pronta para ser preenchida e
// importada de volta
func Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const aba = "Vendas"
	f.SetSheetName("Sheet1", aba)

	negrito, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for col, h := range templateHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(aba, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(aba, cell, cell, negrito); err != nil {
			return nil, err
		}
	}
	for col, v := range templateExample {
		cell, _ := excelize.CoordinatesToCellName(col+1, 2)
		if err := f.SetCellValue(aba, cell, v); err != nil {
			return nil, err
		}
	}

	const instrucoes = "Instruções"
	if _, err := f.NewSheet(instrucoes); err != nil {
		return nil, err
	}
	for linha, texto := range templateInstructions {
		cell, _ := excelize.CoordinatesToCellName(1, linha+1)
		if err := f.SetCellValue(instrucoes, cell, texto); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha modelo: %w", err)
	}
	return buf.Bytes(), nil
}
