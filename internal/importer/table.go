package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrUnsupportedFormat indica extensão de arquivo fora de xlsx, xls e csv
var ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")

// readTable lê o conteúdo tabular do arquivo enviado, qualquer que
// seja o formato, como uma matriz de células em texto
func readTable(filename string, file io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(file)
	case ".xls":
		return readXLS(file)
	case ".csv":
		return readCSV(file)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func readXLSX(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo: %w", err)
	}
	defer f.Close()

	abas := f.GetSheetList()
	if len(abas) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}
	rows, err := f.GetRows(abas[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo: %w", err)
	}
	return rows, nil
}

// readXLS grava o conteúdo num arquivo temporário porque a biblioteca
// de .xls só abre por caminho
func readXLS(file io.Reader) ([][]string, error) {
	tmp, err := os.CreateTemp("", "importacao-*.xls")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("erro ao gravar arquivo temporário: %w", err)
	}
	tmp.Close()

	workbook, err := xls.OpenFile(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo: %w", err)
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil || sheet == nil {
		return nil, fmt.Errorf("planilha sem abas")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.GetNumberRows()); i++ {
		row, err := sheet.GetRow(i)
		if err != nil || row == nil {
			continue
		}
		var cells []string
		for _, col := range row.GetCols() {
			if col != nil {
				cells = append(cells, col.GetString())
			} else {
				cells = append(cells, "")
			}
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// readCSV aceita utf-8 e cai para latin-1 quando o conteúdo não é
// utf-8 válido, comum em exportações de ERPs antigos
func readCSV(file io.Reader) ([][]string, error) {
	conteudo, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo: %w", err)
	}

	if !utf8.Valid(conteudo) {
		decoder := charmap.ISO8859_1.NewDecoder()
		conteudo, err = io.ReadAll(transform.NewReader(bytes.NewReader(conteudo), decoder))
		if err != nil {
			return nil, fmt.Errorf("erro ao decodificar arquivo: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(conteudo))
	reader.Comma = detectDelimiter(conteudo)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo: %w", err)
	}
	return rows, nil
}

func detectDelimiter(conteudo []byte) rune {
	linha := conteudo
	if i := bytes.IndexByte(conteudo, '\n'); i >= 0 {
		linha = conteudo[:i]
	}
	if bytes.Count(linha, []byte{';'}) > bytes.Count(linha, []byte{','}) {
		return ';'
	}
	return ','
}
