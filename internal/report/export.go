package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/thabi/crm-distribuidora/pkg/format"
)

// Formatos de exportação aceitos
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ErrUnknownFormat indica um formato de exportação não suportado
var ErrUnknownFormat = fmt.Errorf("formato de exportação inválido")

// Sheet é uma aba tabular de um relatório exportado. No xlsx cada
// Sheet vira uma aba; no csv apenas a primeira é gravada.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Exportable é um relatório que sabe se apresentar em abas
type Exportable interface {
	Slug() string
	PeriodRange() (start, end string, ok bool)
	Sheets() []Sheet
}

// Export grava o relatório no diretório de relatórios e retorna o
// caminho do arquivo gerado
func (g *Generator) Export(rep Exportable, formato string) (string, error) {
	if err := os.MkdirAll(g.reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de relatórios: %w", err)
	}

	path := filepath.Join(g.reportsDir, fileName(rep, formato))

	var err error
	switch formato {
	case FormatXLSX:
		err = writeXLSX(path, rep.Sheets())
	case FormatCSV:
		err = writeCSV(path, rep.Sheets())
	case FormatJSON:
		err = writeJSON(path, rep)
	default:
		return "", ErrUnknownFormat
	}
	if err != nil {
		return "", err
	}

	g.log.Info("relatório exportado", "arquivo", path)
	return path, nil
}

// fileName monta relatorio_<tipo>_<inicio>_a_<fim>.<ext> quando o
// relatório tem período; sem período entra um carimbo de data/hora
func fileName(rep Exportable, formato string) string {
	if start, end, ok := rep.PeriodRange(); ok {
		return fmt.Sprintf("relatorio_%s_%s_a_%s.%s",
			rep.Slug(), compactDate(start), compactDate(end), formato)
	}
	return fmt.Sprintf("relatorio_%s_%s.%s",
		rep.Slug(), time.Now().Format("20060102_150405"), formato)
}

func compactDate(s string) string {
	d, err := time.Parse(format.DateBR, s)
	if err != nil {
		return s
	}
	return d.Format("20060102")
}

func writeXLSX(path string, sheets []Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			f.SetSheetName("Sheet1", sh.Name)
		} else {
			if _, err := f.NewSheet(sh.Name); err != nil {
				return fmt.Errorf("erro ao criar aba %s: %w", sh.Name, err)
			}
		}
		for col, h := range sh.Header {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(sh.Name, cell, h); err != nil {
				return err
			}
		}
		for row, valores := range sh.Rows {
			for col, v := range valores {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				if err := f.SetCellValue(sh.Name, cell, v); err != nil {
					return err
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("erro ao salvar planilha: %w", err)
	}
	return nil
}

// writeCSV grava apenas a primeira aba; csv não tem abas
func writeCSV(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("relatório sem dados tabulares")
	}
	sh := sheets[0]

	arq, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("erro ao criar csv: %w", err)
	}
	defer arq.Close()

	w := csv.NewWriter(arq)
	if err := w.Write(sh.Header); err != nil {
		return err
	}
	for _, valores := range sh.Rows {
		linha := make([]string, len(valores))
		for i, v := range valores {
			linha[i] = fmt.Sprint(v)
		}
		if err := w.Write(linha); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, rep Exportable) error {
	dados, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}
	return os.WriteFile(path, dados, 0o644)
}

// Slug identifica o tipo do relatório no nome do arquivo

func (r *SalesReport) Slug() string { return "vendas" }

func (r *SalesReport) PeriodRange() (string, string, bool) {
	return r.Period.Start, r.Period.End, true
}

func (r *SalesReport) Sheets() []Sheet {
	resumo := Sheet{
		Name:   "Resumo",
		Header: []string{"Período", "Total de Vendas", "Valor Total"},
		Rows: [][]interface{}{{
			r.Period.Start + " a " + r.Period.End,
			r.TotalSales,
			r.TotalValue.InexactFloat64(),
		}},
	}

	clientes := Sheet{
		Name:   "Por Cliente",
		Header: []string{"Cliente", "Quantidade", "Valor"},
	}
	for _, b := range r.ByCustomer {
		clientes.Rows = append(clientes.Rows,
			[]interface{}{b.Name, b.Count, b.Total.InexactFloat64()})
	}

	return []Sheet{
		resumo,
		bucketSheet("Por Forma de Pagamento", "Forma de Pagamento", r.ByPaymentMethod),
		bucketSheet("Por Status", "Status", r.ByStatus),
		clientes,
	}
}

func (r *ExpensesReport) Slug() string { return "despesas" }

func (r *ExpensesReport) PeriodRange() (string, string, bool) {
	return r.Period.Start, r.Period.End, true
}

func (r *ExpensesReport) Sheets() []Sheet {
	resumo := Sheet{
		Name:   "Resumo",
		Header: []string{"Período", "Total de Despesas", "Valor Total"},
		Rows: [][]interface{}{{
			r.Period.Start + " a " + r.Period.End,
			r.TotalExpenses,
			r.TotalValue.InexactFloat64(),
		}},
	}

	fornecedores := Sheet{
		Name:   "Por Fornecedor",
		Header: []string{"Fornecedor", "Quantidade", "Valor"},
	}
	for _, b := range r.BySupplier {
		fornecedores.Rows = append(fornecedores.Rows,
			[]interface{}{b.Name, b.Count, b.Total.InexactFloat64()})
	}

	return []Sheet{
		resumo,
		bucketSheet("Por Categoria", "Categoria", r.ByCategory),
		bucketSheet("Por Status", "Status", r.ByStatus),
		fornecedores,
	}
}

func (r *ProductsReport) Slug() string { return "produtos" }

func (r *ProductsReport) PeriodRange() (string, string, bool) {
	return "", "", false
}

func (r *ProductsReport) Sheets() []Sheet {
	margens := Sheet{
		Name:   "Por Margem",
		Header: []string{"ID", "Produto", "Valor de Compra", "Valor de Venda", "Margem %"},
	}
	for _, p := range r.ByMargin {
		margens.Rows = append(margens.Rows, []interface{}{
			p.ID, p.Name,
			p.PurchasePrice.InexactFloat64(),
			p.SalePrice.InexactFloat64(),
			p.MarginPercent.InexactFloat64(),
		})
	}

	fornecedores := Sheet{
		Name:   "Por Fornecedor",
		Header: []string{"ID", "Fornecedor", "Produtos"},
	}
	for _, f := range r.BySupplier {
		fornecedores.Rows = append(fornecedores.Rows,
			[]interface{}{f.ID, f.Name, f.Count})
	}

	return []Sheet{margens, fornecedores}
}

func (r *CustomersReport) Slug() string { return "clientes" }

func (r *CustomersReport) PeriodRange() (string, string, bool) {
	return r.Period.Start, r.Period.End, true
}

func (r *CustomersReport) Sheets() []Sheet {
	valores := Sheet{
		Name:   "Por Valor",
		Header: []string{"ID", "Cliente", "Compras", "Valor"},
	}
	for _, c := range r.ByValue {
		valores.Rows = append(valores.Rows,
			[]interface{}{c.ID, c.Name, c.Count, c.Total.InexactFloat64()})
	}

	grupos := Sheet{
		Name:   "Por Grupo",
		Header: []string{"Grupo", "Clientes", "Vendas", "Valor"},
	}
	for _, nome := range sortedKeys(r.ByGroup) {
		g := r.ByGroup[nome]
		grupos.Rows = append(grupos.Rows,
			[]interface{}{nome, g.Customers, g.Sales, g.Total.InexactFloat64()})
	}

	return []Sheet{valores, grupos}
}

func (r *ProfitReport) Slug() string { return "lucro" }

func (r *ProfitReport) PeriodRange() (string, string, bool) {
	return r.Period.Start, r.Period.End, true
}

func (r *ProfitReport) Sheets() []Sheet {
	return []Sheet{{
		Name: "Lucro",
		Header: []string{
			"Período", "Vendas", "Valor de Vendas",
			"Despesas", "Valor de Despesas", "Lucro Bruto", "Margem %",
		},
		Rows: [][]interface{}{{
			r.Period.Start + " a " + r.Period.End,
			r.TotalSales, r.SalesValue.InexactFloat64(),
			r.TotalExpenses, r.ExpensesValue.InexactFloat64(),
			r.GrossProfit.InexactFloat64(), r.MarginPercent.InexactFloat64(),
		}},
	}}
}

func bucketSheet(name, keyHeader string, buckets map[string]Bucket) Sheet {
	sh := Sheet{Name: name, Header: []string{keyHeader, "Quantidade", "Valor"}}
	for _, k := range sortedKeys(buckets) {
		b := buckets[k]
		sh.Rows = append(sh.Rows, []interface{}{k, b.Count, b.Total.InexactFloat64()})
	}
	return sh
}

func sortedKeys[V any](m map[string]V) []string {
	chaves := make([]string, 0, len(m))
	for k := range m {
		chaves = append(chaves, k)
	}
	sort.Strings(chaves)
	return chaves
}
