package importer

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/thabi/crm-distribuidora/internal/adapter/repository"
	"github.com/thabi/crm-distribuidora/internal/domain/customer"
	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/pkg/format"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

func newImporter(t *testing.T) (*Importer, sale.Repository, customer.Repository) {
	t.Helper()
	dir := t.TempDir()
	log := logger.NewNopLogger()
	sales := repository.NewSaleRepository(dir, log)
	customers := repository.NewCustomerRepository(dir, log)
	return NewImporter(sales, customers, log), sales, customers
}

func TestParseCSVComApelidos(t *testing.T) {
	imp, _, _ := newImporter(t)

	// Cabeçalhos com os apelidos usados nas planilhas reais
	csv := strings.Join([]string{
		"NFE;DataSaida;Destinatario;Nume da Loja;Valor;Pix ou Boleto;Pago",
		"000123;15/03/2025;Mercado Central;12;R$ 1.234,56;Boleto;quitado",
		"000124;16/03/2025;Padaria Estrela;;500,00;Pix;",
	}, "\n")

	resultado, err := imp.Parse("vendas.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.Stats.Total)
	assert.Equal(t, 2, resultado.Stats.Valid)
	assert.Equal(t, 0, resultado.Stats.Errors)
	require.Len(t, resultado.Rows, 2)

	primeira := resultado.Rows[0]
	assert.Equal(t, "000123", primeira.InvoiceNumber)
	assert.Equal(t, "15/03/2025", primeira.ExitDate)
	assert.Equal(t, "Mercado Central - Loja 12", primeira.Recipient)
	assert.Equal(t, "1234.56", primeira.Amount.StringFixed(2))
	assert.Equal(t, "Boleto", primeira.PaymentMethod)
	assert.Equal(t, sale.StatusPaid, primeira.Status)

	segunda := resultado.Rows[1]
	assert.Equal(t, "Padaria Estrela", segunda.Recipient)
	assert.Equal(t, "500.00", segunda.Amount.StringFixed(2))
	assert.Equal(t, sale.StatusPending, segunda.Status)
	// Sem vencimento na planilha o vencimento acompanha a saída
	assert.Equal(t, "16/03/2025", segunda.DueDate)
}

func TestParsePadroesDePreenchimento(t *testing.T) {
	imp, _, _ := newImporter(t)

	csv := "Destinatario;Valor\nMercearia Solo;abc\n"
	resultado, err := imp.Parse("vendas.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, resultado.Rows, 1)

	linha := resultado.Rows[0]
	// Nota ausente recebe sequencial de importação; valor ilegível
	// fica zerado; data ausente assume o dia corrente
	assert.Equal(t, "IMP-1", linha.InvoiceNumber)
	assert.True(t, linha.Amount.IsZero())
	assert.Equal(t, format.Today(), linha.ExitDate)
	assert.Equal(t, "À vista", linha.PaymentMethod)
}

func TestParseCabecalhoDesconhecido(t *testing.T) {
	imp, _, _ := newImporter(t)

	csv := "coluna1;coluna2\na;b\n"
	_, err := imp.Parse("vendas.csv", strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nenhuma coluna reconhecida")
}

func TestParseLinhaVaziaContaComoErro(t *testing.T) {
	imp, _, _ := newImporter(t)

	csv := "Destinatario;Valor\nMercado A;100,00\n;\n"
	resultado, err := imp.Parse("vendas.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.Stats.Total)
	assert.Equal(t, 1, resultado.Stats.Valid)
	assert.Equal(t, 1, resultado.Stats.Errors)
}

func TestParseCSVLatin1ComVirgula(t *testing.T) {
	imp, _, _ := newImporter(t)

	// Conteúdo em ISO-8859-1 separado por vírgula ("São" com 0xE3)
	conteudo := append([]byte("Destinatario,Valor\nMercado S"), 0xE3)
	conteudo = append(conteudo, []byte("o Jorge,\"1.000,00\"\n")...)

	resultado, err := imp.Parse("vendas.csv", bytes.NewReader(conteudo))
	require.NoError(t, err)
	require.Len(t, resultado.Rows, 1)
	assert.Equal(t, "Mercado São Jorge", resultado.Rows[0].Recipient)
	assert.Equal(t, "1000.00", resultado.Rows[0].Amount.StringFixed(2))
}

func TestParseXLSX(t *testing.T) {
	imp, _, _ := newImporter(t)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Numero_Nota", "Data_Saida", "Destinatario", "Valor"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"42", "10/03/2025", "Mercado A", "250,00"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	resultado, err := imp.Parse("vendas.xlsx", &buf)
	require.NoError(t, err)
	require.Len(t, resultado.Rows, 1)
	assert.Equal(t, "42", resultado.Rows[0].InvoiceNumber)
	assert.Equal(t, "250.00", resultado.Rows[0].Amount.StringFixed(2))
}

func TestParseFormatoNaoSuportado(t *testing.T) {
	imp, _, _ := newImporter(t)

	_, err := imp.Parse("vendas.pdf", strings.NewReader("qualquer coisa"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestPreviewLimitado(t *testing.T) {
	imp, _, _ := newImporter(t)

	var sb strings.Builder
	sb.WriteString("Destinatario;Valor\n")
	for i := 0; i < PreviewLimit+10; i++ {
		fmt.Fprintf(&sb, "Cliente %d;100,00\n", i)
	}

	resultado, err := imp.Parse("vendas.csv", strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, PreviewLimit+10, resultado.Stats.Valid)
	assert.Len(t, resultado.Preview(), PreviewLimit)
}

func TestCommitCriaClientes(t *testing.T) {
	imp, sales, customers := newImporter(t)
	ctx := context.Background()

	existente, err := customer.NewCustomer("Mercado Central", "12", "", "")
	require.NoError(t, err)
	require.NoError(t, customers.Create(ctx, existente))

	csv := strings.Join([]string{
		"NFE;Destinatario;Valor;Pix ou Boleto",
		"1;mercado central;100,00;Pix",
		"2;Padaria Nova;200,00;Boleto",
	}, "\n")
	resultado, err := imp.Parse("vendas.csv", strings.NewReader(csv))
	require.NoError(t, err)

	resumo, err := imp.Commit(ctx, resultado.Rows, true)
	require.NoError(t, err)
	assert.NotEmpty(t, resumo.BatchID)
	assert.Equal(t, 2, resumo.Imported)
	assert.Equal(t, 2, resumo.Processed)

	// O nome casou sem distinção de maiúsculas com o cliente existente
	vendas, err := sales.ListByCustomer(ctx, existente.ID)
	require.NoError(t, err)
	require.Len(t, vendas, 1)
	assert.Equal(t, "100.00", vendas[0].Amount.StringFixed(2))

	// O cliente desconhecido foi criado com número de loja automático
	novo, err := customers.FindByName(ctx, "Padaria Nova")
	require.NoError(t, err)
	assert.Equal(t, "AUTO-2", novo.StoreNumber)
	assert.Equal(t, "Cliente criado automaticamente na importação", novo.Notes)

	vendas, err = sales.ListByCustomer(ctx, novo.ID)
	require.NoError(t, err)
	assert.Len(t, vendas, 1)
}

func TestCommitSemCriarClientes(t *testing.T) {
	imp, sales, customers := newImporter(t)
	ctx := context.Background()

	csv := "NFE;Destinatario;Valor;Pix ou Boleto\n1;Cliente Novo;100,00;Pix\n"
	resultado, err := imp.Parse("vendas.csv", strings.NewReader(csv))
	require.NoError(t, err)

	resumo, err := imp.Commit(ctx, resultado.Rows, false)
	require.NoError(t, err)
	assert.Equal(t, 1, resumo.Imported)

	// Nenhum cliente criado; a venda fica com o destinatário textual
	clientes, err := customers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clientes)

	vendas, err := sales.List(ctx)
	require.NoError(t, err)
	require.Len(t, vendas, 1)
	assert.Equal(t, "Cliente Novo", vendas[0].Recipient)
	_, registrado := vendas[0].CustomerID()
	assert.False(t, registrado)
}

func TestCommitPulaLinhaInvalida(t *testing.T) {
	imp, sales, _ := newImporter(t)
	ctx := context.Background()

	// Valor zerado não passa na validação da venda e a linha é pulada,
	// sem interromper o restante do lote
	csv := strings.Join([]string{
		"NFE;Destinatario;Valor;Pix ou Boleto",
		"1;Mercado A;abc;Pix",
		"2;Mercado B;300,00;Pix",
	}, "\n")
	resultado, err := imp.Parse("vendas.csv", strings.NewReader(csv))
	require.NoError(t, err)

	resumo, err := imp.Commit(ctx, resultado.Rows, false)
	require.NoError(t, err)
	assert.Equal(t, 1, resumo.Imported)
	assert.Equal(t, 2, resumo.Processed)

	vendas, err := sales.List(ctx)
	require.NoError(t, err)
	require.Len(t, vendas, 1)
	assert.Equal(t, "2", vendas[0].InvoiceNumber)
}

func TestNormalizeStatusSinonimos(t *testing.T) {
	casos := map[string]sale.Status{
		"Pago":      sale.StatusPaid,
		"QUITADO":   sale.StatusPaid,
		"liquidado": sale.StatusPaid,
		"aberto":    sale.StatusPending,
		"em_aberto": sale.StatusPending,
		"vencido":   sale.StatusOverdue,
		"cancelada": sale.StatusCanceled,
		"sim":       sale.StatusPending,
	}
	for texto, esperado := range casos {
		assert.Equal(t, esperado, normalizeStatus(texto), "status %q", texto)
	}
}

func TestTemplate(t *testing.T) {
	dados, err := Template()
	require.NoError(t, err)
	require.NotEmpty(t, dados)

	f, err := excelize.OpenReader(bytes.NewReader(dados))
	require.NoError(t, err)
	defer f.Close()

	linhas, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(linhas), 2)
	assert.Equal(t, templateHeader, linhas[0])

	// O cabeçalho do modelo precisa ser reconhecido pelo importador
	colunas := matchColumns(linhas[0])
	assert.Contains(t, colunas, "numero_nota")
	assert.Contains(t, colunas, "destinatario")
	assert.Contains(t, colunas, "valor")

	instrucoes, err := f.GetRows("Instruções")
	require.NoError(t, err)
	assert.Len(t, instrucoes, len(templateInstructions))
}
