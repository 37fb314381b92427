package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thabi/crm-distribuidora/internal/adapter/repository"
	"github.com/thabi/crm-distribuidora/internal/domain/customer"
	"github.com/thabi/crm-distribuidora/internal/domain/expense"
	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/pkg/format"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

type fixture struct {
	gen       *Generator
	sales     sale.Repository
	expenses  expense.Repository
	customers customer.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	log := logger.NewNopLogger()

	sales := repository.NewSaleRepository(dir, log)
	expenses := repository.NewExpenseRepository(dir, log)
	products := repository.NewProductRepository(dir, log)
	customers := repository.NewCustomerRepository(dir, log)
	suppliers := repository.NewSupplierRepository(dir, log)

	return &fixture{
		gen:       NewGenerator(sales, expenses, products, customers, suppliers, log, filepath.Join(dir, "relatorios")),
		sales:     sales,
		expenses:  expenses,
		customers: customers,
	}
}

func (f *fixture) addSale(t *testing.T, data, destinatario string, valor int64, forma string, status sale.Status) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale("", data, destinatario, decimal.NewFromInt(valor), forma, "", status, false)
	require.NoError(t, err)
	require.NoError(t, f.sales.Create(context.Background(), s))
	return s
}

func (f *fixture) addExpense(t *testing.T, data string, valor int64, categoria string, status expense.Status) {
	t.Helper()
	e, err := expense.NewExpense("Despesa de teste", decimal.NewFromInt(valor), data, categoria, nil, "", "", status)
	require.NoError(t, err)
	require.NoError(t, f.expenses.Create(context.Background(), e))
}

func TestSalesReportPeriodo(t *testing.T) {
	f := newFixture(t)
	f.addSale(t, "01/03/2025", "Mercado A", 100, "Pix", "")
	f.addSale(t, "15/03/2025", "Mercado B", 200, "Boleto", sale.StatusPending)
	// Fora do período, não deve entrar na conta
	f.addSale(t, "01/04/2025", "Mercado A", 999, "Pix", "")

	rep, err := f.gen.Sales(context.Background(), "01/03/2025", "31/03/2025")
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.Equal(t, 2, rep.TotalSales)
	assert.Equal(t, "300.00", rep.TotalValue.StringFixed(2))
	assert.Equal(t, "01/03/2025", rep.Period.Start)

	assert.Equal(t, 1, rep.ByPaymentMethod["Pix"].Count)
	assert.Equal(t, "100.00", rep.ByPaymentMethod["Pix"].Total.StringFixed(2))
	assert.Equal(t, 1, rep.ByStatus[string(sale.StatusPaid)].Count)
	assert.Equal(t, 1, rep.ByStatus[string(sale.StatusPending)].Count)
}

func TestSalesReportSemDados(t *testing.T) {
	f := newFixture(t)
	f.addSale(t, "01/03/2025", "Mercado A", 100, "Pix", "")

	rep, err := f.gen.Sales(context.Background(), "01/01/2024", "31/01/2024")
	require.NoError(t, err)
	assert.Nil(t, rep)
}

func TestSalesReportPeriodoInvalido(t *testing.T) {
	f := newFixture(t)

	_, err := f.gen.Sales(context.Background(), "2025-03-01", "31/03/2025")
	assert.Error(t, err)
}

func TestSalesReportPorCliente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := customer.NewCustomer("Rede Estrela", "10", "", "")
	require.NoError(t, err)
	require.NoError(t, f.customers.Create(ctx, c))

	f.addSale(t, "10/03/2025", sale.CustomerRef(c.ID), 500, "Pix", "")
	f.addSale(t, "11/03/2025", "Cliente Avulso", 100, "Pix", "")

	rep, err := f.gen.Sales(ctx, "01/03/2025", "31/03/2025")
	require.NoError(t, err)
	require.NotNil(t, rep)

	// Ordenado por valor decrescente, com o nome do cliente cadastrado
	// resolvido pela referência
	require.Len(t, rep.ByCustomer, 2)
	assert.Equal(t, "Rede Estrela", rep.ByCustomer[0].Name)
	assert.Equal(t, "500.00", rep.ByCustomer[0].Total.StringFixed(2))
	assert.Equal(t, "Cliente Avulso", rep.ByCustomer[1].Name)
}

func TestProfitReport(t *testing.T) {
	f := newFixture(t)
	f.addSale(t, "05/03/2025", "Mercado A", 1000, "Pix", "")
	f.addExpense(t, "10/03/2025", 400, "Transporte", expense.StatusPaid)
	// Canceladas ficam fora dos dois lados
	f.addSale(t, "06/03/2025", "Mercado B", 5000, "Boleto", sale.StatusCanceled)
	f.addExpense(t, "11/03/2025", 5000, "Transporte", expense.StatusCanceled)

	rep, err := f.gen.Profit(context.Background(), "01/03/2025", "31/03/2025")
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.Equal(t, 1, rep.TotalSales)
	assert.Equal(t, 1, rep.TotalExpenses)
	assert.Equal(t, "600.00", rep.GrossProfit.StringFixed(2))
	assert.Equal(t, "60.00", rep.MarginPercent.StringFixed(2))
}

func TestExpensesReportPorCategoria(t *testing.T) {
	f := newFixture(t)
	f.addExpense(t, "05/03/2025", 300, "Transporte", expense.StatusPaid)
	f.addExpense(t, "06/03/2025", 200, "Transporte", expense.StatusPending)
	f.addExpense(t, "07/03/2025", 100, "Aluguel", expense.StatusPaid)

	rep, err := f.gen.Expenses(context.Background(), "01/03/2025", "31/03/2025")
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.Equal(t, 3, rep.TotalExpenses)
	assert.Equal(t, "600.00", rep.TotalValue.StringFixed(2))
	assert.Equal(t, 2, rep.ByCategory["Transporte"].Count)
	assert.Equal(t, "500.00", rep.ByCategory["Transporte"].Total.StringFixed(2))
	assert.Equal(t, 1, rep.ByCategory["Aluguel"].Count)
}

func TestCustomersReportSemGrupo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	com, err := customer.NewCustomer("Rede Azul Loja 1", "1", "", "")
	require.NoError(t, err)
	com.Group = "Rede Azul"
	require.NoError(t, f.customers.Create(ctx, com))

	sem, err := customer.NewCustomer("Mercearia Solo", "2", "", "")
	require.NoError(t, err)
	require.NoError(t, f.customers.Create(ctx, sem))

	f.addSale(t, "10/03/2025", sale.CustomerRef(com.ID), 300, "Pix", "")
	f.addSale(t, "12/03/2025", sale.CustomerRef(sem.ID), 150, "Pix", "")

	rep, err := f.gen.Customers(ctx, "01/03/2025", "31/03/2025")
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.Equal(t, 2, rep.ActiveCustomers)
	assert.Equal(t, 2, rep.TotalCustomers)
	assert.Equal(t, 1, rep.ByGroup["Rede Azul"].Customers)
	assert.Equal(t, "300.00", rep.ByGroup["Rede Azul"].Total.StringFixed(2))
	assert.Equal(t, 1, rep.ByGroup["Sem grupo"].Customers)
}

func TestExportGeraArquivo(t *testing.T) {
	f := newFixture(t)
	f.addSale(t, "01/03/2025", "Mercado A", 100, "Pix", "")

	rep, err := f.gen.Sales(context.Background(), "01/03/2025", "31/03/2025")
	require.NoError(t, err)
	require.NotNil(t, rep)

	for _, formato := range []string{FormatXLSX, FormatCSV, FormatJSON} {
		path, err := f.gen.Export(rep, formato)
		require.NoError(t, err)
		assert.Equal(t, "relatorio_vendas_20250301_a_20250331."+formato, filepath.Base(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	_, err = f.gen.Export(rep, "pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := customer.NewCustomer("Mercado Central", "5", "", "")
	require.NoError(t, err)
	require.NoError(t, f.customers.Create(ctx, c))

	vencida := f.addSale(t, "01/01/2020", "Mercado Antigo", 250, "Boleto", sale.StatusOverdue)
	doMes := f.addSale(t, format.Today(), "Mercado Central", 400, "Pix", "")
	f.addExpense(t, format.Today(), 150, "Transporte", expense.StatusPaid)

	dash, err := f.gen.BuildDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, dash.Customers)
	assert.Equal(t, 1, dash.OverdueSales)
	assert.Equal(t, vencida.Amount.StringFixed(2), dash.OverdueValue.StringFixed(2))

	assert.Equal(t, 1, dash.MonthSales)
	assert.Equal(t, "400.00", dash.MonthSalesValue.StringFixed(2))
	assert.Equal(t, "250.00", dash.MonthProfit.StringFixed(2))

	require.Len(t, dash.SalesByDay, 1)
	assert.Equal(t, format.Today(), dash.SalesByDay[0].Date)
	assert.Equal(t, 1, dash.MonthByCateg["Transporte"].Count)

	// As últimas vendas saem da mais recente para a mais antiga
	require.Len(t, dash.RecentSales, 2)
	assert.Equal(t, doMes.ID, dash.RecentSales[0].ID)
	require.Len(t, dash.RecentExpenses, 1)
}
