package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thabi/crm-distribuidora/internal/domain/expense"
	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/pkg/format"
)

// Dashboard resume a situação atual do negócio: cadastros, números do
// mês corrente e pendências de recebimento
type Dashboard struct {
	Customers int `json:"total_clientes"`
	Suppliers int `json:"total_fornecedores"`
	Products  int `json:"total_produtos"`

	MonthSales      int             `json:"vendas_mes"`
	MonthSalesValue decimal.Decimal `json:"valor_vendas_mes"`
	MonthExpenses   int             `json:"despesas_mes"`
	MonthExpenseVal decimal.Decimal `json:"valor_despesas_mes"`
	MonthProfit     decimal.Decimal `json:"lucro_mes"`

	PendingSales int             `json:"vendas_pendentes"`
	PendingValue decimal.Decimal `json:"valor_pendente"`
	OverdueSales int             `json:"vendas_atrasadas"`
	OverdueValue decimal.Decimal `json:"valor_atrasado"`

	SalesByDay     []DaySales         `json:"vendas_por_dia"`
	MonthByCateg   map[string]Bucket  `json:"despesas_por_categoria"`
	RecentSales    []*sale.Sale       `json:"ultimas_vendas"`
	RecentExpenses []*expense.Expense `json:"ultimas_despesas"`
	ReferenceDate  string             `json:"data_referencia"`
}

// DaySales é um ponto da série diária de vendas do mês corrente
type DaySales struct {
	Date  string          `json:"data"`
	Count int             `json:"quantidade"`
	Total decimal.Decimal `json:"valor"`
}

const recentLimit = 5

// BuildDashboard monta o painel com base no mês corrente
func (g *Generator) BuildDashboard(ctx context.Context) (*Dashboard, error) {
	clientes, err := g.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	fornecedores, err := g.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	produtos, err := g.products.List(ctx)
	if err != nil {
		return nil, err
	}
	vendas, err := g.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	despesas, err := g.expenses.List(ctx)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	painel := &Dashboard{
		Customers:     len(clientes),
		Suppliers:     len(fornecedores),
		Products:      len(produtos),
		MonthByCateg:  map[string]Bucket{},
		ReferenceDate: format.Today(),
	}

	porDia := map[string]*DaySales{}
	for _, v := range vendas {
		if v.Status != sale.StatusCanceled && sameMonth(v.ExitDate, agora) {
			painel.MonthSales++
			painel.MonthSalesValue = painel.MonthSalesValue.Add(v.Amount)

			dia, ok := porDia[v.ExitDate]
			if !ok {
				dia = &DaySales{Date: v.ExitDate}
				porDia[v.ExitDate] = dia
			}
			dia.Count++
			dia.Total = dia.Total.Add(v.Amount)
		}
		switch v.Status {
		case sale.StatusPending:
			painel.PendingSales++
			painel.PendingValue = painel.PendingValue.Add(v.Amount)
		case sale.StatusOverdue:
			painel.OverdueSales++
			painel.OverdueValue = painel.OverdueValue.Add(v.Amount)
		}
	}

	for _, dia := range porDia {
		painel.SalesByDay = append(painel.SalesByDay, *dia)
	}
	sort.Slice(painel.SalesByDay, func(i, j int) bool {
		di, _ := time.Parse(format.DateBR, painel.SalesByDay[i].Date)
		dj, _ := time.Parse(format.DateBR, painel.SalesByDay[j].Date)
		return di.Before(dj)
	})

	for _, d := range despesas {
		if d.Status != expense.StatusCanceled && sameMonth(d.Date, agora) {
			painel.MonthExpenses++
			painel.MonthExpenseVal = painel.MonthExpenseVal.Add(d.Amount)

			b := painel.MonthByCateg[d.Category]
			b.Count++
			b.Total = b.Total.Add(d.Amount)
			painel.MonthByCateg[d.Category] = b
		}
	}

	// Vendas já vêm em ordem decrescente de ID; despesas precisam ser
	// reordenadas antes do corte
	painel.RecentSales = vendas
	if len(painel.RecentSales) > recentLimit {
		painel.RecentSales = painel.RecentSales[:recentLimit]
	}
	sort.Slice(despesas, func(i, j int) bool { return despesas[i].ID > despesas[j].ID })
	painel.RecentExpenses = despesas
	if len(painel.RecentExpenses) > recentLimit {
		painel.RecentExpenses = painel.RecentExpenses[:recentLimit]
	}

	painel.MonthProfit = painel.MonthSalesValue.Sub(painel.MonthExpenseVal)
	return painel, nil
}

func sameMonth(dateStr string, ref time.Time) bool {
	d, err := time.Parse(format.DateBR, dateStr)
	if err != nil {
		return false
	}
	return d.Year() == ref.Year() && d.Month() == ref.Month()
}
