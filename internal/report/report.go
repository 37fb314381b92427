// Package report gera os relatórios agregados de vendas, despesas,
// produtos, clientes e lucro, com exportação para xlsx, csv e json.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thabi/crm-distribuidora/internal/domain/customer"
	"github.com/thabi/crm-distribuidora/internal/domain/expense"
	"github.com/thabi/crm-distribuidora/internal/domain/product"
	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/internal/domain/supplier"
	"github.com/thabi/crm-distribuidora/pkg/format"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

var cem = decimal.NewFromInt(100)

// Generator produz relatórios a partir dos repositórios. Todas as
// leituras são feitas no momento da geração; nada é cacheado.
type Generator struct {
	sales      sale.Repository
	expenses   expense.Repository
	products   product.Repository
	customers  customer.Repository
	suppliers  supplier.Repository
	log        logger.Logger
	reportsDir string
}

// NewGenerator cria um novo gerador de relatórios
func NewGenerator(
	sales sale.Repository,
	expenses expense.Repository,
	products product.Repository,
	customers customer.Repository,
	suppliers supplier.Repository,
	log logger.Logger,
	reportsDir string,
) *Generator {
	return &Generator{
		sales:      sales,
		expenses:   expenses,
		products:   products,
		customers:  customers,
		suppliers:  suppliers,
		log:        log,
		reportsDir: reportsDir,
	}
}

// Bucket acumula quantidade e valor de um agrupamento
type Bucket struct {
	Count int             `json:"quantidade"`
	Total decimal.Decimal `json:"valor"`
}

// NamedBucket é um Bucket identificado por nome, usado nas listas
// ordenadas por valor
type NamedBucket struct {
	Name  string          `json:"nome"`
	Count int             `json:"quantidade"`
	Total decimal.Decimal `json:"valor"`
}

// Period delimita o intervalo de um relatório (datas dd/mm/aaaa,
// ambas inclusivas)
type Period struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

// SalesReport é o relatório de vendas de um período
type SalesReport struct {
	Period          Period            `json:"periodo"`
	TotalSales      int               `json:"total_vendas"`
	TotalValue      decimal.Decimal   `json:"valor_total"`
	ByPaymentMethod map[string]Bucket `json:"por_forma_pagamento"`
	ByStatus        map[string]Bucket `json:"por_status"`
	ByCustomer      []NamedBucket     `json:"por_cliente"`
}

// ExpensesReport é o relatório de despesas de um período
type ExpensesReport struct {
	Period        Period            `json:"periodo"`
	TotalExpenses int               `json:"total_despesas"`
	TotalValue    decimal.Decimal   `json:"valor_total"`
	ByCategory    map[string]Bucket `json:"por_categoria"`
	ByStatus      map[string]Bucket `json:"por_status"`
	BySupplier    []NamedBucket     `json:"por_fornecedor"`
}

// ProductMargin resume um produto e sua margem para o ranking
type ProductMargin struct {
	ID            int             `json:"id"`
	Name          string          `json:"nome"`
	PurchasePrice decimal.Decimal `json:"valor_compra"`
	SalePrice     decimal.Decimal `json:"valor_venda"`
	MarginPercent decimal.Decimal `json:"margem"`
	SupplierID    int             `json:"id_fornecedor"`
}

// SupplierCount conta produtos por fornecedor
type SupplierCount struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Count int    `json:"quantidade"`
}

// ProductsReport é o relatório de produtos e margens
type ProductsReport struct {
	TotalProducts int             `json:"total_produtos"`
	ByMargin      []ProductMargin `json:"por_margem"`
	BySupplier    []SupplierCount `json:"por_fornecedor"`
}

// CustomerValue resume as compras de um cliente no período
type CustomerValue struct {
	ID    int             `json:"id"`
	Name  string          `json:"nome"`
	Count int             `json:"quantidade"`
	Total decimal.Decimal `json:"valor"`
}

// GroupBucket acumula os números de um grupo de clientes (redes)
type GroupBucket struct {
	Customers int             `json:"quantidade"`
	Sales     int             `json:"vendas"`
	Total     decimal.Decimal `json:"valor"`
}

// CustomersReport é o relatório de clientes de um período
type CustomersReport struct {
	Period          Period                 `json:"periodo"`
	ActiveCustomers int                    `json:"total_clientes_ativos"`
	TotalCustomers  int                    `json:"total_clientes"`
	ByValue         []CustomerValue        `json:"por_valor"`
	ByGroup         map[string]GroupBucket `json:"por_grupo"`
}

// ProfitReport é o relatório de lucro de um período. Vendas e despesas
// canceladas ficam fora dos dois lados da conta.
type ProfitReport struct {
	Period        Period          `json:"periodo"`
	TotalSales    int             `json:"total_vendas"`
	SalesValue    decimal.Decimal `json:"valor_vendas"`
	TotalExpenses int             `json:"total_despesas"`
	ExpensesValue decimal.Decimal `json:"valor_despesas"`
	GrossProfit   decimal.Decimal `json:"lucro_bruto"`
	MarginPercent decimal.Decimal `json:"margem_lucro"`
}

// parsePeriod interpreta as bordas do intervalo (dd/mm/aaaa)
func parsePeriod(start, end string) (time.Time, time.Time, error) {
	inicio, err := time.Parse(format.DateBR, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fim, err := time.Parse(format.DateBR, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return inicio, fim, nil
}

// inRange verifica se uma data em texto cai no intervalo inclusivo.
// Datas que não seguem o formato fixo são ignoradas (retorna false).
func inRange(dateStr string, start, end time.Time) bool {
	d, err := time.Parse(format.DateBR, dateStr)
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// Sales gera o relatório de vendas do período. Retorna nil quando
// nenhuma venda cai no intervalo (sinal de "sem dados", não erro).
func (g *Generator) Sales(ctx context.Context, start, end string) (*SalesReport, error) {
	inicio, fim, err := parsePeriod(start, end)
	if err != nil {
		return nil, err
	}

	vendas, err := g.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	clientes, err := g.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	nomeCliente := make(map[int]string, len(clientes))
	for _, c := range clientes {
		nomeCliente[c.ID] = c.Name
	}

	var periodo []*sale.Sale
	for _, v := range vendas {
		if inRange(v.ExitDate, inicio, fim) {
			periodo = append(periodo, v)
		}
	}
	if len(periodo) == 0 {
		return nil, nil
	}

	rel := &SalesReport{
		Period:          Period{Start: start, End: end},
		TotalSales:      len(periodo),
		TotalValue:      decimal.Zero,
		ByPaymentMethod: map[string]Bucket{},
		ByStatus:        map[string]Bucket{},
	}

	porCliente := map[string]*NamedBucket{}
	for _, v := range periodo {
		rel.TotalValue = rel.TotalValue.Add(v.Amount)

		forma := rel.ByPaymentMethod[v.PaymentMethod]
		forma.Count++
		forma.Total = forma.Total.Add(v.Amount)
		rel.ByPaymentMethod[v.PaymentMethod] = forma

		status := rel.ByStatus[string(v.Status)]
		status.Count++
		status.Total = status.Total.Add(v.Amount)
		rel.ByStatus[string(v.Status)] = status

		nome := v.Recipient
		if id, ok := v.CustomerID(); ok {
			if n, found := nomeCliente[id]; found {
				nome = n
			} else {
				nome = "Desconhecido"
			}
		}
		b, ok := porCliente[nome]
		if !ok {
			b = &NamedBucket{Name: nome}
			porCliente[nome] = b
		}
		b.Count++
		b.Total = b.Total.Add(v.Amount)
	}

	for _, b := range porCliente {
		rel.ByCustomer = append(rel.ByCustomer, *b)
	}
	sort.Slice(rel.ByCustomer, func(i, j int) bool {
		return rel.ByCustomer[i].Total.GreaterThan(rel.ByCustomer[j].Total)
	})

	return rel, nil
}

// Expenses gera o relatório de despesas do período
func (g *Generator) Expenses(ctx context.Context, start, end string) (*ExpensesReport, error) {
	inicio, fim, err := parsePeriod(start, end)
	if err != nil {
		return nil, err
	}

	despesas, err := g.expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	fornecedores, err := g.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}

	nomeFornecedor := make(map[int]string, len(fornecedores))
	for _, f := range fornecedores {
		nomeFornecedor[f.ID] = f.Name
	}

	var periodo []*expense.Expense
	for _, d := range despesas {
		if inRange(d.Date, inicio, fim) {
			periodo = append(periodo, d)
		}
	}
	if len(periodo) == 0 {
		return nil, nil
	}

	rel := &ExpensesReport{
		Period:        Period{Start: start, End: end},
		TotalExpenses: len(periodo),
		TotalValue:    decimal.Zero,
		ByCategory:    map[string]Bucket{},
		ByStatus:      map[string]Bucket{},
	}

	porFornecedor := map[string]*NamedBucket{}
	for _, d := range periodo {
		rel.TotalValue = rel.TotalValue.Add(d.Amount)

		cat := rel.ByCategory[d.Category]
		cat.Count++
		cat.Total = cat.Total.Add(d.Amount)
		rel.ByCategory[d.Category] = cat

		status := rel.ByStatus[string(d.Status)]
		status.Count++
		status.Total = status.Total.Add(d.Amount)
		rel.ByStatus[string(d.Status)] = status

		if d.SupplierID == nil {
			continue
		}
		nome, ok := nomeFornecedor[*d.SupplierID]
		if !ok {
			nome = "Desconhecido"
		}
		b, ok := porFornecedor[nome]
		if !ok {
			b = &NamedBucket{Name: nome}
			porFornecedor[nome] = b
		}
		b.Count++
		b.Total = b.Total.Add(d.Amount)
	}

	for _, b := range porFornecedor {
		rel.BySupplier = append(rel.BySupplier, *b)
	}
	sort.Slice(rel.BySupplier, func(i, j int) bool {
		return rel.BySupplier[i].Total.GreaterThan(rel.BySupplier[j].Total)
	})

	return rel, nil
}

// Products gera o relatório de produtos e margens (sem recorte de
// período: considera o cadastro inteiro)
func (g *Generator) Products(ctx context.Context) (*ProductsReport, error) {
	produtos, err := g.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(produtos) == 0 {
		return nil, nil
	}
	fornecedores, err := g.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}

	nomeFornecedor := make(map[int]string, len(fornecedores))
	for _, f := range fornecedores {
		nomeFornecedor[f.ID] = f.Name
	}

	rel := &ProductsReport{TotalProducts: len(produtos)}

	contagem := map[int]int{}
	for _, p := range produtos {
		rel.ByMargin = append(rel.ByMargin, ProductMargin{
			ID:            p.ID,
			Name:          p.Name,
			PurchasePrice: p.PurchasePrice,
			SalePrice:     p.SalePrice,
			MarginPercent: p.MarginPercent(),
			SupplierID:    p.SupplierID,
		})
		contagem[p.SupplierID]++
	}
	sort.Slice(rel.ByMargin, func(i, j int) bool {
		return rel.ByMargin[i].MarginPercent.GreaterThan(rel.ByMargin[j].MarginPercent)
	})

	for id, qtd := range contagem {
		nome, ok := nomeFornecedor[id]
		if !ok {
			nome = "Desconhecido"
		}
		rel.BySupplier = append(rel.BySupplier, SupplierCount{ID: id, Name: nome, Count: qtd})
	}
	sort.Slice(rel.BySupplier, func(i, j int) bool {
		return rel.BySupplier[i].Count > rel.BySupplier[j].Count
	})

	return rel, nil
}

// Customers gera o relatório de clientes e suas compras no período
func (g *Generator) Customers(ctx context.Context, start, end string) (*CustomersReport, error) {
	inicio, fim, err := parsePeriod(start, end)
	if err != nil {
		return nil, err
	}

	vendas, err := g.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	clientes, err := g.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	var periodo []*sale.Sale
	for _, v := range vendas {
		if inRange(v.ExitDate, inicio, fim) {
			periodo = append(periodo, v)
		}
	}
	if len(periodo) == 0 {
		return nil, nil
	}

	// Apenas vendas que referenciam clientes cadastrados entram no
	// recorte por cliente; vendas avulsas ficam de fora
	porCliente := map[int]*Bucket{}
	for _, v := range periodo {
		id, ok := v.CustomerID()
		if !ok {
			continue
		}
		b, ok := porCliente[id]
		if !ok {
			b = &Bucket{}
			porCliente[id] = b
		}
		b.Count++
		b.Total = b.Total.Add(v.Amount)
	}

	rel := &CustomersReport{
		Period:          Period{Start: start, End: end},
		ActiveCustomers: len(porCliente),
		TotalCustomers:  len(clientes),
		ByGroup:         map[string]GroupBucket{},
	}

	nomeCliente := make(map[int]string, len(clientes))
	for _, c := range clientes {
		nomeCliente[c.ID] = c.Name
	}

	for id, b := range porCliente {
		nome, ok := nomeCliente[id]
		if !ok {
			nome = "Desconhecido"
		}
		rel.ByValue = append(rel.ByValue, CustomerValue{
			ID:    id,
			Name:  nome,
			Count: b.Count,
			Total: b.Total,
		})
	}
	sort.Slice(rel.ByValue, func(i, j int) bool {
		return rel.ByValue[i].Total.GreaterThan(rel.ByValue[j].Total)
	})

	for _, c := range clientes {
		grupo := c.Group
		if grupo == "" {
			grupo = "Sem grupo"
		}
		gb := rel.ByGroup[grupo]
		gb.Customers++
		if b, ok := porCliente[c.ID]; ok {
			gb.Sales += b.Count
			gb.Total = gb.Total.Add(b.Total)
		}
		rel.ByGroup[grupo] = gb
	}

	return rel, nil
}

// Profit gera o relatório de lucro do período: vendas menos despesas,
// ambas sem os registros cancelados
func (g *Generator) Profit(ctx context.Context, start, end string) (*ProfitReport, error) {
	inicio, fim, err := parsePeriod(start, end)
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

	rel := &ProfitReport{Period: Period{Start: start, End: end}}

	for _, v := range vendas {
		if v.Status == sale.StatusCanceled || !inRange(v.ExitDate, inicio, fim) {
			continue
		}
		rel.TotalSales++
		rel.SalesValue = rel.SalesValue.Add(v.Amount)
	}
	for _, d := range despesas {
		if d.Status == expense.StatusCanceled || !inRange(d.Date, inicio, fim) {
			continue
		}
		rel.TotalExpenses++
		rel.ExpensesValue = rel.ExpensesValue.Add(d.Amount)
	}

	rel.GrossProfit = rel.SalesValue.Sub(rel.ExpensesValue)
	if rel.SalesValue.GreaterThan(decimal.Zero) {
		rel.MarginPercent = rel.GrossProfit.Div(rel.SalesValue).Mul(cem).Round(2)
	}

	return rel, nil
}
