// Aplicação de console da distribuidora: o mesmo cadastro e os mesmos
// arquivos de dados do servidor web, operados por um menu de texto.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/thabi/crm-distribuidora/internal/adapter/repository"
	"github.com/thabi/crm-distribuidora/internal/backup"
	"github.com/thabi/crm-distribuidora/internal/config"
	"github.com/thabi/crm-distribuidora/internal/domain/customer"
	"github.com/thabi/crm-distribuidora/internal/domain/expense"
	"github.com/thabi/crm-distribuidora/internal/domain/product"
	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/internal/domain/supplier"
	"github.com/thabi/crm-distribuidora/internal/margin"
	"github.com/thabi/crm-distribuidora/internal/report"
	"github.com/thabi/crm-distribuidora/pkg/format"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

type console struct {
	in        *bufio.Scanner
	customers customer.Repository
	suppliers supplier.Repository
	products  product.Repository
	sales     sale.Repository
	expenses  expense.Repository
	reports   *report.Generator
	backups   *backup.Service
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg := config.NewConfigFromEnv()
	// Sem logs estruturados no terminal; o menu é a única saída
	nop := logger.NewNopLogger()

	customers := repository.NewCustomerRepository(cfg.DataDir, nop)
	suppliers := repository.NewSupplierRepository(cfg.DataDir, nop)
	products := repository.NewProductRepository(cfg.DataDir, nop)
	sales := repository.NewSaleRepository(cfg.DataDir, nop)
	expenses := repository.NewExpenseRepository(cfg.DataDir, nop)

	c := &console{
		in:        bufio.NewScanner(os.Stdin),
		customers: customers,
		suppliers: suppliers,
		products:  products,
		sales:     sales,
		expenses:  expenses,
		reports:   report.NewGenerator(sales, expenses, products, customers, suppliers, nop, cfg.ReportsDir),
		backups:   backup.NewService(cfg.DataDir, cfg.BackupDir, sales, nop),
	}

	c.run()
}

func (c *console) run() {
	ctx := context.Background()
	for {
		fmt.Println()
		fmt.Println("===== CRM DISTRIBUIDORA =====")
		fmt.Println("1. Clientes")
		fmt.Println("2. Fornecedores")
		fmt.Println("3. Produtos")
		fmt.Println("4. Vendas")
		fmt.Println("5. Despesas")
		fmt.Println("6. Relatórios")
		fmt.Println("7. Calculadora de margens")
		fmt.Println("8. Backup")
		fmt.Println("0. Sair")

		switch c.ask("Opção: ") {
		case "1":
			c.customersMenu(ctx)
		case "2":
			c.suppliersMenu(ctx)
		case "3":
			c.productsMenu(ctx)
		case "4":
			c.salesMenu(ctx)
		case "5":
			c.expensesMenu(ctx)
		case "6":
			c.reportsMenu(ctx)
		case "7":
			c.marginMenu()
		case "8":
			c.runBackup(ctx)
		case "0":
			fmt.Println("Até logo!")
			return
		default:
			fmt.Println("Opção inválida")
		}
	}
}

func (c *console) ask(prompt string) string {
	fmt.Print(prompt)
	if !c.in.Scan() {
		return "0"
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) askInt(prompt string) (int, bool) {
	n, err := strconv.Atoi(c.ask(prompt))
	if err != nil {
		fmt.Println("Número inválido")
		return 0, false
	}
	return n, true
}

func (c *console) askAmount(prompt string) (decimal.Decimal, bool) {
	valor, err := format.ParseCurrency(c.ask(prompt))
	if err != nil {
		fmt.Println("Valor inválido")
		return decimal.Zero, false
	}
	return valor, true
}

func (c *console) customersMenu(ctx context.Context) {
	fmt.Println()
	fmt.Println("--- Clientes ---")
	fmt.Println("1. Listar")
	fmt.Println("2. Cadastrar")
	fmt.Println("3. Buscar")
	fmt.Println("4. Remover")

	switch c.ask("Opção: ") {
	case "1":
		clientes, err := c.customers.List(ctx)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		for _, cli := range clientes {
			linha := fmt.Sprintf("[%d] %s (loja %s)", cli.ID, cli.Name, cli.StoreNumber)
			if doc := cli.NormalizedTaxID(); doc != "" {
				linha += " CNPJ " + format.FormatCNPJ(doc)
			}
			fmt.Println(linha)
		}
		fmt.Printf("%d cliente(s)\n", len(clientes))
	case "2":
		nome := c.ask("Nome: ")
		loja := c.ask("Número da loja: ")
		endereco := c.ask("Endereço: ")
		telefone := c.ask("Telefone: ")
		cnpj := c.ask("CNPJ (opcional): ")
		grupo := c.ask("Grupo/rede (opcional): ")

		if cnpj != "" && !format.ValidCNPJ(cnpj) {
			fmt.Println("Aviso: CNPJ com dígito verificador inválido")
		}

		cli, err := customer.NewCustomer(nome, loja, endereco, telefone)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		cli.TaxID = cnpj
		cli.Group = grupo
		if err := c.customers.Create(ctx, cli); err != nil {
			fmt.Println("Erro:", err)
			return
		}
		fmt.Printf("Cliente %d cadastrado\n", cli.ID)
	case "3":
		clientes, err := c.customers.Search(ctx, c.ask("Termo: "))
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		for _, cli := range clientes {
			fmt.Printf("[%d] %s (loja %s)\n", cli.ID, cli.Name, cli.StoreNumber)
		}
		fmt.Printf("%d resultado(s)\n", len(clientes))
	case "4":
		id, ok := c.askInt("ID do cliente: ")
		if !ok {
			return
		}
		if err := c.customers.Delete(ctx, id); err != nil {
			fmt.Println("Erro:", err)
			return
		}
		fmt.Println("Cliente removido")
	}
}

func (c *console) suppliersMenu(ctx context.Context) {
	fmt.Println()
	fmt.Println("--- Fornecedores ---")
	fmt.Println("1. Listar")
	fmt.Println("2. Cadastrar")
	fmt.Println("3. Produtos de um fornecedor")

	switch c.ask("Opção: ") {
	case "1":
		fornecedores, err := c.suppliers.List(ctx)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		for _, f := range fornecedores {
			fmt.Printf("[%d] %s CNPJ %s\n", f.ID, f.Name, f.FormattedTaxID())
		}
		fmt.Printf("%d fornecedor(es)\n", len(fornecedores))
	case "2":
		nome := c.ask("Nome: ")
		cnpj := c.ask("CNPJ: ")
		f, err := supplier.NewSupplier(nome, cnpj)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		if err := c.suppliers.Create(ctx, f); err != nil {
			fmt.Println("Erro:", err)
			return
		}
		fmt.Printf("Fornecedor %d cadastrado\n", f.ID)
	case "3":
		id, ok := c.askInt("ID do fornecedor: ")
		if !ok {
			return
		}
		produtos, err := c.products.ListBySupplier(ctx, id)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		for _, p := range produtos {
			fmt.Printf("[%d] %s compra %s venda %s margem %s%%\n",
				p.ID, p.Name,
				format.Currency(p.PurchasePrice),
				format.Currency(p.SalePrice),
				p.MarginPercent().StringFixed(2))
		}
		fmt.Printf("%d produto(s)\n", len(produtos))
	}
}

func (c *console) productsMenu(ctx context.Context) {
	fmt.Println()
	fmt.Println("--- Produtos ---")
	fmt.Println("1. Listar")
	fmt.Println("2. Cadastrar")

	switch c.ask("Opção: ") {
	case "1":
		produtos, err := c.products.List(ctx)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		for _, p := range produtos {
			fmt.Printf("[%d] %s compra %s venda %s margem %s%%\n",
				p.ID, p.Name,
				format.Currency(p.PurchasePrice),
				format.Currency(p.SalePrice),
				p.MarginPercent().StringFixed(2))
		}
		fmt.Printf("%d produto(s)\n", len(produtos))
	case "2":
		nome := c.ask("Nome: ")
		compra, ok := c.askAmount("Valor de compra: ")
		if !ok {
			return
		}
		venda, ok := c.askAmount("Valor de venda: ")
		if !ok {
			return
		}
		fornecedorID, ok := c.askInt("ID do fornecedor: ")
		if !ok {
			return
		}
		if _, err := c.suppliers.FindByID(ctx, fornecedorID); err != nil {
			fmt.Println("Erro:", err)
			return
		}
		p, err := product.NewProduct(nome, compra, venda, fornecedorID)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		if err := c.products.Create(ctx, p); err != nil {
			fmt.Println("Erro:", err)
			return
		}
		fmt.Printf("Produto %d cadastrado com margem %s%%\n", p.ID, p.MarginPercent().StringFixed(2))
	}
}

func (c *console) salesMenu(ctx context.Context) {
	fmt.Println()
	fmt.Println("--- Vendas ---")
	fmt.Println("1. Listar")
	fmt.Println("2. Registrar")
	fmt.Println("3. Alterar status")

	switch c.ask("Opção: ") {
	case "1":
		if _, err := c.sales.RefreshOverdue(ctx); err != nil {
			fmt.Println("Aviso: não foi possível atualizar vencidas:", err)
		}
		vendas, err := c.sales.List(ctx)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		nomes := c.customerNames(ctx)
		for _, v := range vendas {
			destinatario := v.Recipient
			if id, ok := v.CustomerID(); ok {
				if nome, found := nomes[id]; found {
					destinatario = nome
				}
			}
			fmt.Printf("[%d] NF %s %s %s %s (%s)\n",
				v.ID, v.InvoiceNumber, v.ExitDate, destinatario,
				format.Currency(v.Amount), v.Status)
		}
		fmt.Printf("%d venda(s)\n", len(vendas))
	case "2":
		numeroNota := c.ask("Número da nota (vazio = automático): ")
		if numeroNota == "" {
			var err error
			numeroNota, err = c.sales.NextInvoiceNumber(ctx)
			if err != nil {
				fmt.Println("Erro:", err)
				return
			}
		}
		dataSaida := c.ask("Data de saída (dd/mm/aaaa, vazio = hoje): ")
		if dataSaida == "" {
			dataSaida = format.Today()
		}
		destinatario := c.ask("Destinatário (ou id:<n> para cliente cadastrado): ")
		if resto, ok := strings.CutPrefix(destinatario, "id:"); ok {
			id, err := strconv.Atoi(resto)
			if err != nil {
				fmt.Println("ID inválido")
				return
			}
			if _, err := c.customers.FindByID(ctx, id); err != nil {
				fmt.Println("Erro:", err)
				return
			}
			destinatario = sale.CustomerRef(id)
		}
		valor, ok := c.askAmount("Valor: ")
		if !ok {
			return
		}
		formaPagamento := c.ask("Forma de pagamento: ")
		vencimento := c.ask("Vencimento (dd/mm/aaaa, opcional): ")
		bonificacao := strings.EqualFold(c.ask("Bonificação? (s/n): "), "s")

		v, err := sale.NewSale(numeroNota, dataSaida, destinatario, valor, formaPagamento, vencimento, "", bonificacao)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		if err := c.sales.Create(ctx, v); err != nil {
			fmt.Println("Erro:", err)
			return
		}
		fmt.Printf("Venda %d registrada com status %s\n", v.ID, v.Status)
	case "3":
		id, ok := c.askInt("ID da venda: ")
		if !ok {
			return
		}
		v, err := c.sales.FindByID(ctx, id)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		status := sale.Status(c.ask("Novo status (pendente/pago/atrasado/cancelado): "))
		switch status {
		case sale.StatusPending, sale.StatusPaid, sale.StatusOverdue, sale.StatusCanceled:
		default:
			fmt.Println("Status inválido")
			return
		}
		v.Status = status
		if err := c.sales.Update(ctx, v); err != nil {
			fmt.Println("Erro:", err)
			return
		}
		fmt.Println("Status atualizado")
	}
}

func (c *console) expensesMenu(ctx context.Context) {
	fmt.Println()
	fmt.Println("--- Despesas ---")
	fmt.Println("1. Listar")
	fmt.Println("2. Registrar")

	switch c.ask("Opção: ") {
	case "1":
		if _, err := c.expenses.RefreshOverdue(ctx); err != nil {
			fmt.Println("Aviso: não foi possível atualizar vencidas:", err)
		}
		despesas, err := c.expenses.List(ctx)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		for _, d := range despesas {
			fmt.Printf("[%d] %s %s %s %s (%s)\n",
				d.ID, d.Date, d.Description, d.Category,
				format.Currency(d.Amount), d.Status)
		}
		fmt.Printf("%d despesa(s)\n", len(despesas))
	case "2":
		descricao := c.ask("Descrição: ")
		valor, ok := c.askAmount("Valor: ")
		if !ok {
			return
		}
		data := c.ask("Data (dd/mm/aaaa, vazio = hoje): ")
		if data == "" {
			data = format.Today()
		}
		categoria := c.ask("Categoria: ")

		var fornecedorID *int
		if raw := c.ask("ID do fornecedor (opcional): "); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				fmt.Println("ID inválido")
				return
			}
			fornecedorID = &id
		}
		vencimento := c.ask("Vencimento (dd/mm/aaaa, opcional): ")

		d, err := expense.NewExpense(descricao, valor, data, categoria, fornecedorID, "", vencimento, "")
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		if err := c.expenses.Create(ctx, d); err != nil {
			fmt.Println("Erro:", err)
			return
		}
		fmt.Printf("Despesa %d registrada\n", d.ID)
	}
}

func (c *console) reportsMenu(ctx context.Context) {
	fmt.Println()
	fmt.Println("--- Relatórios ---")
	fmt.Println("1. Vendas")
	fmt.Println("2. Despesas")
	fmt.Println("3. Lucro")
	fmt.Println("4. Produtos")

	opcao := c.ask("Opção: ")
	if opcao == "4" {
		rel, err := c.reports.Products(ctx)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		if rel == nil {
			fmt.Println("Nenhum produto cadastrado")
			return
		}
		fmt.Printf("%d produto(s), do maior para o menor em margem:\n", rel.TotalProducts)
		for _, p := range rel.ByMargin {
			fmt.Printf("  %s margem %s%%\n", p.Name, p.MarginPercent.StringFixed(2))
		}
		c.offerExport(rel)
		return
	}

	inicio := c.ask("Data inicial (dd/mm/aaaa): ")
	fim := c.ask("Data final (dd/mm/aaaa): ")

	switch opcao {
	case "1":
		rel, err := c.reports.Sales(ctx, inicio, fim)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		if rel == nil {
			fmt.Println("Nenhuma venda no período")
			return
		}
		fmt.Printf("Vendas: %d  Total: %s\n", rel.TotalSales, format.Currency(rel.TotalValue))
		for _, b := range rel.ByCustomer {
			fmt.Printf("  %s: %d venda(s) %s\n", b.Name, b.Count, format.Currency(b.Total))
		}
		c.offerExport(rel)
	case "2":
		rel, err := c.reports.Expenses(ctx, inicio, fim)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		if rel == nil {
			fmt.Println("Nenhuma despesa no período")
			return
		}
		fmt.Printf("Despesas: %d  Total: %s\n", rel.TotalExpenses, format.Currency(rel.TotalValue))
		for categoria, b := range rel.ByCategory {
			fmt.Printf("  %s: %d despesa(s) %s\n", categoria, b.Count, format.Currency(b.Total))
		}
		c.offerExport(rel)
	case "3":
		rel, err := c.reports.Profit(ctx, inicio, fim)
		if err != nil {
			fmt.Println("Erro:", err)
			return
		}
		fmt.Printf("Vendas: %s  Despesas: %s\n",
			format.Currency(rel.SalesValue), format.Currency(rel.ExpensesValue))
		fmt.Printf("Lucro bruto: %s  Margem: %s%%\n",
			format.Currency(rel.GrossProfit), rel.MarginPercent.StringFixed(2))
		c.offerExport(rel)
	}
}

func (c *console) offerExport(rel report.Exportable) {
	formato := c.ask("Exportar? (xlsx/csv/json, vazio = não): ")
	if formato == "" {
		return
	}
	caminho, err := c.reports.Export(rel, formato)
	if err != nil {
		fmt.Println("Erro:", err)
		return
	}
	fmt.Println("Relatório gravado em", caminho)
}

func (c *console) marginMenu() {
	fmt.Println()
	fmt.Println("--- Calculadora de margens ---")
	fmt.Println("1. Margem a partir de custo e preço")
	fmt.Println("2. Preço a partir de margem desejada")
	fmt.Println("3. Preço por markup")

	switch c.ask("Opção: ") {
	case "1":
		custo, ok := c.askAmount("Custo: ")
		if !ok {
			return
		}
		preco, ok := c.askAmount("Preço de venda: ")
		if !ok {
			return
		}
		fmt.Printf("Margem: %s%%  Lucro unitário: %s\n",
			margin.MarginPercent(preco, custo).StringFixed(2),
			format.Currency(margin.UnitProfit(preco, custo)))
	case "2":
		custo, ok := c.askAmount("Custo: ")
		if !ok {
			return
		}
		margem, ok := c.askAmount("Margem desejada (%): ")
		if !ok {
			return
		}
		fmt.Println("Preço de venda:", format.Currency(margin.SalePriceFromMargin(custo, margem)))
	case "3":
		custo, ok := c.askAmount("Custo: ")
		if !ok {
			return
		}
		markup, ok := c.askAmount("Markup (ex.: 2,0): ")
		if !ok {
			return
		}
		fmt.Println("Preço de venda:", format.Currency(margin.SalePriceFromMarkup(custo, markup)))
	}
}

func (c *console) runBackup(ctx context.Context) {
	info, err := c.backups.Run(ctx)
	if err != nil {
		fmt.Println("Erro:", err)
		return
	}
	fmt.Println("Backup criado em", info.SnapshotDir)
	if info.SalesFile != "" {
		fmt.Println("Planilha de vendas:", info.SalesFile)
	}
}

func (c *console) customerNames(ctx context.Context) map[int]string {
	clientes, err := c.customers.List(ctx)
	if err != nil {
		return map[int]string{}
	}
	nomes := make(map[int]string, len(clientes))
	for _, cli := range clientes {
		nomes[cli.ID] = cli.Name
	}
	return nomes
}
