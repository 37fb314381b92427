package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thabi/crm-distribuidora/internal/domain/category"
	"github.com/thabi/crm-distribuidora/internal/domain/customer"
	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/internal/domain/supplier"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

func novoCliente(t *testing.T, nome, loja string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(nome, loja, "Rua A, 100", "11 99999-0000")
	require.NoError(t, err)
	return c
}

func novaVenda(t *testing.T, nota, vencimento string, status sale.Status) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale(nota, "15/03/2025", "Mercado Central", decimal.NewFromInt(100),
		"Boleto", vencimento, status, false)
	require.NoError(t, err)
	return s
}

func TestCustomerRepositoryIDsSequenciais(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(t.TempDir(), logger.NewNopLogger())

	for i := 1; i <= 3; i++ {
		c := novoCliente(t, fmt.Sprintf("Cliente %d", i), fmt.Sprintf("%d", i))
		require.NoError(t, repo.Create(ctx, c))
		assert.Equal(t, i, c.ID)
	}

	// Após remover o cliente do meio o próximo ID ainda deve exceder
	// todos os IDs existentes
	require.NoError(t, repo.Delete(ctx, 2))
	c := novoCliente(t, "Cliente 4", "4")
	require.NoError(t, repo.Create(ctx, c))
	assert.Equal(t, 4, c.ID)
}

func TestCustomerRepositoryPersistencia(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo := NewCustomerRepository(dir, logger.NewNopLogger())
	c := novoCliente(t, "Padaria do Bairro", "12")
	c.TaxID = "11.222.333/0001-81"
	c.Group = "Padarias"
	require.NoError(t, repo.Create(ctx, c))

	// Uma segunda instância sobre o mesmo diretório deve enxergar o
	// registro gravado
	outro := NewCustomerRepository(dir, logger.NewNopLogger())
	carregado, err := outro.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Padaria do Bairro", carregado.Name)
	assert.Equal(t, "Padarias", carregado.Group)
	assert.Equal(t, "11222333000181", carregado.NormalizedTaxID())
}

func TestCustomerRepositoryCNPJDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(t.TempDir(), logger.NewNopLogger())

	a := novoCliente(t, "Cliente A", "1")
	a.TaxID = "12.345.678/0001-90"
	require.NoError(t, repo.Create(ctx, a))

	b := novoCliente(t, "Cliente B", "2")
	b.TaxID = "12345678000190"
	err := repo.Create(ctx, b)
	assert.ErrorIs(t, err, customer.ErrDuplicateTaxID)

	clientes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clientes, 1)
}

func TestCustomerRepositoryBusca(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(t.TempDir(), logger.NewNopLogger())

	a := novoCliente(t, "Mercado São João", "45")
	require.NoError(t, repo.Create(ctx, a))
	b := novoCliente(t, "Padaria Estrela", "7")
	require.NoError(t, repo.Create(ctx, b))

	resultado, err := repo.Search(ctx, "são joão")
	require.NoError(t, err)
	require.Len(t, resultado, 1)
	assert.Equal(t, a.ID, resultado[0].ID)

	resultado, err = repo.Search(ctx, "inexistente")
	require.NoError(t, err)
	assert.Empty(t, resultado)
}

func TestSupplierRepositoryCNPJDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := NewSupplierRepository(t.TempDir(), logger.NewNopLogger())

	a, err := supplier.NewSupplier("Doces Ltda", "12.345.678/0001-90")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, a))

	b, err := supplier.NewSupplier("Outra Razão Social", "12345678000190")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, b), supplier.ErrDuplicateTaxID)

	fornecedores, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, fornecedores, 1)
}

func TestSaleRepositoryNotaAutomatica(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(t.TempDir(), logger.NewNopLogger())

	s := novaVenda(t, "", "", sale.StatusPending)
	require.NoError(t, repo.Create(ctx, s))
	assert.Equal(t, "Auto-1", s.InvoiceNumber)
}

func TestSaleRepositoryProximaNota(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(t.TempDir(), logger.NewNopLogger())

	// Coleção vazia começa do número 1
	nota, err := repo.NextInvoiceNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "000001", nota)

	require.NoError(t, repo.Create(ctx, novaVenda(t, "000042", "", sale.StatusPending)))
	// Notas não numéricas são ignoradas na contagem
	require.NoError(t, repo.Create(ctx, novaVenda(t, "IMP-99", "", sale.StatusPending)))

	nota, err = repo.NextInvoiceNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "000043", nota)
}

func TestSaleRepositoryListaDecrescente(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(t.TempDir(), logger.NewNopLogger())

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Create(ctx, novaVenda(t, fmt.Sprintf("%06d", i), "", sale.StatusPending)))
	}

	vendas, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, vendas, 3)
	assert.Equal(t, 3, vendas[0].ID)
	assert.Equal(t, 1, vendas[2].ID)
}

func TestSaleRepositoryAtualizaAtrasadas(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewSaleRepository(dir, logger.NewNopLogger())

	vencida := novaVenda(t, "1", "01/01/2020", sale.StatusPending)
	require.NoError(t, repo.Create(ctx, vencida))
	paga := novaVenda(t, "2", "01/01/2020", sale.StatusPaid)
	require.NoError(t, repo.Create(ctx, paga))
	emDia := novaVenda(t, "3", "31/12/2099", sale.StatusPending)
	require.NoError(t, repo.Create(ctx, emDia))

	mudancas, err := repo.RefreshOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, mudancas)

	// A mudança de status deve ter sido persistida
	outro := NewSaleRepository(dir, logger.NewNopLogger())
	carregada, err := outro.FindByID(ctx, vencida.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.StatusOverdue, carregada.Status)

	carregada, err = outro.FindByID(ctx, paga.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.StatusPaid, carregada.Status)

	// Segunda passada não encontra nada para mudar
	mudancas, err = repo.RefreshOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, mudancas)
}

func TestSaleRepositoryFiltros(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(t.TempDir(), logger.NewNopLogger())

	doCliente := novaVenda(t, "1", "", sale.StatusPending)
	doCliente.Recipient = sale.CustomerRef(7)
	require.NoError(t, repo.Create(ctx, doCliente))

	bonificada := novaVenda(t, "2", "", sale.StatusPending)
	bonificada.Bonus = true
	require.NoError(t, repo.Create(ctx, bonificada))

	vendas, err := repo.ListByCustomer(ctx, 7)
	require.NoError(t, err)
	require.Len(t, vendas, 1)
	assert.Equal(t, doCliente.ID, vendas[0].ID)

	vendas, err = repo.ListBonuses(ctx)
	require.NoError(t, err)
	require.Len(t, vendas, 1)
	assert.True(t, vendas[0].Bonus)
}

func TestCategoryRepositoryPadroes(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewCategoryRepository(dir, logger.NewNopLogger())

	categorias, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categorias, len(category.DefaultNames))
	assert.Equal(t, 1, categorias[0].ID)
	assert.Equal(t, "Matéria-prima", categorias[0].Name)
	assert.Equal(t, len(category.DefaultNames), categorias[len(categorias)-1].ID)

	// Uma nova instância não deve recriar as categorias padrão
	outro := NewCategoryRepository(dir, logger.NewNopLogger())
	categorias, err = outro.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categorias, len(category.DefaultNames))
}

func TestCategoryRepositoryNomeDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(t.TempDir(), logger.NewNopLogger())

	c, err := category.NewCategory("transporte")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, c), category.ErrDuplicateName)
}
