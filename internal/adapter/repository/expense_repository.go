package repository

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/thabi/crm-distribuidora/internal/domain/expense"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// ExpenseRepository implementa expense.Repository sobre despesas.json
type ExpenseRepository struct {
	col *Collection[*expense.Expense]
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(dataDir string, log logger.Logger) expense.Repository {
	return &ExpenseRepository{
		col: NewCollection(filepath.Join(dataDir, "despesas.json"), log,
			func(e *expense.Expense) int { return e.ID }),
	}
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	despesas := r.col.Load()
	e.ID = r.col.NextID(despesas)
	despesas = append(despesas, e)
	return r.col.Save(despesas)
}

// FindByID implementa expense.Repository.FindByID
func (r *ExpenseRepository) FindByID(ctx context.Context, id int) (*expense.Expense, error) {
	for _, e := range r.col.Load() {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, expense.ErrNotFound
}

// List implementa expense.Repository.List
func (r *ExpenseRepository) List(ctx context.Context) ([]*expense.Expense, error) {
	return r.col.Load(), nil
}

// ListByCategory implementa expense.Repository.ListByCategory
func (r *ExpenseRepository) ListByCategory(ctx context.Context, category string) ([]*expense.Expense, error) {
	var result []*expense.Expense
	for _, e := range r.col.Load() {
		if strings.EqualFold(e.Category, category) {
			result = append(result, e)
		}
	}
	return result, nil
}

// ListBySupplier implementa expense.Repository.ListBySupplier
func (r *ExpenseRepository) ListBySupplier(ctx context.Context, supplierID int) ([]*expense.Expense, error) {
	var result []*expense.Expense
	for _, e := range r.col.Load() {
		if e.SupplierID != nil && *e.SupplierID == supplierID {
			result = append(result, e)
		}
	}
	return result, nil
}

// Update implementa expense.Repository.Update
func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	despesas := r.col.Load()
	for i, existente := range despesas {
		if existente.ID == e.ID {
			despesas[i] = e
			return r.col.Save(despesas)
		}
	}
	return expense.ErrNotFound
}

// Delete implementa expense.Repository.Delete
func (r *ExpenseRepository) Delete(ctx context.Context, id int) error {
	despesas := r.col.Load()
	restantes := despesas[:0]
	encontrado := false
	for _, e := range despesas {
		if e.ID == id {
			encontrado = true
			continue
		}
		restantes = append(restantes, e)
	}
	if !encontrado {
		return expense.ErrNotFound
	}
	return r.col.Save(restantes)
}

// RefreshOverdue implementa expense.Repository.RefreshOverdue
func (r *ExpenseRepository) RefreshOverdue(ctx context.Context) (int, error) {
	despesas := r.col.Load()
	mudancas := 0
	for _, e := range despesas {
		if e.RefreshStatus() {
			mudancas++
		}
	}
	if mudancas == 0 {
		return 0, nil
	}
	return mudancas, r.col.Save(despesas)
}
