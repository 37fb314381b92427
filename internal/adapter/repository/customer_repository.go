package repository

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/thabi/crm-distribuidora/internal/domain/customer"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// CustomerRepository implementa customer.Repository sobre clientes.json
type CustomerRepository struct {
	col *Collection[*customer.Customer]
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(dataDir string, log logger.Logger) customer.Repository {
	return &CustomerRepository{
		col: NewCollection(filepath.Join(dataDir, "clientes.json"), log,
			func(c *customer.Customer) int { return c.ID }),
	}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	clientes := r.col.Load()

	if doc := c.NormalizedTaxID(); doc != "" {
		for _, existente := range clientes {
			if existente.NormalizedTaxID() == doc {
				return customer.ErrDuplicateTaxID
			}
		}
	}

	c.ID = r.col.NextID(clientes)
	clientes = append(clientes, c)
	return r.col.Save(clientes)
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*customer.Customer, error) {
	for _, c := range r.col.Load() {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, customer.ErrNotFound
}

// FindByName implementa customer.Repository.FindByName
func (r *CustomerRepository) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	for _, c := range r.col.Load() {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, customer.ErrNotFound
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	return r.col.Load(), nil
}

// ListByGroup implementa customer.Repository.ListByGroup
func (r *CustomerRepository) ListByGroup(ctx context.Context, group string) ([]*customer.Customer, error) {
	var result []*customer.Customer
	for _, c := range r.col.Load() {
		if strings.EqualFold(c.Group, group) {
			result = append(result, c)
		}
	}
	return result, nil
}

// Search implementa customer.Repository.Search
func (r *CustomerRepository) Search(ctx context.Context, term string) ([]*customer.Customer, error) {
	var result []*customer.Customer
	for _, c := range r.col.Load() {
		if c.Matches(term) {
			result = append(result, c)
		}
	}
	return result, nil
}

// Update implementa customer.Repository.Update: substituição integral
// do registro, com as mesmas validações de unicidade do Create
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	clientes := r.col.Load()

	if doc := c.NormalizedTaxID(); doc != "" {
		for _, existente := range clientes {
			if existente.ID != c.ID && existente.NormalizedTaxID() == doc {
				return customer.ErrDuplicateTaxID
			}
		}
	}

	for i, existente := range clientes {
		if existente.ID == c.ID {
			clientes[i] = c
			return r.col.Save(clientes)
		}
	}
	return customer.ErrNotFound
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	clientes := r.col.Load()
	restantes := clientes[:0]
	encontrado := false
	for _, c := range clientes {
		if c.ID == id {
			encontrado = true
			continue
		}
		restantes = append(restantes, c)
	}
	if !encontrado {
		return customer.ErrNotFound
	}
	return r.col.Save(restantes)
}
