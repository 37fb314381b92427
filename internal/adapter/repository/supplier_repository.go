package repository

import (
	"context"
	"path/filepath"

	"github.com/thabi/crm-distribuidora/internal/domain/supplier"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// SupplierRepository implementa supplier.Repository sobre fornecedores.json
type SupplierRepository struct {
	col *Collection[*supplier.Supplier]
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(dataDir string, log logger.Logger) supplier.Repository {
	return &SupplierRepository{
		col: NewCollection(filepath.Join(dataDir, "fornecedores.json"), log,
			func(s *supplier.Supplier) int { return s.ID }),
	}
}

// Create implementa supplier.Repository.Create. O CNPJ é único entre
// os fornecedores (comparação apenas por dígitos).
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	fornecedores := r.col.Load()

	for _, existente := range fornecedores {
		if existente.TaxID == s.TaxID {
			return supplier.ErrDuplicateTaxID
		}
	}

	s.ID = r.col.NextID(fornecedores)
	fornecedores = append(fornecedores, s)
	return r.col.Save(fornecedores)
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id int) (*supplier.Supplier, error) {
	for _, s := range r.col.Load() {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, supplier.ErrNotFound
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context) ([]*supplier.Supplier, error) {
	return r.col.Load(), nil
}

// Search implementa supplier.Repository.Search
func (r *SupplierRepository) Search(ctx context.Context, term string) ([]*supplier.Supplier, error) {
	var result []*supplier.Supplier
	for _, s := range r.col.Load() {
		if s.Matches(term) {
			result = append(result, s)
		}
	}
	return result, nil
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	fornecedores := r.col.Load()

	for _, existente := range fornecedores {
		if existente.ID != s.ID && existente.TaxID == s.TaxID {
			return supplier.ErrDuplicateTaxID
		}
	}

	for i, existente := range fornecedores {
		if existente.ID == s.ID {
			fornecedores[i] = s
			return r.col.Save(fornecedores)
		}
	}
	return supplier.ErrNotFound
}

// Delete implementa supplier.Repository.Delete. A exclusão não é
// propagada aos produtos do fornecedor.
func (r *SupplierRepository) Delete(ctx context.Context, id int) error {
	fornecedores := r.col.Load()
	restantes := fornecedores[:0]
	encontrado := false
	for _, s := range fornecedores {
		if s.ID == id {
			encontrado = true
			continue
		}
		restantes = append(restantes, s)
	}
	if !encontrado {
		return supplier.ErrNotFound
	}
	return r.col.Save(restantes)
}
