package repository

import (
	"context"
	"path/filepath"

	"github.com/thabi/crm-distribuidora/internal/domain/product"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// ProductRepository implementa product.Repository sobre produtos.json
type ProductRepository struct {
	col *Collection[*product.Product]
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(dataDir string, log logger.Logger) product.Repository {
	return &ProductRepository{
		col: NewCollection(filepath.Join(dataDir, "produtos.json"), log,
			func(p *product.Product) int { return p.ID }),
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	produtos := r.col.Load()
	p.ID = r.col.NextID(produtos)
	produtos = append(produtos, p)
	return r.col.Save(produtos)
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id int) (*product.Product, error) {
	for _, p := range r.col.Load() {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, product.ErrNotFound
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	return r.col.Load(), nil
}

// ListBySupplier implementa product.Repository.ListBySupplier
func (r *ProductRepository) ListBySupplier(ctx context.Context, supplierID int) ([]*product.Product, error) {
	var result []*product.Product
	for _, p := range r.col.Load() {
		if p.SupplierID == supplierID {
			result = append(result, p)
		}
	}
	return result, nil
}

// Search implementa product.Repository.Search
func (r *ProductRepository) Search(ctx context.Context, term string) ([]*product.Product, error) {
	var result []*product.Product
	for _, p := range r.col.Load() {
		if p.Matches(term) {
			result = append(result, p)
		}
	}
	return result, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	produtos := r.col.Load()
	for i, existente := range produtos {
		if existente.ID == p.ID {
			produtos[i] = p
			return r.col.Save(produtos)
		}
	}
	return product.ErrNotFound
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	produtos := r.col.Load()
	restantes := produtos[:0]
	encontrado := false
	for _, p := range produtos {
		if p.ID == id {
			encontrado = true
			continue
		}
		restantes = append(restantes, p)
	}
	if !encontrado {
		return product.ErrNotFound
	}
	return r.col.Save(restantes)
}
