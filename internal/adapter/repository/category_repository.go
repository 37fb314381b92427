package repository

import (
	"context"
	"path/filepath"

	"github.com/thabi/crm-distribuidora/internal/domain/category"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// CategoryRepository implementa category.Repository sobre categorias.json.
// Na primeira execução (arquivo ausente ou vazio) as categorias padrão
// são criadas automaticamente.
type CategoryRepository struct {
	col *Collection[*category.Category]
	log logger.Logger
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
// e garante o conjunto padrão de categorias
func NewCategoryRepository(dataDir string, log logger.Logger) category.Repository {
	r := &CategoryRepository{
		col: NewCollection(filepath.Join(dataDir, "categorias.json"), log,
			func(c *category.Category) int { return c.ID }),
		log: log,
	}
	r.seedDefaults()
	return r
}

func (r *CategoryRepository) seedDefaults() {
	categorias := r.col.Load()
	if len(categorias) > 0 {
		return
	}
	for i, nome := range category.DefaultNames {
		categorias = append(categorias, &category.Category{ID: i + 1, Name: nome})
	}
	if err := r.col.Save(categorias); err != nil {
		r.log.Error("erro ao criar categorias padrão", "error", err)
		return
	}
	r.log.Info("categorias padrão criadas", "total", len(categorias))
}

// Create implementa category.Repository.Create. Nomes são únicos sem
// diferenciar maiúsculas.
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	categorias := r.col.Load()

	for _, existente := range categorias {
		if existente.SameName(c.Name) {
			return category.ErrDuplicateName
		}
	}

	c.ID = r.col.NextID(categorias)
	categorias = append(categorias, c)
	return r.col.Save(categorias)
}

// FindByID implementa category.Repository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, id int) (*category.Category, error) {
	for _, c := range r.col.Load() {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, category.ErrNotFound
}

// FindByName implementa category.Repository.FindByName
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*category.Category, error) {
	for _, c := range r.col.Load() {
		if c.SameName(name) {
			return c, nil
		}
	}
	return nil, category.ErrNotFound
}

// List implementa category.Repository.List
func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	return r.col.Load(), nil
}

// Update implementa category.Repository.Update
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	categorias := r.col.Load()

	for _, existente := range categorias {
		if existente.ID != c.ID && existente.SameName(c.Name) {
			return category.ErrDuplicateName
		}
	}

	for i, existente := range categorias {
		if existente.ID == c.ID {
			categorias[i] = c
			return r.col.Save(categorias)
		}
	}
	return category.ErrNotFound
}

// Delete implementa category.Repository.Delete
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	categorias := r.col.Load()
	restantes := categorias[:0]
	encontrado := false
	for _, c := range categorias {
		if c.ID == id {
			encontrado = true
			continue
		}
		restantes = append(restantes, c)
	}
	if !encontrado {
		return category.ErrNotFound
	}
	return r.col.Save(restantes)
}
