package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// SaleRepository implementa sale.Repository sobre vendas.json
type SaleRepository struct {
	col *Collection[*sale.Sale]
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(dataDir string, log logger.Logger) sale.Repository {
	return &SaleRepository{
		col: NewCollection(filepath.Join(dataDir, "vendas.json"), log,
			func(s *sale.Sale) int { return s.ID }),
	}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	vendas := r.col.Load()
	s.ID = r.col.NextID(vendas)
	if s.InvoiceNumber == "" {
		s.InvoiceNumber = fmt.Sprintf("Auto-%d", s.ID)
	}
	vendas = append(vendas, s)
	return r.col.Save(vendas)
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id int) (*sale.Sale, error) {
	for _, s := range r.col.Load() {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, sale.ErrNotFound
}

// List implementa sale.Repository.List. As vendas mais recentes vêm
// primeiro (ordem decrescente de ID).
func (r *SaleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	vendas := r.col.Load()
	sort.Slice(vendas, func(i, j int) bool { return vendas[i].ID > vendas[j].ID })
	return vendas, nil
}

// ListByCustomer implementa sale.Repository.ListByCustomer
func (r *SaleRepository) ListByCustomer(ctx context.Context, customerID int) ([]*sale.Sale, error) {
	var result []*sale.Sale
	for _, s := range r.col.Load() {
		if id, ok := s.CustomerID(); ok && id == customerID {
			result = append(result, s)
		}
	}
	return result, nil
}

// ListBonuses implementa sale.Repository.ListBonuses
func (r *SaleRepository) ListBonuses(ctx context.Context) ([]*sale.Sale, error) {
	var result []*sale.Sale
	for _, s := range r.col.Load() {
		if s.Bonus {
			result = append(result, s)
		}
	}
	return result, nil
}

// NextInvoiceNumber implementa sale.Repository.NextInvoiceNumber:
// maior número de nota numérico existente + 1, com seis dígitos
func (r *SaleRepository) NextInvoiceNumber(ctx context.Context) (string, error) {
	maior := 0
	for _, s := range r.col.Load() {
		if n, err := strconv.Atoi(s.InvoiceNumber); err == nil && n > maior {
			maior = n
		}
	}
	return fmt.Sprintf("%06d", maior+1), nil
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	vendas := r.col.Load()
	for i, existente := range vendas {
		if existente.ID == s.ID {
			vendas[i] = s
			return r.col.Save(vendas)
		}
	}
	return sale.ErrNotFound
}

// Delete implementa sale.Repository.Delete
func (r *SaleRepository) Delete(ctx context.Context, id int) error {
	vendas := r.col.Load()
	restantes := vendas[:0]
	encontrado := false
	for _, s := range vendas {
		if s.ID == id {
			encontrado = true
			continue
		}
		restantes = append(restantes, s)
	}
	if !encontrado {
		return sale.ErrNotFound
	}
	return r.col.Save(restantes)
}

// RefreshOverdue implementa sale.Repository.RefreshOverdue. Só
// persiste quando algum status mudou.
func (r *SaleRepository) RefreshOverdue(ctx context.Context) (int, error) {
	vendas := r.col.Load()
	mudancas := 0
	for _, s := range vendas {
		if s.RefreshStatus() {
			mudancas++
		}
	}
	if mudancas == 0 {
		return 0, nil
	}
	return mudancas, r.col.Save(vendas)
}
