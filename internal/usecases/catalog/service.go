// Package catalog expõe consulta e importação do catálogo de produtos
package catalog

import (
	"context"

	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
	"github.com/vfg2006/commerce-backoffice-api/pkg/utils"
)

type Cataloger interface {
	GetProduct(idOrSKU string) (*domain.Product, error)
	ListProducts(filters *domain.ProductFilters) ([]*domain.Product, error)
	ImportProducts(ctx context.Context, entries []*domain.ProductImportEntry) (*domain.ImportProductsResponse, error)
}

type Service struct {
	productRepo repository.ProductRepository
}

func NewService(productRepo repository.ProductRepository) Cataloger {
	return &Service{
		productRepo: productRepo,
	}
}

func (s *Service) GetProduct(idOrSKU string) (*domain.Product, error) {
	return s.productRepo.FindByIDOrSKU(idOrSKU)
}

func (s *Service) ListProducts(filters *domain.ProductFilters) ([]*domain.Product, error) {
	return s.productRepo.ListProducts(filters)
}

// ImportProducts faz o upsert de produtos por SKU. Entradas sem SKU ou nome
// são descartadas com log; os custos informados acompanham a mesma transação.
func (s *Service) ImportProducts(ctx context.Context, entries []*domain.ProductImportEntry) (*domain.ImportProductsResponse, error) {
	if len(entries) == 0 {
		return &domain.ImportProductsResponse{
			Message: "Nenhum produto para importar",
		}, nil
	}

	products := make([]*domain.Product, 0, len(entries))
	costs := make(map[string]float64)
	created := 0
	updated := 0

	for _, entry := range entries {
		if entry.SKU == "" || entry.Name == "" {
			log.L.WithField("sku", entry.SKU).Warn("Entrada de importação sem SKU ou nome descartada")
			continue
		}

		existing, err := s.productRepo.FindByIDOrSKU(entry.SKU)
		if err != nil {
			return nil, err
		}

		product := &domain.Product{
			SKU:    entry.SKU,
			Name:   entry.Name,
			Brand:  entry.Brand,
			EAN:    entry.EAN,
			Status: domain.ProductStatusActive,
		}

		if existing != nil {
			product.ID = existing.ID
			product.Status = existing.Status
			updated++
		} else {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, err
			}
			product.ID = id
			created++
		}

		if entry.CostEur != nil {
			costs[entry.SKU] = *entry.CostEur
		}

		products = append(products, product)
	}

	if len(products) == 0 {
		return &domain.ImportProductsResponse{
			Message: "Nenhuma entrada válida para importar",
			Error:   true,
		}, nil
	}

	if err := s.productRepo.UpsertFromImport(ctx, products, costs); err != nil {
		return nil, err
	}

	return &domain.ImportProductsResponse{
		Created: created,
		Updated: updated,
		Message: "Importação concluída",
	}, nil
}
