// Package pricing resolve snapshots normalizados de preço e executa simulações puras
package pricing

import (
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
)

type Resolver interface {
	Resolve(productIDOrSKU, channel string) (*domain.PricingSnapshot, error)
}

type Service struct {
	productRepo repository.ProductRepository
	pricingRepo repository.PricingRepository
}

func NewService(
	productRepo repository.ProductRepository,
	pricingRepo repository.PricingRepository,
) *Service {
	return &Service{
		productRepo: productRepo,
		pricingRepo: pricingRepo,
	}
}

// Resolve monta o snapshot de preço de um produto em um canal de venda.
// O snapshot é sempre completo: custo, preço líquido do canal, bruto, margem
// e os preços dos demais canais. Ausência de custo ou de preço no canal
// resulta em ErrMissingPricing, nunca em snapshot parcial.
func (s *Service) Resolve(productIDOrSKU, channel string) (*domain.PricingSnapshot, error) {
	if !domain.IsValidChannel(channel) {
		return nil, NewPricingError(ErrChannelNotFound, apiErrors.ErrChannelNotFound, "Canal de venda desconhecido: "+channel)
	}

	product, err := s.productRepo.FindByIDOrSKU(productIDOrSKU)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, NewProductPricingError(ErrProductNotFound, apiErrors.ErrProductNotFound, productIDOrSKU, "Produto não encontrado")
	}

	snapshot, err := s.pricingRepo.GetPricingSnapshot(product.ID, channel)
	if err != nil {
		return nil, err
	}

	if snapshot == nil {
		return nil, NewProductPricingError(ErrMissingPricing, apiErrors.ErrMissingPricing, product.ID, "Produto sem custo ou sem preço no canal "+channel)
	}

	return snapshot, nil
}
