package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestResolve(t *testing.T) {
	product := &domain.Product{
		ID:     "prod-1",
		SKU:    "SKU-001",
		Name:   "Lente Premium",
		Status: domain.ProductStatusActive,
	}

	snapshot := &domain.PricingSnapshot{
		ProductID: "prod-1",
		Channel:   domain.ChannelStore,
		Net:       100.0,
		Gross:     119.0,
		MarginPct: 30.0,
		CostEur:   70.0,
		Currency:  "EUR",
		VATRate:   0.19,
		ChannelPrices: map[string]float64{
			domain.ChannelStore:       100.0,
			domain.ChannelMarketplace: 95.0,
		},
	}

	tests := []struct {
		name    string
		idOrSKU string
		channel string
		setup   func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository)
		wantErr error
	}{
		{
			name:    "Deve resolver snapshot completo por ID",
			idOrSKU: "prod-1",
			channel: domain.ChannelStore,
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository) {
				productRepo.EXPECT().FindByIDOrSKU("prod-1").Return(product, nil)
				pricingRepo.EXPECT().GetPricingSnapshot("prod-1", domain.ChannelStore).Return(snapshot, nil)
			},
		},
		{
			name:    "Deve resolver snapshot por SKU usando o ID do produto",
			idOrSKU: "SKU-001",
			channel: domain.ChannelStore,
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository) {
				productRepo.EXPECT().FindByIDOrSKU("SKU-001").Return(product, nil)
				pricingRepo.EXPECT().GetPricingSnapshot("prod-1", domain.ChannelStore).Return(snapshot, nil)
			},
		},
		{
			name:    "Deve rejeitar canal desconhecido sem consultar repositórios",
			idOrSKU: "prod-1",
			channel: "webshop",
			setup:   func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository) {},
			wantErr: ErrChannelNotFound,
		},
		{
			name:    "Deve retornar erro quando o produto não existe",
			idOrSKU: "prod-999",
			channel: domain.ChannelStore,
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository) {
				productRepo.EXPECT().FindByIDOrSKU("prod-999").Return(nil, nil)
			},
			wantErr: ErrProductNotFound,
		},
		{
			name:    "Deve retornar ErrMissingPricing quando não há snapshot completo",
			idOrSKU: "prod-1",
			channel: domain.ChannelStore,
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository) {
				productRepo.EXPECT().FindByIDOrSKU("prod-1").Return(product, nil)
				pricingRepo.EXPECT().GetPricingSnapshot("prod-1", domain.ChannelStore).Return(nil, nil)
			},
			wantErr: ErrMissingPricing,
		},
		{
			name:    "Deve propagar erro do repositório de produtos",
			idOrSKU: "prod-1",
			channel: domain.ChannelStore,
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository) {
				productRepo.EXPECT().FindByIDOrSKU("prod-1").Return(nil, errors.New("erro de conexão"))
			},
			wantErr: errors.New("erro de conexão"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			pricingRepo := mocks.NewMockPricingRepository(ctrl)
			tt.setup(productRepo, pricingRepo)

			service := NewService(productRepo, pricingRepo)
			result, err := service.Resolve(tt.idOrSKU, tt.channel)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, snapshot.Net, result.Net)
			assert.Equal(t, snapshot.MarginPct, result.MarginPct)
			assert.Equal(t, snapshot.ChannelPrices, result.ChannelPrices)
		})
	}
}
