package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pricefeedmocks "github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/pricefeed/mocks"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func competitorTestConfig() *config.Config {
	return &config.Config{
		CompetitorSync: config.CompetitorSync{
			CronSchedule:        "0 2 * * *",
			RequestDelaySeconds: 0,
			Enabled:             true,
		},
	}
}

func activeProducts() []*domain.Product {
	return []*domain.Product{
		{ID: "prod-1", SKU: "SKU-001", Status: domain.ProductStatusActive},
		{ID: "prod-2", SKU: "SKU-002", Status: domain.ProductStatusActive},
	}
}

func TestSyncCompetitorPrices(t *testing.T) {
	observations := []*domain.CompetitorObservation{
		{CompetitorName: "concorrente-a", NetPrice: 90, Currency: "EUR"},
	}

	tests := []struct {
		name    string
		setup   func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository, feed *pricefeedmocks.MockPriceFeedIntegrator)
		wantErr bool
	}{
		{
			name: "Deve sincronizar observações de todos os produtos ativos",
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository, feed *pricefeedmocks.MockPriceFeedIntegrator) {
				productRepo.EXPECT().ListProducts(gomock.Any()).Return(activeProducts(), nil)
				feed.EXPECT().GetCompetitorPrices("SKU-001").Return(observations, nil)
				feed.EXPECT().GetCompetitorPrices("SKU-002").Return(observations, nil)
				pricingRepo.EXPECT().SaveCompetitorPrices("prod-1", observations).Return(nil)
				pricingRepo.EXPECT().SaveCompetitorPrices("prod-2", observations).Return(nil)
			},
		},
		{
			name: "Deve continuar quando o feed falha para um produto",
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository, feed *pricefeedmocks.MockPriceFeedIntegrator) {
				productRepo.EXPECT().ListProducts(gomock.Any()).Return(activeProducts(), nil)
				feed.EXPECT().GetCompetitorPrices("SKU-001").Return(nil, errors.New("timeout"))
				feed.EXPECT().GetCompetitorPrices("SKU-002").Return(observations, nil)
				pricingRepo.EXPECT().SaveCompetitorPrices("prod-2", observations).Return(nil)
			},
		},
		{
			name: "Deve continuar quando a persistência falha para um produto",
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository, feed *pricefeedmocks.MockPriceFeedIntegrator) {
				productRepo.EXPECT().ListProducts(gomock.Any()).Return(activeProducts(), nil)
				feed.EXPECT().GetCompetitorPrices("SKU-001").Return(observations, nil)
				feed.EXPECT().GetCompetitorPrices("SKU-002").Return(observations, nil)
				pricingRepo.EXPECT().SaveCompetitorPrices("prod-1", observations).Return(errors.New("erro de banco"))
				pricingRepo.EXPECT().SaveCompetitorPrices("prod-2", observations).Return(nil)
			},
		},
		{
			name: "Deve ignorar produtos sem observações no feed",
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository, feed *pricefeedmocks.MockPriceFeedIntegrator) {
				productRepo.EXPECT().ListProducts(gomock.Any()).Return(activeProducts(), nil)
				feed.EXPECT().GetCompetitorPrices("SKU-001").Return(nil, nil)
				feed.EXPECT().GetCompetitorPrices("SKU-002").Return(observations, nil)
				pricingRepo.EXPECT().SaveCompetitorPrices("prod-2", observations).Return(nil)
			},
		},
		{
			name: "Deve retornar erro quando a listagem de produtos falha",
			setup: func(productRepo *mocks.MockProductRepository, pricingRepo *mocks.MockPricingRepository, feed *pricefeedmocks.MockPriceFeedIntegrator) {
				productRepo.EXPECT().ListProducts(gomock.Any()).Return(nil, errors.New("erro de banco"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			pricingRepo := mocks.NewMockPricingRepository(ctrl)
			feed := pricefeedmocks.NewMockPriceFeedIntegrator(ctrl)
			tt.setup(productRepo, pricingRepo, feed)

			service := NewCompetitorPricesSyncService(productRepo, pricingRepo, feed, competitorTestConfig())
			err := service.SyncCompetitorPrices()

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCompetitorPricesSyncGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewCompetitorPricesSyncService(
		mocks.NewMockProductRepository(ctrl),
		mocks.NewMockPricingRepository(ctrl),
		pricefeedmocks.NewMockPriceFeedIntegrator(ctrl),
		competitorTestConfig(),
	)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}
