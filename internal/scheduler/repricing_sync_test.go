package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	repricingmocks "github.com/vfg2006/commerce-backoffice-api/internal/usecases/repricing/mocks"
	"go.uber.org/mock/gomock"
)

func repricingTestConfig() *config.Config {
	return &config.Config{
		RepricingSync: config.RepricingSync{
			CronSchedule: "0 3 * * *",
			Mode:         "safe",
			BatchSize:    500,
			Enabled:      true,
		},
	}
}

func TestRunRepricingSync(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(productRepo *mocks.MockProductRepository, engine *repricingmocks.MockEngine)
		wantErr bool
	}{
		{
			name: "Deve avaliar todos os produtos ativos no canal store em modo safe",
			setup: func(productRepo *mocks.MockProductRepository, engine *repricingmocks.MockEngine) {
				productRepo.EXPECT().ListActiveProductIDs(500).Return([]string{"prod-1", "prod-2"}, nil)
				engine.EXPECT().EvaluateProducts(gomock.Any(), []string{"prod-1", "prod-2"}, domain.ChannelStore, domain.RepricingModeSafe).
					Return(&domain.RepricingResult{
						Mode:   domain.RepricingModeSafe,
						Drafts: []*domain.PriceDraft{{ID: "drf001"}},
					}, nil)
			},
		},
		{
			name: "Deve encerrar sem erro quando não há produtos ativos",
			setup: func(productRepo *mocks.MockProductRepository, engine *repricingmocks.MockEngine) {
				productRepo.EXPECT().ListActiveProductIDs(500).Return([]string{}, nil)
			},
		},
		{
			name: "Deve retornar erro quando a listagem de produtos falha",
			setup: func(productRepo *mocks.MockProductRepository, engine *repricingmocks.MockEngine) {
				productRepo.EXPECT().ListActiveProductIDs(500).Return(nil, errors.New("erro de banco"))
			},
			wantErr: true,
		},
		{
			name: "Deve retornar erro quando o motor falha",
			setup: func(productRepo *mocks.MockProductRepository, engine *repricingmocks.MockEngine) {
				productRepo.EXPECT().ListActiveProductIDs(500).Return([]string{"prod-1"}, nil)
				engine.EXPECT().EvaluateProducts(gomock.Any(), []string{"prod-1"}, domain.ChannelStore, domain.RepricingModeSafe).
					Return(nil, errors.New("modo inválido"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			productRepo := mocks.NewMockProductRepository(ctrl)
			engine := repricingmocks.NewMockEngine(ctrl)
			tt.setup(productRepo, engine)

			service := NewRepricingSyncService(productRepo, engine, repricingTestConfig())
			err := service.RunRepricingSync(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRunRepricingSyncAtualizaStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	engine := repricingmocks.NewMockEngine(ctrl)

	productRepo.EXPECT().ListActiveProductIDs(500).Return([]string{"prod-1"}, nil)
	engine.EXPECT().EvaluateProducts(gomock.Any(), gomock.Any(), domain.ChannelStore, domain.RepricingModeSafe).
		Return(&domain.RepricingResult{
			Mode:    domain.RepricingModeSafe,
			Drafts:  []*domain.PriceDraft{{ID: "drf001"}, {ID: "drf002"}},
			Skipped: 3,
		}, nil)

	service := NewRepricingSyncService(productRepo, engine, repricingTestConfig())
	require.NoError(t, service.RunRepricingSync(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, 2, status["last_sync_drafts"])
	assert.Equal(t, 3, status["last_sync_skipped"])
	assert.Equal(t, false, status["sync_running"])
}

func TestRepricingSyncGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewRepricingSyncService(
		mocks.NewMockProductRepository(ctrl),
		repricingmocks.NewMockEngine(ctrl),
		repricingTestConfig(),
	)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, "safe", status["sync_mode"])
	assert.Equal(t, false, status["sync_running"])
}
