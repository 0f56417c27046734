package repricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	draftingmocks "github.com/vfg2006/commerce-backoffice-api/internal/usecases/drafting/mocks"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newSnapshot(productID string, net, cost float64) *domain.PricingSnapshot {
	return &domain.PricingSnapshot{
		ProductID: productID,
		Channel:   domain.ChannelStore,
		Net:       net,
		Gross:     net * 1.19,
		MarginPct: (net - cost) / net * 100,
		CostEur:   cost,
		Currency:  "EUR",
		VATRate:   0.19,
	}
}

func TestEvaluateBatch(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name        string
		snapshots   []*domain.PricingSnapshot
		competitors map[string][]*domain.CompetitorObservation
		mode        domain.RepricingMode
		setup       func(pricingRepo *mocks.MockPricingRepository, drafter *draftingmocks.MockDrafter)
		validate    func(t *testing.T, result *domain.RepricingResult)
	}{
		{
			name:      "Deve pular produto com margem saudável como tiny_change",
			snapshots: []*domain.PricingSnapshot{newSnapshot("prod-1", 100, 70)},
			mode:      domain.RepricingModeSafe,
			setup: func(pricingRepo *mocks.MockPricingRepository, drafter *draftingmocks.MockDrafter) {
				pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()
			},
			validate: func(t *testing.T, result *domain.RepricingResult) {
				require.Len(t, result.Decisions, 1)
				assert.Equal(t, domain.DecisionReasonTinyChange, result.Decisions[0].Reason)
				assert.Empty(t, result.Drafts)
				assert.Equal(t, 1, result.Skipped)
			},
		},
		{
			name:      "Deve criar draft para margem baixa com ajuste limitado pelo modo safe",
			snapshots: []*domain.PricingSnapshot{newSnapshot("prod-1", 50, 45)},
			mode:      domain.RepricingModeSafe,
			setup: func(pricingRepo *mocks.MockPricingRepository, drafter *draftingmocks.MockDrafter) {
				drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("drf001", nil)
				pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()
			},
			validate: func(t *testing.T, result *domain.RepricingResult) {
				require.Len(t, result.Decisions, 1)
				assert.Equal(t, domain.DecisionReasonMarginLow, result.Decisions[0].Reason)
				assert.InDelta(t, 0.06, result.Decisions[0].AdjustmentFraction, 1e-9)

				require.Len(t, result.Drafts, 1)
				assert.InDelta(t, 53.0, result.Drafts[0].NewNet, 1e-9)
				assert.Equal(t, "AI Auto-Repricing", result.Drafts[0].Notes)
				assert.Equal(t, 0, result.Skipped)
			},
		},
		{
			name:      "Deve somar ajuste de margem e gap competitivo e limitar em -0.06 no modo safe",
			snapshots: []*domain.PricingSnapshot{newSnapshot("prod-1", 120, 50)},
			competitors: map[string][]*domain.CompetitorObservation{
				"prod-1": {
					{CompetitorName: "concorrente-a", NetPrice: 90},
					{CompetitorName: "concorrente-b", NetPrice: 110},
				},
			},
			mode: domain.RepricingModeSafe,
			setup: func(pricingRepo *mocks.MockPricingRepository, drafter *draftingmocks.MockDrafter) {
				drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("drf002", nil)
				pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()
			},
			validate: func(t *testing.T, result *domain.RepricingResult) {
				// margem ~58% → -0.08; próprio 120 > 100*1.15 → -0.05; combinado -0.13 → clamp -0.06
				require.Len(t, result.Decisions, 1)
				assert.Equal(t, domain.DecisionReasonCompetitorGap, result.Decisions[0].Reason)
				assert.InDelta(t, -0.06, result.Decisions[0].AdjustmentFraction, 1e-9)

				require.Len(t, result.Drafts, 1)
				assert.InDelta(t, 120*0.94, result.Drafts[0].NewNet, 1e-9)
			},
		},
		{
			name:      "Deve aplicar ajuste combinado sem clamp no modo auto",
			snapshots: []*domain.PricingSnapshot{newSnapshot("prod-1", 120, 50)},
			competitors: map[string][]*domain.CompetitorObservation{
				"prod-1": {{CompetitorName: "concorrente-a", NetPrice: 100}},
			},
			mode: domain.RepricingModeAuto,
			setup: func(pricingRepo *mocks.MockPricingRepository, drafter *draftingmocks.MockDrafter) {
				drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("drf003", nil)
				pricingRepo.EXPECT().UpdateChannelPrice("prod-1", domain.ChannelStore, gomock.Any(), gomock.Any()).Return(nil)
				pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()
			},
			validate: func(t *testing.T, result *domain.RepricingResult) {
				require.Len(t, result.Decisions, 1)
				assert.InDelta(t, -0.13, result.Decisions[0].AdjustmentFraction, 1e-9)
				assert.True(t, result.Decisions[0].Applied)

				require.Len(t, result.Drafts, 1)
				assert.InDelta(t, 120*0.87, result.Drafts[0].NewNet, 1e-9)
			},
		},
		{
			name: "Deve registrar missing_pricing para snapshot incompleto sem abortar o lote",
			snapshots: []*domain.PricingSnapshot{
				{ProductID: "prod-1", Channel: domain.ChannelStore},
				newSnapshot("prod-2", 50, 45),
			},
			mode: domain.RepricingModeSafe,
			setup: func(pricingRepo *mocks.MockPricingRepository, drafter *draftingmocks.MockDrafter) {
				drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("drf004", nil)
				pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()
			},
			validate: func(t *testing.T, result *domain.RepricingResult) {
				require.Len(t, result.Decisions, 2)
				assert.Equal(t, domain.DecisionReasonMissingPricing, result.Decisions[0].Reason)
				assert.Equal(t, "prod-1", result.Decisions[0].ProductID)
				assert.Equal(t, domain.DecisionReasonMarginLow, result.Decisions[1].Reason)
				require.Len(t, result.Drafts, 1)
				assert.Equal(t, 1, result.Skipped)
			},
		},
		{
			name: "Deve rebaixar falha por produto para decisão error e continuar o lote",
			snapshots: []*domain.PricingSnapshot{
				newSnapshot("prod-1", 50, 45),
				newSnapshot("prod-2", 40, 36),
			},
			mode: domain.RepricingModeSafe,
			setup: func(pricingRepo *mocks.MockPricingRepository, drafter *draftingmocks.MockDrafter) {
				gomock.InOrder(
					drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", errors.New("erro de banco")),
					drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("drf005", nil),
				)
				pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()
			},
			validate: func(t *testing.T, result *domain.RepricingResult) {
				require.Len(t, result.Decisions, 2)
				assert.Equal(t, domain.DecisionReasonError, result.Decisions[0].Reason)
				assert.Equal(t, domain.DecisionReasonMarginLow, result.Decisions[1].Reason)
				require.Len(t, result.Drafts, 1)
				assert.Equal(t, "prod-2", result.Drafts[0].ProductID)
			},
		},
		{
			name:      "Deve tolerar falha parcial entre draft e escrita viva no modo auto",
			snapshots: []*domain.PricingSnapshot{newSnapshot("prod-1", 50, 45)},
			mode:      domain.RepricingModeAuto,
			setup: func(pricingRepo *mocks.MockPricingRepository, drafter *draftingmocks.MockDrafter) {
				drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("drf006", nil)
				pricingRepo.EXPECT().UpdateChannelPrice("prod-1", domain.ChannelStore, gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
				pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()
			},
			validate: func(t *testing.T, result *domain.RepricingResult) {
				// O draft sobrevive mesmo com a escrita viva falhando
				require.Len(t, result.Drafts, 1)
				require.Len(t, result.Decisions, 1)
				assert.False(t, result.Decisions[0].Applied)
			},
		},
		{
			name:      "Deve manter a ordem de entrada nas decisões",
			snapshots: []*domain.PricingSnapshot{newSnapshot("prod-b", 100, 70), newSnapshot("prod-a", 50, 45), newSnapshot("prod-c", 100, 70)},
			mode:      domain.RepricingModeSafe,
			setup: func(pricingRepo *mocks.MockPricingRepository, drafter *draftingmocks.MockDrafter) {
				drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("drf007", nil)
				pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()
			},
			validate: func(t *testing.T, result *domain.RepricingResult) {
				require.Len(t, result.Decisions, 3)
				assert.Equal(t, "prod-b", result.Decisions[0].ProductID)
				assert.Equal(t, "prod-a", result.Decisions[1].ProductID)
				assert.Equal(t, "prod-c", result.Decisions[2].ProductID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pricingRepo := mocks.NewMockPricingRepository(ctrl)
			drafter := draftingmocks.NewMockDrafter(ctrl)
			tt.setup(pricingRepo, drafter)

			service := NewService(pricingRepo, drafter)
			result, err := service.EvaluateBatch(context.Background(), tt.snapshots, tt.competitors, tt.mode)

			require.NoError(t, err)
			require.NotNil(t, result)
			tt.validate(t, result)
		})
	}
}

func TestEvaluateBatchModoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockPricingRepository(ctrl), draftingmocks.NewMockDrafter(ctrl))
	result, err := service.EvaluateBatch(context.Background(), nil, nil, "aggressive")

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestEvaluateBatchIdempotente(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pricingRepo := mocks.NewMockPricingRepository(ctrl)
	drafter := draftingmocks.NewMockDrafter(ctrl)

	drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("drf008", nil).Times(2)
	pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()

	service := NewService(pricingRepo, drafter)
	snapshots := []*domain.PricingSnapshot{newSnapshot("prod-1", 50, 45)}

	first, err := service.EvaluateBatch(context.Background(), snapshots, nil, domain.RepricingModeSafe)
	require.NoError(t, err)

	second, err := service.EvaluateBatch(context.Background(), snapshots, nil, domain.RepricingModeSafe)
	require.NoError(t, err)

	// Sem mudança externa de preço, duas execuções em safe produzem as mesmas decisões
	require.Len(t, second.Decisions, len(first.Decisions))
	for i := range first.Decisions {
		assert.Equal(t, first.Decisions[i].Reason, second.Decisions[i].Reason)
		assert.Equal(t, first.Decisions[i].AdjustmentFraction, second.Decisions[i].AdjustmentFraction)
	}
}

func TestMarginAdjustment(t *testing.T) {
	tests := []struct {
		name      string
		marginPct float64
		want      float64
	}{
		{name: "Deve aplicar +10% para margem abaixo de 25%", marginPct: 10, want: 0.10},
		{name: "Deve aplicar +10% no limite inferior", marginPct: 24.999, want: 0.10},
		{name: "Deve aplicar +5% para margem entre 25% e 30%", marginPct: 27, want: 0.05},
		{name: "Deve aplicar 0% para margem saudável", marginPct: 40, want: 0},
		{name: "Deve aplicar 0% exatamente em 55%", marginPct: 55, want: 0},
		{name: "Deve aplicar -8% para margem acima de 55%", marginPct: 58, want: -0.08},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := marginAdjustment(tt.marginPct)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCompetitorGapAdjustment(t *testing.T) {
	obs := func(prices ...float64) []*domain.CompetitorObservation {
		out := make([]*domain.CompetitorObservation, 0, len(prices))
		for _, p := range prices {
			out = append(out, &domain.CompetitorObservation{NetPrice: p})
		}
		return out
	}

	tests := []struct {
		name         string
		ownNet       float64
		observations []*domain.CompetitorObservation
		want         float64
	}{
		{name: "Deve reduzir 5% quando acima de avg*1.15", ownNet: 120, observations: obs(100), want: -0.05},
		{name: "Deve aumentar 5% quando abaixo de avg*0.85", ownNet: 80, observations: obs(100), want: 0.05},
		{name: "Deve manter quando dentro da faixa", ownNet: 100, observations: obs(100), want: 0},
		{name: "Deve manter exatamente no limite superior", ownNet: 115, observations: obs(100), want: 0},
		{name: "Deve usar a média de múltiplas observações", ownNet: 120, observations: obs(90, 110), want: -0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := competitorGapAdjustment(tt.ownNet, tt.observations)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateProducts(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pricingRepo := mocks.NewMockPricingRepository(ctrl)
	drafter := draftingmocks.NewMockDrafter(ctrl)

	// prod-1 tem snapshot e concorrentes; prod-2 falha na coleta e vira missing_pricing
	pricingRepo.EXPECT().GetPricingSnapshot("prod-1", domain.ChannelStore).Return(newSnapshot("prod-1", 50, 45), nil)
	pricingRepo.EXPECT().ListCompetitorPrices("prod-1").Return([]*domain.CompetitorObservation{
		{CompetitorName: "concorrente-a", NetPrice: 70, Currency: "EUR"},
	}, nil)
	pricingRepo.EXPECT().GetPricingSnapshot("prod-2", domain.ChannelStore).Return(nil, errors.New("erro de banco"))
	pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()
	drafter.EXPECT().Create(gomock.Any(), gomock.Any()).Return("drf001", nil)

	service := NewService(pricingRepo, drafter)
	result, err := service.EvaluateProducts(context.Background(), []string{"prod-1", "prod-2"}, domain.ChannelStore, domain.RepricingModeSafe)

	require.NoError(t, err)
	require.Len(t, result.Decisions, 2)
	assert.Equal(t, "prod-1", result.Decisions[0].ProductID)
	assert.Equal(t, "prod-2", result.Decisions[1].ProductID)
	assert.Equal(t, domain.DecisionReasonMissingPricing, result.Decisions[1].Reason)
	require.Len(t, result.Drafts, 1)
	assert.Equal(t, 1, result.Skipped)
}

func TestEvaluateProductsSemSnapshot(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pricingRepo := mocks.NewMockPricingRepository(ctrl)
	drafter := draftingmocks.NewMockDrafter(ctrl)

	// Snapshot nil sem erro (produto sem custo ou sem preço no canal)
	pricingRepo.EXPECT().GetPricingSnapshot("prod-1", domain.ChannelStore).Return(nil, nil)
	pricingRepo.EXPECT().RecordLearningSignal(gomock.Any()).Return(nil).AnyTimes()

	service := NewService(pricingRepo, drafter)
	result, err := service.EvaluateProducts(context.Background(), []string{"prod-1"}, domain.ChannelStore, domain.RepricingModeSafe)

	require.NoError(t, err)
	require.Len(t, result.Decisions, 1)
	assert.Equal(t, domain.DecisionReasonMissingPricing, result.Decisions[0].Reason)
	assert.Empty(t, result.Drafts)
}
