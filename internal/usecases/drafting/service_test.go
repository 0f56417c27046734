package drafting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func pendingDraft() *domain.PriceDraft {
	return &domain.PriceDraft{
		ID:        "drf001",
		ProductID: "prod-1",
		Channel:   domain.ChannelStore,
		OldNet:    50.0,
		OldGross:  59.5,
		NewNet:    53.0,
		NewGross:  63.07,
		Notes:     "AI Auto-Repricing",
		Status:    domain.DraftStatusPending,
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		draft   *domain.PriceDraft
		setup   func(draftRepo *mocks.MockPriceDraftRepository)
		wantErr error
	}{
		{
			name:  "Deve criar draft pendente com ID próprio",
			draft: &domain.PriceDraft{ProductID: "prod-1", Channel: domain.ChannelStore, OldNet: 50, NewNet: 53},
			setup: func(draftRepo *mocks.MockPriceDraftRepository) {
				draftRepo.EXPECT().CreatePriceDraft(gomock.Any()).DoAndReturn(func(d *domain.PriceDraft) error {
					assert.NotEmpty(t, d.ID)
					assert.Equal(t, domain.DraftStatusPending, d.Status)
					assert.Nil(t, d.ApprovedBy)
					return nil
				})
			},
		},
		{
			name:    "Deve rejeitar draft sem produto",
			draft:   &domain.PriceDraft{Channel: domain.ChannelStore},
			setup:   func(draftRepo *mocks.MockPriceDraftRepository) {},
			wantErr: ErrMissingDraftData,
		},
		{
			name:    "Deve rejeitar draft sem canal",
			draft:   &domain.PriceDraft{ProductID: "prod-1"},
			setup:   func(draftRepo *mocks.MockPriceDraftRepository) {},
			wantErr: ErrMissingDraftData,
		},
		{
			name:  "Deve propagar erro do repositório",
			draft: &domain.PriceDraft{ProductID: "prod-1", Channel: domain.ChannelStore},
			setup: func(draftRepo *mocks.MockPriceDraftRepository) {
				draftRepo.EXPECT().CreatePriceDraft(gomock.Any()).Return(errors.New("erro de banco"))
			},
			wantErr: errors.New("erro de banco"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			draftRepo := mocks.NewMockPriceDraftRepository(ctrl)
			pricingRepo := mocks.NewMockPricingRepository(ctrl)
			tt.setup(draftRepo)

			service := NewService(draftRepo, pricingRepo)
			id, err := service.Create(context.Background(), tt.draft)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Empty(t, id)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, id)
		})
	}
}

func TestApprove(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		setup    func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository)
		wantErr  error
		validate func(t *testing.T, response *domain.ApproveDraftResponse)
	}{
		{
			name: "Deve aprovar draft pendente escrevendo preço vivo e histórico",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draftRepo.EXPECT().GetDraftByID("drf001").Return(pendingDraft(), nil)
				draftRepo.EXPECT().UpdateDraftStatus("drf001", domain.DraftStatusApproved, 7).Return(true, nil)
				pricingRepo.EXPECT().UpdateChannelPrice("prod-1", domain.ChannelStore, 53.0, 63.07).Return(nil)
				pricingRepo.EXPECT().RecordPricingHistory(gomock.Any()).DoAndReturn(func(entry *domain.PricingHistoryEntry) error {
					assert.Equal(t, "draft_approval", entry.Source)
					require.NotNil(t, entry.ActorID)
					assert.Equal(t, 7, *entry.ActorID)
					return nil
				})
			},
			validate: func(t *testing.T, response *domain.ApproveDraftResponse) {
				assert.Equal(t, "drf001", response.DraftID)
				assert.Equal(t, "prod-1", response.ProductID)
				assert.True(t, response.Applied)
			},
		},
		{
			name: "Deve falhar para draft inexistente",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draftRepo.EXPECT().GetDraftByID("drf001").Return(nil, nil)
			},
			wantErr: ErrDraftNotFound,
		},
		{
			name: "Deve falhar para draft já aprovado",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draft := pendingDraft()
				draft.Status = domain.DraftStatusApproved
				draftRepo.EXPECT().GetDraftByID("drf001").Return(draft, nil)
			},
			wantErr: ErrInvalidDraftState,
		},
		{
			name: "Deve falhar para draft rejeitado",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draft := pendingDraft()
				draft.Status = domain.DraftStatusRejected
				draftRepo.EXPECT().GetDraftByID("drf001").Return(draft, nil)
			},
			wantErr: ErrInvalidDraftState,
		},
		{
			name: "Deve falhar quando outra aprovação venceu a corrida",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draftRepo.EXPECT().GetDraftByID("drf001").Return(pendingDraft(), nil)
				draftRepo.EXPECT().UpdateDraftStatus("drf001", domain.DraftStatusApproved, 7).Return(false, nil)
			},
			wantErr: ErrInvalidDraftState,
		},
		{
			name: "Deve propagar erro da escrita do preço vivo",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draftRepo.EXPECT().GetDraftByID("drf001").Return(pendingDraft(), nil)
				draftRepo.EXPECT().UpdateDraftStatus("drf001", domain.DraftStatusApproved, 7).Return(true, nil)
				pricingRepo.EXPECT().UpdateChannelPrice("prod-1", domain.ChannelStore, 53.0, 63.07).Return(errors.New("timeout"))
			},
			wantErr: errors.New("timeout"),
		},
		{
			name: "Deve aprovar mesmo com falha no histórico",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draftRepo.EXPECT().GetDraftByID("drf001").Return(pendingDraft(), nil)
				draftRepo.EXPECT().UpdateDraftStatus("drf001", domain.DraftStatusApproved, 7).Return(true, nil)
				pricingRepo.EXPECT().UpdateChannelPrice("prod-1", domain.ChannelStore, 53.0, 63.07).Return(nil)
				pricingRepo.EXPECT().RecordPricingHistory(gomock.Any()).Return(errors.New("erro de banco"))
			},
			validate: func(t *testing.T, response *domain.ApproveDraftResponse) {
				assert.True(t, response.Applied)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			draftRepo := mocks.NewMockPriceDraftRepository(ctrl)
			pricingRepo := mocks.NewMockPricingRepository(ctrl)
			tt.setup(draftRepo, pricingRepo)

			service := NewService(draftRepo, pricingRepo)
			response, err := service.Approve(context.Background(), "drf001", 7)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, response)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, response)
			tt.validate(t, response)
		})
	}
}

func TestReject(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository)
		wantErr error
	}{
		{
			name: "Deve rejeitar draft pendente sem tocar no preço vivo",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draftRepo.EXPECT().GetDraftByID("drf001").Return(pendingDraft(), nil)
				draftRepo.EXPECT().UpdateDraftStatus("drf001", domain.DraftStatusRejected, 7).Return(true, nil)
			},
		},
		{
			name: "Deve falhar para draft inexistente",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draftRepo.EXPECT().GetDraftByID("drf001").Return(nil, nil)
			},
			wantErr: ErrDraftNotFound,
		},
		{
			name: "Deve falhar para draft já aprovado",
			setup: func(draftRepo *mocks.MockPriceDraftRepository, pricingRepo *mocks.MockPricingRepository) {
				draft := pendingDraft()
				draft.Status = domain.DraftStatusApproved
				draftRepo.EXPECT().GetDraftByID("drf001").Return(draft, nil)
			},
			wantErr: ErrInvalidDraftState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			draftRepo := mocks.NewMockPriceDraftRepository(ctrl)
			pricingRepo := mocks.NewMockPricingRepository(ctrl)
			tt.setup(draftRepo, pricingRepo)

			service := NewService(draftRepo, pricingRepo)
			err := service.Reject(context.Background(), "drf001", 7)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
		})
	}
}
