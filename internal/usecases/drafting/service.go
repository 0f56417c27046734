// Package drafting gerencia o ciclo de vida de drafts de preço (pending → approved/rejected)
package drafting

import (
	"context"

	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
	"github.com/vfg2006/commerce-backoffice-api/pkg/utils"
)

type Drafter interface {
	Create(ctx context.Context, draft *domain.PriceDraft) (string, error)
	Approve(ctx context.Context, draftID string, approverID int) (*domain.ApproveDraftResponse, error)
	Reject(ctx context.Context, draftID string, approverID int) error
	GetDraft(ctx context.Context, draftID string) (*domain.PriceDraft, error)
	ListDrafts(ctx context.Context, status *domain.DraftStatus) ([]*domain.PriceDraft, error)
}

type Service struct {
	draftRepo   repository.PriceDraftRepository
	pricingRepo repository.PricingRepository
}

func NewService(
	draftRepo repository.PriceDraftRepository,
	pricingRepo repository.PricingRepository,
) Drafter {
	return &Service{
		draftRepo:   draftRepo,
		pricingRepo: pricingRepo,
	}
}

// Create registra um novo draft em estado pending. A identidade do draft é
// gerada aqui; nenhum outro módulo atribui IDs de draft.
func (s *Service) Create(ctx context.Context, draft *domain.PriceDraft) (string, error) {
	if draft == nil || draft.ProductID == "" || draft.Channel == "" {
		return "", NewDraftError(ErrMissingDraftData, apiErrors.ErrMissingRequiredData, "", "Produto e canal são obrigatórios")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	draft.ID = id
	draft.Status = domain.DraftStatusPending
	draft.ApprovedBy = nil

	if err := s.draftRepo.CreatePriceDraft(draft); err != nil {
		return "", err
	}

	return id, nil
}

// Approve efetiva um draft pendente: transiciona o estado, escreve o novo
// preço no registro vivo do canal e grava o histórico de preço.
// Este é o único caminho de escrita no preço vivo do fluxo manual.
func (s *Service) Approve(ctx context.Context, draftID string, approverID int) (*domain.ApproveDraftResponse, error) {
	draft, err := s.draftRepo.GetDraftByID(draftID)
	if err != nil {
		return nil, err
	}

	if draft == nil {
		return nil, NewDraftError(ErrDraftNotFound, apiErrors.ErrDraftNotFound, draftID, "Draft não encontrado")
	}

	if draft.Status != domain.DraftStatusPending {
		return nil, NewDraftError(ErrInvalidDraftState, apiErrors.ErrInvalidDraftState, draftID, "Draft já está em estado "+string(draft.Status))
	}

	updated, err := s.draftRepo.UpdateDraftStatus(draftID, domain.DraftStatusApproved, approverID)
	if err != nil {
		return nil, err
	}

	// Outra aprovação pode ter vencido a corrida entre a leitura e a atualização
	if !updated {
		return nil, NewDraftError(ErrInvalidDraftState, apiErrors.ErrInvalidDraftState, draftID, "Draft não está mais pendente")
	}

	if err := s.pricingRepo.UpdateChannelPrice(draft.ProductID, draft.Channel, draft.NewNet, draft.NewGross); err != nil {
		return nil, err
	}

	historyEntry := &domain.PricingHistoryEntry{
		ProductID: draft.ProductID,
		Channel:   draft.Channel,
		OldNet:    draft.OldNet,
		NewNet:    draft.NewNet,
		OldGross:  draft.OldGross,
		NewGross:  draft.NewGross,
		Source:    "draft_approval",
		ActorID:   &approverID,
	}

	if err := s.pricingRepo.RecordPricingHistory(historyEntry); err != nil {
		log.L.WithError(err).WithField("draft_id", draftID).Warn("Falha ao gravar histórico de preço na aprovação do draft")
	}

	return &domain.ApproveDraftResponse{
		DraftID:   draftID,
		ProductID: draft.ProductID,
		Applied:   true,
	}, nil
}

// Reject descarta um draft pendente sem tocar no preço vivo
func (s *Service) Reject(ctx context.Context, draftID string, approverID int) error {
	draft, err := s.draftRepo.GetDraftByID(draftID)
	if err != nil {
		return err
	}

	if draft == nil {
		return NewDraftError(ErrDraftNotFound, apiErrors.ErrDraftNotFound, draftID, "Draft não encontrado")
	}

	if draft.Status != domain.DraftStatusPending {
		return NewDraftError(ErrInvalidDraftState, apiErrors.ErrInvalidDraftState, draftID, "Draft já está em estado "+string(draft.Status))
	}

	updated, err := s.draftRepo.UpdateDraftStatus(draftID, domain.DraftStatusRejected, approverID)
	if err != nil {
		return err
	}

	if !updated {
		return NewDraftError(ErrInvalidDraftState, apiErrors.ErrInvalidDraftState, draftID, "Draft não está mais pendente")
	}

	return nil
}

func (s *Service) GetDraft(ctx context.Context, draftID string) (*domain.PriceDraft, error) {
	draft, err := s.draftRepo.GetDraftByID(draftID)
	if err != nil {
		return nil, err
	}

	if draft == nil {
		return nil, NewDraftError(ErrDraftNotFound, apiErrors.ErrDraftNotFound, draftID, "Draft não encontrado")
	}

	return draft, nil
}

func (s *Service) ListDrafts(ctx context.Context, status *domain.DraftStatus) ([]*domain.PriceDraft, error) {
	return s.draftRepo.ListDrafts(status)
}
