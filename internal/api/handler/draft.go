package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/drafting"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
	"github.com/vfg2006/commerce-backoffice-api/pkg/middleware"
)

// writeDraftError traduz erros do ciclo de vida de drafts para a resposta da API
func writeDraftError(w http.ResponseWriter, err error) {
	var draftErr *drafting.DraftError
	if errors.As(err, &draftErr) {
		apiErrors.WriteError(w, draftErr.Code, draftErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar draft", nil)
}

// approverFromContext extrai o identificador do aprovador autenticado
func approverFromContext(r *http.Request) (int, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// ListDrafts lista os drafts de preço, com filtro opcional por status
func ListDrafts(service drafting.Drafter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var status *domain.DraftStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			parsed := domain.DraftStatus(raw)
			switch parsed {
			case domain.DraftStatusPending, domain.DraftStatusApproved, domain.DraftStatusRejected:
				status = &parsed
			default:
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status de draft inválido. Valores aceitos: pending, approved, rejected", nil)
				return
			}
		}

		drafts, err := service.ListDrafts(r.Context(), status)
		if err != nil {
			logger.WithError(err).Error("drafts: erro ao listar drafts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar drafts", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(drafts); err != nil {
			logger.WithError(err).Error("drafts: erro ao enviar resposta da listagem")
		}
	}
}

// GetDraft retorna um draft de preço pelo identificador
func GetDraft(service drafting.Drafter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		draftID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		draft, err := service.GetDraft(r.Context(), draftID)
		if err != nil {
			logger.WithFields(log.Fields{
				"draft_id": draftID,
				"error":    err.Error(),
			}).Warn("drafts: erro ao buscar draft")

			writeDraftError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(draft); err != nil {
			logger.WithError(err).Error("drafts: erro ao enviar resposta do draft")
		}
	}
}

// ApproveDraft aprova um draft pendente e aplica o novo preço no canal
func ApproveDraft(service drafting.Drafter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		draftID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		approverID, ok := approverFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		response, err := service.Approve(r.Context(), draftID, approverID)
		if err != nil {
			logger.WithFields(log.Fields{
				"draft_id":    draftID,
				"approver_id": approverID,
				"error":       err.Error(),
			}).Warn("drafts: erro ao aprovar draft")

			writeDraftError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"draft_id":    draftID,
			"approver_id": approverID,
			"applied":     response.Applied,
		}).Info("drafts: draft aprovado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("drafts: erro ao enviar resposta da aprovação")
		}
	}
}

// RejectDraft rejeita um draft pendente sem alterar preços
func RejectDraft(service drafting.Drafter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		draftID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		approverID, ok := approverFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.Reject(r.Context(), draftID, approverID); err != nil {
			logger.WithFields(log.Fields{
				"draft_id":    draftID,
				"approver_id": approverID,
				"error":       err.Error(),
			}).Warn("drafts: erro ao rejeitar draft")

			writeDraftError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"draft_id": draftID,
			"status":   domain.DraftStatusRejected,
		})
	}
}
