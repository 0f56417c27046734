package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/repricing"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

const defaultRepricingBatchSize = 500

// RunRepricingRequest é o corpo opcional da execução manual do repricing
type RunRepricingRequest struct {
	ProductIDs []string `json:"product_ids"`
	Channel    string   `json:"channel"`
}

// RunRepricing executa o motor de repricing sob demanda. Sem corpo, avalia
// todos os produtos ativos no canal store; o modo vem da query string e é
// sempre safe quando omitido.
func RunRepricing(engine repricing.Engine, productRepo repository.ProductRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		mode := domain.RepricingMode(r.URL.Query().Get("mode"))
		if mode == "" {
			mode = domain.RepricingModeSafe
		}
		if mode != domain.RepricingModeSafe && mode != domain.RepricingModeAuto {
			apiErrors.WriteError(w, apiErrors.ErrRepricingMode, "Modo de repricing inválido. Valores aceitos: safe, auto", nil)
			return
		}

		var request RunRepricingRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && err != io.EOF {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		channel := request.Channel
		if channel == "" {
			channel = domain.ChannelStore
		}
		if !domain.IsValidChannel(channel) {
			apiErrors.WriteError(w, apiErrors.ErrChannelNotFound, "Canal de venda desconhecido: "+channel, nil)
			return
		}

		productIDs := request.ProductIDs
		if len(productIDs) == 0 {
			ids, err := productRepo.ListActiveProductIDs(defaultRepricingBatchSize)
			if err != nil {
				logger.WithError(err).Error("repricing: erro ao buscar produtos ativos")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos ativos", nil)
				return
			}
			productIDs = ids
		}

		logger.WithFields(log.Fields{
			"products": len(productIDs),
			"channel":  channel,
			"mode":     mode,
		}).Info("repricing: execução manual iniciada")

		result, err := engine.EvaluateProducts(r.Context(), productIDs, channel, mode)
		if err != nil {
			logger.WithError(err).Error("repricing: erro na avaliação em lote")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro na avaliação de repricing", nil)
			return
		}

		response := map[string]any{
			"status":  "completed",
			"mode":    result.Mode,
			"drafts":  len(result.Drafts),
			"skipped": result.Skipped,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("repricing: erro ao enviar resposta")
		}
	}
}
