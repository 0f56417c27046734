package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/pricing"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

// SimulatePriceRequest é o corpo da simulação de ajuste de preço
type SimulatePriceRequest struct {
	Channel string  `json:"channel"`
	Delta   float64 `json:"delta"`
}

// writePricingError traduz erros de precificação para a resposta padronizada da API
func writePricingError(w http.ResponseWriter, err error) {
	var pricingErr *pricing.PricingError
	if errors.As(err, &pricingErr) {
		apiErrors.WriteError(w, pricingErr.Code, pricingErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver preço do produto", nil)
}

// GetProductPricing retorna o snapshot normalizado de preço de um produto em um canal
func GetProductPricing(service pricing.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		channel := r.URL.Query().Get("channel")
		if channel == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro channel é obrigatório", nil)
			return
		}

		snapshot, err := service.Resolve(id, channel)
		if err != nil {
			logger.WithFields(log.Fields{
				"product_id": id,
				"channel":    channel,
				"error":      err.Error(),
			}).Warn("pricing: falha ao resolver snapshot de preço")

			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("pricing: erro ao enviar resposta do snapshot")
		}
	}
}

// SimulatePrice resolve o snapshot do produto e simula um ajuste fracionário
// sobre ele. A simulação é pura: nenhum preço é alterado.
func SimulatePrice(service pricing.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request SimulatePriceRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.Channel == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo channel é obrigatório", nil)
			return
		}

		snapshot, err := service.Resolve(id, request.Channel)
		if err != nil {
			logger.WithFields(log.Fields{
				"product_id": id,
				"channel":    request.Channel,
				"error":      err.Error(),
			}).Warn("pricing: falha ao resolver snapshot para simulação")

			writePricingError(w, err)
			return
		}

		simulation, err := pricing.Simulate(snapshot, request.Delta)
		if err != nil {
			logger.WithFields(log.Fields{
				"product_id": id,
				"delta":      request.Delta,
				"error":      err.Error(),
			}).Warn("pricing: simulação rejeitada")

			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(simulation); err != nil {
			logger.WithError(err).Error("pricing: erro ao enviar resposta da simulação")
		}
	}
}
