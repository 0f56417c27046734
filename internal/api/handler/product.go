package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/catalog"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

const (
	defaultProductListLimit = 50
	maxProductListLimit     = 200
)

// ImportProductsRequest é o corpo da importação de produtos (upsert por SKU)
type ImportProductsRequest struct {
	Products []*domain.ProductImportEntry `json:"products"`
}

// productFiltersFromQuery monta os filtros de listagem a partir da query string
func productFiltersFromQuery(r *http.Request) *domain.ProductFilters {
	filters := &domain.ProductFilters{
		Limit: defaultProductListLimit,
	}

	if brand := r.URL.Query().Get("brand"); brand != "" {
		filters.Brand = &brand
	}

	if status := r.URL.Query().Get("status"); status != "" {
		parsed := domain.ProductStatus(status)
		filters.Status = &parsed
	}

	if search := r.URL.Query().Get("search"); search != "" {
		filters.Search = &search
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			if limit > maxProductListLimit {
				limit = maxProductListLimit
			}
			filters.Limit = limit
		}
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			filters.Offset = offset
		}
	}

	return filters
}

// ListProducts lista os produtos do catálogo com filtros opcionais
func ListProducts(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.ListProducts(productFiltersFromQuery(r))
		if err != nil {
			logger.WithError(err).Error("catalog: erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("catalog: erro ao enviar resposta da listagem")
		}
	}
}

// GetProduct busca um produto por ID interno ou SKU
func GetProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.GetProduct(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"product_id": id,
				"error":      err.Error(),
			}).Error("catalog: erro ao buscar produto")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado: "+id, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logger.WithError(err).Error("catalog: erro ao enviar resposta do produto")
		}
	}
}

// ImportProducts importa produtos em lote, fazendo upsert por SKU
func ImportProducts(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request ImportProductsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if len(request.Products) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum produto informado para importação", nil)
			return
		}

		response, err := service.ImportProducts(r.Context(), request.Products)
		if err != nil {
			logger.WithError(err).Error("catalog: erro na importação de produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro na importação de produtos", nil)
			return
		}

		logger.WithFields(log.Fields{
			"created": response.Created,
			"updated": response.Updated,
		}).Info("catalog: importação de produtos concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("catalog: erro ao enviar resposta da importação")
		}
	}
}
