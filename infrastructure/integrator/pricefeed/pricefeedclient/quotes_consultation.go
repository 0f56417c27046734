package pricefeedclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	pricefeeddomain "github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/pricefeed/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
)

type QuotesConsultationParams struct {
	SKU string
}

type QuotesConsultationResponse []pricefeeddomain.Quote

func (c *PriceFeedClient) GetQuotes(params QuotesConsultationParams, feedConfig *config.PriceFeed) (QuotesConsultationResponse, error) {
	var response QuotesConsultationResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(feedConfig.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/quotes")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("sku", params.SKU)
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "Bearer "+feedConfig.AccessToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
