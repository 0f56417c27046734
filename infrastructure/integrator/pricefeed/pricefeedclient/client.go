package pricefeedclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/commerce-backoffice-api/internal/config"
)

type Client interface {
	GetQuotes(params QuotesConsultationParams, feedConfig *config.PriceFeed) (QuotesConsultationResponse, error)
}

type PriceFeedClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do feed de preços
func NewClient(cfg *config.Config) Client {
	return &PriceFeedClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
