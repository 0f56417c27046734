package pricefeed

import (
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/pricefeed/pricefeedclient"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

type PriceFeedIntegrator interface {
	GetCompetitorPrices(sku string) ([]*domain.CompetitorObservation, error)
	CheckConnection() (bool, error)
}

type PriceFeedService struct {
	cfg    *config.Config
	Client pricefeedclient.Client
}

func New(cfg *config.Config, client pricefeedclient.Client) PriceFeedIntegrator {
	return &PriceFeedService{
		cfg:    cfg,
		Client: client,
	}
}

// GetCompetitorPrices consulta o feed externo e converte as cotações para o
// formato interno de observações de concorrentes
func (s *PriceFeedService) GetCompetitorPrices(sku string) ([]*domain.CompetitorObservation, error) {
	paramsClient := pricefeedclient.QuotesConsultationParams{
		SKU: sku,
	}

	resp, err := s.Client.GetQuotes(paramsClient, &s.cfg.PriceFeed)
	if err != nil {
		return nil, err
	}

	observations := make([]*domain.CompetitorObservation, 0, len(resp))
	for _, quote := range resp {
		// Cotações sem moeda assumem a moeda padrão de precificação
		currency := quote.Currency
		if currency == "" {
			currency = s.cfg.Pricing.DefaultCurrency
		}

		observations = append(observations, &domain.CompetitorObservation{
			CompetitorName: quote.Competitor,
			NetPrice:       quote.NetPrice,
			Currency:       currency,
			URL:            quote.URL,
		})
	}

	return observations, nil
}

func (s *PriceFeedService) CheckConnection() (bool, error) {
	_, err := s.Client.GetQuotes(pricefeedclient.QuotesConsultationParams{}, &s.cfg.PriceFeed)
	if err != nil {
		return false, err
	}

	return true, nil
}
