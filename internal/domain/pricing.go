package domain

// Canais de venda com ponto de preço próprio
const (
	ChannelStore       = "store"
	ChannelMarketplace = "marketplace"
	ChannelDealerT1    = "dealer_t1"
	ChannelDealerT2    = "dealer_t2"
	ChannelDistributor = "distributor"
)

// IsValidChannel verifica se o canal informado é um canal de venda conhecido
func IsValidChannel(channel string) bool {
	switch channel {
	case ChannelStore, ChannelMarketplace, ChannelDealerT1, ChannelDealerT2, ChannelDistributor:
		return true
	}
	return false
}

// PricingSnapshot representa a visão normalizada de preço de um produto em um canal.
// Invariantes: Gross = Net * (1 + VATRate); MarginPct = (Net - CostEur) / Net * 100
// somente quando Net > 0.
type PricingSnapshot struct {
	ProductID     string             `json:"product_id"`
	Channel       string             `json:"channel"`
	Net           float64            `json:"net"`
	Gross         float64            `json:"gross"`
	MarginPct     float64            `json:"margin_pct"`
	CostEur       float64            `json:"cost_eur"`
	Currency      string             `json:"currency"`
	VATRate       float64            `json:"vat_rate"`
	ChannelPrices map[string]float64 `json:"channel_prices"`
}

// CompetitorObservation representa um preço observado de um concorrente para um produto
type CompetitorObservation struct {
	CompetitorName string  `json:"competitor_name"`
	NetPrice       float64 `json:"net_price"`
	Currency       string  `json:"currency"`
	URL            *string `json:"url"`
}

// SimulationResult é o resultado de uma simulação de ajuste de preço (sem mutação)
type SimulationResult struct {
	ProductID    string  `json:"product_id"`
	Channel      string  `json:"channel"`
	OldNet       float64 `json:"old_net"`
	OldGross     float64 `json:"old_gross"`
	OldMarginPct float64 `json:"old_margin_pct"`
	NewNet       float64 `json:"new_net"`
	NewGross     float64 `json:"new_gross"`
	NewMarginPct float64 `json:"new_margin_pct"`
	ChangePct    float64 `json:"change_pct"`
}

// PricingHistoryEntry registra uma alteração efetivada de preço para auditoria
type PricingHistoryEntry struct {
	ProductID string  `json:"product_id"`
	Channel   string  `json:"channel"`
	OldNet    float64 `json:"old_net"`
	NewNet    float64 `json:"new_net"`
	OldGross  float64 `json:"old_gross"`
	NewGross  float64 `json:"new_gross"`
	Source    string  `json:"source"`
	ActorID   *int    `json:"actor_id"`
}

// LearningSignal registra o resultado de uma decisão de repricing para realimentar o modelo
type LearningSignal struct {
	ProductID          string  `json:"product_id"`
	Channel            string  `json:"channel"`
	Reason             string  `json:"reason"`
	AdjustmentFraction float64 `json:"adjustment_fraction"`
	Applied            bool    `json:"applied"`
	Mode               string  `json:"mode"`
}
