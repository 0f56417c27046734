package domain

// RepricingMode define o comportamento do motor de repricing
type RepricingMode string

const (
	// RepricingModeSafe limita o ajuste combinado a [-6%, +6%] e nunca escreve no preço vivo
	RepricingModeSafe RepricingMode = "safe"
	// RepricingModeAuto aplica o ajuste sem clamp e escreve direto no preço do canal
	RepricingModeAuto RepricingMode = "auto"
)

// Motivos possíveis de uma decisão de ajuste
const (
	DecisionReasonMarginLow      = "margin_low"
	DecisionReasonMarginHigh     = "margin_high"
	DecisionReasonCompetitorGap  = "competitor_gap"
	DecisionReasonTinyChange     = "tiny_change"
	DecisionReasonMissingPricing = "missing_pricing"
	DecisionReasonError          = "error"
)

// PriceAdjustmentDecision é o resultado efêmero da avaliação de política por produto.
// Não é persistido diretamente: alimenta a criação de um draft.
type PriceAdjustmentDecision struct {
	ProductID          string  `json:"product_id"`
	Channel            string  `json:"channel"`
	AdjustmentFraction float64 `json:"adjustment_fraction"`
	Reason             string  `json:"reason"`
	Applied            bool    `json:"applied"`
}

// RepricingResult agrega o resultado de uma avaliação em lote
type RepricingResult struct {
	Mode      RepricingMode              `json:"mode"`
	Decisions []*PriceAdjustmentDecision `json:"decisions"`
	Drafts    []*PriceDraft              `json:"drafts"`
	Skipped   int                        `json:"skipped"`
}
