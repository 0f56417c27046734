package pricing

import (
	"fmt"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/apiErrors"
)

// Simulate aplica um ajuste fracionário sobre o preço líquido do snapshot e
// devolve o resultado derivado, sem nenhuma mutação de estado.
// Invariante: NewGross = NewNet * (1 + VATRate).
func Simulate(snapshot *domain.PricingSnapshot, delta float64) (*domain.SimulationResult, error) {
	if snapshot == nil {
		return nil, NewPricingError(ErrMissingPricing, apiErrors.ErrMissingPricing, "Snapshot ausente para simulação")
	}

	newNet := snapshot.Net * (1 + delta)
	if newNet <= 0 {
		return nil, NewProductPricingError(
			ErrInvalidAdjustment,
			apiErrors.ErrInvalidAdjustment,
			snapshot.ProductID,
			fmt.Sprintf("Ajuste de %.4f resultaria em preço líquido não positivo", delta),
		)
	}

	newGross := newNet * (1 + snapshot.VATRate)
	newMarginPct := (newNet - snapshot.CostEur) / newNet * 100

	return &domain.SimulationResult{
		ProductID:    snapshot.ProductID,
		Channel:      snapshot.Channel,
		OldNet:       snapshot.Net,
		OldGross:     snapshot.Gross,
		OldMarginPct: snapshot.MarginPct,
		NewNet:       newNet,
		NewGross:     newGross,
		NewMarginPct: newMarginPct,
		ChangePct:    delta * 100,
	}, nil
}
