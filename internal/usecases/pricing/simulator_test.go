package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

func TestSimulate(t *testing.T) {
	snapshot := &domain.PricingSnapshot{
		ProductID: "prod-1",
		Channel:   domain.ChannelStore,
		Net:       100.0,
		Gross:     119.0,
		MarginPct: 30.0,
		CostEur:   70.0,
		Currency:  "EUR",
		VATRate:   0.19,
	}

	tests := []struct {
		name     string
		snapshot *domain.PricingSnapshot
		delta    float64
		wantErr  error
		validate func(t *testing.T, result *domain.SimulationResult)
	}{
		{
			name:     "Deve aplicar aumento de 10% sobre o preço líquido",
			snapshot: snapshot,
			delta:    0.10,
			validate: func(t *testing.T, result *domain.SimulationResult) {
				assert.InDelta(t, 110.0, result.NewNet, 1e-9)
				assert.InDelta(t, 110.0*1.19, result.NewGross, 1e-9)
				assert.InDelta(t, (110.0-70.0)/110.0*100, result.NewMarginPct, 1e-9)
				assert.InDelta(t, 10.0, result.ChangePct, 1e-9)
			},
		},
		{
			name:     "Deve aplicar redução de 5% sobre o preço líquido",
			snapshot: snapshot,
			delta:    -0.05,
			validate: func(t *testing.T, result *domain.SimulationResult) {
				assert.InDelta(t, 95.0, result.NewNet, 1e-9)
				assert.InDelta(t, 95.0*1.19, result.NewGross, 1e-9)
			},
		},
		{
			name:     "Deve manter o preço com ajuste zero",
			snapshot: snapshot,
			delta:    0,
			validate: func(t *testing.T, result *domain.SimulationResult) {
				assert.InDelta(t, snapshot.Net, result.NewNet, 1e-9)
				assert.InDelta(t, 0.0, result.ChangePct, 1e-9)
			},
		},
		{
			name:     "Deve preservar os valores antigos no resultado",
			snapshot: snapshot,
			delta:    0.10,
			validate: func(t *testing.T, result *domain.SimulationResult) {
				assert.Equal(t, snapshot.Net, result.OldNet)
				assert.Equal(t, snapshot.Gross, result.OldGross)
				assert.Equal(t, snapshot.MarginPct, result.OldMarginPct)
				assert.Equal(t, snapshot.ProductID, result.ProductID)
				assert.Equal(t, snapshot.Channel, result.Channel)
			},
		},
		{
			name:     "Deve rejeitar ajuste que zera o preço líquido",
			snapshot: snapshot,
			delta:    -1.0,
			wantErr:  ErrInvalidAdjustment,
		},
		{
			name:     "Deve rejeitar ajuste que torna o preço líquido negativo",
			snapshot: snapshot,
			delta:    -1.5,
			wantErr:  ErrInvalidAdjustment,
		},
		{
			name:     "Deve rejeitar snapshot ausente",
			snapshot: nil,
			delta:    0.10,
			wantErr:  ErrMissingPricing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Simulate(tt.snapshot, tt.delta)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			tt.validate(t, result)
		})
	}
}

func TestSimulateNaoMutaSnapshot(t *testing.T) {
	snapshot := &domain.PricingSnapshot{
		ProductID: "prod-1",
		Channel:   domain.ChannelStore,
		Net:       50.0,
		Gross:     59.5,
		MarginPct: 10.0,
		CostEur:   45.0,
		VATRate:   0.19,
	}

	_, err := Simulate(snapshot, 0.10)
	require.NoError(t, err)

	// A simulação é pura: o snapshot de entrada permanece intocado
	assert.Equal(t, 50.0, snapshot.Net)
	assert.Equal(t, 59.5, snapshot.Gross)
	assert.Equal(t, 10.0, snapshot.MarginPct)
}
