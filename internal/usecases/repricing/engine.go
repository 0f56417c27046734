// Package repricing implementa o motor de política de reprecificação automática
package repricing

import (
	"context"
	"fmt"
	"sync"

	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/drafting"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/pricing"
	"github.com/vfg2006/commerce-backoffice-api/pkg/log"
)

const (
	// Notas padrão gravadas em todo draft criado pelo motor
	draftNotes = "AI Auto-Repricing"

	// Limiares de margem (%) e seus ajustes fracionários
	marginLowThreshold  = 25.0
	marginMidThreshold  = 30.0
	marginHighThreshold = 55.0

	adjustmentMarginLow  = 0.10
	adjustmentMarginMid  = 0.05
	adjustmentMarginHigh = -0.08

	// Gap competitivo: fator sobre a média dos concorrentes
	competitorHighFactor = 1.15
	competitorLowFactor  = 0.85
	adjustmentCompetitor = 0.05

	// Clamp do modo safe e piso de relevância do ajuste
	safeModeClamp       = 0.06
	minRelevantAbsDelta = 0.01
)

type Engine interface {
	EvaluateBatch(
		ctx context.Context,
		snapshots []*domain.PricingSnapshot,
		competitors map[string][]*domain.CompetitorObservation,
		mode domain.RepricingMode,
	) (*domain.RepricingResult, error)
	EvaluateProducts(
		ctx context.Context,
		productIDs []string,
		channel string,
		mode domain.RepricingMode,
	) (*domain.RepricingResult, error)
}

type Service struct {
	pricingRepo repository.PricingRepository
	drafter     drafting.Drafter

	// Serializa escritas no preço vivo do mesmo produto entre execuções concorrentes
	productLocks sync.Map
}

func NewService(
	pricingRepo repository.PricingRepository,
	drafter drafting.Drafter,
) *Service {
	return &Service{
		pricingRepo: pricingRepo,
		drafter:     drafter,
	}
}

// EvaluateBatch avalia cada snapshot de forma independente e na ordem de entrada.
// Falhas por produto viram decisões "error"; o lote nunca é abortado.
func (s *Service) EvaluateBatch(
	ctx context.Context,
	snapshots []*domain.PricingSnapshot,
	competitors map[string][]*domain.CompetitorObservation,
	mode domain.RepricingMode,
) (*domain.RepricingResult, error) {
	if mode != domain.RepricingModeSafe && mode != domain.RepricingModeAuto {
		return nil, fmt.Errorf("modo de repricing inválido: %s", mode)
	}

	result := &domain.RepricingResult{
		Mode:      mode,
		Decisions: make([]*domain.PriceAdjustmentDecision, 0, len(snapshots)),
		Drafts:    make([]*domain.PriceDraft, 0),
	}

	for _, snapshot := range snapshots {
		decision, draft := s.evaluateProduct(ctx, snapshot, competitors, mode)

		result.Decisions = append(result.Decisions, decision)
		if draft != nil {
			result.Drafts = append(result.Drafts, draft)
		} else {
			result.Skipped++
		}

		s.recordSignal(decision, mode)
	}

	return result, nil
}

// EvaluateProducts monta os snapshots e observações de concorrentes dos
// produtos informados e delega para EvaluateBatch. Falhas de coleta por
// produto viram snapshots incompletos, que o lote registra como missing_pricing.
func (s *Service) EvaluateProducts(
	ctx context.Context,
	productIDs []string,
	channel string,
	mode domain.RepricingMode,
) (*domain.RepricingResult, error) {
	snapshots := make([]*domain.PricingSnapshot, 0, len(productIDs))
	competitors := make(map[string][]*domain.CompetitorObservation)

	for _, productID := range productIDs {
		snapshot, err := s.pricingRepo.GetPricingSnapshot(productID, channel)
		if err != nil {
			log.L.WithError(err).WithField("product_id", productID).Warn("Erro ao montar snapshot para repricing")
			snapshot = nil
		}

		if snapshot == nil {
			snapshots = append(snapshots, &domain.PricingSnapshot{ProductID: productID, Channel: channel})
			continue
		}

		snapshots = append(snapshots, snapshot)

		observations, err := s.pricingRepo.ListCompetitorPrices(productID)
		if err != nil {
			log.L.WithError(err).WithField("product_id", productID).Warn("Erro ao buscar preços de concorrentes")
			continue
		}

		if len(observations) > 0 {
			competitors[productID] = observations
		}
	}

	return s.EvaluateBatch(ctx, snapshots, competitors, mode)
}

// evaluateProduct aplica a política de ajuste a um único produto
func (s *Service) evaluateProduct(
	ctx context.Context,
	snapshot *domain.PricingSnapshot,
	competitors map[string][]*domain.CompetitorObservation,
	mode domain.RepricingMode,
) (*domain.PriceAdjustmentDecision, *domain.PriceDraft) {
	if !isCompleteSnapshot(snapshot) {
		return &domain.PriceAdjustmentDecision{
			ProductID: snapshotProductID(snapshot),
			Channel:   snapshotChannel(snapshot),
			Reason:    domain.DecisionReasonMissingPricing,
		}, nil
	}

	adjustment, reason := marginAdjustment(snapshot.MarginPct)

	if observations := competitors[snapshot.ProductID]; len(observations) > 0 {
		gap := competitorGapAdjustment(snapshot.Net, observations)
		if gap != 0 {
			adjustment += gap
			reason = domain.DecisionReasonCompetitorGap
		}
	}

	if mode == domain.RepricingModeSafe {
		adjustment = clamp(adjustment, -safeModeClamp, safeModeClamp)
	}

	if adjustment > -minRelevantAbsDelta && adjustment < minRelevantAbsDelta {
		return &domain.PriceAdjustmentDecision{
			ProductID: snapshot.ProductID,
			Channel:   snapshot.Channel,
			Reason:    domain.DecisionReasonTinyChange,
		}, nil
	}

	draft, err := s.createDraft(ctx, snapshot, adjustment)
	if err != nil {
		log.L.WithError(err).
			WithField("product_id", snapshot.ProductID).
			Error("Erro ao avaliar produto no repricing")

		return &domain.PriceAdjustmentDecision{
			ProductID:          snapshot.ProductID,
			Channel:            snapshot.Channel,
			AdjustmentFraction: adjustment,
			Reason:             domain.DecisionReasonError,
		}, nil
	}

	applied := false
	if mode == domain.RepricingModeAuto {
		// Draft e escrita viva são dois writes sem atomicidade; falha parcial
		// é tolerada e registrada, nunca revertida
		if err := s.applyLivePrice(snapshot.ProductID, snapshot.Channel, draft.NewNet, draft.NewGross); err != nil {
			log.L.WithError(err).
				WithField("product_id", snapshot.ProductID).
				WithField("draft_id", draft.ID).
				Warn("Draft criado mas escrita do preço vivo falhou no modo auto")
		} else {
			applied = true
		}
	}

	return &domain.PriceAdjustmentDecision{
		ProductID:          snapshot.ProductID,
		Channel:            snapshot.Channel,
		AdjustmentFraction: adjustment,
		Reason:             reason,
		Applied:            applied,
	}, draft
}

func (s *Service) createDraft(ctx context.Context, snapshot *domain.PricingSnapshot, adjustment float64) (*domain.PriceDraft, error) {
	simulation, err := pricing.Simulate(snapshot, adjustment)
	if err != nil {
		return nil, err
	}

	draft := &domain.PriceDraft{
		ProductID:    snapshot.ProductID,
		Channel:      snapshot.Channel,
		OldNet:       simulation.OldNet,
		OldGross:     simulation.OldGross,
		OldMarginPct: simulation.OldMarginPct,
		NewNet:       simulation.NewNet,
		NewGross:     simulation.NewGross,
		NewMarginPct: simulation.NewMarginPct,
		ChangePct:    simulation.ChangePct,
		Notes:        draftNotes,
	}

	if _, err := s.drafter.Create(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// applyLivePrice escreve o novo preço no registro vivo do canal, serializando
// escritas concorrentes para o mesmo produto
func (s *Service) applyLivePrice(productID, channel string, net, gross float64) error {
	lock := s.lockForProduct(productID)
	lock.Lock()
	defer lock.Unlock()

	return s.pricingRepo.UpdateChannelPrice(productID, channel, net, gross)
}

func (s *Service) lockForProduct(productID string) *sync.Mutex {
	actual, _ := s.productLocks.LoadOrStore(productID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// recordSignal grava a decisão como sinal de aprendizado; melhor esforço
func (s *Service) recordSignal(decision *domain.PriceAdjustmentDecision, mode domain.RepricingMode) {
	signal := &domain.LearningSignal{
		ProductID:          decision.ProductID,
		Channel:            decision.Channel,
		Reason:             decision.Reason,
		AdjustmentFraction: decision.AdjustmentFraction,
		Applied:            decision.Applied,
		Mode:               string(mode),
	}

	if err := s.pricingRepo.RecordLearningSignal(signal); err != nil {
		log.L.WithError(err).
			WithField("product_id", decision.ProductID).
			Warn("Falha ao gravar sinal de aprendizado")
	}
}

// marginAdjustment devolve o ajuste base pela banda de margem; primeira faixa vence
func marginAdjustment(marginPct float64) (float64, string) {
	switch {
	case marginPct < marginLowThreshold:
		return adjustmentMarginLow, domain.DecisionReasonMarginLow
	case marginPct < marginMidThreshold:
		return adjustmentMarginMid, domain.DecisionReasonMarginLow
	case marginPct > marginHighThreshold:
		return adjustmentMarginHigh, domain.DecisionReasonMarginHigh
	}
	return 0, domain.DecisionReasonTinyChange
}

// competitorGapAdjustment compara o preço próprio com a média dos concorrentes.
// As duas condições são verificadas de forma independente, nunca como else-if.
func competitorGapAdjustment(ownNet float64, observations []*domain.CompetitorObservation) float64 {
	var sum float64
	for _, obs := range observations {
		sum += obs.NetPrice
	}
	avg := sum / float64(len(observations))

	adjustment := 0.0
	if ownNet > avg*competitorHighFactor {
		adjustment -= adjustmentCompetitor
	}
	if ownNet < avg*competitorLowFactor {
		adjustment += adjustmentCompetitor
	}

	return adjustment
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func isCompleteSnapshot(snapshot *domain.PricingSnapshot) bool {
	return snapshot != nil && snapshot.ProductID != "" && snapshot.Channel != "" && snapshot.Net > 0
}

func snapshotProductID(snapshot *domain.PricingSnapshot) string {
	if snapshot == nil {
		return ""
	}
	return snapshot.ProductID
}

func snapshotChannel(snapshot *domain.PricingSnapshot) string {
	if snapshot == nil {
		return ""
	}
	return snapshot.Channel
}
