package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/pricefeed"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

type CompetitorPricesSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

type CompetitorPricesSyncService struct {
	scheduler           *gocron.Scheduler
	productRepo         repository.ProductRepository
	pricingRepo         repository.PricingRepository
	priceFeedService    pricefeed.PriceFeedIntegrator
	config              CompetitorPricesSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCompetitorPricesSyncService(
	productRepo repository.ProductRepository,
	pricingRepo repository.PricingRepository,
	priceFeedService pricefeed.PriceFeedIntegrator,
	cfg *config.Config,
) *CompetitorPricesSyncService {
	syncConfig := CompetitorPricesSyncConfig{
		CronSchedule:        cfg.CompetitorSync.CronSchedule, // Default: 2h da manhã todos os dias
		RequestDelaySeconds: cfg.CompetitorSync.RequestDelaySeconds,
		SyncEnabled:         cfg.CompetitorSync.Enabled, // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de preços de concorrentes carregada")

	return &CompetitorPricesSyncService{
		scheduler:        scheduler,
		productRepo:      productRepo,
		pricingRepo:      pricingRepo,
		priceFeedService: priceFeedService,
		config:           syncConfig,
	}
}

func (s *CompetitorPricesSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronização de preços de concorrentes desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização de preços de concorrentes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncCompetitorPrices(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de preços de concorrentes")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de preços de concorrentes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de preços de concorrentes")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncCompetitorPrices consulta o feed externo para cada produto ativo e
// substitui as observações persistidas. O intervalo entre requisições respeita
// o rate limit do feed.
func (s *CompetitorPricesSyncService) SyncCompetitorPrices() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de preços de concorrentes já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de preços de concorrentes")

	status := domain.ProductStatusActive
	products, err := s.productRepo.ListProducts(&domain.ProductFilters{Status: &status})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos para sincronização de concorrentes")
		return err
	}

	if len(products) == 0 {
		logrus.Info("Nenhum produto ativo encontrado para sincronização de concorrentes")
		return nil
	}

	synced := 0
	for i, product := range products {
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		observations, err := s.priceFeedService.GetCompetitorPrices(product.SKU)
		if err != nil {
			logrus.WithError(err).WithField("sku", product.SKU).Warn("Erro ao consultar feed de concorrentes")
			continue
		}

		if len(observations) == 0 {
			continue
		}

		if err := s.pricingRepo.SaveCompetitorPrices(product.ID, observations); err != nil {
			logrus.WithError(err).WithField("product_id", product.ID).Error("Erro ao salvar preços de concorrentes")
			continue
		}

		synced++
	}

	logrus.WithFields(logrus.Fields{
		"products": len(products),
		"synced":   synced,
	}).Info("Sincronização de preços de concorrentes concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de preços de concorrentes
func (s *CompetitorPricesSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de preços de concorrentes já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de preços de concorrentes")
	go s.SyncCompetitorPrices()
}

// GetStatus retorna o status atual do agendador
func (s *CompetitorPricesSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
