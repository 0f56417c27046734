// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/repricing"
)

// Canal alvo da execução agendada; os demais canais são reprecificados sob demanda
const repricingSyncChannel = domain.ChannelStore

type RepricingSyncConfig struct {
	CronSchedule string
	Mode         string
	BatchSize    int
	SyncEnabled  bool
}

type RepricingSyncService struct {
	scheduler           *gocron.Scheduler
	productRepo         repository.ProductRepository
	engine              repricing.Engine
	config              RepricingSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncDrafts      int
	lastSyncSkipped     int
}

func NewRepricingSyncService(
	productRepo repository.ProductRepository,
	engine repricing.Engine,
	cfg *config.Config,
) *RepricingSyncService {
	syncConfig := RepricingSyncConfig{
		CronSchedule: cfg.RepricingSync.CronSchedule, // Default: 3h da manhã todos os dias
		Mode:         cfg.RepricingSync.Mode,         // Default: safe
		BatchSize:    cfg.RepricingSync.BatchSize,
		SyncEnabled:  cfg.RepricingSync.Enabled, // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"mode":          syncConfig.Mode,
	}).Info("Configuração do agendador de repricing carregada")

	return &RepricingSyncService{
		scheduler:   scheduler,
		productRepo: productRepo,
		engine:      engine,
		config:      syncConfig,
	}
}

func (s *RepricingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de repricing automático desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de repricing automático")

	// Agendar a execução do repricing
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunRepricingSync(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução agendada do repricing")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução do repricing: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do repricing automático")
		s.scheduler.Stop()
	}()

	return nil
}

// RunRepricingSync avalia todos os produtos ativos no canal alvo.
// A execução agendada sempre respeita o modo configurado (safe por padrão).
func (s *RepricingSyncService) RunRepricingSync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Execução de repricing já está em andamento")
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

	logrus.Info("Iniciando execução do repricing automático")

	productIDs, err := s.productRepo.ListActiveProductIDs(s.config.BatchSize)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos ativos para repricing")
		return err
	}

	if len(productIDs) == 0 {
		logrus.Info("Nenhum produto ativo encontrado para repricing")
		return nil
	}

	result, err := s.engine.EvaluateProducts(ctx, productIDs, repricingSyncChannel, domain.RepricingMode(s.config.Mode))
	if err != nil {
		logrus.WithError(err).Error("Erro na avaliação em lote do repricing")
		return err
	}

	s.syncMutex.Lock()
	s.lastSyncDrafts = len(result.Drafts)
	s.lastSyncSkipped = result.Skipped
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"products": len(productIDs),
		"drafts":   len(result.Drafts),
		"skipped":  result.Skipped,
		"mode":     s.config.Mode,
	}).Info("Execução do repricing automático concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma execução de repricing
func (s *RepricingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução de repricing já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do repricing")
	go s.RunRepricingSync(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *RepricingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_mode":              s.config.Mode,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_drafts":       s.lastSyncDrafts,
		"last_sync_skipped":      s.lastSyncSkipped,
	}
}
