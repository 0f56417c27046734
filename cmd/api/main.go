package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/pricefeed"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/pricefeed/pricefeedclient"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/api"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/scheduler"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/catalog"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/drafting"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/pricing"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/repricing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	pricingRepo := repository.NewPricingRepository(pgConn)
	draftRepo := repository.NewPriceDraftRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	catalogService := catalog.NewService(productRepo)
	pricingService := pricing.NewService(productRepo, pricingRepo)
	draftingService := drafting.NewService(draftRepo, pricingRepo)
	repricingEngine := repricing.NewService(pricingRepo, draftingService)

	priceFeedClient := pricefeedclient.NewClient(cfg)
	priceFeedIntegrator := pricefeed.New(cfg, priceFeedClient)

	// Inicializa os agendadores de sincronização separados
	repricingSyncService := scheduler.NewRepricingSyncService(
		productRepo,
		repricingEngine,
		cfg,
	)

	competitorPricesSyncService := scheduler.NewCompetitorPricesSyncService(
		productRepo,
		pricingRepo,
		priceFeedIntegrator,
		cfg,
	)

	// Inicia os agendadores em background
	if err := repricingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de repricing automático")
	} else {
		logrus.Info("Agendador de repricing automático iniciado com sucesso")
	}

	if err := competitorPricesSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de preços de concorrentes")
	} else {
		logrus.Info("Agendador de preços de concorrentes iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		catalogService,
		pricingService,
		draftingService,
		repricingEngine,
		productRepo,
		repricingSyncService,
		competitorPricesSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
