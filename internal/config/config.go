package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Pricing        Pricing        `mapstructure:",squash"`
	PriceFeed      PriceFeed      `mapstructure:",squash"`
	RepricingSync  RepricingSync  `mapstructure:",squash"`
	CompetitorSync CompetitorSync `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Pricing agrupa os parâmetros padrão de precificação.
// A taxa de IVA é sempre a do registro de preço do canal; aqui fica apenas
// o que não tem origem no banco.
type Pricing struct {
	DefaultCurrency string `mapstructure:"pricing_default_currency"`
}

// PriceFeed configura o feed externo de preços de concorrentes
type PriceFeed struct {
	URL         string `mapstructure:"price_feed_url"`
	AccessToken string `mapstructure:"price_feed_access_token"`
}

// RepricingSync configura a execução agendada do repricing automático
type RepricingSync struct {
	CronSchedule string `mapstructure:"repricing_sync_cron"`
	Mode         string `mapstructure:"repricing_sync_mode"`
	BatchSize    int    `mapstructure:"repricing_sync_batch_size"`
	Enabled      bool   `mapstructure:"repricing_sync_enabled"`
}

// CompetitorSync configura a sincronização de preços de concorrentes
type CompetitorSync struct {
	CronSchedule        string `mapstructure:"competitor_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"competitor_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"competitor_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"competitor_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/backoffice")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("PRICING_DEFAULT_CURRENCY", "EUR")

	viper.SetDefault("PRICE_FEED_URL", "https://pricefeed.example.com/api/v1")
	viper.SetDefault("PRICE_FEED_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	// Defaults para o repricing automático
	viper.SetDefault("REPRICING_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("REPRICING_SYNC_MODE", "safe")      // Nunca escrever no preço vivo sem aprovação
	viper.SetDefault("REPRICING_SYNC_BATCH_SIZE", 500)
	viper.SetDefault("REPRICING_SYNC_ENABLED", false)

	// Defaults para sincronização de preços de concorrentes
	viper.SetDefault("COMPETITOR_SYNC_CRON", "0 2 * * *")               // Todos os dias às 2h da manhã
	viper.SetDefault("COMPETITOR_SYNC_REQUEST_DELAY_SECONDS", 2)        // 2 segundos entre requisições
	viper.SetDefault("COMPETITOR_SYNC_MAX_CONCURRENT_JOBS", 3)          // 3 jobs concorrentes
	viper.SetDefault("COMPETITOR_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
