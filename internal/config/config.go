package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Analytics         Analytics         `mapstructure:",squash"`
	DriverRankingSync DriverRankingSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Analytics agrupa os parâmetros do motor de análise
type Analytics struct {
	Timezone           string   `mapstructure:"analytics_timezone"`
	DefaultGranularity string   `mapstructure:"analytics_default_granularity"`
	DefaultTopN        int      `mapstructure:"analytics_default_top_n"`
	StatusAliases      []string `mapstructure:"analytics_status_aliases"`
}

// Location retorna o fuso de referência usado em janelas e buckets
func (a Analytics) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}

	location, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", a.Timezone, err)
	}

	return location, nil
}

type DriverRankingSync struct {
	CronSchedule string `mapstructure:"driver_ranking_sync_cron"`
	Enabled      bool   `mapstructure:"driver_ranking_sync_enabled"`
	TopN         int    `mapstructure:"driver_ranking_sync_top_n"`
	LookbackDays int    `mapstructure:"driver_ranking_sync_lookback_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("ANALYTICS_TIMEZONE", "UTC")
	viper.SetDefault("ANALYTICS_DEFAULT_GRANULARITY", "daily")
	viper.SetDefault("ANALYTICS_DEFAULT_TOP_N", 5)
	viper.SetDefault("ANALYTICS_STATUS_ALIASES", "order:finishied=finished") // Literal legado gravado pelo sistema antigo

	viper.SetDefault("DRIVER_RANKING_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DRIVER_RANKING_SYNC_ENABLED", false)
	viper.SetDefault("DRIVER_RANKING_SYNC_TOP_N", 50)
	viper.SetDefault("DRIVER_RANKING_SYNC_LOOKBACK_DAYS", 30)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.Validate(); err != nil {
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

// Validate confere os valores que não podem ser corrigidos em tempo de execução
func (c *Config) Validate() error {
	if _, err := c.Analytics.Location(); err != nil {
		return err
	}

	if c.Analytics.DefaultTopN <= 0 {
		return fmt.Errorf("ANALYTICS_DEFAULT_TOP_N deve ser positivo, recebido %d", c.Analytics.DefaultTopN)
	}

	if c.DriverRankingSync.Enabled && c.DriverRankingSync.LookbackDays <= 0 {
		return fmt.Errorf("DRIVER_RANKING_SYNC_LOOKBACK_DAYS deve ser positivo, recebido %d", c.DriverRankingSync.LookbackDays)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
