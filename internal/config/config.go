package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageMemory = "memory"
	StorageSQL    = "sql"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Storage           Storage           `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Cors              Cors              `mapstructure:",squash"`
	Collaboration     Collaboration     `mapstructure:",squash"`
	Seed              Seed              `mapstructure:",squash"`
	AnalyticsSnapshot AnalyticsSnapshot `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Storage struct {
	Backend string `mapstructure:"storage_backend"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Collaboration struct {
	StrictTransitions bool `mapstructure:"collaboration_strict_transitions"`
}

type Seed struct {
	OnStartup     bool   `mapstructure:"seed_on_startup"`
	AdminPassword string `mapstructure:"seed_admin_password"`
}

type AnalyticsSnapshot struct {
	CronSchedule string `mapstructure:"analytics_snapshot_cron"`
	Enabled      bool   `mapstructure:"analytics_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("STORAGE_BACKEND", StorageMemory)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/influencehub?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("COLLABORATION_STRICT_TRANSITIONS", false)

	viper.SetDefault("SEED_ON_STARTUP", false)
	viper.SetDefault("SEED_ADMIN_PASSWORD", "")

	viper.SetDefault("ANALYTICS_SNAPSHOT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("ANALYTICS_SNAPSHOT_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	config.Storage.Backend = strings.ToLower(strings.TrimSpace(config.Storage.Backend))
	if config.Storage.Backend != StorageMemory && config.Storage.Backend != StorageSQL {
		return nil, fmt.Errorf("STORAGE_BACKEND inválido: %q", config.Storage.Backend)
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a string de conexão conforme o driver. sqlite e libsql usam a URL como está.
func BuildDSN(db Database) string {
	switch strings.ToLower(db.Driver) {
	case "postgres", "postgresql":
		if strings.HasPrefix(db.URL, "postgres://") || strings.HasPrefix(db.URL, "postgresql://") {
			return db.URL
		}
		return fmt.Sprintf("postgres://%s:%s@%s", db.User, db.Password, db.URL)
	default:
		return db.URL
	}
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
