package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de armazenamento suportados.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config armazena todas as configurações da API.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string
	CORSOrigin  string

	// Armazenamento
	StorageDriver string
	DatabaseURL   string
	DBTimeout     time.Duration
	SeedOnStart   bool

	// Rate Limiting (Redis). RedisAddr vazio desliga o limitador.
	RedisAddr            string
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Tracing. Endpoint vazio desliga a exportação.
	OTLPEndpoint string
}

// IsDevelopment indica se o ambiente é de desenvolvimento (logs legíveis).
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig carrega o .env (se existir) e lê as configurações do ambiente.
func LoadConfig() (*Config, error) {
	// O .env é opcional: em Docker as variáveis já vêm do ambiente.
	_ = godotenv.Load()

	return Load(viper.New())
}

// Load lê as configurações a partir de uma instância do viper. Separado para os testes.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("STORAGE_DRIVER", StoragePostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("SEED_ON_START", false)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.AutomaticEnv()

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),
		CORSOrigin:  v.GetString("CORS_ORIGIN"),

		StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		DBTimeout:     time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,
		SeedOnStart:   v.GetBool("SEED_ON_START"),

		RedisAddr:            v.GetString("REDIS_ADDR"),
		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,

		OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("a variável de ambiente DATABASE_URL deve ser definida para STORAGE_DRIVER=%s", StoragePostgres)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q", c.StorageDriver)
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("DB_TIMEOUT_SEC deve ser positivo")
	}
	return nil
}
