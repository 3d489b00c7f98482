package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override secrets from the config file.
const (
	EnvBotToken         = "GATEWAY_BOT_TOKEN"
	EnvBackendJWTSecret = "GATEWAY_BACKEND_JWT_SECRET"
	EnvDatabasePassword = "GATEWAY_DB_PASSWORD"
)

// GatewayConfig represents the mini app gateway configuration
type GatewayConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Telegram TelegramConfig `yaml:"telegram"`
	Backend  BackendConfig  `yaml:"backend"`
	Points   PointsConfig   `yaml:"points"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"0s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" default:"gateway"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"miniapp_gateway" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// TelegramConfig contains Telegram Mini App settings
type TelegramConfig struct {
	BotToken    string        `yaml:"bot_token"`
	BotUsername string        `yaml:"bot_username" validate:"required"`
	InitDataTTL time.Duration `yaml:"init_data_ttl" default:"24h"`
	// AllowOutsideHost substitutes a placeholder user for requests that carry
	// no init data at all. Development only.
	AllowOutsideHost bool `yaml:"allow_outside_host"`
}

// BackendConfig contains companion backend API settings
type BackendConfig struct {
	BaseURL        string        `yaml:"base_url" validate:"required,url"`
	JWTSecret      string        `yaml:"jwt_secret" validate:"required,min=16"`
	JWTIssuer      string        `yaml:"jwt_issuer" default:"miniapp-gateway"`
	TokenTTL       time.Duration `yaml:"token_ttl" default:"5m"`
	RequestTimeout time.Duration `yaml:"request_timeout" default:"10s"`
}

// PointsConfig contains free-points claim settings
type PointsConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" default:"1m" validate:"gt=0"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// MetricsConfig contains prometheus settings
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics"`
}

// LoadGateway loads gateway configuration from file, applies defaults,
// environment overrides and validation.
func LoadGateway(configPath string) (*GatewayConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseGateway(raw)
}

// ParseGateway builds a GatewayConfig from YAML bytes.
func ParseGateway(raw []byte) (*GatewayConfig, error) {
	var cfg GatewayConfig
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := validateGateway(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *GatewayConfig) {
	if v := os.Getenv(EnvBotToken); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv(EnvBackendJWTSecret); v != "" {
		cfg.Backend.JWTSecret = v
	}
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		cfg.Database.Password = v
	}
}

func validateGateway(cfg *GatewayConfig) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	// Without a bot token init data cannot be verified, so only the
	// development placeholder flow could ever authenticate.
	if cfg.Telegram.BotToken == "" && !cfg.Telegram.AllowOutsideHost {
		return fmt.Errorf("telegram.bot_token is required")
	}
	return nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
