package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Cloudinary CloudinaryConfig `toml:"cloudinary"`
	SendGrid   SendGridConfig   `toml:"sendgrid"`
	Pricing    PricingConfig    `toml:"pricing"`
	RateLimit  RateLimitConfig  `toml:"ratelimit"`
	Session    SessionConfig    `toml:"session"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	// Таймаут чтения/записи для пакетных операций галереи (секунды)
	BulkTimeout int `toml:"bulk_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	AutoMigrate     bool   `toml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
	// Максимальное время ожидания БД при старте (секунды)
	ConnectTimeout int `toml:"connect_timeout"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr" env:"REDIS_ADDR"`
	Password string `toml:"password" env:"REDIS_PASSWORD"`
	DB       int    `toml:"db"`
}

type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type CloudinaryConfig struct {
	CloudName string `toml:"cloud_name" env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `toml:"api_key" env:"CLOUDINARY_API_KEY"`
	APISecret string `toml:"api_secret" env:"CLOUDINARY_API_SECRET"`
	Folder    string `toml:"folder"`
}

type SendGridConfig struct {
	APIKey    string `toml:"api_key" env:"SENDGRID_API_KEY"`
	FromEmail string `toml:"from_email" env:"SENDGRID_FROM_EMAIL"`
	FromName  string `toml:"from_name"`
	Timeout   int    `toml:"timeout"`
}

type PricingConfig struct {
	DefaultDepositPercentage float64 `toml:"default_deposit_percentage"`
	QuotationValidityDays    int     `toml:"quotation_validity_days"`
	InvoiceDueDays           int     `toml:"invoice_due_days"`
	DefaultCurrency          string  `toml:"default_currency"`
}

type RateLimitConfig struct {
	// Запросов в секунду на один IP
	RPS   float64 `toml:"rps"`
	Burst int     `toml:"burst"`
	// IP или CIDR прокси, которым можно верить в X-Forwarded-For
	TrustedProxies []string `toml:"trusted_proxies"`
	// Через сколько секунд простоя лимитер клиента удаляется
	IdleTTL int `toml:"idle_ttl"`
}

type SessionConfig struct {
	// Время жизни сессии (минуты)
	TTLMinutes int    `toml:"ttl_minutes"`
	KeyPrefix  string `toml:"key_prefix"`
}

// Load загружает конфигурацию из TOML файла
// Затем секреты переопределяются переменными окружения (.env подхватывается, если есть)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			BulkTimeout:     600,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			ConnectTimeout:  30,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "tour-service",
		},
		Cloudinary: CloudinaryConfig{Folder: "gallery"},
		SendGrid:   SendGridConfig{Timeout: 10},
		Pricing: PricingConfig{
			DefaultDepositPercentage: 30,
			QuotationValidityDays:    14,
			InvoiceDueDays:           7,
			DefaultCurrency:          "USD",
		},
		RateLimit: RateLimitConfig{RPS: 5, Burst: 10, IdleTTL: 600},
		Session:   SessionConfig{TTLMinutes: 720, KeyPrefix: "session:"},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("invalid config: server.http_port must be positive")
	}
	if c.Pricing.DefaultDepositPercentage < 0 || c.Pricing.DefaultDepositPercentage > 100 {
		return fmt.Errorf("invalid config: pricing.default_deposit_percentage must be in [0, 100]")
	}
	if c.Pricing.QuotationValidityDays < 1 {
		return fmt.Errorf("invalid config: pricing.quotation_validity_days must be at least 1")
	}
	if c.Session.TTLMinutes < 1 {
		return fmt.Errorf("invalid config: session.ttl_minutes must be at least 1")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1 {
		return fmt.Errorf("invalid config: ratelimit.rps and ratelimit.burst must be positive")
	}
	if c.RateLimit.IdleTTL < 1 {
		return fmt.Errorf("invalid config: ratelimit.idle_ttl must be at least 1")
	}
	if c.Server.BulkTimeout < 1 {
		return fmt.Errorf("invalid config: server.bulk_timeout must be at least 1")
	}
	return nil
}
