// Package config загружает настройки клиента из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// MemoryStoragePath выбирает хранилище сессии в памяти вместо файла SQLite.
const MemoryStoragePath = ":memory:"

// Config описывает настройки клиента.
type Config struct {
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:"127.0.0.1:8081"`
	APIBaseURL         string        `env:"API_BASE_URL" envDefault:"http://localhost:8000"`
	StoragePath        string        `env:"STORAGE_PATH" envDefault:"activity-client.db"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	BannerTTL          time.Duration `env:"BANNER_TTL" envDefault:"5s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load читает конфигурацию из окружения и проверяет её.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые env не может проверить сам.
func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}
	if c.StoragePath == "" {
		return fmt.Errorf("STORAGE_PATH must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.BannerTTL <= 0 {
		return fmt.Errorf("BANNER_TTL must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel переводит LOG_LEVEL в уровень slog.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// UsesMemoryStorage сообщает, что сессию не нужно сохранять на диск.
func (c Config) UsesMemoryStorage() bool {
	return c.StoragePath == MemoryStoragePath
}

// UIOrigins возвращает origin-ы, с которых принимаются события и запросы к /api.
// Без CORS_ALLOWED_ORIGINS это адрес самого клиента; для loopback-адреса
// допускаются оба имени, localhost и 127.0.0.1.
func (c Config) UIOrigins() []string {
	if len(c.CORSAllowedOrigins) > 0 {
		return c.CORSAllowedOrigins
	}
	host, port, err := net.SplitHostPort(c.HTTPAddr)
	if err != nil {
		return []string{"http://" + c.HTTPAddr}
	}
	switch host {
	case "", "127.0.0.1", "localhost":
		return []string{"http://127.0.0.1:" + port, "http://localhost:" + port}
	default:
		return []string{"http://" + net.JoinHostPort(host, port)}
	}
}
