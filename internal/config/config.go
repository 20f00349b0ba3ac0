package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig              `toml:"server"`
	Database DatabaseConfig            `toml:"database"`
	Logs     LogsConfig                `toml:"logs"`
	Metrics  MetricsConfig             `toml:"metrics"`
	Auth     AuthConfig                `toml:"auth"`
	Reviews  ReviewsConfig             `toml:"reviews"`
	Masters  map[string]MasterSchedule `toml:"masters"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig настройки аутентификации мастеров
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// ReviewsConfig настройки токенов отзывов
type ReviewsConfig struct {
	// TokenLifetimeHours срок действия одноразовой ссылки на отзыв
	TokenLifetimeHours int `toml:"token_lifetime_hours"`
	// BaseURL базовый адрес сайта для построения ссылок на отзыв
	BaseURL string `toml:"base_url"`
}

// MasterSchedule график работы мастера в конфигурации
type MasterSchedule struct {
	StartHour      int      `toml:"start_hour"`
	EndHour        int      `toml:"end_hour"`
	BreakStartHour *float64 `toml:"break_start_hour"`
	BreakEndHour   *float64 `toml:"break_end_hour"`
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Reviews.TokenLifetimeHours <= 0 {
		cfg.Reviews.TokenLifetimeHours = domain.DefaultTokenLifetimeHours
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		cfg.Auth.TokenTTLHours = 24
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth.jwt_secret is required")
	}

	return &cfg, nil
}

// MasterSchedules конвертирует графики мастеров в доменные модели
func (c *Config) MasterSchedules() map[string]domain.MasterSchedule {
	schedules := make(map[string]domain.MasterSchedule, len(c.Masters))
	for code, s := range c.Masters {
		schedule := domain.MasterSchedule{
			StartHour: s.StartHour,
			EndHour:   s.EndHour,
		}
		if s.BreakStartHour != nil && s.BreakEndHour != nil {
			schedule.Break = &domain.BreakWindow{
				Start: *s.BreakStartHour,
				End:   *s.BreakEndHour,
			}
		}
		schedules[code] = schedule
	}
	return schedules
}
