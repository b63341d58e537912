package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BookingGateway/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	BookingAPI  ExternalAPIConfig `toml:"booking_api"`
	DiscountAPI ExternalAPIConfig `toml:"discount_api"`
	Booking     BookingConfig     `toml:"booking"`
	Sessions    SessionsConfig    `toml:"sessions"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ExternalAPIConfig настройки клиента внешнего API
type ExternalAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig бизнес-настройки планирования
// Рабочее окно фиксировано для всех провайдеров; "сейчас" всегда
// резолвится в указанной гражданской таймзоне, а не в локальной зоне клиента
type BookingConfig struct {
	Timezone                 string `toml:"timezone"`
	OpenTime                 string `toml:"open_time"`  // "08:00"
	CloseTime                string `toml:"close_time"` // "21:00"
	HeartbeatIntervalSeconds int    `toml:"heartbeat_interval_seconds"`
}

// SessionsConfig настройки хранилища booking-сессий
type SessionsConfig struct {
	TTLMinutes           int `toml:"ttl_minutes"`
	SweepIntervalSeconds int `toml:"sweep_interval_seconds"`
}

// Load читает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.BookingAPI.URL == "" {
		return fmt.Errorf("config: booking_api.url is required")
	}
	if c.DiscountAPI.URL == "" {
		return fmt.Errorf("config: discount_api.url is required")
	}
	if c.Booking.Timezone == "" {
		return fmt.Errorf("config: booking.timezone is required")
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("config: invalid booking.timezone: %w", err)
	}
	if _, err := types.NewTimeStringFromString(c.Booking.OpenTime); err != nil {
		return fmt.Errorf("config: invalid booking.open_time: %w", err)
	}
	if _, err := types.NewTimeStringFromString(c.Booking.CloseTime); err != nil {
		return fmt.Errorf("config: invalid booking.close_time: %w", err)
	}
	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("config: sessions.ttl_minutes must be positive")
	}
	return nil
}

// Location возвращает гражданскую таймзону планирования
// Вызывается после успешной валидации, поэтому ошибка невозможна
func (c *Config) Location() *time.Location {
	loc, _ := time.LoadLocation(c.Booking.Timezone)
	return loc
}

// OpenTimeMinutes возвращает минуту начала рабочего дня
func (c *Config) OpenTimeMinutes() int {
	ts, _ := types.NewTimeStringFromString(c.Booking.OpenTime)
	minutes, _ := ts.MinuteOfDay()
	return minutes
}

// CloseTimeMinutes возвращает минуту конца рабочего дня
func (c *Config) CloseTimeMinutes() int {
	ts, _ := types.NewTimeStringFromString(c.Booking.CloseTime)
	minutes, _ := ts.MinuteOfDay()
	return minutes
}
