package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// EnvDBPassword переменная окружения, перекрывающая пароль БД из файла
const EnvDBPassword = "BOOKING_DB_PASSWORD"

var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Database   DatabaseConfig   `toml:"database"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Booking    BookingConfig    `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - stdout
}

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

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig внешний сервис расписания (REST backend)
type SchedulingConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig параметры календаря записи
type BookingConfig struct {
	Timezone            string  `toml:"timezone"`
	HorizonDays         int     `toml:"horizon_days"`
	EligibleDatesLimit  int     `toml:"eligible_dates_limit"`
	MaxOccurrences      int     `toml:"max_occurrences"`
	PreviewConcurrency  int     `toml:"preview_concurrency"`
	SubmitRatePerSecond float64 `toml:"submit_rate_per_second"`
	SubmitBurst         int     `toml:"submit_burst"`
}

// Location возвращает часовой пояс салона
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barber-booking-gateway",
		},
		Scheduling: SchedulingConfig{Timeout: 10},
		Booking: BookingConfig{
			Timezone:            "Local",
			HorizonDays:         domain.DefaultHorizonDays,
			EligibleDatesLimit:  domain.DefaultEligibleDatesLimit,
			MaxOccurrences:      domain.DefaultMaxOccurrences,
			PreviewConcurrency:  4,
			SubmitRatePerSecond: 5,
			SubmitBurst:         1,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}

	if password := os.Getenv(EnvDBPassword); password != "" {
		cfg.Database.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	if c.Scheduling.URL == "" {
		return fmt.Errorf("%w: scheduling.url is required", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(c.Scheduling.URL); err != nil {
		return fmt.Errorf("%w: scheduling.url: %v", ErrInvalidConfig, err)
	}
	if c.Scheduling.Timeout <= 0 {
		return fmt.Errorf("%w: scheduling.timeout must be positive", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.HorizonDays < 1 || c.Booking.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: booking.horizon_days must be between 1 and %d", ErrInvalidConfig, domain.MaxHorizonDays)
	}
	if c.Booking.EligibleDatesLimit < 1 {
		return fmt.Errorf("%w: booking.eligible_dates_limit must be positive", ErrInvalidConfig)
	}
	if c.Booking.MaxOccurrences < 1 {
		return fmt.Errorf("%w: booking.max_occurrences must be positive", ErrInvalidConfig)
	}
	if c.Booking.PreviewConcurrency < 1 {
		return fmt.Errorf("%w: booking.preview_concurrency must be positive", ErrInvalidConfig)
	}
	if c.Booking.SubmitRatePerSecond <= 0 || c.Booking.SubmitBurst < 1 {
		return fmt.Errorf("%w: booking.submit_rate_per_second and submit_burst must be positive", ErrInvalidConfig)
	}
	return nil
}
