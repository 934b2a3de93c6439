package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// Драйверы хранилища снапшота
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Переменные окружения с секретами
const (
	envAdminPasswordHash = "ADMIN_PASSWORD_HASH"
	envDBPassword        = "DB_PASSWORD"
	envRedisPassword     = "REDIS_PASSWORD"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
	Admin    AdminConfig    `toml:"admin"`
	Seed     SeedConfig     `toml:"seed"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	// Источники браузерного UI для CORS, пусто = CORS выключен
	AllowedOrigins []string `toml:"allowed_origins"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор транспорта для снапшота
type StorageConfig struct {
	Driver string `toml:"driver"`
	Key    string `toml:"key"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// BookingConfig бизнес-параметры бронирования
type BookingConfig struct {
	HorizonMonths int `toml:"horizon_months"`
	BulkBatchSize int `toml:"bulk_batch_size"`
}

// AdminConfig настройки гейта администратора
type AdminConfig struct {
	PasswordHash       string `toml:"password_hash"`
	LoginRatePerMinute int    `toml:"login_rate_per_minute"`
	LoginBurst         int    `toml:"login_burst"`
}

// SeedConfig настройки демо-данных
type SeedConfig struct {
	Enabled    bool  `toml:"enabled"`
	RandomSeed int64 `toml:"random_seed"`
}

// Load читает конфигурацию из TOML файла.
// Секреты могут быть переопределены переменными окружения или файлом .env.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "stage_calendar",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
			Key:    domain.DefaultSnapshotKey,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Booking: BookingConfig{
			HorizonMonths: domain.DefaultHorizonMonths,
			BulkBatchSize: domain.DefaultBulkBatchSize,
		},
		Admin: AdminConfig{
			LoginRatePerMinute: 5,
			LoginBurst:         3,
		},
		Seed: SeedConfig{RandomSeed: 1},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envAdminPasswordHash); v != "" {
		c.Admin.PasswordHash = v
	}
	if v := os.Getenv(envDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(envRedisPassword); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("%w: storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("%w: storage.key is empty", ErrInvalidConfig)
	}

	if c.Booking.HorizonMonths < 1 || c.Booking.HorizonMonths > domain.MaxHorizonMonths {
		return fmt.Errorf("%w: booking.horizon_months must be in 1..%d", ErrInvalidConfig, domain.MaxHorizonMonths)
	}
	if c.Booking.BulkBatchSize < 1 {
		return fmt.Errorf("%w: booking.bulk_batch_size must be positive", ErrInvalidConfig)
	}

	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("%w: admin.password_hash is empty (set %s)", ErrInvalidConfig, envAdminPasswordHash)
	}
	if c.Admin.LoginRatePerMinute < 1 || c.Admin.LoginBurst < 1 {
		return fmt.Errorf("%w: admin login rate and burst must be positive", ErrInvalidConfig)
	}

	return nil
}
