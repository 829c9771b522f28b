package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Поддерживаемые драйверы durable-хранилища реестра
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config конфигурация приложения, загружается из config.toml
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
}

// StorageConfig настройки durable-хранилища реестра бронирований
type StorageConfig struct {
	// Driver один из: file, postgres, redis
	Driver   string         `toml:"driver"`
	File     FileConfig     `toml:"file"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
}

// FileConfig настройки файлового хранилища
type FileConfig struct {
	// Dir каталог с файлом реестра
	Dir string `toml:"dir"`
}

// PostgresConfig настройки подключения к PostgreSQL
type PostgresConfig struct {
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

// DSN собирает строку подключения к PostgreSQL
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	// File путь к файлу логов; пусто или "stdout" - вывод в stdout
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
}

// Load загружает конфигурацию из TOML файла.
// Перед чтением подхватывает .env (если есть); секреты хранилищ можно
// переопределить переменными окружения, чтобы не класть их в config.toml.
func Load(path string) (*Config, error) {
	// .env опционален, его отсутствие - не ошибка
	_ = godotenv.Load()

	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: DriverFile,
			File:   FileConfig{Dir: "data"},
			Postgres: PostgresConfig{
				Host:            "localhost",
				Port:            5432,
				SSLMode:         "disable",
				MaxOpenConns:    5,
				MaxIdleConns:    2,
				ConnMaxLifetime: 300,
			},
			Redis: RedisConfig{Addr: "localhost:6379"},
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "smc-appointment-core",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SMC_POSTGRES_PASSWORD"); v != "" {
		cfg.Storage.Postgres.Password = v
	}
	if v := os.Getenv("SMC_REDIS_PASSWORD"); v != "" {
		cfg.Storage.Redis.Password = v
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverPostgres, DriverRedis:
		return nil
	default:
		return fmt.Errorf("config: unknown storage driver %q (want %s, %s or %s)",
			c.Storage.Driver, DriverFile, DriverPostgres, DriverRedis)
	}
}
