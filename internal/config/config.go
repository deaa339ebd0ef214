package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Источники справочных данных
const (
	ReferenceSourceEmbedded = "embedded"
	ReferenceSourceFile     = "file"
	ReferenceSourcePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Reference ReferenceConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host     string
	Port     int
	Env      string
	Timezone string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type ReferenceConfig struct {
	Source string
	File   string
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxBatchSize      int
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host:     v.GetString("API_HOST"),
			Port:     v.GetInt("API_PORT"),
			Env:      v.GetString("API_ENV"),
			Timezone: v.GetString("TIMEZONE"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Reference: ReferenceConfig{
			Source: strings.ToLower(strings.TrimSpace(v.GetString("REFERENCE_SOURCE"))),
			File:   v.GetString("REFERENCE_FILE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxBatchSize:      v.GetInt("WORKER_MAX_BATCH_SIZE"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5055
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.Timezone == "" {
		cfg.Server.Timezone = "Europe/Warsaw"
	}
	if cfg.Reference.Source == "" {
		cfg.Reference.Source = ReferenceSourceEmbedded
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "railway-action-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 1000 * time.Millisecond
	}
	if cfg.Worker.MaxBatchSize == 0 {
		cfg.Worker.MaxBatchSize = 20
	}

	return cfg
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.Reference.Source {
	case ReferenceSourceEmbedded, ReferenceSourcePostgres:
	case ReferenceSourceFile:
		if c.Reference.File == "" {
			return fmt.Errorf("REFERENCE_FILE is required when REFERENCE_SOURCE=%s", ReferenceSourceFile)
		}
	default:
		return fmt.Errorf("unknown REFERENCE_SOURCE %q", c.Reference.Source)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid API_PORT %d", c.Server.Port)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN - строка подключения PostgreSQL в формате key=value
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Addr - адрес Redis host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}
