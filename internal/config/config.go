package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("invalid config")

// DefaultAreas города Британской Колумбии, по которым строятся рейтинги агентов
var DefaultAreas = []string{
	"Vancouver",
	"Burnaby",
	"Richmond",
	"Surrey",
	"Coquitlam",
	"North Vancouver",
	"West Vancouver",
	"New Westminster",
	"Langley",
	"Delta",
	"Victoria",
	"Kelowna",
}

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        DatabaseConfig    `toml:"database"`
	Logs            LogsConfig        `toml:"logs"`
	Metrics         MetricsConfig     `toml:"metrics"`
	Cache           CacheConfig       `toml:"cache"`
	FollowerService IntegrationConfig `toml:"follower_service"`
	Rankings        RankingsConfig    `toml:"rankings"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки Redis для кэша рейтингов
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	RankingTTL int    `toml:"ranking_ttl"` // секунды
}

// IntegrationConfig настройки внешнего HTTP сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// RankingsConfig фиксированный упорядоченный список районов для рейтингов
type RankingsConfig struct {
	Areas []string `toml:"areas"`
}

// Load читает конфигурацию из TOML файла
// Если рядом с файлом лежит .env, переменные из него загружаются в окружение,
// после чего переменные окружения переопределяют значения из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envPath, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv переопределяет значения переменными окружения
func (c *Config) applyEnv() error {
	stringVars := map[string]*string{
		"DB_HOST":              &c.Database.Host,
		"DB_USER":              &c.Database.User,
		"DB_PASSWORD":          &c.Database.Password,
		"DB_NAME":              &c.Database.DBName,
		"REDIS_ADDR":           &c.Cache.Addr,
		"REDIS_PASSWORD":       &c.Cache.Password,
		"FOLLOWER_SERVICE_URL": &c.FollowerService.URL,
		"LOG_LEVEL":            &c.Logs.Level,
	}
	for name, target := range stringVars {
		if v, ok := os.LookupEnv(name); ok {
			*target = v
		}
	}

	intVars := map[string]*int{
		"DB_PORT":   &c.Database.Port,
		"HTTP_PORT": &c.Server.HTTPPort,
	}
	for name, target := range intVars {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidConfig, name, v)
		}
		*target = n
	}

	return nil
}

func (c *Config) setDefaults() {
	setIntDefault(&c.Server.HTTPPort, 8080)
	setIntDefault(&c.Server.ReadTimeout, 10)
	setIntDefault(&c.Server.WriteTimeout, 10)
	setIntDefault(&c.Server.IdleTimeout, 60)
	setIntDefault(&c.Server.ShutdownTimeout, 15)

	setStringDefault(&c.Database.Host, "localhost")
	setIntDefault(&c.Database.Port, 5432)
	setStringDefault(&c.Database.SSLMode, "disable")
	setIntDefault(&c.Database.MaxOpenConns, 25)
	setIntDefault(&c.Database.MaxIdleConns, 5)
	setIntDefault(&c.Database.ConnMaxLifetime, 300)

	setStringDefault(&c.Logs.Level, "info")

	setStringDefault(&c.Metrics.Path, "/metrics")
	setStringDefault(&c.Metrics.ServiceName, "realty_service")

	setStringDefault(&c.Cache.Addr, "localhost:6379")
	setIntDefault(&c.Cache.RankingTTL, 300)

	setIntDefault(&c.FollowerService.Timeout, 5)

	if len(c.Rankings.Areas) == 0 {
		c.Rankings.Areas = append([]string(nil), DefaultAreas...)
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}

	if c.Cache.RankingTTL < 0 {
		return fmt.Errorf("%w: cache.ranking_ttl must not be negative", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Rankings.Areas))
	for i, area := range c.Rankings.Areas {
		name := strings.TrimSpace(area)
		if name == "" {
			return fmt.Errorf("%w: rankings.areas[%d] is empty", ErrInvalidConfig, i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: rankings.areas contains duplicate %q", ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
		c.Rankings.Areas[i] = name
	}

	return nil
}

func setIntDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setStringDefault(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
