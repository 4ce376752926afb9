package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StaticDir holds the single HTML document served at "/".
	StaticDir string `env:"STATIC_DIR, default=./web"`
	// AnalyticsVenue is the venue whose events the analytics report lists.
	AnalyticsVenue string `env:"ANALYTICS_VENUE, default=Jawaharlal Nehru Stadium"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, default=15s"`
	ReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT, default=10s"`
	WriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT, default=30s"`

	SessionBackend string `env:"SESSION_BACKEND, default=memory"`

	DB    DBConfig
	Redis RedisConfig
}

// DBConfig describes the single logical database and the two credential sets
// that reach it. The engine's grants on each account are what separate the
// User and Admin roles.
type DBConfig struct {
	Host           string        `env:"DB_HOST,            default=localhost"`
	Port           int           `env:"DB_PORT,            default=3306"`
	Name           string        `env:"DB_NAME,            default=mini_project2"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT, default=5s"`
	MaxOpenConns   int           `env:"DB_MAX_OPEN_CONNS,  default=20"`

	User  Credentials `env:", prefix=DB_USER_"`
	Admin Credentials `env:", prefix=DB_ADMIN_"`
}

type Credentials struct {
	Name     string `env:"NAME"`
	Password string `env:"PASSWORD"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if cfg.DB.User.Name == "" {
		cfg.DB.User.Name = "app_user"
	}
	if cfg.DB.Admin.Name == "" {
		cfg.DB.Admin.Name = "app_admin"
	}
	switch cfg.SessionBackend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return nil, fmt.Errorf("config: unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}
	return &cfg, nil
}
