package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string         `validate:"required,oneof=local development production"`
	Http       HttpConfig     `validate:"required"`
	Postgres   PostgresConfig `validate:"required"`
	Cache      CacheConfig    `validate:"required"`
	Redis      RedisConfig
	Cors       CorsConfig
	FireMapURL string `validate:"required,url"`
}

type HttpConfig struct {
	Port            string        `validate:"required,startswith=:"`
	ReadTimeout     time.Duration `validate:"required"`
	WriteTimeout    time.Duration `validate:"required"`
	ShutdownTimeout time.Duration `validate:"required"`
}

type PostgresConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required,min=1,max=65535"`
	Database string `validate:"required"`
	User     string `validate:"required"`
	Password string
	SSLMode  string `validate:"required"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	QueryTimeout    time.Duration `validate:"required"`
}

// CacheConfig selects one cache store implementation at startup. The
// original probed the runtime for a platform cache; here the backend is an
// explicit tagged choice.
type CacheConfig struct {
	Backend          string        `validate:"required,oneof=memory file redis"`
	TTL              time.Duration `validate:"required"`
	Dir              string
	SweepMaxAge      time.Duration `validate:"required"`
	SweepProbability float64       `validate:"min=0,max=1"`
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CorsConfig struct {
	ProdOrigins []string
	DevOrigins  []string
}

// Fallback origin lists, used when the env lists are unset.
var (
	defaultProdOrigins = []string{
		"https://wfca.com",
		"https://www.wfca.com",
		"https://dailydispatch.com",
		"https://www.dailydispatch.com",
		"https://fire-map.wfca.com",
	}
	defaultDevOrigins = []string{
		"http://localhost:3000",
		"http://localhost:8000",
		"http://localhost:8080",
		"http://localhost:8888",
	}
)

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENVIRONMENT", "development"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("WFCA_PG_HOST", "localhost"),
			Port:            getEnvInt("WFCA_PG_PORT", 5432),
			Database:        getEnv("WFCA_PG_NAME", "wfca"),
			User:            getEnv("WFCA_PG_USER", "wfca"),
			Password:        getEnv("WFCA_PG_PASS", ""),
			SSLMode:         getEnv("WFCA_PG_SSL_MODE", "disable"),
			MaxConns:        int32(getEnvInt("WFCA_PG_MAX_CONNS", 10)),
			MinConns:        int32(getEnvInt("WFCA_PG_MIN_CONNS", 1)),
			MaxConnLifetime: getEnvDuration("WFCA_PG_MAX_CONN_LIFETIME", time.Hour),
			QueryTimeout:    getEnvDuration("WFCA_PG_QUERY_TIMEOUT", 5*time.Second),
		},
		Cache: CacheConfig{
			Backend:          getEnv("CACHE_BACKEND", "memory"),
			TTL:              getEnvDuration("CACHE_TTL", 300*time.Second),
			Dir:              getEnv("CACHE_DIR", "cache"),
			SweepMaxAge:      getEnvDuration("CACHE_SWEEP_MAX_AGE", time.Hour),
			SweepProbability: getEnvFloat("CACHE_SWEEP_PROBABILITY", 0.01),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cors: CorsConfig{
			ProdOrigins: getEnvList("CORS_ORIGINS_PROD", defaultProdOrigins),
			DevOrigins:  getEnvList("CORS_ORIGINS_DEV", defaultDevOrigins),
		},
		FireMapURL: getEnv("FIRE_MAP_URL", "https://fire-map.wfca.com"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.Duration("cache_ttl", cfg.Cache.TTL))

	return cfg, nil
}

func (c *Config) Validate() error {
	v := validator.New()
	return v.Struct(c)
}

// AllowedOrigins returns the exact-match CORS allow-list for the running
// environment. Dev origins are only honored outside production.
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.Cors.ProdOrigins)+len(c.Cors.DevOrigins))
	origins = append(origins, c.Cors.ProdOrigins...)
	if c.Env != "production" {
		origins = append(origins, c.Cors.DevOrigins...)
	}
	return dedupe(origins)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
