package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	QR        QRConfig
	Gym       GymConfig
	RateLimit RateLimitConfig
	Worker    WorkerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	CORSOrigins           string
	// ProxyHeader names the header carrying the client address when the
	// service runs behind a reverse proxy, e.g. X-Forwarded-For.
	ProxyHeader    string
	TrustedProxies string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	Seed           bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
	// PlaintextPasswords keeps the legacy behaviour of storing and comparing
	// passwords as-is. Turning it off switches to bcrypt.
	PlaintextPasswords   bool
	BcryptCost           int
	DefaultAdminEmail    string
	DefaultAdminPassword string
}

// QR token stores.
const (
	QRStoreMemory = "memory"
	QRStoreRedis  = "redis"
)

// QRConfig configures the check-in token store.
type QRConfig struct {
	Store            string
	TokenTTLSeconds  int
	RedisPrefix      string
	RetentionSeconds int
}

// GymConfig holds business constants shown on the dashboard.
type GymConfig struct {
	Capacity                 int
	MembershipSoonDays       int
	MaintenanceSoonDays      int
	DefaultMaintenanceMonths int
	Timezone                 string
}

// RateLimitConfig throttles the public auth endpoints per client IP.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// WorkerConfig controls background jobs.
type WorkerConfig struct {
	GaugeIntervalSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "gym-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "4000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			CORSOrigins:           getEnv("CORS_ALLOW_ORIGINS", "*"),
			ProxyHeader:           os.Getenv("APP_PROXY_HEADER"),
			TrustedProxies:        os.Getenv("APP_TRUSTED_PROXIES"),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			Seed:           getEnvAsBool("POSTGRES_SEED", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:            getEnv("AUTH_JWT_SECRET", "dev_secret"),
			TokenTTLMinutes:      getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 480),
			PlaintextPasswords:   getEnvAsBool("AUTH_PLAINTEXT_PASSWORDS", true),
			BcryptCost:           getEnvAsInt("AUTH_BCRYPT_COST", 12),
			DefaultAdminEmail:    getEnv("DEFAULT_ADMIN_EMAIL", "admin@admin.com"),
			DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "123456"),
		},
		QR: QRConfig{
			Store:            strings.ToLower(getEnv("QR_TOKEN_STORE", QRStoreMemory)),
			TokenTTLSeconds:  getEnvAsInt("QR_TOKEN_TTL_SECONDS", 60),
			RedisPrefix:      getEnv("QR_REDIS_PREFIX", "qr:"),
			RetentionSeconds: getEnvAsInt("QR_REDIS_RETENTION_SECONDS", 300),
		},
		Gym: GymConfig{
			Capacity:                 getEnvAsInt("GYM_CAPACITY", 100),
			MembershipSoonDays:       getEnvAsInt("GYM_MEMBERSHIP_SOON_DAYS", 10),
			MaintenanceSoonDays:      getEnvAsInt("GYM_MAINTENANCE_SOON_DAYS", 7),
			DefaultMaintenanceMonths: getEnvAsInt("GYM_DEFAULT_MAINTENANCE_MONTHS", 3),
			Timezone:                 getEnv("GYM_TIMEZONE", "UTC"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: rps,
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		Worker: WorkerConfig{
			GaugeIntervalSeconds: getEnvAsInt("WORKER_GAUGE_INTERVAL_SECONDS", 60),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	switch c.QR.Store {
	case QRStoreMemory:
	case QRStoreRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("QR_TOKEN_STORE=redis requires REDIS_ADDR"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown QR_TOKEN_STORE %q", c.QR.Store))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("AUTH_JWT_SECRET must not be empty"))
	}
	if c.QR.TokenTTLSeconds <= 0 {
		errs = append(errs, errors.New("QR_TOKEN_TTL_SECONDS must be positive"))
	}
	if _, err := time.LoadLocation(c.Gym.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid GYM_TIMEZONE: %w", err))
	}
	return errors.Join(errs...)
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// TrustedProxyList splits TrustedProxies on commas, dropping blanks.
func (a AppConfig) TrustedProxyList() []string {
	var out []string
	for _, p := range strings.Split(a.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TokenTTL returns the admin bearer token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// TokenTTL returns the QR token lifetime.
func (q QRConfig) TokenTTL() time.Duration {
	return time.Duration(q.TokenTTLSeconds) * time.Second
}

// Retention returns how long Redis keeps expired QR tokens around.
func (q QRConfig) Retention() time.Duration {
	return time.Duration(q.RetentionSeconds) * time.Second
}

// Location returns the gym's time zone; calendar dates are read in it.
func (g GymConfig) Location() *time.Location {
	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GaugeInterval returns the member gauge refresh period.
func (w WorkerConfig) GaugeInterval() time.Duration {
	if w.GaugeIntervalSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(w.GaugeIntervalSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
