package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries every deploy-time tunable for the service. Values come
// from config.toml overlaid with PLANTRENT_* environment variables.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Billing   BillingConfig
	Swagger   SwaggerConfig
	Telemetry TelemetryConfig
}

// AppConfig identifies the running instance.
type AppConfig struct {
	Name string
	Env  string // development, staging, production
	Port string
}

// DatabaseConfig holds the postgres connection and pool settings.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // minutes
	ConnMaxIdleTime int // minutes
}

// RedisConfig holds Redis connection settings. Redis backs the statement
// mutation lock when enabled; without it the lock is in-process only.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig holds bearer token verification settings. Tokens are issued
// upstream; this service only verifies them.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string // debug, info, warn or error
	Format string // json or console
	Output string // stdout, stderr or a file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	MaxBodySize       int64
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSAllowOrigins  []string
	CORSAllowMethods  []string
	CORSAllowHeaders  []string
	TrustedProxies    []string
}

// BillingConfig holds the statement generation policy
type BillingConfig struct {
	VATRatePercent      float64 // applied VAT percentage, e.g. 8.0
	BoundaryDay         int     // day-of-month the billing period rolls over, 1-28
	RequireConfirmation bool    // generated statements wait for human confirmation
	Currency            string  // ISO 4217, zero-decimal VND by default
}

// SwaggerConfig guards the API documentation endpoint.
type SwaggerConfig struct {
	Enabled     bool
	RequireAuth bool
	AllowedIPs  []string // empty allows every caller
}

// TelemetryConfig wires the OpenTelemetry exporters and the profiler.
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string  // OTLP gRPC target, host:port
	SamplingRatio     float64 // 0.0 to 1.0
	ServiceName       string
	Insecure          bool // plaintext OTLP, development only

	DBTraceEnabled    bool // span per query via otelgorm
	DBLogFullSQL      bool // statement text in spans, never in production
	DBSlowQueryThresh time.Duration

	ProfilingEnabled  bool
	PyroscopeEndpoint string // e.g. http://pyroscope:4040
}

// Load reads config.toml from the working directory or /etc/plantrent,
// overlays PLANTRENT_* environment variables (PLANTRENT_DATABASE_PASSWORD
// overrides database.password, and so on), fills in defaults and validates
// the result. A missing config file is fine; the defaults describe a
// working development setup.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/plantrent")

	// True-by-default booleans must be registered before the read; an
	// unset key and an explicit false are indistinguishable afterwards.
	v.SetDefault("billing.require_confirmation", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("PLANTRENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App:       appSection(v),
		Database:  databaseSection(v),
		Redis:     redisSection(v),
		Auth:      authSection(v),
		Log:       logSection(v),
		HTTP:      httpSection(v),
		Billing:   billingSection(v),
		Swagger:   swaggerSection(v),
		Telemetry: telemetrySection(v),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func appSection(v *viper.Viper) AppConfig {
	return AppConfig{
		Name: stringOr(v, "app.name", "plantrent-backend"),
		Env:  stringOr(v, "app.env", "development"),
		Port: stringOr(v, "app.port", "8080"),
	}
}

func databaseSection(v *viper.Viper) DatabaseConfig {
	return DatabaseConfig{
		Host:            stringOr(v, "database.host", "localhost"),
		Port:            intOr(v, "database.port", 5432),
		User:            stringOr(v, "database.user", "postgres"),
		Password:        v.GetString("database.password"),
		DBName:          stringOr(v, "database.dbname", "plantrent"),
		SSLMode:         stringOr(v, "database.sslmode", "disable"),
		MaxOpenConns:    intOr(v, "database.max_open_conns", 25),
		MaxIdleConns:    intOr(v, "database.max_idle_conns", 5),
		ConnMaxLifetime: intOr(v, "database.conn_max_lifetime", 60),
		ConnMaxIdleTime: intOr(v, "database.conn_max_idle_time", 30),
	}
}

func redisSection(v *viper.Viper) RedisConfig {
	return RedisConfig{
		Enabled:  v.GetBool("redis.enabled"),
		Host:     stringOr(v, "redis.host", "localhost"),
		Port:     intOr(v, "redis.port", 6379),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
}

func authSection(v *viper.Viper) AuthConfig {
	return AuthConfig{
		JWTSecret: v.GetString("auth.jwt_secret"),
		Issuer:    stringOr(v, "auth.issuer", "plantrent-backend"),
	}
}

func logSection(v *viper.Viper) LogConfig {
	return LogConfig{
		Level:  stringOr(v, "log.level", "info"),
		Format: stringOr(v, "log.format", "console"),
		Output: stringOr(v, "log.output", "stdout"),
	}
}

func httpSection(v *viper.Viper) HTTPConfig {
	c := HTTPConfig{
		ReadTimeout:       durationOr(v, "http.read_timeout", 15*time.Second),
		WriteTimeout:      durationOr(v, "http.write_timeout", 15*time.Second),
		IdleTimeout:       durationOr(v, "http.idle_timeout", 60*time.Second),
		MaxHeaderBytes:    intOr(v, "http.max_header_bytes", 1<<20),
		MaxBodySize:       v.GetInt64("http.max_body_size"),
		RateLimitEnabled:  v.GetBool("http.rate_limit_enabled"),
		RateLimitRequests: intOr(v, "http.rate_limit_requests", 100),
		RateLimitWindow:   durationOr(v, "http.rate_limit_window", time.Minute),
		// Cross-origin requests stay blocked until origins are configured
		// explicitly; there is no wildcard fallback.
		CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		CORSAllowMethods: sliceOr(v, "http.cors_allow_methods", []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}),
		CORSAllowHeaders: sliceOr(v, "http.cors_allow_headers", []string{"Content-Type", "Authorization", "X-Request-ID"}),
		TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
	}
	if c.MaxBodySize == 0 {
		c.MaxBodySize = 10 << 20
	}
	return c
}

func billingSection(v *viper.Viper) BillingConfig {
	return BillingConfig{
		VATRatePercent:      float64Or(v, "billing.vat_rate_percent", 8.0),
		BoundaryDay:         intOr(v, "billing.boundary_day", 24),
		RequireConfirmation: v.GetBool("billing.require_confirmation"),
		Currency:            stringOr(v, "billing.currency", "VND"),
	}
}

func swaggerSection(v *viper.Viper) SwaggerConfig {
	return SwaggerConfig{
		Enabled:     v.GetBool("swagger.enabled"),
		RequireAuth: v.GetBool("swagger.require_auth"),
		AllowedIPs:  v.GetStringSlice("swagger.allowed_ips"),
	}
}

func telemetrySection(v *viper.Viper) TelemetryConfig {
	return TelemetryConfig{
		Enabled:           v.GetBool("telemetry.enabled"),
		CollectorEndpoint: stringOr(v, "telemetry.collector_endpoint", "localhost:4317"),
		SamplingRatio:     float64Or(v, "telemetry.sampling_ratio", 1.0),
		ServiceName:       stringOr(v, "telemetry.service_name", "plantrent-backend"),
		Insecure:          v.GetBool("telemetry.insecure"),
		DBTraceEnabled:    v.GetBool("telemetry.db_trace_enabled"),
		DBLogFullSQL:      v.GetBool("telemetry.db_log_full_sql"),
		DBSlowQueryThresh: durationOr(v, "telemetry.db_slow_query_threshold", 200*time.Millisecond),
		ProfilingEnabled:  v.GetBool("telemetry.profiling_enabled"),
		PyroscopeEndpoint: stringOr(v, "telemetry.pyroscope_endpoint", "http://localhost:4040"),
	}
}

// Viper cannot tell an unset key from an explicit zero once file and
// environment are merged, so empty and zero values fall back to the
// built-in default here. Fields where zero or empty is meaningful read
// the viper getters directly.

func stringOr(v *viper.Viper, key, fallback string) string {
	if s := v.GetString(key); s != "" {
		return s
	}
	return fallback
}

func intOr(v *viper.Viper, key string, fallback int) int {
	if n := v.GetInt(key); n != 0 {
		return n
	}
	return fallback
}

func float64Or(v *viper.Viper, key string, fallback float64) float64 {
	if f := v.GetFloat64(key); f != 0 {
		return f
	}
	return fallback
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	if d := v.GetDuration(key); d != 0 {
		return d
	}
	return fallback
}

func sliceOr(v *viper.Viper, key string, fallback []string) []string {
	if s := v.GetStringSlice(key); len(s) > 0 {
		return s
	}
	return fallback
}

func (c *Config) validate() error {
	if err := c.Database.validatePool(); err != nil {
		return err
	}
	if err := c.Billing.validatePolicy(); err != nil {
		return err
	}
	if r := c.Telemetry.SamplingRatio; r < 0.0 || r > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", r)
	}
	if c.App.Env == "production" {
		return c.validateProduction()
	}
	return nil
}

func (d *DatabaseConfig) validatePool() error {
	switch {
	case d.MaxOpenConns <= 0:
		return fmt.Errorf("database.max_open_conns must be positive, got %d", d.MaxOpenConns)
	case d.MaxIdleConns < 0:
		return fmt.Errorf("database.max_idle_conns cannot be negative, got %d", d.MaxIdleConns)
	case d.MaxIdleConns > d.MaxOpenConns:
		return fmt.Errorf("database.max_idle_conns must not exceed database.max_open_conns (%d > %d)",
			d.MaxIdleConns, d.MaxOpenConns)
	}
	return nil
}

func (b *BillingConfig) validatePolicy() error {
	if b.BoundaryDay < 1 || b.BoundaryDay > 28 {
		return fmt.Errorf("billing.boundary_day must be between 1 and 28, got %d", b.BoundaryDay)
	}
	if b.VATRatePercent < 0 || b.VATRatePercent > 100 {
		return fmt.Errorf("billing.vat_rate_percent must be between 0 and 100, got %f", b.VATRatePercent)
	}
	return nil
}

// validateProduction enforces the hardening rules that only apply when
// app.env is production.
func (c *Config) validateProduction() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required in production")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters in production")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("database.password is required in production")
	}
	if c.Database.SSLMode == "disable" {
		return fmt.Errorf("database.sslmode cannot be 'disable' in production")
	}
	for _, origin := range c.HTTP.CORSAllowOrigins {
		if origin == "*" {
			return fmt.Errorf("cors_allow_origins cannot contain '*' in production")
		}
	}
	if c.Swagger.Enabled && !c.Swagger.RequireAuth && len(c.Swagger.AllowedIPs) == 0 {
		return fmt.Errorf("swagger endpoint needs auth or an IP allowlist in production")
	}
	if c.Telemetry.DBLogFullSQL {
		return fmt.Errorf("telemetry.db_log_full_sql leaks statement text into traces, disable it in production")
	}
	return nil
}

// DSN renders the postgres connection URL. Credentials are URL-escaped so
// passwords with reserved characters survive the round trip.
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}
