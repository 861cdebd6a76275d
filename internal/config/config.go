package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and cache
// connections, the realtor directory components and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"realtors" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the connection used by the redis cache driver
	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// DialTimeout bounds establishing new connections
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
	} `yaml:"redis"`

	Cache struct {
		// Driver selects the cache backend: redis or memory
		Driver string `env:"CACHE_DRIVER" env-default:"redis" yaml:"driver"`
		// KeyPrefix namespaces every slot stored by this service
		KeyPrefix string `env:"CACHE_KEY_PREFIX" env-default:"realtors:" yaml:"keyPrefix"`
	} `yaml:"cache"`

	// JWT configures verification (and, for the jwt command, signing) of bearer tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// Issuer is set as iss on minted tokens and required on verified ones when not empty
		Issuer string `env:"JWT_ISSUER" yaml:"issuer"`
	} `yaml:"jwt"`

	Auth struct {
		// LoginURL is where unauthenticated browser clients are redirected
		LoginURL string `env:"AUTH_LOGIN_URL" env-default:"/login" yaml:"loginURL"`
	} `yaml:"auth"`

	// Policy maps identity provider roles onto directory privileges
	Policy struct {
		ElevatedRoles []string `env:"POLICY_ELEVATED_ROLES" env-default:"elevated" env-separator:"," yaml:"elevatedRoles"`
		AdminRoles    []string `env:"POLICY_ADMIN_ROLES"    env-default:"admin"    env-separator:"," yaml:"adminRoles"`
	} `yaml:"policy"`

	Directory struct {
		// InvalidateOnRead invalidates the highlights slot on every listing read
		InvalidateOnRead bool `env:"DIRECTORY_INVALIDATE_ON_READ" env-default:"true" yaml:"invalidateOnRead"`
	} `yaml:"directory"`

	Highlights struct {
		// Size is the number of newest profiles included in the highlights view
		Size int `env:"HIGHLIGHTS_SIZE" env-default:"6" yaml:"size"`
		// TTL bounds how long a computed view may be served from the cache
		TTL time.Duration `env:"HIGHLIGHTS_TTL" env-default:"10m" yaml:"ttl"`
		// RefreshCoalescePeriod is the window within which refresh jobs are deduplicated
		RefreshCoalescePeriod time.Duration `env:"HIGHLIGHTS_REFRESH_COALESCE_PERIOD" env-default:"5s" yaml:"refreshCoalescePeriod"` //nolint: lll
		// MaxAttempts is the number of attempts for a refresh job
		MaxAttempts int `env:"HIGHLIGHTS_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
	} `yaml:"highlights"`

	Worker struct {
		// Enabled starts the background job worker alongside the HTTP server
		Enabled bool `env:"WORKER_ENABLED" env-default:"true" yaml:"enabled"`
		// MaxWorkers is the concurrency of the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	Telemetry struct {
		// ServiceName is reported as the otel service.name resource attribute
		ServiceName string `env:"TELEMETRY_SERVICE_NAME" env-default:"realtors" yaml:"serviceName"`
		// StdoutTraces exports spans to stdout, which is handy during development
		StdoutTraces bool `env:"TELEMETRY_STDOUT_TRACES" env-default:"false" yaml:"stdoutTraces"`
		// OTLPEndpoint is the host:port of an OTLP/HTTP collector; spans are not shipped when empty
		OTLPEndpoint string            `env:"TELEMETRY_OTLP_ENDPOINT" yaml:"otlpEndpoint"`
		OTLPInsecure bool              `env:"TELEMETRY_OTLP_INSECURE" env-default:"false" yaml:"otlpInsecure"`
		OTLPHeaders  map[string]string `env:"TELEMETRY_OTLP_HEADERS" yaml:"otlpHeaders"`
	} `yaml:"telemetry"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
