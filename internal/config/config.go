package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverMemory   = "memory"
)

// Trace exporters accepted by OTEL_TRACES_EXPORTER.
const (
	TracesExporterNone   = "none"
	TracesExporterStdout = "stdout"
	TracesExporterOTLP   = "otlp"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Port int `env:"PORT" envDefault:"8000"`

	// Storage. An empty DatabaseName leaves the API running without a store.
	DatabaseURL        string `env:"DATABASE_URL"` // DynamoDB endpoint override, e.g. http://localhost:8001
	DatabaseName       string `env:"DATABASE_NAME"`
	StorageDriver      string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
	DatabaseAutoCreate bool   `env:"DATABASE_AUTO_CREATE" envDefault:"false"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`

	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Tracing
	TracesExporter string `env:"OTEL_TRACES_EXPORTER" envDefault:"none"`
	OTLPEndpoint   string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"aurora-motors-api"`
}

// ServerAddr returns the listen address.
func (c Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// StorageEnabled reports whether a document store should be opened.
func (c Config) StorageEnabled() bool {
	return c.DatabaseName != ""
}

// AllowAllOrigins is true when CORS_ALLOWED_ORIGINS is "*".
func (c Config) AllowAllOrigins() bool {
	return len(c.CORSAllowedOrigins) == 0 || (len(c.CORSAllowedOrigins) == 1 && c.CORSAllowedOrigins[0] == "*")
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case StorageDriverDynamoDB, StorageDriverMemory:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverDynamoDB, StorageDriverMemory, cfg.StorageDriver)
	}

	cfg.TracesExporter = strings.ToLower(strings.TrimSpace(cfg.TracesExporter))
	switch cfg.TracesExporter {
	case TracesExporterNone, TracesExporterStdout, TracesExporterOTLP:
	default:
		return nil, fmt.Errorf("OTEL_TRACES_EXPORTER must be none, stdout or otlp, got %q", cfg.TracesExporter)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}

	return cfg, nil
}
