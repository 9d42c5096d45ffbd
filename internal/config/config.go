package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	HTTPAddr  string `envconfig:"HTTP_ADDR" default:":8080"`
	DBPath    string `envconfig:"DB_PATH" default:"./data/safemed.db"`
	DefaultTZ string `envconfig:"DEFAULT_TZ" default:"Asia/Ho_Chi_Minh"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error

	// ServiceAccountJSON takes precedence over CredentialsFile when
	// both are set (hosted deployments pass the JSON inline).
	ServiceAccountJSON string `envconfig:"FIREBASE_SERVICE_ACCOUNT"`
	CredentialsFile    string `envconfig:"FIREBASE_CREDENTIALS" default:"./service-account.json"`

	SweepConcurrency int           `envconfig:"SWEEP_CONCURRENCY" default:"8"`
	SendTimeout      time.Duration `envconfig:"SEND_TIMEOUT" default:"10s"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
