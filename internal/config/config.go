// Package config holds process-level configuration: everything
// duty-scheduler needs to run that is not scheduling data. Scheduling
// data (the team roster, pins, carry-over) lives in a YAML document
// loaded separately by LoadDocument (document.go).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-driven process configuration. It never
// carries scheduling data — only the knobs that vary between a
// developer's laptop and a production run.
type Config struct {
	// Logging
	LogLevel  string `env:"DUTY_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DUTY_LOG_FORMAT" envDefault:"json"`

	// Holiday provider
	HolidaysBaseURL string `env:"DUTY_HOLIDAYS_URL" envDefault:"https://isdayoff.ru/api/getdata"`
	HolidaysTimeout string `env:"DUTY_HOLIDAYS_TIMEOUT" envDefault:"5s"`

	// HTTP serve mode
	Host        string `env:"DUTY_HOST" envDefault:"0.0.0.0"`
	Port        int    `env:"DUTY_PORT" envDefault:"8080"`
	MetricsPath string `env:"DUTY_METRICS_PATH" envDefault:"/metrics"`

	CORSAllowedOrigins []string `env:"DUTY_CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// LoadEnv reads process configuration from environment variables.
func LoadEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config from env: %w", err)
	}
	return cfg, nil
}

// ListenAddr returns the address the serve-mode HTTP server should
// listen on.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
