package main

import (
	"time"

	"github.com/dmitrymomot/ssrkit/pkg/config"
	"github.com/dmitrymomot/ssrkit/pkg/environment"
	"github.com/dmitrymomot/ssrkit/pkg/logger"
)

// Config is the server configuration, read from the environment.
type Config struct {
	Env  environment.Environment `env:"APP_ENV" envDefault:"development"`
	Addr string                  `env:"HTTP_ADDR" envDefault:":8080"`

	DefaultLocale string `env:"I18N_DEFAULT_LOCALE" envDefault:"en"`

	RenderTimeout    time.Duration `env:"RENDER_TIMEOUT" envDefault:"10s"`
	RenderAbortGrace time.Duration `env:"RENDER_ABORT_GRACE" envDefault:"1s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// StatsDelay simulates a slow data source below the shell.
	StatsDelay time.Duration `env:"STATS_DELAY" envDefault:"300ms"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Sentry logger.SentryConfig
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) loggerConfig() logger.Config {
	return logger.Config{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
	}
}
