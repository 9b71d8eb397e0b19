package insist

import (
	"context"
	"time"

	"github.com/redfin/insist/pkg/env"
	"github.com/redfin/insist/pkg/errorkit"
	"github.com/redfin/insist/pkg/logger"
	"github.com/redfin/insist/pkg/must"
	"github.com/redfin/insist/pkg/patience"
	"github.com/redfin/insist/pkg/validate"
)

// Config holds the process wide defaults of the evaluators.
type Config struct {
	// PollInterval is the delay between two attempts.
	PollInterval time.Duration `env:"INSIST_POLL_INTERVAL" default:"500ms"`
	// DefaultTimeout is the time budget when none is given.
	DefaultTimeout time.Duration `env:"INSIST_DEFAULT_TIMEOUT" default:"0s"`
	// DefaultRetries is the count budget when none is given.
	DefaultRetries int `env:"INSIST_DEFAULT_RETRIES" default:"0"`
}

const ErrInvalidConfig errorkit.Error = "invalid insist configuration"

func (c Config) Validate() error {
	if c.PollInterval < 0 {
		return ErrInvalidConfig.F("negative poll interval: %s", c.PollInterval)
	}
	if c.DefaultTimeout < 0 {
		return ErrInvalidConfig.F("negative default timeout: %s", c.DefaultTimeout)
	}
	if c.DefaultRetries < 0 {
		return ErrInvalidConfig.F("negative default retries: %d", c.DefaultRetries)
	}
	return nil
}

// Wait is the time budget poller configured by c.
func (c Config) Wait() patience.Wait {
	return patience.Wait{
		Options: c.options(),
		Timeout: c.DefaultTimeout,
	}
}

// Retry is the count budget poller configured by c.
func (c Config) Retry() patience.Retry {
	return patience.Retry{
		Options: c.options(),
		Retries: c.DefaultRetries,
	}
}

func (c Config) options() patience.Options {
	return patience.Options{Backoff: patience.FixedDelay{Delay: c.PollInterval}}
}

// LoadConfig reads the Config from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	if err := validate.Value(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// MustLoadConfig is LoadConfig which panics on an invalid environment.
func MustLoadConfig() Config {
	return must.Must(LoadConfig())
}

var fallbackConfig = Config{PollInterval: patience.DefaultDelay}

var defaultConfig = loadDefaultConfig()

func loadDefaultConfig() Config {
	c, err := LoadConfig()
	if err != nil {
		logger.Warn(context.Background(), "insist configuration is invalid, using the defaults",
			logger.ErrField(err))
		return fallbackConfig
	}
	return c
}

// DefaultConfig is the Config loaded from the environment at start up.
func DefaultConfig() Config { return defaultConfig }

// DefaultWait is the time budget poller used by Factory.Within.
func DefaultWait() patience.Wait { return defaultConfig.Wait() }

// DefaultRetry is the count budget poller used by Factory.WithinRetries.
func DefaultRetry() patience.Retry { return defaultConfig.Retry() }
