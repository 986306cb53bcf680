package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "BASE"

type AppConfig struct {
	LogLevel  string           `mapstructure:"log_level"`
	Allocator *AllocatorConfig `mapstructure:"allocator"`
}

func New() *AppConfig {
	return &AppConfig{
		LogLevel:  "info",
		Allocator: NewAllocatorConfig(),
	}
}

// Load overlays BASE_* environment variables on the defaults returned by New.
func Load(v *viper.Viper) (*AppConfig, error) {
	bindings := map[string]string{
		"log_level":                "LOG_LEVEL",
		"allocator.max_alloc_size": "MAX_ALLOC_SIZE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, envPrefix+"_"+env); err != nil {
			return nil, errors.Wrapf(err, "failed to bind %s", key)
		}
	}

	c := New()
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return c, nil
}

func (c *AppConfig) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	if c.Allocator == nil {
		return errors.New("allocator config is missing")
	}
	return c.Allocator.Validate()
}
