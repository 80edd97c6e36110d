package checkkit

import (
	"github.com/dmitrymomot/checkkit/pkg/config"
)

// Config carries environment-driven run defaults, so deployments can toggle
// engine behavior without a code change. Values map to run options through
// Options and are overridable per call.
type Config struct {
	// InferShared enables naming-convention inference for parameters that
	// match no column directly.
	InferShared bool `env:"CHECKKIT_INFER_SHARED" envDefault:"false"`

	// GroupLabel tags every summary and error-log row, distinguishing runs
	// when several datasets feed one report.
	GroupLabel string `env:"CHECKKIT_GROUP_LABEL"`
}

// FromEnv loads engine defaults from the process environment, reading a
// .env file first when one exists.
func FromEnv() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the configuration into run options, suitable for
// New(set, WithDefaults(cfg.Options()...)).
func (c Config) Options() []RunOption {
	opts := []RunOption{WithInferShared(c.InferShared)}
	if c.GroupLabel != "" {
		opts = append(opts, WithGroupLabel(c.GroupLabel))
	}
	return opts
}
