package config

import (
	"fmt"

	"github.com/hogwarts-cloud/sandboxctl/internal/writer"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultInput    = "setup.properties"
	DefaultOutput   = "./sandbox.cfg"
	DefaultLogLevel = "info"
)

type Config struct {
	Input    string        `mapstructure:"input"`
	Output   string        `mapstructure:"output"`
	Format   writer.Format `mapstructure:"format"`
	LogLevel logrus.Level  `mapstructure:"log-level"`
}

func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("input", "i", DefaultInput, "file containing environment setup information")
	flags.StringP("output", "o", DefaultOutput, "path where environment configuration will be generated, - for stdout")
	flags.StringP("format", "f", "", "output format: json or yaml (default: inferred from output path)")
	flags.String("log-level", DefaultLogLevel, "log level: debug, info, warn or error")
}

// Load reads the command line flags into a Config. Flags left unset keep
// their defaults.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
		))); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Format == writer.FormatAuto {
		cfg.Format = writer.FormatFromPath(cfg.Output)
	}

	return cfg, nil
}
