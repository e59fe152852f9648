package config

import (
	"fmt"
	"strings"

	"github.com/future-architect/ngram"
	"github.com/spf13/viper"
)

const EnvPrefix = "NGRAM"

// Config holds the tokenizer settings shared by the binaries.
// Values come from defaults, an optional YAML file and NGRAM_* environment variables.
type Config struct {
	Size      int    `mapstructure:"size"`
	Mode      string `mapstructure:"mode"`
	Normalize bool   `mapstructure:"normalize"`
	Workers   int    `mapstructure:"workers"`
}

// LoadConfig reads configuration. configPath may be empty; a missing
// config.yaml in the working directory is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("ngram")
		v.SetConfigType("yaml")
	}

	v.SetDefault("size", 4)
	v.SetDefault("mode", ngram.ModeCharacter)
	v.SetDefault("normalize", false)
	v.SetDefault("workers", 1)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}

// Validate reports settings no tokenizer can be built from.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be at least 1, got %d", ngram.ErrInvalidConfiguration, c.Size)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ngram.ErrInvalidConfiguration, c.Workers)
	}
	return nil
}

// Tokenizer builds the tokenizer described by c.
func (c Config) Tokenizer() (*ngram.Tokenizer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return ngram.NewTokenizer(c.Size, ngram.Option{
		Mode:      c.Mode,
		Normalize: c.Normalize,
	})
}
