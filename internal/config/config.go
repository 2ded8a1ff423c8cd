package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "NORQUIZ"

var ErrMissingBankPath = errors.New("question bank path is empty")

// Config holds application configuration.
type Config struct {
	Env      string `mapstructure:"env"`      // local, production
	BankPath string `mapstructure:"bank"`     // CSV or JSON question bank
	Category string `mapstructure:"category"` // initial category filter
	Seed     uint64 `mapstructure:"seed"`     // 0 = random
	LogFile  string `mapstructure:"log_file"` // empty = default state dir
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Env:      "local",
		BankPath: "data/questions.csv",
		Category: "Todas",
	}
}

// Load builds a Config from, in increasing priority: defaults, an optional
// config.yaml, a .env file, NORQUIZ_* environment variables and the flags
// in flags that were explicitly set.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "norquiz"))
	}

	def := DefaultConfig()
	v.SetDefault("env", def.Env)
	v.SetDefault("bank", def.BankPath)
	v.SetDefault("category", def.Category)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("log_file", def.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindFlags maps flag names (dashes) onto config keys (underscores).
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

// Validate checks required values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BankPath) == "" {
		return ErrMissingBankPath
	}
	return nil
}

// IsProduction reports whether the production environment is selected.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
