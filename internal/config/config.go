// Package config loads the settings of the moneycalc command from flags,
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/exactmoney/money"
)

// EnvPrefix is prepended to every key looked up in the environment,
// e.g. MONEYCALC_ROUNDING.
const EnvPrefix = "MONEYCALC"

// Keys understood by Load. Flags with the same names take precedence over
// the environment.
const (
	KeyCalculator = "calculator"
	KeyRounding   = "rounding"
	KeyLogLevel   = "log-level"
	KeyEnvFile    = "env-file"
)

// CalculatorAuto selects the calculator bound by the default registry.
const CalculatorAuto = "auto"

// Config holds the settings of a single invocation.
type Config struct {
	Calculator string
	Rounding   money.RoundingMode
	LogLevel   slog.Level
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Calculator: CalculatorAuto,
		Rounding:   money.HalfUp,
		LogLevel:   slog.LevelWarn,
	}
}

// RegisterFlags adds the configuration flags to the flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	def := Default()
	flags.String(KeyCalculator, def.Calculator, "arithmetic backend: auto, decimal, big or fixed")
	flags.String(KeyRounding, def.Rounding.String(), "rounding mode: half-up, half-down, half-even, half-odd, up or down")
	flags.String(KeyLogLevel, def.LogLevel.String(), "log level: debug, info, warn or error")
	flags.String(KeyEnvFile, ".env", "optional file with environment variables")
}

// Load reads the configuration.
// Values come from, in order of precedence, the flags that were set,
// environment variables, the env file and the defaults.
// A missing env file is not an error.
func Load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	def := Default()
	v.SetDefault(KeyCalculator, def.Calculator)
	v.SetDefault(KeyRounding, def.Rounding.String())
	v.SetDefault(KeyLogLevel, def.LogLevel.String())
	v.SetDefault(KeyEnvFile, ".env")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	// Variables already present in the environment are not overwritten.
	if file := v.GetString(KeyEnvFile); file != "" {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	cfg := &Config{}

	cfg.Calculator = strings.ToLower(strings.TrimSpace(v.GetString(KeyCalculator)))
	if cfg.Calculator == "" {
		cfg.Calculator = CalculatorAuto
	}
	if cfg.Calculator != CalculatorAuto {
		if _, err := money.CalculatorByName(cfg.Calculator); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", KeyCalculator, err)
		}
	}

	mode, err := money.ParseRoundingMode(v.GetString(KeyRounding))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyRounding, err)
	}
	cfg.Rounding = mode

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	return cfg, nil
}

// Calc returns the configured calculator.
func (c *Config) Calc() (money.Calculator, error) {
	if c.Calculator == "" || c.Calculator == CalculatorAuto {
		return money.DefaultCalculator()
	}
	return money.CalculatorByName(c.Calculator)
}
