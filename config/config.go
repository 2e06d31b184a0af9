// Package config loads run configuration for the tspga command.
//
// Values are layered by viper, highest precedence first:
//
//	positional arguments  <inputfile> <popsize> <generations> <mutationchance> <seed>
//	command-line flags    --log-file, --log-level, --pretty
//	environment           TSPGA_INPUT, TSPGA_POP_SIZE, TSPGA_GENERATIONS, ...
//	config file           --config path (any format viper understands)
//	defaults
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tspga/ga"
	"github.com/katalvlaran/tspga/report"
)

// Usage is the one-line synopsis printed on usage errors.
const Usage = "usage: tspga <inputfile> <popsize> <generations> <mutationchance> <seed> [flags]"

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TSPGA"

// ErrUsage wraps every missing or malformed parameter.
var ErrUsage = errors.New("config: invalid usage")

// Keys, in positional order first.
const (
	keyInput          = "INPUT"
	keyPopSize        = "POP_SIZE"
	keyGenerations    = "GENERATIONS"
	keyMutationChance = "MUTATION_CHANCE"
	keySeed           = "SEED"
	keyLogFile        = "LOG_FILE"
	keyLogLevel       = "LOG_LEVEL"
	keyPretty         = "PRETTY"
)

var positional = []string{keyInput, keyPopSize, keyGenerations, keyMutationChance, keySeed}

// Config stores the configuration of one run.
type Config struct {
	Input          string `mapstructure:"INPUT"`
	PopSize        int    `mapstructure:"POP_SIZE"`
	Generations    int    `mapstructure:"GENERATIONS"`
	MutationChance int    `mapstructure:"MUTATION_CHANCE"` // percent, 0..100
	Seed           int64  `mapstructure:"SEED"`
	LogFile        string `mapstructure:"LOG_FILE"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	Pretty         bool   `mapstructure:"PRETTY"`
}

// NewFlagSet returns the flag set understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "optional config file (yaml, json, toml, env)")
	fs.String("log-file", report.DefaultPath, "path of the generation log")
	fs.String("log-level", "info", "zerolog level: trace, debug, info, warn, error")
	fs.Bool("pretty", false, "human-friendly console logging")
	return fs
}

// Load parses args with fs and layers the result over environment, config
// file and defaults. fs should come from NewFlagSet. Positional arguments are
// all-or-nothing: either all five are given or none.
func Load(fs *pflag.FlagSet, args []string) (config Config, err error) {
	if err = fs.Parse(args); err != nil {
		return config, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	v := viper.New()
	v.SetDefault(keyInput, "")
	v.SetDefault(keyPopSize, 0)
	v.SetDefault(keyGenerations, 0)
	v.SetDefault(keyMutationChance, 0)
	v.SetDefault(keySeed, 0)
	v.SetDefault(keyLogFile, report.DefaultPath)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyPretty, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil {
			return config, fmt.Errorf("%w: config file: %w", ErrUsage, err)
		}
	}

	for key, flag := range map[string]string{
		keyLogFile:  "log-file",
		keyLogLevel: "log-level",
		keyPretty:   "pretty",
	} {
		if err = v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return config, err
		}
	}

	if err = setPositional(v, fs.Args()); err != nil {
		return config, err
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return config, config.Validate()
}

// setPositional parses the five positional arguments and stores them in v.
func setPositional(v *viper.Viper, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) != len(positional) {
		return fmt.Errorf("%w: expected %d positional arguments, got %d", ErrUsage, len(positional), len(args))
	}

	v.Set(keyInput, args[0])
	for i, key := range positional[1:] {
		n, err := strconv.ParseInt(args[i+1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", ErrUsage, key, args[i+1])
		}
		v.Set(key, n)
	}

	return nil
}

// Validate checks that every required value is present and in range.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: missing input file", ErrUsage)
	case c.PopSize < 3:
		return fmt.Errorf("%w: popsize must be at least 3, got %d", ErrUsage, c.PopSize)
	case c.Generations < 0:
		return fmt.Errorf("%w: generations must be non-negative, got %d", ErrUsage, c.Generations)
	case c.MutationChance < 0 || c.MutationChance > 100:
		return fmt.Errorf("%w: mutationchance must be within 0..100, got %d", ErrUsage, c.MutationChance)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return lvl, nil
}

// Options maps the run parameters onto ga options.
func (c Config) Options() []ga.Option {
	return []ga.Option{
		ga.WithPopSize(c.PopSize),
		ga.WithGenerations(c.Generations),
		ga.WithMutationPercent(c.MutationChance),
		ga.WithSeed(c.Seed),
	}
}
