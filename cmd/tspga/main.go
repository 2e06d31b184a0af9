// Command tspga evolves a short closed tour over the locations listed in a
// "name,latitude,longitude" file and writes a per-generation log.
//
// Usage:
//
//	tspga <inputfile> <popsize> <generations> <mutationchance> <seed> [flags]
//
// Flags:
//
//	--log-file   path of the generation log (default log.txt)
//	--log-level  zerolog level (default info)
//	--pretty     console-formatted logs on stderr
//	--config     optional config file; see package config for the keys
//
// Exit codes: 0 success, 1 I/O or run failure, 2 usage error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/tspga/config"
	"github.com/katalvlaran/tspga/ga"
	"github.com/katalvlaran/tspga/geo"
	"github.com/katalvlaran/tspga/report"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := config.NewFlagSet("tspga")
	fs.SetOutput(stderr)

	cfg, err := config.Load(fs, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, config.Usage)
		fs.PrintDefaults()
		return exitUsage
	}

	lvl, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logger := zerolog.New(stderr).Level(lvl).With().Timestamp().Logger()
	if cfg.Pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: stderr})
	}
	log.Logger = logger

	locs, err := geo.LoadFile(cfg.Input)
	if err != nil {
		log.Error().Err(err).Str("input", cfg.Input).Msg("cannot load locations")
		return exitFail
	}
	log.Debug().Int("locations", len(locs)).Str("input", cfg.Input).Msg("locations loaded")

	opts := cfg.Options()
	if err = ga.Validate(locs, opts...); err != nil {
		log.Error().Err(err).Int("locations", len(locs)).Msg("evolution rejected")
		return exitFail
	}

	w, err := report.Create(cfg.LogFile)
	if err != nil {
		log.Error().Err(err).Str("log_file", cfg.LogFile).Msg("cannot create run log")
		return exitFail
	}

	opts = append(opts, ga.WithObserver(w), ga.WithLogger(logger))
	res, runErr := ga.Run(locs, opts...)
	if err = w.Close(); err != nil {
		log.Error().Err(err).Str("log_file", cfg.LogFile).Msg("cannot write run log")
		return exitFail
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("evolution failed")
		return exitFail
	}

	log.Info().
		Str("generations", humanize.Comma(int64(cfg.Generations))).
		Str("distance_miles", humanize.CommafWithDigits(res.Distance, 2)).
		Strs("tour", res.Names).
		Str("log_file", cfg.LogFile).
		Msg("solution found")

	return exitOK
}
