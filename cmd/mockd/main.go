// Command mockd prints mock data from the command line.
//
// Usage:
//
//	mockd [-n count] [-json] [-min v] [-max v] <category> <field>
//
// Flags must come before the category and field.
//
// Examples:
//
//	mockd address street
//	mockd -n 5 company company
//	mockd -json address info
//	mockd -min 20 -max 50 address latitude_in_range
//
// Settings are read from the environment (or a .env file):
//
//	MOCKD_DATA_DIR   directory with replacement table files
//	MOCKD_LOG_LEVEL  debug, info, warn or error (default info)
//	MOCKD_ENV        development, staging or production
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/dmitrymomot/mockd/pkg/config"
	"github.com/dmitrymomot/mockd/pkg/dataset"
	"github.com/dmitrymomot/mockd/pkg/environment"
	"github.com/dmitrymomot/mockd/pkg/logger"
	"github.com/dmitrymomot/mockd/pkg/random"
)

// Config holds the mockd settings.
type Config struct {
	DataDir  string `env:"MOCKD_DATA_DIR"`
	LogLevel string `env:"MOCKD_LOG_LEVEL" envDefault:"info"`
	Env      string `env:"MOCKD_ENV" envDefault:"development"`
}

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "mockd: %v\n", err)
		return exitError
	}

	log := newLogger(cfg, stderr)
	logger.SetAsDefault(log)

	fs := flag.NewFlagSet("mockd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	count := fs.Int("n", 1, "number of values to generate")
	asJSON := fs.Bool("json", false, "print values as JSON, one per line")
	var b bounds
	// Unset bounds stay NaN, which the range check rejects, so the
	// *_in_range fields fall back to the whole domain.
	fs.Float64Var(&b.min, "min", math.NaN(), "lower bound for *_in_range fields")
	fs.Float64Var(&b.max, "max", math.NaN(), "upper bound for *_in_range fields")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 2 || *count < 1 {
		fs.Usage()
		return exitUsage
	}

	ds, err := loadDataset(cfg, log)
	if err != nil {
		log.Error("failed to load dataset", logger.Error(err))
		return exitError
	}

	category, field := fs.Arg(0), fs.Arg(1)
	gen, err := lookup(newCatalog(ds, random.Default(), b), category, field)
	if err != nil {
		fmt.Fprintf(stderr, "mockd: %v\n", err)
		fs.Usage()
		return exitUsage
	}

	log.Debug("generating values",
		logger.Category(category),
		logger.Field(field),
		logger.Count(*count),
	)

	enc := json.NewEncoder(stdout)
	for range *count {
		v := gen()
		if *asJSON {
			if err := enc.Encode(v); err != nil {
				log.Error("failed to encode value", logger.Error(err))
				return exitError
			}
			continue
		}
		fmt.Fprintln(stdout, v)
	}
	return exitOK
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), "mockd"),
		logger.WithOutput(w),
	}
	if level, ok := logger.ParseLevel(cfg.LogLevel); ok {
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...)
}

func loadDataset(cfg Config, log *slog.Logger) (*dataset.Dataset, error) {
	if cfg.DataDir == "" {
		return dataset.Default(), nil
	}
	return dataset.LoadDir(cfg.DataDir, dataset.WithLogger(log))
}

func lookup(c catalog, category, field string) (func() any, error) {
	fields, ok := c[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", errUsage, category)
	}
	gen, ok := fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: unknown %s field %q", errUsage, category, field)
	}
	return gen, nil
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "usage: mockd [-n count] [-json] [-min v] [-max v] <category> <field>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags must come before <category> <field>.")
	fmt.Fprintln(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)

	c := newCatalog(dataset.Default(), random.Default(), bounds{})
	for _, category := range sortedKeys(c) {
		fmt.Fprintf(w, "  %-8s %s\n", category, strings.Join(sortedKeys(c[category]), ", "))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
