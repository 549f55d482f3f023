package config

import (
	"errors"
	"fmt"

	"cart-manager/store"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// DefaultFile is where the cart is saved when --file isn't given.
const DefaultFile = "Newcart.dat"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	File     string
	Store    string
	LogLevel zapcore.Level
}

// Load parses command-line arguments (without the program name). With no
// arguments the defaults reproduce the fixed file name behaviour.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("cart", pflag.ContinueOnError)
	file := fs.String("file", DefaultFile, "path of the saved cart")
	driver := fs.String("store", store.DriverFile, "storage backend: file or sqlite")
	level := fs.String("log-level", "warn", "log level written to stderr (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalid, fs.Args())
	}

	cfg := Config{File: *file, Store: *driver}
	if cfg.File == "" {
		return Config{}, fmt.Errorf("%w: --file must not be empty", ErrInvalid)
	}
	if cfg.Store != store.DriverFile && cfg.Store != store.DriverSQLite {
		return Config{}, fmt.Errorf("%w: unknown store %q", ErrInvalid, cfg.Store)
	}
	lvl, err := zapcore.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.LogLevel = lvl
	return cfg, nil
}
