// Package config loads runtime settings from the environment, after merging
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/erazemk/garagesale/internal/catalog"
	"github.com/erazemk/garagesale/internal/i18n"
)

// Environment variable names.
const (
	EnvLocale           = "GARAGESALE_LOCALE"
	EnvCurrency         = "GARAGESALE_CURRENCY"
	EnvSaleStart        = "SALE_START"
	EnvSaleEnd          = "SALE_END"
	EnvSeedWithVariants = "SEED_WITH_VARIANTS"
	EnvSeedWithSharp    = "SEED_WITH_SHARP"
	EnvSeedWorkers      = "SEED_WORKERS"
)

// DefaultCurrency is used when GARAGESALE_CURRENCY is unset.
const DefaultCurrency = "USD"

// Config holds the settings shared by the seed, browse and serve commands.
// The sale window is kept raw and only parsed by the commands that need it.
type Config struct {
	Locale       string
	Currency     string
	SaleStart    string
	SaleEnd      string
	WithVariants bool
	Workers      int
}

// Default returns the configuration used when nothing is set: the default
// locale, US dollars and no sale window.
func Default() Config {
	return Config{
		Locale:   i18n.DefaultLocale,
		Currency: DefaultCurrency,
		Workers:  4,
	}
}

// OpenSale is the sale window used when neither bound is set. It is always open.
func OpenSale() catalog.SaleWindow {
	return catalog.SaleWindow{
		Start: time.Time{},
		End:   time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
	}
}

// SaleWindow parses SALE_START and SALE_END. A missing bound keeps the
// corresponding bound of OpenSale.
func (c Config) SaleWindow() (catalog.SaleWindow, error) {
	w := OpenSale()
	if c.SaleStart != "" {
		t, err := time.Parse(time.RFC3339, c.SaleStart)
		if err != nil {
			return w, fmt.Errorf("parsing %s: %w", EnvSaleStart, err)
		}
		w.Start = t
	}
	if c.SaleEnd != "" {
		t, err := time.Parse(time.RFC3339, c.SaleEnd)
		if err != nil {
			return w, fmt.Errorf("parsing %s: %w", EnvSaleEnd, err)
		}
		w.End = t
	}
	if w.End.Before(w.Start) {
		return w, fmt.Errorf("%s is before %s", EnvSaleEnd, EnvSaleStart)
	}
	return w, nil
}

// Load reads .env files (missing files are ignored) and then the environment.
func Load(envFiles ...string) (Config, error) {
	// Variables already set in the environment take precedence over .env.
	_ = godotenv.Load(envFiles...)
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, starting from Default.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvLocale)); v != "" {
		cfg.Locale = v
	}
	if v := strings.TrimSpace(getenv(EnvCurrency)); v != "" {
		cfg.Currency = strings.ToUpper(v)
	}

	cfg.SaleStart = strings.TrimSpace(getenv(EnvSaleStart))
	cfg.SaleEnd = strings.TrimSpace(getenv(EnvSaleEnd))

	cfg.WithVariants = getenv(EnvSeedWithVariants) == "1" || getenv(EnvSeedWithSharp) == "1"

	if v := strings.TrimSpace(getenv(EnvSeedWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid %s %q: must be a positive integer", EnvSeedWorkers, v)
		}
		cfg.Workers = n
	}

	return cfg, nil
}
