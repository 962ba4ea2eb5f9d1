package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/garagesale/internal/config"
	"github.com/erazemk/garagesale/internal/seed"
)

// run executes the root command with args and returns its combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runEnv(t, nil, args...)
}

// runEnv is run with env set on top of an otherwise blank configuration.
func runEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{
		config.EnvLocale, config.EnvCurrency, config.EnvSaleStart, config.EnvSaleEnd,
		config.EnvSeedWithVariants, config.EnvSeedWithSharp, config.EnvSeedWorkers,
	} {
		t.Setenv(key, env[key])
	}

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBrowseDefault(t *testing.T) {
	out, err := run(t, "browse")
	require.NoError(t, err)

	assert.Contains(t, out, "Garage Sale")
	assert.Contains(t, out, "Vintage Desk Lamp")
	assert.Contains(t, out, "250.00")
	assert.Contains(t, out, "Showing 5 of 5 items")
	assert.Contains(t, out, "Share this view: (All)")
}

func TestBrowseQuery(t *testing.T) {
	out, err := run(t, "browse", "--query", "?sort=name-asc&status=Sold&utm_source=x")
	require.NoError(t, err)

	assert.Contains(t, out, "Mountain Bike")
	assert.NotContains(t, out, "Coffee Maker")
	assert.Contains(t, out, "Share this view: ?status=Sold&sort=name-asc")
}

func TestBrowseItem(t *testing.T) {
	out, err := run(t, "browse", "--item", "4", "--query", "categories=furniture")
	require.NoError(t, err)

	assert.Contains(t, out, "Bookshelf")
	assert.Contains(t, out, "Dimensions: 6 × 3 ft")
	assert.Contains(t, out, "Share this view: ?categories=furniture&item=4")
}

func TestBrowseUnknownItem(t *testing.T) {
	_, err := run(t, "browse", "--item", "99")
	assert.ErrorContains(t, err, `item "99" not found`)
}

func TestBrowseInactive(t *testing.T) {
	env := filepath.Join(t.TempDir(), "sale.env")
	require.NoError(t, os.WriteFile(env, []byte("SALE_START=2025-10-04T09:00:00Z\nSALE_END=2025-10-05T17:00:00Z\n"), 0644))

	// Unset variables are filled in from the dotenv file.
	t.Setenv(config.EnvSaleStart, "")
	t.Setenv(config.EnvSaleEnd, "")
	os.Unsetenv(config.EnvSaleStart)
	os.Unsetenv(config.EnvSaleEnd)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"browse", "--env-file", env, "--now", "2025-10-06T00:00:00Z"})
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Garage Sale Currently Inactive")
	assert.Contains(t, out.String(), "Sale End: 5 October 2025 17:00 UTC")
	assert.NotContains(t, out.String(), "Vintage Desk Lamp")
}

func TestSeed(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "items.csv")
	output := filepath.Join(dir, "gen", "items_gen.go")
	require.NoError(t, os.WriteFile(input, []byte("id,name,price\n1,Lamp,45\n2,Sofa,120\n"), 0644))

	out, err := run(t, "seed",
		"--input", input,
		"--out", output,
		"--images-src", filepath.Join(dir, "images"),
		"--images-public", filepath.Join(dir, "public"),
		"--workers", "2",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Seed Report ===")
	assert.Regexp(t, `Items:\s+2\n`, out)
	assert.FileExists(t, output)
}

func TestMalformedSaleWindow(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "items.csv")
	output := filepath.Join(dir, "items_gen.go")
	require.NoError(t, os.WriteFile(input, []byte("id,name,price\n1,Lamp,45\n"), 0644))
	env := map[string]string{config.EnvSaleStart: "tomorrow"}

	// Seeding never reads the sale window.
	_, err := runEnv(t, env, "seed",
		"--input", input,
		"--out", output,
		"--images-src", filepath.Join(dir, "images"),
		"--images-public", filepath.Join(dir, "public"),
	)
	require.NoError(t, err)
	assert.FileExists(t, output)

	_, err = runEnv(t, env, "browse")
	assert.ErrorContains(t, err, "parsing SALE_START")
}

func TestSeedUnreadableInput(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "seed", "--input", filepath.Join(dir, "missing.csv"), "--out", filepath.Join(dir, "items_gen.go"))
	require.ErrorIs(t, err, seed.ErrInputUnreadable)
	assert.NoFileExists(t, filepath.Join(dir, "items_gen.go"))
}

func TestSetupLoggerRoutesLevels(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "garagesale.log")
	cleanup, err := setupLogger(&stdout, &stderr, logPath)
	require.NoError(t, err)

	slog.Debug("hidden")
	slog.Warn("to stdout")
	slog.Error("to stderr")
	cleanup()

	assert.Contains(t, stdout.String(), "to stdout")
	assert.NotContains(t, stdout.String(), "to stderr")
	assert.Contains(t, stderr.String(), "to stderr")
	assert.NotContains(t, stdout.String()+stderr.String(), "hidden")

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "to stdout")
	assert.Contains(t, string(logged), "to stderr")
}
