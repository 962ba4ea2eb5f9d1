// Package seed turns the garage sale spreadsheet into the generated catalog
// data module, publishing each row's images along the way.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/erazemk/garagesale/internal/imaging"
	"github.com/erazemk/garagesale/internal/model"
)

// ErrInputUnreadable is returned when the source table cannot be read.
var ErrInputUnreadable = errors.New("input table unreadable")

// DefaultPackage is the package name of the generated module.
const DefaultPackage = "catalogdata"

// Options configures a seeding run.
type Options struct {
	// Input is the path of the comma-delimited item table.
	Input string
	// Output is the path of the generated Go file.
	Output string
	// Package is the generated file's package name.
	Package string
	// SourceImages holds user-supplied images, one folder per row.
	SourceImages string
	// PublicImages is where images are published, one folder per row.
	PublicImages string
	// URLPrefix is the public URL of PublicImages.
	URLPrefix string
	// WithVariants requests thumbnail and medium variants.
	WithVariants bool
	// Variants generates the variants. When WithVariants is set and this is
	// nil, variant generation is skipped for the whole run.
	Variants imaging.VariantFunc
	// Workers bounds how many rows are processed at once. Values below 1 mean 1.
	Workers int
	Logger  *slog.Logger
}

// Result summarizes a seeding run.
type Result struct {
	Rows     int
	Items    []model.Item
	Images   int
	Variants int
	Warnings []string
	Duration time.Duration
}

// Run reads the table, resolves each row's images, and writes the generated
// module. Only an unreadable table, a cancelled context or a failed final
// write stop the run; per-row and per-image problems become warnings.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	rows, err := ReadTable(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}

	result := &Result{Rows: len(rows)}

	gatherer := &Gatherer{
		SourceDir: opts.SourceImages,
		PublicDir: opts.PublicImages,
		URLPrefix: opts.URLPrefix,
		Logger:    logger,
	}
	if opts.WithVariants {
		if opts.Variants == nil {
			msg := "image variants requested but no encoder is available in this build; skipping variant generation"
			logger.Warn(msg)
			result.Warnings = append(result.Warnings, msg)
		} else {
			gatherer.Variants = opts.Variants
		}
	}

	gathered, err := gatherAll(ctx, gatherer, rows, opts.Workers)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	result.Items = make([]model.Item, 0, len(rows))
	for i, row := range rows {
		g := gathered[i]
		item := BuildItem(row, g.Images)

		if item.Name == "" {
			g.Warnings = append(g.Warnings, fmt.Sprintf("row %d: blank name", i+1))
		}
		if seen[item.ID] {
			g.Warnings = append(g.Warnings, fmt.Sprintf("row %d: duplicate id %q", i+1, item.ID))
		}
		seen[item.ID] = true

		result.Items = append(result.Items, item)
		result.Images += len(g.Images)
		result.Variants += g.Variants
		result.Warnings = append(result.Warnings, g.Warnings...)
	}

	src, err := RenderModule(opts.Package, opts.Input, result.Items)
	if err != nil {
		return nil, err
	}
	if err := WriteModule(opts.Output, src, logger); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	logger.Info("wrote generated module", "path", opts.Output, "items", len(result.Items),
		"images", result.Images, "variants", result.Variants, "duration", result.Duration)
	return result, nil
}

// gatherAll resolves images for every row, at most workers rows at a time.
// Results are indexed by row, so output order never depends on scheduling.
func gatherAll(ctx context.Context, g *Gatherer, rows []Row, workers int) ([]Gathered, error) {
	out := make([]Gathered, len(rows))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for i, row := range rows {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out[i] = g.Gather(row["folder"], row["name"], row["description"])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("gathering images: %w", err)
	}
	return out, nil
}
