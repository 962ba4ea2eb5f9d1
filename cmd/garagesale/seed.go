package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/erazemk/garagesale/internal/imaging"
	"github.com/erazemk/garagesale/internal/seed"
)

func newSeedCmd(a *app) *cobra.Command {
	opts := seed.Options{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate the catalog data module from the item table",
		Long: `Reads the comma-delimited item table, publishes each row's images and
writes the generated Go data module. Variant generation can also be enabled
with SEED_WITH_VARIANTS=1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				opts.Workers = a.cfg.Workers
			}
			opts.WithVariants = opts.WithVariants || a.cfg.WithVariants
			if opts.WithVariants {
				opts.Variants = imaging.NewVariants()
			}
			opts.Logger = slog.Default()

			res, err := seed.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range res.Warnings {
				fmt.Fprintf(out, "  [warn] %s\n", w)
			}
			fmt.Fprintf(out, `
=== Seed Report ===
Rows:           %d
Items:          %d
Images:         %d
Variants:       %d
Warnings:       %d
Output:         %s
Total time:     %s
===================
`, res.Rows, len(res.Items), res.Images, res.Variants, len(res.Warnings), opts.Output,
				res.Duration.Round(time.Millisecond))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Input, "input", "i", "data/items.csv", "item table to read")
	f.StringVarP(&opts.Output, "out", "o", "internal/catalogdata/items_gen.go", "generated module path")
	f.StringVar(&opts.Package, "package", seed.DefaultPackage, "package name of the generated module")
	f.StringVar(&opts.SourceImages, "images-src", "images", "folder with user-supplied images, one subfolder per item")
	f.StringVar(&opts.PublicImages, "images-public", "public/images/items", "folder images are published to")
	f.StringVar(&opts.URLPrefix, "url-prefix", "/images/items", "public URL of the published images")
	f.BoolVar(&opts.WithVariants, "with-variants", false, "generate thumbnail and medium image variants")
	f.IntVarP(&opts.Workers, "workers", "w", 4, "rows processed in parallel (default from SEED_WORKERS)")

	return cmd
}
