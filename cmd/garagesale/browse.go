package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/erazemk/garagesale/internal/catalog"
	"github.com/erazemk/garagesale/internal/catalogdata"
	"github.com/erazemk/garagesale/internal/i18n"
	"github.com/erazemk/garagesale/internal/storefront"
)

func newBrowseCmd(a *app) *cobra.Command {
	var (
		query    string
		itemID   string
		locale   string
		currency string
		nowRaw   string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Print the catalog view for a query string",
		Example: `  garagesale browse --query "status=Available&categories=furniture,books"
  garagesale browse --item 4 --locale de-DE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if locale == "" {
				locale = a.cfg.Locale
			}
			if currency == "" {
				currency = a.cfg.Currency
			}

			sale, err := a.cfg.SaleWindow()
			if err != nil {
				return err
			}

			now := time.Now()
			if nowRaw != "" {
				t, err := time.Parse(time.RFC3339, nowRaw)
				if err != nil {
					return fmt.Errorf("parsing --now: %w", err)
				}
				now = t
			}

			tr, err := i18n.New(locale, slog.Default())
			if err != nil {
				return fmt.Errorf("loading translations: %w", err)
			}
			out := cmd.OutOrStdout()
			r := storefront.NewRenderer(out, tr, i18n.NewFormatter(tr.Tag(), currency))

			if !sale.Active(now) {
				return r.Inactive(out, sale)
			}

			loc := catalog.NewMemoryLocation(query)
			s := catalog.NewSession(catalogdata.Items, loc, catalog.Deriver{Language: tr.Tag()})

			if itemID != "" {
				if !s.OpenItem(itemID) {
					return fmt.Errorf("item %q not found", itemID)
				}
				item, _ := s.Item(itemID)
				if err := r.Item(out, item); err != nil {
					return err
				}
				return r.Share(out, loc.Query())
			}

			if err := r.Catalog(out, s); err != nil {
				return err
			}
			return r.Share(out, catalog.EncodeQuery(s.Selection()))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&query, "query", "q", "", "selection query string, as found in a shared URL")
	f.StringVar(&itemID, "item", "", "show the details of one item")
	f.StringVar(&locale, "locale", "", "display locale (default from GARAGESALE_LOCALE)")
	f.StringVar(&currency, "currency", "", "ISO 4217 currency code (default from GARAGESALE_CURRENCY)")
	f.StringVar(&nowRaw, "now", "", "evaluate the sale window at this RFC3339 time instead of now")

	return cmd
}
