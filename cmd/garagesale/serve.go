package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/erazemk/garagesale/internal/api"
	"github.com/erazemk/garagesale/internal/catalog"
	"github.com/erazemk/garagesale/internal/catalogdata"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr   string
		public string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog JSON API and the published images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sale, err := a.cfg.SaleWindow()
			if err != nil {
				return err
			}

			tag, err := language.Parse(a.cfg.Locale)
			if err != nil {
				tag = language.English
			}

			apiRouter := api.NewRouter(&api.ItemsHandler{
				Items:   catalogdata.Items,
				Sale:    sale,
				Deriver: catalog.Deriver{Language: tag},
			})

			// API routes take priority, published files handle the rest.
			mux := http.NewServeMux()
			mux.Handle("/api/", apiRouter)
			mux.Handle("/", http.FileServer(http.Dir(public)))

			server := &http.Server{
				Addr:              addr,
				Handler:           api.LoggingMiddleware(mux),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
				IdleTimeout:       120 * time.Second,
			}

			// Graceful shutdown on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				slog.Info("shutdown signal received")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("server forced to shutdown", "error", err)
				}
			}()

			slog.Info("server started", "addr", addr, "items", len(catalogdata.Items), "sale", sale.State(time.Now()))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().StringVar(&public, "public", "public", "folder of published static files")

	return cmd
}
