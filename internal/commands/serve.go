package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ruamngan.app/internal/auth"
	"ruamngan.app/internal/config"
	"ruamngan.app/internal/crm"
	"ruamngan.app/internal/docgen"
	"ruamngan.app/internal/httpapi"
	"ruamngan.app/internal/obs"
	"ruamngan.app/internal/purchasing"
	"ruamngan.app/internal/quotes"
	"ruamngan.app/internal/session"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the portal HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	obs.Init()
	obs.InitBuildInfo(version, commit)
	log := obs.NewLogger("ruamngan-portal")
	obs.SetLogger(log)

	codec, err := auth.NewTokenCodec(cfg.CookieSecret)
	if err != nil {
		return err
	}

	sessions, err := session.OpenSQLite(cfg.SessionDBPath())
	if err != nil {
		return err
	}
	defer sessions.Close()

	quoteStore, err := openQuoteStore(cfg)
	if err != nil {
		return err
	}
	defer quoteStore.Close()
	if err := quotes.Seed(context.Background(), quoteStore); err != nil {
		return fmt.Errorf("seed quotations: %w", err)
	}

	poStore, err := purchasing.Open(cfg.PurchasingDBPath())
	if err != nil {
		return err
	}
	defer poStore.Close()

	api := httpapi.New(httpapi.Deps{
		Logger:     log,
		Sessions:   sessions,
		Verifier:   auth.DefaultCredentials(),
		Tokens:     codec,
		CRM:        crm.New(cfg.TrackerBaseURL).SetTimeout(10 * time.Second),
		Quotes:     quoteStore,
		Purchasing: poStore,
		Exporter:   docgen.NewExporter(docgen.NewRasterizer()),
		Version:    version,
		RateBurst:  cfg.RateBurst,
		RatePerSec: cfg.RatePerSec,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Str("version", version).Msg("starting portal")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// openQuoteStore picks Postgres when a DSN is configured, otherwise
// the profile-local sqlite file.
func openQuoteStore(cfg *config.Config) (quotes.Store, error) {
	if cfg.PostgresDSN != "" {
		return quotes.OpenPostgres(cfg.PostgresDSN)
	}
	return quotes.OpenSQLite(cfg.QuotationDBPath())
}
