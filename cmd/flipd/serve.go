package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"flipd/internal/common/fsutil"
	"flipd/internal/config"
	"flipd/internal/httpapi"
	"flipd/internal/registry"
	"flipd/internal/slotpool"
)

func buildServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the slot pool over HTTP",
		Example: "  flipd serve --items-dir ~/pictures --items-ext .jpg --window 5 --offset 2 --loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().String("addr", config.DefaultAddr, "HTTP listen address (defaults FLIPD_ADDR)")
	cmd.Flags().String("items-dir", config.DefaultItemsDir, "Directory whose files form the sequence")
	cmd.Flags().String("items-ext", "", "Only include files with this extension")
	cmd.Flags().String("cors-origins", "", "Comma-separated allowed CORS origins (empty disables CORS)")
	return cmd
}

// newPool opens the items directory and shows the first window.
func newPool(cfg config.Config, logger *zerolog.Logger) (*slotpool.Pool, *registry.DirSource, error) {
	if !fsutil.IsDir(cfg.ItemsDir) {
		return nil, nil, fmt.Errorf("items dir %q is not a directory", cfg.ItemsDir)
	}
	src, err := registry.OpenDir(cfg.ItemsDir, cfg.ItemsExt)
	if err != nil {
		return nil, nil, fmt.Errorf("open items: %w", err)
	}
	pool, err := slotpool.NewWithConfig(slotpool.PoolConfig{
		Window:       cfg.Window(),
		Source:       src,
		Publisher:    httpapi.PlanMetrics{},
		Logger:       logger,
		AnimateFirst: cfg.AnimateFirst,
	})
	if err != nil {
		return nil, nil, err
	}
	if src.Count() > 0 {
		if _, err := pool.ShowOnly(0); err != nil {
			return nil, nil, err
		}
	}
	return pool, src, nil
}

func runServe(ctx context.Context, cfg config.Config, logw io.Writer) error {
	logger, err := newLogger(logw, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(len(cfg.CORSOrigins) > 0, cfg.CORSOrigins, nil, nil)
	httpapi.SetBaseContext(ctx)

	pool, src, err := newPool(cfg, &logger)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(pool),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("items_dir", src.Dir()).Int("items", src.Count()).
			Int("window", cfg.WindowSize).Int("offset", cfg.ActiveOffset).Bool("loop", cfg.Loop).
			Msg("flipd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown (Ctrl+C / SIGTERM)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	logger.Info().Msg("flipd stopped")
	return nil
}
