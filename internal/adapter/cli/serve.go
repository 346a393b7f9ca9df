package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	handler "passwordCheckerBackend/internal/adapter/http"
	"passwordCheckerBackend/internal/adapter/routes"
	"passwordCheckerBackend/internal/pkg/metrics"
)

const shutdownGrace = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.logger.Sync() //nolint:errcheck

			if !app.cfg.Debug {
				gin.SetMode(gin.ReleaseMode)
			}

			router := gin.Default()
			routes.SetupRoutes(router, handler.NewPasswordHandler(app.service, app.metrics, app.logger))

			reporter, err := metrics.NewReporter(app.cfg.MetricsLogPath)
			if err != nil {
				return err
			}
			defer reporter.Close() //nolint:errcheck

			srv := &http.Server{
				Addr:    app.cfg.ServerAddr,
				Handler: router,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				app.logger.Info("http server starting", zap.String("addr", app.cfg.ServerAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			app.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				app.logger.Warn("shutdown incomplete", zap.Error(err))
			}

			if err := reporter.Record("shutdown_snapshot", app.metrics.Snapshot()); err != nil {
				app.logger.Warn("failed to record final metrics", zap.Error(err))
			}
			return nil
		},
	}
}
