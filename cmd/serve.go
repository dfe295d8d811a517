package main

import (
	"commandhotline/internal/birthday"
	"commandhotline/internal/bot"
	"commandhotline/internal/config"
	"commandhotline/internal/ops"
	"commandhotline/internal/worker"
	"commandhotline/pkg/logger"
	"commandhotline/pkg/metrics"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupOpsServer(ctx context.Context, cfg *config.Config, deps ops.Deps) (*metrics.Metrics, func(ctx context.Context)) {
	server, meter, err := ops.NewServer(deps, ops.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create ops server", zap.Error(err))
	}

	mts, err := metrics.New(meter)
	if err != nil {
		logger.Fatal(ctx, "could not create metric instruments", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting ops server...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops server", zap.Error(err))
			}
		}
	}()

	return mts, func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the bot, background workers and the ops server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mts, stopOpsServer := setupOpsServer(ctx, cfg, ops.Deps{Storage: strg})

			service := birthday.New(birthday.NewOptions(cfg), strg)

			tgBot, err := bot.New(ctx, bot.NewOptions(cfg), service, mts)
			if err != nil {
				logger.Fatal(ctx, "could not create bot", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, worker.NewOptions(cfg), strg.Pool, service, tgBot)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			go tgBot.Start()

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			tgBot.Stop()
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
			stopOpsServer(shutdownCtx)
		},
	}

	return cmd
}
