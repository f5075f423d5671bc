package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avdleeuw/animevault/internal/api"
	"github.com/avdleeuw/animevault/internal/config"
	"github.com/avdleeuw/animevault/internal/database"
	"github.com/avdleeuw/animevault/internal/logger"
	"github.com/avdleeuw/animevault/internal/repository"
	"github.com/avdleeuw/animevault/internal/shutdown"
	"github.com/avdleeuw/animevault/internal/stats"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the statistics cache and HTTP API",
	Long: `Connect to the database, build the statistics cache, and serve filter
memberships and per-group statistics over HTTP. Recompute events queued
by other pipelines are drained continuously.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runServe() error {
	cfg := config.Get()
	logger.InitializeLoggers(cfg.GetAppLogLevel(), cfg.GetDatabaseLogLevel())
	log := logger.AppLogger()

	if cfg.IsUsingLegacyLogging() {
		log.Warn("logging.level is deprecated, prefer logging.app.level and logging.database.level")
	}

	if err := database.Initialize(); err != nil {
		return err
	}
	log.Info("database connection established")

	repo := repository.New(database.Get())

	statsCfg := stats.DefaultConfig()
	statsCfg.Retry.MaxAttempts = cfg.Stats.RetryAttempts
	statsCfg.Breaker.MaxFailures = uint(cfg.Stats.BreakerMaxFailures)
	cache := stats.New(repo, statsCfg)

	if cfg.Stats.InitOnStart {
		if err := cache.InitStats(); err != nil {
			return fmt.Errorf("initial cache build failed: %w", err)
		}
	}

	debouncer := stats.NewDebouncer(cache, time.Duration(cfg.Stats.DebounceWindowSeconds)*time.Second)
	debounceCtx, cancelDebounce := context.WithCancel(context.Background())
	debouncer.Run(debounceCtx)

	handler := shutdown.New(30 * time.Second)
	handler.Register(func(ctx context.Context) error {
		return database.Close()
	})
	handler.Register(func(ctx context.Context) error {
		cancelDebounce()
		debouncer.Wait()
		return nil
	})

	server := api.NewServer(repo, cache, debouncer)
	go func() {
		log.WithFields(map[string]interface{}{"port": cfg.API.Port}).Info("starting API server")
		if err := server.Run(cfg.API.Port); err != nil {
			log.Error("API server stopped", err)
			handler.TriggerShutdown()
		}
	}()

	handler.Wait()
	log.Info("shutdown complete")
	return nil
}
