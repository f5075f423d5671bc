package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avdleeuw/animevault/internal/config"
	"github.com/avdleeuw/animevault/internal/database"
	"github.com/avdleeuw/animevault/internal/logger"
	"github.com/avdleeuw/animevault/internal/repository"
	"github.com/avdleeuw/animevault/internal/stats"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the statistics cache once and exit",
	Long: `Run a full statistics rebuild: fold every group's aggregate from the
database and refresh the cached group date columns. Useful after bulk
imports or schema migrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRebuild(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runRebuild() error {
	cfg := config.Get()
	logger.InitializeLoggers(cfg.GetAppLogLevel(), cfg.GetDatabaseLogLevel())
	log := logger.AppLogger()

	if err := database.Initialize(); err != nil {
		return err
	}
	defer database.Close()

	repo := repository.New(database.Get())

	statsCfg := stats.DefaultConfig()
	statsCfg.Retry.MaxAttempts = cfg.Stats.RetryAttempts
	cache := stats.New(repo, statsCfg)

	start := time.Now()
	if err := cache.InitStats(); err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("rebuild finished")
	return nil
}
