package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avdleeuw/animevault/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "animevault",
	Short: "AnimeVault maintains derived statistics and filter views over an anime collection",
	Long: `AnimeVault keeps a process-wide cache of per-group statistics folded from
the series hierarchy, evaluates saved group filters per user, and serves
both over HTTP. Import and metadata pipelines feed it recompute events.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of AnimeVault",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("AnimeVault v0.1.0")
	},
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./config.yml)")
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rebuildCmd)
}

func initConfig() {
	// Skip config loading for version command
	if len(os.Args) > 1 && os.Args[1] == "version" {
		return
	}

	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
