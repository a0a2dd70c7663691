package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/thesavant42/pokedex-ng/internal/config"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "pokedex-server",
})

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "pokedex-server",
	Short:         "Reference backend for the Pokédex viewer",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database (default from config, pokedex.db)")
	rootCmd.AddCommand(serveCmd, importCmd)
}

// loadConfig loads the configuration, applies --db and sets the log level
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("db") {
		cfg.Server.DBPath = dbPath
	}
	logger.SetLevel(cfg.LogLevel())
	return cfg, cfg.Validate()
}
