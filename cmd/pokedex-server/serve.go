package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thesavant42/pokedex-ng/internal/db"
	"github.com/thesavant42/pokedex-ng/internal/server"
)

var (
	servePort     int
	serveMaxConns int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Pokédex JSON endpoints",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config, 5000)")
	serveCmd.Flags().IntVar(&serveMaxConns, "max-conns", 0, "maximum concurrent connections, 0 for unlimited (default from config, 64)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("max-conns") {
		cfg.Server.MaxConns = serveMaxConns
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := db.New(cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("store close error", "err", err)
		}
	}()

	pokemon, moves, err := store.Counts(ctx)
	if err != nil {
		return err
	}
	logger.Info("store opened", "path", cfg.Server.DBPath, "pokemon", pokemon, "moves", moves)
	if pokemon == 0 {
		logger.Warn("database is empty, load data with: pokedex-server import --pokemon FILE --moves FILE")
	}

	handler := server.NewHandler(store, logger, Version)
	srv := server.New(server.NewRouter(handler), server.Options{
		Addr:            cfg.Addr(),
		MaxConns:        cfg.Server.MaxConns,
		ReadTimeout:     cfg.Server.ReadTimeout.Std(),
		WriteTimeout:    cfg.Server.WriteTimeout.Std(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout.Std(),
	}, logger)

	return srv.ListenAndServe(ctx)
}
