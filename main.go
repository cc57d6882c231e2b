package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/ballot-kiosk/auth"
	"github.com/danielhkuo/ballot-kiosk/cliparse"
	"github.com/danielhkuo/ballot-kiosk/db"
	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/logging"
	"github.com/danielhkuo/ballot-kiosk/middleware"
	"github.com/danielhkuo/ballot-kiosk/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel))

	// The operator needs the key to set up elections, so print it once
	if cfg.OperatorKey == "" {
		cfg.OperatorKey, err = auth.GenerateOperatorKey()
		if err != nil {
			slog.Error("operator key generation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Generated operator key", "operator_key", cfg.OperatorKey)
	}

	// Results archive is optional
	var archive *db.Archive
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		archive = db.NewArchive(dbConn, cfg.DatabaseType)
		slog.Info("Results archive ready", "type", cfg.DatabaseType)
	}

	registry := election.NewRegistry()

	// Create router
	mux := router.NewRouter(registry, archive, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    cfg.Addr(),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "addr", cfg.Addr(), "export_dir", cfg.ExportDir)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
