package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/WilsonNous/nousmei-api/internal/api"
	"github.com/WilsonNous/nousmei-api/internal/config"
	"github.com/WilsonNous/nousmei-api/internal/pkg/logger"
	"github.com/WilsonNous/nousmei-api/internal/pkg/metrics"
	"github.com/WilsonNous/nousmei-api/internal/repository/postgres"
	"github.com/WilsonNous/nousmei-api/internal/service/registration"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		logger.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if os.Getenv("LOG_LEVEL") == "debug" {
		logger.SetLevel(logger.DEBUG)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := postgres.NewRegistrationRepo(db)
	svc := registration.NewService(repo)
	m := metrics.New()
	handlers := api.NewHandlers(svc, db, cfg, m)
	router := api.SetupRoutes(handlers, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting nousmei-api", "addr", cfg.Server.Addr(), "versao", cfg.App.Versao)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// openDB connects to Postgres with connect/statement timeouts baked into the
// DSN so a wedged database cannot hold requests forever.
func openDB(dc config.DatabaseConfig) (*sql.DB, error) {
	dsn := dc.URL
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	if !strings.Contains(dsn, "connect_timeout") {
		dsn += sep + "connect_timeout=5"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(dc.MaxOpenConns)
	db.SetMaxIdleConns(dc.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
