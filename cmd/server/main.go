package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/JonMunkholm/atelier/internal/catalog"
	"github.com/JonMunkholm/atelier/internal/config"
	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/core/tables" // Register built-in tables
	"github.com/JonMunkholm/atelier/internal/logging"
	"github.com/JonMunkholm/atelier/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"default_page_size", cfg.Table.DefaultPageSize,
		"nested_search", cfg.Table.NestedSearch,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)
	slog.Debug("effective configuration", "config", cfg.String())

	ctx := context.Background()

	source, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		slog.Error("failed to open record source", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	if cfg.Table.CatalogFile != "" {
		n, err := catalog.LoadFile(cfg.Table.CatalogFile)
		if err != nil {
			slog.Error("failed to load table catalog", "file", cfg.Table.CatalogFile, "error", err)
			os.Exit(1)
		}
		slog.Info("table catalog loaded", "file", cfg.Table.CatalogFile, "tables", n)
	}

	service, err := core.NewService(source, cfg)
	if err != nil {
		slog.Error("failed to create service", "error", err)
		os.Exit(1)
	}

	slog.Info("tables registered",
		"count", core.TableCount(),
		"groups", len(core.Groups()),
	)
	for _, group := range core.Groups() {
		slog.Debug("table group", "group", group, "tables", len(core.ByGroup(group)))
	}

	server := web.NewServer(service, cfg)

	jobCtx, cancelJobs := context.WithCancel(context.Background())
	go service.StartSessionSweeper(jobCtx, cfg.Table.SweepInterval)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...", "open_sessions", service.OpenSessions())
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
		if err := service.DrainExports(shutdownCtx); err != nil {
			slog.Warn("exports still running at shutdown", "error", err)
		}
	}()

	if err := server.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openSource connects to PostgreSQL when DATABASE_URL is set; otherwise it
// serves the built-in demo records from memory.
func openSource(ctx context.Context, cfg *config.Config) (core.RecordSource, func(), error) {
	if cfg.Database.URL == "" {
		mem := core.NewMemorySource()
		tables.LoadFixtures(mem)
		slog.Info("no database configured, serving demo records")
		return mem, func() {}, nil
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	if u, err := url.Parse(cfg.Database.URL); err == nil {
		slog.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		slog.Info("connected to database")
	}
	return core.NewPgSource(pool), pool.Close, nil
}
