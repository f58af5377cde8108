package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	liftcycle "github.com/claude/liftcycle"
	"github.com/claude/liftcycle/internal/config"
	liftmcp "github.com/claude/liftcycle/internal/mcp"
	"github.com/claude/liftcycle/internal/program"
	"github.com/claude/liftcycle/internal/server"
	"github.com/claude/liftcycle/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	mcpMode := flag.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	mcpRemote := flag.String("mcp-remote", "", "serve MCP over stdio backed by a remote liftcycle API (e.g. http://liftcycle.tail1234.ts.net)")
	flag.Parse()

	// stdout carries the MCP protocol in stdio modes.
	logOut := os.Stdout
	if *mcpMode || *mcpRemote != "" {
		logOut = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("liftcycle starting", "version", Version)

	if *mcpRemote != "" {
		ds := liftmcp.NewHTTPClient(*mcpRemote)
		log.Info("mcp remote mode", "api", *mcpRemote)
		if err := mcpserver.ServeStdio(liftmcp.New(ds, Version, log)); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg.Database, *migrateOnly, log)
	if err != nil {
		log.Error("failed to open cycle store", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	if store == nil {
		log.Info("migrate-only: exiting")
		return
	}
	defer closeStore()

	catalog := program.NewCatalog(cfg.Program.RoundingIncrement)

	if *mcpMode {
		if err := mcpserver.ServeStdio(liftmcp.New(liftmcp.NewLocal(store, catalog), Version, log)); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	srv := server.New(store, catalog, cfg.Auth.APIKey, log)

	// Start server: tsnet or plain HTTP
	var listener net.Listener
	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// openStore opens the configured cycle store. Postgres runs migrations first;
// with migrateOnly it stops there and returns a nil store.
func openStore(ctx context.Context, db config.DatabaseConfig, migrateOnly bool, log *slog.Logger) (storage.CycleStore, func(), error) {
	if db.Driver == config.DriverSQLite {
		if migrateOnly {
			log.Info("sqlite schema is created on open, nothing to migrate")
			return nil, nil, nil
		}
		lite, err := storage.OpenLite(db.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Info("sqlite store opened", "path", db.Path)
		return lite, func() {
			if err := lite.Close(); err != nil {
				log.Warn("closing sqlite store", "error", err)
			}
		}, nil
	}

	dsn := db.DSN()
	if err := storage.RunMigrations(dsn, liftcycle.MigrationsFS, "migrations"); err != nil {
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Info("migrations applied")
	if migrateOnly {
		return nil, nil, nil
	}

	pg, err := storage.New(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	log.Info("database connected")
	return pg, pg.Close, nil
}
