// liftlog-mcp serves the LiftLog MCP tools over stdio so an LLM client
// can query workout history and templates directly from the local
// database.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/liftlog/internal/config"
	liftlogmcp "github.com/meltforce/liftlog/internal/mcp"
	"github.com/meltforce/liftlog/internal/storage"
	"github.com/meltforce/liftlog/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Logs go to stderr; stdout is the MCP transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var store workout.Store
	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := storage.NewPostgres(ctx, cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		store = pg
	default:
		lite, err := storage.OpenSQLite(cfg.DataDir())
		if err != nil {
			log.Error("failed to open sqlite database", "error", err)
			os.Exit(1)
		}
		defer lite.Close()
		store = lite
	}

	clock := workout.SystemClock{}
	templates, err := workout.NewTemplateStore(ctx, store, clock)
	if err != nil {
		log.Error("failed to load templates", "error", err)
		os.Exit(1)
	}
	archive, err := workout.NewArchive(ctx, store)
	if err != nil {
		log.Error("failed to load session archive", "error", err)
		os.Exit(1)
	}

	s := liftlogmcp.New(templates, archive, Version, log)
	log.Info("LiftLog MCP server starting", "version", Version)

	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
