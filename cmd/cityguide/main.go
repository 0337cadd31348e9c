package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/cityguide/internal/api"
	"github.com/iudanet/cityguide/internal/auth"
	"github.com/iudanet/cityguide/internal/cli"
	"github.com/iudanet/cityguide/internal/netwatch"
	"github.com/iudanet/cityguide/internal/storage/boltdb"
	"github.com/iudanet/cityguide/internal/storage/sqlite"
	appsync "github.com/iudanet/cityguide/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8000", "Backend base URL")
	apiKey := flag.String("api-key", "", "Backend API key (or CITYGUIDE_API_KEY env)")
	cachePath := flag.String("db", "cityguide-cache.db", "Path to the local cache database")
	statePath := flag.String("state", "cityguide-state.db", "Path to the local state database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	key := *apiKey
	if key == "" {
		key = os.Getenv("CITYGUIDE_API_KEY")
	}
	if key == "" {
		fmt.Fprintln(os.Stderr, "API key is required: pass --api-key or set CITYGUIDE_API_KEY")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cacheStorage, err := sqlite.New(ctx, *cachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open cache database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := cacheStorage.Close(); err != nil {
			logger.Error("failed to close cache database", "error", err)
		}
	}()

	stateStorage, err := boltdb.New(ctx, *statePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open state database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := stateStorage.Close(); err != nil {
			logger.Error("failed to close state database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL, key, logger)

	authManager := auth.NewManager(apiClient, stateStorage, logger)
	if err := authManager.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load session: %v\n", err)
		os.Exit(1)
	}
	apiClient.SetTokenSource(authManager)

	monitor := netwatch.New(apiClient, logger, 30*time.Second)

	reviewEngine := appsync.NewReviewEngine(apiClient, cacheStorage, stateStorage, authManager, logger)
	attractionEngine := appsync.NewAttractionEngine(apiClient, cacheStorage, stateStorage, reviewEngine, logger)
	orchestrator := appsync.NewOrchestrator(attractionEngine, monitor, logger)

	app := cli.New(apiClient, authManager, orchestrator, reviewEngine, cacheStorage, cacheStorage, monitor)
	app.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("CityGuide Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
