package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/turnio-lab/project-turnio/internal/admission"
	"github.com/turnio-lab/project-turnio/internal/cache"
	corecfg "github.com/turnio-lab/project-turnio/internal/core/config"
	"github.com/turnio-lab/project-turnio/internal/core/storage/postgres"
	"github.com/turnio-lab/project-turnio/internal/dispatch"
	"github.com/turnio-lab/project-turnio/internal/display"
	"github.com/turnio-lab/project-turnio/internal/intake"
	"github.com/turnio-lab/project-turnio/internal/migrations"
	"github.com/turnio-lab/project-turnio/internal/server"
)

func main() {
	configPath := flag.String("config", "turnio.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "config", cfg)

	// 2. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 2.1. Run Database Migrations
	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	ledgerAdapter := postgres.NewLedgerAdapter(dbAdapter.DB())

	// 3. Connect to the external intake feed
	feed, err := intake.NewSQLFeed(
		cfg.External.Driver,
		cfg.External.DSN,
		cfg.External.Table,
		cfg.External.CategoryFilter,
		cfg.External.FetchLimit,
	)
	if err != nil {
		slog.Error("Failed to connect to external intake feed", "error", err)
		os.Exit(1)
	}
	defer feed.Close()

	// 4. Wire the admission pipeline
	scanCache := cache.NewScanCache(cfg.Intake.ScanCacheTTLDuration())
	openTickets := cache.NewOpenTicketCache()
	syncer := intake.NewSyncer(feed, ledgerAdapter, scanCache, cfg.Intake.BatchLimit)

	admitter := admission.NewService(
		syncer,
		dbAdapter,
		ledgerAdapter,
		scanCache,
		openTickets,
		cfg.Intake.DefaultCategory,
	)

	// 5. Window-facing dispatch API and board read API
	dispatchSvc := dispatch.NewService(dbAdapter, admitter, openTickets)
	displaySvc := display.NewService(dbAdapter, syncer)

	// 6. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter.DB(), cfg.Server.Mode)
	dispatchSvc.RegisterRoutes(srv.Engine)
	displaySvc.RegisterRoutes(srv.Engine)

	// 7. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Intake.AutoAssign {
		scheduler := admission.NewScheduler(cfg.Intake.PollIntervalDuration(), admitter)
		g.Go(func() error {
			return scheduler.Start(gctx)
		})
	} else {
		slog.Info("Background admission poller disabled by config")
	}

	g.Go(func() error {
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Service stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
