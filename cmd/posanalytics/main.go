package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/aevon-lab/pos-analytics/internal/core/config"
	"github.com/aevon-lab/pos-analytics/internal/core/forecast"
	"github.com/aevon-lab/pos-analytics/internal/core/storage"
	"github.com/aevon-lab/pos-analytics/internal/core/storage/memory"
	"github.com/aevon-lab/pos-analytics/internal/core/storage/postgres"
	"github.com/aevon-lab/pos-analytics/internal/dashboard"
	"github.com/aevon-lab/pos-analytics/internal/ingestion"
	"github.com/aevon-lab/pos-analytics/internal/migrations"
	"github.com/aevon-lab/pos-analytics/internal/server"
	"github.com/aevon-lab/pos-analytics/internal/signals"
	"github.com/aevon-lab/pos-analytics/internal/signals/flow"
	"github.com/aevon-lab/pos-analytics/internal/signals/weather"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	configPath := flag.String("config", "posanalytics.yaml", "Path to configuration file")
	envPath := flag.String("env", ".env", "Optional dotenv file loaded before the config")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// A missing dotenv file is fine; POS_* variables may come from the environment.
	if err := godotenv.Load(*envPath); err == nil {
		slog.Info("Loaded environment file", "path", *envPath)
	}

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"timezone", cfg.Business.Timezone,
		"cutoff_hour", cfg.Business.CutoffHour,
		"locations", len(cfg.Locations),
		"weather", cfg.Weather.Enabled,
		"tip_rules", len(cfg.TipLoading.Table.Rules()))

	businessClock, err := cfg.Clock()
	if err != nil {
		slog.Error("Invalid business clock", "error", err)
		os.Exit(1)
	}
	commissions, err := cfg.CommissionTable()
	if err != nil {
		slog.Error("Invalid commission table", "error", err)
		os.Exit(1)
	}
	seasons, err := cfg.FlowSeasons()
	if err != nil {
		slog.Error("Invalid flow seasons", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Storage
	ledger, closeLedger, err := openLedger(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize ledger", "error", err)
		os.Exit(1)
	}
	defer closeLedger()

	checks := map[string]server.HealthChecker{"ledger": ledger}

	// 3. Initialize Signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var weatherProvider signals.WeatherProvider
	if cfg.Weather.Enabled {
		cached, store, closeWeather := buildWeather(cfg)
		defer closeWeather()
		weatherProvider = cached
		if pinger, ok := store.(server.HealthChecker); ok {
			checks["weather_cache"] = pinger
		}

		if cfg.Weather.WarmInterval > 0 {
			warmer := weather.NewWarmer(cfg.Weather.WarmInterval, cached, locationIDs(cfg))
			go func() {
				if err := warmer.Start(ctx); err != nil {
					slog.Error("Weather warmer stopped with error", "error", err)
				}
			}()
		}
	} else {
		slog.Info("Weather lookups disabled by config; dashboards use the neutral condition")
	}

	calendar := flow.NewCalendar(businessClock, seasons)

	// 4. Initialize Dashboard (query API)
	forecaster := forecast.New(businessClock, cfg.TipLoading.Table)
	dashboardSvc := dashboard.NewService(ledger, businessClock, commissions, forecaster, weatherProvider, calendar, dashboard.Options{
		TopLimit:         cfg.Dashboard.TopLimit,
		LocationTopLimit: cfg.Dashboard.LocationTopLimit,
		LowRotationLimit: cfg.Dashboard.LowRotationLimit,
		LatestLimit:      cfg.Dashboard.LatestLimit,
		DailyWindowDays:  cfg.Dashboard.DailyWindowDays,
		LocationNames:    cfg.LocationNames(),
	})

	// 5. Initialize Ingestion
	ingestionSvc := ingestion.NewService(ledger, cfg.Server.MaxBodySizeMB)

	// 6. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), cfg.Server.Mode, checks)
	ingestionSvc.RegisterRoutes(srv.Engine)
	dashboardSvc.RegisterRoutes(srv.Engine)

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openLedger returns the configured sale store and a func that releases it.
func openLedger(cfg corecfg.DatabaseConfig) (storage.Ledger, func(), error) {
	if cfg.Type == "memory" {
		slog.Warn("Using in-memory ledger; sales are lost on restart")
		return memory.NewLedger(), func() {}, nil
	}

	db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, err
	}
	if err := migrations.RunMigrations(db, cfg.AutoMigrate); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	adapter, err := postgres.NewAdapter(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return adapter, func() {
		if err := adapter.Close(); err != nil {
			slog.Warn("Failed to close ledger", "error", err)
		}
	}, nil
}

// buildWeather wires the API client behind the configured cache backend.
func buildWeather(cfg *corecfg.Config) (*weather.Cached, weather.Store, func()) {
	coords := make(map[int]weather.Coordinates, len(cfg.Locations))
	for _, loc := range cfg.Locations {
		coords[loc.ID] = weather.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}
	}

	client := weather.NewClient(weather.ClientOptions{
		BaseURL:    cfg.Weather.BaseURL,
		ArchiveURL: cfg.Weather.ArchiveURL,
		Timeout:    cfg.Weather.Timeout,
		Timezone:   cfg.Business.Timezone,
		Locations:  coords,
	})

	cacheCfg := cfg.Weather.Cache
	var (
		store   weather.Store
		closers = []io.Closer{client}
	)
	switch cacheCfg.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cacheCfg.Redis.Addr,
			Password: cacheCfg.Redis.Password,
			DB:       cacheCfg.Redis.DB,
		})
		closers = append(closers, rdb)
		store = weather.NewRedisStore(rdb, cacheCfg.Redis.Prefix)
	default:
		store = weather.NewMemoryStore(cacheCfg.Capacity)
	}

	slog.Info("Weather lookups enabled",
		"cache_backend", cacheCfg.Backend,
		"ttl", cacheCfg.TTL,
		"historical_ttl", cacheCfg.HistoricalTTL,
		"warm_interval", cfg.Weather.WarmInterval)

	closeAll := func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				slog.Warn("Failed to close weather resource", "error", err)
			}
		}
	}
	return weather.NewCached(client, store, cacheCfg.TTL, cacheCfg.HistoricalTTL), store, closeAll
}

func locationIDs(cfg *corecfg.Config) []int {
	ids := make([]int, 0, len(cfg.Locations))
	for _, loc := range cfg.Locations {
		ids = append(ids, loc.ID)
	}
	return ids
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
