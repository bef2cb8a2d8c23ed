package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/preciouskorir/voting-system/cache"
	"github.com/preciouskorir/voting-system/cliparse"
	"github.com/preciouskorir/voting-system/db"
	"github.com/preciouskorir/voting-system/metrics"
	"github.com/preciouskorir/voting-system/middleware"
	"github.com/preciouskorir/voting-system/router"
	"github.com/preciouskorir/voting-system/voting"
)

func main() {
	// A missing .env is fine; real environments set variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	if cfg.IPHashSaltRandom {
		slog.Warn("IP_HASH_SALT not set, using a random salt for this process")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliparse.Config) error {
	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return err
	}

	// Connect to the store
	dbConn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.PingContext(ctx); err != nil {
		return err
	}

	// Provisioning runs before the listener starts
	if err := db.CreateSchema(ctx, dbConn, dialect); err != nil {
		return err
	}
	slog.Info("Database schema ready", "database", string(dialect))

	if cfg.Seed {
		seeded, err := db.Seed(ctx, dbConn)
		if err != nil {
			return err
		}
		slog.Info("Seed complete", "voters", seeded.Voters, "candidates", seeded.Candidates)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []voting.Option{voting.WithMetrics(metrics.New(reg))}
	switch {
	case cfg.CandidateCacheTTL == 0:
		slog.Info("Candidate cache disabled")
	case cfg.RedisURL != "":
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		opts = append(opts, voting.WithCandidateCache(cache.NewRedis(client, cfg.CandidateCacheTTL)))
		slog.Info("Candidate cache enabled", "backend", "redis", "ttl", cfg.CandidateCacheTTL)
	default:
		opts = append(opts, voting.WithCandidateCache(cache.NewMemory(cfg.CandidateCacheTTL)))
		slog.Info("Candidate cache enabled", "backend", "memory", "ttl", cfg.CandidateCacheTTL)
	}
	svc := voting.NewService(dbConn, opts...)

	// Create server
	mux := router.NewRouter(svc, cfg, reg)
	server := http.Server{
		Handler:           middleware.CORS(middleware.WithRequestID(mux)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("Shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server closed")
	return nil
}
