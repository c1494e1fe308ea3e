package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/parlaydev/betledger/internal/cache"
	"github.com/parlaydev/betledger/internal/config"
	"github.com/parlaydev/betledger/internal/handlers"
	"github.com/parlaydev/betledger/internal/hub"
	"github.com/parlaydev/betledger/internal/middleware"
	"github.com/parlaydev/betledger/internal/notify"
	"github.com/parlaydev/betledger/internal/slipscan"
	"github.com/parlaydev/betledger/internal/store"
)

func main() {
	fmt.Println("=== BetLedger v0 ===")

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)

	// Open the store
	st, err := openStore(cfg.DB)
	if err != nil {
		fmt.Printf("❌ Failed to open %s store: %v\n", cfg.DB.Driver, err)
		os.Exit(1)
	}
	defer st.Close()

	fmt.Printf("✓ Connected to %s store\n", cfg.DB.Driver)

	// Connect to Redis when a mirror is configured
	var mirror *cache.Mirror
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
			os.Exit(1)
		}

		mirror = cache.NewMirror(redisClient, cfg.Redis.Key, cfg.Redis.TTL)
		fmt.Println("✓ Connected to Redis")
	}

	notifier := notify.NewSlackNotifier(cfg.Slack.WebhookURL)
	if notifier.Enabled() {
		fmt.Println("✓ Slack notifications enabled")
	}

	var extractor slipscan.Extractor
	if cfg.Slipscan.Endpoint != "" {
		extractor = slipscan.NewVisionClient(cfg.Slipscan.Endpoint, cfg.Slipscan.APIKey, cfg.Slipscan.Model)
		fmt.Printf("✓ Slip scanning enabled (%s)\n", cfg.Slipscan.Model)
	}

	// Start the websocket hub
	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()

	statsHub := hub.NewHub(logger)
	go statsHub.Run(hubCtx)

	handler := handlers.NewHandler(st, statsHub, mirror, notifier, extractor, logger)

	// Scheduled backups need both a schedule and a mirror to write to
	if cfg.Backup.Schedule != "" && mirror != nil {
		scheduler := cron.New()
		_, err := scheduler.AddFunc(cfg.Backup.Schedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			snapshot, err := st.Snapshot(ctx)
			if err != nil {
				logger.WithError(err).Error("scheduled backup failed to load snapshot")
				return
			}
			key, err := mirror.Backup(ctx, snapshot)
			if err != nil {
				logger.WithError(err).Error("scheduled backup failed")
				return
			}
			logger.WithField("key", key).Info("scheduled backup written")
		})
		if err != nil {
			fmt.Printf("❌ Invalid backup schedule %q: %v\n", cfg.Backup.Schedule, err)
			os.Exit(1)
		}
		scheduler.Start()
		defer scheduler.Stop()

		fmt.Printf("✓ Scheduled backups (%s)\n", cfg.Backup.Schedule)
	}

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/health", handler.HealthCheck)
	r.Get("/ws", handler.ServeWS)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(30 * time.Second))

			// Bets
			r.Post("/bets", handler.CreateBet)
			r.Get("/bets", handler.GetBets)
			r.Get("/bets/{betID}", handler.GetBet)
			r.Put("/bets/{betID}", handler.UpdateBet)
			r.Patch("/bets/{betID}/status", handler.UpdateBetStatus)
			r.Delete("/bets/{betID}", handler.DeleteBet)

			// Books and deposits
			r.Get("/books", handler.GetBooks)
			r.Get("/books/deposits", handler.GetDeposits)
			r.Put("/books/{book}/deposit", handler.SetDeposit)

			// Stats
			r.Get("/stats/bankroll", handler.GetBankrollStats)
			r.Get("/stats/advanced", handler.GetAdvancedStats)
			r.Get("/stats/history", handler.GetBankrollHistory)
			r.Get("/stats/overview", handler.GetOverview)

			// Snapshots
			r.Get("/snapshot/export", handler.ExportSnapshot)
			r.Post("/snapshot/import", handler.ImportSnapshot)
			r.Post("/snapshot/backup", handler.BackupSnapshot)
			r.Post("/snapshot/restore", handler.RestoreSnapshot)
		})

		// Slip extraction waits on a vision model, so it runs outside
		// the 30 second budget the rest of the API gets.
		r.With(chimiddleware.Timeout(2*time.Minute)).Post("/slips/scan", handler.ScanSlip)
	})

	// Start server
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Slip scans hold the response open while the vision model runs
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("✓ BetLedger listening on %s\n", srv.Addr)
		fmt.Println("  Endpoints:")
		fmt.Println("    GET    /health")
		fmt.Println("    GET    /ws")
		fmt.Println("    POST   /api/v1/bets")
		fmt.Println("    GET    /api/v1/bets")
		fmt.Println("    GET    /api/v1/bets/{betID}")
		fmt.Println("    PUT    /api/v1/bets/{betID}")
		fmt.Println("    PATCH  /api/v1/bets/{betID}/status")
		fmt.Println("    DELETE /api/v1/bets/{betID}")
		fmt.Println("    GET    /api/v1/books")
		fmt.Println("    GET    /api/v1/books/deposits")
		fmt.Println("    PUT    /api/v1/books/{book}/deposit")
		fmt.Println("    GET    /api/v1/stats/bankroll")
		fmt.Println("    GET    /api/v1/stats/advanced")
		fmt.Println("    GET    /api/v1/stats/history")
		fmt.Println("    GET    /api/v1/stats/overview")
		fmt.Println("    GET    /api/v1/snapshot/export")
		fmt.Println("    POST   /api/v1/snapshot/import")
		fmt.Println("    POST   /api/v1/snapshot/backup")
		fmt.Println("    POST   /api/v1/snapshot/restore")
		fmt.Println("    POST   /api/v1/slips/scan")

		serverErrors <- srv.ListenAndServe()
	}()

	if notifier.Enabled() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := notifier.Startup(ctx); err != nil {
				logger.WithError(err).Warn("failed to send startup notification")
			}
		}()
	}

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		fmt.Printf("❌ Server error: %v\n", err)
		os.Exit(1)

	case sig := <-shutdown:
		fmt.Printf("\n⚠️  Received signal: %v\n", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Printf("⚠️  Graceful shutdown failed: %v\n", err)
			if err := srv.Close(); err != nil {
				fmt.Printf("❌ Could not stop server: %v\n", err)
			}
		}
	}

	fmt.Println("✓ Shutdown complete")
}

// newLogger builds the application logger from config
func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// openStore picks the storage backend from config
func openStore(cfg config.DBConfig) (store.Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return store.NewSQLiteStore(cfg.Path, cfg.Migrations)
	case "postgres":
		return store.NewPostgresStore(cfg.DSN)
	}
	return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
}
