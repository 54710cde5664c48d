// Package main initializes and starts the Criptopedia API server,
// setting up configuration, logging, the catalog store, sessions,
// the YouTube client, services, handlers, and optional TLS.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/criptopedia/internal/config"
	"github.com/atinyakov/criptopedia/internal/db"
	"github.com/atinyakov/criptopedia/internal/logger"
	"github.com/atinyakov/criptopedia/internal/models"
	"github.com/atinyakov/criptopedia/internal/repository"
	"github.com/atinyakov/criptopedia/internal/server/handler/http"
	"github.com/atinyakov/criptopedia/internal/service"
	"github.com/atinyakov/criptopedia/internal/session"
	"github.com/atinyakov/criptopedia/internal/youtube"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

const (
	sessionSweepInterval = time.Minute
	shutdownTimeout      = 10 * time.Second
)

func main() {
	// Parse command-line, config file and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	zapLogger := log.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogRepo, sessions := newStores(ctx, options, zapLogger)

	// Expired sessions are swept in the background.
	session.StartExpiryCleaner(ctx, sessions, sessionSweepInterval, zapLogger)

	yt, err := youtube.NewClient(ctx, youtube.Config{
		APIKey:    options.YouTubeAPIKey,
		RateLimit: youtube.DefaultRateLimit,
	})
	if err != nil {
		zapLogger.Fatal("cannot init youtube client", zap.Error(err))
	}
	if !yt.Enabled() {
		zapLogger.Warn("no YouTube API key configured, video search will use the fallback")
	}

	// Initialize business-logic services.
	catalogService := service.NewCatalogService(catalogRepo)
	authService := service.NewAuthService(sessions, service.Credentials{
		Username: options.AdminUsername,
		Password: options.AdminPassword,
	})
	videoService := service.NewVideoService(yt, zapLogger)

	// Build the router with middleware and routes.
	router := http.NewRouter(http.Handlers{
		Status:         &http.StatusHandler{},
		Catalog:        &http.CatalogHandler{CatalogService: catalogService, Logger: zapLogger},
		Auth:           &http.AuthHandler{AuthService: authService, Logger: zapLogger},
		Videos:         &http.VideoHandler{Names: catalogService, Videos: videoService, ProviderEnabled: yt.Enabled()},
		Authenticator:  authService,
		AllowedOrigins: options.AllowedOrigins(),
	}, zapLogger)

	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	if options.TLSEnabled() {
		zapLogger.Info("starting HTTPS server", zap.String("addr", addr))
		err = server.ListenAndServeTLS(options.TLSCert, options.TLSKey)
	} else {
		zapLogger.Info("starting HTTP server", zap.String("addr", addr))
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}

// sessionStore is what the server needs from a session backend.
type sessionStore interface {
	service.SessionStore
	session.ExpiredDeleter
}

// newStores opens PostgreSQL when a DSN is configured and seeds an empty
// catalog; otherwise catalog and sessions live in memory.
func newStores(ctx context.Context, options *config.Options, log *zap.Logger) (service.CatalogRepository, sessionStore) {
	ttl := time.Duration(options.SessionTTL)
	if options.DatabaseDSN == "" {
		log.Info("using in-memory catalog and sessions")
		return repository.NewMemoryCatalogRepository(models.SeedAlgorithms()), session.NewMemoryStore(ttl)
	}

	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		log.Fatal("cannot init database", zap.Error(err))
	}
	seeded, err := db.SeedAlgorithms(ctx, postgresDB, models.SeedAlgorithms())
	if err != nil {
		log.Fatal("cannot seed database", zap.Error(err))
	}
	log.Info("using postgres catalog and sessions", zap.Int("seeded", seeded))
	return repository.NewPostgresCatalogRepository(postgresDB), repository.NewPostgresSessionStore(postgresDB, ttl)
}
