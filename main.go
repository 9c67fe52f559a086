package main

import (
	"FibonacciAPI/config/database"
	"FibonacciAPI/config/environment"
	"FibonacciAPI/logger"
	"FibonacciAPI/mirror"
	"FibonacciAPI/repositories"
	route "FibonacciAPI/routes"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := environment.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync(zl) }()

	if err := run(cfg, zl); err != nil {
		zl.Fatalw("server stopped", "error", err)
	}
}

func run(cfg *environment.Config, zl *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := route.Dependencies{
		JWTSecret:        []byte(cfg.JWTSecret),
		AccessTokenTTL:   cfg.AccessTokenTTL,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		Log:              zl,
	}

	switch cfg.StorageBackend {
	case environment.StorageMemory:
		store := repositories.NewMemoryStore()
		deps.Users, deps.Sessions = store, store
		zl.Warn("using in-memory storage, data is lost on restart")
	default:
		client, err := database.NewFirestoreClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()
		deps.Users = repositories.NewFirestoreUserRepository(client)
		deps.Sessions = repositories.NewFirestoreSessionRepository(client)
		zl.Infow("Firebase Firestore initialized successfully", "project", cfg.FirebaseProjectID)
	}

	switch cfg.MirrorBackend {
	case environment.MirrorS3:
		s3Mirror, err := mirror.NewS3(ctx, mirror.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    cfg.OutputDir,
		})
		if err != nil {
			return err
		}
		deps.Mirror = s3Mirror
	case environment.MirrorNone:
		deps.Mirror = mirror.Nop{}
	default:
		deps.Mirror = mirror.NewDisk(cfg.OutputDir)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: route.NewRouter(deps),
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Infow("Server running", "addr", srv.Addr, "storage", cfg.StorageBackend, "mirror", cfg.MirrorBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
