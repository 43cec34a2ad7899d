package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/crypto-interop/internal/api/rest/v1"
	"github.com/MGTheTrain/crypto-interop/internal/app"
	"github.com/MGTheTrain/crypto-interop/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-interop/internal/domain/keys"
	"github.com/MGTheTrain/crypto-interop/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-interop/internal/infrastructure/persistence"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/config"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// An empty path runs on defaults and CRYPTO_INTEROP_* variables
	configPath := os.Getenv("CONFIG_PATH")

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.closeStore(); err != nil {
			log.Warn("Failed to close key pair store: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	closeStore     func() error
	aes            cryptoalg.AESProcessor
	hasher         cryptoalg.Hasher
	rsa            cryptoalg.RSAProcessor
	keyPairService keys.KeyPairService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	keyPairRepo, closeStore, err := persistence.OpenKeyPairRepository(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open key pair store: %w", err)
	}

	fail := func(err error) (*appDependencies, error) {
		_ = closeStore()
		return nil, err
	}

	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return fail(fmt.Errorf("failed to create AES processor: %w", err))
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return fail(fmt.Errorf("failed to create RSA processor: %w", err))
	}

	keyPairService, err := app.NewKeyPairService(keyPairRepo, rsaProcessor, log)
	if err != nil {
		return fail(fmt.Errorf("failed to create key pair service: %w", err))
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		closeStore:     closeStore,
		aes:            aesProcessor,
		hasher:         cryptography.NewMD5Hasher(),
		rsa:            rsaProcessor,
		keyPairService: keyPairService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  cfg.CORS.AllowMethods,
		AllowHeaders:  append(cfg.CORS.AllowHeaders, v1.UserIDHeader),
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.aes, deps.hasher, deps.rsa, deps.keyPairService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
