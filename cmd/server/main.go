package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/textract"
	"github.com/joho/godotenv"

	"github.com/choace0427/brightspeed-ai-backend/contract"
	"github.com/choace0427/brightspeed-ai-backend/infrastructure/httpserver"
	"github.com/choace0427/brightspeed-ai-backend/infrastructure/pdfsplit"
	"github.com/choace0427/brightspeed-ai-backend/infrastructure/storage"
	textractbackend "github.com/choace0427/brightspeed-ai-backend/infrastructure/textract"
	"github.com/choace0427/brightspeed-ai-backend/internal"
	"github.com/choace0427/brightspeed-ai-backend/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns.
func run() (int, error) {
	// 1. Configuration & Logger
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		return exitConfig, fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	bucket, err := bucketName(config.BaseURL)
	if err != nil {
		return exitConfig, err
	}

	// 2. AWS clients
	sess, err := session.NewSession(&aws.Config{Region: aws.String(config.AWSRegion)})
	if err != nil {
		return exitRuntime, fmt.Errorf("aws session: %w", err)
	}

	// 3. Infrastructure
	presigner := storage.NewS3Presigner(s3.New(sess), bucket)
	store := storage.NewStore(config.BaseURL, presigner, logger)
	backend := textractbackend.NewBackend(textract.New(sess), bucket, logger)
	poller := textractbackend.NewJobPoller(backend, logger,
		config.MaxPollAttempts, config.PollDelay,
		config.MaxRetryAttempts, config.RetryBaseDelay)
	splitter := pdfsplit.NewSplitter()

	// 4. Services
	uploadService := services.NewUploadService(store, splitter, logger, config.PresignedURLExpiry)
	analyzerService := services.NewAnalyzerService(backend, poller, logger, services.AnalyzerConfig{
		StaggerDelay:     config.StaggerDelay,
		FinanceAdapter:   contract.AdapterConfig{ID: config.FinanceAdapterID, Version: config.FinanceAdapterVersion},
		MaxRetryAttempts: config.MaxRetryAttempts,
		RetryBaseDelay:   config.RetryBaseDelay,
	})
	identityService := services.NewIdentityService(backend, uploadService,
		contract.AdapterConfig{ID: config.IdentityAdapterID, Version: config.IdentityAdapterVersion}, logger)

	// 5. HTTP server
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := httpserver.New(addr, config.MaxUploadBytes, uploadService, analyzerService, identityService, logger)

	// 6. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	// The execution blocks here until either a signal is received or the server crashes.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	// In-flight analysis requests get a grace period to finish.
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

// bucketName extracts the bucket from the storage base URL, e.g.
// "s3://ocr-demo-bucket" gives "ocr-demo-bucket".
func bucketName(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("invalid STORAGE_BASE_URL %q", baseURL)
	}
	return parsed.Host, nil
}
