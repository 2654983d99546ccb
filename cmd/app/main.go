package main

import (
	"AnatomyOverlay/internal/config"
	"AnatomyOverlay/pkg/log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()
	logger := log.NewLogger()
	if envErr != nil {
		if !os.IsNotExist(envErr) {
			logger.Fatalf("Error loading .env file: %v", envErr)
		}
		logger.Warn("No .env file found, using the process environment")
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMiddleware(),
		config.WithDatabase(),
		config.WithRedisServer(),
		config.WithS3Client(),
		config.WithGeminiClient(),
		config.WithChatGPTClient(),
		config.WithPartAPIClient(),
		config.WithLandmarkDetector(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
