package main

import (
	netHttp "net/http"

	"trainings-module/config"
	"trainings-module/http"
	"trainings-module/logger"
	"trainings-module/services"
	"trainings-module/storage"
	"trainings-module/store"

	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize persistence backend
	slot, err := openSlot()
	if err != nil {
		logger.Fatal("Error initializing storage: %v", err)
	}

	trainings := store.New(slot)
	enrollments := store.NewEnrollmentStore(slot)

	// Initialize Kafka producer (non-fatal, disabled without brokers)
	services.InitProducer()

	// Setup routes
	mux := http.SetupRoutes(slot, trainings, enrollments)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting on %s", config.AppConfig.ListenAddr)
		if err := netHttp.ListenAndServe(config.AppConfig.ListenAddr, mux); err != nil {
			logger.Fatal("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	logger.Info("Shutdown signal received, closing Kafka producer...")

	// Close Kafka producer gracefully
	if err := services.Close(); err != nil {
		logger.Error("Error closing Kafka producer: %v", err)
	}

	logger.Info("Server shutdown complete")
}

// openSlot picks the configured persistence backend.
func openSlot() (storage.Slot, error) {
	if config.AppConfig.StoreBackend == "postgres" {
		return storage.NewPostgresSlot(config.GetDBConnString())
	}
	return storage.NewFileSlot(config.AppConfig.DataDir)
}
