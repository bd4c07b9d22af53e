package main

import (
	"log"
	"net/http"

	"logistics-dashboard/internal/config"
	"logistics-dashboard/internal/database"
	"logistics-dashboard/internal/server"

	"github.com/go-chi/chi/v5"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Database initialized at %s", cfg.DBPath)

	if cfg.SeedOnStart {
		if err := database.Seed(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Println("Database seeded with demo dataset")
	}

	// Create router and register routes
	router := chi.NewRouter()
	server.NewHandlers(db, cfg.StaticDir).RegisterRoutes(router)

	// Create HTTP server with middleware
	handler := server.Chain(
		router,
		server.LoggingMiddleware,
		server.RecoveryMiddleware,
		server.CORSMiddleware,
		server.ContentTypeMiddleware,
		server.SecurityMiddleware,
	)

	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: handler,

		// Timeouts
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Handle server startup and graceful shutdown
	if err := server.HandleSignals(srv, cfg.ShutdownTimeout); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
