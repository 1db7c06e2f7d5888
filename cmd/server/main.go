package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/config"
	httpDelivery "github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/delivery/http"
	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/infrastructure/gemini"
	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/infrastructure/store"
	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Samsung Phone Advisor v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store Type: %s", cfg.Store.Type)

	// Initialize the catalog store
	repo, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	// Initialize the generation chain: primary model, then fallback model.
	// Without an API key the chain is empty and answers come from templates.
	var generators []domain.Generator
	if cfg.Gemini.APIKey != "" {
		primary := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.Timeout)
		fallback := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.FallbackModel, cfg.Gemini.Timeout)
		if cfg.Server.Environment == "development" {
			primary.SetDebug(true)
			fallback.SetDebug(true)
		}
		generators = []domain.Generator{primary, fallback}
		log.Printf("Gemini configured: %s, fallback %s (key: %s...)",
			cfg.Gemini.Model, cfg.Gemini.FallbackModel, cfg.Gemini.APIKey[:min(8, len(cfg.Gemini.APIKey))])
	} else {
		log.Printf("WARNING: Gemini API key not configured - answers will use deterministic templates only")
	}

	// Initialize usecase layer
	advisor := usecase.NewAdvisorService(
		repo,
		generators,
		usecase.AdvisorConfig{
			GeneratorTimeout:   cfg.Gemini.Timeout,
			EnableDebugLogging: cfg.Advisor.EnableDebugLogging || cfg.Server.Environment == "development",
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(advisor, repo)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildStore constructs the configured catalog store, seeding it with the
// sample catalog when empty.
func buildStore(cfg *config.Config) (domain.PhoneRepository, error) {
	switch cfg.Store.Type {
	case "postgres":
		db, err := store.OpenDB(cfg.Store.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}

		pg := store.NewPostgresStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		if err := pg.SeedIfEmpty(ctx); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}

		count, err := pg.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count catalog: %w", err)
		}
		log.Printf("Postgres catalog ready: %d phones", count)
		return pg, nil

	default:
		mem := store.NewSeededMemoryStore()
		count, _ := mem.Count(context.Background())
		log.Printf("In-memory catalog ready: %d phones", count)
		return mem, nil
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
