package main

import (
	"fmt"
	"log"
	"os"

	"github.com/despensa/backend/config"
	httpDelivery "github.com/despensa/backend/internal/delivery/http"
	"github.com/despensa/backend/internal/infrastructure/sitemap"
	"github.com/despensa/backend/internal/infrastructure/tienda"
	"github.com/despensa/backend/internal/infrastructure/translate"
	"github.com/despensa/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Despensa Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Sitemap: %s (TTL %s)", cfg.Sitemap.URL, cfg.Sitemap.CacheTTL)

	// Initialize infrastructure dependencies
	sitemapCache := sitemap.NewCache(cfg.Sitemap.URL, cfg.Tienda.UserAgent, cfg.Sitemap.CachePath, cfg.Sitemap.CacheTTL)
	sitemapParser := sitemap.NewParser()
	productClient := tienda.NewClient(cfg.Tienda.UserAgent, cfg.Tienda.RequestDelay, cfg.Tienda.FetchTimeout)
	translator := translate.NewTranslator(cfg.Translate.APIURL, cfg.Translate.APIKey)

	if cfg.Translate.APIKey == "" {
		log.Printf("WARNING: translation API key not configured - only dictionary terms will translate")
	}

	// Initialize usecase layer
	extractor := usecase.NewCatalogExtractor(cfg.Tienda.ProductBaseURL)
	searchService := usecase.NewSearchService(
		sitemapCache,
		sitemapParser,
		translator,
		productClient,
		extractor,
		usecase.SearchServiceConfig{
			ResultsPerPage:      cfg.Search.ResultsPerPage,
			TargetLanguage:      cfg.Translate.TargetLanguage,
			DescriptionLanguage: cfg.Translate.DescriptionLanguage,
			Timeout:             cfg.Search.Timeout,
			Fetch: usecase.FetchPolicy{
				Concurrency: cfg.Tienda.Concurrency,
			},
		},
	)

	log.Printf("Search: results_per_page=%d, concurrency=%d, request_delay=%s",
		cfg.Search.ResultsPerPage,
		cfg.Tienda.Concurrency,
		cfg.Tienda.RequestDelay)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
