package server

import (
	"fmt"
	"net/http"
	"time"

	"amy-custom/internal/auth"
	"amy-custom/internal/config"
	custommiddleware "amy-custom/internal/middleware"
	"amy-custom/internal/payment"
	"amy-custom/internal/service"
	"amy-custom/internal/store"
	"amy-custom/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize the catalog store from its seed
	catalog := newCatalog(cfg, logger)

	// Initialize collaborators
	gate := auth.NewStaticSecretGate(cfg.Admin.Secret)
	links := payment.NewLinkBuilder(cfg.Payment.PayPalHandle, cfg.Payment.WhatsAppNumber)
	widgets := payment.NewScriptLoader(cfg.Payment.SDKURL, logger)
	views := service.NewViewService(catalog, links, store.DefaultProfile(), cfg.Payment.ButtonID)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(views, widgets, cfg.Payment.ButtonID, logger)
	adminHandler := transport.NewAdminHandler(gate, views, logger)

	// Create admin session middleware
	adminMiddleware := custommiddleware.AdminAuthMiddleware(gate, logger)

	// Register routes
	catalogHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router, adminMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}

	return server
}

// newCatalog builds the in-memory catalog from the configured seed file,
// falling back to the built-in seed. Nothing in it survives the process.
func newCatalog(cfg *config.Config, logger *zap.Logger) store.CatalogStore {
	seed := store.DefaultSeed()

	if cfg.Catalog.SeedFile != "" {
		loaded, err := store.SeedFromFile(cfg.Catalog.SeedFile)
		if err != nil {
			logger.Warn("Failed to load seed file, using built-in seed",
				zap.String("path", cfg.Catalog.SeedFile),
				zap.Error(err),
			)
		} else {
			seed = loaded
		}
	}

	logger.Info("Catalog seeded", zap.Int("artworks", len(seed)))
	return store.NewCatalogStore(seed)
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")
	s.logger.Sync()
	return nil
}
