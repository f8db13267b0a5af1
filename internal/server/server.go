package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Jauphraux/SoBApp/internal/catalog"
	"github.com/Jauphraux/SoBApp/internal/character"
	"github.com/Jauphraux/SoBApp/internal/database"
	"github.com/Jauphraux/SoBApp/internal/handler"
	"github.com/Jauphraux/SoBApp/internal/inventory"
	"github.com/Jauphraux/SoBApp/internal/metrics"
)

// Options configures the HTTP listener and its security middleware
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Detector       DetectorConfig
}

// Services are the application services exposed over HTTP
type Services struct {
	Catalog   catalog.Service
	Character character.Service
	Inventory inventory.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services) *Server {
	if opts.Detector == (DetectorConfig{}) {
		opts.Detector = DefaultDetectorConfig()
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the middleware stack and every route.
// Middleware executes in the order added, outermost first.
func NewRouter(opts Options, dbPool database.Pool, svc Services) http.Handler {
	detector := NewSuspiciousActivityDetectorWithConfig(opts.Detector)

	r := chi.NewRouter()
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool, svc.Catalog))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	catalogHandler := handler.NewCatalogHandler(svc.Catalog)
	characterHandler := handler.NewCharacterHandler(svc.Character)
	inventoryHandler := handler.NewInventoryHandler(svc.Inventory)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/items", catalogHandler.HandleListItems)
			r.Post("/items", catalogHandler.HandleCreateItem)
			r.Get("/items/{id}", catalogHandler.HandleGetItem)
			r.Put("/items/{id}", catalogHandler.HandleUpdateItem)
			r.Get("/classes", catalogHandler.HandleListClasses)
			r.Get("/cache/stats", catalogHandler.HandleCacheStats)
		})

		r.Route("/stashes", func(r chi.Router) {
			r.Get("/", inventoryHandler.HandleListStashes)
			r.Post("/", inventoryHandler.HandleCreateStash)
		})

		r.Route("/characters", func(r chi.Router) {
			r.Get("/", characterHandler.HandleList)
			r.Post("/", characterHandler.HandleCreate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", characterHandler.HandleGetSheet)
				r.Delete("/", characterHandler.HandleDelete)

				r.Post("/health", characterHandler.HandleAdjust(character.CounterHealth))
				r.Post("/sanity", characterHandler.HandleAdjust(character.CounterSanity))
				r.Post("/dark-stone", characterHandler.HandleAdjust(character.CounterDarkStone))
				r.Post("/gold", characterHandler.HandleAdjust(character.CounterGold))
				r.Post("/experience", characterHandler.HandleAddExperience)
				r.Post("/level-up", characterHandler.HandleLevelUp)
				r.Put("/attributes", characterHandler.HandleUpdateAttributes)

				r.Post("/skills", characterHandler.HandleAddSkill)
				r.Post("/skills/{skillID}/upgrade", characterHandler.HandleUpgradeSkill)
				r.Delete("/skills/{skillID}", characterHandler.HandleDeleteSkill)

				r.Get("/inventory", inventoryHandler.HandleGetInventory)
				r.Post("/items", inventoryHandler.HandleAddItem)
				r.Route("/items/{itemID}", func(r chi.Router) {
					r.Delete("/", inventoryHandler.HandleDeleteItem)
					r.Post("/toggle-equip", inventoryHandler.HandleToggleEquip)
					r.Post("/move", inventoryHandler.HandleMoveItem)
					r.Post("/sell", inventoryHandler.HandleSellItem)
					r.Post("/use-as-container", inventoryHandler.HandleUseAsContainer)
				})

				r.Get("/storage", inventoryHandler.HandleGetStorage)
				r.Post("/dark-stone/store", inventoryHandler.HandleStoreDarkStone)
				r.Post("/dark-stone/retrieve", inventoryHandler.HandleRetrieveDarkStone)
			})
		})
	})

	return r
}

// Start listens until Stop is called. A graceful stop is not an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for in-process tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
