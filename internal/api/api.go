// Package api exposes the frame calculator over HTTP.
//
// # Endpoints
//
// All JSON endpoints live under /api/v1:
//
//	POST   /api/v1/calc           design params -> cut sheet report
//	POST   /api/v1/tape           decimal values -> tape readings
//	GET    /api/v1/sizes          standard and custom size presets
//	POST   /api/v1/sizes          save a custom size preset
//	DELETE /api/v1/sizes/{name}   remove a custom size preset
//	POST   /api/v1/share          design -> share code and link
//	GET    /api/v1/share/{code}   share code -> design
//	GET    /api/v1/designs        list saved designs
//	POST   /api/v1/designs        save a design
//	GET    /api/v1/designs/{name} fetch a saved design
//	DELETE /api/v1/designs/{name} delete a saved design
//	GET    /api/v1/render/svg     face view drawing (image/svg+xml)
//	GET    /healthz               store liveness
//
// Errors are returned as {"error": message, "code": CODE} with a status
// mapped from the error code: unknown names are 404, invalid input is
// 400, store and render failures are 500.
//
// # Usage
//
//	srv := api.New(api.Config{Store: store, Logger: logger})
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// ListenAndServe blocks until the context is cancelled, then drains
// in-flight requests before returning.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/framewright/framewright/pkg/pipeline"
	"github.com/framewright/framewright/pkg/share"
	"github.com/framewright/framewright/pkg/workbench"
)

// DefaultAddr is the default listen address.
const DefaultAddr = ":8080"

// shutdownTimeout bounds the drain period after ctx cancellation.
const shutdownTimeout = 5 * time.Second

// Config collects the server's dependencies.
type Config struct {
	// Addr is the listen address. Defaults to DefaultAddr.
	Addr string

	// Store backs saved designs and custom sizes. Defaults to a
	// NullStore, which makes design lookups fail cleanly.
	Store workbench.Store

	// Logger receives request and lifecycle logs. Defaults to
	// log.Default().
	Logger *log.Logger

	// ShareBaseURL is the base for generated share links. Defaults to
	// share.DefaultBaseURL.
	ShareBaseURL string
}

// Server is the HTTP API server.
type Server struct {
	addr      string
	store     workbench.Store
	runner    *pipeline.Runner
	logger    *log.Logger
	shareBase string
}

// New creates a server from cfg, applying defaults for unset fields.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Store == nil {
		cfg.Store = workbench.NewNullStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.ShareBaseURL == "" {
		cfg.ShareBaseURL = share.DefaultBaseURL
	}
	return &Server{
		addr:      cfg.Addr,
		store:     cfg.Store,
		runner:    pipeline.NewRunner(cfg.Store, cfg.Logger),
		logger:    cfg.Logger,
		shareBase: cfg.ShareBaseURL,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/calc", s.handleCalc)
		r.Post("/tape", s.handleTape)

		r.Get("/sizes", s.handleListSizes)
		r.Post("/sizes", s.handleSaveSize)
		r.Delete("/sizes/{name}", s.handleDeleteSize)

		r.Post("/share", s.handleShareEncode)
		r.Get("/share/{code}", s.handleShareDecode)

		r.Route("/designs", func(r chi.Router) {
			r.Get("/", s.handleListDesigns)
			r.Post("/", s.handleSaveDesign)
			r.Get("/{name}", s.handleGetDesign)
			r.Delete("/{name}", s.handleDeleteDesign)
		})

		r.Get("/render/svg", s.handleRenderSVG)
	})

	return r
}

// ListenAndServe serves the API until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api listening", "addr", s.addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
