package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/starter/client"
	"github.com/vango-dev/starter/internal/config"
	"github.com/vango-dev/starter/internal/dev"
	"github.com/vango-dev/starter/internal/pages"
	"github.com/vango-dev/starter/pkg/middleware"
	"github.com/vango-dev/starter/pkg/render"
	"github.com/vango-dev/starter/pkg/routepath"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithPrometheusRegistry sets the registry metrics are registered with and
// served from. By default each server owns a fresh registry.
func WithPrometheusRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.promRegistry = reg }
}

// WithTracerProvider sets the tracer provider used when tracing is enabled.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) { s.tracerProvider = tp }
}

// WithProjectDir sets the directory relative paths are resolved against.
func WithProjectDir(dir string) Option {
	return func(s *Server) { s.projectDir = dir }
}

// Server serves the site's pages, fragments and static files.
type Server struct {
	config         *config.Config
	pages          *pages.Registry
	logger         *slog.Logger
	promRegistry   *prometheus.Registry
	tracerProvider trace.TracerProvider
	projectDir     string

	router   chi.Router
	renderer *render.Renderer
	metrics  *middleware.Metrics
	reload   *dev.ReloadServer
}

// New creates a server for the pages in reg.
func New(cfg *config.Config, reg *pages.Registry, opts ...Option) *Server {
	s := &Server{
		config:     cfg,
		pages:      reg,
		projectDir: ".",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracerProvider == nil {
		s.tracerProvider = otel.GetTracerProvider()
	}

	rc := render.RendererConfig{
		Logger:       s.logger,
		Lang:         cfg.Render.Lang,
		ClientScript: cfg.Render.ClientScript,
		Tracer:       s.tracerProvider.Tracer(render.TracerName),
	}
	if cfg.Metrics.Enabled {
		if s.promRegistry == nil {
			s.promRegistry = prometheus.NewRegistry()
			s.promRegistry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
		s.metrics = middleware.NewMetrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(s.promRegistry),
		)
		rc.Observer = s.metrics
	}
	if cfg.Server.LiveReload {
		s.reload = dev.NewReloadServer(s.logger)
		rc.LiveReloadPath = dev.ReloadPath
	}
	s.renderer = render.NewRenderer(rc)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(routepath.Redirect)
	if s.config.Tracing.Enabled {
		r.Use(middleware.Tracing(middleware.WithTracerProvider(s.tracerProvider)))
	}
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}

	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	}
	if s.reload != nil {
		r.Handle(dev.ReloadPath, s.reload)
	}

	if s.config.Render.ClientScript == client.Path {
		r.Handle(client.Path, client.Handler())
	}

	staticDir := s.resolve(s.config.Server.StaticDir)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	r.Route("/fragments", func(r chi.Router) {
		r.Get("/toast", s.handleToast)
		r.Post("/counter", s.handleCounter)
	})

	r.Get("/", s.handlePage)
	r.Get("/{page}", s.handlePage)
	r.NotFound(s.handleNotFound)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Renderer returns the renderer used for pages and fragments.
func (s *Server) Renderer() *render.Renderer {
	return s.renderer
}

func (s *Server) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.projectDir, p)
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
// In live-reload mode it also watches the static and watch directories.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	if s.reload != nil {
		w := dev.NewWatcher(dev.WatcherConfig{
			Paths:    dev.CollectWatchPaths(s.projectDir, s.config),
			Ignore:   s.config.Dev.Ignore,
			Debounce: s.config.Dev.Debounce,
			Logger:   s.logger,
		})
		w.OnChange(func(c dev.Change) {
			s.logger.Debug("file changed", "path", c.Path, "type", c.Type)
			s.reload.HandleChange(c)
		})
		w.OnError(s.reload.HandleError)
		go func() {
			if err := w.Start(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Warn("watcher stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String(), "live_reload", s.reload != nil)
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	if s.reload != nil {
		s.reload.Close()
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		return err
	}
	s.logger.Info("server shutdown complete")
	return nil
}
