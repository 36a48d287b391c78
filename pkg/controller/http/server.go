package http

import (
	"context"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/gt-helloworld/pkg/domain/interfaces"
	"github.com/m-mizutani/gt-helloworld/pkg/domain/model"
)

// config holds internal HTTP server configuration
type config struct {
	addr   string
	sentry bool
	now    func() time.Time
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithSentry enables panic and error reporting to Sentry.
// sentry.Init must be called before the server handles requests.
func WithSentry(enabled bool) Option {
	return func(c *config) {
		c.sentry = enabled
	}
}

// WithClock replaces the time source used for response timestamps
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	greetingUC interfaces.GreetingUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "localhost:3000",
		now:  time.Now,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if cfg.sentry {
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	router.Use(DefaultHeaders)

	h := &handler{
		greetingUC: greetingUC,
		now:        cfg.now,
	}

	// chi matches on RawPath when present, so the route is resolved here
	// from the decoded path instead. Every method is accepted.
	router.HandleFunc("/*", h.dispatch)
	router.NotFound(h.dispatch)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}

type handler struct {
	greetingUC interfaces.GreetingUseCase
	now        func() time.Time
}

// dispatch selects the response by exact match on the decoded request path
func (h *handler) dispatch(w http.ResponseWriter, r *http.Request) {
	switch model.ResolveRoute(r.URL.Path) {
	case model.RouteHome:
		h.handleHome(w, r)
	case model.RouteHealth:
		h.handleHealth(w, r)
	case model.RouteAPIHello:
		h.handleAPIHello(w, r)
	default:
		h.handleNotFound(w, r)
	}
}

// queryName returns the name query parameter, or nil when it is absent or empty
func queryName(r *http.Request) *string {
	name := r.URL.Query().Get("name")
	if name == "" {
		return nil
	}
	return &name
}
