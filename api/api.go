package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/footfallz/validation-server/pkg/httpserver"
	"github.com/footfallz/validation-server/pkg/requestid"
	"github.com/footfallz/validation-server/pkg/tools"
)

// Info identifies the service in descriptor and health responses.
type Info struct {
	Service string
	Version string
}

type server struct {
	log      *slog.Logger
	registry *tools.Registry
	info     Info
}

// New assembles the HTTP surface around the given tool registry.
func New(log *slog.Logger, registry *tools.Registry, info Info) http.Handler {
	s := &server{log: log, registry: registry, info: info}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestid.Header},
	}))
	r.Use(requestLogger(log))

	r.Get("/", s.descriptor)
	r.Get("/health", httpserver.HealthHandler(info.Service))

	r.Route("/validate", func(r chi.Router) {
		r.Post("/email", s.validateEmail)
		r.Post("/phone", s.validatePhone)
		r.Post("/url", s.validateURL)
		r.Post("/regex", s.validateRegex)
	})

	r.Post("/tools/{tool}", s.callTool)

	return r
}
