package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/aliraza-dev/foodatlas-services/api/internal/catalog/application"
	"github.com/aliraza-dev/foodatlas-services/api/internal/config"
	identityapp "github.com/aliraza-dev/foodatlas-services/api/internal/identity/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger        *log.Logger
	placeQueries  catalogapp.PlaceQueryService
	placeCommands catalogapp.PlaceCommandService
	auth          identityapp.AuthService
	policy        config.SearchPolicy
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger        *log.Logger
	PlaceQueries  catalogapp.PlaceQueryService
	PlaceCommands catalogapp.PlaceCommandService
	Auth          identityapp.AuthService
	Policy        config.SearchPolicy
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		placeQueries:  cfg.PlaceQueries,
		placeCommands: cfg.PlaceCommands,
		auth:          cfg.Auth,
		policy:        cfg.Policy,
	}
}

// Register mounts all public routes onto the router. Every /restaurants route
// requires a verified caller; signup and login stay open.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/signup", h.signupHandler())
	r.Post("/login", h.loginHandler())

	r.Route("/restaurants", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.placeSearchHandler())
		r.Get("/all", h.placeListAllHandler())
		r.Get("/suggestions", h.placeSuggestionsHandler())
		r.Post("/", h.placeCreateHandler())
		r.Get("/{id}", h.placeDetailHandler())
		r.Put("/{id}", h.placeUpdateHandler())
		r.Delete("/{id}", h.placeDeleteHandler())
	})
}
