package parks

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sngm3741/park-finder/api/internal/parks/application"
)

const defaultRequestTimeout = 5 * time.Second

// Handler wires park and review HTTP endpoints to application services.
type Handler struct {
	logger         zerolog.Logger
	parkQueries    application.ParkQueryService
	parkCommands   application.ParkCommandService
	reviewQueries  application.ReviewQueryService
	reviewCommands application.ReviewCommandService
	timeout        time.Duration
	validate       *validator.Validate
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         zerolog.Logger
	ParkQueries    application.ParkQueryService
	ParkCommands   application.ParkCommandService
	ReviewQueries  application.ReviewQueryService
	ReviewCommands application.ReviewCommandService
	// RequestTimeout bounds the store work of a single request.
	RequestTimeout time.Duration
}

// NewHandler constructs the park/review handler set.
func NewHandler(cfg Config) *Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Handler{
		logger:         cfg.Logger.With().Str("handler", "parks").Logger(),
		parkQueries:    cfg.ParkQueries,
		parkCommands:   cfg.ParkCommands,
		reviewQueries:  cfg.ReviewQueries,
		reviewCommands: cfg.ReviewCommands,
		timeout:        timeout,
		validate:       validator.New(),
	}
}

// Register mounts the /api routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/parks", func(r chi.Router) {
		r.Get("/", h.parkListHandler())
		r.Post("/", h.parkCreateHandler())
		r.Get("/{park_id}", h.parkDetailHandler())
		r.Patch("/{park_id}", h.parkUpdateHandler())
		r.Delete("/{park_id}", h.parkDeleteHandler())
	})
	r.Route("/api/reviews", func(r chi.Router) {
		r.Get("/", h.reviewListHandler())
		r.Post("/", h.reviewCreateHandler())
		r.Get("/{park_id}", h.reviewsByParkHandler())
	})
}
