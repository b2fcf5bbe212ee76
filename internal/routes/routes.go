package routes

import (
	"net/http"

	"github.com/AnshRaj112/mealtracker-backend/internal/handlers"
	"github.com/AnshRaj112/mealtracker-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Options carries everything the router needs. AuthLimiter is optional and
// guards signup and login when set.
type Options struct {
	Users          *handlers.UserHandler
	Meals          *handlers.MealHandler
	Upload         *handlers.UploadHandler
	Authenticator  middleware.Authenticator
	AuthLimiter    func(http.Handler) http.Handler
	AllowedOrigins []string
	Production     bool
	Log            zerolog.Logger
}

// NewRouter builds the chi router with the global middleware stack, the
// health check and the API routes.
func NewRouter(opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.AllowedOrigins))

	if opts.Production {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	SetupRoutes(r, opts)
	return r
}

func SetupRoutes(r chi.Router, opts Options) {
	requireAuth := middleware.RequireAuth(opts.Authenticator, opts.Log)

	r.Route("/api/meals", func(r chi.Router) {
		r.Get("/", opts.Meals.ListMeals)
		r.Get("/{id}", opts.Meals.GetMeal)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", opts.Meals.CreateMeal)
			r.Post("/picture", opts.Upload.UploadPicture)
			r.Patch("/{id}", opts.Meals.UpdateMeal)
			r.Delete("/{id}", opts.Meals.DeleteMeal)
		})
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Get("/meals/{id}", opts.Meals.ListUserMeals)

		r.Group(func(r chi.Router) {
			if opts.AuthLimiter != nil {
				r.Use(opts.AuthLimiter)
			}
			r.Post("/signup", opts.Users.Signup)
			r.Post("/login", opts.Users.Login)
		})
	})
}
