package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/nvoronova/bookshelf-backend/internal/api/handlers"
	"github.com/nvoronova/bookshelf-backend/internal/auth"
	"github.com/nvoronova/bookshelf-backend/internal/config"
	"github.com/nvoronova/bookshelf-backend/internal/metrics"
	"github.com/nvoronova/bookshelf-backend/internal/middleware"
	"github.com/nvoronova/bookshelf-backend/internal/services"
)

type RouterDeps struct {
	Cfg       config.Config
	TM        *auth.TokenManager
	UserSvc   *services.UserService
	BookSvc   *services.BookService
	ReviewSvc *services.ReviewService
	ItemSvc   *services.ItemService
	JobSvc    *services.JobService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authn := middleware.NewAuthenticator(d.TM, d.UserSvc)

	books := handlers.NewBookHandler(d.BookSvc)
	reviews := handlers.NewReviewHandler(d.ReviewSvc)
	items := handlers.NewItemHandler(d.ItemSvc)
	users := handlers.NewUserHandler(d.UserSvc)
	jobs := handlers.NewJobHandler(d.JobSvc)
	login := handlers.NewLoginHandler(d.UserSvc, d.TM)

	r.Route("/login", func(r chi.Router) {
		r.Post("/access-token", login.AccessToken)
		r.With(authn.Require).Post("/test-token", login.TestToken)
	})

	r.Route("/books", func(r chi.Router) {
		r.Post("/", books.Create)
		r.Get("/", books.List)
		r.Get("/{id}", books.Get)
		r.Patch("/{id}", books.Patch)
		r.Delete("/{id}", books.Delete)
		r.Post("/{id}/reviews", reviews.Create)
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", reviews.List)
		r.Get("/{id}", reviews.Get)
		r.Patch("/{id}", reviews.Patch)
		r.Delete("/{id}", reviews.Delete)
	})

	r.Route("/items", func(r chi.Router) {
		r.Use(authn.Require)
		r.Post("/", items.Create)
		r.Get("/", items.List)
		r.Get("/{id}", items.Get)
		r.Patch("/{id}", items.Patch)
		r.Delete("/{id}", items.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(authn.Require, middleware.RequireRole("admin"))
		r.Post("/", users.Create)
		r.Get("/", users.List)
		r.Get("/{id}", users.Get)
		r.Patch("/{id}", users.Patch)
		r.Delete("/{id}", users.Delete)
	})

	r.Route("/jobs", func(r chi.Router) {
		r.Post("/", jobs.Create)
		r.Get("/", jobs.List)
		r.Get("/{id}", jobs.Get)
	})

	return r
}
