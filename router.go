package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpSwagger "github.com/swaggo/http-swagger"
)

// routes wires middlewares and endpoints. The farmer-facing clients run on
// arbitrary hosts, so CORS stays wide open like the upstream deployment.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(a.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})
	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Get("/", a.handleRoot)
	r.Get("/test", a.handleTestDatabase)
	r.Get("/schema", a.handleSchema)

	r.Post("/profiles", a.handleCreateProfile)
	r.Get("/profiles", a.handleListProfiles)
	r.Post("/soiltests", a.handleCreateSoilTest)
	r.Get("/soiltests/summary", a.handleSoilSummary)
	r.Post("/observations", a.handleCreateObservation)
	r.Post("/analyze", a.handleAnalyze)

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", a.handleRegister)
		api.Post("/auth/login", a.handleLogin)

		api.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Get("/me", a.handleMe)
		})
	})

	return r
}
