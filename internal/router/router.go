package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-api/internal/handler"
	mw "portfolio-api/internal/middleware"
)

func New(subH *handler.SubmissionHandler, healthH *handler.HealthHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed."}`))
	})

	r.Get("/healthz", healthH.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/submit", subH.Submit)
		r.Get("/list", subH.List)
	})

	return r
}
