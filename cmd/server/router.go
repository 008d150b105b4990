package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sercanumit/bootcamp-112/internal/api"
	apiMiddleware "github.com/sercanumit/bootcamp-112/internal/api/middleware"
)

const requestTimeout = 30 * time.Second

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	limiter := apiMiddleware.NewRateLimiter(app.config.Server.RateLimit, app.config.Server.RateBurst)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	analysisHandler := api.NewAnalysisHandler(app.analyzer, app.logger)
	examHandler := api.NewExamHandler(app.performanceService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService)

	var pinger api.Pinger
	if app.db != nil {
		pinger = app.db
	}
	healthHandler := api.NewHealthHandler(pinger)

	r.Route("/api", func(r chi.Router) {
		// Stateless analysis endpoints (public)
		r.Group(func(r chi.Router) {
			r.Use(limiter.Limit)
			r.Post("/analysis", analysisHandler.Analyze)
			r.Post("/roadmap", analysisHandler.Roadmap)
			r.Post("/progress", analysisHandler.Progress)
		})

		// Protected routes, limited per user
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(limiter.Limit)

			r.Post("/exams", examHandler.RecordExam)
			r.Get("/exams", examHandler.ListExams)
			r.Get("/exams/progress", examHandler.CompareExams)
			r.Get("/exams/{id}/analysis", examHandler.AnalyzeExam)
			r.Get("/exams/{id}/roadmap", examHandler.ExamRoadmap)

			r.Get("/reviews/due", reviewHandler.DueReviews)
			r.Post("/reviews/{topic}", reviewHandler.SubmitReview)
		})
	})

	r.Get("/health", healthHandler.Health)

	return r
}
