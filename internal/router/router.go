package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tsmithofficiating/rules-backend/internal/handlers"
	"github.com/tsmithofficiating/rules-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(middleware.DebugMode)

	ph := handlers.NewPageHandlers(deps)
	lh := handlers.NewLookupHandlers(deps)
	qh := handlers.NewQAHandlers(deps)

	r.Mount("/", ph.PageRoutes())
	r.Mount("/api/lookup", lh.LookupRoutes())
	r.Mount("/api/qa", qh.QARoutes())
	return r
}
