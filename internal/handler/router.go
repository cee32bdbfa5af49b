package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avoronova/deepsight/internal/handler/conversation"
	"github.com/avoronova/deepsight/internal/handler/survey"
	middlewarePkg "github.com/avoronova/deepsight/internal/middleware"
	"github.com/avoronova/deepsight/internal/model/catalog"
	"github.com/avoronova/deepsight/internal/service/flow"
	"github.com/avoronova/deepsight/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cat catalog.Catalog, engine *flow.Engine, hub *conversation.Hub, botToken string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	surveyHandler := survey.New(cat, engine)
	conversationHandler := conversation.New(engine, hub, botToken)

	r.Route("/api", func(api chi.Router) {
		api.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		surveyHandler.RegisterRoutes(api)
		conversationHandler.RegisterRoutes(api)
	})

	return r
}
