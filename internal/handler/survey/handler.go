package survey

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avoronova/deepsight/internal/model/catalog"
	"github.com/avoronova/deepsight/internal/service/flow"
	"github.com/avoronova/deepsight/internal/service/transcript"
	"github.com/avoronova/deepsight/pkg/utils"
)

// Handler serves the REST side of the survey API: catalog discovery for
// selection UIs and the pre-filled transcript import path.
type Handler struct {
	catalog catalog.Catalog
	engine  *flow.Engine
}

// New creates the survey REST handler.
func New(cat catalog.Catalog, engine *flow.Engine) *Handler {
	return &Handler{catalog: cat, engine: engine}
}

// RegisterRoutes mounts the survey routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/catalog", h.handleCatalog)
	r.Post("/conversations/{conversationID}/import", h.handleImport)
}

// handleCatalog lists languages and their chains for selection UIs.
func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"defaultLanguage": catalog.DefaultLanguage,
		"languages":       h.catalog.Languages(),
	})
}

// handleImport accepts a pre-filled transcript document. Parse results and
// the subsequent analysis are delivered over the conversation's socket; the
// HTTP response only acknowledges intake.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	var payload struct {
		Language string `json:"language"`
		Chain    string `json:"chain"`
		Text     string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Text == "" {
		utils.RespondError(w, http.StatusBadRequest, "text is required")
		return
	}

	err := h.engine.ImportTranscript(r.Context(), conversationID, payload.Language, payload.Chain, payload.Text)
	switch {
	case errors.Is(err, transcript.ErrNoPairs):
		utils.RespondError(w, http.StatusBadRequest, "no question/answer pairs recognized")
	case errors.Is(err, flow.ErrUnknownChain):
		utils.RespondError(w, http.StatusBadRequest, "unknown language or chain")
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, "import failed")
	default:
		utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
	}
}
