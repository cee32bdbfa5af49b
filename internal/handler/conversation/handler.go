package conversation

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/avoronova/deepsight/internal/service/flow"
	"github.com/avoronova/deepsight/pkg/utils"
)

// inboundMessage is the envelope read from the client socket.
type inboundMessage struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Action   string `json:"action,omitempty"`
	Language string `json:"language,omitempty"`
	Chain    string `json:"chain,omitempty"`
}

// Handler owns the per-conversation websocket endpoint. Each socket's read
// loop dispatches events to the engine one at a time, so a conversation's
// events are strictly ordered: a second answer cannot enter the engine before
// the first one, pacing delay included, has been fully handled. Conversations
// on different sockets proceed concurrently.
type Handler struct {
	engine   *flow.Engine
	hub      *Hub
	token    string
	upgrader websocket.Upgrader
}

// New creates the websocket conversation handler.
func New(engine *flow.Engine, hub *Hub, token string) *Handler {
	return &Handler{
		engine: engine,
		hub:    hub,
		token:  token,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{conversationID}", h.handleWebSocket)
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("token") != h.token {
		utils.RespondError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	conversationID := chi.URLParam(r, "conversationID")
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for id=%s: %v", conversationID, err)
		return
	}

	conn := h.hub.bind(conversationID, ws)
	defer func() {
		h.hub.release(conversationID, conn)
		ws.Close()
	}()

	log.Printf("[ws] conversation connected id=%s", conversationID)

	ctx := r.Context()
	for {
		var msg inboundMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read failed for id=%s: %v", conversationID, err)
			}
			return
		}

		switch msg.Type {
		case "start":
			h.engine.Start(ctx, conversationID)
		case "select":
			h.engine.Select(ctx, conversationID, msg.Language, msg.Chain)
		case "text":
			if cmd, ok := command(msg.Text); ok {
				h.dispatchCommand(ctx, conversationID, cmd)
				continue
			}
			h.engine.Answer(ctx, conversationID, msg.Text)
		case "button":
			h.engine.HandleButton(ctx, conversationID, msg.Action)
		case "import":
			if err := h.engine.ImportTranscript(ctx, conversationID, msg.Language, msg.Chain, msg.Text); err != nil {
				log.Printf("[ws] import rejected for id=%s: %v", conversationID, err)
			}
		default:
			log.Printf("[ws] unknown message type %q from id=%s", msg.Type, conversationID)
		}
	}
}

// command recognizes bot commands by their leading marker so they never reach
// the answer-acceptance path.
func command(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "/") {
		return "", false
	}
	cmd, _, _ := strings.Cut(trimmed, " ")
	return strings.ToLower(cmd), true
}

func (h *Handler) dispatchCommand(ctx context.Context, conversationID, cmd string) {
	switch cmd {
	case "/start":
		h.engine.Start(ctx, conversationID)
	case "/restart":
		h.engine.Restart(ctx, conversationID)
	case "/export":
		h.engine.Export(ctx, conversationID)
	default:
		// Unrecognized commands are ignored rather than recorded as answers.
		log.Printf("[ws] ignoring command %q from id=%s", cmd, conversationID)
	}
}
