package conversation

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/avoronova/deepsight/internal/transport"
)

// ErrNotConnected reports a delivery attempt for a conversation without an
// open socket.
var ErrNotConnected = errors.New("conversation not connected")

// outgoingMessage is the envelope written to the client socket.
type outgoingMessage struct {
	Type      string             `json:"type"`
	Text      string             `json:"text,omitempty"`
	Prompt    string             `json:"prompt,omitempty"`
	Choices   []transport.Choice `json:"choices,omitempty"`
	File      *filePayload       `json:"file,omitempty"`
	Timestamp int64              `json:"timestamp"`
}

// filePayload carries an exported document inline, base64-encoded.
type filePayload struct {
	Name    string `json:"name"`
	Caption string `json:"caption,omitempty"`
	Data    string `json:"data"`
}

type wsConn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *wsConn) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(v)
}

// Hub tracks the one live socket per conversation id and implements the
// engine's Transport on top of it. A new socket for an id replaces the old
// one; deliveries to disconnected conversations fail and are logged by
// callers, never retried.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*wsConn
}

// NewHub bootstraps an empty connection registry.
func NewHub() *Hub {
	return &Hub{conns: make(map[string]*wsConn)}
}

func (h *Hub) bind(id string, ws *websocket.Conn) *wsConn {
	conn := &wsConn{ws: ws}

	h.mu.Lock()
	old := h.conns[id]
	h.conns[id] = conn
	h.mu.Unlock()

	if old != nil {
		old.ws.Close()
	}
	return conn
}

func (h *Hub) release(id string, conn *wsConn) {
	h.mu.Lock()
	if h.conns[id] == conn {
		delete(h.conns, id)
	}
	h.mu.Unlock()
}

func (h *Hub) deliver(id string, msg outgoingMessage) error {
	h.mu.RLock()
	conn := h.conns[id]
	h.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	msg.Timestamp = time.Now().UnixMilli()
	return conn.writeJSON(msg)
}

// SendText delivers a plain text message.
func (h *Hub) SendText(_ context.Context, conversationID, text string) error {
	return h.deliver(conversationID, outgoingMessage{Type: "text", Text: text})
}

// SendTyping delivers a typing indicator.
func (h *Hub) SendTyping(_ context.Context, conversationID string) error {
	return h.deliver(conversationID, outgoingMessage{Type: "typing"})
}

// SendFile delivers the file at path inline. The caller owns the file and its
// cleanup; nothing is retained here after the write.
func (h *Hub) SendFile(_ context.Context, conversationID, path, caption string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return h.deliver(conversationID, outgoingMessage{
		Type: "file",
		File: &filePayload{
			Name:    filepath.Base(path),
			Caption: caption,
			Data:    base64.StdEncoding.EncodeToString(data),
		},
	})
}

// SendChoices delivers a button prompt.
func (h *Hub) SendChoices(_ context.Context, conversationID, prompt string, choices []transport.Choice) error {
	return h.deliver(conversationID, outgoingMessage{Type: "choices", Prompt: prompt, Choices: choices})
}

// Close drops every live socket, typically during shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.conns {
		if err := conn.ws.Close(); err != nil {
			log.Printf("[ws] close failed for id=%s: %v", id, err)
		}
		delete(h.conns, id)
	}
}
