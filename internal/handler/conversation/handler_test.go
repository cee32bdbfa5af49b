package conversation

import (
	"context"
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/avoronova/deepsight/internal/config"
	"github.com/avoronova/deepsight/internal/model/catalog"
	"github.com/avoronova/deepsight/internal/model/survey"
	"github.com/avoronova/deepsight/internal/service/export"
	"github.com/avoronova/deepsight/internal/service/flow"
	"github.com/avoronova/deepsight/internal/service/session"
)

type stubSummarizer struct{}

func (stubSummarizer) Generate(_ context.Context, _ []survey.QAPair, _, _ string) string {
	return "stub analysis"
}

func newTestServer(t *testing.T) (*httptest.Server, *session.Store) {
	t.Helper()

	cat := catalog.NewMemoryCatalog(catalog.Seed())
	store := session.NewStore(0, 0)
	hub := NewHub()
	t.Cleanup(hub.Close)

	exporter := export.NewExporter(store, cat, hub)
	engine := flow.NewEngine(store, cat, stubSummarizer{}, exporter, hub, config.FlowConfig{AnswerMaxLen: 4000})

	r := chi.NewRouter()
	New(engine, hub, "secret").RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func dial(t *testing.T, srv *httptest.Server, id, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + id + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial err: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) outgoingMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg outgoingMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read err: %v", err)
	}
	return msg
}

func TestWebSocketRejectsBadToken(t *testing.T) {
	srv, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/conv-1?token=wrong"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected handshake failure for bad token")
	}
	if resp == nil || resp.StatusCode != 401 {
		t.Fatalf("expected 401, got %+v", resp)
	}
}

func TestConversationRunsEndToEnd(t *testing.T) {
	srv, store := newTestServer(t)
	conn := dial(t, srv, "conv-1", "secret")

	send := func(msg inboundMessage) {
		t.Helper()
		if err := conn.WriteJSON(msg); err != nil {
			t.Fatalf("write err: %v", err)
		}
	}

	// Start: intro text, then language choices.
	send(inboundMessage{Type: "start"})
	if msg := readEnvelope(t, conn); msg.Type != "text" {
		t.Fatalf("expected intro text, got %+v", msg)
	}
	msg := readEnvelope(t, conn)
	if msg.Type != "choices" || len(msg.Choices) != 2 {
		t.Fatalf("expected 2 language choices, got %+v", msg)
	}

	// Language with two chains: chain selection next.
	send(inboundMessage{Type: "button", Action: "lang:ru"})
	msg = readEnvelope(t, conn)
	if msg.Type != "choices" || len(msg.Choices) != 2 {
		t.Fatalf("expected 2 chain choices, got %+v", msg)
	}

	// Chain picked: chain intro, then the first question.
	send(inboundMessage{Type: "button", Action: "chain:ru:self-discovery"})
	if msg = readEnvelope(t, conn); msg.Type != "text" {
		t.Fatalf("expected chain intro, got %+v", msg)
	}
	msg = readEnvelope(t, conn)
	if msg.Type != "text" || !strings.Contains(msg.Text, "Вопрос 1 из 5") {
		t.Fatalf("expected first question prompt, got %+v", msg)
	}

	// Commands never reach the answer path.
	send(inboundMessage{Type: "text", Text: "/help"})

	// Answer all five questions.
	for i := 2; i <= 5; i++ {
		send(inboundMessage{Type: "text", Text: "ответ"})
		msg = readEnvelope(t, conn)
		if msg.Type != "text" || !strings.Contains(msg.Text, "Вопрос ") {
			t.Fatalf("expected question %d prompt, got %+v", i, msg)
		}
	}
	send(inboundMessage{Type: "text", Text: "последний ответ"})

	// Completion sequence: please-wait, typing, analysis, congrats, choices.
	if msg = readEnvelope(t, conn); msg.Type != "text" {
		t.Fatalf("expected please-wait, got %+v", msg)
	}
	if msg = readEnvelope(t, conn); msg.Type != "typing" {
		t.Fatalf("expected typing indicator, got %+v", msg)
	}
	msg = readEnvelope(t, conn)
	if msg.Type != "text" || !strings.Contains(msg.Text, "stub analysis") {
		t.Fatalf("expected analysis text, got %+v", msg)
	}
	if msg = readEnvelope(t, conn); msg.Type != "text" {
		t.Fatalf("expected congrats, got %+v", msg)
	}
	if msg = readEnvelope(t, conn); msg.Type != "choices" {
		t.Fatalf("expected export/restart choices, got %+v", msg)
	}

	sess, ok := store.Get("conv-1")
	if !ok || sess.Status() != survey.StatusCompleted {
		t.Fatalf("expected completed session, got %+v ok=%v", sess, ok)
	}
	if len(sess.Answers) != 5 {
		t.Fatalf("expected 5 answers, got %d", len(sess.Answers))
	}

	// Export delivers the rendered document inline.
	send(inboundMessage{Type: "button", Action: flow.ActionExport})
	msg = readEnvelope(t, conn)
	if msg.Type != "file" || msg.File == nil {
		t.Fatalf("expected file envelope, got %+v", msg)
	}
	data, err := base64.StdEncoding.DecodeString(msg.File.Data)
	if err != nil {
		t.Fatalf("file payload not base64: %v", err)
	}
	if !strings.Contains(string(data), "stub analysis") {
		t.Fatalf("exported document missing analysis:\n%s", data)
	}
}
