package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avoronova/deepsight/internal/model/catalog"
	"github.com/avoronova/deepsight/internal/model/survey"
	"github.com/avoronova/deepsight/internal/service/session"
	"github.com/avoronova/deepsight/internal/transport"
)

// ErrNoSession reports an export request for a conversation with no session.
var ErrNoSession = errors.New("no session to export")

const separator = "----------------------------------------"

// Exporter renders a session into a plain-text transcript document and hands
// it to the transport as a file attachment. Export never mutates session
// state; each invocation re-renders and re-sends.
type Exporter struct {
	store     *session.Store
	catalog   catalog.Catalog
	transport transport.Transport
	now       func() time.Time
}

// NewExporter wires the exporter to its collaborators.
func NewExporter(store *session.Store, cat catalog.Catalog, tr transport.Transport) *Exporter {
	return &Exporter{store: store, catalog: cat, transport: tr, now: time.Now}
}

// Export renders the transcript for conversationID and delivers it. The
// temporary file backing the attachment is removed once the send attempt
// finishes, whether or not delivery succeeded.
func (e *Exporter) Export(ctx context.Context, conversationID string) error {
	sess, ok := e.store.Get(conversationID)
	if !ok {
		return ErrNoSession
	}

	chainCfg, _ := e.catalog.ChainConfig(sess.Language, sess.Chain)
	ui := e.catalog.UI(sess.Language)

	doc := Render(sess, chainCfg, ui, e.now())

	file, err := os.CreateTemp("", "deepsight-"+uuid.NewString()+"-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	path := file.Name()
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Printf("[export] failed to remove %s: %v", path, err)
		}
	}()

	if _, err := file.WriteString(doc); err != nil {
		file.Close()
		return fmt.Errorf("failed to write export file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	if err := e.transport.SendFile(ctx, conversationID, path, chainCfg.Export.Caption); err != nil {
		return fmt.Errorf("failed to deliver export: %w", err)
	}

	log.Printf("[export] delivered transcript for id=%s (%d answer(s))", conversationID, len(sess.Answers))
	return nil
}

// Render produces the transcript document. Section order is fixed: title
// banner, date line, separator, one block per pair, analysis banner, analysis
// text or the unavailable placeholder, closing footer.
func Render(sess survey.Session, chainCfg catalog.Chain, ui catalog.UIStrings, now time.Time) string {
	labels := chainCfg.Export

	dateLayout := ui.DateLayout
	if dateLayout == "" {
		dateLayout = "2006-01-02 15:04"
	}

	var b strings.Builder
	b.WriteString(labels.Title + "\n")
	b.WriteString(now.Format(dateLayout) + "\n")
	b.WriteString(separator + "\n\n")

	for i, answer := range sess.Answers {
		fmt.Fprintf(&b, "%s %d: %s\n", labels.QuestionLabel, i+1, answer.Question)
		fmt.Fprintf(&b, "%s: %s\n", labels.AnswerLabel, answer.Text)
		b.WriteString(separator + "\n")
	}

	b.WriteString("\n" + labels.AnalysisTitle + "\n\n")
	if sess.HasSummary {
		b.WriteString(sess.Summary + "\n")
	} else {
		b.WriteString(labels.Unavailable + "\n")
	}

	b.WriteString("\n" + labels.Footer + "\n")
	return b.String()
}
