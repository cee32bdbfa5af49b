package flow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/avoronova/deepsight/internal/config"
	"github.com/avoronova/deepsight/internal/model/catalog"
	"github.com/avoronova/deepsight/internal/model/survey"
	"github.com/avoronova/deepsight/internal/service/export"
	"github.com/avoronova/deepsight/internal/service/session"
	"github.com/avoronova/deepsight/internal/service/transcript"
	"github.com/avoronova/deepsight/internal/transport"
)

// Button actions echoed back by the transport in button-click events.
const (
	ActionExport  = "export"
	ActionRestart = "restart"
	// Language and chain selections carry their target in the action value,
	// e.g. "lang:ru" and "chain:ru:self-discovery", so the selection phase
	// needs no session at all.
	actionLangPrefix  = "lang:"
	actionChainPrefix = "chain:"
)

// ErrUnknownChain rejects an import request naming a chain the catalog does
// not have.
var ErrUnknownChain = errors.New("unknown chain")

// Summarizer produces analysis text for a completed transcript. It never
// fails: degraded results arrive as fallback text.
type Summarizer interface {
	Generate(ctx context.Context, pairs []survey.QAPair, language, chainID string) string
}

// Exporter renders and delivers a session transcript.
type Exporter interface {
	Export(ctx context.Context, conversationID string) error
}

// Engine advances per-conversation survey state in response to transport
// events. All sends are best-effort: a delivery failure is logged and never
// rolls back a transition already committed to the store.
type Engine struct {
	store      *session.Store
	catalog    catalog.Catalog
	summarizer Summarizer
	exporter   Exporter
	transport  transport.Transport

	answerMaxLen int
	pacingDelay  time.Duration
}

// NewEngine wires the flow engine to its collaborators.
func NewEngine(store *session.Store, cat catalog.Catalog, summarizer Summarizer, exporter Exporter, tr transport.Transport, cfg config.FlowConfig) *Engine {
	maxLen := cfg.AnswerMaxLen
	if maxLen <= 0 {
		maxLen = 4000
	}
	return &Engine{
		store:        store,
		catalog:      cat,
		summarizer:   summarizer,
		exporter:     exporter,
		transport:    tr,
		answerMaxLen: maxLen,
		pacingDelay:  cfg.PacingDelay,
	}
}

// Start greets the user and presents the language selection. Any existing
// session for the conversation is discarded first, so Start doubles as the
// reset entry point.
func (e *Engine) Start(ctx context.Context, id string) {
	e.store.Clear(id)

	ui := e.catalog.UI(catalog.DefaultLanguage)
	languages := e.catalog.Languages()

	choices := make([]transport.Choice, 0, len(languages))
	for _, lang := range languages {
		choices = append(choices, transport.Choice{Action: actionLangPrefix + lang.Code, Label: lang.Label})
	}

	e.send(ctx, id, ui.Intro)
	e.sendChoices(ctx, id, ui.ChooseLanguage, choices)
}

// Select fixes the language and chain for a conversation and asks the first
// question. With an empty chainID and several chains available it presents the
// chain selection instead; a language with exactly one chain skips that step.
func (e *Engine) Select(ctx context.Context, id, language, chainID string) {
	lang, ok := e.catalog.Language(language)
	if !ok {
		lang, ok = e.catalog.Language(catalog.DefaultLanguage)
		if !ok {
			log.Printf("[flow] catalog has no default language, dropping select for id=%s", id)
			return
		}
	}

	if chainID == "" {
		if len(lang.Chains) != 1 {
			choices := make([]transport.Choice, 0, len(lang.Chains))
			for _, chain := range lang.Chains {
				choices = append(choices, transport.Choice{
					Action: actionChainPrefix + lang.Code + ":" + chain.ID,
					Label:  chain.Title,
				})
			}
			e.sendChoices(ctx, id, lang.UI.ChooseChain, choices)
			return
		}
		chainID = lang.Chains[0].ID
	}

	chainCfg, ok := e.catalog.ChainConfig(lang.Code, chainID)
	if !ok {
		log.Printf("[flow] unknown chain %s/%s for id=%s, re-presenting selection", lang.Code, chainID, id)
		e.Start(ctx, id)
		return
	}

	sess := e.store.Create(id, lang.Code, chainCfg.ID, len(chainCfg.Questions))
	log.Printf("[flow] session started id=%s language=%s chain=%s questions=%d", id, lang.Code, chainCfg.ID, sess.QuestionCount)

	e.send(ctx, id, chainCfg.Intro)
	e.sendQuestion(ctx, id, lang.UI, chainCfg, sess.Cursor)
}

// Answer processes one free-text answer. Rejections (no session, finished
// session, over-long text) leave the session untouched.
func (e *Engine) Answer(ctx context.Context, id, text string) {
	sess, ok := e.store.Get(id)
	if !ok {
		e.send(ctx, id, e.catalog.UI(catalog.DefaultLanguage).SessionExpired)
		return
	}

	e.store.Touch(id)
	ui := e.catalog.UI(sess.Language)

	switch sess.Status() {
	case survey.StatusCompleted:
		e.send(ctx, id, ui.CompletedHint)
		e.sendCompletionChoices(ctx, id, ui)
		return
	case survey.StatusSummarizing:
		// Transient while a summarization is in flight for this id; the text
		// cannot be attached to any question.
		log.Printf("[flow] dropping answer for id=%s received while summarizing", id)
		return
	}

	chainCfg, ok := e.catalog.ChainConfig(sess.Language, sess.Chain)
	if !ok {
		log.Printf("[flow] session id=%s references missing chain %s/%s, clearing", id, sess.Language, sess.Chain)
		e.store.Clear(id)
		e.send(ctx, id, ui.SessionExpired)
		return
	}

	if utf8.RuneCountInString(text) > e.answerMaxLen {
		e.send(ctx, id, fmt.Sprintf(ui.TooLongFormat, e.answerMaxLen))
		e.sendQuestion(ctx, id, ui, chainCfg, sess.Cursor)
		return
	}

	// Empty-after-trim answers are accepted on purpose: skipping a question
	// is the user's call.
	answer := strings.TrimSpace(text)
	question := chainCfg.Questions[sess.Cursor]

	updated, err := e.store.AppendAnswer(id, question, answer)
	if err != nil {
		log.Printf("[flow] failed to record answer for id=%s: %v", id, err)
		e.send(ctx, id, ui.SessionExpired)
		return
	}

	if updated.Cursor < updated.QuestionCount {
		e.pace(ctx)
		e.sendQuestion(ctx, id, ui, chainCfg, updated.Cursor)
		return
	}

	e.summarize(ctx, id, updated, ui, chainCfg)
}

// Export re-renders and re-sends the transcript document. It never mutates
// session state and may be invoked repeatedly.
func (e *Engine) Export(ctx context.Context, id string) {
	err := e.exporter.Export(ctx, id)
	if err == nil {
		return
	}
	if errors.Is(err, export.ErrNoSession) {
		lang := catalog.DefaultLanguage
		if sess, ok := e.store.Get(id); ok {
			lang = sess.Language
		}
		e.send(ctx, id, e.catalog.UI(lang).NothingToExport)
		return
	}
	log.Printf("[flow] export failed for id=%s: %v", id, err)
}

// Restart discards the session and re-enters the start transition.
func (e *Engine) Restart(ctx context.Context, id string) {
	e.store.Clear(id)
	e.Start(ctx, id)
}

// HandleButton dispatches a button-click action.
func (e *Engine) HandleButton(ctx context.Context, id, action string) {
	switch {
	case action == ActionExport:
		e.Export(ctx, id)
	case action == ActionRestart:
		e.Restart(ctx, id)
	case strings.HasPrefix(action, actionChainPrefix):
		parts := strings.SplitN(strings.TrimPrefix(action, actionChainPrefix), ":", 2)
		if len(parts) != 2 {
			log.Printf("[flow] malformed chain action %q from id=%s", action, id)
			return
		}
		e.Select(ctx, id, parts[0], parts[1])
	case strings.HasPrefix(action, actionLangPrefix):
		e.Select(ctx, id, strings.TrimPrefix(action, actionLangPrefix), "")
	default:
		log.Printf("[flow] unknown button action %q from id=%s", action, id)
	}
}

// ImportTranscript populates a session from a pre-filled document and goes
// straight into summarization, bypassing the answering phase. Partial
// transcripts are accepted as-is; zero recognized pairs creates nothing.
func (e *Engine) ImportTranscript(ctx context.Context, id, language, chainID, text string) error {
	lang, ok := e.catalog.Language(language)
	if !ok {
		if lang, ok = e.catalog.Language(catalog.DefaultLanguage); !ok {
			return ErrUnknownChain
		}
	}
	chainCfg, ok := e.catalog.ChainConfig(lang.Code, chainID)
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrUnknownChain, lang.Code, chainID)
	}

	pairs, err := transcript.Parse(text)
	if err != nil {
		e.send(ctx, id, lang.UI.ImportEmpty)
		return err
	}

	e.store.Create(id, lang.Code, chainCfg.ID, len(pairs))
	for _, pair := range pairs {
		if _, err := e.store.AppendAnswer(id, pair.Question, pair.Answer); err != nil {
			// Only reachable if the session vanished mid-loop; treat as reset.
			log.Printf("[flow] import aborted for id=%s: %v", id, err)
			return err
		}
	}

	sess, ok := e.store.Get(id)
	if !ok {
		return session.ErrSessionNotFound
	}

	log.Printf("[flow] imported %d pair(s) for id=%s chain=%s/%s", len(pairs), id, lang.Code, chainCfg.ID)
	e.summarize(ctx, id, sess, lang.UI, chainCfg)
	return nil
}

// summarize drives the Summarizing -> Completed transition. The summarizer
// call cannot fail, so the session always ends up with a summary.
func (e *Engine) summarize(ctx context.Context, id string, sess survey.Session, ui catalog.UIStrings, chainCfg catalog.Chain) {
	e.send(ctx, id, ui.PleaseWait)
	if err := e.transport.SendTyping(ctx, id); err != nil {
		log.Printf("[flow] typing indicator failed for id=%s: %v", id, err)
	}

	analysis := sanitizeEmphasis(e.summarizer.Generate(ctx, sess.Pairs(), sess.Language, sess.Chain))

	if _, err := e.store.SetSummary(id, analysis); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			// Evicted while the model was thinking. The analysis is delivered
			// anyway; only export/restart bookkeeping is gone.
			log.Printf("[flow] session id=%s expired during summarization", id)
		} else {
			log.Printf("[flow] failed to store summary for id=%s: %v", id, err)
			return
		}
	}

	e.send(ctx, id, fmt.Sprintf(ui.AnalysisFormat, analysis))
	e.send(ctx, id, chainCfg.Congrats)
	e.sendCompletionChoices(ctx, id, ui)
}

func (e *Engine) sendCompletionChoices(ctx context.Context, id string, ui catalog.UIStrings) {
	e.sendChoices(ctx, id, ui.NextActions, []transport.Choice{
		{Action: ActionExport, Label: ui.ExportButton},
		{Action: ActionRestart, Label: ui.RestartButton},
	})
}

func (e *Engine) sendQuestion(ctx context.Context, id string, ui catalog.UIStrings, chainCfg catalog.Chain, cursor int) {
	header := fmt.Sprintf(ui.ProgressFormat, cursor+1, len(chainCfg.Questions))
	e.send(ctx, id, header+"\n\n"+chainCfg.Questions[cursor])
}

// pace inserts the short conversational delay between accepting an answer and
// prompting the next question. It blocks only the calling conversation.
func (e *Engine) pace(ctx context.Context) {
	if e.pacingDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(e.pacingDelay):
	}
}

func (e *Engine) send(ctx context.Context, id, text string) {
	if err := e.transport.SendText(ctx, id, text); err != nil {
		log.Printf("[flow] send failed for id=%s: %v", id, err)
	}
}

func (e *Engine) sendChoices(ctx context.Context, id, prompt string, choices []transport.Choice) {
	if err := e.transport.SendChoices(ctx, id, prompt, choices); err != nil {
		log.Printf("[flow] choices send failed for id=%s: %v", id, err)
	}
}
