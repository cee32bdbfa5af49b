package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/avoronova/deepsight/internal/config"
	"github.com/avoronova/deepsight/internal/model/catalog"
	"github.com/avoronova/deepsight/internal/model/survey"
)

// DefaultTimeout bounds a single summarization call.
const DefaultTimeout = 120 * time.Second

// Summarizer turns a completed transcript into narrative analysis text. It
// never surfaces an error to callers: any failure degrades to the chain's
// configured fallback text, so the flow engine needs no branching of its own.
type Summarizer struct {
	chain   compose.Runnable[map[string]any, *schema.Message]
	catalog catalog.Catalog
	timeout time.Duration
	enabled bool
}

// NewSummarizer compiles the prompt/model chain when AI credentials are
// configured. Without credentials it returns a disabled instance that always
// serves fallback text, which is a normal deployment mode, not an error.
func NewSummarizer(ctx context.Context, cat catalog.Catalog, cfg config.AIConfig) (*Summarizer, error) {
	timeout := DefaultTimeout
	if cfg.SummaryTimeout > 0 {
		timeout = cfg.SummaryTimeout
	}

	s := &Summarizer{catalog: cat, timeout: timeout}
	if !cfg.Enabled() {
		return s, nil
	}

	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{transcript}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile summarizer chain: %w", err)
	}

	s.chain = runnable
	s.enabled = true
	return s, nil
}

// Enabled reports whether a real model backs the summarizer.
func (s *Summarizer) Enabled() bool {
	return s != nil && s.enabled && s.chain != nil
}

// Generate produces the analysis for the recorded pairs. The returned string
// is always non-empty: the chain's fallback text covers the disabled state,
// timeouts, transport errors and empty model output alike.
func (s *Summarizer) Generate(ctx context.Context, pairs []survey.QAPair, language, chainID string) string {
	chainCfg, ok := s.catalog.ChainConfig(language, chainID)
	if !ok {
		log.Printf("[ai] unknown chain %s/%s, serving generic fallback", language, chainID)
		return genericFallback
	}

	if !s.Enabled() {
		return chainCfg.Fallback
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	input := map[string]any{
		"system":     chainCfg.Prompts.System,
		"transcript": fmt.Sprintf(chainCfg.Prompts.UserFormat, renderTranscript(chainCfg, pairs)),
	}

	response, err := s.chain.Invoke(callCtx, input)
	if err != nil {
		log.Printf("[ai] summarization failed for chain %s/%s: %v", language, chainID, err)
		return chainCfg.Fallback
	}
	text := strings.TrimSpace(response.Content)
	if text == "" {
		log.Printf("[ai] empty summarization output for chain %s/%s", language, chainID)
		return chainCfg.Fallback
	}

	log.Printf("[ai] generated analysis for chain %s/%s, length=%d", language, chainID, len(text))
	return text
}

// genericFallback covers the pathological case of a session whose chain no
// longer exists in the catalog.
const genericFallback = "Analysis is unavailable right now, but your transcript has been kept in full."

func renderTranscript(chainCfg catalog.Chain, pairs []survey.QAPair) string {
	var b strings.Builder
	for i, pair := range pairs {
		fmt.Fprintf(&b, "%s %d: %s\n", chainCfg.Export.QuestionLabel, i+1, pair.Question)
		fmt.Fprintf(&b, "%s: %s\n\n", chainCfg.Export.AnswerLabel, pair.Answer)
	}
	return strings.TrimRight(b.String(), "\n")
}
