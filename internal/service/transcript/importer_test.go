package transcript

import (
	"errors"
	"testing"
)

func TestParseLabeledPairs(t *testing.T) {
	doc := `Question 1: What drives you?
Answer: Curiosity, mostly.

Question 2: What slows you down?
Answer: Meetings.
`
	pairs, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Question != "What drives you?" || pairs[0].Answer != "Curiosity, mostly." {
		t.Fatalf("unexpected first pair: %+v", pairs[0])
	}
	if pairs[1].Answer != "Meetings." {
		t.Fatalf("unexpected second pair: %+v", pairs[1])
	}
}

func TestParseNumberedQuestionsAndMultilineAnswers(t *testing.T) {
	doc := `1. What drives you?
Answer:
Curiosity.
Also deadlines.
2) What slows you down?
Answer: Nothing
in particular.
`
	pairs, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Answer != "Curiosity. Also deadlines." {
		t.Fatalf("expected accumulated answer, got %q", pairs[0].Answer)
	}
	if pairs[1].Answer != "Nothing in particular." {
		t.Fatalf("expected continuation lines joined, got %q", pairs[1].Answer)
	}
}

func TestParseRussianMarkers(t *testing.T) {
	doc := `Вопрос 1: Что вами движет?
Ответ: Любопытство.
----------
Вопрос 2: Что вас тормозит?
Ответ: Совещания.
`
	pairs, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[1].Question != "Что вас тормозит?" {
		t.Fatalf("unexpected question: %q", pairs[1].Question)
	}
}

func TestParseSkipsDecorativeLinesAndPreamble(t *testing.T) {
	doc := `MY TRANSCRIPT EXPORT
=====================
Question 1: A?
Answer: yes
---------------------
`
	pairs, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Question != "A?" || pairs[0].Answer != "yes" {
		t.Fatalf("unexpected pairs: %+v", pairs)
	}
}

func TestParsePartialTranscriptAcceptedAsIs(t *testing.T) {
	// A question with no answer portion still counts; completeness against the
	// chain's question count is not checked here.
	doc := "Question 1: A?\nAnswer: done\nQuestion 2: B?\n"
	pairs, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[1].Answer != "" {
		t.Fatalf("expected empty answer for unanswered question, got %q", pairs[1].Answer)
	}
}

func TestParseRejectsDocumentWithNoMarkers(t *testing.T) {
	_, err := Parse("just prose\nacross two lines")
	if !errors.Is(err, ErrNoPairs) {
		t.Fatalf("expected ErrNoPairs, got %v", err)
	}
}
