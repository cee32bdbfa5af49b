package transcript

import (
	"errors"
	"regexp"
	"strings"

	"github.com/avoronova/deepsight/internal/model/survey"
)

// ErrNoPairs marks a document in which no question/answer pair was recognized.
var ErrNoPairs = errors.New("no question/answer pairs recognized")

var (
	// A line opening a new question: "Question 3", "Вопрос 3:", "3." or "3)".
	questionMarker = regexp.MustCompile(`(?i)^\s*(?:(?:question|вопрос)\s*№?\s*(\d+)|(\d+)\s*[.)])\s*[:.\-]?\s*(.*)$`)
	// A line switching from question to answer text: "Answer:", "Ответ -".
	// The marker must stand alone or be followed by punctuation, so prose that
	// merely begins with "Answers..." is not mistaken for one.
	answerMarker = regexp.MustCompile(`(?i)^\s*(?:answer|ответ)\s*(?:[:.\-]\s*(.*))?$`)
	// Decorative separators: runs of punctuation with no letters or digits.
	decorative = regexp.MustCompile(`^[\s\-=_*~#>.]+$`)
)

// Parse extracts ordered question/answer pairs from a pre-filled transcript.
// The rules are line-oriented: a question marker opens a new pair, an answer
// marker switches accumulation to the answer side, decorative lines are
// skipped, and everything else extends whichever side is current. A document
// yielding zero pairs returns ErrNoPairs; partial transcripts are accepted
// as-is.
func Parse(text string) ([]survey.QAPair, error) {
	var pairs []survey.QAPair
	var question, answer strings.Builder
	var inPair, inAnswer bool

	flush := func() {
		if !inPair {
			return
		}
		q := strings.TrimSpace(question.String())
		a := strings.TrimSpace(answer.String())
		if q != "" {
			pairs = append(pairs, survey.QAPair{Question: q, Answer: a})
		}
		question.Reset()
		answer.Reset()
		inPair = false
		inAnswer = false
	}

	appendLine := func(b *strings.Builder, line string) {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(line)
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || decorative.MatchString(line) {
			continue
		}

		if m := questionMarker.FindStringSubmatch(line); m != nil {
			flush()
			inPair = true
			if rest := strings.TrimSpace(m[3]); rest != "" {
				appendLine(&question, rest)
			}
			continue
		}

		if !inPair {
			// Preamble before the first question marker is ignored.
			continue
		}

		if m := answerMarker.FindStringSubmatch(line); m != nil {
			inAnswer = true
			if rest := strings.TrimSpace(m[1]); rest != "" {
				appendLine(&answer, rest)
			}
			continue
		}

		if inAnswer {
			appendLine(&answer, line)
		} else {
			appendLine(&question, line)
		}
	}
	flush()

	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}
	return pairs, nil
}
