package survey

import "time"

// Answer pairs a question with the trimmed text the user supplied for it.
type Answer struct {
	Question string `json:"question"`
	Text     string `json:"text"`
}

// QAPair is the transcript unit handed to the summarizer and produced by the
// transcript importer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Session captures one user's progress through a question chain. State is
// volatile: sessions live only for the process lifetime.
type Session struct {
	ID            string    `json:"id"`
	Language      string    `json:"language"`
	Chain         string    `json:"chain"`
	Cursor        int       `json:"cursor"`
	QuestionCount int       `json:"questionCount"`
	Answers       []Answer  `json:"answers"`
	Summary       string    `json:"summary,omitempty"`
	HasSummary    bool      `json:"hasSummary"`
	LastActivity  time.Time `json:"lastActivity"`
}

// Status is the conversational state derived from cursor position and summary
// presence rather than stored separately.
type Status int

const (
	// StatusAnswering means the session still has unanswered questions.
	StatusAnswering Status = iota
	// StatusSummarizing means all questions are answered and the analysis has
	// not been produced yet.
	StatusSummarizing
	// StatusCompleted means the analysis is stored and the session only serves
	// export and restart.
	StatusCompleted
)

// Status derives the conversational state for the session.
func (s Session) Status() Status {
	switch {
	case s.HasSummary:
		return StatusCompleted
	case s.Cursor >= s.QuestionCount:
		return StatusSummarizing
	default:
		return StatusAnswering
	}
}

// Pairs converts recorded answers into summarizer input.
func (s Session) Pairs() []QAPair {
	pairs := make([]QAPair, 0, len(s.Answers))
	for _, a := range s.Answers {
		pairs = append(pairs, QAPair{Question: a.Question, Answer: a.Text})
	}
	return pairs
}
