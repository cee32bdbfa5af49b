package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/avoronova/deepsight/internal/model/survey"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoMoreQuestions = errors.New("all questions already answered")
	ErrSummaryExists   = errors.New("summary already set")
	ErrNotSummarizing  = errors.New("session has unanswered questions")
)

const (
	// DefaultIdleTimeout evicts sessions idle longer than this.
	DefaultIdleTimeout = 30 * time.Minute
	// DefaultSweepInterval bounds staleness to timeout + interval.
	DefaultSweepInterval = 10 * time.Minute
)

// Store owns the in-memory session table keyed by conversation id. All state
// is volatile and discarded on process exit.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*survey.Session

	idleTimeout   time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

// NewStore bootstraps an empty store. Non-positive durations fall back to the
// defaults.
func NewStore(idleTimeout, sweepInterval time.Duration) *Store {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	return &Store{
		sessions:      make(map[string]*survey.Session),
		idleTimeout:   idleTimeout,
		sweepInterval: sweepInterval,
		now:           time.Now,
	}
}

// Create unconditionally (re)initializes the session for id. This is the only
// supported reset: any prior session for the id is overwritten.
func (s *Store) Create(id, language, chain string, questionCount int) survey.Session {
	sess := &survey.Session{
		ID:            id,
		Language:      language,
		Chain:         chain,
		QuestionCount: questionCount,
		Answers:       make([]survey.Answer, 0, questionCount),
		LastActivity:  s.now().UTC(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return *sess
}

// Get returns a copy of the session for id. It never creates implicitly.
func (s *Store) Get(id string) (survey.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return survey.Session{}, false
	}
	return copySession(sess), true
}

// Clear removes the session for id. Clearing an absent session is a no-op.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Touch marks activity for id so the sweep does not evict a live conversation.
func (s *Store) Touch(id string) {
	s.mu.Lock()
	if sess, ok := s.sessions[id]; ok {
		sess.LastActivity = s.now().UTC()
	}
	s.mu.Unlock()
}

// AppendAnswer records the answer for the question at the current cursor and
// advances it. The cursor never moves past the question count.
func (s *Store) AppendAnswer(id, question, text string) (survey.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return survey.Session{}, ErrSessionNotFound
	}
	if sess.Cursor >= sess.QuestionCount {
		return survey.Session{}, ErrNoMoreQuestions
	}

	sess.Answers = append(sess.Answers, survey.Answer{Question: question, Text: text})
	sess.Cursor++
	sess.LastActivity = s.now().UTC()

	if len(sess.Answers) != sess.Cursor {
		// Unreachable unless the append path above changes; fail loudly.
		log.Printf("[session] invariant violation for id=%s: answers=%d cursor=%d", id, len(sess.Answers), sess.Cursor)
	}

	return copySession(sess), nil
}

// SetSummary stores the generated analysis. A summary is set at most once per
// session lifetime and only once every question is answered.
func (s *Store) SetSummary(id, text string) (survey.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return survey.Session{}, ErrSessionNotFound
	}
	if sess.HasSummary {
		return survey.Session{}, ErrSummaryExists
	}
	if sess.Cursor != sess.QuestionCount {
		return survey.Session{}, ErrNotSummarizing
	}

	sess.Summary = text
	sess.HasSummary = true
	sess.LastActivity = s.now().UTC()

	return copySession(sess), nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Run drives the periodic expiry sweep until ctx is canceled. It is meant to
// be started as its own goroutine and runs independently of any conversation's
// event handling.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := s.sweep(s.now()); evicted > 0 {
				log.Printf("[session] sweep evicted %d idle session(s)", evicted)
			}
		}
	}
}

// sweep removes every session idle longer than the timeout and reports how
// many were evicted.
func (s *Store) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastActivity) > s.idleTimeout {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func copySession(sess *survey.Session) survey.Session {
	out := *sess
	out.Answers = append([]survey.Answer(nil), sess.Answers...)
	return out
}
