// Package quiz implements verse-memorization quizzes: an edit-distance grader
// and the session state machine that asks, grades and reveals verses.
package quiz

import "math/rand/v2"

// State is a quiz session state.
type State string

const (
	StateIdle   State = "idle"
	StateAsking State = "asking"
	StateGraded State = "graded"
)

// Verse is one entry of a quiz pool.
type Verse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// key identifies a verse for the no-immediate-repeat rule.
func (v Verse) key() string {
	if v.ID != "" {
		return v.ID
	}
	return v.Reference
}

// Question is what the asker sees: the reference, never the text.
type Question struct {
	VerseID   string `json:"verse_id"`
	Reference string `json:"reference"`
}

// Result is the graded outcome of a submitted answer.
type Result struct {
	Score      float64 `json:"score"`
	Tier       Tier    `json:"tier"`
	Reference  string  `json:"reference"`
	Correction string  `json:"correction,omitempty"`
}

// Answer is a revealed verse.
type Answer struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// Rand picks an index in [0,n).
type Rand interface {
	IntN(n int) int
}

type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.IntN(n) }

// Snapshot is the serializable form of a Session.
type Snapshot struct {
	State      State  `json:"state"`
	Current    *Verse `json:"current,omitempty"`
	PreviousID string `json:"previous_id,omitempty"`
}

// Session is a single asker's quiz. It is not safe for concurrent use; each
// asker owns its own Session.
type Session struct {
	state    State
	current  *Verse
	previous string
	rng      Rand
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used to select verses.
func WithRand(r Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// NewSession returns an idle session.
func NewSession(opts ...Option) *Session {
	s := &Session{state: StateIdle, rng: defaultRand{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore rebuilds a session from a snapshot.
func Restore(snap Snapshot, opts ...Option) *Session {
	s := NewSession(opts...)
	s.state = snap.State
	if s.state == "" {
		s.state = StateIdle
	}
	if snap.Current != nil {
		v := *snap.Current
		s.current = &v
	}
	s.previous = snap.PreviousID
	return s
}

// Snapshot captures the session so it can be stored between requests.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{State: s.state, PreviousID: s.previous}
	if s.current != nil {
		v := *s.current
		snap.Current = &v
	}
	return snap
}

// State reports the current state.
func (s *Session) State() State { return s.state }

// Current returns the verse being asked, if any.
func (s *Session) Current() (Verse, bool) {
	if s.current == nil {
		return Verse{}, false
	}
	return *s.current, true
}

// Start selects a verse from pool and begins asking it. The verse asked last
// is never selected again immediately when pool has more than one entry.
func (s *Session) Start(pool []Verse) (Question, error) {
	if len(pool) < MinPoolSize {
		return Question{}, &InsufficientDataError{Have: len(pool), Need: MinPoolSize}
	}

	last := s.previous
	if s.current != nil {
		last = s.current.key()
	}

	candidates := pool
	if last != "" && len(pool) > 1 {
		candidates = make([]Verse, 0, len(pool))
		for _, v := range pool {
			if v.key() != last {
				candidates = append(candidates, v)
			}
		}
		if len(candidates) == 0 {
			candidates = pool
		}
	}

	picked := candidates[s.rng.IntN(len(candidates))]
	s.current = &picked
	s.previous = last
	s.state = StateAsking

	return Question{VerseID: picked.ID, Reference: picked.Reference}, nil
}

// Next asks another question. It behaves exactly like Start.
func (s *Session) Next(pool []Verse) (Question, error) {
	return s.Start(pool)
}

// Submit grades candidate against the active verse.
func (s *Session) Submit(candidate string) (Result, error) {
	if s.state != StateAsking || s.current == nil {
		return Result{}, &InvalidStateError{Op: "submit an answer", State: s.state}
	}

	score := Similarity(candidate, s.current.Text)
	res := Result{
		Score:     score,
		Tier:      Classify(score),
		Reference: s.current.Reference,
	}
	if res.Tier != TierExcellent {
		res.Correction = s.current.Text
	}
	s.state = StateGraded
	return res, nil
}

// Reveal shows the active verse without grading.
func (s *Session) Reveal() (Answer, error) {
	if (s.state != StateAsking && s.state != StateGraded) || s.current == nil {
		return Answer{}, &InvalidStateError{Op: "reveal the answer", State: s.state}
	}
	return Answer{Reference: s.current.Reference, Text: s.current.Text}, nil
}

// End returns the session to idle. The verse just asked is still excluded
// from the next selection.
func (s *Session) End() {
	if s.current != nil {
		s.previous = s.current.key()
	}
	s.current = nil
	s.state = StateIdle
}
