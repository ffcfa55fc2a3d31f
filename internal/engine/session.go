package engine

import (
	"errors"
	"math/rand"

	"github.com/alexanderramin/drill/internal/domain"
)

// SessionStatus is the quiz state machine's current state. idle awaits a
// response; correct/incorrect show feedback and await continue; completed and
// aborted are terminal.
type SessionStatus string

const (
	StatusIdle      SessionStatus = "idle"
	StatusCorrect   SessionStatus = "correct"
	StatusIncorrect SessionStatus = "incorrect"
	StatusCompleted SessionStatus = "completed"
	StatusAborted   SessionStatus = "aborted"
)

// ErrInvalidTransition is returned when an event arrives in a state that does
// not accept it. The UI disables such actions, so seeing this error means a
// driver bug rather than user error.
var ErrInvalidTransition = errors.New("invalid session transition")

// SubmitResult is the outcome of a full-question submission.
type SubmitResult struct {
	Correct   bool
	LoseHeart bool // orchestrator must apply a health loss
}

// MatchResult is the outcome of one pair-match micro-submission.
type MatchResult struct {
	Matched   bool
	Solved    bool // all pairs matched; question transitioned to correct
	LoseHeart bool
}

// Session drives one lesson attempt. It owns the active question index, the
// per-question response state, and the shuffled presentations. It never
// touches the ledger: health losses are reported to the caller and rewards
// are granted by the caller exactly once, at completion.
type Session struct {
	Lesson   *domain.Lesson
	Practice bool

	// healthExempt is fixed at session start from practice mode and
	// difficulty; hearts are not at stake when set.
	healthExempt bool

	rng    *rand.Rand
	index  int
	status SessionStatus
	resp   *Response

	// Per-question shuffled presentations.
	options []domain.Option
	left    []domain.Pair
	right   []domain.Pair

	correct int
	wrong   int
}

// NewSession starts a session at the first question.
func NewSession(lesson *domain.Lesson, practice, healthExempt bool, rng *rand.Rand) *Session {
	s := &Session{
		Lesson:       lesson,
		Practice:     practice,
		healthExempt: healthExempt,
		rng:          rng,
		status:       StatusIdle,
	}
	s.prepareQuestion()
	return s
}

func (s *Session) Status() SessionStatus { return s.status }
func (s *Session) Index() int            { return s.index }
func (s *Session) Len() int              { return len(s.Lesson.Questions) }

// Progress is the fraction of questions already put behind, for the bar.
func (s *Session) Progress() float64 {
	if s.Len() == 0 {
		return 0
	}
	return float64(s.index) / float64(s.Len())
}

// Current returns the active question, or nil in a terminal state.
func (s *Session) Current() *domain.Question {
	if s.status == StatusCompleted || s.status == StatusAborted || s.index >= s.Len() {
		return nil
	}
	return &s.Lesson.Questions[s.index]
}

// Response returns the active question's response state.
func (s *Session) Response() *Response { return s.resp }

// Options returns the shuffled option presentation for choice questions.
func (s *Session) Options() []domain.Option { return s.options }

// LeftColumn and RightColumn return the independently shuffled pair columns.
func (s *Session) LeftColumn() []domain.Pair  { return s.left }
func (s *Session) RightColumn() []domain.Pair { return s.right }

// CorrectCount and WrongCount report submissions so far, for the attempt log.
func (s *Session) CorrectCount() int { return s.correct }
func (s *Session) WrongCount() int   { return s.wrong }

// SelectOption records an option choice. Ignored outside idle.
func (s *Session) SelectOption(optionID string) {
	if s.status == StatusIdle {
		s.resp.SelectedOptionID = optionID
	}
}

// SetText records typed input. Ignored outside idle.
func (s *Session) SetText(text string) {
	if s.status == StatusIdle {
		s.resp.TextInput = text
	}
}

// MoveItem swaps the order-list item at index with its neighbor. delta is -1
// for up, +1 for down. Ignored outside idle or at the edges.
func (s *Session) MoveItem(index, delta int) {
	if s.status != StatusIdle {
		return
	}
	j := index + delta
	if index < 0 || index >= len(s.resp.Ordered) || j < 0 || j >= len(s.resp.Ordered) {
		return
	}
	s.resp.Ordered[index], s.resp.Ordered[j] = s.resp.Ordered[j], s.resp.Ordered[index]
}

// CanSubmit reports whether Submit is currently allowed.
func (s *Session) CanSubmit() bool {
	q := s.Current()
	if q == nil || s.status != StatusIdle || q.Type == domain.QuestionMatchPairs {
		return false
	}
	return Answered(q, s.resp)
}

// Submit evaluates the active question and transitions to correct or
// incorrect. match_pairs questions never reach here; they resolve through
// SubmitMatch.
func (s *Session) Submit() (SubmitResult, error) {
	if !s.CanSubmit() {
		return SubmitResult{}, ErrInvalidTransition
	}
	ok, err := Evaluate(s.Current(), s.resp)
	if err != nil {
		return SubmitResult{}, err
	}
	if ok {
		s.status = StatusCorrect
		s.correct++
		return SubmitResult{Correct: true}, nil
	}
	s.status = StatusIncorrect
	s.wrong++
	return SubmitResult{LoseHeart: !s.healthExempt}, nil
}

// SelectLeft records a pending left-column selection for pair matching.
func (s *Session) SelectLeft(pairID string) {
	if s.status == StatusIdle && !s.resp.MatchedPairs[pairID] {
		s.resp.SelectedLeft = pairID
	}
}

// SubmitMatch resolves a left/right micro-submission. A match removes the
// pair from play; a mismatch costs a heart (unless exempt) and clears the
// selection, but the question stays idle for retry. Matching the final pair
// transitions the question to correct.
func (s *Session) SubmitMatch(rightID string) (MatchResult, error) {
	q := s.Current()
	if q == nil || s.status != StatusIdle || q.Type != domain.QuestionMatchPairs {
		return MatchResult{}, ErrInvalidTransition
	}
	leftID := s.resp.SelectedLeft
	if leftID == "" || s.resp.MatchedPairs[rightID] {
		return MatchResult{}, nil
	}
	s.resp.SelectedLeft = ""
	if leftID != rightID {
		s.wrong++
		return MatchResult{LoseHeart: !s.healthExempt}, nil
	}
	s.resp.MatchedPairs[leftID] = true
	res := MatchResult{Matched: true}
	if countMatched(q.Pairs, s.resp.MatchedPairs) == len(q.Pairs) {
		s.status = StatusCorrect
		s.correct++
		res.Solved = true
	}
	return res, nil
}

// Continue leaves the feedback state: advances to the next question with a
// neutral response, or transitions to completed when none remain.
func (s *Session) Continue() error {
	if s.status != StatusCorrect && s.status != StatusIncorrect {
		return ErrInvalidTransition
	}
	if s.index+1 < s.Len() {
		s.index++
		s.status = StatusIdle
		s.prepareQuestion()
		return nil
	}
	s.status = StatusCompleted
	return nil
}

// Abort discards the session from any non-terminal state. No ledger mutation
// has happened yet, so there is nothing to roll back.
func (s *Session) Abort() error {
	if s.status == StatusCompleted || s.status == StatusAborted {
		return ErrInvalidTransition
	}
	s.status = StatusAborted
	return nil
}

// prepareQuestion resets response state and rolls fresh shuffled
// presentations for the active question.
func (s *Session) prepareQuestion() {
	s.resp = NewResponse()
	s.options = nil
	s.left = nil
	s.right = nil

	q := s.Current()
	if q == nil {
		return
	}
	switch q.Type {
	case domain.QuestionMultipleChoice:
		s.options = Shuffled(s.rng, q.Options)
	case domain.QuestionFillCode, domain.QuestionFillBlankCode:
		if q.ExpectedAnswer == "" {
			s.options = Shuffled(s.rng, q.Options)
		}
	case domain.QuestionMatchPairs:
		s.left = Shuffled(s.rng, q.Pairs)
		s.right = Shuffled(s.rng, q.Pairs)
	case domain.QuestionOrderList:
		s.resp.Ordered = Shuffled(s.rng, q.Items)
	}
}
