package engine

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drill/internal/domain"
)

// ErrUnknownQuestionType marks a question whose type tag is not one of the
// authored variants. This is a catalog defect; it is reported, never guessed
// at.
var ErrUnknownQuestionType = fmt.Errorf("unknown question type")

// Response is the player's transient answer state for the question currently
// on screen. The session resets it to the zero value between questions.
type Response struct {
	SelectedOptionID string
	TextInput        string
	Ordered          []string        // order_list: current arrangement
	MatchedPairs     map[string]bool // match_pairs: pair ids matched so far
	SelectedLeft     string          // match_pairs: pending left selection
}

// NewResponse returns a neutral response for the given question. For
// order_list the arrangement starts from the presented (shuffled) order,
// which the session supplies.
func NewResponse() *Response {
	return &Response{MatchedPairs: map[string]bool{}}
}

// Answered reports whether the response is substantial enough to submit.
// Submission stays disabled until this is true, so Evaluate never sees an
// empty answer for the choice/text variants.
func Answered(q *domain.Question, r *Response) bool {
	switch q.Type {
	case domain.QuestionMultipleChoice:
		return r.SelectedOptionID != ""
	case domain.QuestionTextInput:
		return strings.TrimSpace(r.TextInput) != ""
	case domain.QuestionFillCode, domain.QuestionFillBlankCode:
		if q.ExpectedAnswer != "" {
			return strings.TrimSpace(r.TextInput) != ""
		}
		return r.SelectedOptionID != ""
	case domain.QuestionMatchPairs, domain.QuestionOrderList:
		return true
	}
	return false
}

// Evaluate decides correctness for one full submission. Pure: no side
// effects, no randomness. match_pairs is special-cased by the session into
// per-pair micro-submissions; here it is correct exactly when every pair has
// been matched.
func Evaluate(q *domain.Question, r *Response) (bool, error) {
	switch q.Type {
	case domain.QuestionMultipleChoice:
		return selectedCorrect(q.Options, r.SelectedOptionID), nil

	case domain.QuestionTextInput:
		// Free text is forgiving about case and surrounding whitespace.
		return strings.EqualFold(strings.TrimSpace(r.TextInput), q.ExpectedAnswer), nil

	case domain.QuestionFillCode, domain.QuestionFillBlankCode:
		// Code is case-sensitive. A fill question without an expected
		// literal falls back to its option set.
		if q.ExpectedAnswer != "" {
			return strings.TrimSpace(r.TextInput) == q.ExpectedAnswer, nil
		}
		return selectedCorrect(q.Options, r.SelectedOptionID), nil

	case domain.QuestionMatchPairs:
		return len(q.Pairs) > 0 && countMatched(q.Pairs, r.MatchedPairs) == len(q.Pairs), nil

	case domain.QuestionOrderList:
		// Exact positional equality; no normalization of any kind.
		if len(r.Ordered) != len(q.CorrectOrder) {
			return false, nil
		}
		for i := range r.Ordered {
			if r.Ordered[i] != q.CorrectOrder[i] {
				return false, nil
			}
		}
		return true, nil
	}
	return false, fmt.Errorf("question %s: %w: %q", q.ID, ErrUnknownQuestionType, q.Type)
}

func selectedCorrect(options []domain.Option, selectedID string) bool {
	if selectedID == "" {
		return false
	}
	for _, o := range options {
		if o.ID == selectedID {
			return o.Correct
		}
	}
	return false
}

func countMatched(pairs []domain.Pair, matched map[string]bool) int {
	n := 0
	for _, p := range pairs {
		if matched[p.ID] {
			n++
		}
	}
	return n
}
