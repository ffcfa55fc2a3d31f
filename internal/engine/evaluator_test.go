package engine

import (
	"errors"
	"testing"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mcQuestion() *domain.Question {
	return &domain.Question{
		ID:   "q-mc",
		Type: domain.QuestionMultipleChoice,
		Options: []domain.Option{
			{ID: "o1", Text: "wrong"},
			{ID: "o2", Text: "right", Correct: true},
			{ID: "o3", Text: "also wrong"},
		},
	}
}

func TestEvaluate_MultipleChoice(t *testing.T) {
	q := mcQuestion()

	ok, err := Evaluate(q, &Response{SelectedOptionID: "o2"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate(q, &Response{SelectedOptionID: "o1"})
	require.NoError(t, err)
	assert.False(t, ok)

	// No selection and unknown ids never pass.
	ok, err = Evaluate(q, &Response{})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Evaluate(q, &Response{SelectedOptionID: "nope"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluate_TextInput_CaseInsensitiveTrimmed(t *testing.T) {
	q := &domain.Question{
		ID:             "q-text",
		Type:           domain.QuestionTextInput,
		ExpectedAnswer: "JavaScript",
	}

	for _, input := range []string{"JavaScript", "javascript", "  JAVASCRIPT  "} {
		ok, err := Evaluate(q, &Response{TextInput: input})
		require.NoError(t, err)
		assert.True(t, ok, "input %q should match", input)
	}

	ok, err := Evaluate(q, &Response{TextInput: "Java"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluate_FillCode_CaseSensitiveTrimmed(t *testing.T) {
	q := &domain.Question{
		ID:             "q-fill",
		Type:           domain.QuestionFillCode,
		ExpectedAnswer: "Hello",
	}

	ok, err := Evaluate(q, &Response{TextInput: "  Hello "})
	require.NoError(t, err)
	assert.True(t, ok, "surrounding whitespace is forgiven")

	ok, err = Evaluate(q, &Response{TextInput: "hello"})
	require.NoError(t, err)
	assert.False(t, ok, "code answers are case-sensitive")
}

func TestEvaluate_FillBlankCode_OptionFallback(t *testing.T) {
	// A fill question without an expected literal resolves via its options.
	q := &domain.Question{
		ID:   "q-blank",
		Type: domain.QuestionFillBlankCode,
		Options: []domain.Option{
			{ID: "o1", Text: "var"},
			{ID: "o2", Text: "const", Correct: true},
		},
	}

	ok, err := Evaluate(q, &Response{SelectedOptionID: "o2"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate(q, &Response{SelectedOptionID: "o1"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluate_MatchPairs_AllMatchedRequired(t *testing.T) {
	q := &domain.Question{
		ID:   "q-pairs",
		Type: domain.QuestionMatchPairs,
		Pairs: []domain.Pair{
			{ID: "p1", Left: "<h1>", Right: "heading"},
			{ID: "p2", Left: "<p>", Right: "paragraph"},
		},
	}

	ok, err := Evaluate(q, &Response{MatchedPairs: map[string]bool{"p1": true}})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Evaluate(q, &Response{MatchedPairs: map[string]bool{"p1": true, "p2": true}})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluate_OrderList_ExactPositional(t *testing.T) {
	q := &domain.Question{
		ID:           "q-order",
		Type:         domain.QuestionOrderList,
		Items:        []string{"<body>", "<html>", "<head>"},
		CorrectOrder: []string{"<html>", "<head>", "<body>"},
	}

	ok, err := Evaluate(q, &Response{Ordered: []string{"<html>", "<head>", "<body>"}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate(q, &Response{Ordered: []string{"<head>", "<html>", "<body>"}})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Evaluate(q, &Response{Ordered: []string{"<html>", "<head>"}})
	require.NoError(t, err)
	assert.False(t, ok, "length mismatch is incorrect, not an error")
}

func TestEvaluate_UnknownTypeIsError(t *testing.T) {
	q := &domain.Question{ID: "q-bad", Type: "essay"}

	ok, err := Evaluate(q, NewResponse())
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownQuestionType))
	assert.Contains(t, err.Error(), "q-bad")
}

func TestAnswered(t *testing.T) {
	mc := mcQuestion()
	assert.False(t, Answered(mc, &Response{}))
	assert.True(t, Answered(mc, &Response{SelectedOptionID: "o1"}))

	text := &domain.Question{Type: domain.QuestionTextInput, ExpectedAnswer: "x"}
	assert.False(t, Answered(text, &Response{TextInput: "   "}))
	assert.True(t, Answered(text, &Response{TextInput: "x"}))

	// Arrangement questions are always submittable; the arrangement itself
	// is the answer.
	order := &domain.Question{Type: domain.QuestionOrderList}
	assert.True(t, Answered(order, &Response{Ordered: []string{"a"}}))
}
