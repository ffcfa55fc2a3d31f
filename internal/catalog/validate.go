package catalog

import (
	"fmt"

	"github.com/alexanderramin/drill/internal/domain"
)

// ValidateUnits checks the assembled curriculum for authoring errors before
// it is served. Returns every problem found, not just the first.
func ValidateUnits(units []domain.Unit) []error {
	var errs []error

	if len(units) == 0 {
		return []error{fmt.Errorf("curriculum has no units")}
	}

	unitIDs := make(map[string]bool)
	lessonIDs := make(map[string]bool)
	questionIDs := make(map[string]bool)

	for _, u := range units {
		if u.ID == "" {
			errs = append(errs, fmt.Errorf("unit %q: id is required", u.Title))
		} else if unitIDs[u.ID] {
			errs = append(errs, fmt.Errorf("unit %s: duplicate id", u.ID))
		}
		unitIDs[u.ID] = true

		if len(u.Lessons) == 0 {
			errs = append(errs, fmt.Errorf("unit %s: has no lessons", u.ID))
		}
		for _, l := range u.Lessons {
			errs = append(errs, validateLesson(u.ID, l, lessonIDs, questionIDs)...)
		}
	}
	return errs
}

func validateLesson(unitID string, l domain.Lesson, lessonIDs, questionIDs map[string]bool) []error {
	var errs []error

	if l.ID == "" {
		errs = append(errs, fmt.Errorf("unit %s: lesson %q: id is required", unitID, l.Title))
	} else if lessonIDs[l.ID] {
		errs = append(errs, fmt.Errorf("lesson %s: duplicate id", l.ID))
	}
	lessonIDs[l.ID] = true

	if l.XP <= 0 {
		errs = append(errs, fmt.Errorf("lesson %s: xp must be positive", l.ID))
	}
	if l.Gems < 0 {
		errs = append(errs, fmt.Errorf("lesson %s: gems must not be negative", l.ID))
	}
	if len(l.Questions) == 0 {
		errs = append(errs, fmt.Errorf("lesson %s: has no questions", l.ID))
	}
	for _, q := range l.Questions {
		errs = append(errs, validateQuestion(l.ID, q, questionIDs)...)
	}
	return errs
}

func validateQuestion(lessonID string, q domain.Question, questionIDs map[string]bool) []error {
	var errs []error

	if q.ID == "" {
		errs = append(errs, fmt.Errorf("lesson %s: question with empty id", lessonID))
		return errs
	}
	if questionIDs[q.ID] {
		errs = append(errs, fmt.Errorf("question %s: duplicate id", q.ID))
	}
	questionIDs[q.ID] = true

	if !domain.ValidQuestionTypes[string(q.Type)] {
		errs = append(errs, fmt.Errorf("question %s: unknown type %q", q.ID, q.Type))
		return errs
	}
	if q.Prompt == "" {
		errs = append(errs, fmt.Errorf("question %s: prompt is required", q.ID))
	}

	switch q.Type {
	case domain.QuestionMultipleChoice:
		errs = append(errs, validateOptions(q)...)

	case domain.QuestionTextInput:
		if q.ExpectedAnswer == "" {
			errs = append(errs, fmt.Errorf("question %s: text_input requires expected_answer", q.ID))
		}

	case domain.QuestionFillCode, domain.QuestionFillBlankCode:
		// A fill question answers either by literal or by option set.
		if q.ExpectedAnswer == "" {
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Errorf("question %s: %s requires expected_answer or options", q.ID, q.Type))
			} else {
				errs = append(errs, validateOptions(q)...)
			}
		}

	case domain.QuestionMatchPairs:
		if len(q.Pairs) < 2 {
			errs = append(errs, fmt.Errorf("question %s: match_pairs requires at least 2 pairs", q.ID))
		}
		seen := make(map[string]bool)
		for _, p := range q.Pairs {
			if p.ID == "" || p.Left == "" || p.Right == "" {
				errs = append(errs, fmt.Errorf("question %s: pair with missing id or side", q.ID))
			}
			if seen[p.ID] {
				errs = append(errs, fmt.Errorf("question %s: duplicate pair id %q", q.ID, p.ID))
			}
			seen[p.ID] = true
		}

	case domain.QuestionOrderList:
		if len(q.Items) < 2 {
			errs = append(errs, fmt.Errorf("question %s: order_list requires at least 2 items", q.ID))
		}
		if !sameMultiset(q.Items, q.CorrectOrder) {
			errs = append(errs, fmt.Errorf("question %s: correct_order must be a permutation of items", q.ID))
		}
	}
	return errs
}

func validateOptions(q domain.Question) []error {
	var errs []error
	if len(q.Options) < 2 {
		errs = append(errs, fmt.Errorf("question %s: requires at least 2 options", q.ID))
	}
	correct := 0
	seen := make(map[string]bool)
	for _, o := range q.Options {
		if o.ID == "" || o.Text == "" {
			errs = append(errs, fmt.Errorf("question %s: option with missing id or text", q.ID))
		}
		if seen[o.ID] {
			errs = append(errs, fmt.Errorf("question %s: duplicate option id %q", q.ID, o.ID))
		}
		seen[o.ID] = true
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		errs = append(errs, fmt.Errorf("question %s: exactly one option must be correct, got %d", q.ID, correct))
	}
	return errs
}

func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
