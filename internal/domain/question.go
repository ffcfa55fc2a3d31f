package domain

// Option is one selectable answer of a multiple-choice style question.
type Option struct {
	ID      string `yaml:"id"`
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct"`
}

// Pair is one left/right pairing of a match-pairs question. Left and Right
// belong together; the shared ID is the match key.
type Pair struct {
	ID    string `yaml:"id"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Question is a single authored exercise. The Type tag decides which of the
// answer-specification fields are meaningful; catalog validation enforces
// that the right ones are present. Questions are immutable once loaded.
type Question struct {
	ID          string       `yaml:"id"`
	Type        QuestionType `yaml:"type"`
	Prompt      string       `yaml:"prompt"`
	CodeSnippet string       `yaml:"code_snippet,omitempty"`

	// Answer specification, per type.
	Options        []Option `yaml:"options,omitempty"`        // multiple_choice, fill_code fallback
	Pairs          []Pair   `yaml:"pairs,omitempty"`          // match_pairs
	Items          []string `yaml:"items,omitempty"`          // order_list: the item set
	CorrectOrder   []string `yaml:"correct_order,omitempty"`  // order_list: reference order
	ExpectedAnswer string   `yaml:"expected_answer,omitempty"` // text_input, fill_code, fill_blank_code

	Explanation string `yaml:"explanation"`
	Concept     string `yaml:"concept"` // links to a reference doc by concept tag
}
