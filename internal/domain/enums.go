package domain

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionFillCode       QuestionType = "fill_code"
	QuestionTextInput      QuestionType = "text_input"
	QuestionMatchPairs     QuestionType = "match_pairs"
	QuestionOrderList      QuestionType = "order_list"
	QuestionFillBlankCode  QuestionType = "fill_blank_code"
)

// ValidQuestionTypes is the canonical set of accepted question type strings.
var ValidQuestionTypes = map[string]bool{
	"multiple_choice": true, "fill_code": true, "text_input": true,
	"match_pairs": true, "order_list": true, "fill_blank_code": true,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true, "hard": true,
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type ItemEffect string

const (
	EffectHeartRefill  ItemEffect = "heart_refill"
	EffectStreakFreeze ItemEffect = "streak_freeze"
	EffectThemeColor   ItemEffect = "theme_color"
)
