package catalog

import "github.com/alexanderramin/drill/internal/domain"

// Achievements is the fixed achievement table. Order matters: it is the
// discovery order when several predicates flip true on the same mutation.
var Achievements = []domain.Achievement{
	{
		ID:          "first-step",
		Title:       "Hello World",
		Description: "Complete the very first lesson.",
		Condition: func(l *domain.Ledger) bool {
			return len(l.CompletedLessons) >= 1
		},
	},
	{
		ID:          "web-master",
		Title:       "Web Master",
		Description: "Finish Unit 1 (Digital Foundations).",
		Condition: func(l *domain.Ledger) bool {
			return l.HasCompleted("u1-l5")
		},
	},
	{
		ID:          "rich-kid",
		Title:       "Gem Collector",
		Description: "Amass 100 gems.",
		Condition: func(l *domain.Ledger) bool {
			return l.Gems >= 100
		},
	},
	{
		ID:          "streak-master",
		Title:       "Committed",
		Description: "Reach a 3-day streak.",
		Condition: func(l *domain.Ledger) bool {
			return l.Streak >= 3
		},
	},
}

// AchievementByID returns the achievement with the given id.
func AchievementByID(id string) (domain.Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Achievement{}, false
}
