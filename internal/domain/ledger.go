package domain

// Canonical progression constants.
const (
	MaxHearts        = 5
	StartingGems     = 50
	StartingStreak   = 1
	PracticeXP       = 5
	PracticePoolSize = 10
)

// DateLayout is the calendar-day granularity used for streak bookkeeping.
const DateLayout = "2006-01-02"

// Ledger is the authoritative progression state. It is serialized as a single
// JSON snapshot; on load, stored fields are overlaid onto NewLedger() so that
// fields added later pick up their defaults from older snapshots.
//
// Only the progress service mutates a Ledger. Everything else reads it.
type Ledger struct {
	Hearts            int        `json:"hearts"`
	XP                int        `json:"xp"`
	Gems              int        `json:"gems"`
	Streak            int        `json:"streak"`
	Difficulty        Difficulty `json:"difficulty"`
	Theme             Theme      `json:"theme"`
	LastCompletedDate string     `json:"last_completed_date"` // YYYY-MM-DD, "" if never
	CompletedLessons  []string   `json:"completed_lessons"`
	Achievements      []string   `json:"achievements"`
	Inventory         []string   `json:"inventory"`
}

// NewLedger returns the canonical initial ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Hearts:           MaxHearts,
		XP:               0,
		Gems:             StartingGems,
		Streak:           StartingStreak,
		Difficulty:       DifficultyMedium,
		Theme:            ThemeDark,
		CompletedLessons: []string{},
		Achievements:     []string{},
		Inventory:        []string{},
	}
}

// Clone returns a deep copy. Mutation is read-copy-replace; callers never
// edit a ledger another component may be reading.
func (l *Ledger) Clone() *Ledger {
	c := *l
	c.CompletedLessons = append([]string(nil), l.CompletedLessons...)
	c.Achievements = append([]string(nil), l.Achievements...)
	c.Inventory = append([]string(nil), l.Inventory...)
	return &c
}

// HasCompleted reports whether the lesson id is in the completed set.
func (l *Ledger) HasCompleted(lessonID string) bool {
	return contains(l.CompletedLessons, lessonID)
}

// HasAchievement reports whether the achievement id has been unlocked.
func (l *Ledger) HasAchievement(id string) bool {
	return contains(l.Achievements, id)
}

// Owns reports whether the item id is in the inventory.
func (l *Ledger) Owns(itemID string) bool {
	return contains(l.Inventory, itemID)
}

// HealthExempt reports whether mistakes currently cost hearts. Practice runs
// and easy difficulty play without a health stake.
func (l *Ledger) HealthExempt(practice bool) bool {
	return practice || l.Difficulty == DifficultyEasy
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
