package domain

// Lesson is an ordered run of questions with a fixed reward. Lessons carry no
// lock or completion state; both are derived from the ledger's completed set
// on demand.
type Lesson struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"icon"`
	XP          int        `yaml:"xp"`
	Gems        int        `yaml:"gems"`
	Questions   []Question `yaml:"questions"`
}

// Unit groups lessons into one segment of the curriculum. Units and their
// lessons form a single linear path with no branching.
type Unit struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Color       string   `yaml:"color"`
	Lessons     []Lesson `yaml:"lessons"`
}

// FindLesson returns the lesson with the given id and its owning unit.
func FindLesson(units []Unit, lessonID string) (*Unit, *Lesson) {
	for i := range units {
		for j := range units[i].Lessons {
			if units[i].Lessons[j].ID == lessonID {
				return &units[i], &units[i].Lessons[j]
			}
		}
	}
	return nil, nil
}
