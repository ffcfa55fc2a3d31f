package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/drill/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed curriculum.yaml
var curriculumYAML []byte

//go:embed docs.yaml
var docsYAML []byte

// Catalog is the loaded, validated curriculum: the ordered unit chain plus
// the reference docs. Content is immutable after Load.
type Catalog struct {
	Units []domain.Unit
	Docs  []domain.Doc

	docsByConcept map[string]*domain.Doc
}

// curriculumFile is the YAML shape of the embedded curriculum: hand-authored
// units followed by topic stubs that expand into generated drill units.
type curriculumFile struct {
	Units  []domain.Unit `yaml:"units"`
	Topics []topicStub   `yaml:"topics"`
}

type topicStub struct {
	Title string `yaml:"title"`
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}

type docsFile struct {
	Docs []domain.Doc `yaml:"docs"`
}

// Load parses the embedded curriculum and docs, expands topic stubs, and
// validates the result. A validation failure is an authoring defect and
// fails loudly.
func Load() (*Catalog, error) {
	var cf curriculumFile
	if err := yaml.Unmarshal(curriculumYAML, &cf); err != nil {
		return nil, fmt.Errorf("parsing curriculum: %w", err)
	}
	var df docsFile
	if err := yaml.Unmarshal(docsYAML, &df); err != nil {
		return nil, fmt.Errorf("parsing docs: %w", err)
	}

	units := cf.Units
	for _, topic := range cf.Topics {
		units = append(units, generateUnit(len(units)+1, topic))
	}

	if errs := ValidateUnits(units); len(errs) > 0 {
		for _, err := range errs {
			slog.Error("curriculum validation", "error", err)
		}
		return nil, fmt.Errorf("curriculum has %d validation errors (first: %w)", len(errs), errs[0])
	}

	c := &Catalog{
		Units:         units,
		Docs:          df.Docs,
		docsByConcept: make(map[string]*domain.Doc, len(df.Docs)),
	}
	for i := range c.Docs {
		c.docsByConcept[c.Docs[i].Concept] = &c.Docs[i]
	}

	slog.Info("catalog loaded", "units", len(c.Units), "lessons", c.LessonCount(), "docs", len(c.Docs))
	return c, nil
}

// DocByConcept returns the reference doc for a concept tag. The second
// return is false when no doc covers the concept; callers show a graceful
// "unavailable" notice in that case.
func (c *Catalog) DocByConcept(concept string) (*domain.Doc, bool) {
	d, ok := c.docsByConcept[concept]
	return d, ok
}

// FindLesson returns the lesson with the given id and its owning unit.
func (c *Catalog) FindLesson(lessonID string) (*domain.Unit, *domain.Lesson) {
	return domain.FindLesson(c.Units, lessonID)
}

// LessonCount returns the total number of lessons across all units.
func (c *Catalog) LessonCount() int {
	n := 0
	for i := range c.Units {
		n += len(c.Units[i].Lessons)
	}
	return n
}

// CompletedQuestionPool gathers every question from lessons the player has
// completed. This is the practice draw pool.
func (c *Catalog) CompletedQuestionPool(completed func(string) bool) []domain.Question {
	var pool []domain.Question
	for i := range c.Units {
		for j := range c.Units[i].Lessons {
			l := &c.Units[i].Lessons[j]
			if completed(l.ID) {
				pool = append(pool, l.Questions...)
			}
		}
	}
	return pool
}

// generateUnit expands a topic stub into a five-lesson drill unit. Generated
// lessons alternate question formats so later units still exercise every
// interaction.
func generateUnit(num int, topic topicStub) domain.Unit {
	unitID := fmt.Sprintf("unit-%d", num)
	lessons := make([]domain.Lesson, 0, 5)
	for i := 1; i <= 5; i++ {
		lessonID := fmt.Sprintf("u%d-l%d", num, i)
		lessons = append(lessons, domain.Lesson{
			ID:          lessonID,
			Title:       fmt.Sprintf("%s %d", topic.Title, i),
			Description: fmt.Sprintf("Drilling %s.", topic.Title),
			Icon:        topic.Icon,
			XP:          10,
			Gems:        5,
			Questions: []domain.Question{
				{
					ID:          lessonID + "-q1",
					Type:        domain.QuestionMultipleChoice,
					Prompt:      fmt.Sprintf("What is a key feature of %s?", topic.Title),
					Concept:     topic.Title,
					Explanation: fmt.Sprintf("%s is a core part of modern web development.", topic.Title),
					Options: []domain.Option{
						{ID: lessonID + "-q1-o1", Text: "It helps build user interfaces", Correct: true},
						{ID: lessonID + "-q1-o2", Text: "It makes coffee"},
						{ID: lessonID + "-q1-o3", Text: "It is a database"},
					},
				},
				{
					ID:             lessonID + "-q2",
					Type:           domain.QuestionFillCode,
					Prompt:         fmt.Sprintf("Complete this %s snippet.", topic.Title),
					CodeSnippet:    `const result = apply("____");`,
					ExpectedAnswer: "value",
					Concept:        topic.Title,
					Explanation:    "Pass the value as a string literal.",
				},
			},
		})
	}
	return domain.Unit{
		ID:          unitID,
		Title:       topic.Title,
		Description: fmt.Sprintf("Go deeper into %s.", topic.Title),
		Color:       topic.Color,
		Lessons:     lessons,
	}
}
