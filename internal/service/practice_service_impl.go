package service

import (
	"context"
	"math/rand"

	"github.com/alexanderramin/drill/internal/catalog"
	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/engine"
	"github.com/google/uuid"
)

type practiceService struct {
	catalog  *catalog.Catalog
	progress ProgressService
	rng      *rand.Rand
}

// NewPracticeService builds practice sessions from the player's completed
// lessons.
func NewPracticeService(cat *catalog.Catalog, progress ProgressService, rng *rand.Rand) PracticeService {
	return &practiceService{catalog: cat, progress: progress, rng: rng}
}

// BuildLesson draws up to the practice pool size of questions, without
// replacement, from every completed lesson and wraps them in an ephemeral
// lesson that grants a small XP reward and no gems. An empty pool means
// practice cannot start.
func (s *practiceService) BuildLesson(ctx context.Context) (*domain.Lesson, error) {
	ledger, err := s.progress.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	pool := s.catalog.CompletedQuestionPool(ledger.HasCompleted)
	if len(pool) == 0 {
		return nil, ErrNoPracticePool
	}
	return &domain.Lesson{
		ID:          "practice-" + uuid.New().String(),
		Title:       "Practice Session",
		Description: "Reviewing your skills.",
		Icon:        "🏋️",
		XP:          domain.PracticeXP,
		Gems:        0,
		Questions:   engine.SampleQuestions(s.rng, pool, domain.PracticePoolSize),
	}, nil
}
