package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/drill/internal/db"
	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/repository"
	"github.com/google/uuid"
)

type progressService struct {
	ledgers      repository.LedgerRepo
	attempts     repository.AttemptRepo
	uow          db.UnitOfWork
	achievements []domain.Achievement

	// now is swappable for streak tests.
	now func() time.Time

	// current is the authoritative in-memory ledger once loaded. The app is
	// single-threaded and event-driven; operations run to completion before
	// the next event, so no locking is needed here.
	current *domain.Ledger
}

// NewProgressService creates the ledger owner. achievements is the fixed
// catalog table; its order is the unlock discovery order.
func NewProgressService(ledgers repository.LedgerRepo, attempts repository.AttemptRepo, uow db.UnitOfWork, achievements []domain.Achievement) ProgressService {
	return &progressService{
		ledgers:      ledgers,
		attempts:     attempts,
		uow:          uow,
		achievements: achievements,
		now:          time.Now,
	}
}

func (s *progressService) Ledger(ctx context.Context) (*domain.Ledger, error) {
	if s.current != nil {
		return s.current, nil
	}
	l, err := s.ledgers.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.current = l
	return l, nil
}

func (s *progressService) ApplyLessonCompletion(ctx context.Context, lesson *domain.Lesson, stats SessionStats, practice bool) (*CompletionResult, error) {
	prev, err := s.Ledger(ctx)
	if err != nil {
		return nil, err
	}

	next := prev.Clone()
	next.XP += stats.XPEarned
	gemsEarned := 0
	if !practice {
		gemsEarned = lesson.Gems
		next.Gems += gemsEarned
		if !next.HasCompleted(lesson.ID) {
			next.CompletedLessons = append(next.CompletedLessons, lesson.ID)
		}
		next.Streak = nextStreak(prev, s.now())
		next.LastCompletedDate = s.now().Format(domain.DateLayout)
	}
	unlocked := s.scanAchievements(next)
	s.current = next

	attempt := &domain.AttemptLog{
		ID:          uuid.New().String(),
		LessonID:    lesson.ID,
		Title:       lesson.Title,
		XPEarned:    stats.XPEarned,
		GemsEarned:  gemsEarned,
		Correct:     stats.Correct,
		Wrong:       stats.Wrong,
		Practice:    practice,
		CompletedAt: s.now().UTC(),
	}

	// Snapshot and attempt row land in one transaction. A storage failure
	// is not fatal to the session: the in-memory ledger already advanced.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteLedgerRepo(tx).Save(ctx, next); err != nil {
			return err
		}
		return repository.NewSQLiteAttemptRepo(tx).Create(ctx, attempt)
	})
	if err != nil {
		slog.Error("persisting lesson completion", "lesson", lesson.ID, "error", err)
	}

	return &CompletionResult{Ledger: next, Unlocked: unlocked}, nil
}

func (s *progressService) ApplyHealthLoss(ctx context.Context, practice bool) (*domain.Ledger, error) {
	prev, err := s.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	if prev.HealthExempt(practice) {
		return prev, nil
	}
	if prev.Hearts == 0 {
		return prev, nil
	}
	next := prev.Clone()
	next.Hearts--
	s.scanAchievements(next)
	s.commit(ctx, next)
	return next, nil
}

func (s *progressService) ApplyPurchase(ctx context.Context, item domain.ShopItem) (*domain.Ledger, error) {
	prev, err := s.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	if prev.Gems < item.Cost {
		return prev, ErrInsufficientGems
	}

	next := prev.Clone()
	switch {
	case item.Effect == domain.EffectHeartRefill:
		if prev.Hearts >= domain.MaxHearts {
			return prev, ErrHeartsFull
		}
		next.Hearts = domain.MaxHearts
	case prev.Owns(item.ID) && !item.Repeatable():
		return prev, ErrAlreadyOwned
	default:
		next.Inventory = append(next.Inventory, item.ID)
	}
	next.Gems -= item.Cost

	s.scanAchievements(next)
	s.commit(ctx, next)
	return next, nil
}

func (s *progressService) SetDifficulty(ctx context.Context, d domain.Difficulty) (*domain.Ledger, error) {
	return s.mutate(ctx, func(l *domain.Ledger) { l.Difficulty = d })
}

func (s *progressService) SetTheme(ctx context.Context, t domain.Theme) (*domain.Ledger, error) {
	return s.mutate(ctx, func(l *domain.Ledger) { l.Theme = t })
}

func (s *progressService) ResetAll(ctx context.Context) (*domain.Ledger, error) {
	next := domain.NewLedger()
	s.scanAchievements(next)
	s.commit(ctx, next)
	return next, nil
}

// mutate applies fn to a clone of the ledger, re-scans achievements, and
// commits the result.
func (s *progressService) mutate(ctx context.Context, fn func(*domain.Ledger)) (*domain.Ledger, error) {
	prev, err := s.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	next := prev.Clone()
	fn(next)
	s.scanAchievements(next)
	s.commit(ctx, next)
	return next, nil
}

// commit replaces the in-memory ledger and writes the snapshot. Persistence
// failures are logged, never propagated.
func (s *progressService) commit(ctx context.Context, next *domain.Ledger) {
	s.current = next
	if err := s.ledgers.Save(ctx, next); err != nil {
		slog.Error("persisting ledger snapshot", "error", err)
	}
}

// scanAchievements unlocks every not-yet-unlocked achievement whose predicate
// now holds, in declaration order. Unlocks are append-only; nothing here ever
// removes an id.
func (s *progressService) scanAchievements(l *domain.Ledger) []domain.Achievement {
	var unlocked []domain.Achievement
	for _, a := range s.achievements {
		if l.HasAchievement(a.ID) {
			continue
		}
		if a.Condition(l) {
			l.Achievements = append(l.Achievements, a.ID)
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

// nextStreak applies the calendar-day streak rule: same day keeps the streak,
// a completion the day after the last one extends it, any larger gap (or no
// prior completion) resets to 1.
func nextStreak(l *domain.Ledger, today time.Time) int {
	if l.LastCompletedDate == today.Format(domain.DateLayout) {
		return l.Streak
	}
	if l.LastCompletedDate == today.AddDate(0, 0, -1).Format(domain.DateLayout) {
		return l.Streak + 1
	}
	return 1
}
