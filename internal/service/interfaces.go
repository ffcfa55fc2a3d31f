package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/drill/internal/domain"
)

// Purchase and practice rejections. These are rejected no-ops surfaced as
// notices, never faults.
var (
	ErrInsufficientGems = errors.New("not enough gems")
	ErrHeartsFull       = errors.New("hearts are already full")
	ErrAlreadyOwned     = errors.New("item already owned")
	ErrNoPracticePool   = errors.New("no completed lessons to practice")
)

// CompletionResult reports the ledger after a lesson completion plus any
// achievements that unlocked because of it, in declaration order.
type CompletionResult struct {
	Ledger   *domain.Ledger
	Unlocked []domain.Achievement
}

// SessionStats is the per-session tally handed over when a quiz completes.
type SessionStats struct {
	XPEarned int
	Correct  int
	Wrong    int
}

// ProgressService owns the progression ledger. Every mutation goes through
// one of these operations; each applies atomically (read, compute, replace),
// re-scans achievements, and persists the snapshot. Persistence failures are
// logged and swallowed; the in-memory ledger stays authoritative.
type ProgressService interface {
	Ledger(ctx context.Context) (*domain.Ledger, error)
	ApplyLessonCompletion(ctx context.Context, lesson *domain.Lesson, stats SessionStats, practice bool) (*CompletionResult, error)
	ApplyHealthLoss(ctx context.Context, practice bool) (*domain.Ledger, error)
	ApplyPurchase(ctx context.Context, item domain.ShopItem) (*domain.Ledger, error)
	SetDifficulty(ctx context.Context, d domain.Difficulty) (*domain.Ledger, error)
	SetTheme(ctx context.Context, t domain.Theme) (*domain.Ledger, error)
	ResetAll(ctx context.Context) (*domain.Ledger, error)
}

// PracticeService builds ephemeral practice lessons from completed content.
type PracticeService interface {
	BuildLesson(ctx context.Context) (*domain.Lesson, error)
}

// HistoryService reads the attempt log for the profile view.
type HistoryService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.AttemptLog, error)
}
