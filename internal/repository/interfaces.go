package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/drill/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// LedgerRepo persists the progression ledger as a single serialized snapshot
// under a well-known key. Load overlays the stored object onto defaults so
// snapshots written by older builds keep working.
type LedgerRepo interface {
	Load(ctx context.Context) (*domain.Ledger, error)
	Save(ctx context.Context, l *domain.Ledger) error
}

// AttemptRepo records finished quiz sessions.
type AttemptRepo interface {
	Create(ctx context.Context, a *domain.AttemptLog) error
	ListRecent(ctx context.Context, limit int) ([]*domain.AttemptLog, error)
	CountByLesson(ctx context.Context, lessonID string) (int, error)
}
