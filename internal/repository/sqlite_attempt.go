package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/drill/internal/db"
	"github.com/alexanderramin/drill/internal/domain"
)

// SQLiteAttemptRepo implements AttemptRepo using a SQLite database.
type SQLiteAttemptRepo struct {
	db db.DBTX
}

// NewSQLiteAttemptRepo creates a new SQLiteAttemptRepo.
func NewSQLiteAttemptRepo(conn db.DBTX) *SQLiteAttemptRepo {
	return &SQLiteAttemptRepo{db: conn}
}

func (r *SQLiteAttemptRepo) Create(ctx context.Context, a *domain.AttemptLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, lesson_id, title, xp, gems, correct, wrong, practice, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.LessonID, a.Title, a.XPEarned, a.GemsEarned,
		a.Correct, a.Wrong, boolToInt(a.Practice),
		a.CompletedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting attempt: %w", err)
	}
	return nil
}

func (r *SQLiteAttemptRepo) ListRecent(ctx context.Context, limit int) ([]*domain.AttemptLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, lesson_id, title, xp, gems, correct, wrong, practice, completed_at
		 FROM attempts ORDER BY completed_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing attempts: %w", err)
	}
	defer rows.Close()

	var out []*domain.AttemptLog
	for rows.Next() {
		var a domain.AttemptLog
		var practice int
		var completedAt string
		if err := rows.Scan(&a.ID, &a.LessonID, &a.Title, &a.XPEarned, &a.GemsEarned,
			&a.Correct, &a.Wrong, &practice, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		a.Practice = practice != 0
		if t, err := time.Parse(time.RFC3339, completedAt); err == nil {
			a.CompletedAt = t
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *SQLiteAttemptRepo) CountByLesson(ctx context.Context, lessonID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attempts WHERE lesson_id = ?`, lessonID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting attempts: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
