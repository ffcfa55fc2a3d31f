package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttempt(lessonID string, completedAt time.Time) *domain.AttemptLog {
	return &domain.AttemptLog{
		ID:          uuid.New().String(),
		LessonID:    lessonID,
		Title:       "Lesson " + lessonID,
		XPEarned:    10,
		GemsEarned:  5,
		Correct:     3,
		Wrong:       1,
		CompletedAt: completedAt,
	}
}

func TestAttemptRepo_CreateAndListRecent(t *testing.T) {
	repo := NewSQLiteAttemptRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newAttempt("u1-l1", base)))
	require.NoError(t, repo.Create(ctx, newAttempt("u1-l2", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newAttempt("u1-l3", base.Add(2*time.Hour))))

	got, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, "u1-l3", got[0].LessonID)
	assert.Equal(t, "u1-l2", got[1].LessonID)
	assert.Equal(t, base.Add(2*time.Hour), got[0].CompletedAt)
	assert.Equal(t, 3, got[0].Correct)
	assert.Equal(t, 1, got[0].Wrong)
}

func TestAttemptRepo_PracticeFlagRoundTrip(t *testing.T) {
	repo := NewSQLiteAttemptRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := newAttempt("practice-abc", time.Now().UTC().Truncate(time.Second))
	a.Practice = true
	a.GemsEarned = 0
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Practice)
	assert.Zero(t, got[0].GemsEarned)
}

func TestAttemptRepo_CountByLesson(t *testing.T) {
	repo := NewSQLiteAttemptRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, newAttempt("u1-l1", now)))
	require.NoError(t, repo.Create(ctx, newAttempt("u1-l1", now.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, newAttempt("u1-l2", now)))

	n, err := repo.CountByLesson(ctx, "u1-l1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountByLesson(ctx, "ghost")
	require.NoError(t, err)
	assert.Zero(t, n)
}
