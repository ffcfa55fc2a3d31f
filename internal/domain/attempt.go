package domain

import "time"

// AttemptLog records one finished quiz session for the history view. Aborted
// sessions are never recorded.
type AttemptLog struct {
	ID          string
	LessonID    string
	Title       string
	XPEarned    int
	GemsEarned  int
	Correct     int
	Wrong       int
	Practice    bool
	CompletedAt time.Time
}
