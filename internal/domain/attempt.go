package domain

import (
	"context"
	"time"
)

// QuizAttempt is one graded answer, kept for the user's history.
type QuizAttempt struct {
	ID          string
	UserID      string
	VerseID     string
	Reference   string
	Answer      string
	Score       float64
	Tier        string
	AttemptedAt time.Time
}

// QuizAttemptRepository defines the interface for quiz attempt persistence.
type QuizAttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
	// ListAttemptsByUser returns a page of attempts, newest first, and the total count.
	ListAttemptsByUser(ctx context.Context, userID string, limit, offset int) ([]*QuizAttempt, int, error)
}
