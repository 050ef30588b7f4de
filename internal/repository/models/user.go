package models

import "time"

// User represents a row of the users table.
type User struct {
	ID           string    `db:"ID"`
	Email        string    `db:"EMAIL"`
	Name         string    `db:"NAME"`
	PasswordHash string    `db:"PASSWORD_HASH"`
	CreatedAt    time.Time `db:"CREATED_AT"`
	UpdatedAt    time.Time `db:"UPDATED_AT"`
}

// QuizAttempt represents a row of the quiz_attempts table.
type QuizAttempt struct {
	ID          string    `db:"ID"`
	UserID      string    `db:"USER_ID"`
	VerseID     string    `db:"VERSE_ID"`
	Reference   string    `db:"REFERENCE"`
	Answer      string    `db:"ANSWER"`
	Score       float64   `db:"SCORE"`
	Tier        string    `db:"TIER"`
	AttemptedAt time.Time `db:"ATTEMPTED_AT"`
}
