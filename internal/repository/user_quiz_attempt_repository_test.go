package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"verse-journal/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLXQuizAttemptRepository_CreateAttempt(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizAttemptRepository(db)
	defer db.Close()

	attempt := &domain.QuizAttempt{
		UserID:    "user-1",
		VerseID:   "verse-1",
		Reference: "John 3:16",
		Answer:    "for god so loved the world",
		Score:     0.4,
		Tier:      "poor",
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quiz_attempts (ID, USER_ID, VERSE_ID, REFERENCE, ANSWER, SCORE, TIER, ATTEMPTED_AT)`)).
		WithArgs(sqlmock.AnyArg(), "user-1", "verse-1", "John 3:16", "for god so loved the world", 0.4, "poor", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateAttempt(context.Background(), attempt))
	assert.NotEmpty(t, attempt.ID)
	assert.False(t, attempt.AttemptedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizAttemptRepository_ListAttemptsByUser(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizAttemptRepository(db)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM quiz_attempts WHERE USER_ID = ?")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))

	rows := sqlmock.NewRows([]string{"ID", "USER_ID", "VERSE_ID", "REFERENCE", "ANSWER", "SCORE", "TIER", "ATTEMPTED_AT"}).
		AddRow("a2", "user-1", "v1", "John 3:16", "answer", 0.9, "excellent", now).
		AddRow("a1", "user-1", "v2", "Psalm 23:1", "answer", 0.7, "close", now.Add(-time.Minute))
	mock.ExpectQuery(`FROM quiz_attempts WHERE USER_ID = \? ORDER BY ATTEMPTED_AT DESC, ID DESC LIMIT \? OFFSET \?`).
		WithArgs("user-1", 2, 0).
		WillReturnRows(rows)

	attempts, total, err := repo.ListAttemptsByUser(context.Background(), "user-1", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, attempts, 2)
	assert.Equal(t, "a2", attempts[0].ID)
	assert.Equal(t, "excellent", attempts[0].Tier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizAttemptRepository_ListAttemptsByUser_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizAttemptRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM quiz_attempts`).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))

	attempts, total, err := repo.ListAttemptsByUser(context.Background(), "user-1", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
