package repository

import (
	"context"
	"fmt"
	"time"

	"verse-journal/internal/domain"
	"verse-journal/internal/repository/models"
	"verse-journal/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxQuizAttemptRepository implements domain.QuizAttemptRepository using sqlx.
type sqlxQuizAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizAttemptRepository creates a new instance of sqlxQuizAttemptRepository.
func NewSQLXQuizAttemptRepository(db *sqlx.DB) domain.QuizAttemptRepository {
	return &sqlxQuizAttemptRepository{db: db}
}

func toDomainQuizAttempt(m *models.QuizAttempt) *domain.QuizAttempt {
	return &domain.QuizAttempt{
		ID:          m.ID,
		UserID:      m.UserID,
		VerseID:     m.VerseID,
		Reference:   m.Reference,
		Answer:      m.Answer,
		Score:       m.Score,
		Tier:        m.Tier,
		AttemptedAt: m.AttemptedAt,
	}
}

// CreateAttempt inserts a new quiz attempt into the database.
func (r *sqlxQuizAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}

	row := models.QuizAttempt{
		ID:          attempt.ID,
		UserID:      attempt.UserID,
		VerseID:     attempt.VerseID,
		Reference:   attempt.Reference,
		Answer:      attempt.Answer,
		Score:       attempt.Score,
		Tier:        attempt.Tier,
		AttemptedAt: attempt.AttemptedAt,
	}
	query := `INSERT INTO quiz_attempts (ID, USER_ID, VERSE_ID, REFERENCE, ANSWER, SCORE, TIER, ATTEMPTED_AT)
	          VALUES (:ID, :USER_ID, :VERSE_ID, :REFERENCE, :ANSWER, :SCORE, :TIER, :ATTEMPTED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

// ListAttemptsByUser returns a page of the user's attempts, newest first,
// along with the user's total attempt count.
func (r *sqlxQuizAttemptRepository) ListAttemptsByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.QuizAttempt, int, error) {
	exec := GetExecutor(ctx, r.db)

	var total int
	if err := exec.GetContext(ctx, &total, exec.Rebind("SELECT COUNT(*) FROM quiz_attempts WHERE USER_ID = ?"), userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count quiz attempts: %w", err)
	}
	if total == 0 {
		return []*domain.QuizAttempt{}, 0, nil
	}

	query, pageArgs := paginate(exec.DriverName(),
		`SELECT ID, USER_ID, VERSE_ID, REFERENCE, ANSWER, SCORE, TIER, ATTEMPTED_AT
		 FROM quiz_attempts WHERE USER_ID = ? ORDER BY ATTEMPTED_AT DESC, ID DESC`, limit, offset)
	args := append([]interface{}{userID}, pageArgs...)

	var rows []models.QuizAttempt
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list quiz attempts: %w", err)
	}

	attempts := make([]*domain.QuizAttempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainQuizAttempt(&rows[i]))
	}
	return attempts, total, nil
}
