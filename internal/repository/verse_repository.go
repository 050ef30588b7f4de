package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"verse-journal/internal/domain"
	"verse-journal/internal/repository/models"
	"verse-journal/internal/util"

	"github.com/jmoiron/sqlx"
)

const verseColumns = "ID, USER_ID, REFERENCE, TEXT, CATEGORIES, CREATED_AT"

type sqlxVerseRepository struct {
	db *sqlx.DB
}

// NewSQLXVerseRepository creates a verse repository backed by sqlx.
func NewSQLXVerseRepository(db *sqlx.DB) domain.VerseRepository {
	return &sqlxVerseRepository{db: db}
}

func toDomainVerse(m *models.Verse) *domain.Verse {
	categories := []domain.Category(m.Categories)
	if categories == nil {
		categories = []domain.Category{}
	}
	return &domain.Verse{
		ID:         m.ID,
		UserID:     m.UserID,
		Reference:  m.Reference,
		Text:       m.Text,
		Categories: categories,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *sqlxVerseRepository) CreateVerse(ctx context.Context, verse *domain.Verse) error {
	if verse.ID == "" {
		verse.ID = util.NewULID()
	}
	if verse.CreatedAt.IsZero() {
		verse.CreatedAt = time.Now()
	}

	row := models.Verse{
		ID:         verse.ID,
		UserID:     verse.UserID,
		Reference:  verse.Reference,
		Text:       verse.Text,
		Categories: models.CategoryList(verse.Categories),
		CreatedAt:  verse.CreatedAt,
	}
	query := `INSERT INTO verses (ID, USER_ID, REFERENCE, TEXT, CATEGORIES, CREATED_AT)
	          VALUES (:ID, :USER_ID, :REFERENCE, :TEXT, :CATEGORIES, :CREATED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create verse: %w", err)
	}
	return nil
}

func (r *sqlxVerseRepository) GetVerseByID(ctx context.Context, userID, verseID string) (*domain.Verse, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind("SELECT " + verseColumns + " FROM verses WHERE ID = ? AND USER_ID = ?")

	var row models.Verse
	if err := exec.GetContext(ctx, &row, query, verseID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get verse: %w", err)
	}
	return toDomainVerse(&row), nil
}

// ListVersesByUser returns the user's verses, newest first.
func (r *sqlxVerseRepository) ListVersesByUser(ctx context.Context, userID string) ([]*domain.Verse, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind("SELECT " + verseColumns + " FROM verses WHERE USER_ID = ? ORDER BY CREATED_AT DESC, ID DESC")

	var rows []models.Verse
	if err := exec.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list verses: %w", err)
	}

	verses := make([]*domain.Verse, 0, len(rows))
	for i := range rows {
		verses = append(verses, toDomainVerse(&rows[i]))
	}
	return verses, nil
}

// DeleteVerse reports false when the verse does not exist or belongs to
// another user.
func (r *sqlxVerseRepository) DeleteVerse(ctx context.Context, userID, verseID string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	res, err := exec.ExecContext(ctx, exec.Rebind("DELETE FROM verses WHERE ID = ? AND USER_ID = ?"), verseID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete verse: %w", err)
	}
	return rowsAffected(res)
}
