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

type sqlxSermonNoteRepository struct {
	db *sqlx.DB
}

func NewSQLXSermonNoteRepository(db *sqlx.DB) domain.SermonNoteRepository {
	return &sqlxSermonNoteRepository{db: db}
}

func (r *sqlxSermonNoteRepository) CreateSermonNote(ctx context.Context, note *domain.SermonNote) error {
	if note.ID == "" {
		note.ID = util.NewULID()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	row := models.SermonNote{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Preacher:  util.StringToNullString(note.Preacher),
		NoteDate:  note.Date,
		Notes:     note.Notes,
		CreatedAt: note.CreatedAt,
	}
	query := `INSERT INTO sermon_notes (ID, USER_ID, TITLE, PREACHER, NOTE_DATE, NOTES, CREATED_AT)
	          VALUES (:ID, :USER_ID, :TITLE, :PREACHER, :NOTE_DATE, :NOTES, :CREATED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create sermon note: %w", err)
	}
	return nil
}

// ListSermonNotesByUser returns the user's notes, most recent sermon first.
func (r *sqlxSermonNoteRepository) ListSermonNotesByUser(ctx context.Context, userID string) ([]*domain.SermonNote, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT ID, USER_ID, TITLE, PREACHER, NOTE_DATE, NOTES, CREATED_AT
	          FROM sermon_notes WHERE USER_ID = ? ORDER BY NOTE_DATE DESC, CREATED_AT DESC`)

	var rows []models.SermonNote
	if err := exec.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list sermon notes: %w", err)
	}

	notes := make([]*domain.SermonNote, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, &domain.SermonNote{
			ID:        row.ID,
			UserID:    row.UserID,
			Title:     row.Title,
			Preacher:  util.NullStringToString(row.Preacher),
			Date:      row.NoteDate,
			Notes:     row.Notes,
			CreatedAt: row.CreatedAt,
		})
	}
	return notes, nil
}

func (r *sqlxSermonNoteRepository) DeleteSermonNote(ctx context.Context, userID, noteID string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	res, err := exec.ExecContext(ctx, exec.Rebind("DELETE FROM sermon_notes WHERE ID = ? AND USER_ID = ?"), noteID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete sermon note: %w", err)
	}
	return rowsAffected(res)
}

type sqlxQuietTimeRepository struct {
	db *sqlx.DB
}

func NewSQLXQuietTimeRepository(db *sqlx.DB) domain.QuietTimeRepository {
	return &sqlxQuietTimeRepository{db: db}
}

func (r *sqlxQuietTimeRepository) CreateQuietTimeEntry(ctx context.Context, entry *domain.QuietTimeEntry) error {
	if entry.ID == "" {
		entry.ID = util.NewULID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	row := models.QuietTimeEntry{
		ID:         entry.ID,
		UserID:     entry.UserID,
		EntryDate:  entry.Date,
		Passage:    entry.Passage,
		Reflection: entry.Reflection,
		Prayer:     util.StringToNullString(entry.Prayer),
		CreatedAt:  entry.CreatedAt,
	}
	query := `INSERT INTO quiet_time_entries (ID, USER_ID, ENTRY_DATE, PASSAGE, REFLECTION, PRAYER, CREATED_AT)
	          VALUES (:ID, :USER_ID, :ENTRY_DATE, :PASSAGE, :REFLECTION, :PRAYER, :CREATED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create quiet time entry: %w", err)
	}
	return nil
}

func (r *sqlxQuietTimeRepository) ListQuietTimeEntriesByUser(ctx context.Context, userID string) ([]*domain.QuietTimeEntry, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT ID, USER_ID, ENTRY_DATE, PASSAGE, REFLECTION, PRAYER, CREATED_AT
	          FROM quiet_time_entries WHERE USER_ID = ? ORDER BY ENTRY_DATE DESC, CREATED_AT DESC`)

	var rows []models.QuietTimeEntry
	if err := exec.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list quiet time entries: %w", err)
	}

	entries := make([]*domain.QuietTimeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &domain.QuietTimeEntry{
			ID:         row.ID,
			UserID:     row.UserID,
			Date:       row.EntryDate,
			Passage:    row.Passage,
			Reflection: row.Reflection,
			Prayer:     util.NullStringToString(row.Prayer),
			CreatedAt:  row.CreatedAt,
		})
	}
	return entries, nil
}

func (r *sqlxQuietTimeRepository) DeleteQuietTimeEntry(ctx context.Context, userID, entryID string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	res, err := exec.ExecContext(ctx, exec.Rebind("DELETE FROM quiet_time_entries WHERE ID = ? AND USER_ID = ?"), entryID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete quiet time entry: %w", err)
	}
	return rowsAffected(res)
}
