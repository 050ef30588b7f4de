package domain

import (
	"context"
	"time"
)

// SermonNote records what was preached on a given day.
type SermonNote struct {
	ID        string
	UserID    string
	Title     string
	Preacher  string
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// NewSermonNote creates a new SermonNote instance
func NewSermonNote(userID, title, preacher string, date time.Time, notes string) *SermonNote {
	return &SermonNote{
		UserID:    userID,
		Title:     title,
		Preacher:  preacher,
		Date:      date,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
}

// QuietTimeEntry is a daily devotional reflection on a passage.
type QuietTimeEntry struct {
	ID         string
	UserID     string
	Date       time.Time
	Passage    string
	Reflection string
	Prayer     string
	CreatedAt  time.Time
}

// NewQuietTimeEntry creates a new QuietTimeEntry instance
func NewQuietTimeEntry(userID string, date time.Time, passage, reflection, prayer string) *QuietTimeEntry {
	return &QuietTimeEntry{
		UserID:     userID,
		Date:       date,
		Passage:    passage,
		Reflection: reflection,
		Prayer:     prayer,
		CreatedAt:  time.Now(),
	}
}

// SermonNoteRepository defines the interface for sermon note persistence.
type SermonNoteRepository interface {
	CreateSermonNote(ctx context.Context, note *SermonNote) error
	ListSermonNotesByUser(ctx context.Context, userID string) ([]*SermonNote, error)
	DeleteSermonNote(ctx context.Context, userID, noteID string) (bool, error)
}

// QuietTimeRepository defines the interface for quiet time persistence.
type QuietTimeRepository interface {
	CreateQuietTimeEntry(ctx context.Context, entry *QuietTimeEntry) error
	ListQuietTimeEntriesByUser(ctx context.Context, userID string) ([]*QuietTimeEntry, error)
	DeleteQuietTimeEntry(ctx context.Context, userID, entryID string) (bool, error)
}
