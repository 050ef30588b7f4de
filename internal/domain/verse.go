package domain

import (
	"context"
	"time"

	"verse-journal/internal/quiz"
)

// CategoryType is the kind of a verse tag.
type CategoryType string

const (
	CategorySeason CategoryType = "season"
	CategoryMood   CategoryType = "mood"
	CategoryTopic  CategoryType = "topic"
)

// Valid reports whether t is one of the known tag kinds.
func (t CategoryType) Valid() bool {
	switch t {
	case CategorySeason, CategoryMood, CategoryTopic:
		return true
	}
	return false
}

// Category is a tag attached to a verse, e.g. {mood, "anxious"}.
type Category struct {
	Type  CategoryType `json:"type"`
	Value string       `json:"value"`
}

// Verse is a scripture passage saved by a user.
type Verse struct {
	ID         string
	UserID     string
	Reference  string
	Text       string
	Categories []Category
	CreatedAt  time.Time
}

// NewVerse creates a new Verse instance
func NewVerse(userID, reference, text string, categories []Category) *Verse {
	if categories == nil {
		categories = []Category{}
	}
	return &Verse{
		UserID:     userID,
		Reference:  reference,
		Text:       text,
		Categories: categories,
		CreatedAt:  time.Now(),
	}
}

// HasCategory reports whether the verse carries the given tag. An empty
// value matches any tag of that type.
func (v *Verse) HasCategory(t CategoryType, value string) bool {
	for _, c := range v.Categories {
		if c.Type != t {
			continue
		}
		if value == "" || c.Value == value {
			return true
		}
	}
	return false
}

// QuizVerse is the verse as seen by a quiz session.
func (v *Verse) QuizVerse() quiz.Verse {
	return quiz.Verse{ID: v.ID, Reference: v.Reference, Text: v.Text}
}

// VerseFilter narrows a verse listing. Zero values disable the filter.
type VerseFilter struct {
	CategoryType  CategoryType
	CategoryValue string
}

// VerseRepository defines the interface for verse persistence.
type VerseRepository interface {
	CreateVerse(ctx context.Context, verse *Verse) error
	GetVerseByID(ctx context.Context, userID, verseID string) (*Verse, error)
	ListVersesByUser(ctx context.Context, userID string) ([]*Verse, error)
	DeleteVerse(ctx context.Context, userID, verseID string) (bool, error)
}
