package domain

import "context"

// PassageVerse is a single verse of a looked up passage.
type PassageVerse struct {
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
}

// Passage is the text of a scripture reference in one translation.
type Passage struct {
	Reference       string         `json:"reference"`
	Text            string         `json:"text"`
	TranslationID   string         `json:"translation_id"`
	TranslationName string         `json:"translation_name"`
	Verses          []PassageVerse `json:"verses"`
}

// BibleBook is an entry of the canonical book catalogue.
type BibleBook struct {
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
}

// PassageSource fetches passages from a remote Bible text service.
// It returns a CodeBiblePassageNotFound DomainError for unknown references.
type PassageSource interface {
	FetchPassage(ctx context.Context, reference, translation string) (*Passage, error)
}
