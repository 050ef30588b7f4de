package dto

import "time"

// CategoryDTO is a verse tag such as {"type": "mood", "value": "anxious"}.
type CategoryDTO struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// CreateVerseRequest is the body of POST /api/verses.
// @Description Request body for saving a verse
type CreateVerseRequest struct {
	Reference  string        `json:"reference"`
	Text       string        `json:"text"`
	Categories []CategoryDTO `json:"categories"`
}

// VerseFilterQuery filters GET /api/verses.
type VerseFilterQuery struct {
	CategoryType  string `query:"category_type"`
	CategoryValue string `query:"category_value"`
}

// VerseResponse represents a saved verse in the API response
type VerseResponse struct {
	ID         string        `json:"id"`
	Reference  string        `json:"reference"`
	Text       string        `json:"text"`
	Categories []CategoryDTO `json:"categories"`
	CreatedAt  time.Time     `json:"created_at"`
}

// CreateSermonNoteRequest is the body of POST /api/sermon-notes.
// @Description Request body for saving a sermon note
type CreateSermonNoteRequest struct {
	Title    string `json:"title"`
	Preacher string `json:"preacher"`
	Date     string `json:"date"` // YYYY-MM-DD
	Notes    string `json:"notes"`
}

type SermonNoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Preacher  string    `json:"preacher,omitempty"`
	Date      string    `json:"date"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateQuietTimeRequest is the body of POST /api/quiet-time.
// @Description Request body for saving a quiet time entry
type CreateQuietTimeRequest struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Passage    string `json:"passage"`
	Reflection string `json:"reflection"`
	Prayer     string `json:"prayer"`
}

type QuietTimeResponse struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Passage    string    `json:"passage"`
	Reflection string    `json:"reflection"`
	Prayer     string    `json:"prayer,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// JournalResponse bundles every journal collection of a user.
type JournalResponse struct {
	Verses      []VerseResponse      `json:"verses"`
	SermonNotes []SermonNoteResponse `json:"sermon_notes"`
	QuietTime   []QuietTimeResponse  `json:"quiet_time"`
}
