package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"verse-journal/internal/domain"
)

// CategoryList stores verse tags as a JSON array column.
type CategoryList []domain.Category

// Value implements the driver.Valuer interface
func (c CategoryList) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (c *CategoryList) Scan(value interface{}) error {
	if value == nil {
		*c = CategoryList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("CategoryList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*c = CategoryList{}
		return nil
	}
	return json.Unmarshal(bytesToParse, c)
}

// Verse represents a row of the verses table.
type Verse struct {
	ID         string       `db:"ID"`
	UserID     string       `db:"USER_ID"`
	Reference  string       `db:"REFERENCE"`
	Text       string       `db:"TEXT"`
	Categories CategoryList `db:"CATEGORIES"`
	CreatedAt  time.Time    `db:"CREATED_AT"`
}

// SermonNote represents a row of the sermon_notes table.
type SermonNote struct {
	ID        string         `db:"ID"`
	UserID    string         `db:"USER_ID"`
	Title     string         `db:"TITLE"`
	Preacher  sql.NullString `db:"PREACHER"`
	NoteDate  time.Time      `db:"NOTE_DATE"`
	Notes     string         `db:"NOTES"`
	CreatedAt time.Time      `db:"CREATED_AT"`
}

// QuietTimeEntry represents a row of the quiet_time_entries table.
type QuietTimeEntry struct {
	ID         string         `db:"ID"`
	UserID     string         `db:"USER_ID"`
	EntryDate  time.Time      `db:"ENTRY_DATE"`
	Passage    string         `db:"PASSAGE"`
	Reflection string         `db:"REFLECTION"`
	Prayer     sql.NullString `db:"PRAYER"`
	CreatedAt  time.Time      `db:"CREATED_AT"`
}
