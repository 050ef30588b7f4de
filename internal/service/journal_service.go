package service

import (
	"context"
	"strings"

	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
	"verse-journal/internal/util"

	"golang.org/x/sync/errgroup"
)

// JournalService manages sermon notes and quiet time entries, and loads a
// user's whole journal at once.
type JournalService interface {
	CreateSermonNote(ctx context.Context, userID string, req dto.CreateSermonNoteRequest) (*dto.SermonNoteResponse, error)
	ListSermonNotes(ctx context.Context, userID string) ([]dto.SermonNoteResponse, error)
	DeleteSermonNote(ctx context.Context, userID, noteID string) error

	CreateQuietTimeEntry(ctx context.Context, userID string, req dto.CreateQuietTimeRequest) (*dto.QuietTimeResponse, error)
	ListQuietTimeEntries(ctx context.Context, userID string) ([]dto.QuietTimeResponse, error)
	DeleteQuietTimeEntry(ctx context.Context, userID, entryID string) error

	GetJournal(ctx context.Context, userID string) (*dto.JournalResponse, error)
}

type journalServiceImpl struct {
	verses    VerseService
	notesRepo domain.SermonNoteRepository
	quietRepo domain.QuietTimeRepository
}

func NewJournalService(verses VerseService, notesRepo domain.SermonNoteRepository, quietRepo domain.QuietTimeRepository) JournalService {
	return &journalServiceImpl{
		verses:    verses,
		notesRepo: notesRepo,
		quietRepo: quietRepo,
	}
}

func (s *journalServiceImpl) CreateSermonNote(ctx context.Context, userID string, req dto.CreateSermonNoteRequest) (*dto.SermonNoteResponse, error) {
	date, err := util.ParseDate(req.Date)
	if err != nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("date", req.Date)}
	}

	note := domain.NewSermonNote(userID, strings.TrimSpace(req.Title), strings.TrimSpace(req.Preacher), date, req.Notes)
	if err := s.notesRepo.CreateSermonNote(ctx, note); err != nil {
		return nil, domain.NewInternalError("failed to save sermon note", err)
	}
	resp := toSermonNoteResponse(note)
	return &resp, nil
}

func (s *journalServiceImpl) ListSermonNotes(ctx context.Context, userID string) ([]dto.SermonNoteResponse, error) {
	notes, err := s.notesRepo.ListSermonNotesByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list sermon notes", err)
	}
	resp := make([]dto.SermonNoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toSermonNoteResponse(n))
	}
	return resp, nil
}

func (s *journalServiceImpl) DeleteSermonNote(ctx context.Context, userID, noteID string) error {
	deleted, err := s.notesRepo.DeleteSermonNote(ctx, userID, noteID)
	if err != nil {
		return domain.NewInternalError("failed to delete sermon note", err)
	}
	if !deleted {
		return domain.NewNotFoundError("Sermon note not found with ID: " + noteID)
	}
	return nil
}

func (s *journalServiceImpl) CreateQuietTimeEntry(ctx context.Context, userID string, req dto.CreateQuietTimeRequest) (*dto.QuietTimeResponse, error) {
	date, err := util.ParseDate(req.Date)
	if err != nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("date", req.Date)}
	}

	entry := domain.NewQuietTimeEntry(userID, date, strings.TrimSpace(req.Passage), req.Reflection, req.Prayer)
	if err := s.quietRepo.CreateQuietTimeEntry(ctx, entry); err != nil {
		return nil, domain.NewInternalError("failed to save quiet time entry", err)
	}
	resp := toQuietTimeResponse(entry)
	return &resp, nil
}

func (s *journalServiceImpl) ListQuietTimeEntries(ctx context.Context, userID string) ([]dto.QuietTimeResponse, error) {
	entries, err := s.quietRepo.ListQuietTimeEntriesByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quiet time entries", err)
	}
	resp := make([]dto.QuietTimeResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toQuietTimeResponse(e))
	}
	return resp, nil
}

func (s *journalServiceImpl) DeleteQuietTimeEntry(ctx context.Context, userID, entryID string) error {
	deleted, err := s.quietRepo.DeleteQuietTimeEntry(ctx, userID, entryID)
	if err != nil {
		return domain.NewInternalError("failed to delete quiet time entry", err)
	}
	if !deleted {
		return domain.NewNotFoundError("Quiet time entry not found with ID: " + entryID)
	}
	return nil
}

// GetJournal loads the three collections concurrently. The first failure
// cancels the remaining loads.
func (s *journalServiceImpl) GetJournal(ctx context.Context, userID string) (*dto.JournalResponse, error) {
	var journal dto.JournalResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		verses, err := s.verses.ListVerses(gctx, userID, domain.VerseFilter{})
		journal.Verses = verses
		return err
	})
	g.Go(func() error {
		notes, err := s.ListSermonNotes(gctx, userID)
		journal.SermonNotes = notes
		return err
	})
	g.Go(func() error {
		entries, err := s.ListQuietTimeEntries(gctx, userID)
		journal.QuietTime = entries
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &journal, nil
}

func toSermonNoteResponse(n *domain.SermonNote) dto.SermonNoteResponse {
	return dto.SermonNoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Preacher:  n.Preacher,
		Date:      n.Date.Format(util.DateLayout),
		Notes:     n.Notes,
		CreatedAt: n.CreatedAt,
	}
}

func toQuietTimeResponse(e *domain.QuietTimeEntry) dto.QuietTimeResponse {
	return dto.QuietTimeResponse{
		ID:         e.ID,
		Date:       e.Date.Format(util.DateLayout),
		Passage:    e.Passage,
		Reflection: e.Reflection,
		Prayer:     e.Prayer,
		CreatedAt:  e.CreatedAt,
	}
}
