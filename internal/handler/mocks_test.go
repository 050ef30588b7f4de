package handler_test

import (
	"context"
	"errors"
	"time"

	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
	"verse-journal/internal/handler"
	"verse-journal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

const testToken = "Bearer good-token"

// --- Manual Mocks ---

type MockAuthService struct {
	RegisterFunc     func(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	LoginFunc        func(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshTokenFunc func(ctx context.Context, token string) (*dto.TokenResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	panic("MockAuthService.RegisterFunc not implemented")
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	panic("MockAuthService.LoginFunc not implemented")
}

// ValidateJWT accepts only "good-token", issued to user u1.
func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if tokenString == "good-token" {
		return &dto.AuthClaims{UserID: "u1", TokenType: "access"}, nil
	}
	return nil, errors.New("invalid token")
}

func (m *MockAuthService) CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error) {
	panic("MockAuthService.CreateJWT not implemented")
}

func (m *MockAuthService) RefreshToken(ctx context.Context, token string) (*dto.TokenResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, token)
	}
	panic("MockAuthService.RefreshTokenFunc not implemented")
}

type MockUserService struct {
	GetUserProfileFunc      func(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	GetUserQuizAttemptsFunc func(ctx context.Context, userID string, p dto.Pagination) (*dto.QuizAttemptsResponse, error)
}

func (m *MockUserService) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	panic("MockUserService.GetUserProfileFunc not implemented")
}

func (m *MockUserService) RecordQuizAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	panic("MockUserService.RecordQuizAttempt not implemented")
}

func (m *MockUserService) GetUserQuizAttempts(ctx context.Context, userID string, p dto.Pagination) (*dto.QuizAttemptsResponse, error) {
	if m.GetUserQuizAttemptsFunc != nil {
		return m.GetUserQuizAttemptsFunc(ctx, userID, p)
	}
	panic("MockUserService.GetUserQuizAttemptsFunc not implemented")
}

type MockVerseService struct {
	CreateVerseFunc func(ctx context.Context, userID string, req dto.CreateVerseRequest) (*dto.VerseResponse, error)
	GetVerseFunc    func(ctx context.Context, userID, verseID string) (*dto.VerseResponse, error)
	ListVersesFunc  func(ctx context.Context, userID string, filter domain.VerseFilter) ([]dto.VerseResponse, error)
	DeleteVerseFunc func(ctx context.Context, userID, verseID string) error
}

func (m *MockVerseService) CreateVerse(ctx context.Context, userID string, req dto.CreateVerseRequest) (*dto.VerseResponse, error) {
	if m.CreateVerseFunc != nil {
		return m.CreateVerseFunc(ctx, userID, req)
	}
	panic("MockVerseService.CreateVerseFunc not implemented")
}

func (m *MockVerseService) GetVerse(ctx context.Context, userID, verseID string) (*dto.VerseResponse, error) {
	if m.GetVerseFunc != nil {
		return m.GetVerseFunc(ctx, userID, verseID)
	}
	panic("MockVerseService.GetVerseFunc not implemented")
}

func (m *MockVerseService) ListVerses(ctx context.Context, userID string, filter domain.VerseFilter) ([]dto.VerseResponse, error) {
	if m.ListVersesFunc != nil {
		return m.ListVersesFunc(ctx, userID, filter)
	}
	panic("MockVerseService.ListVersesFunc not implemented")
}

func (m *MockVerseService) DeleteVerse(ctx context.Context, userID, verseID string) error {
	if m.DeleteVerseFunc != nil {
		return m.DeleteVerseFunc(ctx, userID, verseID)
	}
	panic("MockVerseService.DeleteVerseFunc not implemented")
}

type MockJournalService struct {
	CreateSermonNoteFunc     func(ctx context.Context, userID string, req dto.CreateSermonNoteRequest) (*dto.SermonNoteResponse, error)
	ListSermonNotesFunc      func(ctx context.Context, userID string) ([]dto.SermonNoteResponse, error)
	DeleteSermonNoteFunc     func(ctx context.Context, userID, noteID string) error
	CreateQuietTimeEntryFunc func(ctx context.Context, userID string, req dto.CreateQuietTimeRequest) (*dto.QuietTimeResponse, error)
	ListQuietTimeEntriesFunc func(ctx context.Context, userID string) ([]dto.QuietTimeResponse, error)
	DeleteQuietTimeEntryFunc func(ctx context.Context, userID, entryID string) error
	GetJournalFunc           func(ctx context.Context, userID string) (*dto.JournalResponse, error)
}

func (m *MockJournalService) CreateSermonNote(ctx context.Context, userID string, req dto.CreateSermonNoteRequest) (*dto.SermonNoteResponse, error) {
	if m.CreateSermonNoteFunc != nil {
		return m.CreateSermonNoteFunc(ctx, userID, req)
	}
	panic("MockJournalService.CreateSermonNoteFunc not implemented")
}

func (m *MockJournalService) ListSermonNotes(ctx context.Context, userID string) ([]dto.SermonNoteResponse, error) {
	if m.ListSermonNotesFunc != nil {
		return m.ListSermonNotesFunc(ctx, userID)
	}
	panic("MockJournalService.ListSermonNotesFunc not implemented")
}

func (m *MockJournalService) DeleteSermonNote(ctx context.Context, userID, noteID string) error {
	if m.DeleteSermonNoteFunc != nil {
		return m.DeleteSermonNoteFunc(ctx, userID, noteID)
	}
	panic("MockJournalService.DeleteSermonNoteFunc not implemented")
}

func (m *MockJournalService) CreateQuietTimeEntry(ctx context.Context, userID string, req dto.CreateQuietTimeRequest) (*dto.QuietTimeResponse, error) {
	if m.CreateQuietTimeEntryFunc != nil {
		return m.CreateQuietTimeEntryFunc(ctx, userID, req)
	}
	panic("MockJournalService.CreateQuietTimeEntryFunc not implemented")
}

func (m *MockJournalService) ListQuietTimeEntries(ctx context.Context, userID string) ([]dto.QuietTimeResponse, error) {
	if m.ListQuietTimeEntriesFunc != nil {
		return m.ListQuietTimeEntriesFunc(ctx, userID)
	}
	panic("MockJournalService.ListQuietTimeEntriesFunc not implemented")
}

func (m *MockJournalService) DeleteQuietTimeEntry(ctx context.Context, userID, entryID string) error {
	if m.DeleteQuietTimeEntryFunc != nil {
		return m.DeleteQuietTimeEntryFunc(ctx, userID, entryID)
	}
	panic("MockJournalService.DeleteQuietTimeEntryFunc not implemented")
}

func (m *MockJournalService) GetJournal(ctx context.Context, userID string) (*dto.JournalResponse, error) {
	if m.GetJournalFunc != nil {
		return m.GetJournalFunc(ctx, userID)
	}
	panic("MockJournalService.GetJournalFunc not implemented")
}

type MockQuizService struct {
	StartSessionFunc func(ctx context.Context, userID string) (*dto.QuizSessionResponse, error)
	SubmitAnswerFunc func(ctx context.Context, userID, sessionID, answer string) (*dto.AnswerResponse, error)
	RevealAnswerFunc func(ctx context.Context, userID, sessionID string) (*dto.RevealResponse, error)
	NextQuestionFunc func(ctx context.Context, userID, sessionID string) (*dto.QuizSessionResponse, error)
	EndSessionFunc   func(ctx context.Context, userID, sessionID string) error
}

func (m *MockQuizService) StartSession(ctx context.Context, userID string) (*dto.QuizSessionResponse, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc(ctx, userID)
	}
	panic("MockQuizService.StartSessionFunc not implemented")
}

func (m *MockQuizService) SubmitAnswer(ctx context.Context, userID, sessionID, answer string) (*dto.AnswerResponse, error) {
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(ctx, userID, sessionID, answer)
	}
	panic("MockQuizService.SubmitAnswerFunc not implemented")
}

func (m *MockQuizService) RevealAnswer(ctx context.Context, userID, sessionID string) (*dto.RevealResponse, error) {
	if m.RevealAnswerFunc != nil {
		return m.RevealAnswerFunc(ctx, userID, sessionID)
	}
	panic("MockQuizService.RevealAnswerFunc not implemented")
}

func (m *MockQuizService) NextQuestion(ctx context.Context, userID, sessionID string) (*dto.QuizSessionResponse, error) {
	if m.NextQuestionFunc != nil {
		return m.NextQuestionFunc(ctx, userID, sessionID)
	}
	panic("MockQuizService.NextQuestionFunc not implemented")
}

func (m *MockQuizService) EndSession(ctx context.Context, userID, sessionID string) error {
	if m.EndSessionFunc != nil {
		return m.EndSessionFunc(ctx, userID, sessionID)
	}
	panic("MockQuizService.EndSessionFunc not implemented")
}

type MockBibleService struct {
	GetPassageFunc func(ctx context.Context, reference, translation string) (*domain.Passage, error)
	GetChapterFunc func(ctx context.Context, book string, chapter int, translation string) (*domain.Passage, error)
	Books          []domain.BibleBook
}

func (m *MockBibleService) GetPassage(ctx context.Context, reference, translation string) (*domain.Passage, error) {
	if m.GetPassageFunc != nil {
		return m.GetPassageFunc(ctx, reference, translation)
	}
	panic("MockBibleService.GetPassageFunc not implemented")
}

func (m *MockBibleService) GetChapter(ctx context.Context, book string, chapter int, translation string) (*domain.Passage, error) {
	if m.GetChapterFunc != nil {
		return m.GetChapterFunc(ctx, book, chapter, translation)
	}
	panic("MockBibleService.GetChapterFunc not implemented")
}

func (m *MockBibleService) ListBooks() []domain.BibleBook { return m.Books }

type testServices struct {
	auth    *MockAuthService
	user    *MockUserService
	verse   *MockVerseService
	journal *MockJournalService
	quiz    *MockQuizService
	bible   *MockBibleService
}

// newTestApp wires every handler through the real routes and error handler.
func newTestApp() (*fiber.App, *testServices) {
	s := &testServices{
		auth:    &MockAuthService{},
		user:    &MockUserService{},
		verse:   &MockVerseService{},
		journal: &MockJournalService{},
		quiz:    &MockQuizService{},
		bible:   &MockBibleService{},
	}
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.SetupRoutes(app, handler.Handlers{
		Auth:    handler.NewAuthHandler(s.auth),
		User:    handler.NewUserHandler(s.user),
		Verse:   handler.NewVerseHandler(s.verse),
		Journal: handler.NewJournalHandler(s.journal),
		Quiz:    handler.NewQuizHandler(s.quiz),
		Bible:   handler.NewBibleHandler(s.bible),
	}, s.auth)
	return app, s
}
