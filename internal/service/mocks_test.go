package service

import (
	"context"
	"sync"
	"time"

	"verse-journal/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- MockVerseRepository ---
type MockVerseRepository struct {
	mock.Mock
}

func (m *MockVerseRepository) CreateVerse(ctx context.Context, verse *domain.Verse) error {
	args := m.Called(ctx, verse)
	return args.Error(0)
}

func (m *MockVerseRepository) GetVerseByID(ctx context.Context, userID, verseID string) (*domain.Verse, error) {
	args := m.Called(ctx, userID, verseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Verse), args.Error(1)
}

func (m *MockVerseRepository) ListVersesByUser(ctx context.Context, userID string) ([]*domain.Verse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Verse), args.Error(1)
}

func (m *MockVerseRepository) DeleteVerse(ctx context.Context, userID, verseID string) (bool, error) {
	args := m.Called(ctx, userID, verseID)
	return args.Bool(0), args.Error(1)
}

// --- MockSermonNoteRepository ---
type MockSermonNoteRepository struct {
	mock.Mock
}

func (m *MockSermonNoteRepository) CreateSermonNote(ctx context.Context, note *domain.SermonNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockSermonNoteRepository) ListSermonNotesByUser(ctx context.Context, userID string) ([]*domain.SermonNote, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SermonNote), args.Error(1)
}

func (m *MockSermonNoteRepository) DeleteSermonNote(ctx context.Context, userID, noteID string) (bool, error) {
	args := m.Called(ctx, userID, noteID)
	return args.Bool(0), args.Error(1)
}

// --- MockQuietTimeRepository ---
type MockQuietTimeRepository struct {
	mock.Mock
}

func (m *MockQuietTimeRepository) CreateQuietTimeEntry(ctx context.Context, entry *domain.QuietTimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockQuietTimeRepository) ListQuietTimeEntriesByUser(ctx context.Context, userID string) ([]*domain.QuietTimeEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuietTimeEntry), args.Error(1)
}

func (m *MockQuietTimeRepository) DeleteQuietTimeEntry(ctx context.Context, userID, entryID string) (bool, error) {
	args := m.Called(ctx, userID, entryID)
	return args.Bool(0), args.Error(1)
}

// --- MockQuizAttemptRepository ---
type MockQuizAttemptRepository struct {
	mock.Mock
}

func (m *MockQuizAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockQuizAttemptRepository) ListAttemptsByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.QuizAttempt, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.QuizAttempt), args.Int(1), args.Error(2)
}

// --- MockPassageSource ---
type MockPassageSource struct {
	mock.Mock
}

func (m *MockPassageSource) FetchPassage(ctx context.Context, reference, translation string) (*domain.Passage, error) {
	args := m.Called(ctx, reference, translation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passage), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Delete(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	args := m.Called(ctx, key, expiration)
	return args.Error(0)
}

// MockTransactionManager runs fn directly.
type MockTransactionManager struct{}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memCache is a map-backed domain.Cache for flows that round-trip state.
type memCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = value
	return true, nil
}

func (c *memCache) Delete(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	delete(c.data, key)
	return ok, nil
}

func (c *memCache) Ping(ctx context.Context) error { return nil }

func (c *memCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; !ok {
		return domain.ErrCacheMiss
	}
	return nil
}

var (
	_ domain.UserRepository        = (*MockUserRepository)(nil)
	_ domain.VerseRepository       = (*MockVerseRepository)(nil)
	_ domain.SermonNoteRepository  = (*MockSermonNoteRepository)(nil)
	_ domain.QuietTimeRepository   = (*MockQuietTimeRepository)(nil)
	_ domain.QuizAttemptRepository = (*MockQuizAttemptRepository)(nil)
	_ domain.PassageSource         = (*MockPassageSource)(nil)
	_ domain.Cache                 = (*MockCache)(nil)
	_ domain.Cache                 = (*memCache)(nil)
	_ domain.TransactionManager    = (*MockTransactionManager)(nil)
)
