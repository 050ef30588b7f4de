package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"verse-journal/internal/cache"
	"verse-journal/internal/config"
	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
	"verse-journal/internal/logger"
	"verse-journal/internal/quiz"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuizService runs memorization quizzes over a user's saved verses. Sessions
// live in the cache between requests and expire after the configured TTL.
type QuizService interface {
	StartSession(ctx context.Context, userID string) (*dto.QuizSessionResponse, error)
	SubmitAnswer(ctx context.Context, userID, sessionID, answer string) (*dto.AnswerResponse, error)
	RevealAnswer(ctx context.Context, userID, sessionID string) (*dto.RevealResponse, error)
	NextQuestion(ctx context.Context, userID, sessionID string) (*dto.QuizSessionResponse, error)
	EndSession(ctx context.Context, userID, sessionID string) error
}

// submitLockTTL bounds how long a failed request can block its session.
const submitLockTTL = 10 * time.Second

// quizService implements QuizService
type quizService struct {
	verseRepo   domain.VerseRepository
	userService UserService
	cache       domain.Cache
	sessionTTL  time.Duration
	rng         quiz.Rand
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	verseRepo domain.VerseRepository,
	userService UserService,
	cache domain.Cache,
	cfg config.QuizConfig,
) QuizService {
	return &quizService{
		verseRepo:   verseRepo,
		userService: userService,
		cache:       cache,
		sessionTTL:  cfg.SessionTTL,
	}
}

func (s *quizService) StartSession(ctx context.Context, userID string) (*dto.QuizSessionResponse, error) {
	pool, err := s.loadPool(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := s.newSession(quiz.Snapshot{})
	question, err := session.Start(pool)
	if err != nil {
		return nil, mapQuizError(err)
	}

	sessionID := uuid.NewString()
	if err := s.saveSession(ctx, userID, sessionID, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz session started",
		zap.String("userID", userID),
		zap.String("sessionID", sessionID),
		zap.Int("pool_size", len(pool)))

	return toSessionResponse(sessionID, session, &question), nil
}

// SubmitAnswer holds a per-session lock from load to save, so concurrent
// submits for one question grade and record it once.
func (s *quizService) SubmitAnswer(ctx context.Context, userID, sessionID, answer string) (*dto.AnswerResponse, error) {
	unlock, err := s.lockSubmit(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := s.loadSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	verse, _ := session.Current()

	result, err := session.Submit(answer)
	if err != nil {
		return nil, mapQuizError(err)
	}
	if err := s.saveSession(ctx, userID, sessionID, session); err != nil {
		return nil, err
	}

	// History is a convenience; a failed write does not fail the answer.
	attempt := &domain.QuizAttempt{
		UserID:    userID,
		VerseID:   verse.ID,
		Reference: verse.Reference,
		Answer:    answer,
		Score:     result.Score,
		Tier:      string(result.Tier),
	}
	if err := s.userService.RecordQuizAttempt(ctx, attempt); err != nil {
		logger.Get().Warn("Failed to record quiz attempt",
			zap.String("userID", userID),
			zap.String("verseID", verse.ID),
			zap.Error(err))
	}

	return &dto.AnswerResponse{
		Score:      result.Score,
		Tier:       string(result.Tier),
		Message:    result.Tier.Message(),
		Reference:  result.Reference,
		Correction: result.Correction,
	}, nil
}

func (s *quizService) RevealAnswer(ctx context.Context, userID, sessionID string) (*dto.RevealResponse, error) {
	session, err := s.loadSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	answer, err := session.Reveal()
	if err != nil {
		return nil, mapQuizError(err)
	}
	// Reveal leaves the state unchanged, so only the TTL is refreshed.
	if err := s.cache.Expire(ctx, cache.QuizSessionKey(userID, sessionID), s.sessionTTL); err != nil {
		logger.Get().Warn("Failed to refresh quiz session TTL", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return &dto.RevealResponse{Reference: answer.Reference, Text: answer.Text}, nil
}

// NextQuestion reloads the pool so verses added or removed since the last
// question are taken into account.
func (s *quizService) NextQuestion(ctx context.Context, userID, sessionID string) (*dto.QuizSessionResponse, error) {
	session, err := s.loadSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	pool, err := s.loadPool(ctx, userID)
	if err != nil {
		return nil, err
	}

	question, err := session.Next(pool)
	if err != nil {
		return nil, mapQuizError(err)
	}
	if err := s.saveSession(ctx, userID, sessionID, session); err != nil {
		return nil, err
	}
	return toSessionResponse(sessionID, session, &question), nil
}

func (s *quizService) EndSession(ctx context.Context, userID, sessionID string) error {
	// Loading first keeps another user's session ID a not-found.
	if _, err := s.loadSession(ctx, userID, sessionID); err != nil {
		return err
	}
	if _, err := s.cache.Delete(ctx, cache.QuizSessionKey(userID, sessionID)); err != nil {
		return domain.NewInternalError("failed to end quiz session", err)
	}
	logger.Get().Info("Quiz session ended", zap.String("userID", userID), zap.String("sessionID", sessionID))
	return nil
}

func (s *quizService) lockSubmit(ctx context.Context, userID, sessionID string) (func(), error) {
	key := cache.QuizSubmitLockKey(userID, sessionID)
	acquired, err := s.cache.SetNX(ctx, key, "1", submitLockTTL)
	if err != nil {
		return nil, domain.NewInternalError("failed to lock quiz session", err)
	}
	if !acquired {
		return nil, domain.NewInvalidQuizStateError(errors.New("an answer for this question is already being graded"))
	}
	return func() {
		if _, err := s.cache.Delete(context.WithoutCancel(ctx), key); err != nil {
			logger.Get().Warn("Failed to release quiz submit lock", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}, nil
}

func (s *quizService) newSession(snap quiz.Snapshot) *quiz.Session {
	if s.rng != nil {
		return quiz.Restore(snap, quiz.WithRand(s.rng))
	}
	return quiz.Restore(snap)
}

func (s *quizService) loadPool(ctx context.Context, userID string) ([]quiz.Verse, error) {
	verses, err := s.verseRepo.ListVersesByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load verses for quiz", err)
	}
	pool := make([]quiz.Verse, 0, len(verses))
	for _, v := range verses {
		pool = append(pool, v.QuizVerse())
	}
	return pool, nil
}

// loadSession reads a session from the cache. Sessions are keyed by owner,
// so another user's session ID is simply not found.
func (s *quizService) loadSession(ctx context.Context, userID, sessionID string) (*quiz.Session, error) {
	raw, err := s.cache.Get(ctx, cache.QuizSessionKey(userID, sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewQuizSessionNotFoundError(sessionID)
		}
		return nil, domain.NewInternalError("failed to load quiz session", err)
	}

	var snap quiz.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		logger.Get().Error("Corrupt quiz session in cache", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, domain.NewInternalError("failed to decode quiz session", err)
	}
	return s.newSession(snap), nil
}

func (s *quizService) saveSession(ctx context.Context, userID, sessionID string, session *quiz.Session) error {
	data, err := json.Marshal(session.Snapshot())
	if err != nil {
		return domain.NewInternalError("failed to encode quiz session", err)
	}
	if err := s.cache.Set(ctx, cache.QuizSessionKey(userID, sessionID), string(data), s.sessionTTL); err != nil {
		return domain.NewInternalError("failed to save quiz session", err)
	}
	return nil
}

func mapQuizError(err error) error {
	var insufficient *quiz.InsufficientDataError
	if errors.As(err, &insufficient) {
		return domain.NewInsufficientVersesError(insufficient.Have, insufficient.Need, err)
	}
	var invalid *quiz.InvalidStateError
	if errors.As(err, &invalid) {
		return domain.NewInvalidQuizStateError(err).WithContext("state", string(invalid.State))
	}
	return domain.NewInternalError("quiz session failed", err)
}

func toSessionResponse(sessionID string, session *quiz.Session, q *quiz.Question) *dto.QuizSessionResponse {
	resp := &dto.QuizSessionResponse{
		SessionID: sessionID,
		State:     string(session.State()),
	}
	if q != nil {
		resp.Question = &dto.QuestionResponse{VerseID: q.VerseID, Reference: q.Reference}
	}
	return resp
}
