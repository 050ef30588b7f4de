package service

import (
	"context"

	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	RecordQuizAttempt(ctx context.Context, attempt *domain.QuizAttempt) error
	GetUserQuizAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.QuizAttemptsResponse, error)
}

type userServiceImpl struct {
	userRepo    domain.UserRepository
	attemptRepo domain.QuizAttemptRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository, attemptRepo domain.QuizAttemptRepository) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User profile not found")
	}
	profile := toUserProfile(user)
	return &profile, nil
}

func (s *userServiceImpl) RecordQuizAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if err := s.attemptRepo.CreateAttempt(ctx, attempt); err != nil {
		return domain.NewInternalError("failed to record quiz attempt", err)
	}
	return nil
}

// GetUserQuizAttempts expects pagination already normalized by the validator.
func (s *userServiceImpl) GetUserQuizAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.QuizAttemptsResponse, error) {
	attempts, total, err := s.attemptRepo.ListAttemptsByUser(ctx, userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quiz attempts", err)
	}

	items := make([]dto.QuizAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		items = append(items, dto.QuizAttemptResponse{
			ID:          a.ID,
			VerseID:     a.VerseID,
			Reference:   a.Reference,
			Answer:      a.Answer,
			Score:       a.Score,
			Tier:        a.Tier,
			AttemptedAt: a.AttemptedAt,
		})
	}
	return &dto.QuizAttemptsResponse{
		Attempts:       items,
		PaginationInfo: dto.NewPaginationInfo(pagination, total),
	}, nil
}
