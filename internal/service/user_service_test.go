package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"verse-journal/internal/domain"
	"verse-journal/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUserProfile_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockQuizAttemptRepository))

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	userRepo.On("GetUserByID", mock.Anything, "u1").Return(&domain.User{
		ID: "u1", Email: "ruth@example.com", Name: "Ruth", CreatedAt: created,
	}, nil)

	profile, err := svc.GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "ruth@example.com", profile.Email)
	assert.Equal(t, created, profile.CreatedAt)
}

func TestUserService_GetUserProfile_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockQuizAttemptRepository))
	userRepo.On("GetUserByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.GetUserProfile(context.Background(), "missing")
	assertDomainCode(t, err, domain.CodeNotFound)
}

func TestUserService_GetUserProfile_RepositoryError(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockQuizAttemptRepository))
	userRepo.On("GetUserByID", mock.Anything, "u1").Return(nil, errors.New("db down"))

	_, err := svc.GetUserProfile(context.Background(), "u1")
	assertDomainCode(t, err, domain.CodeInternal)
}

func TestUserService_GetUserQuizAttempts(t *testing.T) {
	attemptRepo := new(MockQuizAttemptRepository)
	svc := NewUserService(new(MockUserRepository), attemptRepo)

	attemptRepo.On("ListAttemptsByUser", mock.Anything, "u1", 2, 2).Return([]*domain.QuizAttempt{
		{ID: "a3", VerseID: "v1", Reference: "John 3:16", Score: 0.9, Tier: "excellent"},
	}, 5, nil)

	resp, err := svc.GetUserQuizAttempts(context.Background(), "u1", dto.Pagination{Limit: 2, Page: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, resp.Attempts, 1)
	assert.Equal(t, "John 3:16", resp.Attempts[0].Reference)
	assert.Equal(t, dto.PaginationInfo{Limit: 2, Page: 2, TotalItems: 5, TotalPages: 3}, resp.PaginationInfo)
}

func TestUserService_GetUserQuizAttempts_RepoError(t *testing.T) {
	attemptRepo := new(MockQuizAttemptRepository)
	svc := NewUserService(new(MockUserRepository), attemptRepo)
	attemptRepo.On("ListAttemptsByUser", mock.Anything, "u1", 20, 0).Return(nil, 0, errors.New("db down"))

	_, err := svc.GetUserQuizAttempts(context.Background(), "u1", dto.Pagination{Limit: 20, Page: 1})
	assertDomainCode(t, err, domain.CodeInternal)
}

func TestUserService_RecordQuizAttempt_WrapsError(t *testing.T) {
	attemptRepo := new(MockQuizAttemptRepository)
	svc := NewUserService(new(MockUserRepository), attemptRepo)
	attemptRepo.On("CreateAttempt", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := svc.RecordQuizAttempt(context.Background(), &domain.QuizAttempt{UserID: "u1"})
	assertDomainCode(t, err, domain.CodeInternal)
}
