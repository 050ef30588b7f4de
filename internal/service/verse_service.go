package service

import (
	"context"
	"strings"

	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
	"verse-journal/internal/logger"

	"go.uber.org/zap"
)

// VerseService manages the verses a user has saved for memorization.
type VerseService interface {
	CreateVerse(ctx context.Context, userID string, req dto.CreateVerseRequest) (*dto.VerseResponse, error)
	GetVerse(ctx context.Context, userID, verseID string) (*dto.VerseResponse, error)
	ListVerses(ctx context.Context, userID string, filter domain.VerseFilter) ([]dto.VerseResponse, error)
	DeleteVerse(ctx context.Context, userID, verseID string) error
}

type verseServiceImpl struct {
	verseRepo domain.VerseRepository
}

func NewVerseService(verseRepo domain.VerseRepository) VerseService {
	return &verseServiceImpl{verseRepo: verseRepo}
}

func (s *verseServiceImpl) CreateVerse(ctx context.Context, userID string, req dto.CreateVerseRequest) (*dto.VerseResponse, error) {
	categories := make([]domain.Category, 0, len(req.Categories))
	seen := make(map[domain.Category]bool, len(req.Categories))
	for _, c := range req.Categories {
		cat := domain.Category{Type: domain.CategoryType(c.Type), Value: strings.TrimSpace(c.Value)}
		if seen[cat] {
			continue
		}
		seen[cat] = true
		categories = append(categories, cat)
	}

	verse := domain.NewVerse(userID, strings.TrimSpace(req.Reference), strings.TrimSpace(req.Text), categories)
	if err := s.verseRepo.CreateVerse(ctx, verse); err != nil {
		return nil, domain.NewInternalError("failed to save verse", err)
	}

	logger.Get().Debug("Verse saved", zap.String("userID", userID), zap.String("verseID", verse.ID))
	resp := toVerseResponse(verse)
	return &resp, nil
}

func (s *verseServiceImpl) GetVerse(ctx context.Context, userID, verseID string) (*dto.VerseResponse, error) {
	verse, err := s.verseRepo.GetVerseByID(ctx, userID, verseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get verse", err)
	}
	if verse == nil {
		return nil, domain.NewVerseNotFoundError(verseID)
	}
	resp := toVerseResponse(verse)
	return &resp, nil
}

// ListVerses returns the user's verses, newest first, keeping only those
// tagged with the filter's category when one is given.
func (s *verseServiceImpl) ListVerses(ctx context.Context, userID string, filter domain.VerseFilter) ([]dto.VerseResponse, error) {
	verses, err := s.verseRepo.ListVersesByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list verses", err)
	}

	resp := make([]dto.VerseResponse, 0, len(verses))
	for _, v := range verses {
		if filter.CategoryType != "" && !v.HasCategory(filter.CategoryType, filter.CategoryValue) {
			continue
		}
		resp = append(resp, toVerseResponse(v))
	}
	return resp, nil
}

func (s *verseServiceImpl) DeleteVerse(ctx context.Context, userID, verseID string) error {
	deleted, err := s.verseRepo.DeleteVerse(ctx, userID, verseID)
	if err != nil {
		return domain.NewInternalError("failed to delete verse", err)
	}
	if !deleted {
		return domain.NewVerseNotFoundError(verseID)
	}
	return nil
}

func toVerseResponse(v *domain.Verse) dto.VerseResponse {
	categories := make([]dto.CategoryDTO, 0, len(v.Categories))
	for _, c := range v.Categories {
		categories = append(categories, dto.CategoryDTO{Type: string(c.Type), Value: c.Value})
	}
	return dto.VerseResponse{
		ID:         v.ID,
		Reference:  v.Reference,
		Text:       v.Text,
		Categories: categories,
		CreatedAt:  v.CreatedAt,
	}
}
