package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"verse-journal/internal/cache"
	"verse-journal/internal/config"
	"verse-journal/internal/domain"
	"verse-journal/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// BibleService looks up scripture text so users can save verses without
// typing them out.
type BibleService interface {
	GetPassage(ctx context.Context, reference, translation string) (*domain.Passage, error)
	GetChapter(ctx context.Context, book string, chapter int, translation string) (*domain.Passage, error)
	ListBooks() []domain.BibleBook
}

type bibleServiceImpl struct {
	source             domain.PassageSource
	cache              domain.Cache
	defaultTranslation string
	cacheTTL           time.Duration
	sfGroup            singleflight.Group
}

// NewBibleService creates a BibleService. cache may be nil, which disables
// passage caching.
func NewBibleService(source domain.PassageSource, cache domain.Cache, cfg config.BibleConfig) BibleService {
	return &bibleServiceImpl{
		source:             source,
		cache:              cache,
		defaultTranslation: cfg.DefaultTranslation,
		cacheTTL:           cfg.CacheTTL,
	}
}

func (s *bibleServiceImpl) ListBooks() []domain.BibleBook {
	books := make([]domain.BibleBook, len(bibleBooks))
	copy(books, bibleBooks)
	return books
}

func (s *bibleServiceImpl) GetChapter(ctx context.Context, book string, chapter int, translation string) (*domain.Passage, error) {
	b, ok := findBook(book)
	if !ok {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("book", book)}
	}
	if chapter < 1 || chapter > b.Chapters {
		return nil, domain.ValidationErrors{domain.NewOutOfRangeError("chapter", chapter, 1, b.Chapters)}
	}
	return s.GetPassage(ctx, fmt.Sprintf("%s %d", b.Name, chapter), translation)
}

func (s *bibleServiceImpl) GetPassage(ctx context.Context, reference, translation string) (*domain.Passage, error) {
	reference = strings.TrimSpace(reference)
	translation = strings.ToLower(strings.TrimSpace(translation))
	if translation == "" {
		translation = s.defaultTranslation
	}
	cacheKey := cache.BiblePassageKey(reference, translation)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var passage domain.Passage
			if errDecode := json.Unmarshal([]byte(cached), &passage); errDecode == nil {
				return &passage, nil
			} else {
				logger.Get().Warn("Failed to decode cached passage", zap.String("cacheKey", cacheKey), zap.Error(errDecode))
			}
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read passage cache", zap.String("cacheKey", cacheKey), zap.Error(err))
		}
	}

	res, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		passage, fetchErr := s.source.FetchPassage(ctx, reference, translation)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if s.cache != nil {
			if data, errEncode := json.Marshal(passage); errEncode == nil {
				if errSet := s.cache.Set(ctx, cacheKey, string(data), s.cacheTTL); errSet != nil {
					logger.Get().Warn("Failed to cache passage", zap.String("cacheKey", cacheKey), zap.Error(errSet))
				}
			}
		}
		return passage, nil
	})
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewBibleServiceError(err)
	}

	passage, ok := res.(*domain.Passage)
	if !ok {
		return nil, domain.NewInternalError(fmt.Sprintf("unexpected type from singleflight.Do for passage: %T", res), nil)
	}
	return passage, nil
}
