package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"verse-journal/internal/cache"
	"verse-journal/internal/config"
	"verse-journal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testBibleConfig = config.BibleConfig{DefaultTranslation: "kjv", CacheTTL: time.Hour}

func TestBibleService_GetPassage_CacheMissThenStore(t *testing.T) {
	source := new(MockPassageSource)
	mockCache := new(MockCache)
	svc := NewBibleService(source, mockCache, testBibleConfig)

	passage := &domain.Passage{Reference: "John 3:16", Text: "For God so loved the world", TranslationID: "kjv"}
	key := cache.BiblePassageKey("John 3:16", "kjv")
	data, _ := json.Marshal(passage)

	mockCache.On("Get", mock.Anything, key).Return("", domain.ErrCacheMiss)
	source.On("FetchPassage", mock.Anything, "John 3:16", "kjv").Return(passage, nil)
	mockCache.On("Set", mock.Anything, key, string(data), time.Hour).Return(nil)

	got, err := svc.GetPassage(context.Background(), " John 3:16 ", "")
	require.NoError(t, err)
	assert.Equal(t, passage, got)
	source.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestBibleService_GetPassage_CacheHit(t *testing.T) {
	source := new(MockPassageSource)
	mockCache := new(MockCache)
	svc := NewBibleService(source, mockCache, testBibleConfig)

	data, _ := json.Marshal(domain.Passage{Reference: "Psalm 23:1", Text: "The LORD is my shepherd", TranslationID: "web"})
	mockCache.On("Get", mock.Anything, cache.BiblePassageKey("Psalm 23:1", "web")).Return(string(data), nil)

	got, err := svc.GetPassage(context.Background(), "Psalm 23:1", "WEB")
	require.NoError(t, err)
	assert.Equal(t, "The LORD is my shepherd", got.Text)
	source.AssertNotCalled(t, "FetchPassage", mock.Anything, mock.Anything, mock.Anything)
}

func TestBibleService_GetPassage_Errors(t *testing.T) {
	source := new(MockPassageSource)
	svc := NewBibleService(source, nil, testBibleConfig)

	source.On("FetchPassage", mock.Anything, "Hezekiah 1:1", "kjv").Return(nil, domain.NewBiblePassageNotFoundError("Hezekiah 1:1"))
	source.On("FetchPassage", mock.Anything, "John 1:1", "kjv").Return(nil, errors.New("connection reset"))

	_, err := svc.GetPassage(context.Background(), "Hezekiah 1:1", "")
	assertDomainCode(t, err, domain.CodeBiblePassageNotFound)

	_, err = svc.GetPassage(context.Background(), "John 1:1", "")
	assertDomainCode(t, err, domain.CodeBibleServiceError)
}

func TestBibleService_GetChapter(t *testing.T) {
	source := new(MockPassageSource)
	svc := NewBibleService(source, nil, testBibleConfig)
	source.On("FetchPassage", mock.Anything, "Song of Solomon 2", "kjv").Return(&domain.Passage{Reference: "Song of Solomon 2"}, nil)

	got, err := svc.GetChapter(context.Background(), "song  of songs", 2, "")
	require.NoError(t, err)
	assert.Equal(t, "Song of Solomon 2", got.Reference)

	tests := []struct {
		name    string
		book    string
		chapter int
		field   string
	}{
		{"unknown book", "Hezekiah", 1, "book"},
		{"chapter zero", "John", 0, "chapter"},
		{"chapter past end", "Jude", 2, "chapter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetChapter(context.Background(), tt.book, tt.chapter, "")
			var verrs domain.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestBibleService_ListBooks(t *testing.T) {
	svc := NewBibleService(new(MockPassageSource), nil, testBibleConfig)

	books := svc.ListBooks()
	require.Len(t, books, 66)
	assert.Equal(t, domain.BibleBook{Name: "Genesis", Chapters: 50}, books[0])
	assert.Equal(t, domain.BibleBook{Name: "Revelation", Chapters: 22}, books[65])

	total := 0
	for _, b := range books {
		total += b.Chapters
	}
	assert.Equal(t, 1189, total)

	books[0].Chapters = 1
	assert.Equal(t, 50, svc.ListBooks()[0].Chapters)
}
