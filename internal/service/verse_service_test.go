package service

import (
	"context"
	"errors"
	"testing"

	"verse-journal/internal/domain"
	"verse-journal/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerseService_CreateVerse_DeduplicatesCategories(t *testing.T) {
	repo := new(MockVerseRepository)
	svc := NewVerseService(repo)

	repo.On("CreateVerse", mock.Anything, mock.MatchedBy(func(v *domain.Verse) bool {
		return v.UserID == "u1" && v.Reference == "Psalm 23:1" && len(v.Categories) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Verse).ID = "v1"
	}).Return(nil)

	resp, err := svc.CreateVerse(context.Background(), "u1", dto.CreateVerseRequest{
		Reference: " Psalm 23:1 ",
		Text:      "The LORD is my shepherd; I shall not want.",
		Categories: []dto.CategoryDTO{
			{Type: "mood", Value: "anxious"},
			{Type: "mood", Value: " anxious "},
			{Type: "topic", Value: "provision"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", resp.ID)
	assert.Equal(t, []dto.CategoryDTO{{Type: "mood", Value: "anxious"}, {Type: "topic", Value: "provision"}}, resp.Categories)
	repo.AssertExpectations(t)
}

func TestVerseService_ListVerses_Filter(t *testing.T) {
	verses := []*domain.Verse{
		{ID: "v1", Reference: "Phil 4:6", Categories: []domain.Category{{Type: domain.CategoryMood, Value: "anxious"}}},
		{ID: "v2", Reference: "Eccl 3:1", Categories: []domain.Category{{Type: domain.CategorySeason, Value: "waiting"}}},
		{ID: "v3", Reference: "Ps 46:10", Categories: []domain.Category{{Type: domain.CategoryMood, Value: "grieving"}}},
	}

	tests := []struct {
		name   string
		filter domain.VerseFilter
		want   []string
	}{
		{"no filter", domain.VerseFilter{}, []string{"v1", "v2", "v3"}},
		{"type only", domain.VerseFilter{CategoryType: domain.CategoryMood}, []string{"v1", "v3"}},
		{"type and value", domain.VerseFilter{CategoryType: domain.CategoryMood, CategoryValue: "anxious"}, []string{"v1"}},
		{"no match", domain.VerseFilter{CategoryType: domain.CategoryTopic}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockVerseRepository)
			repo.On("ListVersesByUser", mock.Anything, "u1").Return(verses, nil)

			resp, err := NewVerseService(repo).ListVerses(context.Background(), "u1", tt.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(resp))
			for _, v := range resp {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestVerseService_GetVerse_NotFound(t *testing.T) {
	repo := new(MockVerseRepository)
	repo.On("GetVerseByID", mock.Anything, "u1", "v9").Return(nil, nil)

	_, err := NewVerseService(repo).GetVerse(context.Background(), "u1", "v9")
	assertDomainCode(t, err, domain.CodeVerseNotFound)
}

func TestVerseService_DeleteVerse(t *testing.T) {
	repo := new(MockVerseRepository)
	repo.On("DeleteVerse", mock.Anything, "u1", "v1").Return(true, nil)
	repo.On("DeleteVerse", mock.Anything, "u1", "v2").Return(false, nil)
	repo.On("DeleteVerse", mock.Anything, "u1", "v3").Return(false, errors.New("locked"))
	svc := NewVerseService(repo)

	assert.NoError(t, svc.DeleteVerse(context.Background(), "u1", "v1"))
	assertDomainCode(t, svc.DeleteVerse(context.Background(), "u1", "v2"), domain.CodeVerseNotFound)
	assertDomainCode(t, svc.DeleteVerse(context.Background(), "u1", "v3"), domain.CodeInternal)
}
