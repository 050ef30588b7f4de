package validation

import (
	"strings"
	"testing"

	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
	"verse-journal/internal/util"

	"github.com/stretchr/testify/assert"
)

func fieldsOf(errs domain.ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateRegisterRequest(dto.RegisterRequest{Email: "ruth@example.com", Password: "password1", Name: "Ruth"}))

	errs := v.ValidateRegisterRequest(dto.RegisterRequest{Email: "not-an-email", Password: "short"})
	assert.ElementsMatch(t, []string{"email", "password", "name"}, fieldsOf(errs))
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidateLoginRequest(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateLoginRequest(dto.LoginRequest{Email: "a@b.co", Password: "x"}))
	assert.Len(t, v.ValidateLoginRequest(dto.LoginRequest{}), 2)
}

func TestValidateCreateVerseRequest(t *testing.T) {
	v := NewValidator()

	valid := dto.CreateVerseRequest{
		Reference:  "1 John 4:7-8",
		Text:       "Beloved, let us love one another",
		Categories: []dto.CategoryDTO{{Type: "topic", Value: "love"}},
	}
	assert.Empty(t, v.ValidateCreateVerseRequest(valid))

	invalid := dto.CreateVerseRequest{
		Reference:  "<script>",
		Text:       " ",
		Categories: []dto.CategoryDTO{{Type: "weather", Value: ""}},
	}
	assert.ElementsMatch(t, []string{"reference", "text", "category.type", "category.value"}, fieldsOf(v.ValidateCreateVerseRequest(invalid)))
}

func TestValidateCategory_TypeOnlyFilter(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateCategory("season", "", false))
	assert.NotEmpty(t, v.ValidateCategory("season", "", true))
}

func TestValidateSermonNoteAndQuietTime(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSermonNoteRequest(dto.CreateSermonNoteRequest{Title: "Easter", Date: "2024-03-31", Notes: "He is risen"}))
	assert.ElementsMatch(t, []string{"title", "date", "notes"},
		fieldsOf(v.ValidateSermonNoteRequest(dto.CreateSermonNoteRequest{Date: "31/03/2024"})))

	assert.Empty(t, v.ValidateQuietTimeRequest(dto.CreateQuietTimeRequest{Date: "2024-04-01", Passage: "Psalm 23", Reflection: "Rest"}))
	assert.ElementsMatch(t, []string{"date", "passage", "reflection"},
		fieldsOf(v.ValidateQuietTimeRequest(dto.CreateQuietTimeRequest{})))
}

func TestValidateAnswerRequest(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateAnswerRequest(dto.AnswerRequest{Answer: ""}))
	assert.NotEmpty(t, v.ValidateAnswerRequest(dto.AnswerRequest{Answer: strings.Repeat("a", maxAnswerLength+1)}))
}

func TestValidateIDs(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateID("id", util.NewULID()))
	assert.NotEmpty(t, v.ValidateID("id", "123"))
	assert.NotEmpty(t, v.ValidateID("id", ""))

	assert.Empty(t, v.ValidateSessionID("6f1c1a4e-5a4b-4f0e-9c53-2b0d3b3f9b10"))
	assert.NotEmpty(t, v.ValidateSessionID("nope"))
}

func TestNormalizePagination(t *testing.T) {
	v := NewValidator()

	p := dto.Pagination{}
	assert.Empty(t, v.NormalizePagination(&p))
	assert.Equal(t, dto.Pagination{Limit: DefaultPageLimit, Page: 1, Offset: 0}, p)

	p = dto.Pagination{Limit: 10, Page: 3}
	assert.Empty(t, v.NormalizePagination(&p))
	assert.Equal(t, 20, p.Offset)

	p = dto.Pagination{Limit: 500, Page: -1}
	assert.Len(t, v.NormalizePagination(&p), 2)
}
