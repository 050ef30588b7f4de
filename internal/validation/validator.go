package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
	"verse-journal/internal/util"

	"github.com/google/uuid"
)

const (
	maxReferenceLength = 100
	maxVerseTextLength = 5000
	maxAnswerLength    = 5000
	maxNotesLength     = 20000
	maxTitleLength     = 200
	maxNameLength      = 100
	maxCategoryValue   = 50
	maxCategories      = 20
	minPasswordLength  = 8
	maxPasswordLength  = 72 // bcrypt ignores anything longer
	MaxPageLimit       = 100
	DefaultPageLimit   = 20
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	referencePattern = regexp.MustCompile(`^[\p{L}\p{N} .:,;\-]+$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateRegisterRequest(req dto.RegisterRequest) domain.ValidationErrors {
	errs := v.validateCredentials(req.Email, req.Password)
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, domain.NewMissingFieldError("name"))
	} else if n := utf8.RuneCountInString(req.Name); n > maxNameLength {
		errs = append(errs, domain.NewOutOfRangeError("name", n, 1, maxNameLength))
	}
	return errs
}

func (v *Validator) ValidateLoginRequest(req dto.LoginRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	}
	if req.Password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}
	return errs
}

func (v *Validator) validateCredentials(email, password string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	} else if !emailPattern.MatchString(strings.TrimSpace(email)) {
		errs = append(errs, domain.NewInvalidFormatError("email", email))
	}
	if password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	} else if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		errs = append(errs, domain.NewOutOfRangeError("password", len(password), minPasswordLength, maxPasswordLength))
	}
	return errs
}

func (v *Validator) ValidateCreateVerseRequest(req dto.CreateVerseRequest) domain.ValidationErrors {
	errs := v.ValidateReference("reference", req.Reference)

	if strings.TrimSpace(req.Text) == "" {
		errs = append(errs, domain.NewMissingFieldError("text"))
	} else if n := utf8.RuneCountInString(req.Text); n > maxVerseTextLength {
		errs = append(errs, domain.NewOutOfRangeError("text", n, 1, maxVerseTextLength))
	}

	if len(req.Categories) > maxCategories {
		errs = append(errs, domain.NewOutOfRangeError("categories", len(req.Categories), 0, maxCategories))
	}
	for _, c := range req.Categories {
		errs = append(errs, v.ValidateCategory(c.Type, c.Value, true)...)
	}
	return errs
}

// ValidateCategory checks a category tag. When valueRequired is false an
// empty value is accepted, which filters on the type alone.
func (v *Validator) ValidateCategory(categoryType, value string, valueRequired bool) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if !domain.CategoryType(categoryType).Valid() {
		errs = append(errs, domain.NewInvalidFormatError("category.type", categoryType))
	}
	value = strings.TrimSpace(value)
	if value == "" {
		if valueRequired {
			errs = append(errs, domain.NewMissingFieldError("category.value"))
		}
	} else if n := utf8.RuneCountInString(value); n > maxCategoryValue {
		errs = append(errs, domain.NewOutOfRangeError("category.value", n, 1, maxCategoryValue))
	}
	return errs
}

func (v *Validator) ValidateSermonNoteRequest(req dto.CreateSermonNoteRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, domain.NewMissingFieldError("title"))
	} else if n := utf8.RuneCountInString(req.Title); n > maxTitleLength {
		errs = append(errs, domain.NewOutOfRangeError("title", n, 1, maxTitleLength))
	}
	if n := utf8.RuneCountInString(req.Preacher); n > maxNameLength {
		errs = append(errs, domain.NewOutOfRangeError("preacher", n, 0, maxNameLength))
	}
	errs = append(errs, v.validateDate("date", req.Date)...)
	if strings.TrimSpace(req.Notes) == "" {
		errs = append(errs, domain.NewMissingFieldError("notes"))
	} else if n := utf8.RuneCountInString(req.Notes); n > maxNotesLength {
		errs = append(errs, domain.NewOutOfRangeError("notes", n, 1, maxNotesLength))
	}
	return errs
}

func (v *Validator) ValidateQuietTimeRequest(req dto.CreateQuietTimeRequest) domain.ValidationErrors {
	errs := v.validateDate("date", req.Date)
	errs = append(errs, v.ValidateReference("passage", req.Passage)...)
	if strings.TrimSpace(req.Reflection) == "" {
		errs = append(errs, domain.NewMissingFieldError("reflection"))
	} else if n := utf8.RuneCountInString(req.Reflection); n > maxNotesLength {
		errs = append(errs, domain.NewOutOfRangeError("reflection", n, 1, maxNotesLength))
	}
	if n := utf8.RuneCountInString(req.Prayer); n > maxNotesLength {
		errs = append(errs, domain.NewOutOfRangeError("prayer", n, 0, maxNotesLength))
	}
	return errs
}

// ValidateAnswerRequest allows an empty answer: it simply scores 0.
func (v *Validator) ValidateAnswerRequest(req dto.AnswerRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if n := utf8.RuneCountInString(req.Answer); n > maxAnswerLength {
		errs = append(errs, domain.NewOutOfRangeError("answer", n, 0, maxAnswerLength))
	}
	return errs
}

// ValidateReference checks a scripture reference such as "1 John 4:7-8".
func (v *Validator) ValidateReference(field, ref string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	ref = strings.TrimSpace(ref)
	if ref == "" {
		errs = append(errs, domain.NewMissingFieldError(field))
	} else if n := utf8.RuneCountInString(ref); n > maxReferenceLength {
		errs = append(errs, domain.NewOutOfRangeError(field, n, 1, maxReferenceLength))
	} else if !referencePattern.MatchString(ref) {
		errs = append(errs, domain.NewInvalidFormatError(field, ref))
	}
	return errs
}

// ValidateID checks a ULID path parameter.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

// ValidateSessionID checks a quiz session ID, which is a UUID.
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("session_id")}
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("session_id", id)}
	}
	return nil
}

// NormalizePagination applies defaults and validates the page window.
func (v *Validator) NormalizePagination(p *dto.Pagination) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		errs = append(errs, domain.NewOutOfRangeError("limit", p.Limit, 1, MaxPageLimit))
	}
	if p.Page < 1 {
		errs = append(errs, domain.NewOutOfRangeError("page", p.Page, 1, 1<<20))
	}
	p.Offset = (p.Page - 1) * p.Limit
	return errs
}

func (v *Validator) validateDate(field, value string) domain.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if _, err := util.ParseDate(value); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, value)}
	}
	return nil
}
