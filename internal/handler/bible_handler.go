package handler

import (
	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
	"verse-journal/internal/service"
	"verse-journal/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// BibleHandler serves scripture lookups.
type BibleHandler struct {
	bibleService service.BibleService
	validator    *validation.Validator
}

func NewBibleHandler(bibleService service.BibleService) *BibleHandler {
	return &BibleHandler{
		bibleService: bibleService,
		validator:    validation.NewValidator(),
	}
}

// GetPassage godoc
// @Summary Look up a passage
// @Tags bible
// @Produce json
// @Param ref query string true "Reference, e.g. John 3:16"
// @Param translation query string false "Translation ID (default from config)"
// @Success 200 {object} domain.Passage
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /bible/passage [get]
func (h *BibleHandler) GetPassage(c *fiber.Ctx) error {
	var q dto.PassageQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	if errs := h.validator.ValidateReference("ref", q.Ref); len(errs) > 0 {
		return errs
	}

	passage, err := h.bibleService.GetPassage(c.Context(), q.Ref, q.Translation)
	if err != nil {
		return err
	}
	return c.JSON(passage)
}

// GetChapter godoc
// @Summary Look up a whole chapter
// @Tags bible
// @Produce json
// @Param book query string true "Book name, e.g. John"
// @Param chapter query int true "Chapter number"
// @Param translation query string false "Translation ID"
// @Success 200 {object} domain.Passage
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /bible/chapter [get]
func (h *BibleHandler) GetChapter(c *fiber.Ctx) error {
	var q dto.ChapterQuery
	if err := c.QueryParser(&q); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("chapter", c.Query("chapter"))}
	}
	if q.Book == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("book")}
	}

	passage, err := h.bibleService.GetChapter(c.Context(), q.Book, q.Chapter, q.Translation)
	if err != nil {
		return err
	}
	return c.JSON(passage)
}

// ListBooks godoc
// @Summary List the books of the Bible
// @Tags bible
// @Produce json
// @Success 200 {array} domain.BibleBook
// @Router /bible/books [get]
func (h *BibleHandler) ListBooks(c *fiber.Ctx) error {
	return c.JSON(h.bibleService.ListBooks())
}
