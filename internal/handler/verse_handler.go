package handler

import (
	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
	"verse-journal/internal/service"
	"verse-journal/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// VerseHandler handles the saved-verse endpoints.
type VerseHandler struct {
	verseService service.VerseService
	validator    *validation.Validator
}

func NewVerseHandler(verseService service.VerseService) *VerseHandler {
	return &VerseHandler{
		verseService: verseService,
		validator:    validation.NewValidator(),
	}
}

// ListVerses godoc
// @Summary List saved verses
// @Description Returns the user's verses, newest first. Pass category_type (and optionally category_value) to filter by tag.
// @Tags verses
// @Security ApiKeyAuth
// @Produce json
// @Param category_type query string false "season, mood or topic"
// @Param category_value query string false "Tag value, e.g. anxious"
// @Success 200 {array} dto.VerseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /verses [get]
func (h *VerseHandler) ListVerses(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var query dto.VerseFilterQuery
	if err := c.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	filter := domain.VerseFilter{}
	if query.CategoryType != "" || query.CategoryValue != "" {
		if errs := h.validator.ValidateCategory(query.CategoryType, query.CategoryValue, false); len(errs) > 0 {
			return errs
		}
		filter.CategoryType = domain.CategoryType(query.CategoryType)
		filter.CategoryValue = query.CategoryValue
	}

	verses, err := h.verseService.ListVerses(c.Context(), userID, filter)
	if err != nil {
		return err
	}
	return c.JSON(verses)
}

// GetVerse godoc
// @Summary Get a saved verse
// @Tags verses
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Verse ID"
// @Success 200 {object} dto.VerseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /verses/{id} [get]
func (h *VerseHandler) GetVerse(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	verse, err := h.verseService.GetVerse(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(verse)
}

// CreateVerse godoc
// @Summary Save a verse
// @Tags verses
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateVerseRequest true "Verse"
// @Success 201 {object} dto.VerseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /verses [post]
func (h *VerseHandler) CreateVerse(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateVerseRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if errs := h.validator.ValidateCreateVerseRequest(req); len(errs) > 0 {
		return errs
	}

	verse, err := h.verseService.CreateVerse(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(verse)
}

// DeleteVerse godoc
// @Summary Delete a saved verse
// @Tags verses
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Verse ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /verses/{id} [delete]
func (h *VerseHandler) DeleteVerse(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.verseService.DeleteVerse(c.Context(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Verse deleted"})
}
