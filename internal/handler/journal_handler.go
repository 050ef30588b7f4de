package handler

import (
	"verse-journal/internal/dto"
	"verse-journal/internal/service"
	"verse-journal/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// JournalHandler handles sermon notes, quiet time entries and the combined
// journal view.
type JournalHandler struct {
	journalService service.JournalService
	validator      *validation.Validator
}

func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		validator:      validation.NewValidator(),
	}
}

// GetJournal godoc
// @Summary Get the whole journal
// @Description Returns verses, sermon notes and quiet time entries in one payload.
// @Tags journal
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.JournalResponse
// @Router /journal [get]
func (h *JournalHandler) GetJournal(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	journal, err := h.journalService.GetJournal(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(journal)
}

// ListSermonNotes godoc
// @Summary List sermon notes
// @Tags journal
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.SermonNoteResponse
// @Router /sermon-notes [get]
func (h *JournalHandler) ListSermonNotes(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	notes, err := h.journalService.ListSermonNotes(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

// CreateSermonNote godoc
// @Summary Save a sermon note
// @Tags journal
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSermonNoteRequest true "Sermon note"
// @Success 201 {object} dto.SermonNoteResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /sermon-notes [post]
func (h *JournalHandler) CreateSermonNote(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateSermonNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if errs := h.validator.ValidateSermonNoteRequest(req); len(errs) > 0 {
		return errs
	}

	note, err := h.journalService.CreateSermonNote(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// DeleteSermonNote godoc
// @Summary Delete a sermon note
// @Tags journal
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Sermon note ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sermon-notes/{id} [delete]
func (h *JournalHandler) DeleteSermonNote(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.journalService.DeleteSermonNote(c.Context(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Sermon note deleted"})
}

// ListQuietTime godoc
// @Summary List quiet time entries
// @Tags journal
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.QuietTimeResponse
// @Router /quiet-time [get]
func (h *JournalHandler) ListQuietTime(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entries, err := h.journalService.ListQuietTimeEntries(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// CreateQuietTime godoc
// @Summary Save a quiet time entry
// @Tags journal
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateQuietTimeRequest true "Quiet time entry"
// @Success 201 {object} dto.QuietTimeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiet-time [post]
func (h *JournalHandler) CreateQuietTime(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateQuietTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if errs := h.validator.ValidateQuietTimeRequest(req); len(errs) > 0 {
		return errs
	}

	entry, err := h.journalService.CreateQuietTimeEntry(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// DeleteQuietTime godoc
// @Summary Delete a quiet time entry
// @Tags journal
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Quiet time entry ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiet-time/{id} [delete]
func (h *JournalHandler) DeleteQuietTime(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.journalService.DeleteQuietTimeEntry(c.Context(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Quiet time entry deleted"})
}
