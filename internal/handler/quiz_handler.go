package handler

import (
	"verse-journal/internal/dto"
	"verse-journal/internal/service"
	"verse-journal/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Picks a random saved verse and asks the user to recite it. Requires at least 3 saved verses.
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Success 201 {object} dto.QuizSessionResponse
// @Failure 422 {object} middleware.ErrorResponse "Not enough verses"
// @Router /quiz/sessions [post]
func (h *QuizHandler) StartSession(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	resp, err := h.service.StartSession(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SubmitAnswer godoc
// @Summary Submit a recitation
// @Description Grades the answer against the verse being asked.
// @Tags quiz
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param sessionId path string true "Quiz session ID"
// @Param request body dto.AnswerRequest true "Recitation"
// @Success 200 {object} dto.AnswerResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Already graded"
// @Router /quiz/sessions/{sessionId}/answer [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if errs := h.validator.ValidateAnswerRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswer(c.Context(), userID, c.Params("sessionId"), req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RevealAnswer godoc
// @Summary Reveal the verse
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Param sessionId path string true "Quiz session ID"
// @Success 200 {object} dto.RevealResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{sessionId}/reveal [get]
func (h *QuizHandler) RevealAnswer(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	resp, err := h.service.RevealAnswer(c.Context(), userID, c.Params("sessionId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// NextQuestion godoc
// @Summary Ask the next verse
// @Description Never repeats the verse just asked when another is available.
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Param sessionId path string true "Quiz session ID"
// @Success 200 {object} dto.QuizSessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{sessionId}/next [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	resp, err := h.service.NextQuestion(c.Context(), userID, c.Params("sessionId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EndSession godoc
// @Summary End a quiz session
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Param sessionId path string true "Quiz session ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{sessionId} [delete]
func (h *QuizHandler) EndSession(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.service.EndSession(c.Context(), userID, c.Params("sessionId")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Quiz session ended"})
}
