package handler

import (
	"verse-journal/internal/dto"
	"verse-journal/internal/logger"
	"verse-journal/internal/middleware"
	"verse-journal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMyProfile retrieves the profile of the currently authenticated user.
// @Summary Get My Profile
// @Description Retrieves the profile information of the logged-in user.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetUserProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	logger.Get().Debug("User profile retrieved", zap.String("userID", userID))
	return c.JSON(profile)
}

// GetMyAttempts lists the user's graded quiz answers, newest first.
// @Summary Get quiz attempt history
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Items per page (default 20, max 100)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} dto.QuizAttemptsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /quiz/attempts [get]
func (h *UserHandler) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	pagination, ok := c.Locals(middleware.ValidatedPaginationKey).(dto.Pagination)
	if !ok {
		pagination = dto.Pagination{Limit: 20, Page: 1}
	}

	resp, err := h.userService.GetUserQuizAttempts(c.Context(), userID, pagination)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
