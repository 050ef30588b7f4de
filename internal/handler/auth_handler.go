package handler

import (
	"verse-journal/internal/domain"
	"verse-journal/internal/dto"
	"verse-journal/internal/logger"
	"verse-journal/internal/middleware"
	"verse-journal/internal/service"
	"verse-journal/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validation.NewValidator(),
	}
}

// Register creates an account and signs the user in.
// @Summary Register
// @Description Creates an account with email and password and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if errs := h.validator.ValidateRegisterRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.authService.Register(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login signs a user in with email and password.
// @Summary Login
// @Description Verifies the credentials and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if errs := h.validator.ValidateLoginRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RefreshToken generates new access and refresh tokens using a valid refresh token.
// @Summary Refresh JWT tokens
// @Description Exchanges a valid refresh token for a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} middleware.ErrorResponse "Refresh token missing or invalid format"
// @Failure 401 {object} middleware.ErrorResponse "Refresh token invalid or expired"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if req.RefreshToken == "" {
		logger.Get().Warn("Refresh token missing in request body")
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "MISSING_REFRESH_TOKEN", Message: "Refresh token is missing in request body", Status: fiber.StatusBadRequest,
		})
	}

	tokens, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(tokens)
}

func invalidBody(c *fiber.Ctx, err error) error {
	logger.Get().Warn("Failed to parse request body", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
		Code: "INVALID_REQUEST_BODY", Message: "Invalid request body", Status: fiber.StatusBadRequest,
	})
}

// currentUser returns the user ID placed in the request by middleware.Protected.
func currentUser(c *fiber.Ctx) (string, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		logger.Get().Warn("User ID not found in context", zap.String("path", c.Path()))
		return "", domain.NewUnauthorizedError("User ID not found in context")
	}
	return userID, nil
}
