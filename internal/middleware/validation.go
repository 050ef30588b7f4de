package middleware

import (
	"verse-journal/internal/dto"
	"verse-journal/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	ValidatedIDKey         = "validated_id"
	ValidatedSessionIDKey  = "validated_session_id"
	ValidatedPaginationKey = "validated_pagination"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam checks that the named path parameter is a ULID.
func (vm *ValidationMiddleware) ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(param)
		if errs := vm.validator.ValidateID(param, id); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// ValidateSessionParam checks the :sessionId path parameter.
func (vm *ValidationMiddleware) ValidateSessionParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("sessionId")
		if errs := vm.validator.ValidateSessionID(id); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedSessionIDKey, id)
		return c.Next()
	}
}

// ValidatePagination parses limit and page, applying defaults.
func (vm *ValidationMiddleware) ValidatePagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p dto.Pagination
		if err := c.QueryParser(&p); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid pagination parameters")
		}
		if errs := vm.validator.NormalizePagination(&p); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedPaginationKey, p)
		return c.Next()
	}
}
