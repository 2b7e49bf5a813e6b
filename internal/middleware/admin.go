package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/storefrontlabs/catalog-backend/internal/dto"
	"github.com/storefrontlabs/catalog-backend/internal/models"
	"github.com/storefrontlabs/catalog-backend/internal/repository"
	"github.com/storefrontlabs/catalog-backend/internal/services"
)

const currentUserKey = "currentUser"

// LoadCurrentUser resolves the JWT subject to a live user row and stores it
// in context locals. A token whose user no longer exists is rejected
// exactly like an invalid token.
func LoadCurrentUser(users *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, err := Subject(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		user, err := users.GetByEmail(c.UserContext(), sub)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user loaded by LoadCurrentUser, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

// AdminRequired gates admin-only routes through the auth service's superuser
// check: a missing or invalid identity is 401, an authenticated non-superuser
// is 403. Runs after JWTProtected and stores the resolved user in locals, so
// admin routes don't also need LoadCurrentUser.
func AdminRequired(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		user, err := auth.RequireSuperuser(c.UserContext(), token.Raw)
		if err != nil {
			if errors.Is(err, services.ErrForbidden) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Error: true, Message: "Not enough permissions",
				})
			}
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Unauthorized",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}
