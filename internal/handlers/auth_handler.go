package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/storefrontlabs/catalog-backend/internal/dto"
	"github.com/storefrontlabs/catalog-backend/internal/models"
	"github.com/storefrontlabs/catalog-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || len(req.Password) < 8 {
		return badRequest(c, "Email required and password must be at least 8 characters")
	}

	user := &models.User{
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: true,
	}

	created, err := h.authService.Register(c.UserContext(), user, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return dataError(c, err)
	}

	token, err := h.authService.IssueToken(created)
	if err != nil {
		return dataError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        dto.NewUserResponse(created),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	token, _, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return dataError(c, err)
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "Bearer"})
}
