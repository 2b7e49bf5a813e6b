package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/storefrontlabs/catalog-backend/internal/database"
	"github.com/storefrontlabs/catalog-backend/internal/dto"
	"github.com/storefrontlabs/catalog-backend/internal/repository"
)

// dataError maps data-layer failures to transport responses. Constraint
// violations become 409 with the redacted detail; anything else is an
// internal error and its detail stays out of the response.
func dataError(c *fiber.Ctx, err error) error {
	if errors.Is(err, database.ErrConstraintViolation) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	if errors.Is(err, repository.ErrAmbiguousPredicate) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	slog.Error("data layer error", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: what + " not found",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func idParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func pageParams(c *fiber.Ctx) (offset, limit int) {
	return c.QueryInt("offset", 0), c.QueryInt("limit", repository.DefaultPageSize)
}
