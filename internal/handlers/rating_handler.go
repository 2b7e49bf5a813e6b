package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/storefrontlabs/catalog-backend/internal/dto"
	"github.com/storefrontlabs/catalog-backend/internal/middleware"
	"github.com/storefrontlabs/catalog-backend/internal/models"
	"github.com/storefrontlabs/catalog-backend/internal/repository"
)

type RatingHandler struct {
	ratings *repository.RatingRepository
}

func NewRatingHandler(ratings *repository.RatingRepository) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

func (h *RatingHandler) Create(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.RatingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	rating := &models.Rating{
		UserID:    current.ID,
		ProductID: req.ProductID,
		Score:     req.Score,
		Comment:   req.Comment,
	}

	created, err := h.ratings.Create(c.UserContext(), rating)
	if err != nil {
		if errors.Is(err, repository.ErrScoreOutOfRange) {
			return badRequest(c, err.Error())
		}
		return dataError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RatingHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "Invalid rating id")
	}

	rating, err := h.ratings.GetByID(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if rating == nil {
		return notFound(c, "Rating")
	}
	return c.JSON(rating)
}

func (h *RatingHandler) List(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	ratings, err := h.ratings.List(c.UserContext(), offset, limit)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(ratings)
}

// ListMine returns every rating the authenticated user has written.
func (h *RatingHandler) ListMine(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	ratings, err := h.ratings.ListByUser(c.UserContext(), current.ID)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(ratings)
}

func (h *RatingHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	ratings, err := h.ratings.ListByProduct(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(ratings)
}

// loadOwned fetches the rating and enforces the ownership rule: only the
// creator or a superuser may touch it.
func (h *RatingHandler) loadOwned(c *fiber.Ctx) (*models.Rating, error) {
	id, err := idParam(c)
	if err != nil {
		return nil, badRequest(c, "Invalid rating id")
	}

	current := middleware.CurrentUser(c)
	if current == nil {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	rating, err := h.ratings.GetByID(c.UserContext(), id)
	if err != nil {
		return nil, dataError(c, err)
	}
	if rating == nil {
		return nil, notFound(c, "Rating")
	}
	if rating.UserID != current.ID && !current.IsSuperuser {
		return nil, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not enough permissions",
		})
	}
	return rating, nil
}

func (h *RatingHandler) Update(c *fiber.Ctx) error {
	rating, done := h.loadOwned(c)
	if rating == nil {
		return done
	}

	var req dto.RatingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.ratings.Update(c.UserContext(), rating.ID, req.Fields())
	if err != nil {
		if errors.Is(err, repository.ErrScoreOutOfRange) {
			return badRequest(c, err.Error())
		}
		return dataError(c, err)
	}
	if updated == nil {
		return notFound(c, "Rating")
	}
	return c.JSON(updated)
}

func (h *RatingHandler) Delete(c *fiber.Ctx) error {
	rating, done := h.loadOwned(c)
	if rating == nil {
		return done
	}

	deleted, err := h.ratings.Delete(c.UserContext(), rating.ID)
	if err != nil {
		return dataError(c, err)
	}
	if deleted == nil {
		return notFound(c, "Rating")
	}
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Rating with id: %d has been successfully deleted", deleted.ID),
	})
}
