package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/storefrontlabs/catalog-backend/internal/dto"
	"github.com/storefrontlabs/catalog-backend/internal/models"
	"github.com/storefrontlabs/catalog-backend/internal/repository"
)

// LookupHandler serves one name-keyed lookup entity. The factory builds a
// fresh entity from a requested name, which keeps the handler generic
// without reflection.
type LookupHandler[T repository.Entity] struct {
	repo    *repository.LookupRepository[T]
	label   string
	factory func(name string) *T
}

func NewLookupHandler[T repository.Entity](repo *repository.LookupRepository[T], label string, factory func(name string) *T) *LookupHandler[T] {
	return &LookupHandler[T]{repo: repo, label: label, factory: factory}
}

func NewCategoryHandler(repo *repository.CategoryRepository) *LookupHandler[models.Category] {
	return NewLookupHandler(repo, "Category", func(name string) *models.Category {
		return &models.Category{Name: name}
	})
}

func NewBrandHandler(repo *repository.BrandRepository) *LookupHandler[models.Brand] {
	return NewLookupHandler(repo, "Brand", func(name string) *models.Brand {
		return &models.Brand{Name: name}
	})
}

func NewColorHandler(repo *repository.ColorRepository) *LookupHandler[models.Color] {
	return NewLookupHandler(repo, "Color", func(name string) *models.Color {
		return &models.Color{Name: name}
	})
}

func NewSizeHandler(repo *repository.SizeRepository) *LookupHandler[models.Size] {
	return NewLookupHandler(repo, "Size", func(name string) *models.Size {
		return &models.Size{Name: name}
	})
}

func (h *LookupHandler[T]) Create(c *fiber.Ctx) error {
	var req dto.LookupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}

	created, err := h.repo.Create(c.UserContext(), h.factory(req.Name))
	if err != nil {
		return dataError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *LookupHandler[T]) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, fmt.Sprintf("Invalid %s id", h.label))
	}

	entity, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if entity == nil {
		return notFound(c, h.label)
	}
	return c.JSON(entity)
}

func (h *LookupHandler[T]) List(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	entities, err := h.repo.List(c.UserContext(), offset, limit)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(entities)
}

// Search reads one entity by its unique name.
func (h *LookupHandler[T]) Search(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return badRequest(c, "Query parameter name is required")
	}

	entity, err := h.repo.GetByName(c.UserContext(), name)
	if err != nil {
		return dataError(c, err)
	}
	if entity == nil {
		return notFound(c, h.label)
	}
	return c.JSON(entity)
}

func (h *LookupHandler[T]) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, fmt.Sprintf("Invalid %s id", h.label))
	}

	var req dto.LookupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}

	updated, err := h.repo.Update(c.UserContext(), id, map[string]interface{}{"name": req.Name})
	if err != nil {
		return dataError(c, err)
	}
	if updated == nil {
		return notFound(c, h.label)
	}
	return c.JSON(updated)
}

func (h *LookupHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, fmt.Sprintf("Invalid %s id", h.label))
	}

	deleted, err := h.repo.Delete(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if deleted == nil {
		return notFound(c, h.label)
	}
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("%s with id: %d has been successfully deleted", h.label, id),
	})
}

// Products returns the lookup row with its product collection eager-loaded.
func (h *LookupHandler[T]) Products(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, fmt.Sprintf("Invalid %s id", h.label))
	}

	entity, err := h.repo.GetWithProducts(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if entity == nil {
		return notFound(c, h.label)
	}
	return c.JSON(entity)
}

// ListProducts is the paginated with-products listing.
func (h *LookupHandler[T]) ListProducts(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	entities, err := h.repo.ListWithProducts(c.UserContext(), offset, limit)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(entities)
}
