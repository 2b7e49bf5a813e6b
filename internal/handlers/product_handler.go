package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/storefrontlabs/catalog-backend/internal/dto"
	"github.com/storefrontlabs/catalog-backend/internal/repository"
)

type ProductHandler struct {
	products *repository.ProductRepository
}

func NewProductHandler(products *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" || req.CategoryID == 0 {
		return badRequest(c, "Name and category_id are required")
	}

	created, err := h.products.Create(c.UserContext(), req.Model())
	if err != nil {
		return dataError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	product, err := h.products.GetByID(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if product == nil {
		return notFound(c, "Product")
	}
	return c.JSON(product)
}

func (h *ProductHandler) GetByName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return badRequest(c, "Query parameter name is required")
	}

	product, err := h.products.GetByName(c.UserContext(), name)
	if err != nil {
		return dataError(c, err)
	}
	if product == nil {
		return notFound(c, "Product")
	}
	return c.JSON(product)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	products, err := h.products.List(c.UserContext(), offset, limit)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var req dto.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.products.Update(c.UserContext(), id, req.Fields())
	if err != nil {
		return dataError(c, err)
	}
	if updated == nil {
		return notFound(c, "Product")
	}
	return c.JSON(updated)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	deleted, err := h.products.Delete(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if deleted == nil {
		return notFound(c, "Product")
	}
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Product with id: %d has been successfully deleted", deleted.ID),
	})
}
