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

type OrderHandler struct {
	orders *repository.OrderRepository
}

func NewOrderHandler(orders *repository.OrderRepository) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	// Shipping contact falls back to the user's profile.
	order := &models.Order{
		UserID:    current.ID,
		Status:    models.OrderStatusPending,
		FullName:  fallback(req.FullName, current.FullName),
		Email:     fallback(req.Email, current.Email),
		Address:   fallback(req.Address, current.Address),
		City:      fallback(req.City, current.City),
		Country:   fallback(req.Country, current.Country),
		Telephone: fallback(req.Telephone, current.Telephone),
	}

	inputs := make([]repository.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, repository.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			ColorID:   item.ColorID,
			SizeID:    item.SizeID,
		})
	}

	created, err := h.orders.Create(c.UserContext(), order, inputs)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyOrder),
			errors.Is(err, repository.ErrBadQuantity),
			errors.Is(err, repository.ErrUnknownProduct):
			return badRequest(c, err.Error())
		}
		return dataError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Get returns one order. Users see their own orders; superusers see all.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	current := middleware.CurrentUser(c)
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	order, err := h.orders.GetByID(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if order == nil {
		return notFound(c, "Order")
	}
	if order.UserID != current.ID && !current.IsSuperuser {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not enough permissions",
		})
	}
	return c.JSON(order)
}

func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	offset, limit := pageParams(c)
	orders, err := h.orders.ListByUser(c.UserContext(), current.ID, offset, limit)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	orders, err := h.orders.List(c.UserContext(), offset, limit)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	var req dto.OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Status == "" {
		return badRequest(c, "Status is required")
	}

	updated, err := h.orders.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return dataError(c, err)
	}
	if updated == nil {
		return notFound(c, "Order")
	}
	return c.JSON(updated)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	deleted, err := h.orders.Delete(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if deleted == nil {
		return notFound(c, "Order")
	}
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Order with id: %d has been successfully deleted", deleted.ID),
	})
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
