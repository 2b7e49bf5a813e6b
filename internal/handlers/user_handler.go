package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/storefrontlabs/catalog-backend/internal/dto"
	"github.com/storefrontlabs/catalog-backend/internal/middleware"
	"github.com/storefrontlabs/catalog-backend/internal/repository"
)

type UserHandler struct {
	users *repository.UserRepository
}

func NewUserHandler(users *repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if user == nil {
		return notFound(c, "User")
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	user, err := h.users.GetByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return dataError(c, err)
	}
	if user == nil {
		return notFound(c, "User")
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Search reads one user by full name.
func (h *UserHandler) Search(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return badRequest(c, "Query parameter name is required")
	}

	user, err := h.users.GetByName(c.UserContext(), name)
	if err != nil {
		return dataError(c, err)
	}
	if user == nil {
		return notFound(c, "User")
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	users, err := h.users.List(c.UserContext(), offset, limit)
	if err != nil {
		return dataError(c, err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(out)
}

// Update applies a partial update. Users may update themselves; anyone else
// requires superuser privilege.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	current := middleware.CurrentUser(c)
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	if current.ID != id && !current.IsSuperuser {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not enough permissions",
		})
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.users.Update(c.UserContext(), id, req.Fields())
	if err != nil {
		return dataError(c, err)
	}
	if updated == nil {
		return notFound(c, "User")
	}
	return c.JSON(dto.NewUserResponse(updated))
}

// SetSuperuser grants or revokes the superuser flag. The route is mounted
// behind the admin gate.
func (h *UserHandler) SetSuperuser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.SuperuserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.users.SetSuperuser(c.UserContext(), id, req.IsSuperuser)
	if err != nil {
		return dataError(c, err)
	}
	if updated == nil {
		return notFound(c, "User")
	}
	return c.JSON(dto.NewUserResponse(updated))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	deleted, err := h.users.Delete(c.UserContext(), id)
	if err != nil {
		return dataError(c, err)
	}
	if deleted == nil {
		return notFound(c, "User")
	}
	return c.JSON(dto.MessageResponse{
		Message: "User " + deleted.Email + " has been deleted",
	})
}
