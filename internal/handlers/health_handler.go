package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/storefrontlabs/catalog-backend/internal/database"
	"github.com/storefrontlabs/catalog-backend/internal/dto"
)

type HealthHandler struct {
	mgr *database.Manager
}

func NewHealthHandler(mgr *database.Manager) *HealthHandler {
	return &HealthHandler{mgr: mgr}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.mgr.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
