package handler

import (
	"context"
	"time"

	"techrec/internal/database"
	"techrec/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache Pinger
}

func NewHealthHandler(db database.DB, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	deps := map[string]string{}

	if h.db != nil {
		deps["database"] = pingStatus(h.db.Ping(ctx))
	}
	if h.cache != nil {
		// Cache is best-effort; a down Redis does not fail the check.
		deps["cache"] = pingStatus(h.cache.Ping(ctx))
	}

	status := fiber.StatusOK
	if deps["database"] == "down" {
		status = fiber.StatusServiceUnavailable
	}

	return response.Success(c, status, "ok", fiber.Map{
		"status":       httpStatusWord(status),
		"dependencies": deps,
	})
}

func pingStatus(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}

func httpStatusWord(status int) string {
	if status == fiber.StatusOK {
		return "healthy"
	}
	return "degraded"
}
