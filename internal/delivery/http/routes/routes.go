package routes

import (
	"techrec/internal/delivery/http/handler"
	"techrec/internal/delivery/http/middleware"
	"techrec/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health *handler.HealthHandler
	Match  *handler.MatchHandler
	Roles  *handler.RolesHandler
	WS     *ws.Handler
	Auth   *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.Health.Health)
	app.Get("/ws/matches", r.WS.HandleMatchWS)

	v1 := app.Group("/api/v1")

	// Listing is public; match scores appear only for authenticated callers.
	v1.Get("/roles", r.Roles.ListRoles, r.Auth.Optional())

	protected := v1.Group("", r.Auth.Middleware())
	protected.Get("/roles/:role_id/match", r.Match.GetMatch)
	protected.Post("/matches/batch", r.Match.BatchMatch)
}
