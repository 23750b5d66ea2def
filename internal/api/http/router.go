package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Antonk123/latest-it-ticketing/internal/api/http/handlers"
	"github.com/Antonk123/latest-it-ticketing/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	Contacts       *handlers.ContactsHandler
	Categories     *handlers.CategoriesHandler
	Checklists     *handlers.ChecklistsHandler
	Attachments    *handlers.AttachmentsHandler
	PublicIntake   *handlers.PublicIntakeHandler
	Staff          *handlers.StaffHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything under /api requires a
// staff bearer token; /public is open to any origin.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	public := app.Group("/public", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))
	public.Post("/tickets", cfg.PublicIntake.Submit)

	app.Post("/auth/login", cfg.Staff.Login)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)
	api.Post("/auth/password/change", cfg.Staff.ChangePassword)

	api.Get("/tickets", cfg.Tickets.List)
	api.Post("/tickets", cfg.Tickets.Create)
	api.Get("/tickets/:id", cfg.Tickets.Get)
	api.Patch("/tickets/:id", cfg.Tickets.Update)
	api.Delete("/tickets/:id", cfg.Tickets.Delete)

	api.Get("/tickets/:id/checklist", cfg.Checklists.List)
	api.Post("/tickets/:id/checklist", cfg.Checklists.Add)
	api.Post("/tickets/:id/checklist/bulk", cfg.Checklists.AddBulk)
	api.Patch("/checklist/:itemId", cfg.Checklists.Update)
	api.Delete("/checklist/:itemId", cfg.Checklists.Delete)

	api.Get("/tickets/:id/attachments", cfg.Attachments.List)
	api.Post("/tickets/:id/attachments", cfg.Attachments.Upload)
	api.Delete("/attachments/:attachmentId", cfg.Attachments.Delete)

	api.Get("/contacts", cfg.Contacts.List)
	api.Post("/contacts", cfg.Contacts.Create)
	api.Get("/contacts/:id", cfg.Contacts.Get)
	api.Put("/contacts/:id", cfg.Contacts.Update)
	api.Delete("/contacts/:id", cfg.Contacts.Delete)

	api.Get("/categories", cfg.Categories.List)
	api.Post("/categories", cfg.Categories.Create)
	api.Put("/categories/:id", cfg.Categories.Update)
	api.Delete("/categories/:id", cfg.Categories.Delete)
}
