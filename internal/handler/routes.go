package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"ndmedia/internal/domain"
	"ndmedia/internal/middleware"
)

// Handlers groups everything RegisterRoutes wires.
type Handlers struct {
	Page     *PageHandler
	View     *ViewHandler
	Quiz     *QuizHandler
	Carousel *CarouselHandler
	Tracker  *TrackerHandler
	Content  *ContentHandler
	Health   *HealthHandler
}

// RegisterRoutes mounts the HTML pages, static assets and JSON API on app.
func RegisterRoutes(app *fiber.App, h Handlers) {
	validator := middleware.NewValidationMiddleware()

	app.Get("/healthz", h.Health.Health)
	app.Get("/static/:file", etag.New(), h.Page.Static)

	api := app.Group("/api")
	api.Get("/content/:kind", h.Content.GetContent)

	views := api.Group("/views/:viewID", validator.ValidateViewID())
	views.Get("/", h.View.GetView)
	views.Delete("/", h.View.ExitView)
	views.Post("/exit", h.View.ExitView)
	views.Post("/shell/sidebar", h.View.ToggleSidebar)
	views.Post("/shell/menu", h.View.ToggleMenu)

	views.Get("/quiz", h.Quiz.GetQuiz)
	views.Post("/quiz/select", h.Quiz.SelectOption)
	views.Post("/quiz/advance", h.Quiz.Advance)
	views.Post("/quiz/restart", h.Quiz.Restart)

	views.Get("/carousel", h.Carousel.GetCarousel)
	views.Post("/carousel/next", h.Carousel.Next)
	views.Post("/carousel/previous", h.Carousel.Previous)
	views.Post("/carousel/jump", h.Carousel.JumpTo)

	views.Post("/tracker/scroll", h.Tracker.Scroll)
	views.Post("/tracker/select", h.Tracker.SelectSection)

	app.Get("/", h.Page.Page)
	for _, page := range domain.Pages() {
		app.Get("/"+page.Slug(), h.Page.Page)
	}
	app.Get("/:page", h.Page.Unknown)
}
