package handler

import (
	"github.com/gofiber/fiber/v2"

	"docqa/internal/service"
)

// RegisterRoutes attaches the API routes to the provided Fiber app.
// Handlers only translate HTTP to service calls; business rules live in the services.
func RegisterRoutes(app *fiber.App, docSvc service.DocumentService, querySvc service.QueryService) {
	app.Get("/", Root())
	app.Get("/health", HealthCheck(docSvc))
	app.Get("/healthz", LivenessProbe())

	app.Post("/upload/pdf", UploadPDF(docSvc))
	app.Post("/upload/media", UploadMedia(docSvc))
	app.Get("/documents", ListDocuments(docSvc))

	app.Post("/chat", Chat(querySvc))
	app.Post("/summarize/:document_id", Summarize(querySvc))
}

// Root godoc
// @Summary      Service banner
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "AI Q&A API is running!", "status": "ok"})
	}
}

// HealthCheck godoc
// @Summary      Health check with document count
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func HealthCheck(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := docSvc.Count(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"status": "healthy", "documents_count": n})
	}
}

// LivenessProbe answers 200 with an empty body while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
