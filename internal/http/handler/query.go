package handler

import (
	"github.com/gofiber/fiber/v2"

	"docqa/internal/service"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	DocumentID string `json:"document_id"`
	Question   string `json:"question"`
}

// Chat godoc
// @Summary      Ask a question about a document
// @Tags         query
// @Accept       json
// @Produce      json
// @Param        request  body  ChatRequest  true  "document id and question"
// @Success      200  {object}  service.ChatResult
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Failure      500  {object}  errorPayload
// @Router       /chat [post]
func Chat(querySvc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ChatRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		}

		res, err := querySvc.Chat(c.UserContext(), req.DocumentID, req.Question)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// Summarize godoc
// @Summary      Summarize a document
// @Tags         query
// @Produce      json
// @Param        document_id  path  string  true  "document id"
// @Success      200  {object}  service.SummaryResult
// @Failure      404  {object}  errorPayload
// @Failure      500  {object}  errorPayload
// @Router       /summarize/{document_id} [post]
func Summarize(querySvc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := querySvc.Summarize(c.UserContext(), c.Params("document_id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
