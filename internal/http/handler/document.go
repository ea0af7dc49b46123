package handler

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"docqa/internal/service"
)

type uploadFunc func(ctx context.Context, content []byte, filename string) (*service.UploadResult, error)

// UploadPDF godoc
// @Summary      Upload a PDF document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF file, name must end in .pdf"
// @Success      200  {object}  service.UploadResult
// @Failure      400  {object}  errorPayload
// @Failure      500  {object}  errorPayload
// @Router       /upload/pdf [post]
func UploadPDF(docSvc service.DocumentService) fiber.Handler {
	return upload(docSvc.UploadPDF)
}

// UploadMedia godoc
// @Summary      Upload an audio or video file
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "media file"
// @Success      200  {object}  service.UploadResult
// @Failure      400  {object}  errorPayload
// @Failure      500  {object}  errorPayload
// @Router       /upload/media [post]
func UploadMedia(docSvc service.DocumentService) fiber.Handler {
	return upload(docSvc.UploadMedia)
}

// upload reads the multipart field "file" fully and hands it to fn.
func upload(fn uploadFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}

		res, err := fn(c.UserContext(), content, fh.Filename)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListDocuments godoc
// @Summary      List every registered document
// @Tags         documents
// @Produce      json
// @Success      200  {object}  service.DocumentListResult
// @Failure      500  {object}  errorPayload
// @Router       /documents [get]
func ListDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := docSvc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
