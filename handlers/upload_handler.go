package handlers

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadHandler handles product image uploads
type UploadHandler struct {
	UploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{UploadDir: uploadDir}
}

// UploadImage handles image uploads and returns the file URL.
// A product without an image is valid; clients fall back to the
// placeholder, so this endpoint is only hit when a file was chosen.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	// Parse the multipart form:
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image file is required",
		})
	}

	// Validate file type (simple check extension)
	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only .jpg, .jpeg, and .png files are allowed",
		})
	}

	// Generate unique filename
	filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)

	destination := filepath.Join(h.UploadDir, "products", filename)

	if err := c.SaveFile(file, destination); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save file",
		})
	}

	// Return the public URL
	imageURL := fmt.Sprintf("/uploads/products/%s", filename)

	return c.JSON(fiber.Map{
		"url": imageURL,
	})
}
