package importer

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"saleschart-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

// POST /api/import
// Accepts one uploaded export file (.csv, .tsv, .txt or .xlsx) and runs the
// import pipeline on it.
func UploadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded file: "+err.Error())
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		switch ext {
		case ".csv", ".tsv", ".txt", ".xlsx":
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Only .csv, .tsv, .txt and .xlsx files can be imported")
		}

		tmp, err := os.CreateTemp("", "sales-import-*"+ext)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create temp file")
		}
		tmpPath := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpPath)

		if err := c.SaveFile(fileHeader, tmpPath); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save uploaded file")
		}

		imp := New(NewRepositories(database.DB))
		count, err := imp.ImportFile(tmpPath)
		if err != nil {
			log.Printf("import of %s failed: %v", fileHeader.Filename, err)
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Import failed: "+err.Error())
		}

		log.Printf("imported %d rows from %s", count, fileHeader.Filename)

		return c.JSON(fiber.Map{
			"file":     fileHeader.Filename,
			"imported": count,
		})
	}
}
