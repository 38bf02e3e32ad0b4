package helpers

import (
	"fmt"
	"mime/multipart"

	"oruagri-api-io/api/internal/common"
	"oruagri-api-io/api/pkg/models"

	"github.com/gin-gonic/gin"
)

// CollectPhotoFiles opens the "photos" files from the multipart form. The
// caller must invoke the returned cleanup once the files have been consumed.
func CollectPhotoFiles(c *gin.Context) ([]models.File, func(), error) {
	if err := c.Request.ParseMultipartForm(common.MAX_PHOTO_FILE_SIZE); err != nil {
		return nil, func() {}, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	var opened []multipart.File
	cleanup := func() {
		for _, file := range opened {
			file.Close()
		}
	}

	var photos []models.File
	for i, fileHeader := range c.Request.MultipartForm.File["photos"] {
		file, err := fileHeader.Open()
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("error opening photo %d: %w", i, err)
		}
		opened = append(opened, file)
		photos = append(photos, models.File{File: file})
	}

	return photos, cleanup, nil
}
