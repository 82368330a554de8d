package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jyothi-samberpu/Food-services/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveImage stores an optional uploaded image and returns its generated
// filename. Requests without an image part (or without a multipart body at
// all) are fine; non-image content is rejected by sniffing, not by trusting
// the client's Content-Type.
func saveImage(c *gin.Context, uploadDir string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", apperrors.Validation("image upload is malformed")
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.Internal(err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", apperrors.Validation("only image files are allowed")
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", apperrors.Internal(err)
	}
	return name, nil
}
