package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return "", false
}

// requesterRole reads the role the JWT middleware stored on the context.
func requesterRole(c *gin.Context) models.UserRole {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return models.UserRole(s)
		}
	}
	return ""
}

// readUpload pulls a multipart file field fully into memory; verification
// documents are small (10MB handler cap).
func readUpload(c *gin.Context, field string) (data []byte, fileName, mimeType string, size int, err error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", "", 0, err
	}
	if fh.Size <= 0 || fh.Size > 10<<20 {
		return nil, "", "", 0, errors.New("file empty or too large (max 10MB)")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", "", 0, err
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, "", "", 0, err
	}

	mimeType = http.DetectContentType(data)
	return data, fh.Filename, mimeType, int(fh.Size), nil
}
