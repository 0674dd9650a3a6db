package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const MaxUploadSize = 5 << 20 // 5MB

type UploadHandler struct {
	Dir string
}

// Upload stores a multipart image under a generated name: millisecond
// timestamp plus a uuid suffix, so concurrent uploads never collide.
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}
	if file.Size > MaxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds 5MB limit")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	defer src.Close()

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(h.Dir, name))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"url": "/uploads/" + name,
	})
}
