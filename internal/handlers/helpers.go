package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// dbError maps storage failures onto the API error taxonomy: unique
// violations become 409, missing rows 404, everything else a generic 500.
func dbError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return echo.NewHTTPError(http.StatusConflict, "already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid ID")
	}
	return uint(id), nil
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}
