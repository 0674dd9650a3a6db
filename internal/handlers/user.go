package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Aben-G/E-commerce-main/internal/hash"
	"github.com/Aben-G/E-commerce-main/internal/logging"
	"github.com/Aben-G/E-commerce-main/internal/middleware/auth"
	"github.com/Aben-G/E-commerce-main/internal/models"
	"github.com/Aben-G/E-commerce-main/internal/mykafka"
)

type UserHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

func (h *UserHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(event["userID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	var users []models.User
	if err := h.DB.Order("id DESC").Find(&users).Error; err != nil {
		return dbError(err)
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		IsAdmin:      req.IsAdmin,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "username already exists")
		}
		return dbError(err)
	}

	h.publish(c, map[string]any{
		"type":     "user_created",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusCreated, user)
}

// UpdateUser replaces username and admin flag. The password stays untouched
// unless a new one is sent.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return dbError(err)
	}

	user.Username = req.Username
	user.IsAdmin = req.IsAdmin
	if req.Password != "" {
		passwordHash, err := hash.HashPassword(req.Password)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
		user.PasswordHash = passwordHash
	}

	if err := h.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "username already exists")
		}
		return dbError(err)
	}

	h.publish(c, map[string]any{
		"type":     "user_updated",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if claims := auth.CurrentUser(c); claims != nil && claims.UserID == id {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot delete your own account")
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return dbError(err)
	}

	if err := h.DB.Delete(&models.User{}, id).Error; err != nil {
		return dbError(err)
	}

	h.publish(c, map[string]any{
		"type":     "user_deleted",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "User deleted successfully",
		"user":    user,
	})
}
