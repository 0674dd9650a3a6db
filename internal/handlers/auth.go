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
	"github.com/Aben-G/E-commerce-main/internal/models"
	"github.com/Aben-G/E-commerce-main/internal/mykafka"
	"github.com/Aben-G/E-commerce-main/internal/service/token"
)

type AuthHandler struct {
	DB       *gorm.DB
	Tokens   *token.TokenService
	Producer *mykafka.Producer
}

func (h *AuthHandler) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

// Register creates an admin account. The admin panel is the only consumer of
// this endpoint, so new registrations get the admin flag, same as users
// created through the panel with is_admin set.
func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "username already exists")
		}
		return dbError(err)
	}

	h.publish(c, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusCreated, user)
}

// Login authenticates an admin and hands back a signed access token. Unknown
// users and non-admins get the same answer so usernames stay unguessable.
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
	}

	var user models.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials or not admin")
		}
		return dbError(err)
	}
	if !user.IsAdmin {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials or not admin")
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	accessToken, err := h.Tokens.Issue(&user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "server error")
	}

	h.publish(c, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_logged_in",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"token": accessToken,
	})
}
