package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Aben-G/E-commerce-main/internal/hash"
	"github.com/Aben-G/E-commerce-main/internal/models"
	"github.com/Aben-G/E-commerce-main/internal/mykafka"
	"github.com/Aben-G/E-commerce-main/internal/service/token"
)

func newUserHandler(t *testing.T) *UserHandler {
	return &UserHandler{
		DB:       InitTestDB(t),
		Producer: &mykafka.Producer{},
	}
}

func TestGetUsers(t *testing.T) {
	h := newUserHandler(t)

	require.NoError(t, h.DB.Create(&models.User{Username: "first", PasswordHash: "x"}).Error)
	require.NoError(t, h.DB.Create(&models.User{Username: "second", PasswordHash: "x", IsAdmin: true}).Error)

	rec, c := doJSONRequest(t, http.MethodGet, "/api/users", nil)
	require.NoError(t, h.GetUsers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	require.Equal(t, "second", users[0]["username"], "ordered by id desc")
	require.NotContains(t, rec.Body.String(), "password")
}

func TestCreateUser(t *testing.T) {
	h := newUserHandler(t)

	rec, c := doJSONRequest(t, http.MethodPost, "/api/users", map[string]any{
		"username": "new_user",
		"password": "password",
		"is_admin": true,
	})
	require.NoError(t, h.CreateUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var stored models.User
	require.NoError(t, h.DB.Where("username = ?", "new_user").First(&stored).Error)
	require.True(t, stored.IsAdmin)
	require.True(t, hash.CheckPassword(stored.PasswordHash, "password"))
}

func TestCreateUserValidationAndConflict(t *testing.T) {
	h := newUserHandler(t)

	_, c := doJSONRequest(t, http.MethodPost, "/api/users", map[string]any{"username": "no_password"})
	he := httpError(t, h.CreateUser(c))
	require.Equal(t, http.StatusBadRequest, he.Code)

	rec, c := doJSONRequest(t, http.MethodPost, "/api/users", map[string]any{
		"username": "taken", "password": "password",
	})
	require.NoError(t, h.CreateUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	_, c = doJSONRequest(t, http.MethodPost, "/api/users", map[string]any{
		"username": "taken", "password": "password",
	})
	he = httpError(t, h.CreateUser(c))
	require.Equal(t, http.StatusConflict, he.Code)
}

func TestUpdateUser(t *testing.T) {
	h := newUserHandler(t)

	passwordHash, _ := hash.HashPassword("old_password")
	user := models.User{Username: "old_name", PasswordHash: passwordHash}
	require.NoError(t, h.DB.Create(&user).Error)

	// without password: rename only, hash untouched
	rec, c := doJSONRequest(t, http.MethodPut, "/api/users/1", map[string]any{
		"username": "new_name",
		"is_admin": true,
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.User
	require.NoError(t, h.DB.First(&updated, user.ID).Error)
	require.Equal(t, "new_name", updated.Username)
	require.True(t, updated.IsAdmin)
	require.True(t, hash.CheckPassword(updated.PasswordHash, "old_password"))

	// with password: rotated
	_, c = doJSONRequest(t, http.MethodPut, "/api/users/1", map[string]any{
		"username": "new_name",
		"password": "new_password",
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateUser(c))

	require.NoError(t, h.DB.First(&updated, user.ID).Error)
	require.True(t, hash.CheckPassword(updated.PasswordHash, "new_password"))
	require.False(t, hash.CheckPassword(updated.PasswordHash, "old_password"))
}

func TestUpdateUserErrors(t *testing.T) {
	h := newUserHandler(t)

	_, c := doJSONRequest(t, http.MethodPut, "/api/users/1", map[string]any{"is_admin": true})
	c.SetParamNames("id")
	c.SetParamValues("1")
	he := httpError(t, h.UpdateUser(c))
	require.Equal(t, http.StatusBadRequest, he.Code, "username required")

	_, c = doJSONRequest(t, http.MethodPut, "/api/users/99", map[string]any{"username": "ghost"})
	c.SetParamNames("id")
	c.SetParamValues("99")
	he = httpError(t, h.UpdateUser(c))
	require.Equal(t, http.StatusNotFound, he.Code)

	_, c = doJSONRequest(t, http.MethodPut, "/api/users/abc", map[string]any{"username": "x"})
	c.SetParamNames("id")
	c.SetParamValues("abc")
	he = httpError(t, h.UpdateUser(c))
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeleteUser(t *testing.T) {
	h := newUserHandler(t)

	require.NoError(t, h.DB.Create(&models.User{Username: "victim", PasswordHash: "x"}).Error)

	rec, c := doJSONRequest(t, http.MethodDelete, "/api/users/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.DeleteUser(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User deleted successfully")

	var count int64
	require.NoError(t, h.DB.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestDeleteUserSelf(t *testing.T) {
	h := newUserHandler(t)

	admin := models.User{Username: "acting_admin", PasswordHash: "x", IsAdmin: true}
	require.NoError(t, h.DB.Create(&admin).Error)

	_, c := doJSONRequest(t, http.MethodDelete, "/api/users/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set("user", &token.Claims{
		UserID:           admin.ID,
		Username:         admin.Username,
		IsAdmin:          true,
		RegisteredClaims: jwt.RegisteredClaims{},
	})

	he := httpError(t, h.DeleteUser(c))
	require.Equal(t, http.StatusBadRequest, he.Code)

	// the acting account stays intact
	var count int64
	require.NoError(t, h.DB.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestDeleteUserNotFound(t *testing.T) {
	h := newUserHandler(t)

	_, c := doJSONRequest(t, http.MethodDelete, "/api/users/42", nil)
	c.SetParamNames("id")
	c.SetParamValues("42")
	he := httpError(t, h.DeleteUser(c))
	require.Equal(t, http.StatusNotFound, he.Code)
}
