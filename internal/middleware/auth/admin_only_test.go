package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Aben-G/E-commerce-main/internal/models"
	"github.com/Aben-G/E-commerce-main/internal/service/token"
)

func newGateContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAdminOnlyMissingToken(t *testing.T) {
	gate := &Gate{Tokens: &token.TokenService{JWTSecret: []byte("secret")}}
	c, _ := newGateContext(t, "")

	err := gate.AdminOnly(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "no token provided", he.Message)
}

func TestAdminOnlyInvalidToken(t *testing.T) {
	gate := &Gate{Tokens: &token.TokenService{JWTSecret: []byte("secret")}}
	c, _ := newGateContext(t, "Bearer garbage")

	err := gate.AdminOnly(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminOnlyTamperedToken(t *testing.T) {
	issuer := &token.TokenService{JWTSecret: []byte("other_secret")}
	raw, err := issuer.Issue(&models.User{ID: 1, Username: "mallory", IsAdmin: true})
	require.NoError(t, err)

	gate := &Gate{Tokens: &token.TokenService{JWTSecret: []byte("secret")}}
	c, _ := newGateContext(t, "Bearer "+raw)

	gateErr := gate.AdminOnly(okHandler)(c)
	he, ok := gateErr.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminOnlyNonAdmin(t *testing.T) {
	tokens := &token.TokenService{JWTSecret: []byte("secret")}
	raw, err := tokens.Issue(&models.User{ID: 2, Username: "bob", IsAdmin: false})
	require.NoError(t, err)

	gate := &Gate{Tokens: tokens}
	c, _ := newGateContext(t, "Bearer "+raw)

	gateErr := gate.AdminOnly(okHandler)(c)
	he, ok := gateErr.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusForbidden, he.Code)
}

func TestAdminOnlyAdmin(t *testing.T) {
	tokens := &token.TokenService{JWTSecret: []byte("secret")}
	raw, err := tokens.Issue(&models.User{ID: 3, Username: "alice", IsAdmin: true})
	require.NoError(t, err)

	gate := &Gate{Tokens: tokens}
	c, rec := newGateContext(t, "Bearer "+raw)

	require.NoError(t, gate.AdminOnly(okHandler)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	claims := CurrentUser(c)
	require.NotNil(t, claims)
	require.Equal(t, uint(3), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.True(t, claims.IsAdmin)
}
