package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Aben-G/E-commerce-main/internal/service/token"
)

const userContextKey = "user"

type Gate struct {
	Tokens *token.TokenService
}

// AdminOnly rejects requests without a valid Bearer token carrying the admin
// claim. Decoded claims end up in the echo context under "user".
func (g *Gate) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		claims, err := g.Tokens.Verify(rawToken)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		if !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "not authorized")
		}

		c.Set(userContextKey, claims)
		return next(c)
	}
}

func CurrentUser(c echo.Context) *token.Claims {
	if claims, ok := c.Get(userContextKey).(*token.Claims); ok {
		return claims
	}
	return nil
}
