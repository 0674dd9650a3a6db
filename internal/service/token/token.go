package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Aben-G/E-commerce-main/internal/models"
)

// AccessTTL bounds how long an issued token stays valid. Admin-flag changes
// made after issuance take effect only once the old token expires.
const AccessTTL = 2 * time.Hour

type Claims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type TokenService struct {
	JWTSecret []byte
}

func (t *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.JWTSecret)
}

func (t *TokenService) Verify(rawToken string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(rawToken, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", tok.Header["alg"])
		}
		return t.JWTSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
