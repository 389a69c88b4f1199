package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthHandler exchanges the shared admin key for a short-lived HS256 token.
// There are no user accounts in this system; the token only gates the admin
// room-creation route.
type AuthHandler struct {
	adminKey string
	secret   string
	ttlMin   int
}

func NewAuthHandler(adminKey, secret string, ttlMin int) *AuthHandler {
	return &AuthHandler{adminKey: adminKey, secret: secret, ttlMin: ttlMin}
}

// Token handles POST /api/auth/token. The body carries the admin key; a
// matching key yields a Bearer token with the ADMIN role.
func (h *AuthHandler) Token(c echo.Context) error {
	var body struct {
		Key string `json:"key"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if subtle.ConstantTimeCompare([]byte(body.Key), []byte(h.adminKey)) != 1 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid admin key"})
	}

	exp := time.Now().UTC().Add(time.Duration(h.ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "ADMIN",
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": signed,
		"expires_at":   exp.Format(time.RFC3339),
	})
}
