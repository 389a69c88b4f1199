package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/meeting-room-booking/internal/middleware"
)

const (
	testAdminKey  = "test-admin-key"
	testJWTSecret = "test-signing-secret"
)

// adminToken exchanges the admin key for a token via the real endpoint.
func adminToken(t *testing.T, f *apiFixture) string {
	t.Helper()
	c, rec := f.request(http.MethodPost, "/api/auth/token", `{"key":"`+testAdminKey+`"}`)
	require.NoError(t, f.auth.Token(c))
	require.Equal(t, http.StatusOK, rec.Code)
	token, ok := decode(t, rec)["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

// signToken issues a token with an arbitrary role, bypassing the endpoint.
func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "someone",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// adminCreateRoom is RoomHandler.Create behind the same middleware chain the
// router installs for admin routes.
func adminCreateRoom(f *apiFixture) echo.HandlerFunc {
	return middleware.JWTAuth(testJWTSecret)(middleware.RequireRole("ADMIN")(f.rooms.Create))
}

func TestAuthTokenEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	c, rec := f.request(http.MethodPost, "/api/auth/token", `{"key":"wrong"}`)
	require.NoError(t, f.auth.Token(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := adminToken(t, f)

	// the issued token carries the ADMIN role
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "ADMIN", claims["role"])
}

const newRoomBody = `{"id":"201","name":"Workshop Room","baseHourlyRate":400,"capacity":8}`

func TestAdminCreateRoomRequiresToken(t *testing.T) {
	f := newAPIFixture(t)

	c, rec := f.request(http.MethodPost, "/api/rooms", newRoomBody)
	require.NoError(t, adminCreateRoom(f)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, ok := f.store.Room("201")
	assert.False(t, ok)
}

func TestAdminCreateRoomRejectsGarbageToken(t *testing.T) {
	f := newAPIFixture(t)

	c, rec := f.request(http.MethodPost, "/api/rooms", newRoomBody)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	require.NoError(t, adminCreateRoom(f)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminCreateRoomRejectsNonAdminRole(t *testing.T) {
	f := newAPIFixture(t)

	c, rec := f.request(http.MethodPost, "/api/rooms", newRoomBody)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "USER"))
	require.NoError(t, adminCreateRoom(f)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, ok := f.store.Room("201")
	assert.False(t, ok)
}

func TestAdminCreateRoomWithToken(t *testing.T) {
	f := newAPIFixture(t)
	token := adminToken(t, f)

	c, rec := f.request(http.MethodPost, "/api/rooms", newRoomBody)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	require.NoError(t, adminCreateRoom(f)(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	room, ok := f.store.Room("201")
	require.True(t, ok)
	assert.Equal(t, "Workshop Room", room.Name)
	assert.Equal(t, 400.0, room.BaseHourlyRate)

	// a second creation with the same id conflicts
	c, rec = f.request(http.MethodPost, "/api/rooms", newRoomBody)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	require.NoError(t, adminCreateRoom(f)(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
