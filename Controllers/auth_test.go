package Controllers

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"Garage/Models"
	"Garage/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestCookie(t *testing.T, userID uint) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.Itoa(int(userID)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.SecretKey())
	require.NoError(t, err)
	return token
}

func TestUpdateTokenAssociatesLoggedInUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := setupTestApp(t)
	app.Post("/api/UpdateToken", middleware.Verify(1), UpdateToken)

	user := Models.User{Name: "Omar", Email: "omar@garage.test", Password: []byte("x"), Permission: 1}
	require.NoError(t, Models.DB.Create(&user).Error)

	// Without a session the token registry is unreachable.
	resp, err := app.Test(jsonRequest(t, "POST", "/api/UpdateToken", fiber.Map{"token": "device-1"}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := jsonRequest(t, "POST", "/api/UpdateToken", fiber.Map{"token": "device-1"})
	req.AddCookie(&http.Cookie{Name: "jwt", Value: signTestCookie(t, user.ID)})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var registered Models.FCMToken
	require.NoError(t, Models.DB.Where("token = ?", "device-1").First(&registered).Error)
	assert.Equal(t, user.ID, registered.UserID)
}
