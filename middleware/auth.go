package middleware

import (
	"errors"
	"os"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func SecretKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("secret")
}

var errNotLoggedIn = errors.New("not logged in")

// userFromCookie resolves the jwt cookie to a User row.
func userFromCookie(c *fiber.Ctx) (Models.User, error) {
	var user Models.User

	cookie := c.Cookies("jwt")
	if cookie == "" {
		return user, errNotLoggedIn
	}

	token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return SecretKey(), nil
	})
	if err != nil {
		return user, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return user, errors.New("invalid token claims")
	}

	if err := Models.DB.Where("id = ?", claims.Issuer).First(&user).Error; err != nil {
		return user, errors.New("user not found")
	}
	return user, nil
}

// Verify gates a route on a minimum permission level. The logged-in
// user is stored in c.Locals("user") for handlers downstream.
func Verify(requiredPermission int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := userFromCookie(c)
		if err != nil {
			status := fiber.StatusUnauthorized
			if errors.Is(err, errNotLoggedIn) {
				return c.Status(status).JSON(fiber.Map{"message": "Not Logged In."})
			}
			return c.Status(status).JSON(fiber.Map{"message": err.Error()})
		}

		c.Locals("user", user)

		if user.Permission >= requiredPermission && user.Permission != 0 {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Insufficient permissions to access this resource",
		})
	}
}
