package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

const RoleAdmin = "admin"

// AdminGuard accepts requests bearing an HS256 token signed with secret whose `role` claim is
// admin. The parsed token is stored in c.Locals("user").
func AdminGuard(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    []byte(secret),
		SigningMethod: "HS256",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired token"})
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			if Role(c) != RoleAdmin {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin role required"})
			}
			return c.Next()
		},
	})
}

// Role reads the role claim of the token stored by AdminGuard.
func Role(c *fiber.Ctx) string {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}
