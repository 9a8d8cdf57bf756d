package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that checks if the user holds the named role.
// It runs after JWTMiddleware and replaces per-route role checks.
func RequireRole(db *gorm.DB, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: User ID not found",
			})
		}

		var count int64
		err := db.Table("user_roles").
			Joins("JOIN roles ON roles.id = user_roles.role_id").
			Where("user_roles.user_id = ? AND roles.name = ?", userID, role).
			Count(&count).Error

		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error while checking permissions",
			})
		}
		if count == 0 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}

		return c.Next()
	}
}
