package quizValidator

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// Submit validates the submission body: a mapping of question id (string) to
// the selected 1-based option index. Non-integer option values are rejected.
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(c.Body()) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
		}

		answers := make(map[string]int)
		if err := json.Unmarshal(c.Body(), &answers); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid data format",
				"error":   err.Error(),
			})
		}

		c.Locals("validatedAnswers", answers)
		return c.Next()
	}
}
