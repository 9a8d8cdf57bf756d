package authValidator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// RegisterPayload is the validated registration body passed to the controller.
type RegisterPayload struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FullName      string `json:"fullname"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	Country       string `json:"country"`
	Qualification string `json:"qualification"`

	ParsedDOB time.Time `json:"-"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterPayload)
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
		}

		required := map[string]string{
			"email":         reqData.Email,
			"password":      reqData.Password,
			"fullname":      reqData.FullName,
			"dob":           reqData.DOB,
			"gender":        reqData.Gender,
			"country":       reqData.Country,
			"qualification": reqData.Qualification,
		}
		var missing []string
		for _, field := range []string{"email", "password", "fullname", "dob", "gender", "country", "qualification"} {
			if strings.TrimSpace(required[field]) == "" {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Missing fields: %s", strings.Join(missing, ", ")),
			})
		}

		if !isValidEmail(reqData.Email) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email format"})
		}

		dob, err := time.Parse("2006-01-02", reqData.DOB)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date format. Use YYYY-MM-DD"})
		}
		reqData.ParsedDOB = dob

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// LoginPayload is the validated login body.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginPayload)
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and password required"})
		}

		if reqData.Email == "" || reqData.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and password required"})
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
