package authController

import (
	"fmt"
	"log"
	"strings"
	"time"

	"quizmaster/config"
	"quizmaster/middleware"
	"quizmaster/models"
	authValidator "quizmaster/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

func (ctrl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*authValidator.RegisterPayload)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}

	// Check if email already exists
	if err := ctrl.DB.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email already exists"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Registration failed"})
	}

	dob := reqData.ParsedDOB
	newUser := models.User{
		Email:          reqData.Email,
		Password:       string(hashedPassword),
		FsUniquifier:   fmt.Sprintf("%d", time.Now().UnixNano()),
		FullName:       reqData.FullName,
		NameSearchTerm: strings.ToLower(reqData.FullName),
		DOB:            &dob,
		Gender:         reqData.Gender,
		Country:        reqData.Country,
		Qualification:  reqData.Qualification,
		Active:         true,
	}

	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Registration failed", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginPayload)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and password required"})
	}

	var user models.User
	if err := ctrl.DB.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Login failed"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

func (ctrl *Controller) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var user models.User
	if err := ctrl.DB.Preload("Roles").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":       user.ID,
		"email":    user.Email,
		"fullname": user.FullName,
		"roles":    roles,
	})
}
