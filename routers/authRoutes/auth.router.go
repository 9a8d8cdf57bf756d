package authRoutes

import (
	authController "quizmaster/controllers/auth"
	"quizmaster/middleware"
	authValidator "quizmaster/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.New(db)

	app.Post("/register", authValidator.Register(), ctrl.Register)
	app.Post("/login_main", authValidator.Login(), ctrl.Login)
	app.Get("/me", middleware.JWTMiddleware, ctrl.Me)
}
