package quizRoutes

import (
	quizController "quizmaster/controllers/quiz"
	"quizmaster/middleware"
	quizValidator "quizmaster/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupQuizRoutes sets up the user-facing quiz routes
func SetupQuizRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := quizController.New(db)

	app.Get("/subjects", middleware.JWTMiddleware, ctrl.Subjects)
	app.Get("/quizzes/:subject_id", middleware.JWTMiddleware, ctrl.QuizzesBySubject)
	app.Get("/quiz/:quiz_id/questions", middleware.JWTMiddleware, ctrl.QuizQuestions)
	app.Post("/quiz/:quiz_id/submit", middleware.JWTMiddleware, quizValidator.Submit(), ctrl.Submit)
	app.Get("/quiz/:quiz_id", middleware.JWTMiddleware, ctrl.QuizDetail)
	app.Get("/results", middleware.JWTMiddleware, ctrl.Results)
}
