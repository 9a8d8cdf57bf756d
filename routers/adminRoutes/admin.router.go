package adminRoutes

import (
	"quizmaster/cache"
	adminController "quizmaster/controllers/admin"
	"quizmaster/jobs"
	"quizmaster/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAdminRoutes sets up the admin-gated management and reporting routes.
func SetupAdminRoutes(app *fiber.App, db *gorm.DB, cacheClient *cache.Client, manager *jobs.Manager, exportsDir string) {
	ctrl := adminController.New(db, cacheClient, manager, exportsDir)

	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(db, "admin"))

	adminGroup.Get("/subject", ctrl.ListSubjects)
	adminGroup.Post("/subject", ctrl.CreateSubject)
	adminGroup.Put("/subject", ctrl.UpdateSubject)
	adminGroup.Delete("/subject", ctrl.DeleteSubject)

	adminGroup.Get("/chapter", ctrl.ListChapters)
	adminGroup.Post("/chapter", ctrl.CreateChapter)
	adminGroup.Put("/chapter", ctrl.UpdateChapter)
	adminGroup.Delete("/chapter", ctrl.DeleteChapter)

	adminGroup.Get("/quiz", ctrl.ListQuizzes)
	adminGroup.Post("/quiz", ctrl.CreateQuiz)
	adminGroup.Put("/quiz", ctrl.UpdateQuiz)
	adminGroup.Delete("/quiz", ctrl.DeleteQuiz)

	adminGroup.Get("/question", ctrl.ListQuestions)
	adminGroup.Post("/question", ctrl.CreateQuestion)
	adminGroup.Put("/question", ctrl.UpdateQuestion)
	adminGroup.Delete("/question", ctrl.DeleteQuestion)

	adminGroup.Get("/summary", ctrl.Summary)
	adminGroup.Get("/chart-data", ctrl.ChartData)
	adminGroup.Get("/users", ctrl.ListUsers)
	adminGroup.Get("/search", ctrl.Search)

	adminGroup.Post("/export-users-csv", ctrl.ExportUsersCSV)

	// Polled by task handle; left open like the export artifact itself.
	app.Get("/download/:task_id", ctrl.Download)
}
