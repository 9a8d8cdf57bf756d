package main

import (
	"log"

	"quizmaster/cache"
	"quizmaster/config"
	"quizmaster/database"
	"quizmaster/jobs"
	adminRoutes "quizmaster/routers/adminRoutes"
	authRoutes "quizmaster/routers/authRoutes"
	quizRoutes "quizmaster/routers/quizRoutes"
	"quizmaster/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	cacheClient := cache.New(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisDB)
	if err := cacheClient.Ping(); err != nil {
		log.Printf("Warning: redis unreachable: %v", err)
	}

	mailer := utils.NewMailer(config.AppConfig)

	manager := jobs.NewManager(db, mailer, config.AppConfig)
	if err := manager.Start(); err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer manager.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, db)
	quizRoutes.SetupQuizRoutes(app, db)
	adminRoutes.SetupAdminRoutes(app, db, cacheClient, manager, config.AppConfig.ExportsDir)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
