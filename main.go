package main

import (
	"time"

	"lms/config"
	"lms/database"
	assignmentRoutes "lms/routers/assignmentRoutes"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	dashboardRoutes "lms/routers/dashboardRoutes"
	organizationRoutes "lms/routers/organizationRoutes"
	progressRoutes "lms/routers/progressRoutes"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": config.AppConfig.Environment,
		})
	})

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	assignmentRoutes.SetupAssignmentRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	organizationRoutes.SetupOrganizationRoutes(app)

	utils.InitializeSessionScheduler(database.Database.Db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
