package dashboardRoutes

import (
	dashboardController "lms/controllers/dashboard"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/api/dashboard/stats", middleware.Protected, dashboardController.GetStats)
}
