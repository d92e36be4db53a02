package progressRoutes

import (
	progressController "lms/controllers/progress"
	"lms/middleware"
	progressValidator "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/api/progress", middleware.Protected)

	progressGroup.Post("/", progressValidator.UpdateProgress(), progressController.UpdateProgress)
	progressGroup.Get("/", progressController.GetProgress)
}
