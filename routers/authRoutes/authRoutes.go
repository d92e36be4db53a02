package authRoutes

import (
	authController "lms/controllers/auth"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/api/login", authController.Login)
	app.Get("/api/callback", authController.Callback)
	app.Get("/api/logout", authController.Logout)

	app.Get("/api/auth/user", middleware.Protected, authController.GetAuthUser)
}
