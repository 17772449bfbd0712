package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "kelasku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan penting:
// recovery paling luar supaya panic di middleware lain ikut tertangkap)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(loggerMW.LoggerMiddleware())
}
