// file: internals/features/school/notifications/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notification := user.Group("/notifications")
	notification.Get("/", ctrl.ListMine) // 🟢 semua notifikasi milik user
	notification.Post("/:id/read", ctrl.MarkRead)
	notification.Delete("/:id", ctrl.Delete)
}
