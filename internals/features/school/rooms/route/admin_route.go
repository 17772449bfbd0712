// file: internals/features/school/rooms/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/rooms/controller"
	featuresMW "kelasku_backend/internals/middlewares/features"
)

// RoomAdminRoutes: CRUD ruangan fisik (staff sarana / admin sekolah).
func RoomAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewRoomController(db, v)

	room := admin.Group("/rooms", featuresMW.RequireCanCreateRoom())
	room.Get("/", ctrl.List)
	room.Post("/", ctrl.Create)
	room.Get("/:id", ctrl.GetByID)
	room.Get("/:id/layout", ctrl.GetLayout) // 🟢 denah ternomor
	room.Put("/:id", ctrl.Update)
	room.Delete("/:id", ctrl.Delete)
	room.Post("/:id/restore", ctrl.Restore)
}
