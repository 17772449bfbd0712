// file: internals/features/school/sub_rooms/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/sub_rooms/controller"
	featuresMW "kelasku_backend/internals/middlewares/features"
)

// SubRoomUserRoutes: CRUD sub-ruangan + slot jadwal mingguan (guru).
func SubRoomUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewSubRoomController(db, v)

	sr := user.Group("/sub-rooms")
	sr.Get("/", ctrl.List)
	sr.Get("/:id", ctrl.GetByID)

	// mutasi butuh capability pembuat sub-ruangan
	mut := user.Group("/sub-rooms", featuresMW.RequireCanCreateSubRoom())
	mut.Post("/", ctrl.Create)
	mut.Put("/:id", ctrl.Update)
	mut.Delete("/:id", ctrl.Delete)
	mut.Post("/:id/restore", ctrl.Restore)
	mut.Post("/:id/schedule-slots", ctrl.AddScheduleSlot)
	mut.Delete("/:id/schedule-slots/:slot_id", ctrl.RemoveScheduleSlot)
}
