// file: internals/features/school/schedules/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/schedules/controller"
)

// ScheduleUserRoutes: resolusi slot aktif satu sub-ruangan.
func ScheduleUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewScheduleController(db, v)

	// GET /sub-rooms/:id/active-slot?at=RFC3339 (default: sekarang)
	user.Get("/sub-rooms/:id/active-slot", ctrl.ActiveSlot)
}
