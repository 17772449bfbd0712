// file: internals/features/school/schedules/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/schedules/controller"
	featuresMW "kelasku_backend/internals/middlewares/features"
)

// WeekCalendarAdminRoutes: kalender minggu A/B (admin sekolah).
func WeekCalendarAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewScheduleController(db, v)

	cal := admin.Group("/week-calendar", featuresMW.RequireCanCreateRoom())
	cal.Get("/", ctrl.ListWeeks)
	cal.Post("/", ctrl.UpsertWeek)
	cal.Delete("/:id", ctrl.DeleteWeek)
}
