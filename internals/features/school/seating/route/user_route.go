// file: internals/features/school/seating/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/seating/controller"
)

// SeatingUserRoutes: denah kursi satu sub-ruangan. Otorisasi pemilik
// (guru sub-ruangan, atau admin) dicek di controller, bukan di sini.
func SeatingUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewSeatingController(db, v)

	seat := user.Group("/sub-rooms/:id/seating")
	seat.Get("/", ctrl.GetGrid)
	seat.Put("/", ctrl.SaveBulk) // "Save" dari UI: replace seluruh denah
	seat.Post("/place", ctrl.Place)
	seat.Post("/remove", ctrl.Remove)
	seat.Post("/clear", ctrl.Clear)
	seat.Post("/autofill", ctrl.AutoFill)
	seat.Post("/reset", ctrl.Reset)
}
