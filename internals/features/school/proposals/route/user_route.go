// file: internals/features/school/proposals/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "kelasku_backend/internals/features/school/notifications/service"
	"kelasku_backend/internals/features/school/proposals/controller"
	"kelasku_backend/internals/features/school/proposals/service"
	teacherService "kelasku_backend/internals/features/school/teachers/service"
	"kelasku_backend/internals/middlewares"
	featuresMW "kelasku_backend/internals/middlewares/features"
)

// ProposalUserRoutes: lifecycle usulan denah.
// Delegate (CanPropose) membuat/mengubah/submit; guru (CanReview)
// approve/reject/return. Aksi workflow dibatasi rate limiter khusus
// supaya spam submit tidak membanjiri notifikasi guru.
func ProposalUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	svc := service.NewProposalService(db, notifService.NewDBNotifier(db), teacherService.NewDirectory(db))
	ctrl := controller.NewProposalController(db, v, svc)

	prop := user.Group("/proposals")
	prop.Get("/", ctrl.List)
	prop.Get("/:id", ctrl.GetByID)

	author := user.Group("/proposals", featuresMW.RequireCanPropose())
	author.Post("/", ctrl.Create)
	author.Put("/:id", ctrl.Update)
	author.Delete("/:id", ctrl.Delete)
	author.Post("/:id/submit", middlewares.ProposalActionRateLimiter(), ctrl.Submit)

	review := user.Group("/proposals", featuresMW.RequireCanReview(), middlewares.ProposalActionRateLimiter())
	review.Post("/:id/approve", ctrl.Approve)
	review.Post("/:id/reject", ctrl.Reject)
	review.Post("/:id/return", ctrl.Return)
}
