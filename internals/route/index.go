// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifRoute "kelasku_backend/internals/features/school/notifications/route"
	proposalRoute "kelasku_backend/internals/features/school/proposals/route"
	roomRoute "kelasku_backend/internals/features/school/rooms/route"
	scheduleRoute "kelasku_backend/internals/features/school/schedules/route"
	seatingRoute "kelasku_backend/internals/features/school/seating/route"
	subRoomRoute "kelasku_backend/internals/features/school/sub_rooms/route"
	authMW "kelasku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()
	validate := validator.New()

	BaseRoutes(app, db)

	jwt := authMW.AuthJWT(authMW.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	// ===================== GROUPS =====================

	// PRIVATE (guru / delegate) — capability dicek per feature
	log.Println("[INFO] Setting up PRIVATE group (/api/u)...")
	user := app.Group("/api/u", jwt)

	// ADMIN (staff sarana / admin sekolah)
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a", jwt)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Room routes...")
	roomRoute.RoomAdminRoutes(admin, db, validate)

	log.Println("[INFO] Mounting WeekCalendar routes...")
	scheduleRoute.WeekCalendarAdminRoutes(admin, db, validate)
	scheduleRoute.ScheduleUserRoutes(user, db, validate)

	log.Println("[INFO] Mounting SubRoom routes...")
	subRoomRoute.SubRoomUserRoutes(user, db, validate)

	log.Println("[INFO] Mounting Seating routes...")
	seatingRoute.SeatingUserRoutes(user, db, validate)

	log.Println("[INFO] Mounting Proposal routes...")
	proposalRoute.ProposalUserRoutes(user, db, validate)

	log.Println("[INFO] Mounting Notification routes...")
	notifRoute.NotificationUserRoutes(user, db)
}
