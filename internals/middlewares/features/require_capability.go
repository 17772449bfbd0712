// file: internals/middlewares/features/require_capability.go
package middleware

import (
	"github.com/gofiber/fiber/v2"

	"kelasku_backend/internals/constants"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

/* ==========================
   Capability guard
   ==========================
   Gantikan pengecekan role ad-hoc di controller: role sudah
   di-resolve jadi capability set oleh AuthJWT, guard tinggal
   cek satu flag.
*/

func RequireCapability(pick func(constants.Capabilities) bool, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caps := helperAuth.GetCapabilities(c)
		if !pick(caps) {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}

func RequireCanCreateRoom() fiber.Handler {
	return RequireCapability(
		func(cap constants.Capabilities) bool { return cap.CanCreateRoom },
		constants.RoleErrorAdmin("kelola ruangan"),
	)
}

func RequireCanCreateSubRoom() fiber.Handler {
	return RequireCapability(
		func(cap constants.Capabilities) bool { return cap.CanCreateSubRoom },
		constants.RoleErrorTeacher("kelola sub-ruangan"),
	)
}

func RequireCanReview() fiber.Handler {
	return RequireCapability(
		func(cap constants.Capabilities) bool { return cap.CanReview },
		constants.RoleErrorTeacher("review proposal"),
	)
}

func RequireCanPropose() fiber.Handler {
	return RequireCapability(
		func(cap constants.Capabilities) bool { return cap.CanPropose },
		constants.RoleErrorDelegate("pengajuan proposal"),
	)
}
