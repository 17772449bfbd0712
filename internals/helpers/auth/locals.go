// file: internals/helpers/auth/locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kelasku_backend/internals/constants"
)

/* ============================================
   Locals Keys (middleware auth yang mengisi)
   ============================================ */

const (
	LocUserID    = "user_id"   // string UUID
	LocSchoolID  = "school_id" // string UUID (tenant aktif)
	LocTeacherID = "teacher_id"
	LocStudentID = "student_id"
	LocRoles     = "roles"        // []string
	LocCaps      = "capabilities" // constants.Capabilities
)

/* ============================================
   Getter helpers
   ============================================ */

func getUUIDLocal(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, false
	}
	switch t := v.(type) {
	case uuid.UUID:
		return t, t != uuid.Nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(t))
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}
	return uuid.Nil, false
}

// GetUserID mengambil user_id dari locals (diisi middleware AuthJWT).
func GetUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	return getUUIDLocal(c, LocUserID)
}

// GetSchoolID mengambil tenant (school) aktif dari token.
func GetSchoolID(c *fiber.Ctx) (uuid.UUID, bool) {
	return getUUIDLocal(c, LocSchoolID)
}

func GetTeacherID(c *fiber.Ctx) (uuid.UUID, bool) {
	return getUUIDLocal(c, LocTeacherID)
}

func GetStudentID(c *fiber.Ctx) (uuid.UUID, bool) {
	return getUUIDLocal(c, LocStudentID)
}

func GetRoles(c *fiber.Ctx) []string {
	v := c.Locals(LocRoles)
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	}
	return nil
}

// GetCapabilities membaca capability set yang sudah di-resolve sekali
// oleh middleware auth. Fallback: resolve ulang dari roles.
func GetCapabilities(c *fiber.Ctx) constants.Capabilities {
	if v := c.Locals(LocCaps); v != nil {
		if caps, ok := v.(constants.Capabilities); ok {
			return caps
		}
	}
	return constants.CapabilitiesForRoles(GetRoles(c))
}
