package constants

import "fmt"

// =========================
// ✅ Role Constants
// =========================
const (
	RoleUser     = "user"
	RoleStudent  = "student"
	RoleDelegate = "delegate" // perwakilan kelas (boleh mengajukan usulan denah)
	RoleTeacher  = "teacher"
	RoleAdmin    = "admin" // staf sarana-prasarana sekolah
	RoleOwner    = "owner"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess  = "❌ Hanya teacher, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyDelegatesCanAccess = "❌ Hanya delegate yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess    = "❌ Hanya owner yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorDelegate(feature string) string {
	return fmt.Sprintf(ErrOnlyDelegatesCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleStudent,
		RoleDelegate,
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	ProposerRoles = []string{
		RoleDelegate,
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}
)

// ==========================
// ✅ Capability Set
// ==========================
// Role di-resolve SEKALI di middleware auth menjadi capability set,
// bukan dicek ulang tersebar di controller.

type Capabilities struct {
	CanCreateRoom    bool `json:"can_create_room"`
	CanCreateSubRoom bool `json:"can_create_sub_room"`
	CanReview        bool `json:"can_review"`
	CanPropose       bool `json:"can_propose"`
}

func CapabilitiesForRoles(roles []string) Capabilities {
	var cap Capabilities
	for _, r := range roles {
		switch r {
		case RoleAdmin, RoleOwner:
			cap.CanCreateRoom = true
			cap.CanCreateSubRoom = true
			cap.CanReview = true
			cap.CanPropose = true
		case RoleTeacher:
			cap.CanCreateSubRoom = true
			cap.CanReview = true
			cap.CanPropose = true
		case RoleDelegate:
			cap.CanPropose = true
		}
	}
	return cap
}
