// file: internals/features/school/sub_rooms/model/sub_room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   SubRoomModel — map ke tabel sub_rooms
   =======================================================
   Sub-ruangan = satu "slot denah" milik satu guru di satu
   ruangan fisik, untuk satu atau beberapa kelas. Denah kursi
   kanonis (seating_assignments) nempel ke sini, bukan ke room.
   Soft delete — riwayat denah tidak pernah dihapus fisik.
*/

type SubRoomModel struct {
	// PK
	SubRoomID uuid.UUID `json:"sub_room_id" gorm:"column:sub_room_id;primaryKey;type:uuid;default:gen_random_uuid()"`

	// Tenant / scope
	SubRoomSchoolID uuid.UUID `json:"sub_room_school_id" gorm:"column:sub_room_school_id;type:uuid;not null;index"`

	SubRoomRoomID    uuid.UUID `json:"sub_room_room_id" gorm:"column:sub_room_room_id;type:uuid;not null;index"`
	SubRoomTeacherID uuid.UUID `json:"sub_room_teacher_id" gorm:"column:sub_room_teacher_id;type:uuid;not null;index"`

	SubRoomName string `json:"sub_room_name" gorm:"column:sub_room_name;type:varchar(100);not null"`

	// Satu sub-ruangan bisa dipakai lebih dari satu kelas
	SubRoomClassIDs pq.StringArray `json:"sub_room_class_ids" gorm:"column:sub_room_class_ids;type:uuid[];not null"`

	SubRoomCreatedAt time.Time      `json:"sub_room_created_at" gorm:"column:sub_room_created_at;not null;autoCreateTime"`
	SubRoomUpdatedAt time.Time      `json:"sub_room_updated_at" gorm:"column:sub_room_updated_at;not null;autoUpdateTime"`
	SubRoomDeletedAt gorm.DeletedAt `json:"sub_room_deleted_at" gorm:"column:sub_room_deleted_at;index"`
}

func (SubRoomModel) TableName() string {
	return "sub_rooms"
}

// HasClass cek apakah kelas tertentu terdaftar di sub-ruangan ini.
func (m *SubRoomModel) HasClass(classID uuid.UUID) bool {
	want := classID.String()
	for _, id := range m.SubRoomClassIDs {
		if id == want {
			return true
		}
	}
	return false
}
