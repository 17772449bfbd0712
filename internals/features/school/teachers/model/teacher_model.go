// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   TeacherModel — map ke tabel teachers (READ-ONLY di modul ini)
   =======================================================
   Profil guru dikelola modul lain. Di sini hanya dipakai untuk
   resolve identitas: teacher_id (ruang identitas guru, dipakai
   kepemilikan sub-ruangan & review proposal) → teacher_user_id
   (akun login, ruang identitas notifikasi).
*/

type TeacherModel struct {
	TeacherID uuid.UUID `json:"teacher_id" gorm:"column:teacher_id;primaryKey;type:uuid;default:gen_random_uuid()"`

	TeacherSchoolID uuid.UUID `json:"teacher_school_id" gorm:"column:teacher_school_id;type:uuid;not null;index"`
	TeacherUserID   uuid.UUID `json:"teacher_user_id" gorm:"column:teacher_user_id;type:uuid;not null;index"`

	TeacherFirstName string `json:"teacher_first_name" gorm:"column:teacher_first_name;type:varchar(100);not null"`
	TeacherLastName  string `json:"teacher_last_name" gorm:"column:teacher_last_name;type:varchar(100);not null"`

	TeacherCreatedAt time.Time `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
