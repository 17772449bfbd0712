// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   StudentModel — map ke tabel students (READ-ONLY di modul ini)
   =======================================================
   Roster siswa dikelola modul lain; fitur seating hanya butuh
   lookup per kelas untuk autofill & daftar "belum duduk".
*/

type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;primaryKey;type:uuid;default:gen_random_uuid()"`

	StudentSchoolID uuid.UUID `json:"student_school_id" gorm:"column:student_school_id;type:uuid;not null;index"`
	StudentClassID  uuid.UUID `json:"student_class_id" gorm:"column:student_class_id;type:uuid;not null;index"`

	StudentFirstName string `json:"student_first_name" gorm:"column:student_first_name;type:varchar(100);not null"`
	StudentLastName  string `json:"student_last_name" gorm:"column:student_last_name;type:varchar(100);not null"`

	StudentCreatedAt time.Time `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
}

func (StudentModel) TableName() string {
	return "students"
}
