// file: internals/features/school/sub_rooms/model/seating_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   SeatingAssignmentModel — map ke tabel seating_assignments
   =======================================================
   Satu baris = satu kursi terisi di satu sub-ruangan.
   Unik per sub_room di DUA kolom: seat_position DAN student_id
   (kursi ≤ 1 siswa, siswa ≤ 1 kursi).
   Save selalu bulk replace (delete-all lalu insert-all) — tidak
   pernah update per baris.
*/

type SeatingAssignmentModel struct {
	SeatingAssignmentID uuid.UUID `json:"seating_assignment_id" gorm:"column:seating_assignment_id;primaryKey;type:uuid;default:gen_random_uuid()"`

	SeatingAssignmentSubRoomID uuid.UUID `json:"seating_assignment_sub_room_id" gorm:"column:seating_assignment_sub_room_id;type:uuid;not null;uniqueIndex:uq_seating_sub_room_seat;uniqueIndex:uq_seating_sub_room_student"`

	SeatingAssignmentSeatPosition int       `json:"seating_assignment_seat_position" gorm:"column:seating_assignment_seat_position;type:int;not null;uniqueIndex:uq_seating_sub_room_seat"`
	SeatingAssignmentStudentID    uuid.UUID `json:"seating_assignment_student_id" gorm:"column:seating_assignment_student_id;type:uuid;not null;uniqueIndex:uq_seating_sub_room_student"`

	SeatingAssignmentCreatedAt time.Time `json:"seating_assignment_created_at" gorm:"column:seating_assignment_created_at;not null;autoCreateTime"`
}

func (SeatingAssignmentModel) TableName() string {
	return "seating_assignments"
}
