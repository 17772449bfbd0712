// file: internals/features/school/proposals/model/proposal_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kelasku_backend/internals/features/school/proposals/workflow"
	"kelasku_backend/internals/helpers/errs"
)

/* =======================================================
   ProposalModel — map ke tabel sub_room_proposals
   =======================================================
   Draft denah yang diajukan delegate ke guru target. Target bisa
   sub-ruangan baru (sub_room_id NULL, pakai room/class/nama di bawah)
   atau sub-ruangan yang sudah ada (assignments-nya dibawa untuk
   di-edit ulang).

   Dihapus HARD, bukan soft: lifecycle-nya hanya mengizinkan hapus
   saat draft, oleh author sendiri.
*/

// ProposalSeat = satu entri denah di dalam draft. seat_id sintetis
// (identitas baris di editor), seat_number final setelah approve.
type ProposalSeat struct {
	SeatID     string    `json:"seat_id"`
	StudentID  uuid.UUID `json:"student_id"`
	SeatNumber int       `json:"seat_number"`
}

type ProposalModel struct {
	// PK
	ProposalID uuid.UUID `json:"proposal_id" gorm:"column:proposal_id;primaryKey;type:uuid;default:gen_random_uuid()"`

	// Tenant / scope
	ProposalSchoolID uuid.UUID `json:"proposal_school_id" gorm:"column:proposal_school_id;type:uuid;not null;index"`

	// Target: sub-ruangan lama (nullable) ATAU kombinasi room+class+nama
	ProposalSubRoomID *uuid.UUID `json:"proposal_sub_room_id,omitempty" gorm:"column:proposal_sub_room_id;type:uuid;index"`
	ProposalRoomID    uuid.UUID  `json:"proposal_room_id" gorm:"column:proposal_room_id;type:uuid;not null"`
	ProposalClassID   uuid.UUID  `json:"proposal_class_id" gorm:"column:proposal_class_id;type:uuid;not null"`
	ProposalName      string     `json:"proposal_name" gorm:"column:proposal_name;type:varchar(100);not null"`

	// Aktor
	ProposalTeacherID  uuid.UUID `json:"proposal_teacher_id" gorm:"column:proposal_teacher_id;type:uuid;not null;index"`  // guru target review
	ProposalProposedBy uuid.UUID `json:"proposal_proposed_by" gorm:"column:proposal_proposed_by;type:uuid;not null;index"` // delegate pembuat

	// Status workflow
	ProposalStatus      workflow.Status `json:"proposal_status" gorm:"column:proposal_status;type:varchar(10);not null;default:'draft'"`
	ProposalIsSubmitted bool            `json:"proposal_is_submitted" gorm:"column:proposal_is_submitted;not null;default:false"`

	// Isi denah: [{"seat_id":"...","student_id":"...","seat_number":16}]
	ProposalSeatAssignments datatypes.JSON `json:"proposal_seat_assignments" gorm:"column:proposal_seat_assignments;type:jsonb;not null;default:'[]'"`

	// Hasil review
	ProposalTeacherComments string     `json:"proposal_teacher_comments" gorm:"column:proposal_teacher_comments;type:text"` // terisi saat returned
	ProposalRejectionReason string     `json:"proposal_rejection_reason" gorm:"column:proposal_rejection_reason;type:text"` // terisi saat rejected
	ProposalReviewedBy      *uuid.UUID `json:"proposal_reviewed_by,omitempty" gorm:"column:proposal_reviewed_by;type:uuid"`
	ProposalReviewedAt      *time.Time `json:"proposal_reviewed_at,omitempty" gorm:"column:proposal_reviewed_at"`

	ProposalCreatedAt time.Time `json:"proposal_created_at" gorm:"column:proposal_created_at;not null;autoCreateTime"`
	ProposalUpdatedAt time.Time `json:"proposal_updated_at" gorm:"column:proposal_updated_at;not null;autoUpdateTime"`
}

func (ProposalModel) TableName() string {
	return "sub_room_proposals"
}

/* =======================================================
   Helpers
   ======================================================= */

// Snapshot memotret field yang dibutuhkan guard workflow.
func (m *ProposalModel) Snapshot() workflow.Snapshot {
	return workflow.Snapshot{
		Status:      m.ProposalStatus,
		IsSubmitted: m.ProposalIsSubmitted,
		AuthorID:    m.ProposalProposedBy,
		TeacherID:   m.ProposalTeacherID,
	}
}

// SeatAssignments decode kolom jsonb jadi slice terketik.
func (m *ProposalModel) SeatAssignments() ([]ProposalSeat, error) {
	if len(m.ProposalSeatAssignments) == 0 {
		return nil, nil
	}
	var seats []ProposalSeat
	if err := json.Unmarshal(m.ProposalSeatAssignments, &seats); err != nil {
		return nil, errs.NewInvalidOperation("seat_assignments tidak bisa dibaca: %v", err)
	}
	return seats, nil
}

func MarshalSeatAssignments(seats []ProposalSeat) (datatypes.JSON, error) {
	if seats == nil {
		seats = []ProposalSeat{}
	}
	b, err := json.Marshal(seats)
	if err != nil {
		return nil, errs.NewInvalidOperation("seat_assignments tidak bisa di-serialize: %v", err)
	}
	return datatypes.JSON(b), nil
}
