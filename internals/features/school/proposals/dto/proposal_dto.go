// file: internals/features/school/proposals/dto/proposal_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/school/proposals/model"
	"kelasku_backend/internals/features/school/proposals/workflow"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type ProposalSeatInput struct {
	SeatID     string    `json:"seat_id"`
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	SeatNumber int       `json:"seat_number" validate:"required,min=1"`
}

// CreateProposalRequest: target sub-ruangan lama (proposal_sub_room_id)
// ATAU sub-ruangan baru (room + teacher + nama). Class selalu wajib.
type CreateProposalRequest struct {
	ProposalSubRoomID *uuid.UUID          `json:"proposal_sub_room_id,omitempty"`
	ProposalRoomID    *uuid.UUID          `json:"proposal_room_id,omitempty"`
	ProposalClassID   uuid.UUID           `json:"proposal_class_id" validate:"required"`
	ProposalTeacherID *uuid.UUID          `json:"proposal_teacher_id,omitempty"`
	ProposalName      string              `json:"proposal_name" validate:"omitempty,min=2,max=100"`
	SeatAssignments   []ProposalSeatInput `json:"seat_assignments" validate:"omitempty,dive"`
}

func (r *CreateProposalRequest) Normalize() {
	r.ProposalName = strings.TrimSpace(r.ProposalName)
}

type UpdateProposalRequest struct {
	ProposalName    *string              `json:"proposal_name,omitempty" validate:"omitempty,min=2,max=100"`
	ProposalClassID *uuid.UUID           `json:"proposal_class_id,omitempty"`
	SeatAssignments *[]ProposalSeatInput `json:"seat_assignments,omitempty" validate:"omitempty,dive"` // nil = tidak diubah
}

func (r *UpdateProposalRequest) Normalize() {
	if r.ProposalName != nil {
		v := strings.TrimSpace(*r.ProposalName)
		r.ProposalName = &v
	}
}

type RejectProposalRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type ReturnProposalRequest struct {
	Comments string `json:"comments" validate:"required,min=3"`
}

type ListProposalsQuery struct {
	Status string `query:"status"`
	Sort   string `query:"sort"`
}

func (q *ListProposalsQuery) Normalize() {
	q.Status = strings.TrimSpace(strings.ToLower(q.Status))
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type ProposalResponse struct {
	ProposalID        uuid.UUID  `json:"proposal_id"`
	ProposalSchoolID  uuid.UUID  `json:"proposal_school_id"`
	ProposalSubRoomID *uuid.UUID `json:"proposal_sub_room_id,omitempty"`
	ProposalRoomID    uuid.UUID  `json:"proposal_room_id"`
	ProposalClassID   uuid.UUID  `json:"proposal_class_id"`
	ProposalName      string     `json:"proposal_name"`

	ProposalTeacherID  uuid.UUID `json:"proposal_teacher_id"`
	ProposalProposedBy uuid.UUID `json:"proposal_proposed_by"`

	ProposalStatus      string `json:"proposal_status"`
	ProposalIsSubmitted bool   `json:"proposal_is_submitted"`
	// varian draft eksplisit: draft biasa vs draft hasil pengembalian
	ProposalIsReturned bool `json:"proposal_is_returned"`

	SeatAssignments []model.ProposalSeat `json:"seat_assignments"`

	ProposalTeacherComments string     `json:"proposal_teacher_comments,omitempty"`
	ProposalRejectionReason string     `json:"proposal_rejection_reason,omitempty"`
	ProposalReviewedBy      *uuid.UUID `json:"proposal_reviewed_by,omitempty"`
	ProposalReviewedAt      *time.Time `json:"proposal_reviewed_at,omitempty"`

	ProposalCreatedAt time.Time `json:"proposal_created_at"`
	ProposalUpdatedAt time.Time `json:"proposal_updated_at"`
}

func ToProposalResponse(m model.ProposalModel) (ProposalResponse, error) {
	seats, err := m.SeatAssignments()
	if err != nil {
		return ProposalResponse{}, err
	}
	if seats == nil {
		seats = []model.ProposalSeat{}
	}

	isReturned := false
	if d, ok := workflow.DraftView(m.Snapshot(), m.ProposalTeacherComments); ok {
		isReturned = d.IsReturned
	}

	return ProposalResponse{
		ProposalID:              m.ProposalID,
		ProposalSchoolID:        m.ProposalSchoolID,
		ProposalSubRoomID:       m.ProposalSubRoomID,
		ProposalRoomID:          m.ProposalRoomID,
		ProposalClassID:         m.ProposalClassID,
		ProposalName:            m.ProposalName,
		ProposalTeacherID:       m.ProposalTeacherID,
		ProposalProposedBy:      m.ProposalProposedBy,
		ProposalStatus:          string(m.ProposalStatus),
		ProposalIsSubmitted:     m.ProposalIsSubmitted,
		ProposalIsReturned:      isReturned,
		SeatAssignments:         seats,
		ProposalTeacherComments: m.ProposalTeacherComments,
		ProposalRejectionReason: m.ProposalRejectionReason,
		ProposalReviewedBy:      m.ProposalReviewedBy,
		ProposalReviewedAt:      m.ProposalReviewedAt,
		ProposalCreatedAt:       m.ProposalCreatedAt,
		ProposalUpdatedAt:       m.ProposalUpdatedAt,
	}, nil
}

// ToModelSeats konversi input DTO → bentuk tersimpan. seat_id kosong
// diberi identitas sintetis baru.
func ToModelSeats(in []ProposalSeatInput) []model.ProposalSeat {
	out := make([]model.ProposalSeat, 0, len(in))
	for _, s := range in {
		seatID := strings.TrimSpace(s.SeatID)
		if seatID == "" {
			seatID = uuid.NewString()
		}
		out = append(out, model.ProposalSeat{
			SeatID:     seatID,
			StudentID:  s.StudentID,
			SeatNumber: s.SeatNumber,
		})
	}
	return out
}
