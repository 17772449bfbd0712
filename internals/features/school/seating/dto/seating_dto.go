// file: internals/features/school/seating/dto/seating_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/school/seating/engine"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type PlaceSeatRequest struct {
	SeatNumber int       `json:"seat_number" validate:"required,min=1"`
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
}

type RemoveSeatRequest struct {
	SeatNumber int `json:"seat_number" validate:"required,min=1"`
}

type AutoFillRequest struct {
	Strategy string `json:"strategy" validate:"required,oneof=random ascending descending"`
	Scope    string `json:"scope" validate:"required,oneof=complete all"`
}

func (r *AutoFillRequest) Normalize() {
	r.Strategy = strings.ToLower(strings.TrimSpace(r.Strategy))
	r.Scope = strings.ToLower(strings.TrimSpace(r.Scope))
}

type SeatAssignmentInput struct {
	SeatNumber int       `json:"seat_number" validate:"required,min=1"`
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
}

// SaveSeatingRequest = "Save" dari UI: replace seluruh denah sekaligus.
type SaveSeatingRequest struct {
	Assignments []SeatAssignmentInput `json:"assignments" validate:"dive"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type SeatAssignmentItem struct {
	SeatNumber int       `json:"seat_number"`
	StudentID  uuid.UUID `json:"student_id"`
}

type UnassignedStudentItem struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentFirstName string    `json:"student_first_name"`
	StudentLastName  string    `json:"student_last_name"`
}

type SeatingGridResponse struct {
	SubRoomID   uuid.UUID               `json:"sub_room_id"`
	RoomID      uuid.UUID               `json:"room_id"`
	TotalSeats  int                     `json:"total_seats"`
	Assignments []SeatAssignmentItem    `json:"assignments"`
	Unassigned  []UnassignedStudentItem `json:"unassigned_students"`
}

func BuildSeatingGridResponse(subRoomID, roomID uuid.UUID, e *engine.Engine) SeatingGridResponse {
	draft := e.Draft()

	items := make([]SeatAssignmentItem, 0, len(draft))
	for seat := 1; seat <= e.TotalSeats(); seat++ { // urut kursi, stabil buat render
		if st, ok := draft[seat]; ok {
			items = append(items, SeatAssignmentItem{SeatNumber: seat, StudentID: st})
		}
	}

	un := e.UnassignedStudents()
	unItems := make([]UnassignedStudentItem, 0, len(un))
	for _, s := range un {
		unItems = append(unItems, UnassignedStudentItem{
			StudentID:        s.ID,
			StudentFirstName: s.FirstName,
			StudentLastName:  s.LastName,
		})
	}

	return SeatingGridResponse{
		SubRoomID:   subRoomID,
		RoomID:      roomID,
		TotalSeats:  e.TotalSeats(),
		Assignments: items,
		Unassigned:  unItems,
	}
}
