// file: internals/features/school/rooms/dto/room_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/school/rooms/layout"
	roomModel "kelasku_backend/internals/features/school/rooms/model"
)

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateRoomRequest struct {
	RoomName          string          `json:"room_name" validate:"required,min=2,max=100"`
	RoomCode          *string         `json:"room_code,omitempty" validate:"omitempty,max=50"`
	RoomBoardPosition string          `json:"room_board_position" validate:"omitempty,oneof=top bottom left right"`
	RoomColumns       []layout.Column `json:"room_columns" validate:"required,min=1,dive"`
}

type UpdateRoomRequest struct {
	RoomName          *string         `json:"room_name,omitempty" validate:"omitempty,min=2,max=100"`
	RoomCode          *string         `json:"room_code,omitempty" validate:"omitempty,max=50"`
	RoomBoardPosition *string         `json:"room_board_position,omitempty" validate:"omitempty,oneof=top bottom left right"`
	RoomColumns       []layout.Column `json:"room_columns,omitempty" validate:"omitempty,min=1,dive"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomName = strings.TrimSpace(r.RoomName)
	if r.RoomCode != nil {
		c := strings.TrimSpace(*r.RoomCode)
		r.RoomCode = &c
	}
	r.RoomBoardPosition = strings.ToLower(strings.TrimSpace(r.RoomBoardPosition))
	if r.RoomBoardPosition == "" {
		r.RoomBoardPosition = string(roomModel.BoardTop)
	}
}

func (r *UpdateRoomRequest) Normalize() {
	if r.RoomName != nil {
		v := strings.TrimSpace(*r.RoomName)
		r.RoomName = &v
	}
	if r.RoomCode != nil {
		v := strings.TrimSpace(*r.RoomCode)
		r.RoomCode = &v
	}
	if r.RoomBoardPosition != nil {
		v := strings.ToLower(strings.TrimSpace(*r.RoomBoardPosition))
		r.RoomBoardPosition = &v
	}
}

/* =======================================================
   QUERY FILTER DTO
   ======================================================= */

type ListRoomsQuery struct {
	Search string `query:"search"`
	Sort   string `query:"sort"`
}

func (q *ListRoomsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type RoomResponse struct {
	RoomID            uuid.UUID       `json:"room_id"`
	RoomSchoolID      uuid.UUID       `json:"room_school_id"`
	RoomName          string          `json:"room_name"`
	RoomCode          *string         `json:"room_code,omitempty"`
	RoomBoardPosition string          `json:"room_board_position"`
	RoomColumns       []layout.Column `json:"room_columns"`
	RoomTotalSeats    int             `json:"room_total_seats"`
	RoomWidth         int             `json:"room_width"`
	RoomCreatedAt     time.Time       `json:"room_created_at"`
	RoomUpdatedAt     time.Time       `json:"room_updated_at"`
	RoomDeletedAt     *time.Time      `json:"room_deleted_at,omitempty"`
}

func ToRoomResponse(m roomModel.RoomModel) RoomResponse {
	var deletedAt *time.Time
	if m.RoomDeletedAt.Valid {
		deletedAt = &m.RoomDeletedAt.Time
	}

	cols, err := m.Columns()
	if err != nil {
		cols = nil // config korup → biarkan kosong, jangan gagalkan list
	}

	return RoomResponse{
		RoomID:            m.RoomID,
		RoomSchoolID:      m.RoomSchoolID,
		RoomName:          m.RoomName,
		RoomCode:          m.RoomCode,
		RoomBoardPosition: string(m.RoomBoardPosition),
		RoomColumns:       cols,
		RoomTotalSeats:    layout.TotalSeats(cols),
		RoomWidth:         layout.Width(cols),
		RoomCreatedAt:     m.RoomCreatedAt,
		RoomUpdatedAt:     m.RoomUpdatedAt,
		RoomDeletedAt:     deletedAt,
	}
}

/* =======================================================
   LAYOUT GRID RESPONSE (denah per kolom/meja/kursi)
   ======================================================= */

type SeatCell struct {
	SeatNumber int `json:"seat_number"`
}

type TableGrid struct {
	Seats []SeatCell `json:"seats"`
}

type ColumnGrid struct {
	Tables []TableGrid `json:"tables"`
}

type RoomLayoutResponse struct {
	RoomID            uuid.UUID    `json:"room_id"`
	RoomBoardPosition string       `json:"room_board_position"`
	RoomTotalSeats    int          `json:"room_total_seats"`
	Columns           []ColumnGrid `json:"columns"`
}

// BuildRoomLayoutResponse materialisasi nomor kursi per sel
// lewat layout.SeatNumber — satu sumber penomoran untuk semua render.
func BuildRoomLayoutResponse(m roomModel.RoomModel) (RoomLayoutResponse, error) {
	cols, err := m.Columns()
	if err != nil {
		return RoomLayoutResponse{}, err
	}

	out := RoomLayoutResponse{
		RoomID:            m.RoomID,
		RoomBoardPosition: string(m.RoomBoardPosition),
		RoomTotalSeats:    layout.TotalSeats(cols),
		Columns:           make([]ColumnGrid, 0, len(cols)),
	}
	for ci, col := range cols {
		cg := ColumnGrid{Tables: make([]TableGrid, 0, col.Tables)}
		for ti := 0; ti < col.Tables; ti++ {
			tg := TableGrid{Seats: make([]SeatCell, 0, col.SeatsPerTable)}
			for si := 0; si < col.SeatsPerTable; si++ {
				n, err := layout.SeatNumber(cols, ci, ti, si)
				if err != nil {
					return RoomLayoutResponse{}, err
				}
				tg.Seats = append(tg.Seats, SeatCell{SeatNumber: n})
			}
			cg.Tables = append(cg.Tables, tg)
		}
		out.Columns = append(out.Columns, cg)
	}
	return out, nil
}
