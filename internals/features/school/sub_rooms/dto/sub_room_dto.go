// file: internals/features/school/sub_rooms/dto/sub_room_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	subRoomModel "kelasku_backend/internals/features/school/sub_rooms/model"
)

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateSubRoomRequest struct {
	SubRoomRoomID    uuid.UUID   `json:"sub_room_room_id" validate:"required"`
	SubRoomTeacherID *uuid.UUID  `json:"sub_room_teacher_id,omitempty"` // default: guru dari token
	SubRoomName      string      `json:"sub_room_name" validate:"required,min=2,max=100"`
	SubRoomClassIDs  []uuid.UUID `json:"sub_room_class_ids" validate:"required,min=1"`
}

type UpdateSubRoomRequest struct {
	SubRoomName     *string     `json:"sub_room_name,omitempty" validate:"omitempty,min=2,max=100"`
	SubRoomClassIDs []uuid.UUID `json:"sub_room_class_ids,omitempty" validate:"omitempty,min=1"`
}

func (r *CreateSubRoomRequest) Normalize() {
	r.SubRoomName = strings.TrimSpace(r.SubRoomName)
}

func (r *UpdateSubRoomRequest) Normalize() {
	if r.SubRoomName != nil {
		v := strings.TrimSpace(*r.SubRoomName)
		r.SubRoomName = &v
	}
}

/* =======================================================
   SCHEDULE SLOT DTOs
   ======================================================= */

type CreateScheduleSlotRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"` // 0=Senin .. 6=Minggu
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
	WeekType  string `json:"week_type" validate:"omitempty,oneof=A B both"`
}

func (r *CreateScheduleSlotRequest) Normalize() {
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	r.WeekType = strings.TrimSpace(r.WeekType)
	if r.WeekType == "" {
		r.WeekType = string(subRoomModel.WeekBoth)
	}
}

type ScheduleSlotResponse struct {
	SubRoomScheduleID uuid.UUID `json:"sub_room_schedule_id"`
	SubRoomID         uuid.UUID `json:"sub_room_id"`
	DayOfWeek         int       `json:"day_of_week"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	WeekType          string    `json:"week_type"`
}

func ToScheduleSlotResponse(m subRoomModel.SubRoomScheduleModel) ScheduleSlotResponse {
	return ScheduleSlotResponse{
		SubRoomScheduleID: m.SubRoomScheduleID,
		SubRoomID:         m.SubRoomScheduleSubRoomID,
		DayOfWeek:         m.SubRoomScheduleDayOfWeek,
		StartTime:         m.SubRoomScheduleStartTime,
		EndTime:           m.SubRoomScheduleEndTime,
		WeekType:          string(m.SubRoomScheduleWeekType),
	}
}

/* =======================================================
   QUERY FILTER DTO
   ======================================================= */

type ListSubRoomsQuery struct {
	RoomID  string `query:"room_id"`
	ClassID string `query:"class_id"`
	Search  string `query:"search"`
	Sort    string `query:"sort"`
}

func (q *ListSubRoomsQuery) Normalize() {
	q.RoomID = strings.TrimSpace(q.RoomID)
	q.ClassID = strings.TrimSpace(q.ClassID)
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type SubRoomResponse struct {
	SubRoomID        uuid.UUID              `json:"sub_room_id"`
	SubRoomSchoolID  uuid.UUID              `json:"sub_room_school_id"`
	SubRoomRoomID    uuid.UUID              `json:"sub_room_room_id"`
	SubRoomTeacherID uuid.UUID              `json:"sub_room_teacher_id"`
	SubRoomName      string                 `json:"sub_room_name"`
	SubRoomClassIDs  []string               `json:"sub_room_class_ids"`
	SubRoomSchedules []ScheduleSlotResponse `json:"sub_room_schedules,omitempty"`
	SubRoomCreatedAt time.Time              `json:"sub_room_created_at"`
	SubRoomUpdatedAt time.Time              `json:"sub_room_updated_at"`
	SubRoomDeletedAt *time.Time             `json:"sub_room_deleted_at,omitempty"`
}

func ToSubRoomResponse(m subRoomModel.SubRoomModel, slots []subRoomModel.SubRoomScheduleModel) SubRoomResponse {
	var deletedAt *time.Time
	if m.SubRoomDeletedAt.Valid {
		deletedAt = &m.SubRoomDeletedAt.Time
	}

	var schedules []ScheduleSlotResponse
	for _, s := range slots {
		schedules = append(schedules, ToScheduleSlotResponse(s))
	}

	return SubRoomResponse{
		SubRoomID:        m.SubRoomID,
		SubRoomSchoolID:  m.SubRoomSchoolID,
		SubRoomRoomID:    m.SubRoomRoomID,
		SubRoomTeacherID: m.SubRoomTeacherID,
		SubRoomName:      m.SubRoomName,
		SubRoomClassIDs:  m.SubRoomClassIDs,
		SubRoomSchedules: schedules,
		SubRoomCreatedAt: m.SubRoomCreatedAt,
		SubRoomUpdatedAt: m.SubRoomUpdatedAt,
		SubRoomDeletedAt: deletedAt,
	}
}
