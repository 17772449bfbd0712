// file: internals/features/school/schedules/dto/schedule_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	scheduleModel "kelasku_backend/internals/features/school/schedules/model"
	subRoomDTO "kelasku_backend/internals/features/school/sub_rooms/dto"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UpsertWeekRequest menetapkan tipe minggu A/B untuk satu minggu ISO.
type UpsertWeekRequest struct {
	Year       int    `json:"year" validate:"required,min=2000,max=2100"`
	WeekNumber int    `json:"week_number" validate:"required,min=1,max=53"`
	WeekType   string `json:"week_type" validate:"required,oneof=A B"`
}

func (r *UpsertWeekRequest) Normalize() {
	r.WeekType = strings.ToUpper(strings.TrimSpace(r.WeekType))
}

type ListWeeksQuery struct {
	Year int `query:"year"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type WeekCalendarResponse struct {
	WeekCalendarID uuid.UUID `json:"week_calendar_id"`
	Year           int       `json:"year"`
	WeekNumber     int       `json:"week_number"`
	WeekType       string    `json:"week_type"`
}

func ToWeekCalendarResponse(m scheduleModel.WeekCalendarModel) WeekCalendarResponse {
	return WeekCalendarResponse{
		WeekCalendarID: m.WeekCalendarID,
		Year:           m.WeekCalendarYear,
		WeekNumber:     m.WeekCalendarWeekNumber,
		WeekType:       m.WeekCalendarWeekType,
	}
}

// ActiveSlotResponse = hasil resolusi slot aktif satu sub-ruangan.
type ActiveSlotResponse struct {
	At         string                           `json:"at"`
	ISOYear    int                              `json:"iso_year"`
	ISOWeek    int                              `json:"iso_week"`
	WeekType   string                           `json:"week_type"`
	ActiveSlot *subRoomDTO.ScheduleSlotResponse `json:"active_slot"` // null kalau tidak ada yang aktif
}
