// file: internals/features/school/sub_rooms/model/sub_room_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Enum week type (kalender minggu A/B)
   ======================================================= */

type WeekType string

const (
	WeekA    WeekType = "A"
	WeekB    WeekType = "B"
	WeekBoth WeekType = "both"
)

func (w WeekType) Valid() bool {
	switch w {
	case WeekA, WeekB, WeekBoth:
		return true
	}
	return false
}

/* =======================================================
   SubRoomScheduleModel — map ke tabel sub_room_schedules
   =======================================================
   Slot mingguan milik sub-ruangan: hari (Senin=0), jam mulai/selesai
   "HH:MM", dan tipe minggu (A, B, atau both).
*/

type SubRoomScheduleModel struct {
	SubRoomScheduleID uuid.UUID `json:"sub_room_schedule_id" gorm:"column:sub_room_schedule_id;primaryKey;type:uuid;default:gen_random_uuid()"`

	SubRoomScheduleSubRoomID uuid.UUID `json:"sub_room_schedule_sub_room_id" gorm:"column:sub_room_schedule_sub_room_id;type:uuid;not null;index"`

	SubRoomScheduleDayOfWeek int      `json:"sub_room_schedule_day_of_week" gorm:"column:sub_room_schedule_day_of_week;type:int;not null"` // 0=Senin .. 6=Minggu
	SubRoomScheduleStartTime string   `json:"sub_room_schedule_start_time" gorm:"column:sub_room_schedule_start_time;type:varchar(5);not null"` // "HH:MM"
	SubRoomScheduleEndTime   string   `json:"sub_room_schedule_end_time" gorm:"column:sub_room_schedule_end_time;type:varchar(5);not null"`
	SubRoomScheduleWeekType  WeekType `json:"sub_room_schedule_week_type" gorm:"column:sub_room_schedule_week_type;type:varchar(4);not null;default:'both'"`

	SubRoomScheduleCreatedAt time.Time `json:"sub_room_schedule_created_at" gorm:"column:sub_room_schedule_created_at;not null;autoCreateTime"`
}

func (SubRoomScheduleModel) TableName() string {
	return "sub_room_schedules"
}
