// file: internals/features/school/schedules/model/week_calendar_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   WeekCalendarModel — map ke tabel week_calendar
   =======================================================
   Kalender minggu A/B per sekolah: (tahun ISO, minggu ISO) → A|B.
   Minggu yang tidak terdaftar default A (diputuskan resolver,
   bukan baris default di DB).
*/

type WeekCalendarModel struct {
	WeekCalendarID uuid.UUID `json:"week_calendar_id" gorm:"column:week_calendar_id;primaryKey;type:uuid;default:gen_random_uuid()"`

	WeekCalendarSchoolID uuid.UUID `json:"week_calendar_school_id" gorm:"column:week_calendar_school_id;type:uuid;not null;uniqueIndex:uq_week_calendar_school_year_week"`

	WeekCalendarYear       int    `json:"week_calendar_year" gorm:"column:week_calendar_year;type:int;not null;uniqueIndex:uq_week_calendar_school_year_week"`
	WeekCalendarWeekNumber int    `json:"week_calendar_week_number" gorm:"column:week_calendar_week_number;type:int;not null;uniqueIndex:uq_week_calendar_school_year_week"`
	WeekCalendarWeekType   string `json:"week_calendar_week_type" gorm:"column:week_calendar_week_type;type:varchar(1);not null"` // 'A' | 'B'

	WeekCalendarCreatedAt time.Time `json:"week_calendar_created_at" gorm:"column:week_calendar_created_at;not null;autoCreateTime"`
	WeekCalendarUpdatedAt time.Time `json:"week_calendar_updated_at" gorm:"column:week_calendar_updated_at;not null;autoUpdateTime"`
}

func (WeekCalendarModel) TableName() string {
	return "week_calendar"
}
