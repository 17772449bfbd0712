// file: internals/features/school/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kelasku_backend/internals/features/school/schedules/dto"
	"kelasku_backend/internals/features/school/schedules/model"
	"kelasku_backend/internals/features/school/schedules/service"
	subRoomDTO "kelasku_backend/internals/features/school/sub_rooms/dto"
	subRoomModel "kelasku_backend/internals/features/school/sub_rooms/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
}

/* =======================================================
   KALENDER MINGGU A/B (admin)
   ======================================================= */

// UpsertWeek menetapkan tipe minggu untuk (tahun, minggu). Idempotent.
func (ctl *ScheduleController) UpsertWeek(c *fiber.Ctx) error {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}

	var req dto.UpsertWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.WeekCalendarModel{
		WeekCalendarSchoolID:   schoolID,
		WeekCalendarYear:       req.Year,
		WeekCalendarWeekNumber: req.WeekNumber,
		WeekCalendarWeekType:   req.WeekType,
	}

	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "week_calendar_school_id"},
			{Name: "week_calendar_year"},
			{Name: "week_calendar_week_number"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"week_calendar_week_type",
			"week_calendar_updated_at",
		}),
	}).Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menyimpan data")
	}

	return helper.Success(c, "Kalender minggu disimpan", dto.ToWeekCalendarResponse(m))
}

// ListWeeks mengembalikan mapping minggu→tipe untuk satu tahun ISO.
func (ctl *ScheduleController) ListWeeks(c *fiber.Ctx) error {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}

	var q dto.ListWeeksQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Query tidak valid")
	}
	if q.Year == 0 {
		q.Year, _ = time.Now().ISOWeek()
	}

	var rows []model.WeekCalendarModel
	if err := ctl.DB.
		Where("week_calendar_school_id = ? AND week_calendar_year = ?", schoolID, q.Year).
		Order("week_calendar_week_number ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.WeekCalendarResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToWeekCalendarResponse(m))
	}
	return helper.Success(c, "Kalender minggu", fiber.Map{
		"year":  q.Year,
		"items": out,
	})
}

// DeleteWeek menghapus satu entri; minggu itu kembali default A.
func (ctl *ScheduleController) DeleteWeek(c *fiber.Ctx) error {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.
		Where("week_calendar_id = ? AND week_calendar_school_id = ?", id, schoolID).
		Delete(&model.WeekCalendarModel{})
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.Success(c, "Entri kalender dihapus", nil)
}

/* =======================================================
   RESOLUSI SLOT AKTIF
   ======================================================= */

// ActiveSlot: GET /sub-rooms/:id/active-slot?at=RFC3339 (default: sekarang).
func (ctl *ScheduleController) ActiveSlot(c *fiber.Ctx) error {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}
	subRoomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "ID tidak valid")
	}

	at := time.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "Parameter at harus RFC3339")
		}
		at = parsed
	}

	var sr subRoomModel.SubRoomModel
	if err := ctl.DB.Where(
		"sub_room_id = ? AND sub_room_school_id = ?", subRoomID, schoolID,
	).First(&sr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
	}

	var slots []subRoomModel.SubRoomScheduleModel
	if err := ctl.DB.
		Where("sub_room_schedule_sub_room_id = ?", sr.SubRoomID).
		Order("sub_room_schedule_created_at ASC").
		Find(&slots).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	isoYear, isoWeek := at.ISOWeek()
	lookup := ctl.calendarLookup(schoolID)
	weekType := service.ResolveWeekType(at, lookup)
	active := service.ResolveActiveSlot(slots, at, lookup)

	resp := dto.ActiveSlotResponse{
		At:       at.Format(time.RFC3339),
		ISOYear:  isoYear,
		ISOWeek:  isoWeek,
		WeekType: string(weekType),
	}
	if active != nil {
		slot := subRoomDTO.ToScheduleSlotResponse(*active)
		resp.ActiveSlot = &slot
	}
	return helper.Success(c, "Slot aktif", resp)
}

// calendarLookup membaca entri kalender on-demand (satu minggu per resolve).
func (ctl *ScheduleController) calendarLookup(schoolID uuid.UUID) service.CalendarLookup {
	return func(year, week int) (subRoomModel.WeekType, bool) {
		var m model.WeekCalendarModel
		err := ctl.DB.Where(
			"week_calendar_school_id = ? AND week_calendar_year = ? AND week_calendar_week_number = ?",
			schoolID, year, week,
		).First(&m).Error
		if err != nil {
			return "", false
		}
		return subRoomModel.WeekType(m.WeekCalendarWeekType), true
	}
}
