// file: internals/features/school/sub_rooms/controller/sub_room_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	roomModel "kelasku_backend/internals/features/school/rooms/model"
	"kelasku_backend/internals/features/school/sub_rooms/dto"
	"kelasku_backend/internals/features/school/sub_rooms/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type SubRoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubRoomController(db *gorm.DB, v *validator.Validate) *SubRoomController {
	return &SubRoomController{DB: db, Validate: v}
}

/* =======================================================
   HANDLERS — SUB ROOM CRUD
   ======================================================= */

func (ctl *SubRoomController) List(c *fiber.Ctx) error {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}

	var q dto.ListSubRoomsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Query tidak valid")
	}
	q.Normalize()
	p := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&model.SubRoomModel{}).
		Where("sub_room_school_id = ?", schoolID)

	// guru biasa hanya lihat miliknya; admin lihat semua
	caps := helperAuth.GetCapabilities(c)
	if !caps.CanCreateRoom {
		if teacherID, ok := helperAuth.GetTeacherID(c); ok {
			db = db.Where("sub_room_teacher_id = ?", teacherID)
		}
	}

	if q.RoomID != "" {
		db = db.Where("sub_room_room_id = ?", q.RoomID)
	}
	if q.ClassID != "" {
		db = db.Where("? = ANY(sub_room_class_ids)", q.ClassID)
	}
	if q.Search != "" {
		db = db.Where("LOWER(sub_room_name) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}

	switch q.Sort {
	case "name_asc":
		db = db.Order("sub_room_name ASC")
	case "name_desc":
		db = db.Order("sub_room_name DESC")
	default:
		db = db.Order("sub_room_created_at DESC")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.SubRoomModel
	if err := db.Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.SubRoomResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToSubRoomResponse(m, nil))
	}

	return helper.Success(c, "Daftar sub-ruangan", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPagination(p, total, len(out)),
	})
}

func (ctl *SubRoomController) GetByID(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}

	var slots []model.SubRoomScheduleModel
	if err := ctl.DB.
		Where("sub_room_schedule_sub_room_id = ?", m.SubRoomID).
		Order("sub_room_schedule_created_at ASC").
		Find(&slots).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	return helper.Success(c, "Detail sub-ruangan", dto.ToSubRoomResponse(*m, slots))
}

func (ctl *SubRoomController) Create(c *fiber.Ctx) error {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}

	var req dto.CreateSubRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// default pemilik = guru dari token; admin boleh set guru lain
	teacherID, hasTeacher := helperAuth.GetTeacherID(c)
	if req.SubRoomTeacherID != nil {
		caps := helperAuth.GetCapabilities(c)
		if !caps.CanCreateRoom && (!hasTeacher || *req.SubRoomTeacherID != teacherID) {
			return helper.Error(c, http.StatusForbidden, "Tidak boleh membuat sub-ruangan untuk guru lain")
		}
		teacherID = *req.SubRoomTeacherID
	} else if !hasTeacher {
		return helper.Error(c, http.StatusBadRequest, "teacher_id wajib diisi")
	}

	// ruangan harus ada di sekolah yang sama
	var room roomModel.RoomModel
	if err := ctl.DB.Where(
		"room_id = ? AND room_school_id = ?", req.SubRoomRoomID, schoolID,
	).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
	}

	classIDs := make(pq.StringArray, 0, len(req.SubRoomClassIDs))
	for _, id := range req.SubRoomClassIDs {
		classIDs = append(classIDs, id.String())
	}

	m := model.SubRoomModel{
		SubRoomSchoolID:  schoolID,
		SubRoomRoomID:    room.RoomID,
		SubRoomTeacherID: teacherID,
		SubRoomName:      req.SubRoomName,
		SubRoomClassIDs:  classIDs,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menyimpan data")
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Sub-ruangan dibuat", dto.ToSubRoomResponse(m, nil))
}

func (ctl *SubRoomController) Update(c *fiber.Ctx) error {
	m, ok := ctl.findScopedOwned(c)
	if !ok {
		return nil
	}

	var req dto.UpdateSubRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.SubRoomName != nil {
		m.SubRoomName = *req.SubRoomName
	}
	if req.SubRoomClassIDs != nil {
		classIDs := make(pq.StringArray, 0, len(req.SubRoomClassIDs))
		for _, id := range req.SubRoomClassIDs {
			classIDs = append(classIDs, id.String())
		}
		m.SubRoomClassIDs = classIDs
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.Success(c, "Sub-ruangan diperbarui", dto.ToSubRoomResponse(*m, nil))
}

// Delete = soft delete (riwayat denah tetap tersimpan)
func (ctl *SubRoomController) Delete(c *fiber.Ctx) error {
	m, ok := ctl.findScopedOwned(c)
	if !ok {
		return nil
	}
	if err := ctl.DB.Delete(m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.Success(c, "Sub-ruangan dihapus", nil)
}

func (ctl *SubRoomController) Restore(c *fiber.Ctx) error {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Unscoped().Model(&model.SubRoomModel{}).
		Where("sub_room_id = ? AND sub_room_school_id = ? AND sub_room_deleted_at IS NOT NULL", id, schoolID).
		Update("sub_room_deleted_at", nil)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal restore data")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.Success(c, "Sub-ruangan direstore", nil)
}

/* =======================================================
   HANDLERS — SCHEDULE SLOTS
   ======================================================= */

func (ctl *SubRoomController) AddScheduleSlot(c *fiber.Ctx) error {
	m, ok := ctl.findScopedOwned(c)
	if !ok {
		return nil
	}

	var req dto.CreateScheduleSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.StartTime > req.EndTime { // "HH:MM" aman dibanding leksikal
		return helper.Error(c, http.StatusBadRequest, "start_time harus ≤ end_time")
	}

	slot := model.SubRoomScheduleModel{
		SubRoomScheduleSubRoomID: m.SubRoomID,
		SubRoomScheduleDayOfWeek: req.DayOfWeek,
		SubRoomScheduleStartTime: req.StartTime,
		SubRoomScheduleEndTime:   req.EndTime,
		SubRoomScheduleWeekType:  model.WeekType(req.WeekType),
	}
	if err := ctl.DB.Create(&slot).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Slot jadwal ditambahkan", dto.ToScheduleSlotResponse(slot))
}

func (ctl *SubRoomController) RemoveScheduleSlot(c *fiber.Ctx) error {
	m, ok := ctl.findScopedOwned(c)
	if !ok {
		return nil
	}
	slotID, err := uuid.Parse(c.Params("slot_id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "ID slot tidak valid")
	}

	res := ctl.DB.
		Where("sub_room_schedule_id = ? AND sub_room_schedule_sub_room_id = ?", slotID, m.SubRoomID).
		Delete(&model.SubRoomScheduleModel{})
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Slot tidak ditemukan")
	}
	return helper.Success(c, "Slot jadwal dihapus", nil)
}

/* =======================================================
   internal
   ======================================================= */

// findScoped menulis response error sendiri; ok=false artinya sudah direspon.
func (ctl *SubRoomController) findScoped(c *fiber.Ctx) (*model.SubRoomModel, bool) {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		_ = helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
		return nil, false
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = helper.Error(c, http.StatusBadRequest, "ID tidak valid")
		return nil, false
	}

	var m model.SubRoomModel
	if err := ctl.DB.Where(
		"sub_room_id = ? AND sub_room_school_id = ?", id, schoolID,
	).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		} else {
			_ = helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
		}
		return nil, false
	}
	return &m, true
}

// findScopedOwned = findScoped + cek kepemilikan guru (admin lolos).
func (ctl *SubRoomController) findScopedOwned(c *fiber.Ctx) (*model.SubRoomModel, bool) {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil, false
	}
	caps := helperAuth.GetCapabilities(c)
	if caps.CanCreateRoom {
		return m, true
	}
	teacherID, ok := helperAuth.GetTeacherID(c)
	if !ok || teacherID != m.SubRoomTeacherID {
		_ = helper.Error(c, http.StatusForbidden, "Bukan pemilik sub-ruangan ini")
		return nil, false
	}
	return m, true
}
