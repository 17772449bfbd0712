// file: internals/features/school/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/rooms/dto"
	"kelasku_backend/internals/features/school/rooms/layout"
	"kelasku_backend/internals/features/school/rooms/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

func mustSchoolID(c *fiber.Ctx) (uuid.UUID, bool) {
	return helperAuth.GetSchoolID(c)
}

/* =======================================================
   HANDLERS
   ======================================================= */

func (ctl *RoomController) List(c *fiber.Ctx) error {
	schoolID, ok := mustSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}

	var q dto.ListRoomsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Query tidak valid")
	}
	q.Normalize()
	p := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&model.RoomModel{}).
		Where("room_school_id = ?", schoolID)

	if q.Search != "" {
		s := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("(LOWER(room_name) LIKE ? OR LOWER(COALESCE(room_code,'')) LIKE ?)", s, s)
	}

	switch q.Sort {
	case "name_asc":
		db = db.Order("room_name ASC")
	case "name_desc":
		db = db.Order("room_name DESC")
	case "created_asc":
		db = db.Order("room_created_at ASC")
	default:
		db = db.Order("room_created_at DESC")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.RoomModel
	if err := db.Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.RoomResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToRoomResponse(m))
	}

	return helper.Success(c, "Daftar ruangan", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPagination(p, total, len(out)),
	})
}

func (ctl *RoomController) GetByID(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	return helper.Success(c, "Detail ruangan", dto.ToRoomResponse(*m))
}

// GetLayout mengembalikan denah ternomor per kolom/meja/kursi.
func (ctl *RoomController) GetLayout(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	resp, err := dto.BuildRoomLayoutResponse(*m)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Denah ruangan", resp)
}

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	schoolID, ok := mustSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}

	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	// plafon kapasitas & lebar dicek di sini, bukan di-clamp
	if err := layout.ValidateColumns(req.RoomColumns); err != nil {
		return helper.DomainError(c, err)
	}

	cfg, err := model.MarshalRoomConfig(req.RoomColumns)
	if err != nil {
		return helper.DomainError(c, err)
	}

	m := model.RoomModel{
		RoomSchoolID:      schoolID,
		RoomName:          req.RoomName,
		RoomCode:          req.RoomCode,
		RoomBoardPosition: model.BoardPosition(req.RoomBoardPosition),
		RoomConfig:        cfg,
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, http.StatusConflict, "Kode ruangan sudah digunakan")
		}
		return helper.Error(c, http.StatusInternalServerError, "Gagal menyimpan data")
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Ruangan dibuat", dto.ToRoomResponse(m))
}

func (ctl *RoomController) Update(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.RoomName != nil {
		m.RoomName = *req.RoomName
	}
	if req.RoomCode != nil {
		m.RoomCode = req.RoomCode
	}
	if req.RoomBoardPosition != nil {
		m.RoomBoardPosition = model.BoardPosition(*req.RoomBoardPosition)
	}

	if req.RoomColumns != nil {
		if err := layout.ValidateColumns(req.RoomColumns); err != nil {
			return helper.DomainError(c, err)
		}
		// edit non-destruktif saja: config baru tidak boleh membuang
		// kursi yang masih dipakai denah manapun di ruangan ini
		newTotal := layout.TotalSeats(req.RoomColumns)
		var maxUsed int
		if err := ctl.DB.Raw(`
			SELECT COALESCE(MAX(sa.seating_assignment_seat_position), 0)
			FROM seating_assignments sa
			JOIN sub_rooms sr ON sr.sub_room_id = sa.seating_assignment_sub_room_id
			WHERE sr.sub_room_room_id = ? AND sr.sub_room_deleted_at IS NULL
		`, m.RoomID).Scan(&maxUsed).Error; err != nil {
			return helper.Error(c, http.StatusInternalServerError, "Gagal memeriksa denah terpakai")
		}
		if maxUsed > newTotal {
			return helper.Error(c, http.StatusConflict,
				"Config baru memotong kursi yang masih terpakai. Kosongkan dulu denah terkait.")
		}

		cfg, err := model.MarshalRoomConfig(req.RoomColumns)
		if err != nil {
			return helper.DomainError(c, err)
		}
		m.RoomConfig = cfg
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, http.StatusConflict, "Kode ruangan sudah digunakan")
		}
		return helper.Error(c, http.StatusInternalServerError, "Gagal menyimpan data")
	}

	return helper.Success(c, "Ruangan diperbarui", dto.ToRoomResponse(*m))
}

// Delete = soft delete
func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	if err := ctl.DB.Delete(m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.Success(c, "Ruangan dihapus", nil)
}

func (ctl *RoomController) Restore(c *fiber.Ctx) error {
	schoolID, ok := mustSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Unscoped().Model(&model.RoomModel{}).
		Where("room_id = ? AND room_school_id = ? AND room_deleted_at IS NOT NULL", id, schoolID).
		Update("room_deleted_at", nil)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal restore data")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.Success(c, "Ruangan direstore", nil)
}

/* =======================================================
   internal
   ======================================================= */

// findScoped menulis response error sendiri; ok=false artinya sudah direspon.
func (ctl *RoomController) findScoped(c *fiber.Ctx) (*model.RoomModel, bool) {
	schoolID, ok := mustSchoolID(c)
	if !ok {
		_ = helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
		return nil, false
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = helper.Error(c, http.StatusBadRequest, "ID tidak valid")
		return nil, false
	}

	var m model.RoomModel
	if err := ctl.DB.Where(
		"room_id = ? AND room_school_id = ?", id, schoolID,
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
