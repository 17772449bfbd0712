// file: internals/features/school/seating/controller/seating_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "kelasku_backend/internals/features/school/rooms/model"
	"kelasku_backend/internals/features/school/seating/dto"
	"kelasku_backend/internals/features/school/seating/engine"
	"kelasku_backend/internals/features/school/seating/repository"
	studentModel "kelasku_backend/internals/features/school/students/model"
	subRoomModel "kelasku_backend/internals/features/school/sub_rooms/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

/* =======================================================
   CONTROLLER
   =======================================================
   Setiap operasi: load snapshot dari DB → bangun engine →
   mutasi draft → save (bulk replace). Operasi gagal tidak
   menyentuh DB sama sekali (engine menolak sebelum save).
*/

type SeatingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Repo     *repository.SeatingRepository
}

func NewSeatingController(db *gorm.DB, v *validator.Validate) *SeatingController {
	return &SeatingController{DB: db, Validate: v, Repo: repository.NewSeatingRepository(db)}
}

/* =======================================================
   Loader: sub-ruangan + ruangan + roster + snapshot → engine
   ======================================================= */

func (ctl *SeatingController) loadEngine(c *fiber.Ctx) (*subRoomModel.SubRoomModel, *engine.Engine, error) {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return nil, nil, fiber.NewError(http.StatusUnauthorized, "School scope tidak ditemukan")
	}
	subRoomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, nil, fiber.NewError(http.StatusBadRequest, "ID sub-ruangan tidak valid")
	}

	var sr subRoomModel.SubRoomModel
	if err := ctl.DB.Where(
		"sub_room_id = ? AND sub_room_school_id = ?",
		subRoomID, schoolID,
	).First(&sr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(http.StatusNotFound, "Sub-ruangan tidak ditemukan")
		}
		return nil, nil, fiber.NewError(http.StatusInternalServerError, "Gagal mengambil data")
	}

	// guru pemilik atau admin (CanCreateRoom) saja yang boleh edit denah
	caps := helperAuth.GetCapabilities(c)
	if !caps.CanCreateRoom {
		teacherID, ok := helperAuth.GetTeacherID(c)
		if !ok || teacherID != sr.SubRoomTeacherID {
			return nil, nil, fiber.NewError(http.StatusForbidden, "Bukan pemilik sub-ruangan ini")
		}
	}

	var room roomModel.RoomModel
	if err := ctl.DB.Where("room_id = ?", sr.SubRoomRoomID).First(&room).Error; err != nil {
		return nil, nil, fiber.NewError(http.StatusInternalServerError, "Ruangan induk tidak ditemukan")
	}
	totalSeats, err := room.TotalSeats()
	if err != nil {
		return nil, nil, err
	}

	// roster: semua siswa dari kelas-kelas sub-ruangan
	var students []studentModel.StudentModel
	if len(sr.SubRoomClassIDs) > 0 {
		if err := ctl.DB.
			Where("student_school_id = ? AND student_class_id IN ?", schoolID, []string(sr.SubRoomClassIDs)).
			Order("student_last_name ASC, student_first_name ASC").
			Find(&students).Error; err != nil {
			return nil, nil, fiber.NewError(http.StatusInternalServerError, "Gagal mengambil roster")
		}
	}
	roster := make([]engine.Student, 0, len(students))
	for _, s := range students {
		roster = append(roster, engine.Student{
			ID:        s.StudentID,
			FirstName: s.StudentFirstName,
			LastName:  s.StudentLastName,
		})
	}

	current, err := ctl.Repo.Load(c.UserContext(), sr.SubRoomID)
	if err != nil {
		return nil, nil, err
	}

	eng, err := engine.New(totalSeats, roster, current)
	if err != nil {
		return nil, nil, err
	}
	return &sr, eng, nil
}

func (ctl *SeatingController) respondGrid(c *fiber.Ctx, sr *subRoomModel.SubRoomModel, eng *engine.Engine, message string) error {
	return helper.Success(c, message, dto.BuildSeatingGridResponse(sr.SubRoomID, sr.SubRoomRoomID, eng))
}

func (ctl *SeatingController) fail(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	return helper.DomainError(c, err)
}

/* =======================================================
   HANDLERS
   ======================================================= */

// GET /sub-rooms/:id/seating
func (ctl *SeatingController) GetGrid(c *fiber.Ctx) error {
	sr, eng, err := ctl.loadEngine(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	return ctl.respondGrid(c, sr, eng, "Denah kursi")
}

// POST /sub-rooms/:id/seating/place
func (ctl *SeatingController) Place(c *fiber.Ctx) error {
	var req dto.PlaceSeatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sr, eng, err := ctl.loadEngine(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	if err := eng.Place(req.SeatNumber, req.StudentID); err != nil {
		return helper.DomainError(c, err)
	}
	if err := eng.Save(c.UserContext(), ctl.Repo, sr.SubRoomID); err != nil {
		return helper.DomainError(c, err)
	}
	return ctl.respondGrid(c, sr, eng, "Siswa ditempatkan")
}

// POST /sub-rooms/:id/seating/remove
func (ctl *SeatingController) Remove(c *fiber.Ctx) error {
	var req dto.RemoveSeatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sr, eng, err := ctl.loadEngine(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	if err := eng.Remove(req.SeatNumber); err != nil {
		return helper.DomainError(c, err)
	}
	if err := eng.Save(c.UserContext(), ctl.Repo, sr.SubRoomID); err != nil {
		return helper.DomainError(c, err)
	}
	return ctl.respondGrid(c, sr, eng, "Kursi dikosongkan")
}

// POST /sub-rooms/:id/seating/clear
func (ctl *SeatingController) Clear(c *fiber.Ctx) error {
	sr, eng, err := ctl.loadEngine(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	eng.ClearAll()
	if err := eng.Save(c.UserContext(), ctl.Repo, sr.SubRoomID); err != nil {
		return helper.DomainError(c, err)
	}
	return ctl.respondGrid(c, sr, eng, "Denah dikosongkan")
}

// POST /sub-rooms/:id/seating/autofill
func (ctl *SeatingController) AutoFill(c *fiber.Ctx) error {
	var req dto.AutoFillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sr, eng, err := ctl.loadEngine(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	if err := eng.AutoFill(engine.Strategy(req.Strategy), engine.Scope(req.Scope)); err != nil {
		return helper.DomainError(c, err)
	}
	if err := eng.Save(c.UserContext(), ctl.Repo, sr.SubRoomID); err != nil {
		return helper.DomainError(c, err)
	}
	return ctl.respondGrid(c, sr, eng, "Autofill selesai")
}

// POST /sub-rooms/:id/seating/reset — sinyal dari client bahwa draft
// lokalnya dibuang; server tidak mengubah apa pun, cukup balas
// snapshot tersimpan terakhir (engine yang baru dimuat sudah bersih).
func (ctl *SeatingController) Reset(c *fiber.Ctx) error {
	sr, eng, err := ctl.loadEngine(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	return ctl.respondGrid(c, sr, eng, "Denah dimuat ulang")
}

// PUT /sub-rooms/:id/seating — "Save" dari UI: replace seluruh denah.
// Draft dari client divalidasi lewat engine (range, roster, injektif)
// sebelum dipersist; kalau ada satu entri tidak sah, TIDAK ada yang tersimpan.
func (ctl *SeatingController) SaveBulk(c *fiber.Ctx) error {
	var req dto.SaveSeatingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sr, eng, err := ctl.loadEngine(c)
	if err != nil {
		return ctl.fail(c, err)
	}

	eng.ClearAll()
	for _, a := range req.Assignments {
		if err := eng.Place(a.SeatNumber, a.StudentID); err != nil {
			return helper.DomainError(c, err) // tidak ada yang tersimpan
		}
	}
	if err := eng.Save(c.UserContext(), ctl.Repo, sr.SubRoomID); err != nil {
		return helper.DomainError(c, err)
	}
	return ctl.respondGrid(c, sr, eng, "Denah tersimpan")
}
