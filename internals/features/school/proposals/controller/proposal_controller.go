// file: internals/features/school/proposals/controller/proposal_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/proposals/dto"
	"kelasku_backend/internals/features/school/proposals/model"
	"kelasku_backend/internals/features/school/proposals/service"
	"kelasku_backend/internals/features/school/proposals/workflow"
	roomModel "kelasku_backend/internals/features/school/rooms/model"
	seatingRepo "kelasku_backend/internals/features/school/seating/repository"
	subRoomModel "kelasku_backend/internals/features/school/sub_rooms/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type ProposalController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.ProposalService
	Seating  *seatingRepo.SeatingRepository
}

func NewProposalController(db *gorm.DB, v *validator.Validate, svc *service.ProposalService) *ProposalController {
	return &ProposalController{
		DB:       db,
		Validate: v,
		Service:  svc,
		Seating:  seatingRepo.NewSeatingRepository(db),
	}
}

/* =======================================================
   DRAFT CRUD (delegate)
   ======================================================= */

// POST /api/u/proposals
func (ctl *ProposalController) Create(c *fiber.Ctx) error {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}
	userID, ok := helperAuth.GetUserID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User tidak ditemukan di token")
	}

	var req dto.CreateProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.ProposalModel{
		ProposalSchoolID:   schoolID,
		ProposalClassID:    req.ProposalClassID,
		ProposalProposedBy: userID,
		ProposalStatus:     workflow.StatusDraft,
	}

	seats := dto.ToModelSeats(req.SeatAssignments)

	if req.ProposalSubRoomID != nil {
		// target sub-ruangan lama: room/guru/nama diturunkan, dan
		// denah aktif dibawa masuk untuk di-edit ulang
		var sr subRoomModel.SubRoomModel
		if err := ctl.DB.Where(
			"sub_room_id = ? AND sub_room_school_id = ?", *req.ProposalSubRoomID, schoolID,
		).First(&sr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, http.StatusNotFound, "Sub-ruangan target tidak ditemukan")
			}
			return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
		}
		if !sr.HasClass(req.ProposalClassID) {
			return helper.Error(c, http.StatusBadRequest, "Kelas tidak terdaftar di sub-ruangan target")
		}

		m.ProposalSubRoomID = &sr.SubRoomID
		m.ProposalRoomID = sr.SubRoomRoomID
		m.ProposalTeacherID = sr.SubRoomTeacherID
		m.ProposalName = sr.SubRoomName
		if req.ProposalName != "" {
			m.ProposalName = req.ProposalName
		}

		if len(seats) == 0 {
			current, err := ctl.Seating.Load(c.UserContext(), sr.SubRoomID)
			if err != nil {
				return helper.DomainError(c, err)
			}
			for seatNumber, studentID := range current {
				seats = append(seats, model.ProposalSeat{
					SeatID:     uuid.NewString(),
					StudentID:  studentID,
					SeatNumber: seatNumber,
				})
			}
		}
	} else {
		// sub-ruangan baru: room + guru + nama wajib dari request
		if req.ProposalRoomID == nil || req.ProposalTeacherID == nil || req.ProposalName == "" {
			return helper.Error(c, http.StatusBadRequest,
				"Proposal sub-ruangan baru membutuhkan room, guru target, dan nama")
		}
		var room roomModel.RoomModel
		if err := ctl.DB.Where(
			"room_id = ? AND room_school_id = ?", *req.ProposalRoomID, schoolID,
		).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, http.StatusNotFound, "Ruangan tidak ditemukan")
			}
			return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
		}

		m.ProposalRoomID = *req.ProposalRoomID
		m.ProposalTeacherID = *req.ProposalTeacherID
		m.ProposalName = req.ProposalName
	}

	payload, err := model.MarshalSeatAssignments(seats)
	if err != nil {
		return helper.DomainError(c, err)
	}
	m.ProposalSeatAssignments = payload

	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menyimpan data")
	}

	resp, err := dto.ToProposalResponse(m)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Proposal dibuat", resp)
}

// GET /api/u/proposals — delegate: miliknya; guru: yang menarget dia;
// admin (CanCreateRoom): semua di sekolahnya.
func (ctl *ProposalController) List(c *fiber.Ctx) error {
	schoolID, ok := helperAuth.GetSchoolID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "School scope tidak ditemukan")
	}

	var q dto.ListProposalsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Query tidak valid")
	}
	q.Normalize()
	p := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&model.ProposalModel{}).
		Where("proposal_school_id = ?", schoolID)

	caps := helperAuth.GetCapabilities(c)
	if !caps.CanCreateRoom {
		teacherID, hasTeacher := helperAuth.GetTeacherID(c)
		userID, _ := helperAuth.GetUserID(c)
		if caps.CanReview && hasTeacher {
			db = db.Where("(proposal_teacher_id = ? OR proposal_proposed_by = ?)", teacherID, userID)
		} else {
			db = db.Where("proposal_proposed_by = ?", userID)
		}
	}

	if q.Status != "" {
		if !workflow.Status(q.Status).Valid() {
			return helper.Error(c, http.StatusBadRequest, "Status tidak dikenal")
		}
		db = db.Where("proposal_status = ?", q.Status)
	}

	switch q.Sort {
	case "created_asc":
		db = db.Order("proposal_created_at ASC")
	default:
		db = db.Order("proposal_created_at DESC")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ProposalModel
	if err := db.Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.ProposalResponse, 0, len(rows))
	for _, row := range rows {
		resp, err := dto.ToProposalResponse(row)
		if err != nil {
			return helper.DomainError(c, err)
		}
		out = append(out, resp)
	}

	return helper.Success(c, "Daftar proposal", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPagination(p, total, len(out)),
	})
}

// GET /api/u/proposals/:id
func (ctl *ProposalController) GetByID(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	if !ctl.canView(c, m) {
		return helper.Error(c, http.StatusForbidden, "Tidak punya akses ke proposal ini")
	}
	resp, err := dto.ToProposalResponse(*m)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Detail proposal", resp)
}

// PUT /api/u/proposals/:id — edit bebas hanya selama draft, oleh author.
func (ctl *ProposalController) Update(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	userID, _ := helperAuth.GetUserID(c)
	if err := workflow.EnsureEditable(m.Snapshot(), userID); err != nil {
		return helper.DomainError(c, err)
	}

	var req dto.UpdateProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.ProposalName != nil {
		m.ProposalName = *req.ProposalName
	}
	if req.ProposalClassID != nil {
		// aturan keanggotaan kelas sama dengan Create: untuk target
		// sub-ruangan lama, kelas baru harus terdaftar di sana
		if m.ProposalSubRoomID != nil {
			var sr subRoomModel.SubRoomModel
			if err := ctl.DB.Where(
				"sub_room_id = ? AND sub_room_school_id = ?", *m.ProposalSubRoomID, m.ProposalSchoolID,
			).First(&sr).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.Error(c, http.StatusNotFound, "Sub-ruangan target tidak ditemukan")
				}
				return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil data")
			}
			if !sr.HasClass(*req.ProposalClassID) {
				return helper.Error(c, http.StatusBadRequest, "Kelas tidak terdaftar di sub-ruangan target")
			}
		}
		m.ProposalClassID = *req.ProposalClassID
	}
	if req.SeatAssignments != nil {
		payload, err := model.MarshalSeatAssignments(dto.ToModelSeats(*req.SeatAssignments))
		if err != nil {
			return helper.DomainError(c, err)
		}
		m.ProposalSeatAssignments = payload
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menyimpan data")
	}

	resp, err := dto.ToProposalResponse(*m)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Proposal diperbarui", resp)
}

// DELETE /api/u/proposals/:id — hard delete, draft + author saja.
func (ctl *ProposalController) Delete(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	userID, _ := helperAuth.GetUserID(c)
	if err := workflow.EnsureEditable(m.Snapshot(), userID); err != nil {
		return helper.DomainError(c, err)
	}

	if err := ctl.DB.Delete(m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.Success(c, "Proposal dihapus", nil)
}

/* =======================================================
   TRANSISI WORKFLOW
   ======================================================= */

// POST /api/u/proposals/:id/submit
func (ctl *ProposalController) Submit(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	userID, ok := helperAuth.GetUserID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User tidak ditemukan di token")
	}
	if err := ctl.Service.Submit(c.UserContext(), m, userID); err != nil {
		return helper.DomainError(c, err)
	}
	resp, err := dto.ToProposalResponse(*m)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Proposal di-submit", resp)
}

// POST /api/u/proposals/:id/approve
func (ctl *ProposalController) Approve(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	teacherID, ok := helperAuth.GetTeacherID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Teacher scope tidak ditemukan")
	}
	if err := ctl.Service.Approve(c.UserContext(), m, teacherID); err != nil {
		return helper.DomainError(c, err)
	}
	resp, err := dto.ToProposalResponse(*m)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Proposal disetujui", resp)
}

// POST /api/u/proposals/:id/reject
func (ctl *ProposalController) Reject(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	teacherID, ok := helperAuth.GetTeacherID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Teacher scope tidak ditemukan")
	}

	var req dto.RejectProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.Reject(c.UserContext(), m, teacherID, req.Reason); err != nil {
		return helper.DomainError(c, err)
	}
	resp, err := dto.ToProposalResponse(*m)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Proposal ditolak", resp)
}

// POST /api/u/proposals/:id/return
func (ctl *ProposalController) Return(c *fiber.Ctx) error {
	m, ok := ctl.findScoped(c)
	if !ok {
		return nil
	}
	teacherID, ok := helperAuth.GetTeacherID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Teacher scope tidak ditemukan")
	}

	var req dto.ReturnProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.Return(c.UserContext(), m, teacherID, req.Comments); err != nil {
		return helper.DomainError(c, err)
	}
	resp, err := dto.ToProposalResponse(*m)
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Proposal dikembalikan untuk revisi", resp)
}

/* =======================================================
   internal
   ======================================================= */

// findScoped menulis response error sendiri; ok=false artinya sudah direspon.
func (ctl *ProposalController) findScoped(c *fiber.Ctx) (*model.ProposalModel, bool) {
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

	var m model.ProposalModel
	if err := ctl.DB.Where(
		"proposal_id = ? AND proposal_school_id = ?", id, schoolID,
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

// canView: author, guru target, atau admin sekolah.
func (ctl *ProposalController) canView(c *fiber.Ctx, m *model.ProposalModel) bool {
	caps := helperAuth.GetCapabilities(c)
	if caps.CanCreateRoom {
		return true
	}
	if userID, ok := helperAuth.GetUserID(c); ok && userID == m.ProposalProposedBy {
		return true
	}
	if teacherID, ok := helperAuth.GetTeacherID(c); ok && teacherID == m.ProposalTeacherID {
		return true
	}
	return false
}
