// file: internals/features/school/proposals/service/proposal_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	notifModel "kelasku_backend/internals/features/school/notifications/model"
	notifService "kelasku_backend/internals/features/school/notifications/service"
	"kelasku_backend/internals/features/school/proposals/model"
	"kelasku_backend/internals/features/school/proposals/workflow"
	roomModel "kelasku_backend/internals/features/school/rooms/model"
	subRoomModel "kelasku_backend/internals/features/school/sub_rooms/model"
	"kelasku_backend/internals/helpers/errs"
)

/* =======================================================
   PROPOSAL SERVICE
   =======================================================
   Menjalankan transisi workflow: guard murni dulu, lalu UPDATE
   KONDISIONAL pada status yang diharapkan. 0 baris ter-update =
   kalah balapan dengan reviewer lain → WorkflowViolationError,
   bukan overwrite diam-diam.

   Notifikasi dikirim SETELAH transisi sukses; gagal kirim tidak
   membatalkan apa pun (kontrak fire-and-forget).
*/

// TeacherDirectory resolve teacher_id → user_id (akun login guru).
// proposal_teacher_id hidup di ruang identitas guru, sedangkan
// notifikasi difilter per user_id dari token — jangan dicampur.
type TeacherDirectory interface {
	UserIDForTeacher(ctx context.Context, schoolID, teacherID uuid.UUID) (uuid.UUID, error)
}

type ProposalService struct {
	DB       *gorm.DB
	Notifier notifService.Notifier
	Teachers TeacherDirectory
}

func NewProposalService(db *gorm.DB, n notifService.Notifier, teachers TeacherDirectory) *ProposalService {
	if n == nil {
		n = notifService.NopNotifier{}
	}
	return &ProposalService{DB: db, Notifier: n, Teachers: teachers}
}

/* =======================================================
   SUBMIT  draft → pending
   ======================================================= */

func (s *ProposalService) Submit(ctx context.Context, m *model.ProposalModel, actor uuid.UUID) error {
	if err := workflow.EnsureSubmit(m.Snapshot(), actor); err != nil {
		return err
	}

	res := s.DB.WithContext(ctx).Model(&model.ProposalModel{}).
		Where("proposal_id = ? AND proposal_status = ?", m.ProposalID, workflow.StatusDraft).
		Updates(map[string]any{
			"proposal_status":       workflow.StatusPending,
			"proposal_is_submitted": true,
		})
	if res.Error != nil {
		return errs.NewPersistence("proposal submit", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewWorkflowViolation("proposal sudah berpindah status, muat ulang dulu")
	}

	m.ProposalStatus = workflow.StatusPending
	m.ProposalIsSubmitted = true

	s.notifySubmitted(ctx, m)
	return nil
}

// notifySubmitted kirim notifikasi submit ke AKUN guru reviewer,
// bukan ke teacher_id mentah. Gagal resolve = notifikasi di-skip
// (fire-and-forget), transisi submit tetap sah.
func (s *ProposalService) notifySubmitted(ctx context.Context, m *model.ProposalModel) {
	if s.Teachers == nil {
		log.Printf("[WARN] proposal %s: teacher directory belum di-wire, notifikasi submit di-skip", m.ProposalID)
		return
	}
	recipient, err := s.Teachers.UserIDForTeacher(ctx, m.ProposalSchoolID, m.ProposalTeacherID)
	if err != nil {
		log.Printf("[WARN] proposal %s: gagal resolve akun guru %s: %v", m.ProposalID, m.ProposalTeacherID, err)
		return
	}
	s.Notifier.Notify(ctx, notifService.Event{
		SchoolID:   m.ProposalSchoolID,
		UserID:     recipient,
		Kind:       notifModel.KindProposalSubmitted,
		Title:      "Usulan denah baru",
		Body:       fmt.Sprintf("Usulan denah %q menunggu review Anda.", m.ProposalName),
		ProposalID: &m.ProposalID,
		Tags:       []string{"proposal", "submitted"},
	})
}

/* =======================================================
   APPROVE  pending → approved (+ materialisasi)
   ======================================================= */

func (s *ProposalService) Approve(ctx context.Context, m *model.ProposalModel, actor uuid.UUID) error {
	if err := workflow.EnsureApprove(m.Snapshot(), actor); err != nil {
		return err
	}

	seats, err := m.SeatAssignments()
	if err != nil {
		return err
	}
	assignments, err := s.validateSeats(ctx, m, seats)
	if err != nil {
		return err
	}

	now := time.Now()
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// transisi status dulu — kalau kalah balapan, tidak ada
		// materialisasi setengah jadi
		res := tx.Model(&model.ProposalModel{}).
			Where("proposal_id = ? AND proposal_status = ?", m.ProposalID, workflow.StatusPending).
			Updates(map[string]any{
				"proposal_status":      workflow.StatusApproved,
				"proposal_reviewed_by": actor,
				"proposal_reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NewWorkflowViolation("proposal sudah direview pihak lain")
		}

		subRoomID, err := s.materialize(tx, m)
		if err != nil {
			return err
		}
		return replaceAssignments(tx, subRoomID, assignments)
	})
	if txErr != nil {
		if errs.IsWorkflowViolation(txErr) || errs.IsInvalidOperation(txErr) {
			return txErr
		}
		return errs.NewPersistence("proposal approve", txErr)
	}

	m.ProposalStatus = workflow.StatusApproved
	m.ProposalReviewedBy = &actor
	m.ProposalReviewedAt = &now

	s.Notifier.Notify(ctx, notifService.Event{
		SchoolID:   m.ProposalSchoolID,
		UserID:     m.ProposalProposedBy,
		Kind:       notifModel.KindProposalApproved,
		Title:      "Usulan denah disetujui",
		Body:       fmt.Sprintf("Usulan denah %q disetujui dan sudah diterapkan.", m.ProposalName),
		ProposalID: &m.ProposalID,
		Tags:       []string{"proposal", "approved"},
	})
	return nil
}

/* =======================================================
   REJECT  pending → rejected (terminal)
   ======================================================= */

func (s *ProposalService) Reject(ctx context.Context, m *model.ProposalModel, actor uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if err := workflow.EnsureReject(m.Snapshot(), actor, reason); err != nil {
		return err
	}

	now := time.Now()
	res := s.DB.WithContext(ctx).Model(&model.ProposalModel{}).
		Where("proposal_id = ? AND proposal_status = ?", m.ProposalID, workflow.StatusPending).
		Updates(map[string]any{
			"proposal_status":           workflow.StatusRejected,
			"proposal_rejection_reason": reason,
			"proposal_reviewed_by":      actor,
			"proposal_reviewed_at":      now,
		})
	if res.Error != nil {
		return errs.NewPersistence("proposal reject", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewWorkflowViolation("proposal sudah direview pihak lain")
	}

	m.ProposalStatus = workflow.StatusRejected
	m.ProposalRejectionReason = reason
	m.ProposalReviewedBy = &actor
	m.ProposalReviewedAt = &now

	s.Notifier.Notify(ctx, notifService.Event{
		SchoolID:   m.ProposalSchoolID,
		UserID:     m.ProposalProposedBy,
		Kind:       notifModel.KindProposalRejected,
		Title:      "Usulan denah ditolak",
		Body:       fmt.Sprintf("Usulan denah %q ditolak: %s", m.ProposalName, reason),
		ProposalID: &m.ProposalID,
		Tags:       []string{"proposal", "rejected"},
	})
	return nil
}

/* =======================================================
   RETURN  pending → draft (returned)
   ======================================================= */

func (s *ProposalService) Return(ctx context.Context, m *model.ProposalModel, actor uuid.UUID, comments string) error {
	comments = strings.TrimSpace(comments)
	if err := workflow.EnsureReturn(m.Snapshot(), actor, comments); err != nil {
		return err
	}

	now := time.Now()
	res := s.DB.WithContext(ctx).Model(&model.ProposalModel{}).
		Where("proposal_id = ? AND proposal_status = ?", m.ProposalID, workflow.StatusPending).
		Updates(map[string]any{
			"proposal_status":           workflow.StatusDraft,
			"proposal_is_submitted":     false,
			"proposal_teacher_comments": comments,
			"proposal_reviewed_by":      actor,
			"proposal_reviewed_at":      now,
		})
	if res.Error != nil {
		return errs.NewPersistence("proposal return", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewWorkflowViolation("proposal sudah direview pihak lain")
	}

	m.ProposalStatus = workflow.StatusDraft
	m.ProposalIsSubmitted = false
	m.ProposalTeacherComments = comments
	m.ProposalReviewedBy = &actor
	m.ProposalReviewedAt = &now

	s.Notifier.Notify(ctx, notifService.Event{
		SchoolID:   m.ProposalSchoolID,
		UserID:     m.ProposalProposedBy,
		Kind:       notifModel.KindProposalReturned,
		Title:      "Usulan denah dikembalikan",
		Body:       fmt.Sprintf("Usulan denah %q dikembalikan untuk revisi: %s", m.ProposalName, comments),
		ProposalID: &m.ProposalID,
		Tags:       []string{"proposal", "returned"},
	})
	return nil
}

/* =======================================================
   internal
   ======================================================= */

// validateSeats cek isi denah terhadap kapasitas ruangan target:
// nomor kursi 1..totalSeats, kursi dan siswa tidak ganda.
func (s *ProposalService) validateSeats(ctx context.Context, m *model.ProposalModel, seats []model.ProposalSeat) (map[int]uuid.UUID, error) {
	var room roomModel.RoomModel
	if err := s.DB.WithContext(ctx).Where(
		"room_id = ? AND room_school_id = ?", m.ProposalRoomID, m.ProposalSchoolID,
	).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewWorkflowViolation("ruangan target proposal tidak ditemukan")
		}
		return nil, errs.NewPersistence("proposal room lookup", err)
	}
	totalSeats, err := room.TotalSeats()
	if err != nil {
		return nil, err
	}

	out := make(map[int]uuid.UUID, len(seats))
	seen := make(map[uuid.UUID]bool, len(seats))
	for _, seat := range seats {
		if seat.SeatNumber < 1 || seat.SeatNumber > totalSeats {
			return nil, errs.NewInvalidOperation("nomor kursi %d di luar kapasitas 1..%d", seat.SeatNumber, totalSeats)
		}
		if seat.StudentID == uuid.Nil {
			return nil, errs.NewInvalidOperation("kursi %d tidak punya siswa", seat.SeatNumber)
		}
		if _, dup := out[seat.SeatNumber]; dup {
			return nil, errs.NewInvalidOperation("nomor kursi %d dipakai dua kali", seat.SeatNumber)
		}
		if seen[seat.StudentID] {
			return nil, errs.NewInvalidOperation("siswa %s menempati dua kursi", seat.StudentID)
		}
		out[seat.SeatNumber] = seat.StudentID
		seen[seat.StudentID] = true
	}
	return out, nil
}

// materialize menentukan sub-ruangan kanonis hasil approve:
// pakai yang lama kalau masih hidup, atau buat baru dari isi proposal.
// Proposal tidak pernah MENGHAPUS sub-ruangan.
func (s *ProposalService) materialize(tx *gorm.DB, m *model.ProposalModel) (uuid.UUID, error) {
	if m.ProposalSubRoomID != nil {
		var sr subRoomModel.SubRoomModel
		err := tx.Where(
			"sub_room_id = ? AND sub_room_school_id = ?", *m.ProposalSubRoomID, m.ProposalSchoolID,
		).First(&sr).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// target sudah di-soft-delete saat review berlangsung
				return uuid.Nil, errs.NewWorkflowViolation("sub-ruangan target proposal sudah tidak ada")
			}
			return uuid.Nil, err
		}
		return sr.SubRoomID, nil
	}

	sr := subRoomModel.SubRoomModel{
		SubRoomSchoolID:  m.ProposalSchoolID,
		SubRoomRoomID:    m.ProposalRoomID,
		SubRoomTeacherID: m.ProposalTeacherID,
		SubRoomName:      m.ProposalName,
		SubRoomClassIDs:  pq.StringArray{m.ProposalClassID.String()},
	}
	if err := tx.Create(&sr).Error; err != nil {
		return uuid.Nil, err
	}
	return sr.SubRoomID, nil
}

// replaceAssignments = delete-all lalu insert-all di dalam tx approve.
func replaceAssignments(tx *gorm.DB, subRoomID uuid.UUID, assignments map[int]uuid.UUID) error {
	if err := tx.
		Where("seating_assignment_sub_room_id = ?", subRoomID).
		Delete(&subRoomModel.SeatingAssignmentModel{}).Error; err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}
	rows := make([]subRoomModel.SeatingAssignmentModel, 0, len(assignments))
	for seat, studentID := range assignments {
		rows = append(rows, subRoomModel.SeatingAssignmentModel{
			SeatingAssignmentSubRoomID:    subRoomID,
			SeatingAssignmentSeatPosition: seat,
			SeatingAssignmentStudentID:    studentID,
		})
	}
	return tx.CreateInBatches(rows, 100).Error
}
