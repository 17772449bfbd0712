// file: internals/features/school/proposals/workflow/workflow.go
package workflow

import (
	"strings"

	"github.com/google/uuid"

	"kelasku_backend/internals/helpers/errs"
)

/* =======================================================
   STATE MACHINE USULAN DENAH
   =======================================================
   draft → pending → approved | rejected | (kembali ke) draft.
   approved dan rejected terminal. "Returned" BUKAN status sendiri:
   status draft dengan teacher_comments terisi — di-expose sebagai
   varian bertag lewat DraftView supaya pembaca tidak perlu menebak
   dari kehadiran field.

   Semua guard di sini murni: tidak menyentuh DB, tidak punya efek
   samping. Pelanggaran → WorkflowViolationError.
*/

type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal: tidak ada transisi yang sah dari status ini.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Snapshot = potret minimum proposal yang dibutuhkan guard.
type Snapshot struct {
	Status      Status
	IsSubmitted bool
	AuthorID    uuid.UUID // delegate pembuat
	TeacherID   uuid.UUID // guru target review
}

// Draft = varian bertag untuk status draft.
type Draft struct {
	IsReturned bool
	Comments   string
}

// DraftView mengembalikan varian draft; ok=false kalau bukan draft.
func DraftView(s Snapshot, teacherComments string) (Draft, bool) {
	if s.Status != StatusDraft {
		return Draft{}, false
	}
	comments := strings.TrimSpace(teacherComments)
	return Draft{IsReturned: comments != "", Comments: comments}, true
}

/* =======================================================
   GUARDS
   ======================================================= */

// EnsureEditable: edit/hapus bebas hanya selama draft dan oleh author.
func EnsureEditable(s Snapshot, actor uuid.UUID) error {
	if s.Status != StatusDraft {
		return errs.NewWorkflowViolation("proposal berstatus %s tidak bisa diubah", s.Status)
	}
	if actor != s.AuthorID {
		return errs.NewWorkflowViolation("hanya pembuat yang boleh mengubah proposal")
	}
	return nil
}

// EnsureSubmit: draft → pending, author only.
func EnsureSubmit(s Snapshot, actor uuid.UUID) error {
	if s.Status.Terminal() {
		return errs.NewWorkflowViolation("proposal sudah %s, tidak bisa di-submit", s.Status)
	}
	if s.Status == StatusPending || s.IsSubmitted {
		return errs.NewWorkflowViolation("proposal sudah di-submit")
	}
	if actor != s.AuthorID {
		return errs.NewWorkflowViolation("hanya pembuat yang boleh submit proposal")
	}
	return nil
}

// ensureReviewable: verb review hanya sah dari pending, oleh guru target.
func ensureReviewable(verb string, s Snapshot, actor uuid.UUID) error {
	if s.Status != StatusPending {
		return errs.NewWorkflowViolation("%s hanya sah dari status pending, bukan %s", verb, s.Status)
	}
	if actor != s.TeacherID {
		return errs.NewWorkflowViolation("hanya guru target yang boleh %s proposal", verb)
	}
	return nil
}

// EnsureApprove: pending → approved.
func EnsureApprove(s Snapshot, actor uuid.UUID) error {
	return ensureReviewable("approve", s, actor)
}

// EnsureReject: pending → rejected, alasan wajib.
func EnsureReject(s Snapshot, actor uuid.UUID, reason string) error {
	if err := ensureReviewable("reject", s, actor); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewWorkflowViolation("reject membutuhkan alasan")
	}
	return nil
}

// EnsureReturn: pending → draft (returned), komentar wajib.
func EnsureReturn(s Snapshot, actor uuid.UUID, comments string) error {
	if err := ensureReviewable("return", s, actor); err != nil {
		return err
	}
	if strings.TrimSpace(comments) == "" {
		return errs.NewWorkflowViolation("return membutuhkan komentar untuk delegate")
	}
	return nil
}
