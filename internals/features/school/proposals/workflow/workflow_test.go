// file: internals/features/school/proposals/workflow/workflow_test.go
package workflow

import (
	"testing"

	"github.com/google/uuid"

	"kelasku_backend/internals/helpers/errs"
)

var (
	author  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	teacher = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	someone = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func snap(status Status, submitted bool) Snapshot {
	return Snapshot{Status: status, IsSubmitted: submitted, AuthorID: author, TeacherID: teacher}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusDraft, false},
		{StatusPending, false},
		{StatusApproved, true},
		{StatusRejected, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

// Full transition matrix: every verb against every state.
func TestTransitionMatrix(t *testing.T) {
	verbs := map[string]func(Snapshot) error{
		"submit":  func(s Snapshot) error { return EnsureSubmit(s, author) },
		"approve": func(s Snapshot) error { return EnsureApprove(s, teacher) },
		"reject":  func(s Snapshot) error { return EnsureReject(s, teacher, "reason") },
		"return":  func(s Snapshot) error { return EnsureReturn(s, teacher, "comments") },
	}
	allowed := map[string]Status{
		"submit":  StatusDraft,
		"approve": StatusPending,
		"reject":  StatusPending,
		"return":  StatusPending,
	}
	states := []Status{StatusDraft, StatusPending, StatusApproved, StatusRejected}

	for name, verb := range verbs {
		for _, st := range states {
			err := verb(snap(st, st == StatusPending))
			wantOK := allowed[name] == st
			if wantOK && err != nil {
				t.Errorf("%s from %s: unexpected error %v", name, st, err)
			}
			if !wantOK {
				if err == nil {
					t.Errorf("%s from %s: expected violation, got nil", name, st)
				} else if !errs.IsWorkflowViolation(err) {
					t.Errorf("%s from %s: error is not a WorkflowViolationError: %v", name, st, err)
				}
			}
		}
	}
}

func TestSubmit_AuthorOnly(t *testing.T) {
	if err := EnsureSubmit(snap(StatusDraft, false), someone); err == nil {
		t.Error("submit by non-author should be rejected")
	}
	if err := EnsureSubmit(snap(StatusDraft, true), author); err == nil {
		t.Error("submit of an already-submitted proposal should be rejected")
	}
}

func TestReviewVerbs_TeacherOnly(t *testing.T) {
	s := snap(StatusPending, true)
	if err := EnsureApprove(s, author); err == nil {
		t.Error("approve by non-teacher should be rejected")
	}
	if err := EnsureReject(s, someone, "reason"); err == nil {
		t.Error("reject by non-teacher should be rejected")
	}
	if err := EnsureReturn(s, author, "comments"); err == nil {
		t.Error("return by non-teacher should be rejected")
	}
}

func TestReject_RequiresReason(t *testing.T) {
	s := snap(StatusPending, true)
	for _, reason := range []string{"", "   "} {
		if err := EnsureReject(s, teacher, reason); err == nil || !errs.IsWorkflowViolation(err) {
			t.Errorf("reject with reason %q: want WorkflowViolationError, got %v", reason, err)
		}
	}
	if err := EnsureReject(s, teacher, "incomplete layout"); err != nil {
		t.Errorf("reject with reason: unexpected error %v", err)
	}
}

func TestReturn_RequiresComments(t *testing.T) {
	s := snap(StatusPending, true)
	if err := EnsureReturn(s, teacher, "  "); err == nil || !errs.IsWorkflowViolation(err) {
		t.Errorf("return without comments: want WorkflowViolationError, got %v", err)
	}
	if err := EnsureReturn(s, teacher, "revise"); err != nil {
		t.Errorf("return with comments: unexpected error %v", err)
	}
}

func TestEnsureEditable(t *testing.T) {
	if err := EnsureEditable(snap(StatusDraft, false), author); err != nil {
		t.Errorf("draft editable by author: unexpected error %v", err)
	}
	if err := EnsureEditable(snap(StatusDraft, false), someone); err == nil {
		t.Error("draft edit by non-author should be rejected")
	}
	for _, st := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if err := EnsureEditable(snap(st, true), author); err == nil {
			t.Errorf("edit from %s should be rejected", st)
		}
	}
}

func TestDraftView(t *testing.T) {
	if _, ok := DraftView(snap(StatusPending, true), ""); ok {
		t.Error("DraftView on pending should report ok=false")
	}

	d, ok := DraftView(snap(StatusDraft, false), "")
	if !ok || d.IsReturned {
		t.Errorf("fresh draft: want {IsReturned:false}, got %+v ok=%v", d, ok)
	}

	d, ok = DraftView(snap(StatusDraft, false), " revise seating ")
	if !ok || !d.IsReturned || d.Comments != "revise seating" {
		t.Errorf("returned draft: got %+v ok=%v", d, ok)
	}
}
