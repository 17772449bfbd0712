// file: internals/features/school/proposals/service/proposal_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	notifModel "kelasku_backend/internals/features/school/notifications/model"
	notifService "kelasku_backend/internals/features/school/notifications/service"
	"kelasku_backend/internals/features/school/proposals/model"
	"kelasku_backend/internals/helpers/errs"
)

type fakeTeacherDirectory struct {
	userID uuid.UUID
	err    error
}

func (f fakeTeacherDirectory) UserIDForTeacher(_ context.Context, _, _ uuid.UUID) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return f.userID, nil
}

type captureNotifier struct {
	events []notifService.Event
}

func (n *captureNotifier) Notify(_ context.Context, e notifService.Event) {
	n.events = append(n.events, e)
}

func submittedProposal() *model.ProposalModel {
	return &model.ProposalModel{
		ProposalID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		ProposalSchoolID:  uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		ProposalTeacherID: uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		ProposalName:      "Denah Ujian",
	}
}

// The submit notification must target the teacher's login account id,
// not the teacher profile id: notifications are read back filtered on
// the user id carried by the token.
func TestNotifySubmitted_TargetsTeacherUserAccount(t *testing.T) {
	teacherUserID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	n := &captureNotifier{}
	s := NewProposalService(nil, n, fakeTeacherDirectory{userID: teacherUserID})
	m := submittedProposal()

	s.notifySubmitted(context.Background(), m)

	if len(n.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(n.events))
	}
	ev := n.events[0]
	if ev.UserID != teacherUserID {
		t.Errorf("recipient = %s, want teacher user id %s", ev.UserID, teacherUserID)
	}
	if ev.UserID == m.ProposalTeacherID {
		t.Errorf("recipient must not be the raw teacher id %s", m.ProposalTeacherID)
	}
	if ev.Kind != notifModel.KindProposalSubmitted {
		t.Errorf("kind = %q, want %q", ev.Kind, notifModel.KindProposalSubmitted)
	}
	if ev.ProposalID == nil || *ev.ProposalID != m.ProposalID {
		t.Errorf("proposal reference = %v, want %s", ev.ProposalID, m.ProposalID)
	}
}

func TestNotifySubmitted_SkipsWhenLookupFails(t *testing.T) {
	n := &captureNotifier{}
	dir := fakeTeacherDirectory{err: errs.NewInvalidOperation("guru tidak terdaftar")}
	s := NewProposalService(nil, n, dir)

	s.notifySubmitted(context.Background(), submittedProposal())

	if len(n.events) != 0 {
		t.Fatalf("expected no events on lookup failure, got %d", len(n.events))
	}
}

func TestNotifySubmitted_SkipsWithoutDirectory(t *testing.T) {
	n := &captureNotifier{}
	s := NewProposalService(nil, n, nil)

	s.notifySubmitted(context.Background(), submittedProposal())

	if len(n.events) != 0 {
		t.Fatalf("expected no events without a directory, got %d", len(n.events))
	}
}
