package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"kelasku_backend/internals/helpers/errs"
)

func mkStudents(n int) []Student {
	out := make([]Student, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Student{
			ID:        uuid.New(),
			FirstName: fmt.Sprintf("First%02d", i),
			LastName:  fmt.Sprintf("Last%02d", i),
		})
	}
	return out
}

// checkInvariants: tidak ada kursi ganda, tidak ada siswa ganda, range sah.
func checkInvariants(t *testing.T, e *Engine) {
	t.Helper()
	seen := make(map[uuid.UUID]int)
	for seat, st := range e.Draft() {
		if seat < 1 || seat > e.TotalSeats() {
			t.Fatalf("seat %d out of range 1..%d", seat, e.TotalSeats())
		}
		if prev, dup := seen[st]; dup {
			t.Fatalf("student %s seated twice (seats %d and %d)", st, prev, seat)
		}
		seen[st] = seat
	}
}

func TestNew_ValidatesCurrentMapping(t *testing.T) {
	st := mkStudents(2)

	tests := []struct {
		name    string
		total   int
		current map[int]uuid.UUID
		wantErr bool
	}{
		{"empty ok", 4, nil, false},
		{"valid mapping", 4, map[int]uuid.UUID{1: st[0].ID, 2: st[1].ID}, false},
		{"seat zero", 4, map[int]uuid.UUID{0: st[0].ID}, true},
		{"seat above capacity", 4, map[int]uuid.UUID{5: st[0].ID}, true},
		{"student twice", 4, map[int]uuid.UUID{1: st[0].ID, 2: st[0].ID}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.total, st, tt.current)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlace_SwapSafety(t *testing.T) {
	st := mkStudents(3)
	a, b, c := st[0], st[1], st[2]

	e, err := New(6, st, map[int]uuid.UUID{1: a.ID, 2: b.ID})
	if err != nil {
		t.Fatal(err)
	}

	// a (kursi 1) pindah ke kursi 2 yang diduduki b → swap, b ke kursi 1
	if err := e.Place(2, a.ID); err != nil {
		t.Fatalf("Place swap: %v", err)
	}
	d := e.Draft()
	if d[2] != a.ID || d[1] != b.ID {
		t.Errorf("expected swap: got seat1=%s seat2=%s", d[1], d[2])
	}
	checkInvariants(t, e)

	// c belum duduk, ambil kursi 1 → b keluar ke pool, bukan pindah
	if err := e.Place(1, c.ID); err != nil {
		t.Fatalf("Place displace: %v", err)
	}
	d = e.Draft()
	if d[1] != c.ID {
		t.Errorf("seat 1 = %s, want %s", d[1], c.ID)
	}
	if got := e.SeatOf(b.ID); got != 0 {
		t.Errorf("displaced student still seated at %d", got)
	}
	checkInvariants(t, e)

	// siswa pindah ke kursi kosong → kursi lama kosong
	if err := e.Place(5, c.ID); err != nil {
		t.Fatalf("Place move: %v", err)
	}
	d = e.Draft()
	if _, occupied := d[1]; occupied {
		t.Error("old seat should be vacated")
	}
	if d[5] != c.ID {
		t.Errorf("seat 5 = %s, want %s", d[5], c.ID)
	}
	checkInvariants(t, e)
}

func TestPlace_InvalidLeavesStateUnchanged(t *testing.T) {
	st := mkStudents(2)
	e, err := New(4, st, map[int]uuid.UUID{1: st[0].ID})
	if err != nil {
		t.Fatal(err)
	}
	before := e.Draft()

	tests := []struct {
		name string
		seat int
		id   uuid.UUID
	}{
		{"seat out of range high", 5, st[1].ID},
		{"seat zero", 0, st[1].ID},
		{"student not in roster", 2, uuid.New()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.Place(tt.seat, tt.id)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.IsInvalidOperation(err) {
				t.Errorf("expected InvalidOperationError, got %T", err)
			}
			after := e.Draft()
			if len(after) != len(before) || after[1] != before[1] {
				t.Error("draft mutated by failed operation")
			}
		})
	}
}

func TestPlace_RandomSequenceKeepsInvariants(t *testing.T) {
	st := mkStudents(8)
	e, err := New(10, st, nil)
	if err != nil {
		t.Fatal(err)
	}
	// deretan place deterministik yang memicu swap/displace/move
	for i := 0; i < 100; i++ {
		seat := (i*7)%10 + 1
		student := st[(i*3)%len(st)]
		if err := e.Place(seat, student.ID); err != nil {
			t.Fatalf("Place(%d): %v", seat, err)
		}
		checkInvariants(t, e)
	}
}

func TestRemoveAndClear(t *testing.T) {
	st := mkStudents(3)
	e, err := New(4, st, map[int]uuid.UUID{1: st[0].ID, 2: st[1].ID, 3: st[2].ID})
	if err != nil {
		t.Fatal(err)
	}

	if err := e.Remove(2); err != nil {
		t.Fatal(err)
	}
	if got := len(e.Draft()); got != 2 {
		t.Errorf("after Remove: %d rows, want 2", got)
	}
	if got := len(e.UnassignedStudents()); got != 1 {
		t.Errorf("unassigned = %d, want 1", got)
	}

	if err := e.Remove(99); err == nil || !errs.IsInvalidOperation(err) {
		t.Errorf("Remove out of range: got %v", err)
	}

	e.ClearAll()
	if got := len(e.Draft()); got != 0 {
		t.Errorf("after ClearAll: %d rows, want 0", got)
	}
	if got := len(e.UnassignedStudents()); got != 3 {
		t.Errorf("unassigned = %d, want 3", got)
	}
}

func TestAutoFill_Ascending(t *testing.T) {
	students := []Student{
		{ID: uuid.New(), FirstName: "zoe", LastName: "adam"},
		{ID: uuid.New(), FirstName: "Ana", LastName: "adam"}, // tie di last name → first name
		{ID: uuid.New(), FirstName: "Ben", LastName: "Carel"},
	}
	e, err := New(5, students, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AutoFill(StrategyAscending, ScopeAll); err != nil {
		t.Fatal(err)
	}

	d := e.Draft()
	// urutan nama (case-insensitive): adam/Ana, adam/zoe, Carel/Ben → kursi 1,2,3
	if d[1] != students[1].ID || d[2] != students[0].ID || d[3] != students[2].ID {
		t.Errorf("ascending order wrong: %v", d)
	}
	checkInvariants(t, e)
}

func TestAutoFill_Descending(t *testing.T) {
	students := []Student{
		{ID: uuid.New(), FirstName: "A", LastName: "Alpha"},
		{ID: uuid.New(), FirstName: "B", LastName: "Beta"},
	}
	e, err := New(4, students, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AutoFill(StrategyDescending, ScopeAll); err != nil {
		t.Fatal(err)
	}
	d := e.Draft()
	if d[1] != students[1].ID || d[2] != students[0].ID {
		t.Errorf("descending order wrong: %v", d)
	}
}

func TestAutoFill_CompleteKeepsExisting(t *testing.T) {
	st := mkStudents(4)
	e, err := New(4, st, map[int]uuid.UUID{2: st[3].ID})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AutoFill(StrategyAscending, ScopeComplete); err != nil {
		t.Fatal(err)
	}
	d := e.Draft()
	if d[2] != st[3].ID {
		t.Error("scope=complete must keep existing placement")
	}
	if len(d) != 4 {
		t.Errorf("expected full room, got %d rows", len(d))
	}
	checkInvariants(t, e)
}

func TestAutoFill_FullRoomLeavesNoUnassigned(t *testing.T) {
	// totalSeats ≥ jumlah siswa → autofill "all" selalu mendudukkan semua
	for _, strategy := range []Strategy{StrategyRandom, StrategyAscending, StrategyDescending} {
		st := mkStudents(7)
		e, err := New(9, st, nil)
		if err != nil {
			t.Fatal(err)
		}
		if err := e.AutoFill(strategy, ScopeAll); err != nil {
			t.Fatal(err)
		}
		if got := len(e.UnassignedStudents()); got != 0 {
			t.Errorf("strategy %s: %d unassigned, want 0", strategy, got)
		}
		checkInvariants(t, e)
	}
}

func TestAutoFill_MoreStudentsThanSeats(t *testing.T) {
	st := mkStudents(6)
	e, err := New(4, st, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AutoFill(StrategyRandom, ScopeAll); err != nil {
		t.Fatal(err)
	}
	if got := len(e.Draft()); got != 4 {
		t.Errorf("filled %d seats, want 4", got)
	}
	if got := len(e.UnassignedStudents()); got != 2 {
		t.Errorf("unassigned = %d, want 2", got)
	}
}

func TestAutoFill_InvalidArgs(t *testing.T) {
	e, err := New(2, mkStudents(2), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AutoFill("bogus", ScopeAll); err == nil || !errs.IsInvalidOperation(err) {
		t.Errorf("bad strategy: got %v", err)
	}
	if err := e.AutoFill(StrategyRandom, "bogus"); err == nil || !errs.IsInvalidOperation(err) {
		t.Errorf("bad scope: got %v", err)
	}
}

/* =======================================================
   RESET / SAVE (dua lapis) dengan gateway palsu
   ======================================================= */

type fakeGateway struct {
	saved   map[int]uuid.UUID
	failErr error
	calls   int
}

func (g *fakeGateway) ReplaceAll(_ context.Context, _ uuid.UUID, m map[int]uuid.UUID) error {
	g.calls++
	if g.failErr != nil {
		return g.failErr
	}
	g.saved = m
	return nil
}

// A freshly constructed engine already IS the stored snapshot; the
// reset endpoint relies on this and does not mutate anything.
func TestFreshEngineIsCleanSnapshot(t *testing.T) {
	st := mkStudents(2)
	e, err := New(4, st, map[int]uuid.UUID{1: st[0].ID})
	if err != nil {
		t.Fatal(err)
	}
	if e.Dirty() {
		t.Error("expected fresh engine to be clean")
	}
	d := e.Draft()
	if len(d) != 1 || d[1] != st[0].ID {
		t.Errorf("fresh draft does not match stored mapping: %v", d)
	}
}

func TestResetRevertsToSnapshot(t *testing.T) {
	st := mkStudents(3)
	e, err := New(4, st, map[int]uuid.UUID{1: st[0].ID})
	if err != nil {
		t.Fatal(err)
	}

	_ = e.Place(2, st[1].ID)
	if !e.Dirty() {
		t.Fatal("expected dirty after mutation")
	}
	e.Reset()
	if e.Dirty() {
		t.Error("expected clean after reset")
	}
	d := e.Draft()
	if len(d) != 1 || d[1] != st[0].ID {
		t.Errorf("reset did not restore snapshot: %v", d)
	}
}

func TestSave_PromotesDraftToSnapshot(t *testing.T) {
	st := mkStudents(3)
	e, err := New(4, st, nil)
	if err != nil {
		t.Fatal(err)
	}
	_ = e.Place(1, st[0].ID)
	_ = e.Place(2, st[1].ID)

	gw := &fakeGateway{}
	if err := e.Save(context.Background(), gw, uuid.New()); err != nil {
		t.Fatal(err)
	}
	if len(gw.saved) != 2 {
		t.Errorf("gateway got %d rows, want 2", len(gw.saved))
	}
	if e.Dirty() {
		t.Error("expected clean after save")
	}

	// round trip: reload dari hasil persist → mapping identik
	e2, err := New(4, st, gw.saved)
	if err != nil {
		t.Fatal(err)
	}
	d1, d2 := e.Draft(), e2.Draft()
	if len(d1) != len(d2) {
		t.Fatalf("round trip size mismatch: %d vs %d", len(d1), len(d2))
	}
	for seat, id := range d1 {
		if d2[seat] != id {
			t.Errorf("round trip mismatch at seat %d", seat)
		}
	}
}

func TestSave_FailureKeepsDraft(t *testing.T) {
	st := mkStudents(2)
	e, err := New(4, st, map[int]uuid.UUID{1: st[0].ID})
	if err != nil {
		t.Fatal(err)
	}
	_ = e.Place(2, st[1].ID)

	gw := &fakeGateway{failErr: errors.New("db down")}
	err = e.Save(context.Background(), gw, uuid.New())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errs.IsPersistence(err) {
		t.Errorf("expected PersistenceError, got %T", err)
	}
	// draft dipertahankan untuk retry, snapshot tidak berubah
	if !e.Dirty() {
		t.Error("draft must survive a failed save")
	}
	if got := len(e.Snapshot()); got != 1 {
		t.Errorf("snapshot mutated by failed save: %d rows", got)
	}
}
