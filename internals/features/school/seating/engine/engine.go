// file: internals/features/school/seating/engine/engine.go
package engine

import (
	"context"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"

	"kelasku_backend/internals/helpers/errs"
)

/* =======================================================
   SEAT ASSIGNMENT ENGINE
   =======================================================
   State dua lapis (optimistic UI ala frontend lama, dibuat eksplisit):
   - snapshot : state terakhir yang tersimpan di DB
   - draft    : state kerja in-memory yang dimutasi bebas

   Reset() → draft := snapshot
   Save()  → snapshot := persist(draft)   (bulk replace, transaksional)

   Invariant setelah SETIAP operasi:
   - satu kursi maksimal satu siswa, satu siswa maksimal satu kursi
   - nomor kursi selalu di [1, totalSeats]
   Operasi yang tidak sah TIDAK mengubah draft sama sekali.
*/

type Student struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

type Strategy string

const (
	StrategyRandom     Strategy = "random"
	StrategyAscending  Strategy = "ascending"
	StrategyDescending Strategy = "descending"
)

type Scope string

const (
	ScopeComplete Scope = "complete" // isi kursi kosong saja
	ScopeAll      Scope = "all"      // kosongkan dulu, lalu isi semua
)

// Gateway = kontrak persistence untuk Save (replace-all per sub-ruangan).
type Gateway interface {
	ReplaceAll(ctx context.Context, subRoomID uuid.UUID, assignments map[int]uuid.UUID) error
}

type Engine struct {
	totalSeats  int
	roster      map[uuid.UUID]Student
	rosterOrder []Student // urutan input stabil (tie-break sort nama)

	snapshot map[int]uuid.UUID // seat → student
	draft    map[int]uuid.UUID
}

// New membangun engine dari kapasitas ruangan, roster siswa, dan
// mapping tersimpan. Mapping tersimpan divalidasi: range kursi +
// injektif dua arah. Siswa di mapping yang sudah keluar dari roster
// dibiarkan duduk (bisa di-Remove), tapi tidak bisa ditempatkan ulang.
func New(totalSeats int, roster []Student, current map[int]uuid.UUID) (*Engine, error) {
	if totalSeats < 0 {
		return nil, errs.NewInvalidOperation("totalSeats negatif: %d", totalSeats)
	}

	e := &Engine{
		totalSeats:  totalSeats,
		roster:      make(map[uuid.UUID]Student, len(roster)),
		rosterOrder: make([]Student, 0, len(roster)),
		snapshot:    make(map[int]uuid.UUID, len(current)),
		draft:       make(map[int]uuid.UUID, len(current)),
	}
	for _, s := range roster {
		if _, dup := e.roster[s.ID]; dup {
			continue // roster ganda: pakai kemunculan pertama
		}
		e.roster[s.ID] = s
		e.rosterOrder = append(e.rosterOrder, s)
	}

	seen := make(map[uuid.UUID]int, len(current))
	for seat, studentID := range current {
		if seat < 1 || seat > totalSeats {
			return nil, errs.NewInvalidOperation("kursi %d di luar range 1..%d", seat, totalSeats)
		}
		if prev, dup := seen[studentID]; dup {
			return nil, errs.NewInvalidOperation("siswa %s duduk di dua kursi (%d dan %d)", studentID, prev, seat)
		}
		seen[studentID] = seat
		e.snapshot[seat] = studentID
		e.draft[seat] = studentID
	}
	return e, nil
}

func (e *Engine) TotalSeats() int { return e.totalSeats }

// Draft mengembalikan salinan mapping kerja (seat → student).
func (e *Engine) Draft() map[int]uuid.UUID {
	return copyMap(e.draft)
}

// Snapshot mengembalikan salinan state tersimpan terakhir.
func (e *Engine) Snapshot() map[int]uuid.UUID {
	return copyMap(e.snapshot)
}

// Dirty = draft sudah beda dari snapshot.
func (e *Engine) Dirty() bool {
	if len(e.draft) != len(e.snapshot) {
		return true
	}
	for seat, st := range e.draft {
		if e.snapshot[seat] != st {
			return true
		}
	}
	return false
}

// SeatOf mencari kursi seorang siswa di draft (0 = belum duduk).
func (e *Engine) SeatOf(studentID uuid.UUID) int {
	for seat, st := range e.draft {
		if st == studentID {
			return seat
		}
	}
	return 0
}

/* =======================================================
   MUTASI
   ======================================================= */

// Place menempatkan siswa di kursi, swap-safe:
// - kursi terisi siswa B dan siswa target sudah duduk di S → B pindah ke S
//   (bukan B diam-diam terlempar — mencegah kehilangan penempatan saat drag)
// - siswa target belum duduk → B keluar ke pool "belum duduk"
// Siswa di luar roster / kursi di luar range → InvalidOperationError, draft utuh.
func (e *Engine) Place(seat int, studentID uuid.UUID) error {
	if seat < 1 || seat > e.totalSeats {
		return errs.NewInvalidOperation("kursi %d di luar range 1..%d", seat, e.totalSeats)
	}
	if _, ok := e.roster[studentID]; !ok {
		return errs.NewInvalidOperation("siswa %s tidak ada di roster", studentID)
	}

	occupant, occupied := e.draft[seat]
	if occupied && occupant == studentID {
		return nil // sudah di situ
	}

	prevSeat := e.SeatOf(studentID)
	if prevSeat != 0 {
		delete(e.draft, prevSeat)
	}
	if occupied && prevSeat != 0 {
		e.draft[prevSeat] = occupant // swap
	}
	e.draft[seat] = studentID
	return nil
}

// Remove mengosongkan satu kursi; siswa kembali ke pool "belum duduk".
func (e *Engine) Remove(seat int) error {
	if seat < 1 || seat > e.totalSeats {
		return errs.NewInvalidOperation("kursi %d di luar range 1..%d", seat, e.totalSeats)
	}
	delete(e.draft, seat)
	return nil
}

// ClearAll mengosongkan seluruh mapping draft.
func (e *Engine) ClearAll() {
	e.draft = make(map[int]uuid.UUID)
}

// AutoFill mengisi kursi otomatis.
// scope=complete → hanya kursi kosong; scope=all → kosongkan dulu.
// strategy: random (shuffle kursi & siswa), ascending/descending
// (sort nama case-insensitive (last, first), tie-break urutan input).
func (e *Engine) AutoFill(strategy Strategy, scope Scope) error {
	switch strategy {
	case StrategyRandom, StrategyAscending, StrategyDescending:
	default:
		return errs.NewInvalidOperation("strategy tidak dikenal: %q", strategy)
	}
	switch scope {
	case ScopeComplete, ScopeAll:
	default:
		return errs.NewInvalidOperation("scope tidak dikenal: %q", scope)
	}

	if scope == ScopeAll {
		e.ClearAll()
	}

	// kursi kosong, urut naik
	seats := make([]int, 0, e.totalSeats)
	for n := 1; n <= e.totalSeats; n++ {
		if _, occupied := e.draft[n]; !occupied {
			seats = append(seats, n)
		}
	}

	students := e.UnassignedStudents()

	switch strategy {
	case StrategyRandom:
		rand.Shuffle(len(seats), func(i, j int) { seats[i], seats[j] = seats[j], seats[i] })
		rand.Shuffle(len(students), func(i, j int) { students[i], students[j] = students[j], students[i] })
	case StrategyAscending:
		sortByName(students)
	case StrategyDescending:
		sortByName(students)
		for i, j := 0, len(students)-1; i < j; i, j = i+1, j-1 {
			students[i], students[j] = students[j], students[i]
		}
	}

	for i := 0; i < len(seats) && i < len(students); i++ {
		e.draft[seats[i]] = students[i].ID
	}
	return nil
}

/* =======================================================
   QUERY
   ======================================================= */

// UnassignedStudents = roster minus semua yang sudah duduk di draft
// (berdasarkan student id, bukan kursi). Urutan = urutan input roster.
func (e *Engine) UnassignedStudents() []Student {
	seated := make(map[uuid.UUID]bool, len(e.draft))
	for _, st := range e.draft {
		seated[st] = true
	}
	out := make([]Student, 0, len(e.rosterOrder))
	for _, s := range e.rosterOrder {
		if !seated[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

/* =======================================================
   DUA LAPIS: RESET / SAVE
   ======================================================= */

// Reset membuang draft, balik ke snapshot tersimpan terakhir.
func (e *Engine) Reset() {
	e.draft = copyMap(e.snapshot)
}

// Save mem-persist draft (bulk replace) lalu mempromosikannya jadi
// snapshot. Kalau gagal, draft DIPERTAHANKAN supaya bisa retry.
func (e *Engine) Save(ctx context.Context, gw Gateway, subRoomID uuid.UUID) error {
	if err := gw.ReplaceAll(ctx, subRoomID, copyMap(e.draft)); err != nil {
		if errs.IsPersistence(err) {
			return err
		}
		return errs.NewPersistence("seating replace-all", err)
	}
	e.snapshot = copyMap(e.draft)
	return nil
}

/* =======================================================
   internal
   ======================================================= */

func sortByName(students []Student) {
	sort.SliceStable(students, func(i, j int) bool {
		li := strings.ToLower(students[i].LastName)
		lj := strings.ToLower(students[j].LastName)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(students[i].FirstName) < strings.ToLower(students[j].FirstName)
	})
}

func copyMap(m map[int]uuid.UUID) map[int]uuid.UUID {
	out := make(map[int]uuid.UUID, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
