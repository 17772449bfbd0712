// file: internals/features/school/rooms/layout/layout.go
package layout

import (
	"kelasku_backend/internals/helpers/errs"
)

/* =======================================================
   ROOM LAYOUT — penomoran kursi deterministik
   =======================================================
   Ruangan = daftar kolom berurutan; tiap kolom punya N meja,
   tiap meja M kursi. Nomor kursi di-scan kiri→kanan, atas→bawah:

     nomor = 1 + (kursi semua kolom sebelumnya)
               + (kursi meja sebelumnya di kolom ini)
               + index kursi di meja

   Penomoran HANYA bergantung pada array kolom — tidak pada
   state penempatan — supaya kursi fisik yang sama selalu dapat
   nomor yang sama di render/edit/persist manapun.
*/

type Column struct {
	Tables        int `json:"tables" validate:"required,min=1"`
	SeatsPerTable int `json:"seats_per_table" validate:"required,min=1"`
}

// Plafon kapasitas tingkat sekolah
const (
	MaxSeatsPerRoom = 350 // total kursi satu ruangan
	MaxRoomWidth    = 10  // Σ seats_per_table semua kolom
)

// TotalSeats menghitung kapasitas total ruangan.
// Kolom dengan dimensi non-positif dianggap 0 di sini;
// penolakan dimensi ada di ValidateColumns (tidak pernah di-clamp diam-diam).
func TotalSeats(cols []Column) int {
	total := 0
	for _, col := range cols {
		if col.Tables > 0 && col.SeatsPerTable > 0 {
			total += col.Tables * col.SeatsPerTable
		}
	}
	return total
}

// Width = Σ seats_per_table (lebar layout ruangan).
func Width(cols []Column) int {
	w := 0
	for _, col := range cols {
		if col.SeatsPerTable > 0 {
			w += col.SeatsPerTable
		}
	}
	return w
}

// ValidateColumns menolak konfigurasi tidak sah:
// dimensi < 1, atau melebihi plafon kapasitas/lebar.
func ValidateColumns(cols []Column) error {
	if len(cols) == 0 {
		return errs.NewConfiguration("ruangan harus punya minimal satu kolom")
	}
	for i, col := range cols {
		if col.Tables < 1 {
			return errs.NewConfiguration("kolom %d: tables harus ≥ 1 (dapat %d)", i, col.Tables)
		}
		if col.SeatsPerTable < 1 {
			return errs.NewConfiguration("kolom %d: seats_per_table harus ≥ 1 (dapat %d)", i, col.SeatsPerTable)
		}
	}
	if total := TotalSeats(cols); total > MaxSeatsPerRoom {
		return errs.NewConfiguration("total kursi %d melebihi plafon %d", total, MaxSeatsPerRoom)
	}
	if w := Width(cols); w > MaxRoomWidth {
		return errs.NewConfiguration("lebar layout %d melebihi plafon %d", w, MaxRoomWidth)
	}
	return nil
}

// SeatNumber memetakan (kolom, meja, kursi) — semua 0-based — ke nomor
// kursi stabil 1..TotalSeats. Index di luar range atau dimensi non-positif
// = configuration error, bukan clamp.
func SeatNumber(cols []Column, colIdx, tableIdx, seatIdx int) (int, error) {
	if colIdx < 0 || colIdx >= len(cols) {
		return 0, errs.NewConfiguration("index kolom %d di luar range (0..%d)", colIdx, len(cols)-1)
	}
	col := cols[colIdx]
	if col.Tables < 1 || col.SeatsPerTable < 1 {
		return 0, errs.NewConfiguration("kolom %d punya dimensi tidak sah (tables=%d, seats_per_table=%d)",
			colIdx, col.Tables, col.SeatsPerTable)
	}
	if tableIdx < 0 || tableIdx >= col.Tables {
		return 0, errs.NewConfiguration("index meja %d di luar range kolom %d (0..%d)", tableIdx, colIdx, col.Tables-1)
	}
	if seatIdx < 0 || seatIdx >= col.SeatsPerTable {
		return 0, errs.NewConfiguration("index kursi %d di luar range meja (0..%d)", seatIdx, col.SeatsPerTable-1)
	}

	n := 1
	for i := 0; i < colIdx; i++ {
		if cols[i].Tables < 1 || cols[i].SeatsPerTable < 1 {
			return 0, errs.NewConfiguration("kolom %d punya dimensi tidak sah (tables=%d, seats_per_table=%d)",
				i, cols[i].Tables, cols[i].SeatsPerTable)
		}
		n += cols[i].Tables * cols[i].SeatsPerTable
	}
	n += tableIdx * col.SeatsPerTable
	n += seatIdx
	return n, nil
}
