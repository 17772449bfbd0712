package layout

import (
	"testing"

	"kelasku_backend/internals/helpers/errs"
)

func TestTotalSeatsAndWidth(t *testing.T) {
	tests := []struct {
		name      string
		cols      []Column
		wantTotal int
		wantWidth int
	}{
		{
			name:      "two columns",
			cols:      []Column{{Tables: 5, SeatsPerTable: 2}, {Tables: 4, SeatsPerTable: 2}},
			wantTotal: 18,
			wantWidth: 4,
		},
		{
			name:      "single column single seat",
			cols:      []Column{{Tables: 1, SeatsPerTable: 1}},
			wantTotal: 1,
			wantWidth: 1,
		},
		{
			name:      "empty",
			cols:      nil,
			wantTotal: 0,
			wantWidth: 0,
		},
		{
			name:      "mixed widths",
			cols:      []Column{{Tables: 3, SeatsPerTable: 3}, {Tables: 2, SeatsPerTable: 1}, {Tables: 1, SeatsPerTable: 4}},
			wantTotal: 15,
			wantWidth: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalSeats(tt.cols); got != tt.wantTotal {
				t.Errorf("TotalSeats() = %d, want %d", got, tt.wantTotal)
			}
			if got := Width(tt.cols); got != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", got, tt.wantWidth)
			}
		})
	}
}

func TestSeatNumber_ReferenceScenario(t *testing.T) {
	// [{5,2},{4,2}] → 18 kursi; (col=1, table=2, seat=1) → 1 + 10 + 4 + 1 = 16
	cols := []Column{{Tables: 5, SeatsPerTable: 2}, {Tables: 4, SeatsPerTable: 2}}

	if got := TotalSeats(cols); got != 18 {
		t.Fatalf("TotalSeats() = %d, want 18", got)
	}
	got, err := SeatNumber(cols, 1, 2, 1)
	if err != nil {
		t.Fatalf("SeatNumber() error: %v", err)
	}
	if got != 16 {
		t.Errorf("SeatNumber(1,2,1) = %d, want 16", got)
	}
}

func TestSeatNumber_Bijective(t *testing.T) {
	configs := [][]Column{
		{{Tables: 5, SeatsPerTable: 2}, {Tables: 4, SeatsPerTable: 2}},
		{{Tables: 1, SeatsPerTable: 1}},
		{{Tables: 2, SeatsPerTable: 3}, {Tables: 3, SeatsPerTable: 1}, {Tables: 1, SeatsPerTable: 2}},
		{{Tables: 10, SeatsPerTable: 4}},
	}

	for _, cols := range configs {
		seen := make(map[int]bool)
		for ci, col := range cols {
			for ti := 0; ti < col.Tables; ti++ {
				for si := 0; si < col.SeatsPerTable; si++ {
					n, err := SeatNumber(cols, ci, ti, si)
					if err != nil {
						t.Fatalf("SeatNumber(%d,%d,%d) error: %v", ci, ti, si, err)
					}
					if n < 1 || n > TotalSeats(cols) {
						t.Errorf("seat number %d out of range 1..%d", n, TotalSeats(cols))
					}
					if seen[n] {
						t.Errorf("duplicate seat number %d at (%d,%d,%d)", n, ci, ti, si)
					}
					seen[n] = true
				}
			}
		}
		if len(seen) != TotalSeats(cols) {
			t.Errorf("got %d distinct numbers, want %d (no gaps)", len(seen), TotalSeats(cols))
		}
	}
}

func TestSeatNumber_Errors(t *testing.T) {
	cols := []Column{{Tables: 2, SeatsPerTable: 2}}

	tests := []struct {
		name                string
		cols                []Column
		col, table, seat    int
	}{
		{"column out of range", cols, 1, 0, 0},
		{"negative column", cols, -1, 0, 0},
		{"table out of range", cols, 0, 2, 0},
		{"seat out of range", cols, 0, 0, 2},
		{"non-positive dims", []Column{{Tables: 0, SeatsPerTable: 2}}, 0, 0, 0},
		{"invalid prior column", []Column{{Tables: 0, SeatsPerTable: 1}, {Tables: 1, SeatsPerTable: 1}}, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SeatNumber(tt.cols, tt.col, tt.table, tt.seat)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errs.IsConfiguration(err) {
				t.Errorf("expected ConfigurationError, got %T", err)
			}
		})
	}
}

func TestValidateColumns(t *testing.T) {
	tests := []struct {
		name    string
		cols    []Column
		wantErr bool
	}{
		{"valid", []Column{{Tables: 5, SeatsPerTable: 2}}, false},
		{"empty", nil, true},
		{"zero tables", []Column{{Tables: 0, SeatsPerTable: 2}}, true},
		{"zero seats", []Column{{Tables: 2, SeatsPerTable: 0}}, true},
		{"over seat ceiling", []Column{{Tables: 60, SeatsPerTable: 6}}, true}, // 360 > 350
		{"at width ceiling", []Column{{Tables: 1, SeatsPerTable: 10}}, false},
		{"over width ceiling", []Column{{Tables: 1, SeatsPerTable: 6}, {Tables: 1, SeatsPerTable: 5}}, true}, // 11 > 10
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumns(tt.cols)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumns() err = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil && !errs.IsConfiguration(err) {
				t.Errorf("expected ConfigurationError, got %T", err)
			}
		})
	}
}
