// file: internals/features/school/schedules/service/resolver_test.go
package service

import (
	"testing"
	"time"

	subRoomModel "kelasku_backend/internals/features/school/sub_rooms/model"
)

func slot(day int, start, end string, wt subRoomModel.WeekType) subRoomModel.SubRoomScheduleModel {
	return subRoomModel.SubRoomScheduleModel{
		SubRoomScheduleDayOfWeek: day,
		SubRoomScheduleStartTime: start,
		SubRoomScheduleEndTime:   end,
		SubRoomScheduleWeekType:  wt,
	}
}

func calendar(entries map[[2]int]subRoomModel.WeekType) CalendarLookup {
	return func(year, week int) (subRoomModel.WeekType, bool) {
		wt, ok := entries[[2]int{year, week}]
		return wt, ok
	}
}

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDayIndex(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-03-17 08:00", 0}, // Monday
		{"2025-03-19 08:00", 2}, // Wednesday
		{"2025-03-22 08:00", 5}, // Saturday
		{"2025-03-23 08:00", 6}, // Sunday
	}
	for _, tt := range tests {
		if got := DayIndex(at(tt.date)); got != tt.want {
			t.Errorf("DayIndex(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{" 07:05 ", 425, true},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"0930", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ClockMinutes(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ClockMinutes(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveWeekType_DefaultsToA(t *testing.T) {
	// no calendar at all
	if got := ResolveWeekType(at("2025-03-19 09:30"), nil); got != subRoomModel.WeekA {
		t.Fatalf("nil lookup: got %q, want A", got)
	}
	// calendar present but week unmapped
	lookup := calendar(map[[2]int]subRoomModel.WeekType{
		{2025, 40}: subRoomModel.WeekB,
	})
	if got := ResolveWeekType(at("2025-03-19 09:30"), lookup); got != subRoomModel.WeekA {
		t.Fatalf("unmapped week: got %q, want A", got)
	}
}

// 2025-03-19 is the Wednesday (day index 2) of ISO week 12 of 2025.
func TestResolveActiveSlot_WeekTypeFilter(t *testing.T) {
	slots := []subRoomModel.SubRoomScheduleModel{
		slot(2, "09:00", "10:00", subRoomModel.WeekA),
	}
	wednesday := at("2025-03-19 09:30")

	weekB := calendar(map[[2]int]subRoomModel.WeekType{{2025, 12}: subRoomModel.WeekB})
	if got := ResolveActiveSlot(slots, wednesday, weekB); got != nil {
		t.Errorf("week resolved to B: expected no active slot, got one")
	}

	weekA := calendar(map[[2]int]subRoomModel.WeekType{{2025, 12}: subRoomModel.WeekA})
	if got := ResolveActiveSlot(slots, wednesday, weekA); got == nil {
		t.Errorf("week resolved to A: expected the slot to match")
	}

	// unmapped week falls back to A, so the slot still matches
	if got := ResolveActiveSlot(slots, wednesday, calendar(nil)); got == nil {
		t.Errorf("unmapped week: expected the A slot to match via default")
	}
}

func TestResolveActiveSlot_BothMatchesEitherWeek(t *testing.T) {
	slots := []subRoomModel.SubRoomScheduleModel{
		slot(2, "09:00", "10:00", subRoomModel.WeekBoth),
	}
	wednesday := at("2025-03-19 09:30")

	for _, wt := range []subRoomModel.WeekType{subRoomModel.WeekA, subRoomModel.WeekB} {
		lookup := calendar(map[[2]int]subRoomModel.WeekType{{2025, 12}: wt})
		if got := ResolveActiveSlot(slots, wednesday, lookup); got == nil {
			t.Errorf("week %q: slot with week_type=both should match", wt)
		}
	}
}

func TestResolveActiveSlot_InclusiveBoundaries(t *testing.T) {
	slots := []subRoomModel.SubRoomScheduleModel{
		slot(2, "09:00", "10:00", subRoomModel.WeekBoth),
	}
	tests := []struct {
		at   string
		want bool
	}{
		{"2025-03-19 08:59", false},
		{"2025-03-19 09:00", true}, // start inclusive
		{"2025-03-19 09:30", true},
		{"2025-03-19 10:00", true}, // end inclusive
		{"2025-03-19 10:01", false},
		{"2025-03-18 09:30", false}, // Tuesday, wrong day
	}
	for _, tt := range tests {
		got := ResolveActiveSlot(slots, at(tt.at), nil)
		if (got != nil) != tt.want {
			t.Errorf("at %s: match=%v, want %v", tt.at, got != nil, tt.want)
		}
	}
}

func TestResolveActiveSlot_FirstMatchWins(t *testing.T) {
	slots := []subRoomModel.SubRoomScheduleModel{
		slot(2, "08:00", "12:00", subRoomModel.WeekBoth),
		slot(2, "09:00", "10:00", subRoomModel.WeekBoth),
	}
	got := ResolveActiveSlot(slots, at("2025-03-19 09:30"), nil)
	if got == nil {
		t.Fatal("expected a match")
	}
	if got.SubRoomScheduleStartTime != "08:00" {
		t.Errorf("overlapping slots: want first defined slot (08:00), got %s", got.SubRoomScheduleStartTime)
	}
}

func TestResolveActiveSlot_SkipsCorruptClock(t *testing.T) {
	slots := []subRoomModel.SubRoomScheduleModel{
		slot(2, "9am", "10:00", subRoomModel.WeekBoth),
		slot(2, "09:00", "10:00", subRoomModel.WeekBoth),
	}
	got := ResolveActiveSlot(slots, at("2025-03-19 09:30"), nil)
	if got == nil {
		t.Fatal("expected the well-formed slot to match")
	}
	if got.SubRoomScheduleStartTime != "09:00" {
		t.Errorf("corrupt slot should be skipped, got start=%s", got.SubRoomScheduleStartTime)
	}
}
