// file: internals/features/school/schedules/service/resolver.go
package service

import (
	"strconv"
	"strings"
	"time"

	subRoomModel "kelasku_backend/internals/features/school/sub_rooms/model"
)

/* =======================================================
   SCHEDULE RESOLVER
   =======================================================
   Menentukan slot jadwal mana yang "aktif" pada satu instant:
   1) hitung minggu ISO + hari (Senin=0) dari instant
   2) lookup tipe minggu (A/B) di kalender; default A kalau tidak ada
   3) pilih slot: hari cocok, jam di [start,end] INKLUSIF, dan
      week_type both atau sama dengan tipe minggu ter-resolve.

   Kalau data sumber punya slot overlap, yang menang adalah match
   PERTAMA sesuai urutan definisi slot — asumsi integritas data,
   bukan aturan prioritas (sengaja tidak di-"pintar"-kan di sini).
*/

// CalendarLookup = akses kalender minggu A/B: (tahun ISO, minggu ISO) → tipe.
// Return false kalau minggu tidak terdaftar.
type CalendarLookup func(isoYear, isoWeek int) (subRoomModel.WeekType, bool)

// DayIndex memetakan time.Weekday → 0=Senin .. 6=Minggu.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ResolveWeekType menentukan tipe minggu instant t. Default A.
func ResolveWeekType(t time.Time, lookup CalendarLookup) subRoomModel.WeekType {
	if lookup != nil {
		year, week := t.ISOWeek()
		if wt, ok := lookup(year, week); ok && (wt == subRoomModel.WeekA || wt == subRoomModel.WeekB) {
			return wt
		}
	}
	return subRoomModel.WeekA
}

// ResolveActiveSlot mengembalikan slot aktif pada instant t, atau nil.
// slots harus sudah dalam urutan definisi (first match wins).
func ResolveActiveSlot(slots []subRoomModel.SubRoomScheduleModel, t time.Time, lookup CalendarLookup) *subRoomModel.SubRoomScheduleModel {
	weekType := ResolveWeekType(t, lookup)
	day := DayIndex(t)
	minute := t.Hour()*60 + t.Minute()

	for i := range slots {
		s := &slots[i]
		if s.SubRoomScheduleDayOfWeek != day {
			continue
		}
		start, okS := ClockMinutes(s.SubRoomScheduleStartTime)
		end, okE := ClockMinutes(s.SubRoomScheduleEndTime)
		if !okS || !okE {
			continue // jam korup → slot dilewati
		}
		if minute < start || minute > end { // inklusif dua sisi
			continue
		}
		switch s.SubRoomScheduleWeekType {
		case subRoomModel.WeekBoth:
			return s
		case weekType:
			return s
		}
	}
	return nil
}

// ClockMinutes parse "HH:MM" → menit sejak tengah malam.
func ClockMinutes(clock string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
