// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	rooms "kelasku_backend/internals/seeds/rooms"
	students "kelasku_backend/internals/seeds/students"
)

// RunAllSeeds mengisi data contoh untuk lingkungan dev
// (dipanggil dari main saat RUN_SEEDS=true).
func RunAllSeeds(db *gorm.DB) {
	rooms.SeedRoomsFromJSON(db, "internals/seeds/rooms/data_rooms.json")
	students.SeedStudentsFromJSON(db, "internals/seeds/students/data_students.json")
}
