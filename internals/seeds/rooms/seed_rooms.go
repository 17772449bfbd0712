// file: internals/seeds/rooms/seed_rooms.go
package rooms

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/rooms/layout"
	"kelasku_backend/internals/features/school/rooms/model"
)

type RoomSeed struct {
	SchoolID      string          `json:"school_id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	BoardPosition string          `json:"board_position"`
	Columns       []layout.Column `json:"columns"`
}

func SeedRoomsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file ruangan:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []RoomSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		schoolID, err := uuid.Parse(data.SchoolID)
		if err != nil {
			log.Printf("❌ school_id tidak valid untuk ruangan '%s': %v", data.Name, err)
			continue
		}
		if err := layout.ValidateColumns(data.Columns); err != nil {
			log.Printf("❌ Config ruangan '%s' tidak valid: %v", data.Name, err)
			continue
		}

		var existing model.RoomModel
		if err := db.Where(
			"room_school_id = ? AND room_code = ?", schoolID, data.Code,
		).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Ruangan dengan kode '%s' sudah ada, dilewati.", data.Code)
			continue
		}

		cfg, err := model.MarshalRoomConfig(data.Columns)
		if err != nil {
			log.Printf("❌ Gagal serialize config ruangan '%s': %v", data.Name, err)
			continue
		}

		code := data.Code
		newRoom := model.RoomModel{
			RoomSchoolID:      schoolID,
			RoomName:          data.Name,
			RoomCode:          &code,
			RoomBoardPosition: model.BoardPosition(data.BoardPosition),
			RoomConfig:        cfg,
		}

		if err := db.Create(&newRoom).Error; err != nil {
			log.Printf("❌ Gagal insert ruangan '%s': %v", data.Name, err)
		} else {
			log.Printf("✅ Berhasil insert ruangan '%s' (%d kursi)", data.Name, layout.TotalSeats(data.Columns))
		}
	}
}
