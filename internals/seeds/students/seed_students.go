// file: internals/seeds/students/seed_students.go
package students

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/students/model"
)

type StudentSeed struct {
	SchoolID  string `json:"school_id"`
	ClassID   string `json:"class_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file siswa:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []StudentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		schoolID, err := uuid.Parse(data.SchoolID)
		if err != nil {
			log.Printf("❌ school_id tidak valid untuk siswa '%s %s': %v", data.FirstName, data.LastName, err)
			continue
		}
		classID, err := uuid.Parse(data.ClassID)
		if err != nil {
			log.Printf("❌ class_id tidak valid untuk siswa '%s %s': %v", data.FirstName, data.LastName, err)
			continue
		}

		var existing model.StudentModel
		if err := db.Where(
			"student_school_id = ? AND student_class_id = ? AND student_first_name = ? AND student_last_name = ?",
			schoolID, classID, data.FirstName, data.LastName,
		).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Siswa '%s %s' sudah ada, dilewati.", data.FirstName, data.LastName)
			continue
		}

		newStudent := model.StudentModel{
			StudentSchoolID:  schoolID,
			StudentClassID:   classID,
			StudentFirstName: data.FirstName,
			StudentLastName:  data.LastName,
		}

		if err := db.Create(&newStudent).Error; err != nil {
			log.Printf("❌ Gagal insert siswa '%s %s': %v", data.FirstName, data.LastName, err)
		} else {
			log.Printf("✅ Berhasil insert siswa '%s %s'", data.FirstName, data.LastName)
		}
	}
}
