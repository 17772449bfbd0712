// file: internals/features/school/seating/repository/seating_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	subRoomModel "kelasku_backend/internals/features/school/sub_rooms/model"
	"kelasku_backend/internals/helpers/errs"
)

/* =======================================================
   SeatingRepository — PersistenceGateway untuk denah kursi
   =======================================================
   Save denah SELALU bulk replace dalam satu transaksi:
   delete semua baris sub-ruangan, lalu insert ulang.
   Tidak ada update per baris (hindari state setengah jadi).
*/

type SeatingRepository struct {
	DB *gorm.DB
}

func NewSeatingRepository(db *gorm.DB) *SeatingRepository {
	return &SeatingRepository{DB: db}
}

// Load membaca mapping tersimpan (seat → student) satu sub-ruangan.
func (r *SeatingRepository) Load(ctx context.Context, subRoomID uuid.UUID) (map[int]uuid.UUID, error) {
	var rows []subRoomModel.SeatingAssignmentModel
	if err := r.DB.WithContext(ctx).
		Where("seating_assignment_sub_room_id = ?", subRoomID).
		Order("seating_assignment_seat_position ASC").
		Find(&rows).Error; err != nil {
		return nil, errs.NewPersistence("seating load", err)
	}

	out := make(map[int]uuid.UUID, len(rows))
	for _, row := range rows {
		out[row.SeatingAssignmentSeatPosition] = row.SeatingAssignmentStudentID
	}
	return out, nil
}

// ReplaceAll implement engine.Gateway: delete-all lalu insert-all.
func (r *SeatingRepository) ReplaceAll(ctx context.Context, subRoomID uuid.UUID, assignments map[int]uuid.UUID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("seating_assignment_sub_room_id = ?", subRoomID).
			Delete(&subRoomModel.SeatingAssignmentModel{}).Error; err != nil {
			return err
		}
		if len(assignments) == 0 {
			return nil
		}
		rows := make([]subRoomModel.SeatingAssignmentModel, 0, len(assignments))
		for seat, studentID := range assignments {
			rows = append(rows, subRoomModel.SeatingAssignmentModel{
				SeatingAssignmentSubRoomID:    subRoomID,
				SeatingAssignmentSeatPosition: seat,
				SeatingAssignmentStudentID:    studentID,
			})
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return errs.NewPersistence("seating replace-all", err)
	}
	return nil
}
