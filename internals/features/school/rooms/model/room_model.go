// file: internals/features/school/rooms/model/room_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/rooms/layout"
	"kelasku_backend/internals/helpers/errs"
)

/* =======================================================
   Enum posisi papan tulis (informasional, untuk render denah)
   ======================================================= */

type BoardPosition string

const (
	BoardTop    BoardPosition = "top"
	BoardBottom BoardPosition = "bottom"
	BoardLeft   BoardPosition = "left"
	BoardRight  BoardPosition = "right"
)

func (p BoardPosition) Valid() bool {
	switch p {
	case BoardTop, BoardBottom, BoardLeft, BoardRight:
		return true
	}
	return false
}

/* =======================================================
   RoomModel — map ke tabel class_rooms
   ======================================================= */

type RoomConfig struct {
	Columns []layout.Column `json:"columns"`
}

type RoomModel struct {
	// PK
	RoomID uuid.UUID `json:"room_id" gorm:"column:room_id;primaryKey;type:uuid;default:gen_random_uuid()"`

	// Tenant / scope
	RoomSchoolID uuid.UUID `json:"room_school_id" gorm:"column:room_school_id;type:uuid;not null;index"`

	RoomName string  `json:"room_name" gorm:"column:room_name;type:varchar(100);not null"`
	RoomCode *string `json:"room_code,omitempty" gorm:"column:room_code;type:varchar(50);uniqueIndex:uq_rooms_school_code,where:room_deleted_at IS NULL"`

	RoomBoardPosition BoardPosition `json:"room_board_position" gorm:"column:room_board_position;type:varchar(10);not null;default:'top'"`

	// Konfigurasi kolom/meja/kursi: {"columns":[{"tables":5,"seats_per_table":2}]}
	RoomConfig datatypes.JSON `json:"room_config" gorm:"column:room_config;type:jsonb;not null"`

	// Timestamps eksplisit (auto create/update)
	RoomCreatedAt time.Time      `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
	RoomUpdatedAt time.Time      `json:"room_updated_at" gorm:"column:room_updated_at;not null;autoUpdateTime"`
	RoomDeletedAt gorm.DeletedAt `json:"room_deleted_at" gorm:"column:room_deleted_at;index"`
}

func (RoomModel) TableName() string {
	return "class_rooms"
}

/* =======================================================
   Config helpers
   ======================================================= */

// Columns membaca room_config jadi slice kolom terketik.
func (m *RoomModel) Columns() ([]layout.Column, error) {
	var cfg RoomConfig
	if err := json.Unmarshal(m.RoomConfig, &cfg); err != nil {
		return nil, errs.NewConfiguration("room_config tidak bisa dibaca: %v", err)
	}
	return cfg.Columns, nil
}

// TotalSeats = kapasitas ruangan menurut config sekarang.
func (m *RoomModel) TotalSeats() (int, error) {
	cols, err := m.Columns()
	if err != nil {
		return 0, err
	}
	return layout.TotalSeats(cols), nil
}

func MarshalRoomConfig(cols []layout.Column) (datatypes.JSON, error) {
	b, err := json.Marshal(RoomConfig{Columns: cols})
	if err != nil {
		return nil, errs.NewConfiguration("room_config tidak bisa di-serialize: %v", err)
	}
	return datatypes.JSON(b), nil
}
