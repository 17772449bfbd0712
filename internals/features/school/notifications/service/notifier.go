// file: internals/features/school/notifications/service/notifier.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/notifications/model"
)

/* =======================================================
   NOTIFIER
   =======================================================
   Dipanggil SETELAH transisi workflow ter-commit. Best-effort:
   kegagalan kirim tidak pernah menggagalkan transisi, cukup di-log.
*/

type Event struct {
	SchoolID   uuid.UUID
	UserID     uuid.UUID // penerima
	Kind       string
	Title      string
	Body       string
	ProposalID *uuid.UUID
	Tags       []string
}

type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

/* =======================================================
   Implementasi DB (tabel notifications)
   ======================================================= */

type DBNotifier struct {
	DB *gorm.DB
}

func NewDBNotifier(db *gorm.DB) *DBNotifier {
	return &DBNotifier{DB: db}
}

// Notify menulis notifikasi di goroutine terpisah supaya request
// pemicu tidak menunggu. Context request sudah selesai saat goroutine
// jalan, jadi pakai timeout sendiri.
func (n *DBNotifier) Notify(_ context.Context, ev Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		m := model.NotificationModel{
			NotificationSchoolID:    ev.SchoolID,
			NotificationUserID:      ev.UserID,
			NotificationKind:        ev.Kind,
			NotificationTitle:       ev.Title,
			NotificationDescription: ev.Body,
			NotificationProposalID:  ev.ProposalID,
			NotificationTags:        pq.StringArray(ev.Tags),
		}
		if err := n.DB.WithContext(ctx).Create(&m).Error; err != nil {
			log.Printf("[ERROR] Gagal menyimpan notifikasi (%s): %v", ev.Kind, err)
		}
	}()
}

/* =======================================================
   Nop (untuk test / wiring tanpa DB)
   ======================================================= */

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Event) {}
