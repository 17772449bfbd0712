// file: internals/features/school/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   Jenis notifikasi (workflow usulan denah)
   ======================================================= */

const (
	KindProposalSubmitted = "proposal_submitted"
	KindProposalApproved  = "proposal_approved"
	KindProposalRejected  = "proposal_rejected"
	KindProposalReturned  = "proposal_returned"
)

/* =======================================================
   NotificationModel — map ke tabel notifications
   ======================================================= */

type NotificationModel struct {
	NotificationID          uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationSchoolID    uuid.UUID      `gorm:"column:notification_school_id;type:uuid;not null;index" json:"notification_school_id"`
	NotificationUserID      uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"` // penerima
	NotificationKind        string         `gorm:"column:notification_kind;type:varchar(32);not null" json:"notification_kind"`
	NotificationTitle       string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationDescription string         `gorm:"column:notification_description;type:text" json:"notification_description"`
	NotificationProposalID  *uuid.UUID     `gorm:"column:notification_proposal_id;type:uuid" json:"notification_proposal_id"` // nullable
	NotificationTags        pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationReadAt      *time.Time     `gorm:"column:notification_read_at" json:"notification_read_at"`
	NotificationCreatedAt   time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationDeletedAt   gorm.DeletedAt `gorm:"column:notification_deleted_at;index" json:"notification_deleted_at,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
