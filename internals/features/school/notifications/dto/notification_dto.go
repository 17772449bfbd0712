// file: internals/features/school/notifications/dto/notification_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/school/notifications/model"
)

type NotificationResponse struct {
	NotificationID          uuid.UUID  `json:"notification_id"`
	NotificationKind        string     `json:"notification_kind"`
	NotificationTitle       string     `json:"notification_title"`
	NotificationDescription string     `json:"notification_description"`
	NotificationProposalID  *uuid.UUID `json:"notification_proposal_id,omitempty"`
	NotificationTags        []string   `json:"notification_tags,omitempty"`
	NotificationReadAt      *time.Time `json:"notification_read_at,omitempty"`
	NotificationCreatedAt   time.Time  `json:"notification_created_at"`
}

func ToNotificationResponse(m model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID:          m.NotificationID,
		NotificationKind:        m.NotificationKind,
		NotificationTitle:       m.NotificationTitle,
		NotificationDescription: m.NotificationDescription,
		NotificationProposalID:  m.NotificationProposalID,
		NotificationTags:        m.NotificationTags,
		NotificationReadAt:      m.NotificationReadAt,
		NotificationCreatedAt:   m.NotificationCreatedAt,
	}
}

func ToNotificationResponseList(rows []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToNotificationResponse(m))
	}
	return out
}
