// file: internals/features/school/notifications/controller/notification_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/notifications/dto"
	"kelasku_backend/internals/features/school/notifications/model"
	helper "kelasku_backend/internals/helpers"
	helperAuth "kelasku_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/u/notifications?unread=true (+ pagination)
func (ctl *NotificationController) ListMine(c *fiber.Ctx) error {
	userID, ok := helperAuth.GetUserID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User tidak ditemukan di token")
	}
	p := helper.ResolvePaging(c, 10, 100)

	db := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		db = db.Where("notification_read_at IS NULL")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var rows []model.NotificationModel
	if err := db.
		Order("notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.Success(c, "Daftar notifikasi", fiber.Map{
		"items":      dto.ToNotificationResponseList(rows),
		"pagination": helper.BuildPagination(p, total, len(rows)),
	})
}

// 🟢 POST /api/u/notifications/:id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, ok := helperAuth.GetUserID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User tidak ditemukan di token")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "ID tidak valid")
	}

	now := time.Now()
	res := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ? AND notification_read_at IS NULL", id, userID).
		Update("notification_read_at", now)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Notifikasi tidak ditemukan atau sudah dibaca")
	}
	return helper.Success(c, "Notifikasi ditandai dibaca", nil)
}

// 🛑 DELETE /api/u/notifications/:id (soft delete)
func (ctl *NotificationController) Delete(c *fiber.Ctx) error {
	userID, ok := helperAuth.GetUserID(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User tidak ditemukan di token")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Delete(&model.NotificationModel{})
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Gagal menghapus notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.Success(c, "Notifikasi dihapus", nil)
}
